package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chronos/tesoreria-api/internal/application/dto"
	"github.com/chronos/tesoreria-api/internal/application/tesoreria"
)

// VentaHandler maneja las peticiones HTTP de ventas (protegido).
type VentaHandler struct {
	uc *tesoreria.UseCase
}

// NewVentaHandler construye el handler de ventas.
func NewVentaHandler(uc *tesoreria.UseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar una venta con distribución a los 3 bancos
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearVentaRequest  true  "cliente_id, producto, cantidad, precios por unidad"
// @Success      201   {object}  dto.CrearVentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearVenta(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Calcular godoc
// @Summary      Previsualizar la distribución de una venta sin persistirla
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearVentaRequest  true  "mismos campos que crear venta"
// @Success      200   {object}  dto.CalcularVentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas/calcular [post]
func (h *VentaHandler) Calcular(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CalcularVenta(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
