package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chronos/tesoreria-api/internal/application/dto"
	"github.com/chronos/tesoreria-api/internal/application/tesoreria"
)

// OrdenCompraHandler maneja las peticiones HTTP de órdenes de compra (protegido).
type OrdenCompraHandler struct {
	uc *tesoreria.UseCase
}

// NewOrdenCompraHandler construye el handler.
func NewOrdenCompraHandler(uc *tesoreria.UseCase) *OrdenCompraHandler {
	return &OrdenCompraHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar orden de compra a un distribuidor
// @Tags         ordenes-compra
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearOrdenCompraRequest  true  "distribuidor_id, producto, cantidad, costos; pago_inicial opcional"
// @Success      201   {object}  dto.CrearOrdenCompraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra [post]
func (h *OrdenCompraHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearOrdenCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearOrdenCompra(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
