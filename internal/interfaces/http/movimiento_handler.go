package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chronos/tesoreria-api/internal/application/dto"
	"github.com/chronos/tesoreria-api/internal/application/tesoreria"
)

// MovimientoHandler maneja gastos, ingresos manuales y transferencias
// (protegido).
type MovimientoHandler struct {
	uc *tesoreria.UseCase
}

// NewMovimientoHandler construye el handler de movimientos.
func NewMovimientoHandler(uc *tesoreria.UseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Gasto godoc
// @Summary      Registrar un gasto manual contra un banco
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GastoRequest  true  "banco_id, monto, concepto"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos/gastos [post]
func (h *MovimientoHandler) Gasto(c *fiber.Ctx) error {
	var in dto.GastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarGasto(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Ingreso godoc
// @Summary      Registrar un ingreso manual hacia un banco
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IngresoRequest  true  "banco_id, monto, concepto, cliente_id opcional"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimientos/ingresos [post]
func (h *MovimientoHandler) Ingreso(c *fiber.Ctx) error {
	var in dto.IngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarIngreso(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Transferir godoc
// @Summary      Transferir capital entre dos bancos (par atómico)
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferenciaRequest  true  "banco_origen, banco_destino, monto, concepto"
// @Success      201   {object}  dto.TransferenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos/transferencias [post]
func (h *MovimientoHandler) Transferir(c *fiber.Ctx) error {
	var in dto.TransferenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Transferir(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
