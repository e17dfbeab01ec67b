package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chronos/tesoreria-api/internal/application/dto"
	"github.com/chronos/tesoreria-api/internal/application/tesoreria"
)

// BancoHandler maneja las consultas de bancos y su libro de movimientos
// (protegido).
type BancoHandler struct {
	uc *tesoreria.UseCase
}

// NewBancoHandler construye el handler de bancos.
func NewBancoHandler(uc *tesoreria.UseCase) *BancoHandler {
	return &BancoHandler{uc: uc}
}

// List godoc
// @Summary      Listar los 7 bancos con su capital e históricos
// @Tags         bancos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BancoResponse
// @Router       /api/bancos [get]
func (h *BancoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListarBancos(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Totales agregados de los 7 bancos
// @Tags         bancos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumenBancosResponse
// @Router       /api/bancos/resumen [get]
func (h *BancoHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.ResumenBancos(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Movimientos godoc
// @Summary      Listar movimientos de un banco
// @Tags         bancos
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del banco"
// @Param        limit   query  int     false  "máx resultados (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.MovimientoDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bancos/{id}/movimientos [get]
func (h *BancoHandler) Movimientos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListarMovimientos(c.Context(), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
