package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chronos/tesoreria-api/internal/application/directorio"
	"github.com/chronos/tesoreria-api/internal/application/dto"
	"github.com/chronos/tesoreria-api/internal/application/tesoreria"
)

// DistribuidorHandler maneja las peticiones HTTP de distribuidores y sus pagos
// (protegido).
type DistribuidorHandler struct {
	dirUC *directorio.DistribuidorUseCase
	tesUC *tesoreria.UseCase
}

// NewDistribuidorHandler construye el handler de distribuidores.
func NewDistribuidorHandler(dirUC *directorio.DistribuidorUseCase, tesUC *tesoreria.UseCase) *DistribuidorHandler {
	return &DistribuidorHandler{dirUC: dirUC, tesUC: tesUC}
}

// Create godoc
// @Summary      Crear distribuidor
// @Tags         distribuidores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearDistribuidorRequest  true  "nombre requerido"
// @Success      201   {object}  dto.DistribuidorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/distribuidores [post]
func (h *DistribuidorHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearDistribuidorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.dirUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar distribuidores
// @Tags         distribuidores
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx resultados (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.DistribuidorResponse
// @Router       /api/distribuidores [get]
func (h *DistribuidorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.dirUC.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener distribuidor con su deuda agregada
// @Tags         distribuidores
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del distribuidor"
// @Success      200  {object}  dto.DistribuidorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distribuidores/{id} [get]
func (h *DistribuidorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.dirUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Pagar godoc
// @Summary      Pagar deuda a un distribuidor desde un banco
// @Tags         distribuidores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del distribuidor"
// @Param        body  body  dto.PagoDistribuidorRequest  true  "monto, banco_origen, orden_compra_id opcional"
// @Success      200   {object}  dto.PagoDistribuidorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/distribuidores/{id}/pagos [post]
func (h *DistribuidorHandler) Pagar(c *fiber.Ctx) error {
	var in dto.PagoDistribuidorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.tesUC.PagarDistribuidor(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
