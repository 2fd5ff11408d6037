package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/inventario"
)

// InventarioHandler maneja el stock por producto (admin).
type InventarioHandler struct {
	uc *inventario.UseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.UseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventarioResponse
// @Router       /api/admin/inventario [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByProducto godoc
// @Summary      Obtener stock de un producto
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.InventarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/inventario/{productoId} [get]
func (h *InventarioHandler) GetByProducto(c *fiber.Ctx) error {
	out, err := h.uc.GetByProducto(c.Params("productoId"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// SetStock godoc
// @Summary      Fijar stock de un producto
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productoId  path  string  true  "ID del producto"
// @Param        body        body  dto.SetStockRequest  true  "Cantidad absoluta"
// @Success      200  {object}  dto.InventarioResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/inventario/{productoId} [put]
func (h *InventarioHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetStock(c.Context(), c.Params("productoId"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Ajustar godoc
// @Summary      Ajustar stock de un producto
// @Description  Aplica un delta positivo o negativo sobre el stock actual
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productoId  path  string  true  "ID del producto"
// @Param        body        body  dto.AjusteStockRequest  true  "Delta a aplicar"
// @Success      200  {object}  dto.InventarioResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/inventario/{productoId}/ajuste [patch]
func (h *InventarioHandler) Ajustar(c *fiber.Ctx) error {
	var in dto.AjusteStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Ajustar(c.Context(), c.Params("productoId"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
