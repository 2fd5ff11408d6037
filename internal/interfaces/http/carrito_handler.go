package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/carrito"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
)

// CarritoHandler maneja el carrito del usuario autenticado.
type CarritoHandler struct {
	uc *carrito.UseCase
}

// NewCarritoHandler construye el handler.
func NewCarritoHandler(uc *carrito.UseCase) *CarritoHandler {
	return &CarritoHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener carrito
// @Description  Devuelve el carrito del usuario autenticado, creándolo si no existe
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CarritoResponse
// @Router       /api/carrito [get]
func (h *CarritoHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetCarrito(GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar ítem al carrito
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "Ítem a agregar"
// @Success      200   {object}  dto.CarritoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carrito/items [post]
func (h *CarritoHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productoId es requerido"})
	}
	out, err := h.uc.AddItem(GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Actualizar cantidad de un ítem
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del detalle"
// @Param        body  body  dto.UpdateItemRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.CarritoResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/carrito/items/{id} [put]
func (h *CarritoHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateItem(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar ítem del carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del detalle"
// @Success      200  {object}  dto.CarritoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/carrito/items/{id} [delete]
func (h *CarritoHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(GetUserID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Vaciar godoc
// @Summary      Vaciar carrito
// @Tags         carrito
// @Security     Bearer
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/carrito [delete]
func (h *CarritoHandler) Vaciar(c *fiber.Ctx) error {
	if err := h.uc.Vaciar(GetUserID(c)); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "carrito vaciado"})
}
