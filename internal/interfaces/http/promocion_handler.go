package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/catalogo"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
)

// PromocionHandler maneja las promociones y su asociación a productos (admin).
type PromocionHandler struct {
	uc *catalogo.UseCase
}

// NewPromocionHandler construye el handler.
func NewPromocionHandler(uc *catalogo.UseCase) *PromocionHandler {
	return &PromocionHandler{uc: uc}
}

// List godoc
// @Summary      Listar promociones
// @Tags         promociones
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.PromocionResponse
// @Router       /api/promociones [get]
func (h *PromocionHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListPromociones(page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener promoción por ID
// @Tags         promociones
// @Produce      json
// @Param        id   path  string  true  "ID de la promoción"
// @Success      200  {object}  dto.PromocionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promociones/{id} [get]
func (h *PromocionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetPromocion(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear promoción
// @Tags         promociones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PromocionRequest  true  "Datos de la promoción"
// @Success      201   {object}  dto.PromocionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/promociones [post]
func (h *PromocionHandler) Create(c *fiber.Ctx) error {
	var in dto.PromocionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo es requerido"})
	}
	out, err := h.uc.CreatePromocion(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar promoción
// @Tags         promociones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la promoción"
// @Param        body  body  dto.PromocionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PromocionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/promociones/{id} [put]
func (h *PromocionHandler) Update(c *fiber.Ctx) error {
	var in dto.PromocionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePromocion(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Activar godoc
// @Summary      Activar promoción
// @Tags         promociones
// @Security     Bearer
// @Param        id  path  string  true  "ID de la promoción"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/admin/promociones/{id}/activar [patch]
func (h *PromocionHandler) Activar(c *fiber.Ctx) error {
	if err := h.uc.SetActivaPromocion(c.Params("id"), true); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "promoción activada"})
}

// Desactivar godoc
// @Summary      Desactivar promoción
// @Tags         promociones
// @Security     Bearer
// @Param        id  path  string  true  "ID de la promoción"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/admin/promociones/{id}/desactivar [patch]
func (h *PromocionHandler) Desactivar(c *fiber.Ctx) error {
	if err := h.uc.SetActivaPromocion(c.Params("id"), false); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "promoción desactivada"})
}

// Asociar godoc
// @Summary      Asociar promoción a producto
// @Tags         promociones
// @Security     Bearer
// @Param        id          path  string  true  "ID de la promoción"
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/promociones/{id}/productos/{productoId} [post]
func (h *PromocionHandler) Asociar(c *fiber.Ctx) error {
	if err := h.uc.AsociarPromocion(c.Params("id"), c.Params("productoId")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "promoción asociada al producto"})
}

// Desasociar godoc
// @Summary      Desasociar promoción de producto
// @Tags         promociones
// @Security     Bearer
// @Param        id          path  string  true  "ID de la promoción"
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/admin/promociones/{id}/productos/{productoId} [delete]
func (h *PromocionHandler) Desasociar(c *fiber.Ctx) error {
	if err := h.uc.DesasociarPromocion(c.Params("id"), c.Params("productoId")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "promoción desasociada del producto"})
}
