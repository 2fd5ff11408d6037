package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/catalogo"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
)

// CategoriaHandler maneja las categorías del catálogo.
type CategoriaHandler struct {
	uc *catalogo.UseCase
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(uc *catalogo.UseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListCategorias()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categorias
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [get]
func (h *CategoriaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetCategoria(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriaRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/categorias [post]
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.CreateCategoria(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.CategoriaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CategoriaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/categorias/{id} [put]
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateCategoria(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categorias
// @Security     Bearer
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/categorias/{id} [delete]
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteCategoria(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "categoría eliminada"})
}
