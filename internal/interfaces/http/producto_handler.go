package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/catalogo"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
)

// ProductoHandler maneja el catálogo de productos (lectura pública, gestión admin).
type ProductoHandler struct {
	uc *catalogo.UseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *catalogo.UseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List godoc
// @Summary      Catálogo público (solo productos activos, con precio efectivo)
// @Tags         productos
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListCatalogo(page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListAdmin godoc
// @Summary      Listar todos los productos, incluidos inactivos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.ProductoResponse
// @Router       /api/admin/productos [get]
func (h *ProductoHandler) ListAdmin(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListAdmin(page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetProducto(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListByCategoria godoc
// @Summary      Listar productos activos de una categoría
// @Tags         productos
// @Produce      json
// @Param        nombre  path  string  true  "Nombre de la categoría"
// @Success      200     {array}  dto.ProductoResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/productos/categoria/{nombre} [get]
func (h *ProductoHandler) ListByCategoria(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategoria(c.Params("nombre"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.CategoriaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y categoriaId son requeridos"})
	}
	out, err := h.uc.CreateProducto(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProducto(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Activar godoc
// @Summary      Activar producto
// @Tags         productos
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/productos/{id}/activar [patch]
func (h *ProductoHandler) Activar(c *fiber.Ctx) error {
	if err := h.uc.SetActivoProducto(c.Params("id"), true); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto activado"})
}

// Desactivar godoc
// @Summary      Desactivar producto (borrado lógico)
// @Tags         productos
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/productos/{id}/desactivar [patch]
func (h *ProductoHandler) Desactivar(c *fiber.Ctx) error {
	if err := h.uc.SetActivoProducto(c.Params("id"), false); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto desactivado"})
}

// SetLeyendas godoc
// @Summary      Reemplazar las leyendas de un producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  []dto.LeyendaRequest  true  "Leyendas"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/productos/{id}/leyendas [put]
func (h *ProductoHandler) SetLeyendas(c *fiber.Ctx) error {
	var in []dto.LeyendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetLeyendas(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
