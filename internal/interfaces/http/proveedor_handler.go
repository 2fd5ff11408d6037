package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/proveedor"
)

// ProveedorHandler maneja proveedores y sus asignaciones a productos (admin).
type ProveedorHandler struct {
	uc *proveedor.UseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *proveedor.UseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProveedorResponse
// @Router       /api/admin/proveedores [get]
func (h *ProveedorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.ProveedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/proveedores/{id} [get]
func (h *ProveedorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProveedorRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.ProveedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/proveedores [post]
func (h *ProveedorHandler) Create(c *fiber.Ctx) error {
	var in dto.ProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RazonSocial == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "razonSocial es requerida"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.ProveedorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProveedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/proveedores/{id} [put]
func (h *ProveedorHandler) Update(c *fiber.Ctx) error {
	var in dto.ProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Description  Falla con 409 si el proveedor tiene productos asignados
// @Tags         proveedores
// @Security     Bearer
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/proveedores/{id} [delete]
func (h *ProveedorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "proveedor eliminado"})
}

// Asignar godoc
// @Summary      Asignar proveedor a producto
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AsignacionRequest  true  "Asignación y precio de costo"
// @Success      201   {object}  dto.AsignacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/asignaciones [post]
func (h *ProveedorHandler) Asignar(c *fiber.Ctx) error {
	var in dto.AsignacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductoID == "" || in.ProveedorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productoId y proveedorId son requeridos"})
	}
	out, err := h.uc.Asignar(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePrecioCosto godoc
// @Summary      Actualizar precio de costo de una asignación
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la asignación"
// @Param        body  body  dto.UpdateAsignacionRequest  true  "Nuevo precio de costo"
// @Success      200   {object}  dto.AsignacionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/asignaciones/{id} [put]
func (h *ProveedorHandler) UpdatePrecioCosto(c *fiber.Ctx) error {
	var in dto.UpdateAsignacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePrecioCosto(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Desasignar godoc
// @Summary      Eliminar una asignación
// @Tags         proveedores
// @Security     Bearer
// @Param        id  path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/asignaciones/{id} [delete]
func (h *ProveedorHandler) Desasignar(c *fiber.Ctx) error {
	if err := h.uc.Desasignar(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "asignación eliminada"})
}

// AsignacionesPorProducto godoc
// @Summary      Listar proveedores asignados a un producto
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.AsignacionResponse
// @Router       /api/admin/asignaciones/producto/{productoId} [get]
func (h *ProveedorHandler) AsignacionesPorProducto(c *fiber.Ctx) error {
	out, err := h.uc.AsignacionesPorProducto(c.Params("productoId"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// AsignacionesPorProveedor godoc
// @Summary      Listar productos asignados a un proveedor
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        proveedorId  path  string  true  "ID del proveedor"
// @Success      200  {array}  dto.AsignacionResponse
// @Router       /api/admin/asignaciones/proveedor/{proveedorId} [get]
func (h *ProveedorHandler) AsignacionesPorProveedor(c *fiber.Ctx) error {
	out, err := h.uc.AsignacionesPorProveedor(c.Params("proveedorId"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
