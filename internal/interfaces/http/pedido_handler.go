package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/pedido"
)

// PedidoHandler maneja el checkout y el ciclo de vida de los pedidos.
type PedidoHandler struct {
	uc *pedido.UseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *pedido.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido (checkout)
// @Description  Convierte el carrito del usuario en un pedido, descontando stock
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePedidoRequest  true  "Método de pago y dirección"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePedido(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Listar mis pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PedidoResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByUsuario(GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetMine godoc
// @Summary      Obtener un pedido propio
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetPedido(c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Recibo godoc
// @Summary      Descargar recibo del pedido en PDF
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {file}  file
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/recibo [get]
func (h *PedidoHandler) Recibo(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Recibo(id, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="recibo-%s.pdf"`, id))
	return c.Send(pdf)
}

// ListAdmin godoc
// @Summary      Listar todos los pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.PedidoResponse
// @Router       /api/admin/pedidos [get]
func (h *PedidoHandler) ListAdmin(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListAdmin(page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetAdmin godoc
// @Summary      Obtener cualquier pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/pedidos/{id} [get]
func (h *PedidoHandler) GetAdmin(c *fiber.Ctx) error {
	out, err := h.uc.GetPedido(c.Params("id"), "")
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateEstado godoc
// @Summary      Actualizar estado del pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdatePedidoEstadoRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/pedidos/{id}/estado [put]
func (h *PedidoHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdatePedidoEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateEstado(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdatePago godoc
// @Summary      Actualizar estado del pago
// @Description  Al completar el pago sella la fecha y pasa el pedido a PAGADO
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdatePagoRequest  true  "Nuevo estado del pago"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/pedidos/{id}/pago [put]
func (h *PedidoHandler) UpdatePago(c *fiber.Ctx) error {
	var in dto.UpdatePagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePago(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateEnvio godoc
// @Summary      Actualizar estado del envío
// @Description  Al despachar sella la fecha de envío y pasa el pedido a ENVIADO
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateEnvioRequest  true  "Nuevo estado del envío"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/pedidos/{id}/envio [put]
func (h *PedidoHandler) UpdateEnvio(c *fiber.Ctx) error {
	var in dto.UpdateEnvioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateEnvio(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         pedidos
// @Security     Bearer
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/pedidos/{id} [delete]
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido eliminado"})
}
