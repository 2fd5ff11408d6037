package repository

import "github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"

// CarritoRepository puerto de persistencia del carrito y sus líneas.
type CarritoRepository interface {
	Create(c *entity.Carrito) error
	GetByUsuario(usuarioID string) (*entity.Carrito, error)
	Detalles(carritoID string) ([]*entity.DetalleCarrito, error)
	GetDetalle(detalleID string) (*entity.DetalleCarrito, error)
	CreateDetalle(d *entity.DetalleCarrito) error
	UpdateDetalleCantidad(detalleID string, cantidad int) error
	DeleteDetalle(detalleID string) error
	// DeleteDetalles vacía el carrito (se usa al confirmar un pedido).
	DeleteDetalles(carritoID string) error
}
