package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
)

// ProveedorRepository puerto de persistencia de proveedores.
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	Update(p *entity.Proveedor) error
	Delete(id string) error
	List() ([]*entity.Proveedor, error)
	// TieneAsignaciones indica si el proveedor tiene productos asignados (bloquea el borrado).
	TieneAsignaciones(proveedorID string) (bool, error)
}

// AsignacionRepository puerto de persistencia de asignaciones producto-proveedor.
type AsignacionRepository interface {
	Create(a *entity.ProductoProveedor) error
	GetByID(id string) (*entity.ProductoProveedor, error)
	PorProducto(productoID string) ([]*entity.ProductoProveedor, error)
	PorProveedor(proveedorID string) ([]*entity.ProductoProveedor, error)
	Existe(productoID, proveedorID string) (bool, error)
	UpdatePrecio(id string, precio decimal.Decimal) error
	Delete(id string) error
}
