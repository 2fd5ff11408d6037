package repository

import "github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"

// InventarioRepository puerto de persistencia de stock (una fila por producto).
type InventarioRepository interface {
	Create(inv *entity.Inventario) error
	GetByProducto(productoID string) (*entity.Inventario, error)
	// GetByProductoForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una transacción.
	GetByProductoForUpdate(productoID string) (*entity.Inventario, error)
	Update(inv *entity.Inventario) error
	List() ([]*entity.Inventario, error)
	PorProductos(ids []string) (map[string]*entity.Inventario, error)
}
