package repository

import "github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"

// PromocionRepository puerto de persistencia de promociones y su asociación a productos.
type PromocionRepository interface {
	Create(p *entity.Promocion) error
	GetByID(id string) (*entity.Promocion, error)
	Update(p *entity.Promocion) error
	SetActiva(id string, activa bool) error
	List(limit, offset int) ([]*entity.Promocion, error)

	Asociar(promocionID, productoID string) error
	Desasociar(promocionID, productoID string) error
	PorProducto(productoID string) ([]*entity.Promocion, error)
	PorProductos(ids []string) (map[string][]*entity.Promocion, error)
}
