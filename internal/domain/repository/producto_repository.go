package repository

import "github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"

// ProductoRepository puerto de persistencia de productos, su galería y sus leyendas.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	ByIDs(ids []string) (map[string]*entity.Producto, error)
	// List pagina productos; soloActivos filtra el catálogo público.
	List(soloActivos bool, limit, offset int) ([]*entity.Producto, error)
	ListByCategoriaNombre(nombre string) ([]*entity.Producto, error)
	Update(p *entity.Producto) error
	SetActivo(id string, activo bool) error
	SetImageURL(id, url string) error

	AddImagen(img *entity.ImagenProducto) error
	DeleteImagen(imagenID string) error
	GaleriaPorProductos(ids []string) (map[string][]*entity.ImagenProducto, error)

	// ReplaceLeyendas reemplaza el set completo de leyendas del producto.
	ReplaceLeyendas(productoID string, leyendas []*entity.Leyenda) error
	LeyendasPorProductos(ids []string) (map[string][]*entity.Leyenda, error)
}
