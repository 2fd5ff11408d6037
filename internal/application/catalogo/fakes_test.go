package catalogo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

// Fakes en memoria de los repositorios de catálogo.

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
	galeria   map[string][]*entity.ImagenProducto
	leyendas  map[string][]*entity.Leyenda
}

var _ repository.ProductoRepository = (*fakeProductoRepo)(nil)

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{
		productos: make(map[string]*entity.Producto),
		galeria:   make(map[string][]*entity.ImagenProducto),
		leyendas:  make(map[string][]*entity.Leyenda),
	}
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error          { r.productos[p.ID] = p; return nil }
func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) { return r.productos[id], nil }

func (r *fakeProductoRepo) ByIDs(ids []string) (map[string]*entity.Producto, error) {
	result := make(map[string]*entity.Producto)
	for _, id := range ids {
		if p, ok := r.productos[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

func (r *fakeProductoRepo) List(soloActivos bool, limit, offset int) ([]*entity.Producto, error) {
	var result []*entity.Producto
	for _, p := range r.productos {
		if soloActivos && !p.Activo {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (r *fakeProductoRepo) ListByCategoriaNombre(nombre string) ([]*entity.Producto, error) {
	var result []*entity.Producto
	for _, p := range r.productos {
		if p.Activo {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error { r.productos[p.ID] = p; return nil }

func (r *fakeProductoRepo) SetActivo(id string, activo bool) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = activo
	}
	return nil
}

func (r *fakeProductoRepo) SetImageURL(id, url string) error {
	if p, ok := r.productos[id]; ok {
		p.ImageURL = url
	}
	return nil
}

func (r *fakeProductoRepo) AddImagen(img *entity.ImagenProducto) error {
	r.galeria[img.ProductoID] = append(r.galeria[img.ProductoID], img)
	return nil
}

func (r *fakeProductoRepo) DeleteImagen(imagenID string) error {
	for pid, imgs := range r.galeria {
		for i, img := range imgs {
			if img.ID == imagenID {
				r.galeria[pid] = append(imgs[:i], imgs[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductoRepo) GaleriaPorProductos(ids []string) (map[string][]*entity.ImagenProducto, error) {
	result := make(map[string][]*entity.ImagenProducto)
	for _, id := range ids {
		if imgs, ok := r.galeria[id]; ok {
			result[id] = imgs
		}
	}
	return result, nil
}

func (r *fakeProductoRepo) ReplaceLeyendas(productoID string, leyendas []*entity.Leyenda) error {
	r.leyendas[productoID] = leyendas
	return nil
}

func (r *fakeProductoRepo) LeyendasPorProductos(ids []string) (map[string][]*entity.Leyenda, error) {
	result := make(map[string][]*entity.Leyenda)
	for _, id := range ids {
		if ls, ok := r.leyendas[id]; ok {
			result[id] = ls
		}
	}
	return result, nil
}

type fakeCategoriaRepo struct {
	categorias map[string]*entity.Categoria
}

var _ repository.CategoriaRepository = (*fakeCategoriaRepo)(nil)

func newFakeCategoriaRepo() *fakeCategoriaRepo {
	return &fakeCategoriaRepo{categorias: make(map[string]*entity.Categoria)}
}

func (r *fakeCategoriaRepo) Create(c *entity.Categoria) error {
	for _, existente := range r.categorias {
		if existente.Nombre == c.Nombre {
			return domain.ErrDuplicate
		}
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *fakeCategoriaRepo) GetByID(id string) (*entity.Categoria, error) { return r.categorias[id], nil }

func (r *fakeCategoriaRepo) GetByNombre(nombre string) (*entity.Categoria, error) {
	for _, c := range r.categorias {
		if c.Nombre == nombre {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoriaRepo) Update(c *entity.Categoria) error { r.categorias[c.ID] = c; return nil }
func (r *fakeCategoriaRepo) Delete(id string) error           { delete(r.categorias, id); return nil }

func (r *fakeCategoriaRepo) List() ([]*entity.Categoria, error) {
	var result []*entity.Categoria
	for _, c := range r.categorias {
		result = append(result, c)
	}
	return result, nil
}

type fakePromocionRepo struct {
	promos      map[string]*entity.Promocion
	porProducto map[string][]string // productoID -> promocionIDs
}

var _ repository.PromocionRepository = (*fakePromocionRepo)(nil)

func newFakePromocionRepo() *fakePromocionRepo {
	return &fakePromocionRepo{
		promos:      make(map[string]*entity.Promocion),
		porProducto: make(map[string][]string),
	}
}

func (r *fakePromocionRepo) Create(p *entity.Promocion) error          { r.promos[p.ID] = p; return nil }
func (r *fakePromocionRepo) GetByID(id string) (*entity.Promocion, error) { return r.promos[id], nil }
func (r *fakePromocionRepo) Update(p *entity.Promocion) error          { r.promos[p.ID] = p; return nil }

func (r *fakePromocionRepo) SetActiva(id string, activa bool) error {
	if p, ok := r.promos[id]; ok {
		p.Activa = activa
	}
	return nil
}

func (r *fakePromocionRepo) List(limit, offset int) ([]*entity.Promocion, error) {
	var result []*entity.Promocion
	for _, p := range r.promos {
		result = append(result, p)
	}
	return result, nil
}

func (r *fakePromocionRepo) Asociar(promocionID, productoID string) error {
	r.porProducto[productoID] = append(r.porProducto[productoID], promocionID)
	return nil
}

func (r *fakePromocionRepo) Desasociar(promocionID, productoID string) error {
	ids := r.porProducto[productoID]
	for i, id := range ids {
		if id == promocionID {
			r.porProducto[productoID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePromocionRepo) PorProducto(productoID string) ([]*entity.Promocion, error) {
	var result []*entity.Promocion
	for _, id := range r.porProducto[productoID] {
		if p, ok := r.promos[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePromocionRepo) PorProductos(ids []string) (map[string][]*entity.Promocion, error) {
	result := make(map[string][]*entity.Promocion)
	for _, id := range ids {
		promos, err := r.PorProducto(id)
		if err != nil {
			return nil, err
		}
		if len(promos) > 0 {
			result[id] = promos
		}
	}
	return result, nil
}

type fakeInventarioRepo struct {
	porProducto map[string]*entity.Inventario
}

var _ repository.InventarioRepository = (*fakeInventarioRepo)(nil)

func newFakeInventarioRepo() *fakeInventarioRepo {
	return &fakeInventarioRepo{porProducto: make(map[string]*entity.Inventario)}
}

func (r *fakeInventarioRepo) Create(inv *entity.Inventario) error {
	r.porProducto[inv.ProductoID] = inv
	return nil
}

func (r *fakeInventarioRepo) GetByProducto(productoID string) (*entity.Inventario, error) {
	return r.porProducto[productoID], nil
}

func (r *fakeInventarioRepo) GetByProductoForUpdate(productoID string) (*entity.Inventario, error) {
	return r.porProducto[productoID], nil
}

func (r *fakeInventarioRepo) Update(inv *entity.Inventario) error {
	r.porProducto[inv.ProductoID] = inv
	return nil
}

func (r *fakeInventarioRepo) List() ([]*entity.Inventario, error) {
	var result []*entity.Inventario
	for _, inv := range r.porProducto {
		result = append(result, inv)
	}
	return result, nil
}

func (r *fakeInventarioRepo) PorProductos(ids []string) (map[string]*entity.Inventario, error) {
	result := make(map[string]*entity.Inventario)
	for _, id := range ids {
		if inv, ok := r.porProducto[id]; ok {
			result[id] = inv
		}
	}
	return result, nil
}

// newTestUseCase arma el caso de uso con todos los fakes.
func newTestUseCase() (*UseCase, *fakeProductoRepo, *fakeCategoriaRepo, *fakePromocionRepo, *fakeInventarioRepo) {
	productos := newFakeProductoRepo()
	categorias := newFakeCategoriaRepo()
	promos := newFakePromocionRepo()
	inventarios := newFakeInventarioRepo()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewUseCase(productos, categorias, promos, inventarios, log), productos, categorias, promos, inventarios
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func promoVigente(id, codigo, descuento string) *entity.Promocion {
	return &entity.Promocion{
		ID:          id,
		Codigo:      codigo,
		Descuento:   dec(descuento),
		FechaInicio: time.Now().Add(-time.Hour),
		FechaFin:    time.Now().Add(time.Hour),
		Activa:      true,
	}
}
