package catalogo

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
)

// CreateProducto da de alta un producto y su registro de inventario en cero.
func (uc *UseCase) CreateProducto(req dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if !entity.TallaValida(req.Talla) {
		return nil, domain.ErrInvalidInput
	}
	if req.Precio.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	cat, err := uc.categorias.GetByID(req.CategoriaID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}

	p := &entity.Producto{
		ID:            uuid.NewString(),
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		Talla:         req.Talla,
		Precio:        req.Precio,
		Activo:        true,
		ColorDorsal:   req.ColorDorsal,
		CategoriaID:   req.CategoriaID,
		FechaCreacion: time.Now(),
	}
	if err := uc.productos.Create(p); err != nil {
		return nil, err
	}

	inv := &entity.Inventario{
		ID:                  uuid.NewString(),
		ProductoID:          p.ID,
		Stock:               0,
		UltimaActualizacion: time.Now(),
	}
	if err := uc.inventarios.Create(inv); err != nil {
		return nil, err
	}

	uc.log.Info().Str("producto_id", p.ID).Str("nombre", p.Nombre).Msg("producto creado")
	return uc.responderUno(p)
}

// UpdateProducto modifica los datos base de un producto.
func (uc *UseCase) UpdateProducto(id string, req dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	if !entity.TallaValida(req.Talla) {
		return nil, domain.ErrInvalidInput
	}
	if req.Precio.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	p, err := uc.productos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	cat, err := uc.categorias.GetByID(req.CategoriaID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}

	p.Nombre = req.Nombre
	p.Descripcion = req.Descripcion
	p.Talla = req.Talla
	p.Precio = req.Precio
	p.ColorDorsal = req.ColorDorsal
	p.CategoriaID = req.CategoriaID
	if err := uc.productos.Update(p); err != nil {
		return nil, err
	}

	return uc.responderUno(p)
}

// SetActivoProducto activa o desactiva un producto (borrado lógico).
func (uc *UseCase) SetActivoProducto(id string, activo bool) error {
	p, err := uc.productos.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.productos.SetActivo(id, activo)
}

// GetProducto devuelve la vista completa de un producto.
func (uc *UseCase) GetProducto(id string) (*dto.ProductoResponse, error) {
	p, err := uc.productos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.responderUno(p)
}

// ListCatalogo lista los productos activos para el catálogo público.
func (uc *UseCase) ListCatalogo(page dto.PageRequest) ([]dto.ProductoResponse, error) {
	page.DefaultPage()
	productos, err := uc.productos.List(true, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return uc.armarRespuestas(productos)
}

// ListAdmin lista todos los productos, incluidos los inactivos.
func (uc *UseCase) ListAdmin(page dto.PageRequest) ([]dto.ProductoResponse, error) {
	page.DefaultPage()
	productos, err := uc.productos.List(false, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return uc.armarRespuestas(productos)
}

// ListByCategoria lista productos activos de una categoría por nombre.
func (uc *UseCase) ListByCategoria(nombre string) ([]dto.ProductoResponse, error) {
	cat, err := uc.categorias.GetByNombre(nombre)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}

	productos, err := uc.productos.ListByCategoriaNombre(nombre)
	if err != nil {
		return nil, err
	}
	return uc.armarRespuestas(productos)
}

// SetLeyendas reemplaza el set de leyendas de un producto.
func (uc *UseCase) SetLeyendas(productoID string, reqs []dto.LeyendaRequest) (*dto.ProductoResponse, error) {
	p, err := uc.productos.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	leyendas := make([]*entity.Leyenda, 0, len(reqs))
	for _, r := range reqs {
		leyendas = append(leyendas, &entity.Leyenda{
			ID:         uuid.NewString(),
			ProductoID: productoID,
			// El nombre del dorsal se estampa siempre en mayúsculas.
			Nombre: strings.ToUpper(strings.TrimSpace(r.Nombre)),
			Numero: r.Numero,
		})
	}
	if err := uc.productos.ReplaceLeyendas(productoID, leyendas); err != nil {
		return nil, err
	}

	return uc.responderUno(p)
}

// SetImagenPrincipal fija la URL de la imagen principal del producto.
func (uc *UseCase) SetImagenPrincipal(productoID, url string) error {
	p, err := uc.productos.GetByID(productoID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.productos.SetImageURL(productoID, url)
}

// AddImagenGaleria agrega una imagen a la galería del producto.
func (uc *UseCase) AddImagenGaleria(productoID, url string) (*entity.ImagenProducto, error) {
	p, err := uc.productos.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	img := &entity.ImagenProducto{
		ID:         uuid.NewString(),
		ProductoID: productoID,
		URL:        url,
	}
	if err := uc.productos.AddImagen(img); err != nil {
		return nil, err
	}
	return img, nil
}

// DeleteImagenGaleria elimina una imagen de la galería.
func (uc *UseCase) DeleteImagenGaleria(imagenID string) error {
	return uc.productos.DeleteImagen(imagenID)
}

func (uc *UseCase) responderUno(p *entity.Producto) (*dto.ProductoResponse, error) {
	respuestas, err := uc.armarRespuestas([]*entity.Producto{p})
	if err != nil {
		return nil, err
	}
	return &respuestas[0], nil
}
