// Package catalogo implementa la gestión de productos, categorías y
// promociones, y arma la vista de catálogo con el precio efectivo.
package catalogo

import (
	"time"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/pricing"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

// UseCase reglas de catálogo.
type UseCase struct {
	productos   repository.ProductoRepository
	categorias  repository.CategoriaRepository
	promociones repository.PromocionRepository
	inventarios repository.InventarioRepository
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(
	productos repository.ProductoRepository,
	categorias repository.CategoriaRepository,
	promociones repository.PromocionRepository,
	inventarios repository.InventarioRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		productos:   productos,
		categorias:  categorias,
		promociones: promociones,
		inventarios: inventarios,
		log:         log,
	}
}

// armarRespuestas construye las vistas de producto resolviendo stock, galería,
// leyendas y promociones en lote para evitar una consulta por producto.
func (uc *UseCase) armarRespuestas(productos []*entity.Producto) ([]dto.ProductoResponse, error) {
	if len(productos) == 0 {
		return []dto.ProductoResponse{}, nil
	}

	ids := make([]string, 0, len(productos))
	for _, p := range productos {
		ids = append(ids, p.ID)
	}

	stocks, err := uc.inventarios.PorProductos(ids)
	if err != nil {
		return nil, err
	}
	galerias, err := uc.productos.GaleriaPorProductos(ids)
	if err != nil {
		return nil, err
	}
	leyendas, err := uc.productos.LeyendasPorProductos(ids)
	if err != nil {
		return nil, err
	}
	promos, err := uc.promociones.PorProductos(ids)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		result = append(result, armarRespuesta(p, stocks[p.ID], galerias[p.ID], leyendas[p.ID], promos[p.ID], now))
	}
	return result, nil
}

func armarRespuesta(
	p *entity.Producto,
	inv *entity.Inventario,
	galeria []*entity.ImagenProducto,
	leyendas []*entity.Leyenda,
	promos []*entity.Promocion,
	now time.Time,
) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:                   p.ID,
		Nombre:               p.Nombre,
		Descripcion:          p.Descripcion,
		Talla:                p.Talla,
		Precio:               p.Precio,
		Activo:               p.Activo,
		ColorDorsal:          p.ColorDorsal,
		CategoriaID:          p.CategoriaID,
		ImageURL:             p.ImageURL,
		Galeria:              []string{},
		Leyendas:             []dto.LeyendaResponse{},
		PromocionesAsociadas: []dto.PromocionResumen{},
	}

	if inv != nil {
		resp.Stock = inv.Stock
	}
	for _, img := range galeria {
		resp.Galeria = append(resp.Galeria, img.URL)
	}
	for _, l := range leyendas {
		resp.Leyendas = append(resp.Leyendas, dto.LeyendaResponse{ID: l.ID, Nombre: l.Nombre, Numero: l.Numero})
	}
	for _, pr := range promos {
		resp.PromocionesAsociadas = append(resp.PromocionesAsociadas, dto.PromocionResumen{
			ID: pr.ID, Codigo: pr.Codigo, Descuento: pr.Descuento, Activa: pr.Activa,
		})
	}

	// Precio efectivo: mejor promoción vigente, si la hay.
	final, promo := pricing.PrecioFinal(p.Precio, promos, now)
	if promo != nil {
		original := p.Precio
		descuento := promo.Descuento
		resp.Precio = final
		resp.PrecioOriginal = &original
		resp.DescuentoAplicado = &descuento
		resp.NombrePromocion = promo.Codigo
	}

	return resp
}
