package dto

import "github.com/shopspring/decimal"

// CreateProductoRequest alta de producto en el catálogo.
type CreateProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Talla       string          `json:"talla" validate:"required"`
	Precio      decimal.Decimal `json:"precio" validate:"required"`
	ColorDorsal string          `json:"colorDorsal"`
	CategoriaID string          `json:"categoriaId" validate:"required"`
}

// UpdateProductoRequest modificación de producto.
type UpdateProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Talla       string          `json:"talla" validate:"required"`
	Precio      decimal.Decimal `json:"precio" validate:"required"`
	ColorDorsal string          `json:"colorDorsal"`
	CategoriaID string          `json:"categoriaId" validate:"required"`
}

// LeyendaRequest leyenda histórica asociada a un producto.
type LeyendaRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Numero int    `json:"numero" validate:"min=0"`
}

// PromocionResumen vista reducida de una promoción asociada.
type PromocionResumen struct {
	ID        string          `json:"id"`
	Codigo    string          `json:"codigo"`
	Descuento decimal.Decimal `json:"descuento"`
	Activa    bool            `json:"activa"`
}

// LeyendaResponse leyenda serializada en respuestas de catálogo.
type LeyendaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Numero int    `json:"numero"`
}

// ProductoResponse vista de catálogo con precio efectivo calculado.
type ProductoResponse struct {
	ID                   string             `json:"id"`
	Nombre               string             `json:"nombre"`
	Descripcion          string             `json:"descripcion"`
	Talla                string             `json:"talla"`
	Precio               decimal.Decimal    `json:"precio"`
	PrecioOriginal       *decimal.Decimal   `json:"precioOriginal,omitempty"`
	DescuentoAplicado    *decimal.Decimal   `json:"descuentoAplicado,omitempty"`
	NombrePromocion      string             `json:"nombrePromocion,omitempty"`
	Activo               bool               `json:"activo"`
	ColorDorsal          string             `json:"colorDorsal,omitempty"`
	CategoriaID          string             `json:"categoriaId"`
	ImageURL             string             `json:"imageUrl,omitempty"`
	Stock                int                `json:"stock"`
	Galeria              []string           `json:"galeria"`
	Leyendas             []LeyendaResponse  `json:"leyendas"`
	PromocionesAsociadas []PromocionResumen `json:"promocionesAsociadas"`
}
