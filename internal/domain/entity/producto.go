package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tallas disponibles para camisetas.
const (
	TallaS  = "S"
	TallaM  = "M"
	TallaL  = "L"
	TallaXL = "XL"
)

// TallaValida indica si la talla pertenece al catálogo soportado.
func TallaValida(talla string) bool {
	switch talla {
	case TallaS, TallaM, TallaL, TallaXL:
		return true
	}
	return false
}

// Producto camiseta retro del catálogo. Precio es el precio base sin descuento;
// el precio efectivo se calcula con las promociones vigentes al momento de la consulta.
// Un producto inactivo no aparece en el catálogo público ni puede agregarse al carrito.
type Producto struct {
	ID            string
	Nombre        string
	Descripcion   string
	Talla         string
	Precio        decimal.Decimal
	Activo        bool
	ColorDorsal   string
	CategoriaID   string
	ImageURL      string
	FechaCreacion time.Time
}

// ImagenProducto imagen adicional de la galería del producto.
type ImagenProducto struct {
	ID         string
	ProductoID string
	URL        string
}

// Leyenda texto decorativo del dorsal (nombre y número históricos del jugador).
type Leyenda struct {
	ID         string
	ProductoID string
	Nombre     string
	Numero     int
}
