package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Carrito carrito de compras (uno por usuario).
type Carrito struct {
	ID            string
	UsuarioID     string
	FechaCreacion time.Time
}

// DetalleCarrito línea del carrito. PrecioBase es un snapshot del precio del
// producto al momento de agregarlo; la personalización (nombre/número del dorsal)
// y el parche suman recargos al subtotal de la línea.
type DetalleCarrito struct {
	ID         string
	CarritoID  string
	ProductoID string
	Cantidad   int
	PrecioBase decimal.Decimal

	// Personalización opcional del dorsal
	Personalizado bool
	PersTipo      string
	PersNombre    string
	PersNumero    string
	PersPrecio    decimal.Decimal

	// Parche opcional (ej: parche de liga)
	ParcheTipo   string
	ParchePrecio decimal.Decimal
}

// Subtotal de la línea: (precio base + recargo personalización + recargo parche) × cantidad.
func (d *DetalleCarrito) Subtotal() decimal.Decimal {
	unitario := d.PrecioBase.Add(d.PersPrecio).Add(d.ParchePrecio)
	return unitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}
