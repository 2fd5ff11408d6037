package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proveedor proveedor de camisetas.
type Proveedor struct {
	ID          string
	RazonSocial string
	Contacto    string
	Telefono    string
	Direccion   string
}

// ProductoProveedor asignación producto-proveedor con el precio de costo pactado.
// El par (producto, proveedor) es único.
type ProductoProveedor struct {
	ID              string
	ProductoID      string
	ProveedorID     string
	PrecioCosto     decimal.Decimal
	FechaAsignacion time.Time
}
