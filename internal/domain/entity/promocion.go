package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promocion descuento porcentual con ventana de vigencia. Se asocia a productos
// mediante la tabla producto_promocion; un producto puede tener varias promociones
// y se aplica la de mayor descuento vigente.
type Promocion struct {
	ID          string
	Codigo      string // único, visible al cliente (ej: "VERANO25")
	Descripcion string
	Descuento   decimal.Decimal // porcentaje
	FechaInicio time.Time
	FechaFin    time.Time
	Activa      bool
}

// Vigente indica si la promoción está activa y dentro de su ventana de fechas.
func (p *Promocion) Vigente(now time.Time) bool {
	return p.Activa && !now.Before(p.FechaInicio) && !now.After(p.FechaFin)
}
