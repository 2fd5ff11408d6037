// Package pricing calcula el precio efectivo de un producto según sus
// promociones: de las vigentes se toma la de mayor descuento y se aplica solo
// si el porcentaje está en (0, 100].
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// Mejor devuelve la promoción vigente con mayor descuento, o nil si no hay ninguna.
func Mejor(promos []*entity.Promocion, now time.Time) *entity.Promocion {
	var mejor *entity.Promocion
	for _, p := range promos {
		if p == nil || !p.Vigente(now) {
			continue
		}
		if mejor == nil || p.Descuento.GreaterThan(mejor.Descuento) {
			mejor = p
		}
	}
	return mejor
}

// Aplicable indica si el porcentaje de descuento puede aplicarse: 0 < d <= 100.
func Aplicable(descuento decimal.Decimal) bool {
	return descuento.GreaterThan(decimal.Zero) && descuento.LessThanOrEqual(cien)
}

// ConDescuento aplica el porcentaje al precio y redondea a 2 decimales (half-up).
func ConDescuento(precio, descuento decimal.Decimal) decimal.Decimal {
	factor := cien.Sub(descuento).Div(cien)
	return precio.Mul(factor).Round(2)
}

// PrecioFinal resuelve el precio efectivo de un producto: elige la mejor
// promoción vigente y la aplica si el descuento está en rango. Devuelve el
// precio final y la promoción aplicada (nil si se cobra el precio base).
func PrecioFinal(precio decimal.Decimal, promos []*entity.Promocion, now time.Time) (decimal.Decimal, *entity.Promocion) {
	mejor := Mejor(promos, now)
	if mejor == nil || !Aplicable(mejor.Descuento) {
		return precio, nil
	}
	return ConDescuento(precio, mejor.Descuento), mejor
}
