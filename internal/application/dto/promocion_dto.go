package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromocionRequest alta o modificación de promoción.
type PromocionRequest struct {
	Codigo      string          `json:"codigo" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Descuento   decimal.Decimal `json:"descuento" validate:"required"`
	FechaInicio time.Time       `json:"fechaInicio" validate:"required"`
	FechaFin    time.Time       `json:"fechaFin" validate:"required"`
	Activa      bool            `json:"activa"`
}

// PromocionResponse promoción serializada.
type PromocionResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Descripcion string          `json:"descripcion"`
	Descuento   decimal.Decimal `json:"descuento"`
	FechaInicio time.Time       `json:"fechaInicio"`
	FechaFin    time.Time       `json:"fechaFin"`
	Activa      bool            `json:"activa"`
	Vigente     bool            `json:"vigente"`
}
