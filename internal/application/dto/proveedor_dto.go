package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProveedorRequest alta o modificación de proveedor.
type ProveedorRequest struct {
	RazonSocial string `json:"razonSocial" validate:"required"`
	Contacto    string `json:"contacto"`
	Telefono    string `json:"telefono"`
	Direccion   string `json:"direccion"`
}

// ProveedorResponse proveedor serializado.
type ProveedorResponse struct {
	ID          string `json:"id"`
	RazonSocial string `json:"razonSocial"`
	Contacto    string `json:"contacto,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
}

// AsignacionRequest asigna un proveedor a un producto con precio de costo.
type AsignacionRequest struct {
	ProductoID  string          `json:"productoId" validate:"required"`
	ProveedorID string          `json:"proveedorId" validate:"required"`
	PrecioCosto decimal.Decimal `json:"precioCosto" validate:"required"`
}

// UpdateAsignacionRequest actualiza el precio de costo de una asignación.
type UpdateAsignacionRequest struct {
	PrecioCosto decimal.Decimal `json:"precioCosto" validate:"required"`
}

// AsignacionResponse asignación producto-proveedor serializada.
type AsignacionResponse struct {
	ID              string          `json:"id"`
	ProductoID      string          `json:"productoId"`
	ProveedorID     string          `json:"proveedorId"`
	PrecioCosto     decimal.Decimal `json:"precioCosto"`
	FechaAsignacion time.Time       `json:"fechaAsignacion"`
}
