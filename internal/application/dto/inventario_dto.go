package dto

import "time"

// SetStockRequest fija el stock absoluto de un producto.
type SetStockRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

// AjusteStockRequest ajuste relativo (positivo o negativo) de stock.
type AjusteStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// InventarioResponse registro de inventario serializado.
type InventarioResponse struct {
	ID                  string    `json:"id"`
	ProductoID          string    `json:"productoId"`
	NombreProducto      string    `json:"nombreProducto,omitempty"`
	Stock               int       `json:"stock"`
	UltimaActualizacion time.Time `json:"ultimaActualizacion"`
}
