package dto

import "github.com/shopspring/decimal"

// PersonalizacionRequest personalización de dorsal sobre una línea del carrito.
type PersonalizacionRequest struct {
	Tipo   string          `json:"tipo" validate:"required"`
	Nombre string          `json:"nombre"`
	Numero string          `json:"numero"`
	Precio decimal.Decimal `json:"precio"`
}

// ParcheRequest parche opcional sobre una línea del carrito.
type ParcheRequest struct {
	Tipo   string          `json:"tipo" validate:"required"`
	Precio decimal.Decimal `json:"precio"`
}

// AddItemRequest agrega un producto al carrito del usuario.
type AddItemRequest struct {
	ProductoID      string                  `json:"productoId" validate:"required"`
	Cantidad        int                     `json:"cantidad" validate:"required,min=1"`
	Personalizacion *PersonalizacionRequest `json:"personalizacion,omitempty"`
	Parche          *ParcheRequest          `json:"parche,omitempty"`
}

// UpdateItemRequest cambia la cantidad de una línea del carrito.
type UpdateItemRequest struct {
	Cantidad int `json:"cantidad" validate:"required,min=1"`
}

// CarritoItemResponse línea del carrito serializada.
type CarritoItemResponse struct {
	ID              string                  `json:"id"`
	ProductoID      string                  `json:"productoId"`
	NombreProducto  string                  `json:"nombreProducto"`
	ImageURL        string                  `json:"imageUrl,omitempty"`
	Cantidad        int                     `json:"cantidad"`
	PrecioBase      decimal.Decimal         `json:"precioBase"`
	Personalizado   bool                    `json:"personalizado"`
	Personalizacion *PersonalizacionRequest `json:"personalizacion,omitempty"`
	Parche          *ParcheRequest          `json:"parche,omitempty"`
	StockDisponible int                     `json:"stockDisponible"`
	Subtotal        decimal.Decimal         `json:"subtotal"`
}

// CarritoResponse carrito completo con total calculado.
type CarritoResponse struct {
	ID    string                `json:"id"`
	Items []CarritoItemResponse `json:"items"`
	Total decimal.Decimal       `json:"total"`
}
