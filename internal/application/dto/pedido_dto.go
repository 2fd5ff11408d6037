package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePedidoRequest checkout del carrito del usuario.
type CreatePedidoRequest struct {
	MetodoPago     string `json:"metodoPago" validate:"required"`
	DireccionEnvio string `json:"direccionEnvio" validate:"required"`
}

// UpdatePedidoEstadoRequest cambio de estado de un pedido (admin).
type UpdatePedidoEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// UpdatePagoRequest cambio de estado de un pago (admin).
type UpdatePagoRequest struct {
	Estado               string `json:"estado" validate:"required"`
	IDTransaccionExterna string `json:"idTransaccionExterna"`
}

// UpdateEnvioRequest cambio de estado de un envío (admin).
type UpdateEnvioRequest struct {
	Estado            string `json:"estado" validate:"required"`
	Direccion         string `json:"direccion"`
	CodigoSeguimiento string `json:"codigoSeguimiento"`
}

// DetallePedidoResponse línea de pedido serializada.
type DetallePedidoResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"productoId"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	MontoDescuento decimal.Decimal `json:"montoDescuento"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// PagoResponse pago serializado.
type PagoResponse struct {
	ID                   string          `json:"id"`
	Metodo               string          `json:"metodo"`
	Estado               string          `json:"estado"`
	Monto                decimal.Decimal `json:"monto"`
	FechaPago            *time.Time      `json:"fechaPago,omitempty"`
	IDTransaccionExterna string          `json:"idTransaccionExterna,omitempty"`
}

// EnvioResponse envío serializado.
type EnvioResponse struct {
	ID                string     `json:"id"`
	Direccion         string     `json:"direccion"`
	Estado            string     `json:"estado"`
	CodigoSeguimiento string     `json:"codigoSeguimiento,omitempty"`
	FechaEnvio        *time.Time `json:"fechaEnvio,omitempty"`
}

// PedidoResponse pedido completo con detalles, pago y envío.
type PedidoResponse struct {
	ID        string                  `json:"id"`
	UsuarioID string                  `json:"usuarioId"`
	Fecha     time.Time               `json:"fecha"`
	Estado    string                  `json:"estado"`
	Total     decimal.Decimal         `json:"total"`
	Detalles  []DetallePedidoResponse `json:"detalles"`
	Pago      *PagoResponse           `json:"pago,omitempty"`
	Envio     *EnvioResponse          `json:"envio,omitempty"`
}
