package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	PedidoPendiente = "PENDIENTE"
	PedidoPagado    = "PAGADO"
	PedidoEnviado   = "ENVIADO"
	PedidoEntregado = "ENTREGADO"
	PedidoCancelado = "CANCELADO"
)

// EstadoPedidoValido indica si el estado pertenece al ciclo de vida soportado.
func EstadoPedidoValido(estado string) bool {
	switch estado {
	case PedidoPendiente, PedidoPagado, PedidoEnviado, PedidoEntregado, PedidoCancelado:
		return true
	}
	return false
}

// Pedido orden de compra. Se crea PENDIENTE desde el carrito; los pedidos
// PENDIENTE con más de 24 horas se cancelan por el job de mantenimiento.
type Pedido struct {
	ID        string
	UsuarioID string
	Fecha     time.Time
	Estado    string
	Total     decimal.Decimal
}

// DetallePedido línea del pedido con snapshot del precio efectivo al momento de la compra.
type DetallePedido struct {
	ID             string
	PedidoID       string
	ProductoID     string
	NombreProducto string
	Cantidad       int
	PrecioUnitario decimal.Decimal // precio efectivo por unidad (descuento aplicado, recargos incluidos)
	MontoDescuento decimal.Decimal // (precio original - precio efectivo) × cantidad
	Subtotal       decimal.Decimal
}
