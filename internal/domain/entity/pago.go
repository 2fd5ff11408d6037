package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	MetodoYape          = "YAPE"
	MetodoPlin          = "PLIN"
	MetodoTarjeta       = "TARJETA"
	MetodoPaypal        = "PAYPAL"
	MetodoTransferencia = "TRANSFERENCIA"
)

// Estados de un pago.
const (
	PagoPendiente  = "PENDIENTE"
	PagoCompletado = "COMPLETADO"
	PagoFallido    = "FALLIDO"
)

// ParseMetodoPago normaliza (mayúsculas) y valida el método de pago.
func ParseMetodoPago(metodo string) (string, bool) {
	m := strings.ToUpper(strings.TrimSpace(metodo))
	switch m {
	case MetodoYape, MetodoPlin, MetodoTarjeta, MetodoPaypal, MetodoTransferencia:
		return m, true
	}
	return "", false
}

// EstadoPagoValido indica si el estado de pago es soportado.
func EstadoPagoValido(estado string) bool {
	switch estado {
	case PagoPendiente, PagoCompletado, PagoFallido:
		return true
	}
	return false
}

// Pago registro de pago asociado a un pedido (uno a uno).
type Pago struct {
	ID                   string
	PedidoID             string
	Metodo               string
	Estado               string
	Monto                decimal.Decimal
	FechaPago            time.Time
	IDTransaccionExterna string
}
