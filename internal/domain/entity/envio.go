package entity

import "time"

// Estados de un envío.
const (
	EnvioEnPreparacion = "EN_PREPARACION"
	EnvioEnCamino      = "EN_CAMINO"
	EnvioEntregado     = "ENTREGADO"
	EnvioRetrasado     = "RETRASADO"
)

// EstadoEnvioValido indica si el estado de envío es soportado.
func EstadoEnvioValido(estado string) bool {
	switch estado {
	case EnvioEnPreparacion, EnvioEnCamino, EnvioEntregado, EnvioRetrasado:
		return true
	}
	return false
}

// Envio datos de despacho de un pedido (uno a uno). FechaEnvio se estampa al
// pasar a EN_CAMINO.
type Envio struct {
	ID                string
	PedidoID          string
	Direccion         string
	Estado            string
	CodigoSeguimiento string
	FechaEnvio        *time.Time
}
