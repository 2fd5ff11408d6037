package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
)

// PedidoRepository puerto de persistencia de pedidos con sus detalles, pago y envío.
type PedidoRepository interface {
	Create(p *entity.Pedido) error
	CreateDetalle(d *entity.DetallePedido) error
	CreatePago(p *entity.Pago) error
	CreateEnvio(e *entity.Envio) error

	GetByID(id string) (*entity.Pedido, error)
	Detalles(pedidoID string) ([]*entity.DetallePedido, error)
	Pago(pedidoID string) (*entity.Pago, error)
	Envio(pedidoID string) (*entity.Envio, error)
	ListByUsuario(usuarioID string) ([]*entity.Pedido, error)
	List(limit, offset int) ([]*entity.Pedido, error)

	UpdateEstado(id, estado string) error
	UpdatePago(p *entity.Pago) error
	UpdateEnvio(e *entity.Envio) error
	Delete(id string) error

	// CancelarPendientesAnteriores cancela pedidos PENDIENTE con fecha anterior a `limite`
	// y devuelve cuántos fueron cancelados.
	CancelarPendientesAnteriores(limite time.Time) (int64, error)
	// TotalVentasEnRango suma el total de pedidos PAGADO/ENVIADO/ENTREGADO en [desde, hasta).
	TotalVentasEnRango(desde, hasta time.Time) (decimal.Decimal, int64, error)
}
