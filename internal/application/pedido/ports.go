package pedido

import (
	"context"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
)

// TxRunner ejecuta el checkout dentro de una transacción: todos los repos
// del callback operan sobre la misma tx y el commit es atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		carritoRepo repository.CarritoRepository,
		inventarioRepo repository.InventarioRepository,
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
		promocionRepo repository.PromocionRepository,
	) error) error
}

// ReciboGenerator genera el comprobante PDF de un pedido.
type ReciboGenerator interface {
	GenerarRecibo(
		pedido *entity.Pedido,
		detalles []*entity.DetallePedido,
		usuario *entity.Usuario,
		pago *entity.Pago,
		envio *entity.Envio,
	) ([]byte, error)
}
