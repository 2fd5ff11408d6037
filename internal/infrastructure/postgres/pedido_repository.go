package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación de PedidoRepository sobre PostgreSQL (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste la cabecera del pedido.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO pedido (id, usuario_id, fecha, estado, total) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.UsuarioID, p.Fecha, p.Estado, p.Total,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea del pedido (snapshot de precios).
func (r *PedidoRepo) CreateDetalle(d *entity.DetallePedido) error {
	query := `
		INSERT INTO detalle_pedido (id, pedido_id, producto_id, nombre_producto, cantidad,
			precio_unitario, monto_descuento, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.PedidoID, d.ProductoID, d.NombreProducto, d.Cantidad,
		d.PrecioUnitario, d.MontoDescuento, d.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert detalle pedido: %w", err)
	}
	return nil
}

// CreatePago persiste el registro de pago del pedido.
func (r *PedidoRepo) CreatePago(p *entity.Pago) error {
	query := `
		INSERT INTO pago (id, pedido_id, metodo, estado, monto, fecha_pago, id_transaccion_externa)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.PedidoID, p.Metodo, p.Estado, p.Monto, p.FechaPago, p.IDTransaccionExterna,
	)
	if err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// CreateEnvio persiste el registro de envío del pedido.
func (r *PedidoRepo) CreateEnvio(e *entity.Envio) error {
	query := `
		INSERT INTO envio (id, pedido_id, direccion, estado, codigo_seguimiento, fecha_envio)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.PedidoID, e.Direccion, e.Estado, e.CodigoSeguimiento, e.FechaEnvio,
	)
	if err != nil {
		return fmt.Errorf("insert envio: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera del pedido (nil si no existe).
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(),
		`SELECT id, usuario_id, fecha, estado, total FROM pedido WHERE id = $1`, id,
	).Scan(&p.ID, &p.UsuarioID, &p.Fecha, &p.Estado, &p.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// Detalles lista las líneas del pedido.
func (r *PedidoRepo) Detalles(pedidoID string) ([]*entity.DetallePedido, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, pedido_id, producto_id, nombre_producto, cantidad, precio_unitario,
			monto_descuento, subtotal
		FROM detalle_pedido WHERE pedido_id = $1 ORDER BY id`, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("detalles pedido: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetallePedido
	for rows.Next() {
		var d entity.DetallePedido
		err := rows.Scan(&d.ID, &d.PedidoID, &d.ProductoID, &d.NombreProducto, &d.Cantidad,
			&d.PrecioUnitario, &d.MontoDescuento, &d.Subtotal)
		if err != nil {
			return nil, fmt.Errorf("scan detalle pedido: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Pago obtiene el pago del pedido (nil si no existe).
func (r *PedidoRepo) Pago(pedidoID string) (*entity.Pago, error) {
	var p entity.Pago
	err := r.q.QueryRow(context.Background(), `
		SELECT id, pedido_id, metodo, estado, monto, fecha_pago, id_transaccion_externa
		FROM pago WHERE pedido_id = $1`, pedidoID,
	).Scan(&p.ID, &p.PedidoID, &p.Metodo, &p.Estado, &p.Monto, &p.FechaPago, &p.IDTransaccionExterna)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago: %w", err)
	}
	return &p, nil
}

// Envio obtiene el envío del pedido (nil si no existe).
func (r *PedidoRepo) Envio(pedidoID string) (*entity.Envio, error) {
	var e entity.Envio
	err := r.q.QueryRow(context.Background(), `
		SELECT id, pedido_id, direccion, estado, codigo_seguimiento, fecha_envio
		FROM envio WHERE pedido_id = $1`, pedidoID,
	).Scan(&e.ID, &e.PedidoID, &e.Direccion, &e.Estado, &e.CodigoSeguimiento, &e.FechaEnvio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get envio: %w", err)
	}
	return &e, nil
}

// ListByUsuario lista los pedidos de un usuario, más recientes primero.
func (r *PedidoRepo) ListByUsuario(usuarioID string) ([]*entity.Pedido, error) {
	return r.list(`WHERE usuario_id = $1 ORDER BY fecha DESC`, usuarioID)
}

// List pagina todos los pedidos (admin), más recientes primero.
func (r *PedidoRepo) List(limit, offset int) ([]*entity.Pedido, error) {
	return r.list(`ORDER BY fecha DESC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PedidoRepo) list(tail string, args ...any) ([]*entity.Pedido, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, usuario_id, fecha, estado, total FROM pedido `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.UsuarioID, &p.Fecha, &p.Estado, &p.Total); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado del pedido.
func (r *PedidoRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedido SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado pedido: %w", err)
	}
	return nil
}

// UpdatePago actualiza el registro de pago.
func (r *PedidoRepo) UpdatePago(p *entity.Pago) error {
	query := `
		UPDATE pago SET metodo = $2, estado = $3, monto = $4, fecha_pago = $5,
			id_transaccion_externa = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Metodo, p.Estado, p.Monto, p.FechaPago, p.IDTransaccionExterna,
	)
	if err != nil {
		return fmt.Errorf("update pago: %w", err)
	}
	return nil
}

// UpdateEnvio actualiza el registro de envío.
func (r *PedidoRepo) UpdateEnvio(e *entity.Envio) error {
	query := `
		UPDATE envio SET direccion = $2, estado = $3, codigo_seguimiento = $4, fecha_envio = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Direccion, e.Estado, e.CodigoSeguimiento, e.FechaEnvio,
	)
	if err != nil {
		return fmt.Errorf("update envio: %w", err)
	}
	return nil
}

// Delete elimina el pedido con sus detalles, pago y envío.
func (r *PedidoRepo) Delete(id string) error {
	ctx := context.Background()
	for _, query := range []string{
		`DELETE FROM detalle_pedido WHERE pedido_id = $1`,
		`DELETE FROM pago WHERE pedido_id = $1`,
		`DELETE FROM envio WHERE pedido_id = $1`,
		`DELETE FROM pedido WHERE id = $1`,
	} {
		if _, err := r.q.Exec(ctx, query, id); err != nil {
			return fmt.Errorf("delete pedido: %w", err)
		}
	}
	return nil
}

// CancelarPendientesAnteriores cancela pedidos PENDIENTE con fecha anterior a `limite`.
func (r *PedidoRepo) CancelarPendientesAnteriores(limite time.Time) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE pedido SET estado = $1 WHERE estado = $2 AND fecha < $3`,
		entity.PedidoCancelado, entity.PedidoPendiente, limite)
	if err != nil {
		return 0, fmt.Errorf("cancelar pedidos pendientes: %w", err)
	}
	return tag.RowsAffected(), nil
}

// TotalVentasEnRango suma el total de pedidos pagados/enviados/entregados en [desde, hasta).
func (r *PedidoRepo) TotalVentasEnRango(desde, hasta time.Time) (decimal.Decimal, int64, error) {
	var total decimal.Decimal
	var count int64
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM pedido
		WHERE estado = ANY($1) AND fecha >= $2 AND fecha < $3`,
		[]string{entity.PedidoPagado, entity.PedidoEnviado, entity.PedidoEntregado},
		desde, hasta,
	).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("total ventas: %w", err)
	}
	return total, count, nil
}
