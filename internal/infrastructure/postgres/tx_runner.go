package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/inventario"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/pedido"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
)

var _ pedido.TxRunner = (*TxRunner)(nil)
var _ inventario.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Es la transacción del checkout: carrito + inventario + pedido + catálogo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	carritoRepo repository.CarritoRepository,
	inventarioRepo repository.InventarioRepository,
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	promocionRepo repository.PromocionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	carritoRepo := NewCarritoRepository(tx)
	inventarioRepo := NewInventarioRepository(tx)
	pedidoRepo := NewPedidoRepository(tx)
	productoRepo := NewProductoRepository(tx)
	promocionRepo := NewPromocionRepository(tx)

	if err := fn(carritoRepo, inventarioRepo, pedidoRepo, productoRepo, promocionRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInventario inicia una transacción con el repo de inventario atado a la tx
// (ajustes manuales de stock con SELECT FOR UPDATE).
func (r *TxRunner) RunInventario(ctx context.Context, fn func(
	inventarioRepo repository.InventarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInventarioRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
