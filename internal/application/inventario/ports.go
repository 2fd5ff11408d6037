package inventario

import (
	"context"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
)

// TxRunner ejecuta ajustes de stock dentro de una transacción, con la fila
// de inventario bloqueada (SELECT FOR UPDATE).
type TxRunner interface {
	RunInventario(ctx context.Context, fn func(
		inventarioRepo repository.InventarioRepository,
	) error) error
}
