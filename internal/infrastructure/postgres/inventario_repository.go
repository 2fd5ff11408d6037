package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación de InventarioRepository sobre PostgreSQL (usable con pool o tx).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

const inventarioColumns = `id, producto_id, stock, ultima_actualizacion`

func scanInventario(row pgx.Row) (*entity.Inventario, error) {
	var inv entity.Inventario
	if err := row.Scan(&inv.ID, &inv.ProductoID, &inv.Stock, &inv.UltimaActualizacion); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create persiste el registro de inventario de un producto (único por producto).
func (r *InventarioRepo) Create(inv *entity.Inventario) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO inventario (id, producto_id, stock, ultima_actualizacion)
		VALUES ($1, $2, $3, $4)`,
		inv.ID, inv.ProductoID, inv.Stock, inv.UltimaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventario: %w", err)
	}
	return nil
}

// GetByProducto obtiene el inventario de un producto (nil si no existe).
func (r *InventarioRepo) GetByProducto(productoID string) (*entity.Inventario, error) {
	inv, err := scanInventario(r.q.QueryRow(context.Background(),
		`SELECT `+inventarioColumns+` FROM inventario WHERE producto_id = $1`, productoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return inv, nil
}

// GetByProductoForUpdate obtiene el inventario y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción.
func (r *InventarioRepo) GetByProductoForUpdate(productoID string) (*entity.Inventario, error) {
	inv, err := scanInventario(r.q.QueryRow(context.Background(),
		`SELECT `+inventarioColumns+` FROM inventario WHERE producto_id = $1 FOR UPDATE`, productoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario for update: %w", err)
	}
	return inv, nil
}

// Update actualiza stock y timestamp.
func (r *InventarioRepo) Update(inv *entity.Inventario) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE inventario SET stock = $2, ultima_actualizacion = $3 WHERE id = $1`,
		inv.ID, inv.Stock, inv.UltimaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update inventario: %w", err)
	}
	return nil
}

// List lista todo el inventario.
func (r *InventarioRepo) List() ([]*entity.Inventario, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+inventarioColumns+` FROM inventario ORDER BY ultima_actualizacion DESC`)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventario
	for rows.Next() {
		inv, err := scanInventario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// PorProductos carga el inventario de varios productos en una consulta, mapeado por producto.
func (r *InventarioRepo) PorProductos(ids []string) (map[string]*entity.Inventario, error) {
	result := make(map[string]*entity.Inventario, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT `+inventarioColumns+` FROM inventario WHERE producto_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("inventario por productos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		inv, err := scanInventario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		result[inv.ProductoID] = inv
	}
	return result, rows.Err()
}
