package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)
var _ repository.AsignacionRepository = (*AsignacionRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un proveedor.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO proveedor (id, razon_social, contacto, telefono, direccion)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.RazonSocial, p.Contacto, p.Telefono, p.Direccion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID (nil si no existe).
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), `
		SELECT id, razon_social, contacto, telefono, direccion
		FROM proveedor WHERE id = $1`, id,
	).Scan(&p.ID, &p.RazonSocial, &p.Contacto, &p.Telefono, &p.Direccion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos del proveedor.
func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE proveedor SET razon_social = $2, contacto = $3, telefono = $4, direccion = $5
		WHERE id = $1`,
		p.ID, p.RazonSocial, p.Contacto, p.Telefono, p.Direccion,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// Delete elimina el proveedor por ID.
func (r *ProveedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proveedor WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}

// List lista proveedores ordenados por razón social.
func (r *ProveedorRepo) List() ([]*entity.Proveedor, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, razon_social, contacto, telefono, direccion
		FROM proveedor ORDER BY razon_social`)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.RazonSocial, &p.Contacto, &p.Telefono, &p.Direccion); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// TieneAsignaciones indica si el proveedor tiene productos asignados.
func (r *ProveedorRepo) TieneAsignaciones(proveedorID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM producto_proveedor WHERE proveedor_id = $1)`, proveedorID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("asignaciones de proveedor: %w", err)
	}
	return existe, nil
}

// AsignacionRepo implementación de AsignacionRepository sobre PostgreSQL.
type AsignacionRepo struct {
	q Querier
}

// NewAsignacionRepository construye el adaptador de asignaciones producto-proveedor.
func NewAsignacionRepository(q Querier) *AsignacionRepo {
	return &AsignacionRepo{q: q}
}

const asignacionColumns = `id, producto_id, proveedor_id, precio_costo, fecha_asignacion`

func scanAsignacion(row pgx.Row) (*entity.ProductoProveedor, error) {
	var a entity.ProductoProveedor
	err := row.Scan(&a.ID, &a.ProductoID, &a.ProveedorID, &a.PrecioCosto, &a.FechaAsignacion)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste una asignación. Par producto-proveedor duplicado retorna ErrDuplicate.
func (r *AsignacionRepo) Create(a *entity.ProductoProveedor) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO producto_proveedor (id, producto_id, proveedor_id, precio_costo, fecha_asignacion)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.ProductoID, a.ProveedorID, a.PrecioCosto, a.FechaAsignacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asignacion: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID (nil si no existe).
func (r *AsignacionRepo) GetByID(id string) (*entity.ProductoProveedor, error) {
	a, err := scanAsignacion(r.q.QueryRow(context.Background(),
		`SELECT `+asignacionColumns+` FROM producto_proveedor WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asignacion: %w", err)
	}
	return a, nil
}

// PorProducto lista las asignaciones de un producto.
func (r *AsignacionRepo) PorProducto(productoID string) ([]*entity.ProductoProveedor, error) {
	return r.listWhere(`producto_id = $1`, productoID)
}

// PorProveedor lista las asignaciones de un proveedor.
func (r *AsignacionRepo) PorProveedor(proveedorID string) ([]*entity.ProductoProveedor, error) {
	return r.listWhere(`proveedor_id = $1`, proveedorID)
}

func (r *AsignacionRepo) listWhere(where string, arg any) ([]*entity.ProductoProveedor, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+asignacionColumns+` FROM producto_proveedor WHERE `+where+` ORDER BY fecha_asignacion DESC`,
		arg)
	if err != nil {
		return nil, fmt.Errorf("list asignaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductoProveedor
	for rows.Next() {
		a, err := scanAsignacion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asignacion: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Existe indica si ya hay una asignación para el par producto-proveedor.
func (r *AsignacionRepo) Existe(productoID, proveedorID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(SELECT 1 FROM producto_proveedor WHERE producto_id = $1 AND proveedor_id = $2)`,
		productoID, proveedorID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe asignacion: %w", err)
	}
	return existe, nil
}

// UpdatePrecio actualiza el precio de costo pactado.
func (r *AsignacionRepo) UpdatePrecio(id string, precio decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE producto_proveedor SET precio_costo = $2 WHERE id = $1`, id, precio)
	if err != nil {
		return fmt.Errorf("update precio asignacion: %w", err)
	}
	return nil
}

// Delete elimina la asignación por ID.
func (r *AsignacionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM producto_proveedor WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asignacion: %w", err)
	}
	return nil
}
