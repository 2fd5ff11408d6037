package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
)

var _ repository.CarritoRepository = (*CarritoRepo)(nil)

// CarritoRepo implementación de CarritoRepository sobre PostgreSQL (usable con pool o tx).
type CarritoRepo struct {
	q Querier
}

// NewCarritoRepository construye el adaptador del carrito. Pasar pool o tx (Querier).
func NewCarritoRepository(q Querier) *CarritoRepo {
	return &CarritoRepo{q: q}
}

// Create persiste un carrito nuevo (uno por usuario).
func (r *CarritoRepo) Create(c *entity.Carrito) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO carrito (id, usuario_id, fecha_creacion) VALUES ($1, $2, $3)`,
		c.ID, c.UsuarioID, c.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("insert carrito: %w", err)
	}
	return nil
}

// GetByUsuario obtiene el carrito del usuario (nil si aún no tiene).
func (r *CarritoRepo) GetByUsuario(usuarioID string) (*entity.Carrito, error) {
	var c entity.Carrito
	err := r.q.QueryRow(context.Background(),
		`SELECT id, usuario_id, fecha_creacion FROM carrito WHERE usuario_id = $1`, usuarioID,
	).Scan(&c.ID, &c.UsuarioID, &c.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get carrito: %w", err)
	}
	return &c, nil
}

const detalleCarritoColumns = `id, carrito_id, producto_id, cantidad, precio_base,
	personalizado, pers_tipo, pers_nombre, pers_numero, pers_precio, parche_tipo, parche_precio`

func scanDetalleCarrito(row pgx.Row) (*entity.DetalleCarrito, error) {
	var d entity.DetalleCarrito
	err := row.Scan(
		&d.ID, &d.CarritoID, &d.ProductoID, &d.Cantidad, &d.PrecioBase,
		&d.Personalizado, &d.PersTipo, &d.PersNombre, &d.PersNumero, &d.PersPrecio,
		&d.ParcheTipo, &d.ParchePrecio,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Detalles lista las líneas del carrito en orden de inserción.
func (r *CarritoRepo) Detalles(carritoID string) ([]*entity.DetalleCarrito, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+detalleCarritoColumns+` FROM detalle_carrito WHERE carrito_id = $1 ORDER BY id`,
		carritoID)
	if err != nil {
		return nil, fmt.Errorf("detalles carrito: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetalleCarrito
	for rows.Next() {
		d, err := scanDetalleCarrito(rows)
		if err != nil {
			return nil, fmt.Errorf("scan detalle carrito: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// GetDetalle obtiene una línea por ID (nil si no existe).
func (r *CarritoRepo) GetDetalle(detalleID string) (*entity.DetalleCarrito, error) {
	d, err := scanDetalleCarrito(r.q.QueryRow(context.Background(),
		`SELECT `+detalleCarritoColumns+` FROM detalle_carrito WHERE id = $1`, detalleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle carrito: %w", err)
	}
	return d, nil
}

// CreateDetalle persiste una línea del carrito.
func (r *CarritoRepo) CreateDetalle(d *entity.DetalleCarrito) error {
	query := `
		INSERT INTO detalle_carrito (id, carrito_id, producto_id, cantidad, precio_base,
			personalizado, pers_tipo, pers_nombre, pers_numero, pers_precio, parche_tipo, parche_precio)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.CarritoID, d.ProductoID, d.Cantidad, d.PrecioBase,
		d.Personalizado, d.PersTipo, d.PersNombre, d.PersNumero, d.PersPrecio,
		d.ParcheTipo, d.ParchePrecio,
	)
	if err != nil {
		return fmt.Errorf("insert detalle carrito: %w", err)
	}
	return nil
}

// UpdateDetalleCantidad cambia la cantidad de una línea.
func (r *CarritoRepo) UpdateDetalleCantidad(detalleID string, cantidad int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE detalle_carrito SET cantidad = $2 WHERE id = $1`, detalleID, cantidad)
	if err != nil {
		return fmt.Errorf("update cantidad detalle: %w", err)
	}
	return nil
}

// DeleteDetalle elimina una línea del carrito.
func (r *CarritoRepo) DeleteDetalle(detalleID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM detalle_carrito WHERE id = $1`, detalleID)
	if err != nil {
		return fmt.Errorf("delete detalle carrito: %w", err)
	}
	return nil
}

// DeleteDetalles vacía el carrito (al confirmar un pedido).
func (r *CarritoRepo) DeleteDetalles(carritoID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM detalle_carrito WHERE carrito_id = $1`, carritoID)
	if err != nil {
		return fmt.Errorf("vaciar carrito: %w", err)
	}
	return nil
}
