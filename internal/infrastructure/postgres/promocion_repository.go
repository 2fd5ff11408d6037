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

var _ repository.PromocionRepository = (*PromocionRepo)(nil)

// PromocionRepo implementación de PromocionRepository sobre PostgreSQL (usable con pool o tx).
type PromocionRepo struct {
	q Querier
}

// NewPromocionRepository construye el adaptador de promociones. Pasar pool o tx (Querier).
func NewPromocionRepository(q Querier) *PromocionRepo {
	return &PromocionRepo{q: q}
}

const promocionColumns = `id, codigo, descripcion, descuento, fecha_inicio, fecha_fin, activa`

func scanPromocion(row pgx.Row) (*entity.Promocion, error) {
	var p entity.Promocion
	err := row.Scan(&p.ID, &p.Codigo, &p.Descripcion, &p.Descuento, &p.FechaInicio, &p.FechaFin, &p.Activa)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste una promoción. Código duplicado retorna ErrDuplicate.
func (r *PromocionRepo) Create(p *entity.Promocion) error {
	query := `
		INSERT INTO promocion (id, codigo, descripcion, descuento, fecha_inicio, fecha_fin, activa)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Descripcion, p.Descuento, p.FechaInicio, p.FechaFin, p.Activa,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert promocion: %w", err)
	}
	return nil
}

// GetByID obtiene una promoción por ID (nil si no existe).
func (r *PromocionRepo) GetByID(id string) (*entity.Promocion, error) {
	p, err := scanPromocion(r.q.QueryRow(context.Background(),
		`SELECT `+promocionColumns+` FROM promocion WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promocion: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables de la promoción.
func (r *PromocionRepo) Update(p *entity.Promocion) error {
	query := `
		UPDATE promocion SET codigo = $2, descripcion = $3, descuento = $4,
			fecha_inicio = $5, fecha_fin = $6, activa = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Descripcion, p.Descuento, p.FechaInicio, p.FechaFin, p.Activa,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update promocion: %w", err)
	}
	return nil
}

// SetActiva activa o desactiva una promoción (borrado lógico).
func (r *PromocionRepo) SetActiva(id string, activa bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE promocion SET activa = $2 WHERE id = $1`, id, activa)
	if err != nil {
		return fmt.Errorf("set activa promocion: %w", err)
	}
	return nil
}

// List pagina promociones ordenadas por fecha de inicio descendente.
func (r *PromocionRepo) List(limit, offset int) ([]*entity.Promocion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+promocionColumns+` FROM promocion ORDER BY fecha_inicio DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list promociones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Promocion
	for rows.Next() {
		p, err := scanPromocion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promocion: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Asociar vincula la promoción a un producto. Par duplicado retorna ErrDuplicate.
func (r *PromocionRepo) Asociar(promocionID, productoID string) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO producto_promocion (promocion_id, producto_id) VALUES ($1, $2)`,
		promocionID, productoID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("asociar promocion: %w", err)
	}
	return nil
}

// Desasociar elimina el vínculo promoción-producto.
func (r *PromocionRepo) Desasociar(promocionID, productoID string) error {
	_, err := r.q.Exec(context.Background(), `
		DELETE FROM producto_promocion WHERE promocion_id = $1 AND producto_id = $2`,
		promocionID, productoID,
	)
	if err != nil {
		return fmt.Errorf("desasociar promocion: %w", err)
	}
	return nil
}

// PorProducto lista las promociones asociadas a un producto.
func (r *PromocionRepo) PorProducto(productoID string) ([]*entity.Promocion, error) {
	m, err := r.PorProductos([]string{productoID})
	if err != nil {
		return nil, err
	}
	return m[productoID], nil
}

// PorProductos carga las promociones asociadas a varios productos en una consulta.
func (r *PromocionRepo) PorProductos(ids []string) (map[string][]*entity.Promocion, error) {
	result := make(map[string][]*entity.Promocion, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT pp.producto_id, p.id, p.codigo, p.descripcion, p.descuento, p.fecha_inicio, p.fecha_fin, p.activa
		FROM promocion p
		JOIN producto_promocion pp ON pp.promocion_id = p.id
		WHERE pp.producto_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("promociones por productos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var productoID string
		var p entity.Promocion
		err := rows.Scan(&productoID, &p.ID, &p.Codigo, &p.Descripcion, &p.Descuento,
			&p.FechaInicio, &p.FechaFin, &p.Activa)
		if err != nil {
			return nil, fmt.Errorf("scan promocion: %w", err)
		}
		result[productoID] = append(result[productoID], &p)
	}
	return result, rows.Err()
}
