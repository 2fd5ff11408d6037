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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de categorías. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una categoría. Nombre duplicado retorna ErrDuplicate.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO categoria (id, nombre, descripcion) VALUES ($1, $2, $3)`,
		c.ID, c.Nombre, c.Descripcion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID (nil si no existe).
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	return r.findOne(`WHERE id = $1`, id)
}

// GetByNombre obtiene una categoría por nombre exacto (nil si no existe).
func (r *CategoriaRepo) GetByNombre(nombre string) (*entity.Categoria, error) {
	return r.findOne(`WHERE nombre = $1`, nombre)
}

func (r *CategoriaRepo) findOne(where string, arg any) (*entity.Categoria, error) {
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, descripcion FROM categoria `+where, arg,
	).Scan(&c.ID, &c.Nombre, &c.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// Update actualiza nombre y descripción.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE categoria SET nombre = $2, descripcion = $3 WHERE id = $1`,
		c.ID, c.Nombre, c.Descripcion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// Delete elimina la categoría por ID.
func (r *CategoriaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categoria WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}

// List lista todas las categorías ordenadas por nombre.
func (r *CategoriaRepo) List() ([]*entity.Categoria, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, descripcion FROM categoria ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
