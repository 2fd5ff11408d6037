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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, nombre, descripcion, talla, precio, activo, color_dorsal,
	categoria_id, image_url, fecha_creacion`

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Talla, &p.Precio, &p.Activo,
		&p.ColorDorsal, &p.CategoriaID, &p.ImageURL, &p.FechaCreacion,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO producto (id, nombre, descripcion, talla, precio, activo, color_dorsal,
			categoria_id, image_url, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Talla, p.Precio, p.Activo,
		p.ColorDorsal, p.CategoriaID, p.ImageURL, p.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, err := scanProducto(r.q.QueryRow(context.Background(),
		`SELECT `+productoColumns+` FROM producto WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// ByIDs obtiene varios productos de una sola consulta, mapeados por ID.
func (r *ProductoRepo) ByIDs(ids []string) (map[string]*entity.Producto, error) {
	result := make(map[string]*entity.Producto, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productoColumns+` FROM producto WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("productos por ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		result[p.ID] = p
	}
	return result, rows.Err()
}

// List pagina productos; soloActivos filtra el catálogo público.
func (r *ProductoRepo) List(soloActivos bool, limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM producto`
	if soloActivos {
		query += ` WHERE activo = true`
	}
	query += ` ORDER BY fecha_creacion DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListByCategoriaNombre lista productos activos de una categoría por su nombre.
func (r *ProductoRepo) ListByCategoriaNombre(nombre string) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumnsAlias("p") + `
		FROM producto p
		JOIN categoria c ON c.id = p.categoria_id
		WHERE p.activo = true AND c.nombre = $1
		ORDER BY p.fecha_creacion DESC`
	rows, err := r.q.Query(context.Background(), query, nombre)
	if err != nil {
		return nil, fmt.Errorf("productos por categoria: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// productoColumnsAlias prefija las columnas con el alias de tabla.
func productoColumnsAlias(alias string) string {
	return alias + `.id, ` + alias + `.nombre, ` + alias + `.descripcion, ` + alias + `.talla, ` +
		alias + `.precio, ` + alias + `.activo, ` + alias + `.color_dorsal, ` +
		alias + `.categoria_id, ` + alias + `.image_url, ` + alias + `.fecha_creacion`
}

// Update actualiza los campos editables del producto.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE producto SET nombre = $2, descripcion = $3, talla = $4, precio = $5,
			activo = $6, color_dorsal = $7, categoria_id = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Talla, p.Precio, p.Activo, p.ColorDorsal, p.CategoriaID,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// SetActivo activa o desactiva un producto (borrado lógico).
func (r *ProductoRepo) SetActivo(id string, activo bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE producto SET activo = $2 WHERE id = $1`, id, activo)
	if err != nil {
		return fmt.Errorf("set activo producto: %w", err)
	}
	return nil
}

// SetImageURL actualiza la imagen principal del producto.
func (r *ProductoRepo) SetImageURL(id, url string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE producto SET image_url = $2 WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("set image_url producto: %w", err)
	}
	return nil
}

// AddImagen agrega una imagen a la galería del producto.
func (r *ProductoRepo) AddImagen(img *entity.ImagenProducto) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO imagen_producto (id, producto_id, url) VALUES ($1, $2, $3)`,
		img.ID, img.ProductoID, img.URL,
	)
	if err != nil {
		return fmt.Errorf("insert imagen producto: %w", err)
	}
	return nil
}

// DeleteImagen elimina una imagen de galería por su ID.
func (r *ProductoRepo) DeleteImagen(imagenID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM imagen_producto WHERE id = $1`, imagenID)
	if err != nil {
		return fmt.Errorf("delete imagen producto: %w", err)
	}
	return nil
}

// GaleriaPorProductos carga las galerías de varios productos en una consulta.
func (r *ProductoRepo) GaleriaPorProductos(ids []string) (map[string][]*entity.ImagenProducto, error) {
	result := make(map[string][]*entity.ImagenProducto, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT id, producto_id, url FROM imagen_producto
		WHERE producto_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("galeria por productos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var img entity.ImagenProducto
		if err := rows.Scan(&img.ID, &img.ProductoID, &img.URL); err != nil {
			return nil, fmt.Errorf("scan imagen: %w", err)
		}
		result[img.ProductoID] = append(result[img.ProductoID], &img)
	}
	return result, rows.Err()
}

// ReplaceLeyendas reemplaza el set completo de leyendas del producto.
func (r *ProductoRepo) ReplaceLeyendas(productoID string, leyendas []*entity.Leyenda) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM leyenda WHERE producto_id = $1`, productoID); err != nil {
		return fmt.Errorf("delete leyendas: %w", err)
	}
	for _, l := range leyendas {
		_, err := r.q.Exec(ctx, `
			INSERT INTO leyenda (id, producto_id, nombre, numero) VALUES ($1, $2, $3, $4)`,
			l.ID, productoID, l.Nombre, l.Numero,
		)
		if err != nil {
			return fmt.Errorf("insert leyenda: %w", err)
		}
	}
	return nil
}

// LeyendasPorProductos carga las leyendas de varios productos en una consulta.
func (r *ProductoRepo) LeyendasPorProductos(ids []string) (map[string][]*entity.Leyenda, error) {
	result := make(map[string][]*entity.Leyenda, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT id, producto_id, nombre, numero FROM leyenda
		WHERE producto_id = ANY($1) ORDER BY numero`, ids)
	if err != nil {
		return nil, fmt.Errorf("leyendas por productos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.Leyenda
		if err := rows.Scan(&l.ID, &l.ProductoID, &l.Nombre, &l.Numero); err != nil {
			return nil, fmt.Errorf("scan leyenda: %w", err)
		}
		result[l.ProductoID] = append(result[l.ProductoID], &l)
	}
	return result, rows.Err()
}
