package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
// Los roles viven en las tablas rol / usuario_rol y se cargan con cada lectura.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColumns = `id, nombre, email, password_hash, activo, account_non_locked,
	failed_login_attempts, codigo_desbloqueo, codigo_expiracion, fecha_registro`

// Create persiste un nuevo usuario junto con sus roles.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	ctx := context.Background()
	query := `
		INSERT INTO usuario (id, nombre, email, password_hash, activo, account_non_locked,
			failed_login_attempts, codigo_desbloqueo, codigo_expiracion, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Nombre, u.Email, u.PasswordHash, u.Activo, u.AccountNonLocked,
		u.FailedLoginAttempts, u.CodigoDesbloqueo, u.CodigoExpiracion, u.FechaRegistro,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	for _, rol := range u.Roles {
		if err := r.asignarRol(ctx, u.ID, rol); err != nil {
			return err
		}
	}
	return nil
}

// asignarRol garantiza la fila en rol y crea el vínculo usuario_rol.
func (r *UsuarioRepo) asignarRol(ctx context.Context, usuarioID, rol string) error {
	var rolID string
	err := r.q.QueryRow(ctx, `
		INSERT INTO rol (id, nombre) VALUES ($1, $2)
		ON CONFLICT (nombre) DO UPDATE SET nombre = EXCLUDED.nombre
		RETURNING id`, uuid.New().String(), rol).Scan(&rolID)
	if err != nil {
		return fmt.Errorf("upsert rol: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO usuario_rol (usuario_id, rol_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, usuarioID, rolID)
	if err != nil {
		return fmt.Errorf("insert usuario_rol: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID (con roles).
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.findOne(context.Background(), `WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (con roles).
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.findOne(context.Background(), `WHERE email = $1`, email)
}

func (r *UsuarioRepo) findOne(ctx context.Context, where string, arg any) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuario ` + where + ` LIMIT 1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Activo, &u.AccountNonLocked,
		&u.FailedLoginAttempts, &u.CodigoDesbloqueo, &u.CodigoExpiracion, &u.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	roles, err := r.roles(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}

func (r *UsuarioRepo) roles(ctx context.Context, usuarioID string) ([]string, error) {
	rows, err := r.q.Query(ctx, `
		SELECT r.nombre FROM rol r
		JOIN usuario_rol ur ON ur.rol_id = r.id
		WHERE ur.usuario_id = $1
		ORDER BY r.nombre`, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("roles de usuario: %w", err)
	}
	defer rows.Close()
	var roles []string
	for rows.Next() {
		var nombre string
		if err := rows.Scan(&nombre); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		roles = append(roles, nombre)
	}
	return roles, rows.Err()
}

// Update actualiza los campos mutables del usuario (no toca roles).
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuario SET nombre = $2, email = $3, password_hash = $4, activo = $5,
			account_non_locked = $6, failed_login_attempts = $7,
			codigo_desbloqueo = $8, codigo_expiracion = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Email, u.PasswordHash, u.Activo,
		u.AccountNonLocked, u.FailedLoginAttempts,
		u.CodigoDesbloqueo, u.CodigoExpiracion,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// LimpiarCodigosVencidos borra los códigos de desbloqueo expirados antes de `limite`.
func (r *UsuarioRepo) LimpiarCodigosVencidos(limite time.Time) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE usuario SET codigo_desbloqueo = NULL, codigo_expiracion = NULL
		WHERE codigo_expiracion IS NOT NULL AND codigo_expiracion < $1`, limite)
	if err != nil {
		return 0, fmt.Errorf("limpiar códigos vencidos: %w", err)
	}
	return tag.RowsAffected(), nil
}
