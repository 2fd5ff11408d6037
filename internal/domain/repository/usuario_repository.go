package repository

import (
	"time"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia de usuarios (roles incluidos).
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
	// LimpiarCodigosVencidos borra los códigos de desbloqueo cuya expiración es
	// anterior a `limite` y devuelve cuántos usuarios se limpiaron.
	LimpiarCodigosVencidos(limite time.Time) (int64, error)
}
