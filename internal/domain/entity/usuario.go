package entity

import "time"

// Roles soportados por la aplicación.
const (
	RolCliente       = "Cliente"
	RolAdministrador = "Administrador"
)

// Usuario cuenta de la tienda. El bloqueo por intentos fallidos se controla con
// FailedLoginAttempts + AccountNonLocked; el desbloqueo requiere el código de 6
// dígitos enviado por correo (CodigoDesbloqueo, expira a los 15 minutos).
type Usuario struct {
	ID                  string
	Nombre              string
	Email               string
	PasswordHash        string
	Activo              bool
	AccountNonLocked    bool
	FailedLoginAttempts int
	CodigoDesbloqueo    *string
	CodigoExpiracion    *time.Time
	Roles               []string
	FechaRegistro       time.Time
}

// TieneRol indica si el usuario posee el rol dado.
func (u *Usuario) TieneRol(rol string) bool {
	for _, r := range u.Roles {
		if r == rol {
			return true
		}
	}
	return false
}
