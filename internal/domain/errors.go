package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrAccountLocked      = errors.New("cuenta bloqueada por intentos fallidos")
	ErrInvalidCode        = errors.New("código de desbloqueo incorrecto")
	ErrCodeExpired        = errors.New("código de desbloqueo expirado")
	ErrWeakPassword       = errors.New("la contraseña no cumple el mínimo de seguridad")
)
