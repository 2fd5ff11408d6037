// Package auth implementa registro, login con bloqueo por intentos fallidos
// y recuperación de cuenta vía código por correo.
package auth

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/config"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/jwt"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

const (
	// Tope de intentos fallidos antes de bloquear la cuenta.
	maxIntentosFallidos = 3
	// Vigencia del código de desbloqueo enviado por correo.
	vigenciaCodigo = 15 * time.Minute
	// Longitud mínima de contraseña.
	minPasswordLen = 6
)

// UseCase reglas de autenticación y gestión de cuentas.
type UseCase struct {
	usuarios repository.UsuarioRepository
	mailer   CodeMailer
	jwtCfg   config.JWTConfig
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(usuarios repository.UsuarioRepository, mailer CodeMailer, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{usuarios: usuarios, mailer: mailer, jwtCfg: jwtCfg, log: log}
}

// Register da de alta un cliente nuevo y devuelve sus tokens.
func (uc *UseCase) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if len(req.Password) < minPasswordLen {
		return nil, domain.ErrWeakPassword
	}

	existente, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("auth: verificar email: %w", err)
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hashear password: %w", err)
	}

	u := &entity.Usuario{
		ID:               uuid.NewString(),
		Nombre:           strings.TrimSpace(req.Nombre),
		Email:            email,
		PasswordHash:     string(hash),
		Activo:           true,
		AccountNonLocked: true,
		Roles:            []string{entity.RolCliente},
		FechaRegistro:    time.Now(),
	}
	if err := uc.usuarios.Create(u); err != nil {
		return nil, err
	}

	uc.log.Info().Str("usuario_id", u.ID).Str("email", u.Email).Msg("usuario registrado")
	return uc.emitirTokens(u)
}

// Login valida credenciales aplicando la política de bloqueo por intentos.
// Una cuenta bloqueada se rechaza antes de comparar la contraseña.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if u == nil || !u.Activo {
		return nil, domain.ErrInvalidCredentials
	}
	if !u.AccountNonLocked {
		return nil, domain.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		u.FailedLoginAttempts++
		if u.FailedLoginAttempts >= maxIntentosFallidos {
			// Al bloquear, el contador vuelve a cero: el desbloqueo parte limpio.
			u.AccountNonLocked = false
			u.FailedLoginAttempts = 0
		}
		if err := uc.usuarios.Update(u); err != nil {
			return nil, fmt.Errorf("auth: registrar intento fallido: %w", err)
		}
		if !u.AccountNonLocked {
			uc.log.Warn().Str("email", email).Msg("cuenta bloqueada por intentos fallidos")
			return nil, domain.ErrAccountLocked
		}
		return nil, domain.ErrInvalidCredentials
	}

	// Login correcto: resetear el contador y descartar cualquier código pendiente.
	if u.FailedLoginAttempts > 0 || u.CodigoDesbloqueo != nil {
		u.FailedLoginAttempts = 0
		u.CodigoDesbloqueo = nil
		u.CodigoExpiracion = nil
		if err := uc.usuarios.Update(u); err != nil {
			return nil, fmt.Errorf("auth: resetear intentos: %w", err)
		}
	}

	return uc.emitirTokens(u)
}

// Refresh emite un nuevo par de tokens a partir de un refresh token válido.
func (uc *UseCase) Refresh(req dto.RefreshRequest) (*dto.AuthResponse, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, req.RefreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if claims.TokenType != jwt.TokenRefresh {
		return nil, domain.ErrInvalidToken
	}

	u, err := uc.usuarios.GetByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if u == nil || !u.Activo {
		return nil, domain.ErrInvalidToken
	}
	if !u.AccountNonLocked {
		return nil, domain.ErrAccountLocked
	}

	return uc.emitirTokens(u)
}

// RequestReset genera un código de desbloqueo de 6 dígitos, bloquea la
// cuenta hasta que se use y lo envía por correo.
func (uc *UseCase) RequestReset(req dto.RecoveryRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if u == nil {
		return domain.ErrNotFound
	}

	codigo := fmt.Sprintf("%06d", rand.IntN(1000000))
	expira := time.Now().Add(vigenciaCodigo)

	u.CodigoDesbloqueo = &codigo
	u.CodigoExpiracion = &expira
	u.AccountNonLocked = false
	if err := uc.usuarios.Update(u); err != nil {
		return fmt.Errorf("auth: guardar código: %w", err)
	}

	if err := uc.mailer.SendCodigoDesbloqueo(u.Email, u.Nombre, codigo); err != nil {
		return fmt.Errorf("auth: enviar código: %w", err)
	}

	uc.log.Info().Str("email", email).Msg("código de desbloqueo enviado")
	return nil
}

// Unlock valida el código recibido por correo, establece la nueva
// contraseña y desbloquea la cuenta.
func (uc *UseCase) Unlock(req dto.UnlockRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if u == nil {
		return domain.ErrNotFound
	}

	if u.CodigoDesbloqueo == nil || *u.CodigoDesbloqueo != req.Codigo {
		return domain.ErrInvalidCode
	}
	if u.CodigoExpiracion == nil || time.Now().After(*u.CodigoExpiracion) {
		return domain.ErrCodeExpired
	}
	if len(req.NuevaPassword) < minPasswordLen {
		return domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NuevaPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth: hashear password: %w", err)
	}

	u.PasswordHash = string(hash)
	u.AccountNonLocked = true
	u.FailedLoginAttempts = 0
	u.CodigoDesbloqueo = nil
	u.CodigoExpiracion = nil
	if err := uc.usuarios.Update(u); err != nil {
		return fmt.Errorf("auth: desbloquear cuenta: %w", err)
	}

	uc.log.Info().Str("email", email).Msg("cuenta desbloqueada")
	return nil
}

func (uc *UseCase) emitirTokens(u *entity.Usuario) (*dto.AuthResponse, error) {
	access, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, u.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("auth: generar access token: %w", err)
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.Secret, u.ID, u.Email, u.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpiration)
	if err != nil {
		return nil, fmt.Errorf("auth: generar refresh token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		UserID:       u.ID,
		Nombre:       u.Nombre,
		Email:        u.Email,
		Roles:        u.Roles,
	}, nil
}
