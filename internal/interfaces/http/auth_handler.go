package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/auth"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
)

// AuthHandler maneja registro, login, refresh y recuperación de cuenta.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, email y password son requeridos"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      423   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Renovar tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "Refresh token"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Refresh(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// RequestReset godoc
// @Summary      Solicitar código de desbloqueo por correo
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecoveryRequest  true  "Email de la cuenta"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/recovery/request [post]
func (h *AuthHandler) RequestReset(c *fiber.Ctx) error {
	var in dto.RecoveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RequestReset(in); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "código de desbloqueo enviado al correo"})
}

// Unlock godoc
// @Summary      Desbloquear cuenta con código y nueva contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UnlockRequest  true  "Código y nueva contraseña"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/recovery/unlock [post]
func (h *AuthHandler) Unlock(c *fiber.Ctx) error {
	var in dto.UnlockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Unlock(in); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cuenta desbloqueada"})
}
