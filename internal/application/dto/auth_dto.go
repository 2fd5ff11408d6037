package dto

// RegisterRequest alta de un nuevo cliente.
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse tokens emitidos tras registro o login.
type AuthResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	TokenType    string   `json:"tokenType"`
	UserID       string   `json:"userId"`
	Nombre       string   `json:"nombre"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles"`
}

// RefreshRequest renovación de access token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RecoveryRequest solicitud de código de desbloqueo por email.
type RecoveryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UnlockRequest desbloqueo de cuenta con código y nueva contraseña.
type UnlockRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Codigo        string `json:"codigo" validate:"required,len=6"`
	NuevaPassword string `json:"nuevaPassword" validate:"required,min=6"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
