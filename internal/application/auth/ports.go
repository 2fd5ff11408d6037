package auth

// CodeMailer envía el código de desbloqueo al correo del usuario.
type CodeMailer interface {
	SendCodigoDesbloqueo(destinatario, nombre, codigo string) error
}
