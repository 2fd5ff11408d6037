package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Config conexión SMTP para el envío de correos.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// GomailSender envía correos transaccionales vía SMTP (gomail).
type GomailSender struct {
	cfg Config
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg Config) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// SendCodigoDesbloqueo envía el código de desbloqueo de cuenta al usuario.
func (s *GomailSender) SendCodigoDesbloqueo(destinatario, nombre, codigo string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", destinatario)
	m.SetHeader("Subject", "Código de recuperación de cuenta")
	m.SetBody("text/html", fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Tu cuenta fue bloqueada por seguridad. Usa este código para desbloquearla:</p>
		<h2>%s</h2>
		<p>El código expira en 15 minutos. Si no solicitaste este correo, ignóralo.</p>`,
		nombre, codigo,
	))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo de desbloqueo: %w", err)
	}
	return nil
}
