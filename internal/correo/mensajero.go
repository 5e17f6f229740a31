package correo

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/config"
)

// Mensajero envía correos por SMTP cuando hay servidor configurado.
// Es el segundo camino de despacho, complementario al mailto: el
// intento ya quedó en la bitácora antes de llegar acá.
type Mensajero struct {
	cfg config.CorreoConfig
}

// NewMensajero crea el mensajero.
func NewMensajero(cfg config.CorreoConfig) *Mensajero {
	return &Mensajero{cfg: cfg}
}

// Configurado indica si hay servidor SMTP para envío directo.
func (m *Mensajero) Configurado() bool {
	return m.cfg.SMTPHost != ""
}

// Enviar despacha un correo con cuerpo HTML y, si se pasa, un PDF
// adjunto. Devuelve error si no hay SMTP configurado o si el servidor
// rechaza el envío.
func (m *Mensajero) Enviar(destinatario, asunto, cuerpoHTML string, adjuntoPDF []byte) error {
	if !m.Configurado() {
		return fmt.Errorf("no hay servidor SMTP configurado")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Remitente)
	msg.SetHeader("To", destinatario)
	msg.SetHeader("Subject", asunto)
	msg.SetBody("text/html", cuerpoHTML)

	if len(adjuntoPDF) > 0 {
		msg.Attach("reporte.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(adjuntoPDF)
			return err
		}))
	}

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error enviando el correo: %w", err)
	}
	return nil
}
