// Package correo arma y transporta los correos del sistema: construye
// el enlace mailto que abre el cliente de correo del usuario con todo
// precargado y, si hay SMTP configurado, hace el envío directo.
package correo

import (
	"net/url"
	"strings"
)

// MailtoURI arma el enlace mailto con destinatario, asunto y cuerpo
// precargados. La entrega queda en manos del cliente de correo del
// usuario: desde acá no hay confirmación posible.
func MailtoURI(destinatario, asunto, cuerpo string) string {
	return "mailto:" + escapar(destinatario) +
		"?subject=" + escapar(asunto) +
		"&body=" + escapar(cuerpo)
}

// escapar codifica para mailto. url.QueryEscape usa '+' para el espacio,
// que varios clientes de correo muestran literal; acá va %20.
func escapar(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
