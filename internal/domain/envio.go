package domain

import (
	"time"
)

// Tipos de envío de correo. Determinan el destinatario y el sufijo del asunto.
const (
	EnvioCliente = "cliente" // Al email del cliente del reporte
	EnvioInterno = "interno" // A la casilla interna configurada
	EnvioART     = "art"     // A la casilla de autorizaciones ART
)

// EstadoIntentado — único estado que registra la bitácora: la entrega real
// ocurre en el cliente de correo del usuario y no es observable desde acá.
const EstadoIntentado = "INTENTADO"

// EnvioCorreo — registro de auditoría de un intento de envío.
// Se escribe una sola vez, antes de la entrega, y nunca se actualiza.
type EnvioCorreo struct {
	ID           string    `json:"id"`
	ReporteID    string    `json:"reporte_id"`
	Tipo         string    `json:"tipo"`         // cliente | interno | art
	Destinatario string    `json:"destinatario"` // Dirección resuelta
	Asunto       string    `json:"asunto"`       // Asunto ya sustituido
	Estado       string    `json:"estado"`       // Siempre INTENTADO
	CreadoEn     time.Time `json:"created_at"`
}
