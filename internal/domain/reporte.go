package domain

import (
	"time"
)

// Estados posibles de un reporte en el tablero de seguimiento.
// Son los valores que usa la columna 'estado' de la tabla 'reportes'.
const (
	EstadoPendiente  = "pendientes"
	EstadoEnProceso  = "en-proceso"
	EstadoEnTransito = "en-transito"
	EstadoCompletado = "completados"
)

// MensajeInicioDefecto es el saludo con el que arranca todo formulario nuevo.
const MensajeInicioDefecto = "Estimados, Adjunto detalles de la cirugía programada:"

// Reporte — un reporte de cirugía en curso o ya guardado.
// Las fechas se manejan como texto ISO (YYYY-MM-DD) porque así viajan
// desde el formulario y así las consume el generador de plantillas.
type Reporte struct {
	ID             string    `json:"id,omitempty"`   // UUID, vacío hasta el primer guardado
	MensajeInicio  string    `json:"mensaje_inicio"` // Saludo editable del encabezado
	Cliente        string    `json:"cliente"`        // Cliente/ART (obligatorio)
	Paciente       string    `json:"paciente"`       // Nombre del paciente (obligatorio)
	Medico         string    `json:"medico"`         // Médico responsable (obligatorio)
	Instrumentador string    `json:"instrumentador"` // Instrumentador asignado
	LugarCirugia   string    `json:"lugar_cirugia"`  // Nosocomio / lugar
	FechaCirugia   string    `json:"fecha_cirugia"`  // Fecha ISO (obligatoria)
	TipoCirugia    string    `json:"tipo_cirugia"`   // Tipo de cirugía
	Material       string    `json:"material"`       // Texto libre, un ítem por línea
	Observaciones  string    `json:"observaciones"`  // Texto libre opcional
	InfoAdicional  string    `json:"info_adicional"` // Texto libre opcional
	FechaEnvio     string    `json:"fecha_envio"`    // Se fija al guardar
	Estado         string    `json:"estado"`         // Columna del tablero
	CreadoEn       time.Time `json:"created_at"`     // Marca de creación en la base
}

// EsNuevo indica si el reporte todavía no fue persistido.
// Un reporte sin ID se inserta; con ID se actualiza (upsert por id).
func (r *Reporte) EsNuevo() bool {
	return r.ID == ""
}

// NuevoReporte devuelve un reporte con los valores por defecto del formulario.
func NuevoReporte() Reporte {
	return Reporte{
		MensajeInicio: MensajeInicioDefecto,
		Estado:        EstadoPendiente,
	}
}
