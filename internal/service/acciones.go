package service

import (
	"log"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/trigger"
)

// ObservadorAcciones — el consumidor del disparador de acciones.
//
// La barra de herramientas deja acciones en el casillero sin conocer la
// lógica de negocio; este observador las drena y ejecuta las que el
// servidor puede resolver solo. El casillero sobreescribe: si dos
// acciones llegan antes de un drenado, la primera se pierde y eso es
// comportamiento aceptado.
type ObservadorAcciones struct {
	disparador *trigger.Disparador
	correos    *CorreoService
}

// NewObservadorAcciones crea el observador.
func NewObservadorAcciones(disparador *trigger.Disparador, correos *CorreoService) *ObservadorAcciones {
	return &ObservadorAcciones{
		disparador: disparador,
		correos:    correos,
	}
}

// Ejecutar drena el casillero cada vez que hay aviso. Bloquea: se lanza
// en su propia goroutine desde main y vive lo que viva el proceso.
func (o *ObservadorAcciones) Ejecutar() {
	for range o.disparador.Aviso() {
		a := o.disparador.Consumir()
		if a == nil {
			continue
		}
		o.ejecutar(a)
	}
}

// ejecutar resuelve una acción nombrada. Las acciones de correo se
// despachan acá; las puramente visuales (vista previa, compartir,
// reset) las resuelve la interfaz con sus propios endpoints y acá sólo
// queda constancia de que el botón se usó.
func (o *ObservadorAcciones) ejecutar(a *trigger.Accion) {
	GlobalStats.IncrementarAcciones()

	switch a.Nombre {
	case trigger.AccionEnviarCorreo:
		tipo := a.Payload["tipo"]
		reporteID := a.Payload["reporte_id"]
		if _, err := o.correos.Enviar(tipo, reporteID, ""); err != nil {
			log.Printf("acción %s (tipo %s) falló: %v", a.Nombre, tipo, err)
			return
		}
		log.Printf("acción %s despachada para el reporte %s", a.Nombre, reporteID)
	case trigger.AccionPedido:
		// El pedido de material es un envío a la casilla interna.
		reporteID := a.Payload["reporte_id"]
		if _, err := o.correos.Enviar(domain.EnvioInterno, reporteID, ""); err != nil {
			log.Printf("acción %s falló: %v", a.Nombre, err)
			return
		}
		log.Printf("pedido despachado para el reporte %s", reporteID)
	default:
		log.Printf("acción %s consumida (la resuelve la interfaz)", a.Nombre)
	}
}
