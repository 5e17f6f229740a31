package realtime

import (
	"encoding/json"
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// Canal de NOTIFY que disparan los triggers de la tabla 'reportes'.
const CanalReportes = "reportes_cambios"

// EventoReporte — payload que arma el trigger de la base en cada
// INSERT o UPDATE de un reporte.
type EventoReporte struct {
	Evento  string         `json:"evento"` // INSERT | UPDATE
	Reporte domain.Reporte `json:"reporte"`
}

// Listener escucha el canal de Postgres y reparte cada aviso: primero
// al callback (que mantiene el tablero al día) y después al difusor
// (que lo empuja a los navegadores).
type Listener struct {
	pgl     *pq.Listener
	difusor *Difusor
	aplicar func(EventoReporte)
	cerrar  chan struct{}
}

// NewListener crea el listener sobre la misma cadena de conexión que
// usa el resto de la aplicación.
func NewListener(dsn string, difusor *Difusor, aplicar func(EventoReporte)) *Listener {
	pgl := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("listener de reportes: %v", err)
		}
	})
	return &Listener{
		pgl:     pgl,
		difusor: difusor,
		aplicar: aplicar,
		cerrar:  make(chan struct{}),
	}
}

// Start suscribe al canal y procesa avisos hasta que se cierre.
// Bloquea: se lanza en su propia goroutine desde main.
func (l *Listener) Start() error {
	if err := l.pgl.Listen(CanalReportes); err != nil {
		return err
	}
	log.Printf("Escuchando cambios de reportes en el canal %q", CanalReportes)

	for {
		select {
		case n := <-l.pgl.Notify:
			// Tras una reconexión el driver entrega un aviso nil.
			if n == nil {
				continue
			}
			l.procesar([]byte(n.Extra))
		case <-time.After(90 * time.Second):
			// Ping periódico para detectar conexiones muertas.
			go func() {
				if err := l.pgl.Ping(); err != nil {
					log.Printf("ping del listener: %v", err)
				}
			}()
		case <-l.cerrar:
			return nil
		}
	}
}

// Close corta el procesamiento y cierra la conexión del listener.
func (l *Listener) Close() error {
	close(l.cerrar)
	return l.pgl.Close()
}

// procesar decodifica el payload del trigger y lo reparte tal cual
// llegó. No hay deduplicación: si la base avisa dos veces, el tablero
// aplica dos veces (el upsert por id lo hace inocuo).
func (l *Listener) procesar(payload []byte) {
	var ev EventoReporte
	if err := json.Unmarshal(payload, &ev); err != nil {
		log.Printf("payload de notificación inválido: %v", err)
		return
	}
	if l.aplicar != nil {
		l.aplicar(ev)
	}
	l.difusor.Publicar(payload)
}
