// Package realtime conecta los cambios de la tabla de reportes con el
// tablero: un listener de LISTEN/NOTIFY recibe los avisos de la base y
// un difusor los reparte a los navegadores suscriptos por SSE.
package realtime

import (
	"sync"
)

// Difusor reparte cada evento a todos los suscriptores vivos.
type Difusor struct {
	mu        sync.Mutex
	subs      map[chan []byte]struct{}
	capacidad int // tamaño de cola por suscriptor
}

// NewDifusor crea el difusor con la capacidad de cola indicada.
func NewDifusor(capacidad int) *Difusor {
	if capacidad <= 0 {
		capacidad = 64
	}
	return &Difusor{
		subs:      make(map[chan []byte]struct{}),
		capacidad: capacidad,
	}
}

// Suscribir da de alta un suscriptor y devuelve su canal junto con la
// función para darse de baja. La baja es idempotente.
func (d *Difusor) Suscribir() (<-chan []byte, func()) {
	ch := make(chan []byte, d.capacidad)
	d.mu.Lock()
	d.subs[ch] = struct{}{}
	d.mu.Unlock()

	var una sync.Once
	baja := func() {
		una.Do(func() {
			d.mu.Lock()
			delete(d.subs, ch)
			d.mu.Unlock()
			close(ch)
		})
	}
	return ch, baja
}

// Publicar entrega el evento a cada suscriptor sin bloquear: si la cola
// de un suscriptor está llena, ese suscriptor pierde el evento.
func (d *Difusor) Publicar(evento []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for ch := range d.subs {
		select {
		case ch <- evento:
		default:
		}
	}
}

// Suscriptores devuelve la cantidad de suscriptores activos.
func (d *Difusor) Suscriptores() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}
