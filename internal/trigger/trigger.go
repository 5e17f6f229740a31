// Package trigger implementa el disparador de acciones de un solo
// casillero que desacopla la barra de herramientas de la lógica del
// formulario: un extremo deja una acción nombrada, un observador la
// consume y la ejecuta.
package trigger

import (
	"sync"
	"time"
)

// Nombres de acción conocidos por el observador.
const (
	AccionVistaPrevia  = "generar-vista-previa"
	AccionGuardar      = "guardar-reporte"
	AccionPedido       = "pedido"
	AccionCompartir    = "compartir"
	AccionReset        = "reset-formulario"
	AccionEnviarCorreo = "enviar-correo" // payload: tipo = cliente|interno|art
)

// Accion — el valor que viaja por el casillero.
type Accion struct {
	Nombre  string            `json:"nombre"`
	Payload map[string]string `json:"payload,omitempty"`
	Marca   time.Time         `json:"marca"`
}

// Disparador — casillero de una sola posición con semántica de
// sobreescritura: cada disparo pisa al anterior, se haya consumido o no.
// Dos disparos seguidos antes de que el observador drene pierden el
// primero. Es el contrato, no una cola: quien necesite garantía de
// entrega no debe apoyarse en este mecanismo.
type Disparador struct {
	mu     sync.Mutex
	accion *Accion
	aviso  chan struct{} // capacidad 1, despierta al observador
}

// Nuevo crea un disparador vacío.
func Nuevo() *Disparador {
	return &Disparador{
		aviso: make(chan struct{}, 1),
	}
}

// Disparar deja una acción en el casillero, pisando la anterior si la
// había, y avisa al observador. Nunca bloquea.
func (d *Disparador) Disparar(nombre string, payload map[string]string) {
	d.mu.Lock()
	d.accion = &Accion{
		Nombre:  nombre,
		Payload: payload,
		Marca:   time.Now(),
	}
	d.mu.Unlock()

	// Aviso sin bloquear: si ya hay un aviso pendiente alcanza con ése.
	select {
	case d.aviso <- struct{}{}:
	default:
	}
}

// Consumir devuelve la acción pendiente y limpia el casillero.
// Devuelve nil si no había nada.
func (d *Disparador) Consumir() *Accion {
	d.mu.Lock()
	defer d.mu.Unlock()
	a := d.accion
	d.accion = nil
	return a
}

// Pendiente devuelve la acción sin consumirla.
func (d *Disparador) Pendiente() *Accion {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.accion
}

// Limpiar vacía el casillero sin devolver nada.
func (d *Disparador) Limpiar() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accion = nil
}

// Aviso expone el canal por el que el observador espera disparos.
func (d *Disparador) Aviso() <-chan struct{} {
	return d.aviso
}
