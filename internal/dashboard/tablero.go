// Package dashboard mantiene el tablero kanban de cirugías: la copia
// en memoria de los reportes vigentes, los filtros, el agrupado por
// estado y el cambio de columna con actualización optimista.
package dashboard

import (
	"errors"
	"sync"
	"time"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// Fases de una tarjeta durante un cambio de estado optimista.
// La tarjeta se mueve en la UI antes de confirmar la escritura remota;
// si la escritura falla, vuelve a su columna anterior.
const (
	FaseMostrado           = "mostrado"
	FaseEscrituraPendiente = "escritura-pendiente"
	FaseConfirmado         = "confirmado"
	FaseRevertido          = "revertido"
)

// Errores del tablero.
var (
	ErrCirugiaNoEncontrada = errors.New("cirugía no encontrada en el tablero")
	ErrEstadoInvalido      = errors.New("estado de tablero desconocido")
)

// estadosValidos — columnas del tablero.
var estadosValidos = map[string]bool{
	domain.EstadoPendiente:  true,
	domain.EstadoEnProceso:  true,
	domain.EstadoEnTransito: true,
	domain.EstadoCompletado: true,
}

// EscritorEstado es lo único que el tablero necesita del repositorio.
type EscritorEstado interface {
	ActualizarEstado(id, estado string) error
}

// Tarjeta — un reporte en el tablero más su fase de sincronización.
type Tarjeta struct {
	Reporte domain.Reporte `json:"reporte"`
	Fase    string         `json:"fase"`
}

// Filtros del tablero; vacío significa sin filtrar.
type Filtros struct {
	Medico string
	Lugar  string
}

// Tablero — estado en memoria del dashboard. Se puebla con la consulta
// inicial y se mantiene al día con los eventos de tiempo real.
type Tablero struct {
	mu       sync.RWMutex
	tarjetas []Tarjeta
	escritor EscritorEstado
}

// NewTablero crea el tablero con el escritor de estados.
func NewTablero(escritor EscritorEstado) *Tablero {
	return &Tablero{escritor: escritor}
}

// Cargar reemplaza el contenido del tablero con la consulta inicial.
func (t *Tablero) Cargar(reportes []*domain.Reporte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tarjetas = t.tarjetas[:0]
	for _, r := range reportes {
		t.tarjetas = append(t.tarjetas, Tarjeta{Reporte: *r, Fase: FaseMostrado})
	}
}

// Aplicar hace el upsert por id de un evento de tiempo real.
// Un UPDATE de un id desconocido inserta la tarjeta: el orden
// update-antes-que-insert para un mismo id no se defiende.
func (t *Tablero) Aplicar(evento string, r domain.Reporte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.tarjetas {
		if t.tarjetas[i].Reporte.ID == r.ID {
			t.tarjetas[i].Reporte = r
			t.tarjetas[i].Fase = FaseMostrado
			return
		}
	}
	t.tarjetas = append(t.tarjetas, Tarjeta{Reporte: r, Fase: FaseMostrado})
}

// Agrupar devuelve las tarjetas que pasan los filtros, repartidas por
// columna de estado. Las cuatro columnas están siempre presentes.
func (t *Tablero) Agrupar(f Filtros) map[string][]Tarjeta {
	t.mu.RLock()
	defer t.mu.RUnlock()

	columnas := map[string][]Tarjeta{
		domain.EstadoPendiente:  {},
		domain.EstadoEnProceso:  {},
		domain.EstadoEnTransito: {},
		domain.EstadoCompletado: {},
	}
	for _, tj := range t.tarjetas {
		if f.Medico != "" && tj.Reporte.Medico != f.Medico {
			continue
		}
		if f.Lugar != "" && tj.Reporte.LugarCirugia != f.Lugar {
			continue
		}
		if _, ok := columnas[tj.Reporte.Estado]; ok {
			columnas[tj.Reporte.Estado] = append(columnas[tj.Reporte.Estado], tj)
		}
	}
	return columnas
}

// CambiarEstado mueve una tarjeta de columna en dos fases: primero el
// cambio local (escritura-pendiente), después la escritura remota.
// Si la escritura falla, el estado anterior se restaura y la tarjeta
// queda en fase revertido; el error se devuelve para que el handler lo
// muestre. Nunca se reintenta solo.
func (t *Tablero) CambiarEstado(id, nuevoEstado string) error {
	if !estadosValidos[nuevoEstado] {
		return ErrEstadoInvalido
	}
	t.mu.Lock()
	indice := -1
	for i := range t.tarjetas {
		if t.tarjetas[i].Reporte.ID == id {
			indice = i
			break
		}
	}
	if indice == -1 {
		t.mu.Unlock()
		return ErrCirugiaNoEncontrada
	}

	estadoAnterior := t.tarjetas[indice].Reporte.Estado
	t.tarjetas[indice].Reporte.Estado = nuevoEstado
	t.tarjetas[indice].Fase = FaseEscrituraPendiente
	t.mu.Unlock()

	// Escritura remota fuera del lock: puede tardar.
	err := t.escritor.ActualizarEstado(id, nuevoEstado)

	t.mu.Lock()
	defer t.mu.Unlock()
	// La tarjeta pudo haberse movido por un evento de tiempo real.
	for i := range t.tarjetas {
		if t.tarjetas[i].Reporte.ID != id {
			continue
		}
		if err != nil {
			t.tarjetas[i].Reporte.Estado = estadoAnterior
			t.tarjetas[i].Fase = FaseRevertido
		} else if t.tarjetas[i].Fase == FaseEscrituraPendiente {
			t.tarjetas[i].Fase = FaseConfirmado
		}
		break
	}
	return err
}

// Medicos y Lugares alimentan los selectores de filtro con los valores
// presentes en el tablero, sin duplicados y en orden de aparición.
func (t *Tablero) Medicos() []string {
	return t.valores(func(r domain.Reporte) string { return r.Medico })
}
func (t *Tablero) Lugares() []string {
	return t.valores(func(r domain.Reporte) string { return r.LugarCirugia })
}

func (t *Tablero) valores(campo func(domain.Reporte) string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	vistos := make(map[string]bool)
	var lista []string
	for _, tj := range t.tarjetas {
		v := campo(tj.Reporte)
		if v == "" || vistos[v] {
			continue
		}
		vistos[v] = true
		lista = append(lista, v)
	}
	return lista
}

// HoyISO devuelve la fecha local de hoy en formato ISO, el corte de la
// consulta inicial del tablero.
func HoyISO() string {
	return time.Now().Format("2006-01-02")
}
