package dashboard

import (
	"errors"
	"testing"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// escritorFalso registra las escrituras y permite forzar fallas.
type escritorFalso struct {
	fallar   bool
	llamadas int
}

func (e *escritorFalso) ActualizarEstado(id, estado string) error {
	e.llamadas++
	if e.fallar {
		return errors.New("la base no responde")
	}
	return nil
}

func reportesDePrueba() []*domain.Reporte {
	return []*domain.Reporte{
		{ID: "r1", Medico: "Dr. Gómez", LugarCirugia: "Sanatorio Norte", Estado: domain.EstadoPendiente},
		{ID: "r2", Medico: "Dra. Ruiz", LugarCirugia: "Hospital Central", Estado: domain.EstadoEnProceso},
		{ID: "r3", Medico: "Dr. Gómez", LugarCirugia: "Hospital Central", Estado: domain.EstadoPendiente},
	}
}

func TestAgruparConFiltros(t *testing.T) {
	tb := NewTablero(&escritorFalso{})
	tb.Cargar(reportesDePrueba())

	columnas := tb.Agrupar(Filtros{})
	if len(columnas) != 4 {
		t.Fatalf("deben existir las 4 columnas, hay %d", len(columnas))
	}
	if len(columnas[domain.EstadoPendiente]) != 2 {
		t.Fatalf("pendientes: esperaba 2, hay %d", len(columnas[domain.EstadoPendiente]))
	}

	columnas = tb.Agrupar(Filtros{Medico: "Dr. Gómez", Lugar: "Hospital Central"})
	if len(columnas[domain.EstadoPendiente]) != 1 || columnas[domain.EstadoPendiente][0].Reporte.ID != "r3" {
		t.Fatalf("filtro combinado incorrecto: %+v", columnas[domain.EstadoPendiente])
	}
}

func TestCambiarEstadoConfirmado(t *testing.T) {
	esc := &escritorFalso{}
	tb := NewTablero(esc)
	tb.Cargar(reportesDePrueba())

	if err := tb.CambiarEstado("r1", domain.EstadoEnTransito); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if esc.llamadas != 1 {
		t.Fatalf("esperaba 1 escritura remota, hubo %d", esc.llamadas)
	}

	columnas := tb.Agrupar(Filtros{})
	transito := columnas[domain.EstadoEnTransito]
	if len(transito) != 1 || transito[0].Reporte.ID != "r1" {
		t.Fatalf("la tarjeta no se movió: %+v", transito)
	}
	if transito[0].Fase != FaseConfirmado {
		t.Fatalf("fase esperada confirmado, quedó %s", transito[0].Fase)
	}
}

// Si la escritura remota falla, la tarjeta vuelve a su columna original.
func TestCambiarEstadoRevertido(t *testing.T) {
	esc := &escritorFalso{fallar: true}
	tb := NewTablero(esc)
	tb.Cargar(reportesDePrueba())

	if err := tb.CambiarEstado("r1", domain.EstadoCompletado); err == nil {
		t.Fatal("esperaba el error de la escritura remota")
	}

	columnas := tb.Agrupar(Filtros{})
	if len(columnas[domain.EstadoCompletado]) != 0 {
		t.Fatal("la tarjeta no debía quedar en la columna nueva")
	}
	pendientes := columnas[domain.EstadoPendiente]
	var tarjeta *Tarjeta
	for i := range pendientes {
		if pendientes[i].Reporte.ID == "r1" {
			tarjeta = &pendientes[i]
		}
	}
	if tarjeta == nil {
		t.Fatal("la tarjeta no volvió a pendientes")
	}
	if tarjeta.Fase != FaseRevertido {
		t.Fatalf("fase esperada revertido, quedó %s", tarjeta.Fase)
	}
}

func TestCambiarEstadoInexistente(t *testing.T) {
	tb := NewTablero(&escritorFalso{})
	if err := tb.CambiarEstado("nadie", domain.EstadoCompletado); !errors.Is(err, ErrCirugiaNoEncontrada) {
		t.Fatalf("error inesperado: %v", err)
	}
}

func TestCambiarEstadoInvalido(t *testing.T) {
	esc := &escritorFalso{}
	tb := NewTablero(esc)
	tb.Cargar(reportesDePrueba())

	if err := tb.CambiarEstado("r1", "archivados"); !errors.Is(err, ErrEstadoInvalido) {
		t.Fatalf("error inesperado: %v", err)
	}
	if esc.llamadas != 0 {
		t.Fatal("un estado inválido no debe llegar al escritor")
	}
}

// El evento de tiempo real hace upsert por id: actualiza si la tarjeta
// existe, inserta si no. Un UPDATE huérfano también inserta.
func TestAplicarUpsert(t *testing.T) {
	tb := NewTablero(&escritorFalso{})
	tb.Cargar(reportesDePrueba())

	tb.Aplicar("UPDATE", domain.Reporte{ID: "r1", Medico: "Dr. Gómez", Estado: domain.EstadoEnProceso})
	tb.Aplicar("UPDATE", domain.Reporte{ID: "r9", Medico: "Dra. Paz", Estado: domain.EstadoPendiente})

	columnas := tb.Agrupar(Filtros{})
	if len(columnas[domain.EstadoEnProceso]) != 2 {
		t.Fatalf("el UPDATE de r1 no se aplicó: %+v", columnas[domain.EstadoEnProceso])
	}
	if len(columnas[domain.EstadoPendiente]) != 2 {
		t.Fatalf("el evento de r9 debía insertar la tarjeta")
	}
}

func TestMedicosYLugaresSinDuplicados(t *testing.T) {
	tb := NewTablero(&escritorFalso{})
	tb.Cargar(reportesDePrueba())

	medicos := tb.Medicos()
	if len(medicos) != 2 {
		t.Fatalf("médicos sin duplicar: esperaba 2, hay %d (%v)", len(medicos), medicos)
	}
	lugares := tb.Lugares()
	if len(lugares) != 2 {
		t.Fatalf("lugares sin duplicar: esperaba 2, hay %d (%v)", len(lugares), lugares)
	}
}
