package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// almacenFalso — repositorio de reportes en memoria para las pruebas.
type almacenFalso struct {
	mu      sync.Mutex
	filas   map[string]domain.Reporte
	inserts int
	updates int
	fallar  bool
}

func nuevoAlmacenFalso() *almacenFalso {
	return &almacenFalso{filas: make(map[string]domain.Reporte)}
}

func (a *almacenFalso) Crear(r *domain.Reporte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fallar {
		return errors.New("la base no responde")
	}
	r.ID = "generado-1"
	a.filas[r.ID] = *r
	a.inserts++
	return nil
}

func (a *almacenFalso) Actualizar(r *domain.Reporte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filas[r.ID] = *r
	a.updates++
	return nil
}

func (a *almacenFalso) GetByID(id string) (*domain.Reporte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if r, ok := a.filas[id]; ok {
		copia := r
		return &copia, nil
	}
	return nil, nil
}

func (a *almacenFalso) Ultimo() (*domain.Reporte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range a.filas {
		copia := r
		return &copia, nil
	}
	return nil, nil
}

func (a *almacenFalso) UltimoMaterial() (string, error) {
	u, err := a.Ultimo()
	if err != nil || u == nil {
		return "", err
	}
	return u.Material, nil
}

func (a *almacenFalso) Listar(limite int) ([]*domain.Reporte, error) {
	return nil, nil
}

// sugerenciasFalsas registra los upserts recibidos.
type sugerenciasFalsas struct {
	mu     sync.Mutex
	vistas map[string]string
}

func (s *sugerenciasFalsas) Upsert(campo, valor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vistas == nil {
		s.vistas = make(map[string]string)
	}
	s.vistas[campo] = valor
	return nil
}

func reporteValido() *domain.Reporte {
	return &domain.Reporte{
		Cliente:        "ACME",
		Paciente:       "Juan Pérez",
		Medico:         "Dr. Gómez",
		Instrumentador: "L. Díaz",
		LugarCirugia:   "Sanatorio Norte",
		FechaCirugia:   "2024-03-15",
	}
}

func TestValidar(t *testing.T) {
	errores := Validar(&domain.Reporte{})
	for _, campo := range []string{"cliente", "paciente", "medico", "fecha_cirugia"} {
		if errores[campo] == "" {
			t.Fatalf("falta el error de validación para %s", campo)
		}
	}
	if len(errores) != 4 {
		t.Fatalf("sólo los 4 obligatorios deben fallar, fallaron %d", len(errores))
	}
	if errores["fecha_cirugia"] != "El campo fecha cirugia es requerido." {
		t.Fatalf("mensaje inesperado: %q", errores["fecha_cirugia"])
	}
	if len(Validar(reporteValido())) != 0 {
		t.Fatal("un reporte completo no debe tener errores de validación")
	}
}

func TestGuardarBloqueaInvalido(t *testing.T) {
	almacen := nuevoAlmacenFalso()
	svc := NewReporteService(almacen, &sugerenciasFalsas{})

	errores, err := svc.Guardar(&domain.Reporte{Paciente: "Ana"})
	if !errors.Is(err, ErrValidacion) {
		t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
	}
	if len(errores) == 0 {
		t.Fatal("deben volver los errores por campo")
	}
	if almacen.inserts != 0 {
		t.Fatal("un formulario inválido no debe llegar a la base")
	}
}

// Guardar dos veces (la segunda ya con ID) actualiza la misma fila:
// en total la tabla gana exactamente una fila.
func TestGuardarDosVecesUnaSolaFila(t *testing.T) {
	almacen := nuevoAlmacenFalso()
	svc := NewReporteService(almacen, &sugerenciasFalsas{})
	r := reporteValido()

	if _, err := svc.Guardar(r); err != nil {
		t.Fatalf("primer guardado: %v", err)
	}
	if r.ID == "" {
		t.Fatal("el primer guardado debe asignar el ID")
	}

	r.Material = "Tornillo 4mm"
	if _, err := svc.Guardar(r); err != nil {
		t.Fatalf("segundo guardado: %v", err)
	}

	if almacen.inserts != 1 || almacen.updates != 1 {
		t.Fatalf("esperaba 1 insert y 1 update, hubo %d y %d", almacen.inserts, almacen.updates)
	}
	if len(almacen.filas) != 1 {
		t.Fatalf("la tabla debe ganar exactamente una fila, tiene %d", len(almacen.filas))
	}
	if almacen.filas[r.ID].Material != "Tornillo 4mm" {
		t.Fatal("la edición no se persistió")
	}
}

func TestGuardarFijaFechaDeEnvioYSugerencias(t *testing.T) {
	almacen := nuevoAlmacenFalso()
	sug := &sugerenciasFalsas{}
	svc := NewReporteService(almacen, sug)
	r := reporteValido()

	if _, err := svc.Guardar(r); err != nil {
		t.Fatalf("guardar: %v", err)
	}
	if r.FechaEnvio == "" {
		t.Fatal("el guardado debe fijar la fecha de envío")
	}
	if sug.vistas["medico"] != "Dr. Gómez" ||
		sug.vistas["instrumentador"] != "L. Díaz" ||
		sug.vistas["lugar_cirugia"] != "Sanatorio Norte" {
		t.Fatalf("faltan sugerencias: %+v", sug.vistas)
	}
}

func TestCargarUltimoMaterial(t *testing.T) {
	almacen := nuevoAlmacenFalso()
	svc := NewReporteService(almacen, &sugerenciasFalsas{})

	r := reporteValido()
	r.Material = "Placa titanio"
	if _, err := svc.Guardar(r); err != nil {
		t.Fatalf("guardar: %v", err)
	}

	// Con el campo vacío, vuelve el material del último reporte.
	combinado, err := svc.CargarUltimoMaterial("")
	if err != nil || combinado != "Placa titanio" {
		t.Fatalf("esperaba el material previo, obtuve %q (%v)", combinado, err)
	}

	// Con texto cargado, el material previo se agrega debajo.
	combinado, err = svc.CargarUltimoMaterial("Tornillo 4mm")
	if err != nil || combinado != "Tornillo 4mm\nPlaca titanio" {
		t.Fatalf("combinación incorrecta: %q (%v)", combinado, err)
	}
}
