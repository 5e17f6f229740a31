package service

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// Errores del servicio de reportes.
var (
	ErrReporteNoEncontrado = errors.New("reporte no encontrado")
	ErrValidacion          = errors.New("el reporte tiene campos obligatorios sin completar")
)

// AlmacenReportes — lo que el servicio necesita del repositorio de reportes.
type AlmacenReportes interface {
	Crear(*domain.Reporte) error
	Actualizar(*domain.Reporte) error
	GetByID(id string) (*domain.Reporte, error)
	Ultimo() (*domain.Reporte, error)
	UltimoMaterial() (string, error)
	Listar(limite int) ([]*domain.Reporte, error)
}

// AlmacenSugerencias — escritura de sugerencias de autocompletado.
type AlmacenSugerencias interface {
	Upsert(campo, valor string) error
}

// ReporteService — lógica de negocio del formulario de reportes.
type ReporteService struct {
	reportes    AlmacenReportes
	sugerencias AlmacenSugerencias
}

// NewReporteService crea el servicio.
func NewReporteService(reportes AlmacenReportes, sugerencias AlmacenSugerencias) *ReporteService {
	return &ReporteService{
		reportes:    reportes,
		sugerencias: sugerencias,
	}
}

// camposObligatorios del formulario; el resto es opcional.
var camposObligatorios = []string{"cliente", "paciente", "medico", "fecha_cirugia"}

// Validar revisa los campos obligatorios y devuelve un mapa campo →
// mensaje por cada faltante. Mapa vacío significa formulario válido.
func Validar(r *domain.Reporte) map[string]string {
	valores := map[string]string{
		"cliente":       r.Cliente,
		"paciente":      r.Paciente,
		"medico":        r.Medico,
		"fecha_cirugia": r.FechaCirugia,
	}
	errores := make(map[string]string)
	for _, campo := range camposObligatorios {
		if strings.TrimSpace(valores[campo]) == "" {
			errores[campo] = "El campo " + strings.ReplaceAll(campo, "_", " ") + " es requerido."
		}
	}
	return errores
}

// Guardar valida y persiste el reporte. El primer guardado inserta y
// deja el ID asignado en el reporte; los siguientes actualizan esa misma
// fila (upsert por id: editar y volver a guardar no duplica reportes).
//
// Después de escribir el reporte se guardan las sugerencias de médico,
// instrumentador y lugar, en paralelo entre sí. Si alguna falla sólo se
// registra en el log: el reporte ya quedó guardado y no se revierte.
func (s *ReporteService) Guardar(r *domain.Reporte) (map[string]string, error) {
	if errores := Validar(r); len(errores) > 0 {
		return errores, ErrValidacion
	}

	// La fecha de envío se fija en el momento del guardado.
	r.FechaEnvio = time.Now().Format("2006-01-02")
	if r.Estado == "" {
		r.Estado = domain.EstadoPendiente
	}

	if r.EsNuevo() {
		if err := s.reportes.Crear(r); err != nil {
			return nil, err
		}
	} else {
		existente, err := s.reportes.GetByID(r.ID)
		if err != nil {
			return nil, err
		}
		if existente == nil {
			return nil, ErrReporteNoEncontrado
		}
		r.CreadoEn = existente.CreadoEn
		if err := s.reportes.Actualizar(r); err != nil {
			return nil, err
		}
	}
	GlobalStats.IncrementarReportes()

	// El reporte primero, las sugerencias después: ese orden sí está
	// garantizado. Entre sugerencias no hay orden.
	var wg sync.WaitGroup
	for campo, valor := range map[string]string{
		"medico":         r.Medico,
		"instrumentador": r.Instrumentador,
		"lugar_cirugia":  r.LugarCirugia,
	} {
		valor = strings.TrimSpace(valor)
		if valor == "" {
			continue
		}
		wg.Add(1)
		go func(campo, valor string) {
			defer wg.Done()
			if err := s.sugerencias.Upsert(campo, valor); err != nil {
				log.Printf("no se pudo guardar la sugerencia %s=%q: %v", campo, valor, err)
			}
		}(campo, valor)
	}
	wg.Wait()

	return nil, nil
}

// GetByID devuelve un reporte persistido.
func (s *ReporteService) GetByID(id string) (*domain.Reporte, error) {
	r, err := s.reportes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrReporteNoEncontrado
	}
	return r, nil
}

// CargarUltimo devuelve el último reporte guardado, para el botón de
// precarga del formulario.
func (s *ReporteService) CargarUltimo() (*domain.Reporte, error) {
	r, err := s.reportes.Ultimo()
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrReporteNoEncontrado
	}
	return r, nil
}

// CargarUltimoMaterial agrega el material del último reporte al texto
// actual del campo, separado por salto de línea. Si no hay material
// previo, el texto actual vuelve tal cual.
func (s *ReporteService) CargarUltimoMaterial(actual string) (string, error) {
	ultimo, err := s.reportes.UltimoMaterial()
	if err != nil {
		return "", err
	}
	if ultimo == "" {
		return actual, nil
	}
	actual = strings.TrimSpace(actual)
	if actual == "" {
		return ultimo, nil
	}
	return actual + "\n" + ultimo, nil
}

// Listar devuelve los últimos reportes para el listado del admin.
func (s *ReporteService) Listar(limite int) ([]*domain.Reporte, error) {
	return s.reportes.Listar(limite)
}
