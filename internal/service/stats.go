package service

import (
	"sync"
	"time"
)

// Stats — contadores de actividad del servicio.
type Stats struct {
	mu                 sync.RWMutex
	ReportesGuardados  int64     // Guardados exitosos (altas y ediciones)
	EnviosIntentados   int64     // Intentos registrados en la bitácora
	AccionesDisparadas int64     // Acciones consumidas del disparador
	EventosTablero     int64     // Notificaciones de tiempo real aplicadas
	UltimoEvento       time.Time // Momento del último evento de tablero
}

// GlobalStats — estadísticas globales del proceso.
var GlobalStats = &Stats{}

// IncrementarReportes suma un guardado exitoso.
func (s *Stats) IncrementarReportes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ReportesGuardados++
}

// IncrementarEnvios suma un intento de envío.
func (s *Stats) IncrementarEnvios() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.EnviosIntentados++
}

// IncrementarAcciones suma una acción consumida.
func (s *Stats) IncrementarAcciones() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AccionesDisparadas++
}

// IncrementarEventos suma un evento de tiempo real aplicado al tablero.
func (s *Stats) IncrementarEventos() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.EventosTablero++
	s.UltimoEvento = time.Now()
}

// GetStats devuelve una copia de los contadores.
func (s *Stats) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		ReportesGuardados:  s.ReportesGuardados,
		EnviosIntentados:   s.EnviosIntentados,
		AccionesDisparadas: s.AccionesDisparadas,
		EventosTablero:     s.EventosTablero,
		UltimoEvento:       s.UltimoEvento,
	}
}
