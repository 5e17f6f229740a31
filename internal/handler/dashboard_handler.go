package handler

import (
	"bufio"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/dashboard"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/realtime"
)

// DashboardHandler — tablero kanban de cirugías y su canal de eventos
type DashboardHandler struct {
	tablero *dashboard.Tablero
	difusor *realtime.Difusor
}

// NewDashboardHandler crea el manejador
func NewDashboardHandler(tablero *dashboard.Tablero, difusor *realtime.Difusor) *DashboardHandler {
	return &DashboardHandler{tablero: tablero, difusor: difusor}
}

// EstadoRequest — destino de una tarjeta arrastrada
type EstadoRequest struct {
	Estado string `json:"estado"` // pendientes, en-proceso, en-transito o completados
}

// TableroResponse — columnas del tablero más los valores de filtro
type TableroResponse struct {
	Columnas map[string][]dashboard.Tarjeta `json:"columnas"`
	Medicos  []string                       `json:"medicos"`
	Lugares  []string                       `json:"lugares"`
}

// Cirugias devuelve el tablero agrupado por estado
// @Summary Tablero de cirugías
// @Description Devuelve las cirugías del día agrupadas en las cuatro columnas del tablero, con los valores disponibles para filtrar
// @Tags dashboard
// @Produce json
// @Param medico query string false "Filtrar por médico"
// @Param lugar query string false "Filtrar por lugar de cirugía"
// @Success 200 {object} TableroResponse "Tablero agrupado"
// @Router /dashboard/cirugias [get]
func (h *DashboardHandler) Cirugias(c *fiber.Ctx) error {
	filtros := dashboard.Filtros{
		Medico: c.Query("medico"),
		Lugar:  c.Query("lugar"),
	}
	return c.JSON(TableroResponse{
		Columnas: h.tablero.Agrupar(filtros),
		Medicos:  h.tablero.Medicos(),
		Lugares:  h.tablero.Lugares(),
	})
}

// CambiarEstado mueve una tarjeta a otra columna
// @Summary Cambiar estado de una cirugía
// @Description Aplica el cambio de forma optimista: la tarjeta se mueve al instante y si la escritura remota falla vuelve a su columna anterior
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "ID del reporte"
// @Param estado body EstadoRequest true "Estado destino"
// @Success 200 {object} map[string]string "Cambio confirmado"
// @Failure 400 {object} ErrorResponse "Cuerpo o estado inválido"
// @Failure 404 {object} ErrorResponse "La cirugía no está en el tablero"
// @Failure 502 {object} ErrorResponse "La escritura remota falló; el cambio se revirtió"
// @Router /dashboard/cirugias/{id}/estado [patch]
func (h *DashboardHandler) CambiarEstado(c *fiber.Ctx) error {
	var req EstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "No se pudo leer el estado enviado",
		})
	}

	err := h.tablero.CambiarEstado(c.Params("id"), req.Estado)
	if err != nil {
		if errors.Is(err, dashboard.ErrCirugiaNoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "La cirugía no está en el tablero",
			})
		}
		if errors.Is(err, dashboard.ErrEstadoInvalido) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "Estado desconocido",
				Details: "Los estados válidos son pendientes, en-proceso, en-transito y completados",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "No se pudo persistir el cambio",
			Details: "La tarjeta volvió a su columna anterior",
		})
	}

	return c.JSON(fiber.Map{"estado": req.Estado})
}

// Eventos transmite los cambios del tablero por SSE
// @Summary Eventos del tablero
// @Description Canal server-sent events con los reportes insertados o actualizados, para refrescar el tablero sin recargar
// @Tags dashboard
// @Produce text/event-stream
// @Success 200 {string} string "Flujo de eventos"
// @Router /dashboard/eventos [get]
func (h *DashboardHandler) Eventos(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	canal, cancelar := h.difusor.Suscribir()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancelar()

		// Un comentario inicial confirma la conexión del lado del
		// navegador; después, un ping periódico la mantiene viva.
		fmt.Fprintf(w, ": conectado\n\n")
		if err := w.Flush(); err != nil {
			return
		}

		ping := time.NewTicker(30 * time.Second)
		defer ping.Stop()

		for {
			select {
			case evento, ok := <-canal:
				if !ok {
					return
				}
				fmt.Fprintf(w, "data: %s\n\n", evento)
			case <-ping.C:
				fmt.Fprintf(w, ": ping\n\n")
			}
			// El Flush falla cuando el navegador cortó; con eso basta
			// para terminar la suscripción.
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))

	return nil
}
