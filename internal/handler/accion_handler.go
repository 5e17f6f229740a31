package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/trigger"
)

// AccionHandler — disparo y consulta de acciones de la barra de navegación
type AccionHandler struct {
	disparador *trigger.Disparador
}

// NewAccionHandler crea el manejador
func NewAccionHandler(disparador *trigger.Disparador) *AccionHandler {
	return &AccionHandler{disparador: disparador}
}

// AccionRequest — acción a disparar
type AccionRequest struct {
	Nombre  string            `json:"nombre"`            // generar-vista-previa, guardar-reporte, pedido, compartir, reset-formulario o enviar-correo
	Payload map[string]string `json:"payload,omitempty"` // Datos extra, según la acción
}

// Disparar publica una acción para el observador
// @Summary Disparar acción
// @Description Publica la acción en la ranura única del disparador. Una acción sin consumir se pisa: sólo importa la última intención del usuario.
// @Tags acciones
// @Accept json
// @Produce json
// @Param accion body AccionRequest true "Acción"
// @Success 202 {object} trigger.Accion "Acción publicada"
// @Failure 400 {object} ErrorResponse "Cuerpo inválido o nombre vacío"
// @Router /acciones [post]
func (h *AccionHandler) Disparar(c *fiber.Ctx) error {
	var req AccionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "No se pudo leer la acción enviada",
		})
	}
	if req.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "El nombre de la acción es requerido",
		})
	}

	h.disparador.Disparar(req.Nombre, req.Payload)
	// El observador puede drenar la ranura antes de que respondamos, así
	// que se contesta con lo publicado y no con lo que quede pendiente.
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"nombre":  req.Nombre,
		"payload": req.Payload,
	})
}

// Pendiente devuelve la acción sin consumir, si hay
// @Summary Acción pendiente
// @Description Devuelve la acción que espera en la ranura sin consumirla; 204 si la ranura está vacía
// @Tags acciones
// @Produce json
// @Success 200 {object} trigger.Accion "Acción pendiente"
// @Success 204 "Ranura vacía"
// @Router /acciones/pendiente [get]
func (h *AccionHandler) Pendiente(c *fiber.Ctx) error {
	accion := h.disparador.Pendiente()
	if accion == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(accion)
}

// Limpiar descarta la acción pendiente
// @Summary Limpiar ranura
// @Description Descarta la acción pendiente sin ejecutarla
// @Tags acciones
// @Success 204 "Ranura limpia"
// @Router /acciones/pendiente [delete]
func (h *AccionHandler) Limpiar(c *fiber.Ctx) error {
	h.disparador.Limpiar()
	return c.SendStatus(fiber.StatusNoContent)
}
