package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/service"
)

// CorreoHandler — despacho de correos y consulta de la bitácora
type CorreoHandler struct {
	correos *service.CorreoService
}

// NewCorreoHandler crea el manejador
func NewCorreoHandler(correos *service.CorreoService) *CorreoHandler {
	return &CorreoHandler{correos: correos}
}

// EnvioRequest — pedido de despacho de un reporte
type EnvioRequest struct {
	Tipo   string `json:"tipo"`             // cliente, interno o art
	Cuerpo string `json:"cuerpo,omitempty"` // Cuerpo editado; vacío genera el texto plano
}

// Enviar despacha el reporte por correo
// @Summary Enviar reporte
// @Description Resuelve el destinatario según el tipo, registra el intento en la bitácora y devuelve el enlace mailto listo para abrir. Con SMTP configurado además dispara el envío directo.
// @Tags envios
// @Accept json
// @Produce json
// @Param id path string true "ID del reporte"
// @Param envio body EnvioRequest true "Tipo de envío y cuerpo opcional"
// @Success 200 {object} service.ResultadoEnvio "Despacho registrado"
// @Failure 400 {object} ErrorResponse "Cuerpo o tipo inválido"
// @Failure 404 {object} ErrorResponse "Reporte no encontrado"
// @Failure 422 {object} ErrorResponse "Destinatario sin resolver"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /reportes/{id}/envios [post]
func (h *CorreoHandler) Enviar(c *fiber.Ctx) error {
	var req EnvioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "No se pudo leer el pedido de envío",
		})
	}

	resultado, err := h.correos.Enviar(req.Tipo, c.Params("id"), req.Cuerpo)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReporteNoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "Reporte no encontrado",
			})
		case errors.Is(err, service.ErrTipoEnvioInvalido):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "Tipo de envío desconocido",
				Details: "Los tipos válidos son cliente, interno y art",
			})
		case errors.Is(err, service.ErrDestinatarioNoResuelto):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
				Error:   "No se pudo resolver el destinatario",
				Details: "El cliente del reporte no tiene email cargado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}

	return c.JSON(resultado)
}

// Bitacora devuelve los intentos de envío de un reporte
// @Summary Bitácora de envíos
// @Description Devuelve los intentos de envío registrados para el reporte, del más nuevo al más viejo
// @Tags envios
// @Produce json
// @Param id path string true "ID del reporte"
// @Success 200 {array} domain.EnvioCorreo "Intentos registrados"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /reportes/{id}/envios [get]
func (h *CorreoHandler) Bitacora(c *fiber.Ctx) error {
	envios, err := h.correos.Bitacora(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	if envios == nil {
		envios = []domain.EnvioCorreo{}
	}
	return c.JSON(envios)
}
