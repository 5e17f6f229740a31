package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/config"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/service"
)

// ReporteHandler — peticiones del formulario de reportes
type ReporteHandler struct {
	reportes *service.ReporteService
	correos  *service.CorreoService
	limites  config.LimitesConfig
}

// NewReporteHandler crea el manejador
func NewReporteHandler(reportes *service.ReporteService, correos *service.CorreoService, limites config.LimitesConfig) *ReporteHandler {
	return &ReporteHandler{reportes: reportes, correos: correos, limites: limites}
}

// VistaPreviaResponse — los dos formatos del reporte generado
type VistaPreviaResponse struct {
	Texto string `json:"texto"` // Texto plano para pegar en el correo
	HTML  string `json:"html"`  // Versión con formato para clientes que lo soportan
}

// Guardar guarda un reporte (alta o edición)
// @Summary Guardar reporte
// @Description Valida y guarda el reporte. Sin ID inserta; con ID actualiza la misma fila, editar y volver a guardar nunca duplica.
// @Tags reportes
// @Accept json
// @Produce json
// @Param reporte body domain.Reporte true "Reporte a guardar"
// @Success 200 {object} domain.Reporte "Reporte guardado, con ID asignado"
// @Failure 400 {object} ErrorResponse "Cuerpo inválido"
// @Failure 404 {object} ErrorResponse "El ID a editar no existe"
// @Failure 422 {object} ValidacionResponse "Campos obligatorios sin completar"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /reportes [post]
func (h *ReporteHandler) Guardar(c *fiber.Ctx) error {
	var rep domain.Reporte
	if err := c.BodyParser(&rep); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "No se pudo leer el reporte enviado",
		})
	}

	errores, err := h.reportes.Guardar(&rep)
	if err != nil {
		if errors.Is(err, service.ErrValidacion) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidacionResponse{
				Error:   "El reporte tiene campos obligatorios sin completar",
				Errores: errores,
			})
		}
		if errors.Is(err, service.ErrReporteNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "El reporte a editar no existe",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}

	return c.JSON(rep)
}

// Listar devuelve los últimos reportes guardados
// @Summary Listar reportes
// @Description Devuelve los últimos reportes para el listado de administración
// @Tags reportes
// @Produce json
// @Success 200 {array} domain.Reporte "Reportes, del más nuevo al más viejo"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /reportes [get]
func (h *ReporteHandler) Listar(c *fiber.Ctx) error {
	reportes, err := h.reportes.Listar(h.limites.ReportesAdmin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	if reportes == nil {
		reportes = []*domain.Reporte{}
	}
	return c.JSON(reportes)
}

// Plantilla devuelve un reporte nuevo con los valores por defecto
// @Summary Formulario vacío
// @Description Devuelve un reporte nuevo con el saludo y estado por defecto, para inicializar el formulario
// @Tags reportes
// @Produce json
// @Success 200 {object} domain.Reporte "Reporte vacío con defaults"
// @Router /reportes/plantilla [get]
func (h *ReporteHandler) Plantilla(c *fiber.Ctx) error {
	return c.JSON(domain.NuevoReporte())
}

// Ultimo devuelve el último reporte guardado
// @Summary Cargar último reporte
// @Description Devuelve el último reporte guardado, para precargar el formulario
// @Tags reportes
// @Produce json
// @Success 200 {object} domain.Reporte "Último reporte"
// @Failure 404 {object} ErrorResponse "Todavía no hay reportes"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /reportes/ultimo [get]
func (h *ReporteHandler) Ultimo(c *fiber.Ctx) error {
	rep, err := h.reportes.CargarUltimo()
	if err != nil {
		if errors.Is(err, service.ErrReporteNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "Todavía no hay reportes guardados",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.JSON(rep)
}

// UltimoMaterial combina el material actual con el del último reporte
// @Summary Cargar último material
// @Description Agrega el material del último reporte al texto actual del campo, separado por salto de línea
// @Tags reportes
// @Produce json
// @Param actual query string false "Texto actual del campo material"
// @Success 200 {object} map[string]string "Material combinado"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /reportes/ultimo-material [get]
func (h *ReporteHandler) UltimoMaterial(c *fiber.Ctx) error {
	combinado, err := h.reportes.CargarUltimoMaterial(c.Query("actual"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.JSON(fiber.Map{"material": combinado})
}

// Get devuelve un reporte por ID
// @Summary Obtener reporte
// @Description Devuelve un reporte guardado por su ID
// @Tags reportes
// @Produce json
// @Param id path string true "ID del reporte"
// @Success 200 {object} domain.Reporte "Reporte"
// @Failure 404 {object} ErrorResponse "Reporte no encontrado"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /reportes/{id} [get]
func (h *ReporteHandler) Get(c *fiber.Ctx) error {
	rep, err := h.reportes.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrReporteNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "Reporte no encontrado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.JSON(rep)
}

// VistaPrevia genera los dos formatos del reporte sin guardarlo
// @Summary Vista previa
// @Description Genera el texto plano y el HTML del reporte tal como está en el formulario, sin persistir nada
// @Tags reportes
// @Accept json
// @Produce json
// @Param reporte body domain.Reporte true "Reporte del formulario"
// @Success 200 {object} VistaPreviaResponse "Ambos formatos generados"
// @Failure 400 {object} ErrorResponse "Cuerpo inválido"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /reportes/vista-previa [post]
func (h *ReporteHandler) VistaPrevia(c *fiber.Ctx) error {
	var rep domain.Reporte
	if err := c.BodyParser(&rep); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "No se pudo leer el reporte enviado",
		})
	}

	texto, html, err := h.correos.VistaPrevia(rep)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.JSON(VistaPreviaResponse{Texto: texto, HTML: html})
}

// PDF devuelve el reporte como PDF de constancia
// @Summary Descargar PDF
// @Description Genera y devuelve el PDF del reporte, el mismo que se adjunta en los envíos a la ART
// @Tags reportes
// @Produce application/pdf
// @Param id path string true "ID del reporte"
// @Success 200 {file} file "PDF del reporte"
// @Failure 404 {object} ErrorResponse "Reporte no encontrado"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /reportes/{id}/pdf [get]
func (h *ReporteHandler) PDF(c *fiber.Ctx) error {
	pdf, err := h.correos.PDF(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrReporteNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "Reporte no encontrado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "No se pudo generar el PDF",
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte.pdf"`)
	return c.Send(pdf)
}
