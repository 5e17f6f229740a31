package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/service"
)

// CatalogoHandler — administración de datos maestros
type CatalogoHandler struct {
	catalogo *service.CatalogoService
}

// NewCatalogoHandler crea el manejador
func NewCatalogoHandler(catalogo *service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{catalogo: catalogo}
}

// MensajeRequest — valor nuevo para una plantilla
type MensajeRequest struct {
	Valor string `json:"valor"`
}

// Clientes devuelve una página del listado de clientes
// @Summary Listar clientes
// @Description Devuelve una página del catálogo de clientes, ordenado por razón social
// @Tags catalogo
// @Produce json
// @Param pagina query int false "Número de página, desde 1" default(1)
// @Success 200 {object} service.PaginaClientes "Página de clientes"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /clientes [get]
func (h *CatalogoHandler) Clientes(c *fiber.Ctx) error {
	pagina, err := h.catalogo.ClientesPagina(c.QueryInt("pagina", 1))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.JSON(pagina)
}

// ClientesTodos devuelve el catálogo completo de clientes
// @Summary Todos los clientes
// @Description Devuelve el catálogo completo, para los selectores del formulario
// @Tags catalogo
// @Produce json
// @Success 200 {array} domain.Cliente "Clientes"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /clientes/todos [get]
func (h *CatalogoHandler) ClientesTodos(c *fiber.Ctx) error {
	clientes, err := h.catalogo.ClientesTodos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	if clientes == nil {
		clientes = []domain.Cliente{}
	}
	return c.JSON(clientes)
}

// GuardarCliente crea o actualiza un cliente
// @Summary Guardar cliente
// @Description Crea el cliente si no trae ID, lo actualiza si lo trae
// @Tags catalogo
// @Accept json
// @Produce json
// @Param cliente body domain.Cliente true "Cliente"
// @Success 200 {object} domain.Cliente "Cliente guardado"
// @Failure 400 {object} ErrorResponse "Cuerpo inválido o nombre vacío"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /clientes [post]
func (h *CatalogoHandler) GuardarCliente(c *fiber.Ctx) error {
	var cliente domain.Cliente
	if err := c.BodyParser(&cliente); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "No se pudo leer el cliente enviado",
		})
	}
	if err := h.catalogo.GuardarCliente(&cliente); err != nil {
		if errors.Is(err, service.ErrNombreRequerido) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "El nombre del cliente es requerido",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.JSON(cliente)
}

// BorrarCliente elimina un cliente
// @Summary Borrar cliente
// @Tags catalogo
// @Param id path string true "ID del cliente"
// @Success 204 "Cliente borrado"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /clientes/{id} [delete]
func (h *CatalogoHandler) BorrarCliente(c *fiber.Ctx) error {
	if err := h.catalogo.BorrarCliente(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Materiales devuelve el catálogo agrupado por categoría
// @Summary Listar materiales
// @Description Devuelve el catálogo de materiales agrupado por categoría
// @Tags catalogo
// @Produce json
// @Success 200 {array} service.GrupoMateriales "Grupos de materiales"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /materiales [get]
func (h *CatalogoHandler) Materiales(c *fiber.Ctx) error {
	grupos, err := h.catalogo.MaterialesAgrupados()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	if grupos == nil {
		grupos = []service.GrupoMateriales{}
	}
	return c.JSON(grupos)
}

// CrearMaterial agrega un material
// @Summary Crear material
// @Description Agrega un material al catálogo; sin categoría va al grupo por defecto
// @Tags catalogo
// @Accept json
// @Produce json
// @Param material body domain.Material true "Material"
// @Success 201 {object} domain.Material "Material creado"
// @Failure 400 {object} ErrorResponse "Cuerpo inválido o descripción vacía"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /materiales [post]
func (h *CatalogoHandler) CrearMaterial(c *fiber.Ctx) error {
	var material domain.Material
	if err := c.BodyParser(&material); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "No se pudo leer el material enviado",
		})
	}
	if err := h.catalogo.CrearMaterial(&material); err != nil {
		if errors.Is(err, service.ErrNombreRequerido) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "La descripción del material es requerida",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(material)
}

// BorrarMaterial elimina un material
// @Summary Borrar material
// @Tags catalogo
// @Param id path string true "ID del material"
// @Success 204 "Material borrado"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /materiales/{id} [delete]
func (h *CatalogoHandler) BorrarMaterial(c *fiber.Ctx) error {
	if err := h.catalogo.BorrarMaterial(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TiposCirugia devuelve el catálogo de tipos de cirugía
// @Summary Listar tipos de cirugía
// @Tags catalogo
// @Produce json
// @Success 200 {array} domain.TipoCirugia "Tipos de cirugía"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /tipos-cirugia [get]
func (h *CatalogoHandler) TiposCirugia(c *fiber.Ctx) error {
	tipos, err := h.catalogo.TiposCirugia()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	if tipos == nil {
		tipos = []domain.TipoCirugia{}
	}
	return c.JSON(tipos)
}

// CrearTipoCirugia agrega un tipo de cirugía
// @Summary Crear tipo de cirugía
// @Tags catalogo
// @Accept json
// @Produce json
// @Param tipo body domain.TipoCirugia true "Tipo de cirugía"
// @Success 201 {object} domain.TipoCirugia "Tipo creado"
// @Failure 400 {object} ErrorResponse "Cuerpo inválido o nombre vacío"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /tipos-cirugia [post]
func (h *CatalogoHandler) CrearTipoCirugia(c *fiber.Ctx) error {
	var tipo domain.TipoCirugia
	if err := c.BodyParser(&tipo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "No se pudo leer el tipo enviado",
		})
	}
	if err := h.catalogo.CrearTipoCirugia(&tipo); err != nil {
		if errors.Is(err, service.ErrNombreRequerido) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "El nombre del tipo de cirugía es requerido",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(tipo)
}

// BorrarTipoCirugia elimina un tipo de cirugía
// @Summary Borrar tipo de cirugía
// @Tags catalogo
// @Param id path string true "ID del tipo"
// @Success 204 "Tipo borrado"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /tipos-cirugia/{id} [delete]
func (h *CatalogoHandler) BorrarTipoCirugia(c *fiber.Ctx) error {
	if err := h.catalogo.BorrarTipoCirugia(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Sugerencias devuelve las sugerencias de autocompletado
// @Summary Listar sugerencias
// @Description Devuelve las sugerencias de autocompletado; con campo filtra medico, instrumentador o lugar_cirugia
// @Tags catalogo
// @Produce json
// @Param campo query string false "Campo del formulario" Enums(medico, instrumentador, lugar_cirugia)
// @Success 200 {array} domain.Sugerencia "Sugerencias"
// @Failure 400 {object} ErrorResponse "Campo desconocido"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /sugerencias [get]
func (h *CatalogoHandler) Sugerencias(c *fiber.Ctx) error {
	sugerencias, err := h.catalogo.Sugerencias(c.Query("campo"))
	if err != nil {
		if errors.Is(err, service.ErrCampoInvalido) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "Campo de sugerencia desconocido",
				Details: "Los campos válidos son medico, instrumentador y lugar_cirugia",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	if sugerencias == nil {
		sugerencias = []domain.Sugerencia{}
	}
	return c.JSON(sugerencias)
}

// BorrarSugerencia depura una sugerencia
// @Summary Borrar sugerencia
// @Description Elimina una sugerencia mal cargada; volverá si se guarda otro reporte con ese valor
// @Tags catalogo
// @Param id path string true "ID de la sugerencia"
// @Success 204 "Sugerencia borrada"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /sugerencias/{id} [delete]
func (h *CatalogoHandler) BorrarSugerencia(c *fiber.Ctx) error {
	if err := h.catalogo.BorrarSugerencia(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Mensajes devuelve las plantillas configuradas
// @Summary Listar plantillas
// @Description Devuelve las plantillas de mensajes configuradas; las claves ausentes usan el texto por defecto
// @Tags catalogo
// @Produce json
// @Success 200 {array} domain.Mensaje "Plantillas"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /mensajes [get]
func (h *CatalogoHandler) Mensajes(c *fiber.Ctx) error {
	mensajes, err := h.catalogo.Mensajes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	if mensajes == nil {
		mensajes = []domain.Mensaje{}
	}
	return c.JSON(mensajes)
}

// GuardarMensaje crea o reemplaza una plantilla
// @Summary Guardar plantilla
// @Description Crea o reemplaza la plantilla identificada por la clave de la ruta
// @Tags catalogo
// @Accept json
// @Produce json
// @Param clave path string true "Clave de la plantilla" example("asunto_base")
// @Param mensaje body MensajeRequest true "Valor nuevo"
// @Success 200 {object} domain.Mensaje "Plantilla guardada"
// @Failure 400 {object} ErrorResponse "Cuerpo inválido"
// @Failure 500 {object} ErrorResponse "Error interno del servidor"
// @Router /mensajes/{clave} [put]
func (h *CatalogoHandler) GuardarMensaje(c *fiber.Ctx) error {
	var req MensajeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "No se pudo leer el mensaje enviado",
		})
	}
	clave := c.Params("clave")
	if err := h.catalogo.GuardarMensaje(clave, req.Valor); err != nil {
		if errors.Is(err, service.ErrNombreRequerido) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "La clave de la plantilla es requerida",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error interno del servidor",
		})
	}
	return c.JSON(domain.Mensaje{Clave: clave, Valor: req.Valor})
}
