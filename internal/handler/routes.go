package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/service"
)

// SetupRoutes configura todas las rutas de la aplicación
func SetupRoutes(
	app *fiber.App,
	reporteHandler *ReporteHandler,
	correoHandler *CorreoHandler,
	catalogoHandler *CatalogoHandler,
	dashboardHandler *DashboardHandler,
	accionHandler *AccionHandler,
) {
	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1
	api := app.Group("/api/v1")

	// Reportes
	reportes := api.Group("/reportes")
	reportes.Post("/", reporteHandler.Guardar)
	reportes.Get("/", reporteHandler.Listar)
	reportes.Get("/plantilla", reporteHandler.Plantilla)
	reportes.Get("/ultimo", reporteHandler.Ultimo)
	reportes.Get("/ultimo-material", reporteHandler.UltimoMaterial)
	reportes.Post("/vista-previa", reporteHandler.VistaPrevia)
	reportes.Get("/:id", reporteHandler.Get)
	reportes.Get("/:id/pdf", reporteHandler.PDF)

	// Envíos de correo
	reportes.Post("/:id/envios", correoHandler.Enviar)
	reportes.Get("/:id/envios", correoHandler.Bitacora)

	// Catálogos
	clientes := api.Group("/clientes")
	clientes.Get("/", catalogoHandler.Clientes)
	clientes.Get("/todos", catalogoHandler.ClientesTodos)
	clientes.Post("/", catalogoHandler.GuardarCliente)
	clientes.Delete("/:id", catalogoHandler.BorrarCliente)

	materiales := api.Group("/materiales")
	materiales.Get("/", catalogoHandler.Materiales)
	materiales.Post("/", catalogoHandler.CrearMaterial)
	materiales.Delete("/:id", catalogoHandler.BorrarMaterial)

	tipos := api.Group("/tipos-cirugia")
	tipos.Get("/", catalogoHandler.TiposCirugia)
	tipos.Post("/", catalogoHandler.CrearTipoCirugia)
	tipos.Delete("/:id", catalogoHandler.BorrarTipoCirugia)

	sugerencias := api.Group("/sugerencias")
	sugerencias.Get("/", catalogoHandler.Sugerencias)
	sugerencias.Delete("/:id", catalogoHandler.BorrarSugerencia)

	mensajes := api.Group("/mensajes")
	mensajes.Get("/", catalogoHandler.Mensajes)
	mensajes.Put("/:clave", catalogoHandler.GuardarMensaje)

	// Dashboard
	dash := api.Group("/dashboard")
	dash.Get("/cirugias", dashboardHandler.Cirugias)
	dash.Patch("/cirugias/:id/estado", dashboardHandler.CambiarEstado)
	dash.Get("/eventos", dashboardHandler.Eventos)

	// Acciones
	acciones := api.Group("/acciones")
	acciones.Post("/", accionHandler.Disparar)
	acciones.Get("/pendiente", accionHandler.Pendiente)
	acciones.Delete("/pendiente", accionHandler.Limpiar)

	// Health check
	// @Summary Estado del servidor
	// @Tags system
	// @Produce json
	// @Success 200 {object} map[string]string "Estado"
	// @Router /health [get]
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Stats
	// @Summary Estadísticas del servicio
	// @Tags system
	// @Produce json
	// @Success 200 {object} map[string]interface{} "Contadores de actividad"
	// @Router /stats [get]
	app.Get("/stats", func(c *fiber.Ctx) error {
		stats := service.GlobalStats.GetStats()
		return c.JSON(fiber.Map{
			"reportes_guardados":  stats.ReportesGuardados,
			"envios_intentados":   stats.EnviosIntentados,
			"acciones_disparadas": stats.AccionesDisparadas,
			"eventos_tablero":     stats.EventosTablero,
			"ultimo_evento":       stats.UltimoEvento.Format("2006-01-02 15:04:05"),
		})
	})
}
