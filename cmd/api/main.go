package main

// @title Cirugía Reporte API
// @version 1.0
// @description Coordinación de insumos quirúrgicos: reportes de cirugía, despacho de correos auditado y tablero de seguimiento en tiempo real

// @contact.name Vera Implantes
// @contact.email deposito@veraimplantes.com

// @host localhost:8080
// @BasePath /api/v1

// @schemes http https

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/config"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/correo"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/dashboard"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/handler"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/realtime"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/repository"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/service"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/trigger"
)

func main() {
	// Cargamos la configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error cargando la configuración:", err)
	}

	fmt.Println("=== Cirugía Reporte ===")

	// Conexión a la base de datos
	fmt.Println("Conectando a PostgreSQL...")
	db, err := repository.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatal("Error conectando a la base:", err)
	}
	defer db.Close()
	fmt.Println("Conexión exitosa!")

	// Repositorios
	reporteRepo := repository.NewReporteRepository(db.DB)
	clienteRepo := repository.NewClienteRepository(db.DB)
	materialRepo := repository.NewMaterialRepository(db.DB)
	tipoRepo := repository.NewTipoCirugiaRepository(db.DB)
	sugerenciaRepo := repository.NewSugerenciaRepository(db.DB)
	configRepo := repository.NewConfigRepository(db.DB)
	envioRepo := repository.NewEnvioRepository(db.DB)

	// Servicios
	reporteService := service.NewReporteService(reporteRepo, sugerenciaRepo)
	mensajero := correo.NewMensajero(cfg.Correo)
	correoService := service.NewCorreoService(
		reporteRepo, clienteRepo, configRepo, envioRepo, mensajero, cfg.Correo,
	)
	catalogoService := service.NewCatalogoService(
		clienteRepo, materialRepo, tipoRepo, sugerenciaRepo, configRepo, cfg.Limites,
	)

	// Disparador de acciones más su observador
	disparador := trigger.Nuevo()
	observador := service.NewObservadorAcciones(disparador, correoService)
	go observador.Ejecutar()

	// Tablero: carga inicial con las cirugías desde hoy
	tablero := dashboard.NewTablero(reporteRepo)
	iniciales, err := reporteRepo.DesdeFecha(dashboard.HoyISO())
	if err != nil {
		log.Fatal("Error cargando el tablero:", err)
	}
	tablero.Cargar(iniciales)

	// Tiempo real: los eventos de la base actualizan el tablero y se
	// difunden a los navegadores suscriptos por SSE
	difusor := realtime.NewDifusor(cfg.Limites.SuscriptoresSSE)
	listener := realtime.NewListener(db.DSN, difusor, func(e realtime.EventoReporte) {
		tablero.Aplicar(e.Evento, e.Reporte)
		service.GlobalStats.IncrementarEventos()
	})
	go func() {
		if err := listener.Start(); err != nil {
			log.Printf("Listener de tiempo real detenido: %v", err)
		}
	}()

	// Manejadores
	reporteHandler := handler.NewReporteHandler(reporteService, correoService, cfg.Limites)
	correoHandler := handler.NewCorreoHandler(correoService)
	catalogoHandler := handler.NewCatalogoHandler(catalogoService)
	dashboardHandler := handler.NewDashboardHandler(tablero, difusor)
	accionHandler := handler.NewAccionHandler(disparador)

	// Aplicación Fiber
	app := fiber.New(fiber.Config{
		AppName: "Cirugía Reporte API",
	})

	handler.SetupRoutes(
		app,
		reporteHandler,
		correoHandler,
		catalogoHandler,
		dashboardHandler,
		accionHandler,
	)

	// Servidor HTTP en su goroutine
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
		if err := app.Listen(addr); err != nil {
			log.Printf("Servidor HTTP detenido: %v", err)
		}
	}()

	fmt.Printf("\nHTTP API: http://localhost:%d\n", cfg.Server.HTTPPort)
	fmt.Printf("Swagger: http://localhost:%d/swagger/\n", cfg.Server.HTTPPort)
	if mensajero.Configurado() {
		fmt.Println("Envío directo por SMTP: habilitado")
	} else {
		fmt.Println("Envío directo por SMTP: deshabilitado (sólo mailto)")
	}
	fmt.Println("\nCtrl+C para detener")

	// Esperamos la señal de terminación
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nDeteniendo servidores...")
	listener.Close()
	app.Shutdown()
}
