package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config — estructura principal de configuración de la aplicación.
// Todos los campos se completan desde variables de entorno.
type Config struct {
	Server   ServerConfig   // Servidor HTTP
	Database DatabaseConfig // Base de datos
	Correo   CorreoConfig   // Envío de correos
	Limites  LimitesConfig  // Paginación y topes de listado
}

// ServerConfig — parámetros del servidor HTTP.
type ServerConfig struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"` // Puerto del API
}

// DatabaseConfig — conexión a PostgreSQL.
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"` // Servidor de la base
	Port     int    `envconfig:"DB_PORT" default:"5432"`      // Puerto
	Name     string `envconfig:"DB_NAME" default:"cirugias"`  // Nombre de la base
	User     string `envconfig:"DB_USER" default:"postgres"`  // Usuario
	Password string `envconfig:"DB_PASSWORD" required:"true"` // Contraseña (obligatoria)
}

// CorreoConfig — direcciones fijas y SMTP opcional para el despacho.
// Si SMTPHost queda vacío, el despacho se limita a registrar el intento
// y devolver el enlace mailto para el cliente de correo del usuario.
type CorreoConfig struct {
	DireccionInterna string `envconfig:"CORREO_INTERNO" default:"deposito@veraimplantes.com"`   // Casilla interna
	DireccionART     string `envconfig:"CORREO_ART" default:"autorizaciones@veraimplantes.com"` // Casilla de ART
	Remitente        string `envconfig:"CORREO_REMITENTE" default:"reportes@veraimplantes.com"` // From de los envíos SMTP
	SMTPHost         string `envconfig:"SMTP_HOST" default:""`                                  // Vacío = sin envío directo
	SMTPPort         int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser         string `envconfig:"SMTP_USER" default:""`
	SMTPPassword     string `envconfig:"SMTP_PASSWORD" default:""`
}

// LimitesConfig — topes de paginación y listados.
type LimitesConfig struct {
	FilasPorPagina  int `envconfig:"FILAS_POR_PAGINA" default:"10"` // Paginación del admin
	ReportesAdmin   int `envconfig:"REPORTES_ADMIN" default:"50"`   // Últimos reportes en el listado
	SuscriptoresSSE int `envconfig:"SUSCRIPTORES_SSE" default:"64"` // Cola por suscriptor del tablero
}

// Load carga la configuración desde variables de entorno.
// Primero intenta leer el archivo .env, después las variables del sistema.
func Load() (*Config, error) {
	// Si el archivo .env no existe no pasa nada: se leen las del sistema.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
