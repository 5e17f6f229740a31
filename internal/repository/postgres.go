package repository

import (
	"database/sql"
	"fmt"

	// Driver de PostgreSQL
	_ "github.com/lib/pq"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/config"
)

// PostgresDB — envoltorio de la conexión a PostgreSQL.
type PostgresDB struct {
	DB  *sql.DB // Interfaz estándar de Go para la base
	DSN string  // Cadena de conexión; la reutiliza el listener de tiempo real
}

// NewPostgresDB abre la conexión a PostgreSQL y la verifica con un ping.
func NewPostgresDB(cfg config.DatabaseConfig) (*PostgresDB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)

	// sql.Open no conecta todavía, sólo valida los parámetros.
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error abriendo la base: %w", err)
	}

	// Ping confirma que la conexión funciona de verdad.
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error conectando a la base: %w", err)
	}

	return &PostgresDB{DB: db, DSN: dsn}, nil
}

// Close cierra la conexión con la base.
func (p *PostgresDB) Close() error {
	return p.DB.Close()
}
