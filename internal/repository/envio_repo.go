package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// EnvioRepository — repositorio de la bitácora 'envios_correo'.
// Es una tabla sólo de inserción: cada intento de envío queda registrado
// y ninguna fila se actualiza después.
type EnvioRepository struct {
	db *sql.DB
}

// NewEnvioRepository crea el repositorio.
func NewEnvioRepository(db *sql.DB) *EnvioRepository {
	return &EnvioRepository{db: db}
}

// Crear registra un intento de envío.
func (r *EnvioRepository) Crear(e *domain.EnvioCorreo) error {
	e.ID = uuid.New().String()
	e.CreadoEn = time.Now()
	if e.Estado == "" {
		e.Estado = domain.EstadoIntentado
	}

	query := `
        INSERT INTO envios_correo (id, reporte_id, tipo, destinatario, asunto, estado, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(query, e.ID, e.ReporteID, e.Tipo, e.Destinatario, e.Asunto, e.Estado, e.CreadoEn)
	return err
}

// ListarPorReporte devuelve la bitácora de un reporte, del intento más
// reciente al más viejo.
func (r *EnvioRepository) ListarPorReporte(reporteID string) ([]domain.EnvioCorreo, error) {
	rows, err := r.db.Query(`
        SELECT id, reporte_id, tipo, destinatario, asunto, estado, created_at
        FROM envios_correo
        WHERE reporte_id = $1
        ORDER BY created_at DESC
    `, reporteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var envios []domain.EnvioCorreo
	for rows.Next() {
		var e domain.EnvioCorreo
		if err := rows.Scan(&e.ID, &e.ReporteID, &e.Tipo, &e.Destinatario, &e.Asunto, &e.Estado, &e.CreadoEn); err != nil {
			return nil, err
		}
		envios = append(envios, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return envios, nil
}
