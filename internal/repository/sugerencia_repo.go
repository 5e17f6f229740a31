package repository

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// SugerenciaRepository — repositorio de la tabla 'sugerencias'.
// La dupla (campo, valor) tiene restricción de unicidad: guardar dos
// veces el mismo valor para el mismo campo no duplica la fila.
type SugerenciaRepository struct {
	db *sql.DB
}

// NewSugerenciaRepository crea el repositorio.
func NewSugerenciaRepository(db *sql.DB) *SugerenciaRepository {
	return &SugerenciaRepository{db: db}
}

// Upsert guarda una sugerencia ignorando duplicados.
func (r *SugerenciaRepository) Upsert(campo, valor string) error {
	query := `
        INSERT INTO sugerencias (id, campo, valor)
        VALUES ($1, $2, $3)
        ON CONFLICT (campo, valor) DO NOTHING
    `
	_, err := r.db.Exec(query, uuid.New().String(), campo, valor)
	return err
}

// ListarPorCampo devuelve las sugerencias de un campo ordenadas por valor.
func (r *SugerenciaRepository) ListarPorCampo(campo string) ([]domain.Sugerencia, error) {
	rows, err := r.db.Query(`
        SELECT id, campo, valor FROM sugerencias
        WHERE campo = $1
        ORDER BY valor ASC
    `, campo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sugerencias []domain.Sugerencia
	for rows.Next() {
		var s domain.Sugerencia
		if err := rows.Scan(&s.ID, &s.Campo, &s.Valor); err != nil {
			return nil, err
		}
		sugerencias = append(sugerencias, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sugerencias, nil
}

// ListarTodas devuelve todas las sugerencias; el formulario las reparte
// por campo al inicializarse.
func (r *SugerenciaRepository) ListarTodas() ([]domain.Sugerencia, error) {
	rows, err := r.db.Query(`SELECT id, campo, valor FROM sugerencias ORDER BY campo, valor`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sugerencias []domain.Sugerencia
	for rows.Next() {
		var s domain.Sugerencia
		if err := rows.Scan(&s.ID, &s.Campo, &s.Valor); err != nil {
			return nil, err
		}
		sugerencias = append(sugerencias, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sugerencias, nil
}

// Borrar elimina una sugerencia puntual desde el admin.
func (r *SugerenciaRepository) Borrar(id string) error {
	_, err := r.db.Exec(`DELETE FROM sugerencias WHERE id = $1`, id)
	return err
}
