package repository

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// MaterialRepository — repositorio de la tabla 'materiales'.
type MaterialRepository struct {
	db *sql.DB
}

// NewMaterialRepository crea el repositorio.
func NewMaterialRepository(db *sql.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// Listar devuelve todos los materiales ordenados por categoría y
// descripción, que es el orden en que los agrupa el selector.
func (r *MaterialRepository) Listar() ([]domain.Material, error) {
	rows, err := r.db.Query(`
        SELECT id, code, description, categoria FROM materiales
        ORDER BY categoria ASC, description ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materiales []domain.Material
	for rows.Next() {
		var m domain.Material
		if err := rows.Scan(&m.ID, &m.Code, &m.Description, &m.Categoria); err != nil {
			return nil, err
		}
		materiales = append(materiales, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return materiales, nil
}

// Crear inserta un material nuevo.
func (r *MaterialRepository) Crear(m *domain.Material) error {
	m.ID = uuid.New().String()
	_, err := r.db.Exec(`
        INSERT INTO materiales (id, code, description, categoria)
        VALUES ($1, $2, $3, $4)
    `, m.ID, m.Code, m.Description, m.Categoria)
	return err
}

// Borrar elimina un material por ID.
func (r *MaterialRepository) Borrar(id string) error {
	_, err := r.db.Exec(`DELETE FROM materiales WHERE id = $1`, id)
	return err
}
