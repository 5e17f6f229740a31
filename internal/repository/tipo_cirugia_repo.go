package repository

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// TipoCirugiaRepository — repositorio de la tabla 'tipos_cirugia'.
type TipoCirugiaRepository struct {
	db *sql.DB
}

// NewTipoCirugiaRepository crea el repositorio.
func NewTipoCirugiaRepository(db *sql.DB) *TipoCirugiaRepository {
	return &TipoCirugiaRepository{db: db}
}

// Listar devuelve todos los tipos de cirugía ordenados por nombre.
func (r *TipoCirugiaRepository) Listar() ([]domain.TipoCirugia, error) {
	rows, err := r.db.Query(`SELECT id, nombre FROM tipos_cirugia ORDER BY nombre ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tipos []domain.TipoCirugia
	for rows.Next() {
		var t domain.TipoCirugia
		if err := rows.Scan(&t.ID, &t.Nombre); err != nil {
			return nil, err
		}
		tipos = append(tipos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tipos, nil
}

// Crear inserta un tipo de cirugía nuevo.
func (r *TipoCirugiaRepository) Crear(t *domain.TipoCirugia) error {
	t.ID = uuid.New().String()
	_, err := r.db.Exec(`INSERT INTO tipos_cirugia (id, nombre) VALUES ($1, $2)`, t.ID, t.Nombre)
	return err
}

// Borrar elimina un tipo de cirugía por ID.
func (r *TipoCirugiaRepository) Borrar(id string) error {
	_, err := r.db.Exec(`DELETE FROM tipos_cirugia WHERE id = $1`, id)
	return err
}
