package repository

import (
	"database/sql"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// ConfigRepository — repositorio de la tabla 'configuracion' (clave/valor).
// Guarda las plantillas de mensajes que edita el administrador.
type ConfigRepository struct {
	db *sql.DB
}

// NewConfigRepository crea el repositorio.
func NewConfigRepository(db *sql.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// Mapa devuelve toda la configuración como un mapa clave → valor,
// que es la forma en que la consume el generador de reportes.
func (r *ConfigRepository) Mapa() (map[string]string, error) {
	rows, err := r.db.Query(`SELECT clave, valor FROM configuracion`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mensajes := make(map[string]string)
	for rows.Next() {
		var clave, valor string
		if err := rows.Scan(&clave, &valor); err != nil {
			return nil, err
		}
		mensajes[clave] = valor
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return mensajes, nil
}

// Listar devuelve las entradas como lista, para la pantalla del admin.
func (r *ConfigRepository) Listar() ([]domain.Mensaje, error) {
	rows, err := r.db.Query(`SELECT clave, valor FROM configuracion ORDER BY clave ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mensajes []domain.Mensaje
	for rows.Next() {
		var m domain.Mensaje
		if err := rows.Scan(&m.Clave, &m.Valor); err != nil {
			return nil, err
		}
		mensajes = append(mensajes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return mensajes, nil
}

// Guardar crea o pisa el valor de una clave.
func (r *ConfigRepository) Guardar(clave, valor string) error {
	query := `
        INSERT INTO configuracion (clave, valor)
        VALUES ($1, $2)
        ON CONFLICT (clave) DO UPDATE SET valor = EXCLUDED.valor
    `
	_, err := r.db.Exec(query, clave, valor)
	return err
}
