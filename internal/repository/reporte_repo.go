package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// ReporteRepository — repositorio de la tabla 'reportes'.
type ReporteRepository struct {
	db *sql.DB
}

// NewReporteRepository crea el repositorio.
func NewReporteRepository(db *sql.DB) *ReporteRepository {
	return &ReporteRepository{db: db}
}

const columnasReporte = `id, mensaje_inicio, cliente, paciente, medico, instrumentador,
        lugar_cirugia, fecha_cirugia, tipo_cirugia, material, observaciones,
        info_adicional, fecha_envio, estado, created_at`

// Crear inserta un reporte nuevo y le asigna ID y marca de creación.
func (r *ReporteRepository) Crear(rep *domain.Reporte) error {
	rep.ID = uuid.New().String()
	rep.CreadoEn = time.Now()
	if rep.Estado == "" {
		rep.Estado = domain.EstadoPendiente
	}

	query := `
        INSERT INTO reportes (` + columnasReporte + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `

	_, err := r.db.Exec(query,
		rep.ID,
		rep.MensajeInicio,
		rep.Cliente,
		rep.Paciente,
		rep.Medico,
		rep.Instrumentador,
		rep.LugarCirugia,
		rep.FechaCirugia,
		rep.TipoCirugia,
		rep.Material,
		rep.Observaciones,
		rep.InfoAdicional,
		rep.FechaEnvio,
		rep.Estado,
		rep.CreadoEn,
	)
	return err
}

// Actualizar pisa el reporte existente con el mismo ID.
// Los guardados posteriores al primero pasan por acá: un reporte editado
// varias veces sigue siendo una sola fila en la tabla.
func (r *ReporteRepository) Actualizar(rep *domain.Reporte) error {
	query := `
        UPDATE reportes
        SET mensaje_inicio = $2, cliente = $3, paciente = $4, medico = $5,
            instrumentador = $6, lugar_cirugia = $7, fecha_cirugia = $8,
            tipo_cirugia = $9, material = $10, observaciones = $11,
            info_adicional = $12, fecha_envio = $13, estado = $14
        WHERE id = $1
    `
	_, err := r.db.Exec(query,
		rep.ID,
		rep.MensajeInicio,
		rep.Cliente,
		rep.Paciente,
		rep.Medico,
		rep.Instrumentador,
		rep.LugarCirugia,
		rep.FechaCirugia,
		rep.TipoCirugia,
		rep.Material,
		rep.Observaciones,
		rep.InfoAdicional,
		rep.FechaEnvio,
		rep.Estado,
	)
	return err
}

// GetByID busca un reporte por ID. Devuelve nil, nil si no existe.
func (r *ReporteRepository) GetByID(id string) (*domain.Reporte, error) {
	query := `SELECT ` + columnasReporte + ` FROM reportes WHERE id = $1`
	return r.unaFila(r.db.QueryRow(query, id))
}

// Ultimo devuelve el reporte más reciente por fecha de creación.
func (r *ReporteRepository) Ultimo() (*domain.Reporte, error) {
	query := `SELECT ` + columnasReporte + ` FROM reportes ORDER BY created_at DESC LIMIT 1`
	return r.unaFila(r.db.QueryRow(query))
}

// UltimoMaterial devuelve sólo el material del reporte más reciente.
func (r *ReporteRepository) UltimoMaterial() (string, error) {
	var material string
	err := r.db.QueryRow(`SELECT material FROM reportes ORDER BY created_at DESC LIMIT 1`).Scan(&material)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return material, nil
}

// Listar devuelve los últimos reportes, del más nuevo al más viejo.
// El tope evita traerse la tabla entera para el listado del admin.
func (r *ReporteRepository) Listar(limite int) ([]*domain.Reporte, error) {
	query := `SELECT ` + columnasReporte + ` FROM reportes ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.Query(query, limite)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.variasFilas(rows)
}

// DesdeFecha devuelve los reportes con cirugía en la fecha dada o después,
// ordenados por fecha ascendente. Es la consulta del tablero.
// Las fechas ISO comparan bien como texto.
func (r *ReporteRepository) DesdeFecha(fechaISO string) ([]*domain.Reporte, error) {
	query := `SELECT ` + columnasReporte + ` FROM reportes
        WHERE fecha_cirugia >= $1
        ORDER BY fecha_cirugia ASC`
	rows, err := r.db.Query(query, fechaISO)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.variasFilas(rows)
}

// ActualizarEstado cambia sólo la columna de estado del tablero.
func (r *ReporteRepository) ActualizarEstado(id, estado string) error {
	_, err := r.db.Exec(`UPDATE reportes SET estado = $2 WHERE id = $1`, id, estado)
	return err
}

// unaFila escanea una fila en un Reporte; ErrNoRows se traduce a nil, nil.
func (r *ReporteRepository) unaFila(row *sql.Row) (*domain.Reporte, error) {
	rep := &domain.Reporte{}
	err := row.Scan(
		&rep.ID,
		&rep.MensajeInicio,
		&rep.Cliente,
		&rep.Paciente,
		&rep.Medico,
		&rep.Instrumentador,
		&rep.LugarCirugia,
		&rep.FechaCirugia,
		&rep.TipoCirugia,
		&rep.Material,
		&rep.Observaciones,
		&rep.InfoAdicional,
		&rep.FechaEnvio,
		&rep.Estado,
		&rep.CreadoEn,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rep, nil
}

func (r *ReporteRepository) variasFilas(rows *sql.Rows) ([]*domain.Reporte, error) {
	var reportes []*domain.Reporte
	for rows.Next() {
		rep := &domain.Reporte{}
		err := rows.Scan(
			&rep.ID,
			&rep.MensajeInicio,
			&rep.Cliente,
			&rep.Paciente,
			&rep.Medico,
			&rep.Instrumentador,
			&rep.LugarCirugia,
			&rep.FechaCirugia,
			&rep.TipoCirugia,
			&rep.Material,
			&rep.Observaciones,
			&rep.InfoAdicional,
			&rep.FechaEnvio,
			&rep.Estado,
			&rep.CreadoEn,
		)
		if err != nil {
			return nil, err
		}
		reportes = append(reportes, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reportes, nil
}
