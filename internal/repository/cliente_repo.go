package repository

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// ClienteRepository — repositorio de la tabla 'clientes'.
type ClienteRepository struct {
	db *sql.DB
}

// NewClienteRepository crea el repositorio.
func NewClienteRepository(db *sql.DB) *ClienteRepository {
	return &ClienteRepository{db: db}
}

// ListarPagina devuelve una página de clientes ordenada por nombre y el
// total de filas, para que el admin pueda paginar.
func (r *ClienteRepository) ListarPagina(pagina, filas int) ([]domain.Cliente, int, error) {
	if pagina < 1 {
		pagina = 1
	}
	desde := (pagina - 1) * filas

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM clientes`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(`
        SELECT id, nombre, email FROM clientes
        ORDER BY nombre ASC
        LIMIT $1 OFFSET $2
    `, filas, desde)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	clientes, err := escanearClientes(rows)
	return clientes, total, err
}

// ListarTodos devuelve la lista completa, también ordenada por nombre.
// La usan los selectores del formulario, que no paginan.
func (r *ClienteRepository) ListarTodos() ([]domain.Cliente, error) {
	rows, err := r.db.Query(`SELECT id, nombre, email FROM clientes ORDER BY nombre ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return escanearClientes(rows)
}

// BuscarPorNombre busca un cliente por su razón social exacta.
// Devuelve nil, nil si no existe. Es la consulta que resuelve el email
// del destinatario en los envíos de tipo cliente.
func (r *ClienteRepository) BuscarPorNombre(nombre string) (*domain.Cliente, error) {
	c := &domain.Cliente{}
	err := r.db.QueryRow(`SELECT id, nombre, email FROM clientes WHERE nombre = $1`, nombre).
		Scan(&c.ID, &c.Nombre, &c.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Crear inserta un cliente nuevo.
func (r *ClienteRepository) Crear(c *domain.Cliente) error {
	c.ID = uuid.New().String()
	_, err := r.db.Exec(`INSERT INTO clientes (id, nombre, email) VALUES ($1, $2, $3)`,
		c.ID, c.Nombre, c.Email)
	return err
}

// Actualizar pisa nombre y email del cliente.
func (r *ClienteRepository) Actualizar(c *domain.Cliente) error {
	_, err := r.db.Exec(`UPDATE clientes SET nombre = $2, email = $3 WHERE id = $1`,
		c.ID, c.Nombre, c.Email)
	return err
}

// Borrar elimina el cliente.
func (r *ClienteRepository) Borrar(id string) error {
	_, err := r.db.Exec(`DELETE FROM clientes WHERE id = $1`, id)
	return err
}

func escanearClientes(rows *sql.Rows) ([]domain.Cliente, error) {
	var clientes []domain.Cliente
	for rows.Next() {
		var c domain.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Email); err != nil {
			return nil, err
		}
		clientes = append(clientes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return clientes, nil
}
