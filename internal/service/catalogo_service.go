package service

import (
	"errors"
	"strings"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/config"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// Errores del servicio de catálogos.
var (
	ErrNombreRequerido = errors.New("el nombre es requerido")
	ErrCampoInvalido   = errors.New("campo de sugerencia desconocido")
)

// Campos de formulario que alimentan sugerencias.
var camposSugerencia = map[string]bool{
	"medico":         true,
	"instrumentador": true,
	"lugar_cirugia":  true,
}

// AlmacenClientes — CRUD de clientes.
type AlmacenClientes interface {
	ListarPagina(pagina, filas int) ([]domain.Cliente, int, error)
	ListarTodos() ([]domain.Cliente, error)
	Crear(*domain.Cliente) error
	Actualizar(*domain.Cliente) error
	Borrar(id string) error
}

// AlmacenMateriales — CRUD de materiales.
type AlmacenMateriales interface {
	Listar() ([]domain.Material, error)
	Crear(*domain.Material) error
	Borrar(id string) error
}

// AlmacenTiposCirugia — CRUD de tipos de cirugía.
type AlmacenTiposCirugia interface {
	Listar() ([]domain.TipoCirugia, error)
	Crear(*domain.TipoCirugia) error
	Borrar(id string) error
}

// LectorSugerencias — consulta y depuración de sugerencias.
type LectorSugerencias interface {
	ListarPorCampo(campo string) ([]domain.Sugerencia, error)
	ListarTodas() ([]domain.Sugerencia, error)
	Borrar(id string) error
}

// AlmacenMensajes — plantillas configurables.
type AlmacenMensajes interface {
	Listar() ([]domain.Mensaje, error)
	Guardar(clave, valor string) error
}

// PaginaClientes — una página del listado de clientes.
type PaginaClientes struct {
	Clientes     []domain.Cliente `json:"clientes"`
	Pagina       int              `json:"pagina"`
	TotalPaginas int              `json:"total_paginas"`
	Total        int              `json:"total"`
}

// GrupoMateriales — materiales de una misma categoría.
type GrupoMateriales struct {
	Categoria  string            `json:"categoria"`
	Materiales []domain.Material `json:"materiales"`
}

// CatalogoService — datos maestros: clientes, materiales, tipos de
// cirugía, sugerencias y plantillas de mensajes.
type CatalogoService struct {
	clientes    AlmacenClientes
	materiales  AlmacenMateriales
	tipos       AlmacenTiposCirugia
	sugerencias LectorSugerencias
	mensajes    AlmacenMensajes
	limites     config.LimitesConfig
}

// NewCatalogoService crea el servicio.
func NewCatalogoService(
	clientes AlmacenClientes,
	materiales AlmacenMateriales,
	tipos AlmacenTiposCirugia,
	sugerencias LectorSugerencias,
	mensajes AlmacenMensajes,
	limites config.LimitesConfig,
) *CatalogoService {
	return &CatalogoService{
		clientes:    clientes,
		materiales:  materiales,
		tipos:       tipos,
		sugerencias: sugerencias,
		mensajes:    mensajes,
		limites:     limites,
	}
}

// ClientesPagina devuelve una página del listado de clientes. Las
// páginas arrancan en 1; fuera de rango se devuelve la página vacía.
func (s *CatalogoService) ClientesPagina(pagina int) (*PaginaClientes, error) {
	if pagina < 1 {
		pagina = 1
	}
	filas := s.limites.FilasPorPagina
	clientes, total, err := s.clientes.ListarPagina(pagina, filas)
	if err != nil {
		return nil, err
	}
	totalPaginas := (total + filas - 1) / filas
	if clientes == nil {
		clientes = []domain.Cliente{}
	}
	return &PaginaClientes{
		Clientes:     clientes,
		Pagina:       pagina,
		TotalPaginas: totalPaginas,
		Total:        total,
	}, nil
}

// ClientesTodos devuelve el catálogo completo, para los selectores del
// formulario.
func (s *CatalogoService) ClientesTodos() ([]domain.Cliente, error) {
	return s.clientes.ListarTodos()
}

// GuardarCliente crea o actualiza un cliente según traiga ID o no.
func (s *CatalogoService) GuardarCliente(c *domain.Cliente) error {
	c.Nombre = strings.TrimSpace(c.Nombre)
	c.Email = strings.TrimSpace(c.Email)
	if c.Nombre == "" {
		return ErrNombreRequerido
	}
	if c.ID == "" {
		return s.clientes.Crear(c)
	}
	return s.clientes.Actualizar(c)
}

// BorrarCliente elimina un cliente del catálogo.
func (s *CatalogoService) BorrarCliente(id string) error {
	return s.clientes.Borrar(id)
}

// MaterialesAgrupados devuelve el catálogo de materiales agrupado por
// categoría, en el orden que trae el repositorio. Materiales sin
// categoría van al grupo por defecto.
func (s *CatalogoService) MaterialesAgrupados() ([]GrupoMateriales, error) {
	materiales, err := s.materiales.Listar()
	if err != nil {
		return nil, err
	}
	var grupos []GrupoMateriales
	indice := make(map[string]int)
	for _, m := range materiales {
		categoria := m.Categoria
		if categoria == "" {
			categoria = domain.CategoriaSinAsignar
		}
		i, ok := indice[categoria]
		if !ok {
			i = len(grupos)
			indice[categoria] = i
			grupos = append(grupos, GrupoMateriales{Categoria: categoria})
		}
		grupos[i].Materiales = append(grupos[i].Materiales, m)
	}
	return grupos, nil
}

// CrearMaterial agrega un material al catálogo.
func (s *CatalogoService) CrearMaterial(m *domain.Material) error {
	m.Description = strings.TrimSpace(m.Description)
	if m.Description == "" {
		return ErrNombreRequerido
	}
	if strings.TrimSpace(m.Categoria) == "" {
		m.Categoria = domain.CategoriaSinAsignar
	}
	return s.materiales.Crear(m)
}

// BorrarMaterial elimina un material del catálogo.
func (s *CatalogoService) BorrarMaterial(id string) error {
	return s.materiales.Borrar(id)
}

// TiposCirugia devuelve el catálogo de tipos de cirugía.
func (s *CatalogoService) TiposCirugia() ([]domain.TipoCirugia, error) {
	return s.tipos.Listar()
}

// CrearTipoCirugia agrega un tipo de cirugía.
func (s *CatalogoService) CrearTipoCirugia(t *domain.TipoCirugia) error {
	t.Nombre = strings.TrimSpace(t.Nombre)
	if t.Nombre == "" {
		return ErrNombreRequerido
	}
	return s.tipos.Crear(t)
}

// BorrarTipoCirugia elimina un tipo de cirugía.
func (s *CatalogoService) BorrarTipoCirugia(id string) error {
	return s.tipos.Borrar(id)
}

// Sugerencias devuelve las sugerencias de autocompletado. Sin campo
// vuelven todas; con campo, sólo las de ese campo.
func (s *CatalogoService) Sugerencias(campo string) ([]domain.Sugerencia, error) {
	if campo == "" {
		return s.sugerencias.ListarTodas()
	}
	if !camposSugerencia[campo] {
		return nil, ErrCampoInvalido
	}
	return s.sugerencias.ListarPorCampo(campo)
}

// BorrarSugerencia depura una sugerencia mal cargada.
func (s *CatalogoService) BorrarSugerencia(id string) error {
	return s.sugerencias.Borrar(id)
}

// Mensajes devuelve las plantillas configuradas.
func (s *CatalogoService) Mensajes() ([]domain.Mensaje, error) {
	return s.mensajes.Listar()
}

// GuardarMensaje crea o reemplaza una plantilla por su clave.
func (s *CatalogoService) GuardarMensaje(clave, valor string) error {
	if strings.TrimSpace(clave) == "" {
		return ErrNombreRequerido
	}
	return s.mensajes.Guardar(clave, valor)
}
