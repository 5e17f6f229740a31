package domain

// Cliente — cliente o ART al que se le dirige el reporte.
type Cliente struct {
	ID     string `json:"id"`     // UUID
	Nombre string `json:"nombre"` // Razón social
	Email  string `json:"email"`  // Dirección de contacto (puede estar vacía)
}

// Material — ítem del catálogo de materiales.
type Material struct {
	ID          string `json:"id"`
	Code        string `json:"code"`        // Código interno
	Description string `json:"description"` // Descripción visible
	Categoria   string `json:"categoria"`   // Agrupación para los listados
}

// CategoriaSinAsignar agrupa los materiales sin categoría cargada.
const CategoriaSinAsignar = "Sin Categoría"

// TipoCirugia — tipo de cirugía del catálogo maestro.
type TipoCirugia struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// Sugerencia — par campo/valor para el autocompletado del formulario.
// La dupla (campo, valor) es única en la base.
type Sugerencia struct {
	ID    string `json:"id"`
	Campo string `json:"campo"` // medico | instrumentador | lugar_cirugia
	Valor string `json:"valor"`
}

// Mensaje — entrada clave/valor de la tabla de configuración.
// El administrador edita aquí las plantillas del reporte
// (por ejemplo 'asunto_base' o 'estructura_datos_principales').
type Mensaje struct {
	Clave string `json:"clave"`
	Valor string `json:"valor"`
}
