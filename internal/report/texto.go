package report

import (
	"strings"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// Claves de la tabla de configuración que usa el renderizado.
const (
	ClaveCuerpoInicio    = "cuerpo_reporte_inicio"
	ClaveMaterialReq     = "cuerpo_material_requerido"
	ClaveSaludosFinal    = "msg_saludos_final"
	ClaveEstructuraDatos = "estructura_datos_principales"
	ClaveAsuntoBase      = "asunto_base"
)

// Textos por defecto cuando el administrador no configuró la clave.
const (
	DefectoCuerpoInicio = "Reporte de Cirugía"
	DefectoMaterialReq  = "Material Requerido:"
	DefectoSaludos      = "Saludos cordiales."
	DefectoAsuntoBase   = "Reporte Cirugía: {CLIENTE} - {PACIENTE}"
)

// GenerarTextoPlano arma el reporte en texto plano listo para copiar al
// portapapeles o pegar en el cuerpo de un correo.
//
// El bloque de datos principales sale de la plantilla multilínea
// 'estructura_datos_principales': el administrador controla el orden y
// las etiquetas de los campos sin tocar código. El resto del armado
// (lista de material, bloques opcionales) es estructura fija.
func GenerarTextoPlano(r domain.Reporte, mensajes map[string]string, emailCliente string) string {
	variables := Variables(r, emailCliente)

	// Fragmentos configurables, con sustitución de variables.
	inicio := Sustituir(valorO(mensajes, ClaveCuerpoInicio, DefectoCuerpoInicio), variables)
	materialReq := Sustituir(valorO(mensajes, ClaveMaterialReq, DefectoMaterialReq), variables)
	saludos := Sustituir(valorO(mensajes, ClaveSaludosFinal, DefectoSaludos), variables)
	bloqueDatos := Sustituir(mensajes[ClaveEstructuraDatos], variables)

	// Lista de material: una línea por ítem, con guion largo adelante.
	// Si el campo está vacío, la única línea es el centinela N/E.
	listaMaterial := ListaMaterial(r.Material)

	// Bloques opcionales, siempre observaciones antes que info adicional.
	var adicional strings.Builder
	if r.Observaciones != "" {
		adicional.WriteString("\n\n⚠︎ Observaciones:\n")
		adicional.WriteString(r.Observaciones)
	}
	if r.InfoAdicional != "" {
		adicional.WriteString("\n\nℹ︎ Info Adicional:\n")
		adicional.WriteString(r.InfoAdicional)
	}

	reporte := "📋 " + inicio + "\n\n" +
		bloqueDatos + "\n\n\n\n" +
		materialReq + "\n" +
		listaMaterial +
		adicional.String() + "\n\n\n\n" +
		saludos

	return strings.TrimSpace(reporte)
}

// ListaMaterial normaliza el campo de material: separa por líneas,
// recorta espacios, descarta las vacías y antepone el separador de ítem.
// Un campo vacío se reemplaza por el centinela ANTES de separar, así el
// lector ve una única línea "— N/E" en lugar de una sección en blanco.
func ListaMaterial(material string) string {
	if material == "" {
		material = NoEspecificado
	}
	var lineas []string
	for _, linea := range strings.Split(material, "\n") {
		linea = strings.TrimSpace(linea)
		if linea == "" {
			continue
		}
		lineas = append(lineas, "— "+linea)
	}
	return strings.Join(lineas, "\n")
}
