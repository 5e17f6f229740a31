package report

import (
	"strings"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// GenerarHTML arma la versión enriquecida del reporte: una tabla de
// datos con etiquetas fijas, la lista de material como viñetas y el
// panel de observaciones si corresponde.
//
// Ojo: esta versión NO usa la plantilla 'estructura_datos_principales'.
// El orden y el conjunto de campos están fijados acá, a propósito: el
// HTML funciona como pieza de formato estable para correo, mientras que
// el texto plano es el que el administrador puede reordenar. No unificar
// sin decisión de producto.
func GenerarHTML(r domain.Reporte, mensajes map[string]string, emailCliente string) string {
	fechaCirugia := FormatearFecha(r.FechaCirugia)
	fechaEnvio := FormatearFecha(r.FechaEnvio)

	// Filas de datos principales, en orden fijo. La fila del email del
	// cliente sólo aparece cuando hay una dirección resuelta.
	var filas strings.Builder
	filas.WriteString(filaDato("Paciente", r.Paciente))
	filas.WriteString(filaDato("Médico", r.Medico))
	filas.WriteString(filaDato("Instrumentador", r.Instrumentador))
	filas.WriteString(filaDato("Cliente/ART", r.Cliente))
	if emailCliente != "" {
		filas.WriteString(filaDato("Email Cliente", emailCliente))
	}
	filas.WriteString(filaDato("Fecha Cirugía", fechaCirugia))
	filas.WriteString(filaDato("Fecha Envío", fechaEnvio))
	filas.WriteString(filaDato("Lugar", r.LugarCirugia))
	filas.WriteString(filaDato("Tipo de Cirugía", r.TipoCirugia))

	// Lista de material en viñetas; vacía rinde el párrafo en cursiva.
	var items strings.Builder
	for _, linea := range strings.Split(r.Material, "\n") {
		linea = strings.TrimSpace(linea)
		if linea == "" {
			continue
		}
		items.WriteString(`<li style="margin-bottom: 5px;">` + linea + `</li>`)
	}
	listaMaterial := `<p style="color: #9ca3af; font-style: italic;">No especificado.</p>`
	if items.Len() > 0 {
		listaMaterial = `<ul style="list-style: disc; margin: 0; padding-left: 20px;">` + items.String() + `</ul>`
	}

	// Panel de observaciones, sólo si hay texto.
	observaciones := ""
	if r.Observaciones != "" {
		observaciones = `<div style="margin-top: 15px; border-top: 1px dashed #e5e7eb; padding-top: 10px;">` +
			`<p style="font-weight: 600; color: #dc2626;">⚠︎ Observaciones:</p>` +
			`<p style="color: #4b5563;">` + textoAHTML(r.Observaciones) + `</p>` +
			`</div>`
	}

	inicio := valorO(mensajes, ClaveCuerpoInicio, domain.MensajeInicioDefecto)
	saludos := valorO(mensajes, ClaveSaludosFinal, DefectoSaludos)
	materialReq := valorO(mensajes, ClaveMaterialReq, "Material Requerido")

	return `<div style="font-family: Arial, sans-serif; font-size: 14px; color: #333; line-height: 1.6; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #ffffff; border: 1px solid #e5e7eb; border-radius: 8px;">` +
		`<h2 style="font-size: 20px; font-weight: 700; color: #1f2937; text-align: center; margin-bottom: 15px;">📝 Reporte de Cirugía</h2>` +
		`<p style="margin-bottom: 20px; color: #4b5563; text-align: center;">` + inicio + `</p>` +
		`<table width="100%" cellpadding="0" cellspacing="0" style="border: 1px solid #d1d5db; border-radius: 6px; overflow: hidden; margin-bottom: 20px; background-color: #f9fafb;">` +
		filas.String() +
		`</table>` +
		`<div style="border-bottom: 2px solid #10b981; padding-bottom: 5px; margin-bottom: 10px;">` +
		`<h3 style="font-size: 16px; font-weight: 700; color: #10b981;">📦 ` + materialReq + `</h3>` +
		`</div>` +
		listaMaterial +
		observaciones +
		`<p style="margin-top: 20px; color: #4b5563;">` + saludos + `</p>` +
		`</div>`
}

// filaDato arma una fila etiqueta/valor de la tabla de datos.
// Un valor vacío muestra el centinela, igual que en texto plano.
func filaDato(etiqueta, valor string) string {
	if valor == "" {
		valor = NoEspecificado
	}
	return `<tr>` +
		`<td style="font-weight: 600; padding: 4px 10px; width: 140px; color: #1f2937;">` + etiqueta + `:</td>` +
		`<td style="padding: 4px 10px; color: #374151;">` + valor + `</td>` +
		`</tr>`
}

// textoAHTML convierte texto multilínea a HTML: los saltos de línea
// pasan a <br>; nunca se deja un salto literal dentro de la prosa.
func textoAHTML(texto string) string {
	if texto == "" {
		return `<span style="color: #9ca3af; font-style: italic;">No especificado.</span>`
	}
	return strings.ReplaceAll(texto, "\n", "<br>")
}
