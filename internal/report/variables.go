// Package report genera las representaciones del reporte de cirugía:
// texto plano para copiar/pegar, HTML enriquecido para correo y PDF
// para adjuntar. El motor de sustitución reemplaza marcadores {CLAVE}
// en las plantillas que el administrador edita desde la configuración.
package report

import (
	"strings"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// NoEspecificado es el texto que ve el lector cuando falta un dato.
// Es una constante de contenido, no un detalle de presentación: los
// reportes ya circulan con este literal y hay planillas que lo buscan.
const NoEspecificado = "N/E"

// Sustituir reemplaza en la plantilla cada marcador {CLAVE} (la clave en
// mayúsculas, entre llaves) por el valor correspondiente del mapa.
// Un valor vacío se reemplaza por NoEspecificado, nunca por cadena vacía.
// Los marcadores cuya clave no figura en el mapa quedan tal cual: no es
// un error, el administrador puede estar editando la plantilla a medias.
//
// La función es pura. No es idempotente si un valor sustituido contiene
// a su vez texto con forma {CLAVE}; ese caso queda fuera de contrato.
func Sustituir(plantilla string, variables map[string]string) string {
	if plantilla == "" {
		return ""
	}
	resultado := plantilla
	for clave, valor := range variables {
		if valor == "" {
			valor = NoEspecificado
		}
		marcador := "{" + strings.ToUpper(clave) + "}"
		resultado = strings.ReplaceAll(resultado, marcador, valor)
	}
	return resultado
}

// FormatearFecha convierte una fecha ISO (YYYY-MM-DD) al formato del
// reporte (DD/MM/YYYY). Una fecha vacía devuelve NoEspecificado.
// Cualquier texto que no tenga tres partes separadas por guiones se
// devuelve sin tocar.
func FormatearFecha(fechaISO string) string {
	if fechaISO == "" {
		return NoEspecificado
	}
	partes := strings.Split(fechaISO, "-")
	if len(partes) != 3 {
		return fechaISO
	}
	return partes[2] + "/" + partes[1] + "/" + partes[0]
}

// Variables arma el diccionario de sustitución a partir de un reporte.
// Las claves son las que el administrador puede usar en sus plantillas:
// {CLIENTE}, {PACIENTE}, {MEDICO}, {INSTRUMENTADOR}, {FECHA}, {LUGAR},
// {TIPO_CIRUGIA}, {EMAIL_CLIENTE} y {FECHA_ENVIO}.
// El email del cliente llega por parámetro porque no vive en el reporte:
// se resuelve contra el catálogo de clientes.
func Variables(r domain.Reporte, emailCliente string) map[string]string {
	return map[string]string{
		"CLIENTE":        r.Cliente,
		"PACIENTE":       r.Paciente,
		"MEDICO":         r.Medico,
		"INSTRUMENTADOR": r.Instrumentador,
		"FECHA":          FormatearFecha(r.FechaCirugia),
		"LUGAR":          r.LugarCirugia,
		"TIPO_CIRUGIA":   r.TipoCirugia,
		"EMAIL_CLIENTE":  emailCliente,
		"FECHA_ENVIO":    FormatearFecha(r.FechaEnvio),
	}
}

// valorO devuelve el mensaje configurado para la clave, o el texto por
// defecto si el administrador todavía no lo cargó.
func valorO(mensajes map[string]string, clave, defecto string) string {
	if v := mensajes[clave]; v != "" {
		return v
	}
	return defecto
}
