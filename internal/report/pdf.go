package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// GenerarPDF arma el reporte como documento PDF (A4, vertical).
// Es la pieza que se adjunta en los envíos a la ART, donde un cuerpo
// de correo suelto no alcanza como constancia.
func GenerarPDF(r domain.Reporte, mensajes map[string]string, emailCliente string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Las fuentes base de gofpdf son cp1252: el traductor convierte
	// los acentos del castellano antes de escribir.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Reporte de Cirugía"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(valorO(mensajes, ClaveCuerpoInicio, domain.MensajeInicioDefecto)), "", "L", false)
	pdf.Ln(4)

	// Datos principales, mismo orden fijo que la versión HTML.
	pdf.SetFont("Arial", "", 12)
	datos := []struct {
		etiqueta string
		valor    string
	}{
		{"Paciente", r.Paciente},
		{"Médico", r.Medico},
		{"Instrumentador", r.Instrumentador},
		{"Cliente/ART", r.Cliente},
		{"Email Cliente", emailCliente},
		{"Fecha Cirugía", FormatearFecha(r.FechaCirugia)},
		{"Fecha Envío", FormatearFecha(r.FechaEnvio)},
		{"Lugar", r.LugarCirugia},
		{"Tipo de Cirugía", r.TipoCirugia},
	}
	for _, d := range datos {
		if d.etiqueta == "Email Cliente" && d.valor == "" {
			continue
		}
		valor := d.valor
		if valor == "" {
			valor = NoEspecificado
		}
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s: %s", d.etiqueta, valor)))
		pdf.Ln(8)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, tr(valorO(mensajes, ClaveMaterialReq, DefectoMaterialReq)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	for _, linea := range strings.Split(ListaMaterial(r.Material), "\n") {
		pdf.Cell(0, 7, tr(linea))
		pdf.Ln(7)
	}

	if r.Observaciones != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, tr("Observaciones"))
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 6, tr(r.Observaciones), "", "L", false)
	}
	if r.InfoAdicional != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, tr("Info Adicional"))
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 6, tr(r.InfoAdicional), "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 11)
	pdf.Cell(0, 8, tr(valorO(mensajes, ClaveSaludosFinal, DefectoSaludos)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error generando el PDF del reporte: %w", err)
	}
	return buf.Bytes(), nil
}
