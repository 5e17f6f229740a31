package report

import (
	"strings"
	"testing"
)

func TestGenerarHTML(t *testing.T) {
	r := reporteDeEjemplo()
	r.Observaciones = "Primera línea\nSegunda línea"
	html := GenerarHTML(r, nil, "compras@acme.com")

	if !strings.Contains(html, "<li style=\"margin-bottom: 5px;\">Tornillo 4mm</li>") {
		t.Fatalf("falta el ítem de material en la lista:\n%s", html)
	}
	if !strings.Contains(html, "Email Cliente") {
		t.Fatal("con email resuelto debe aparecer la fila Email Cliente")
	}
	// Los saltos de línea de la prosa se convierten a <br>.
	if !strings.Contains(html, "Primera línea<br>Segunda línea") {
		t.Fatalf("las observaciones no convirtieron los saltos de línea:\n%s", html)
	}
	if strings.Contains(html, "Primera línea\nSegunda línea") {
		t.Fatal("quedó un salto de línea literal dentro de la prosa")
	}
	if !strings.Contains(html, "15/03/2024") {
		t.Fatal("falta la fecha de cirugía reformateada")
	}
}

func TestGenerarHTMLSinEmailNiMaterial(t *testing.T) {
	r := reporteDeEjemplo()
	r.Material = ""
	html := GenerarHTML(r, nil, "")

	if strings.Contains(html, "Email Cliente") {
		t.Fatal("sin email resuelto no debe aparecer la fila Email Cliente")
	}
	if !strings.Contains(html, "font-style: italic;\">No especificado.</p>") {
		t.Fatalf("material vacío debe rendir el párrafo en cursiva:\n%s", html)
	}
	if strings.Contains(html, "<ul") {
		t.Fatal("material vacío no debe rendir lista")
	}
	// Los campos opcionales vacíos muestran el centinela en su celda.
	if !strings.Contains(html, ">N/E</td>") {
		t.Fatal("los campos vacíos de la tabla deben mostrar N/E")
	}
}

func TestFilaDato(t *testing.T) {
	fila := filaDato("Lugar", "")
	if !strings.Contains(fila, ">N/E</td>") {
		t.Fatalf("valor vacío sin centinela: %s", fila)
	}
	fila = filaDato("Paciente", "Ana")
	if !strings.Contains(fila, "Paciente:") || !strings.Contains(fila, ">Ana</td>") {
		t.Fatalf("fila mal armada: %s", fila)
	}
}
