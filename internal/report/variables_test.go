package report

import (
	"strings"
	"testing"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

func TestSustituir(t *testing.T) {
	casos := []struct {
		nombre    string
		plantilla string
		variables map[string]string
		esperado  string
	}{
		{
			nombre:    "reemplazo simple",
			plantilla: "Paciente: {PACIENTE}",
			variables: map[string]string{"PACIENTE": "Juan Pérez"},
			esperado:  "Paciente: Juan Pérez",
		},
		{
			nombre:    "clave en minúsculas del mapa igual reemplaza",
			plantilla: "Cliente: {CLIENTE}",
			variables: map[string]string{"cliente": "ACME"},
			esperado:  "Cliente: ACME",
		},
		{
			nombre:    "valor vacío usa el centinela",
			plantilla: "Lugar: {LUGAR}",
			variables: map[string]string{"LUGAR": ""},
			esperado:  "Lugar: N/E",
		},
		{
			nombre:    "marcador desconocido queda tal cual",
			plantilla: "Hola {NOMBRE}, cirugía de {PACIENTE}",
			variables: map[string]string{"PACIENTE": "Ana"},
			esperado:  "Hola {NOMBRE}, cirugía de Ana",
		},
		{
			nombre:    "ocurrencias repetidas",
			plantilla: "{MEDICO} / {MEDICO}",
			variables: map[string]string{"MEDICO": "Dr. Gómez"},
			esperado:  "Dr. Gómez / Dr. Gómez",
		},
		{
			nombre:    "plantilla vacía",
			plantilla: "",
			variables: map[string]string{"PACIENTE": "Ana"},
			esperado:  "",
		},
	}

	for _, c := range casos {
		if got := Sustituir(c.plantilla, c.variables); got != c.esperado {
			t.Fatalf("%s: esperaba %q, obtuve %q", c.nombre, c.esperado, got)
		}
	}
}

// Tras aplicar Sustituir no debe quedar ningún marcador de una clave
// presente en el mapa, ni siquiera cuando el valor era vacío.
func TestSustituirNoDejaMarcadoresConocidos(t *testing.T) {
	plantilla := "{CLIENTE} {PACIENTE} {MEDICO} {FECHA} {LUGAR}"
	variables := map[string]string{
		"CLIENTE":  "ACME",
		"PACIENTE": "",
		"MEDICO":   "Dr. Gómez",
		"FECHA":    "",
		"LUGAR":    "Sanatorio Norte",
	}
	resultado := Sustituir(plantilla, variables)
	for clave := range variables {
		if strings.Contains(resultado, "{"+clave+"}") {
			t.Fatalf("quedó el marcador {%s} en %q", clave, resultado)
		}
	}
}

func TestFormatearFecha(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"2024-03-15", "15/03/2024"},
		{"2025-12-01", "01/12/2025"},
		{"", "N/E"},
		{"15/03/2024", "15/03/2024"}, // ya formateada: pasa sin tocar
		{"mañana", "mañana"},         // texto libre: pasa sin tocar
	}
	for _, c := range casos {
		if got := FormatearFecha(c.entrada); got != c.esperado {
			t.Fatalf("FormatearFecha(%q): esperaba %q, obtuve %q", c.entrada, c.esperado, got)
		}
	}
}

func TestVariables(t *testing.T) {
	r := domain.Reporte{
		Cliente:      "ACME",
		Paciente:     "Juan Pérez",
		FechaCirugia: "2024-03-15",
	}
	vars := Variables(r, "compras@acme.com")

	if vars["FECHA"] != "15/03/2024" {
		t.Fatalf("FECHA sin reformatear: %q", vars["FECHA"])
	}
	if vars["EMAIL_CLIENTE"] != "compras@acme.com" {
		t.Fatalf("EMAIL_CLIENTE incorrecto: %q", vars["EMAIL_CLIENTE"])
	}
	// La fecha de envío vacía ya llega como centinela desde el formateo.
	if vars["FECHA_ENVIO"] != "N/E" {
		t.Fatalf("FECHA_ENVIO incorrecta: %q", vars["FECHA_ENVIO"])
	}
	claves := []string{"CLIENTE", "PACIENTE", "MEDICO", "INSTRUMENTADOR", "FECHA", "LUGAR", "TIPO_CIRUGIA", "EMAIL_CLIENTE", "FECHA_ENVIO"}
	for _, k := range claves {
		if _, ok := vars[k]; !ok {
			t.Fatalf("falta la clave %s en el diccionario", k)
		}
	}
}
