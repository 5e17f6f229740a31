package report

import (
	"strings"
	"testing"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

func reporteDeEjemplo() domain.Reporte {
	return domain.Reporte{
		Cliente:      "ACME",
		Paciente:     "Juan Pérez",
		Medico:       "Dr. Gómez",
		FechaCirugia: "2024-03-15",
		Material:     "Tornillo 4mm\nPlaca titanio",
	}
}

// Caso de punta a punta del enunciado: fecha reformateada, dos líneas de
// material con separador y ningún bloque de observaciones.
func TestGenerarTextoPlanoEjemplo(t *testing.T) {
	texto := GenerarTextoPlano(reporteDeEjemplo(), nil, "")

	if !strings.Contains(texto, "15/03/2024") {
		t.Fatalf("falta la fecha reformateada en:\n%s", texto)
	}
	if n := strings.Count(texto, "— "); n != 2 {
		t.Fatalf("esperaba 2 ítems de material con separador, conté %d en:\n%s", n, texto)
	}
	if !strings.Contains(texto, "— Tornillo 4mm") || !strings.Contains(texto, "— Placa titanio") {
		t.Fatalf("faltan ítems de material en:\n%s", texto)
	}
	if strings.Contains(texto, "Observaciones") {
		t.Fatalf("no debía haber bloque de observaciones en:\n%s", texto)
	}
}

func TestGenerarTextoPlanoSinEspaciosEnLosBordes(t *testing.T) {
	texto := GenerarTextoPlano(reporteDeEjemplo(), nil, "")
	if texto != strings.TrimSpace(texto) {
		t.Fatal("el reporte empieza o termina con espacios en blanco")
	}
	if strings.HasPrefix(texto, "\n") || strings.HasSuffix(texto, "\n") {
		t.Fatal("el reporte empieza o termina con línea en blanco")
	}
}

func TestGenerarTextoPlanoMaterialVacio(t *testing.T) {
	r := reporteDeEjemplo()
	r.Material = ""
	texto := GenerarTextoPlano(r, nil, "")

	// La sección de material debe tener una única línea con el centinela.
	if !strings.Contains(texto, "Material Requerido:\n— N/E") {
		t.Fatalf("la sección de material vacía no rinde el centinela:\n%s", texto)
	}
}

func TestGenerarTextoPlanoBloquesOpcionales(t *testing.T) {
	r := reporteDeEjemplo()
	r.Observaciones = "Paciente alérgico al látex"
	r.InfoAdicional = "Llega en ambulancia"
	texto := GenerarTextoPlano(r, nil, "")

	iObs := strings.Index(texto, "⚠︎ Observaciones:")
	iInfo := strings.Index(texto, "ℹ︎ Info Adicional:")
	if iObs == -1 || iInfo == -1 {
		t.Fatalf("faltan los bloques opcionales en:\n%s", texto)
	}
	if iObs > iInfo {
		t.Fatal("las observaciones deben ir antes que la info adicional")
	}
}

// El administrador controla el bloque de datos principales por plantilla.
func TestGenerarTextoPlanoConEstructuraConfigurada(t *testing.T) {
	mensajes := map[string]string{
		ClaveEstructuraDatos: "Paciente: {PACIENTE}\nMédico: {MEDICO}\nCliente: {CLIENTE}",
		ClaveCuerpoInicio:    "Cirugía programada para {PACIENTE}",
	}
	texto := GenerarTextoPlano(reporteDeEjemplo(), mensajes, "")

	if !strings.Contains(texto, "📋 Cirugía programada para Juan Pérez") {
		t.Fatalf("el encabezado configurado no se sustituyó:\n%s", texto)
	}
	if !strings.Contains(texto, "Paciente: Juan Pérez\nMédico: Dr. Gómez\nCliente: ACME") {
		t.Fatalf("el bloque de datos configurado no se sustituyó:\n%s", texto)
	}
}

func TestListaMaterial(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Tornillo 4mm\nPlaca titanio", "— Tornillo 4mm\n— Placa titanio"},
		{"  Tornillo 4mm  \n\n   \nPlaca", "— Tornillo 4mm\n— Placa"},
		{"", "— N/E"},
	}
	for _, c := range casos {
		if got := ListaMaterial(c.entrada); got != c.esperado {
			t.Fatalf("ListaMaterial(%q): esperaba %q, obtuve %q", c.entrada, c.esperado, got)
		}
	}
}
