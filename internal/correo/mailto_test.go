package correo

import (
	"strings"
	"testing"
)

func TestMailtoURI(t *testing.T) {
	uri := MailtoURI("compras@acme.com", "Reporte Cirugía: ACME - Juan Pérez", "Cuerpo del\nreporte")

	if !strings.HasPrefix(uri, "mailto:compras%40acme.com?subject=") {
		t.Fatalf("encabezado inesperado: %s", uri)
	}
	if strings.Contains(uri, "+") {
		t.Fatalf("los espacios deben ir como %%20, no como '+': %s", uri)
	}
	if !strings.Contains(uri, "subject=Reporte%20Cirug") {
		t.Fatalf("falta el asunto codificado: %s", uri)
	}
	if !strings.Contains(uri, "&body=Cuerpo%20del%0Areporte") {
		t.Fatalf("falta el cuerpo codificado: %s", uri)
	}
}
