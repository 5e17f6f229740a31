package trigger

import "testing"

func TestDispararYConsumir(t *testing.T) {
	d := Nuevo()

	if d.Consumir() != nil {
		t.Fatal("el casillero recién creado debe estar vacío")
	}

	d.Disparar(AccionGuardar, nil)
	a := d.Consumir()
	if a == nil || a.Nombre != AccionGuardar {
		t.Fatalf("acción inesperada: %+v", a)
	}
	if a.Marca.IsZero() {
		t.Fatal("la acción debe llevar marca de tiempo")
	}
	if d.Consumir() != nil {
		t.Fatal("consumir debe limpiar el casillero")
	}
}

// Comportamiento documentado: dos disparos sin consumo intermedio
// pierden el primero. El casillero sobreescribe, no encola.
func TestSobreescrituraPierdeElAnterior(t *testing.T) {
	d := Nuevo()

	d.Disparar(AccionGuardar, nil)
	d.Disparar(AccionCompartir, map[string]string{"canal": "email"})

	a := d.Consumir()
	if a == nil || a.Nombre != AccionCompartir {
		t.Fatalf("esperaba la última acción, obtuve %+v", a)
	}
	if a.Payload["canal"] != "email" {
		t.Fatalf("payload perdido: %+v", a.Payload)
	}
	if d.Consumir() != nil {
		t.Fatal("la primera acción debe ser irrecuperable")
	}
}

func TestLimpiar(t *testing.T) {
	d := Nuevo()
	d.Disparar(AccionReset, nil)
	d.Limpiar()
	if d.Pendiente() != nil {
		t.Fatal("limpiar debe vaciar el casillero")
	}
}

// El aviso nunca bloquea aunque nadie lo escuche.
func TestAvisoNoBloquea(t *testing.T) {
	d := Nuevo()
	for i := 0; i < 10; i++ {
		d.Disparar(AccionVistaPrevia, nil)
	}

	select {
	case <-d.Aviso():
	default:
		t.Fatal("debía haber un aviso pendiente")
	}
	select {
	case <-d.Aviso():
		t.Fatal("no debía haber un segundo aviso encolado")
	default:
	}
}
