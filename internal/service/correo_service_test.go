package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/config"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
)

// bitacoraFalsa acumula las entradas escritas.
type bitacoraFalsa struct {
	entradas []domain.EnvioCorreo
	fallar   bool
}

func (b *bitacoraFalsa) Crear(e *domain.EnvioCorreo) error {
	if b.fallar {
		return errors.New("la bitácora no responde")
	}
	b.entradas = append(b.entradas, *e)
	return nil
}

func (b *bitacoraFalsa) ListarPorReporte(reporteID string) ([]domain.EnvioCorreo, error) {
	return b.entradas, nil
}

// clientesFalsos resuelve emails por razón social; fallar simula una
// base caída durante la búsqueda.
type clientesFalsos struct {
	porNombre map[string]string
	fallar    bool
}

func (c *clientesFalsos) BuscarPorNombre(nombre string) (*domain.Cliente, error) {
	if c.fallar {
		return nil, errors.New("la tabla de clientes no responde")
	}
	email, ok := c.porNombre[nombre]
	if !ok {
		return nil, nil
	}
	return &domain.Cliente{Nombre: nombre, Email: email}, nil
}

// mensajesFalsos devuelve un mapa fijo de plantillas.
type mensajesFalsos map[string]string

func (m mensajesFalsos) Mapa() (map[string]string, error) { return m, nil }

func nuevoCorreoDePrueba(t *testing.T, clientes *clientesFalsos) (*CorreoService, *bitacoraFalsa, string) {
	t.Helper()
	almacen := nuevoAlmacenFalso()
	r := reporteValido()
	if _, err := NewReporteService(almacen, &sugerenciasFalsas{}).Guardar(r); err != nil {
		t.Fatalf("guardar el reporte de prueba: %v", err)
	}
	bitacora := &bitacoraFalsa{}
	cfg := config.CorreoConfig{
		DireccionInterna: "deposito@veraimplantes.com",
		DireccionART:     "autorizaciones@veraimplantes.com",
	}
	svc := NewCorreoService(almacen, clientes, mensajesFalsos{}, bitacora, nil, cfg)
	return svc, bitacora, r.ID
}

// Sin email configurado para el cliente no hay destinatario, no hay
// entrega y, sobre todo, no queda nada en la bitácora.
func TestEnviarClienteSinEmail(t *testing.T) {
	svc, bitacora, id := nuevoCorreoDePrueba(t, &clientesFalsos{})

	_, err := svc.Enviar(domain.EnvioCliente, id, "")
	if !errors.Is(err, ErrDestinatarioNoResuelto) {
		t.Fatalf("esperaba ErrDestinatarioNoResuelto, obtuve %v", err)
	}
	if len(bitacora.entradas) != 0 {
		t.Fatalf("un envío fallido no debe dejar bitácora, hay %d entradas", len(bitacora.entradas))
	}
}

// Una falla de la base durante la búsqueda del email es un error de
// backend y se propaga como tal: no se confunde con un destinatario
// ausente, y tampoco deja bitácora.
func TestEnviarClienteConBusquedaCaida(t *testing.T) {
	svc, bitacora, id := nuevoCorreoDePrueba(t, &clientesFalsos{fallar: true})

	_, err := svc.Enviar(domain.EnvioCliente, id, "")
	if err == nil {
		t.Fatal("esperaba el error de la búsqueda")
	}
	if errors.Is(err, ErrDestinatarioNoResuelto) {
		t.Fatalf("una base caída no es un destinatario ausente: %v", err)
	}
	if len(bitacora.entradas) != 0 {
		t.Fatalf("un envío fallido no debe dejar bitácora, hay %d entradas", len(bitacora.entradas))
	}
}

// Para los envíos a casillas fijas el email del cliente es sólo una
// variable opcional: la búsqueda caída no frena el despacho.
func TestEnviarInternoConBusquedaCaida(t *testing.T) {
	svc, bitacora, id := nuevoCorreoDePrueba(t, &clientesFalsos{fallar: true})

	res, err := svc.Enviar(domain.EnvioInterno, id, "")
	if err != nil {
		t.Fatalf("enviar: %v", err)
	}
	if res.Destinatario != "deposito@veraimplantes.com" {
		t.Fatalf("destinatario incorrecto: %q", res.Destinatario)
	}
	if len(bitacora.entradas) != 1 {
		t.Fatalf("esperaba 1 entrada de bitácora, hay %d", len(bitacora.entradas))
	}
}

func TestEnviarCliente(t *testing.T) {
	clientes := &clientesFalsos{porNombre: map[string]string{"ACME": "compras@acme.com"}}
	svc, bitacora, id := nuevoCorreoDePrueba(t, clientes)

	res, err := svc.Enviar(domain.EnvioCliente, id, "")
	if err != nil {
		t.Fatalf("enviar: %v", err)
	}
	if res.Destinatario != "compras@acme.com" {
		t.Fatalf("destinatario incorrecto: %q", res.Destinatario)
	}
	if res.Asunto != "Reporte Cirugía: ACME - Juan Pérez" {
		t.Fatalf("asunto incorrecto: %q", res.Asunto)
	}
	if !strings.HasPrefix(res.Mailto, "mailto:compras%40acme.com?") {
		t.Fatalf("mailto incorrecto: %q", res.Mailto)
	}
	if len(bitacora.entradas) != 1 {
		t.Fatalf("esperaba 1 entrada de bitácora, hay %d", len(bitacora.entradas))
	}
	entrada := bitacora.entradas[0]
	if entrada.Tipo != domain.EnvioCliente || entrada.Estado != domain.EstadoIntentado {
		t.Fatalf("entrada de bitácora incorrecta: %+v", entrada)
	}
}

func TestEnviarSufijos(t *testing.T) {
	casos := []struct {
		tipo         string
		destinatario string
		sufijo       string
	}{
		{domain.EnvioInterno, "deposito@veraimplantes.com", SufijoInterno},
		{domain.EnvioART, "autorizaciones@veraimplantes.com", SufijoART},
	}
	for _, c := range casos {
		svc, bitacora, id := nuevoCorreoDePrueba(t, &clientesFalsos{})
		res, err := svc.Enviar(c.tipo, id, "")
		if err != nil {
			t.Fatalf("%s: %v", c.tipo, err)
		}
		if res.Destinatario != c.destinatario {
			t.Fatalf("%s: destinatario %q", c.tipo, res.Destinatario)
		}
		if !strings.HasSuffix(res.Asunto, c.sufijo) {
			t.Fatalf("%s: el asunto %q no lleva el sufijo %q", c.tipo, res.Asunto, c.sufijo)
		}
		if len(bitacora.entradas) != 1 || bitacora.entradas[0].Asunto != res.Asunto {
			t.Fatalf("%s: la bitácora no registró el asunto final", c.tipo)
		}
	}
}

func TestEnviarTipoInvalido(t *testing.T) {
	svc, bitacora, id := nuevoCorreoDePrueba(t, &clientesFalsos{})
	if _, err := svc.Enviar("fax", id, ""); !errors.Is(err, ErrTipoEnvioInvalido) {
		t.Fatalf("esperaba ErrTipoEnvioInvalido, obtuve %v", err)
	}
	if len(bitacora.entradas) != 0 {
		t.Fatal("un tipo inválido no debe dejar bitácora")
	}
}

// Si la bitácora no se puede escribir, el despacho se aborta entero:
// registrar el intento va antes que entregar.
func TestEnviarAbortaSiBitacoraFalla(t *testing.T) {
	svc, bitacora, id := nuevoCorreoDePrueba(t, &clientesFalsos{})
	bitacora.fallar = true

	if _, err := svc.Enviar(domain.EnvioInterno, id, ""); err == nil {
		t.Fatal("esperaba error cuando la bitácora falla")
	}
}

func TestEnviarReporteInexistente(t *testing.T) {
	svc, _, _ := nuevoCorreoDePrueba(t, &clientesFalsos{})
	if _, err := svc.Enviar(domain.EnvioInterno, "no-existe", ""); !errors.Is(err, ErrReporteNoEncontrado) {
		t.Fatalf("esperaba ErrReporteNoEncontrado, obtuve %v", err)
	}
}
