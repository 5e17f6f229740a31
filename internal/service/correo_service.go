package service

import (
	"errors"
	"log"

	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/config"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/correo"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/domain"
	"github.com/VeraImplantesCristian/cirug-a-reporte/internal/report"
)

// Errores del servicio de correo.
var (
	ErrDestinatarioNoResuelto = errors.New("no se pudo resolver el destinatario del envío")
	ErrTipoEnvioInvalido      = errors.New("tipo de envío desconocido")
)

// Sufijos del asunto según el tipo de envío. El envío al cliente va sin
// sufijo.
const (
	SufijoInterno = " (INTERNO)"
	SufijoART     = " (AUTORIZACIÓN ART)"
)

// BitacoraEnvios — escritura de la bitácora de intentos.
type BitacoraEnvios interface {
	Crear(*domain.EnvioCorreo) error
	ListarPorReporte(reporteID string) ([]domain.EnvioCorreo, error)
}

// BuscadorClientes — resolución del email del cliente por razón social.
type BuscadorClientes interface {
	BuscarPorNombre(nombre string) (*domain.Cliente, error)
}

// LectorMensajes — acceso a las plantillas configuradas.
type LectorMensajes interface {
	Mapa() (map[string]string, error)
}

// TransporteDirecto — envío SMTP opcional; lo implementa correo.Mensajero.
type TransporteDirecto interface {
	Configurado() bool
	Enviar(destinatario, asunto, cuerpoHTML string, adjuntoPDF []byte) error
}

// ResultadoEnvio — lo que recibe la interfaz tras un despacho exitoso.
type ResultadoEnvio struct {
	Destinatario string `json:"destinatario"`
	Asunto       string `json:"asunto"`
	Mailto       string `json:"mailto"`
}

// CorreoService — despacho auditado de correos.
//
// El contrato es registrar la INTENCIÓN: la bitácora se escribe antes de
// entregar nada, porque la entrega termina en el cliente de correo del
// usuario y desde acá no se puede confirmar. Si el destinatario no se
// resuelve, no se escribe bitácora ni se entrega nada.
type CorreoService struct {
	reportes   AlmacenReportes
	clientes   BuscadorClientes
	mensajes   LectorMensajes
	bitacora   BitacoraEnvios
	transporte TransporteDirecto
	cfg        config.CorreoConfig
}

// NewCorreoService crea el servicio de despacho.
func NewCorreoService(
	reportes AlmacenReportes,
	clientes BuscadorClientes,
	mensajes LectorMensajes,
	bitacora BitacoraEnvios,
	transporte TransporteDirecto,
	cfg config.CorreoConfig,
) *CorreoService {
	return &CorreoService{
		reportes:   reportes,
		clientes:   clientes,
		mensajes:   mensajes,
		bitacora:   bitacora,
		transporte: transporte,
		cfg:        cfg,
	}
}

// Enviar despacha el reporte por correo según el tipo.
//
// Pasos, en orden: resolver destinatario (acá se corta si falla),
// armar el asunto con la plantilla configurada, registrar el intento en
// la bitácora y recién entonces entregar: se devuelve el enlace mailto
// y, si hay SMTP configurado, se dispara el envío directo sin esperar
// resultado.
//
// Si cuerpo llega vacío se genera el texto plano del reporte.
func (s *CorreoService) Enviar(tipo, reporteID, cuerpo string) (*ResultadoEnvio, error) {
	rep, err := s.reportes.GetByID(reporteID)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, ErrReporteNoEncontrado
	}

	// Email del cliente: obligatorio para el envío al cliente, variable
	// opcional de plantilla para los demás tipos. Para el cliente una
	// falla en la búsqueda es error de backend, no destinatario ausente;
	// para los demás tipos se sigue sin el email y se deja constancia.
	emailCliente := ""
	c, errCliente := s.clientes.BuscarPorNombre(rep.Cliente)
	if errCliente != nil && tipo == domain.EnvioCliente {
		return nil, errCliente
	}
	if errCliente != nil {
		log.Printf("no se pudo buscar el email del cliente %q: %v", rep.Cliente, errCliente)
	} else if c != nil {
		emailCliente = c.Email
	}

	var destinatario, sufijo string
	switch tipo {
	case domain.EnvioCliente:
		if emailCliente == "" {
			return nil, ErrDestinatarioNoResuelto
		}
		destinatario = emailCliente
	case domain.EnvioInterno:
		destinatario = s.cfg.DireccionInterna
		sufijo = SufijoInterno
	case domain.EnvioART:
		destinatario = s.cfg.DireccionART
		sufijo = SufijoART
	default:
		return nil, ErrTipoEnvioInvalido
	}
	if destinatario == "" {
		return nil, ErrDestinatarioNoResuelto
	}

	mensajes, err := s.mensajes.Mapa()
	if err != nil {
		return nil, err
	}

	plantillaAsunto := mensajes[report.ClaveAsuntoBase]
	if plantillaAsunto == "" {
		plantillaAsunto = report.DefectoAsuntoBase
	}
	asunto := report.Sustituir(plantillaAsunto, report.Variables(*rep, emailCliente)) + sufijo

	if cuerpo == "" {
		cuerpo = report.GenerarTextoPlano(*rep, mensajes, emailCliente)
	}

	// Bitácora antes de entregar: si esta escritura falla, no hay
	// entrega. Lo que se registra es el intento, nunca la entrega.
	entrada := &domain.EnvioCorreo{
		ReporteID:    reporteID,
		Tipo:         tipo,
		Destinatario: destinatario,
		Asunto:       asunto,
		Estado:       domain.EstadoIntentado,
	}
	if err := s.bitacora.Crear(entrada); err != nil {
		return nil, err
	}
	GlobalStats.IncrementarEnvios()

	// Envío directo opcional, sin esperar: el resultado real no cambia
	// el contrato y sólo se deja constancia en el log.
	if s.transporte != nil && s.transporte.Configurado() {
		go s.envioDirecto(tipo, destinatario, asunto, *rep, mensajes, emailCliente)
	}

	return &ResultadoEnvio{
		Destinatario: destinatario,
		Asunto:       asunto,
		Mailto:       correo.MailtoURI(destinatario, asunto, cuerpo),
	}, nil
}

// envioDirecto arma el HTML del reporte y lo despacha por SMTP.
// Los envíos a la ART llevan además el PDF como constancia adjunta.
func (s *CorreoService) envioDirecto(tipo, destinatario, asunto string, rep domain.Reporte, mensajes map[string]string, emailCliente string) {
	var adjunto []byte
	if tipo == domain.EnvioART {
		pdf, err := report.GenerarPDF(rep, mensajes, emailCliente)
		if err != nil {
			log.Printf("no se pudo generar el PDF adjunto: %v", err)
		} else {
			adjunto = pdf
		}
	}
	html := report.GenerarHTML(rep, mensajes, emailCliente)
	if err := s.transporte.Enviar(destinatario, asunto, html, adjunto); err != nil {
		log.Printf("envío directo a %s falló: %v", destinatario, err)
	}
}

// VistaPrevia genera ambos formatos del reporte sin persistir nada: el
// texto plano para pegar en el correo y el HTML con formato. Acepta el
// reporte tal como está en el formulario, guardado o no.
func (s *CorreoService) VistaPrevia(rep domain.Reporte) (texto, html string, err error) {
	mensajes, err := s.mensajes.Mapa()
	if err != nil {
		return "", "", err
	}
	emailCliente := s.emailCliente(rep.Cliente)
	return report.GenerarTextoPlano(rep, mensajes, emailCliente),
		report.GenerarHTML(rep, mensajes, emailCliente),
		nil
}

// emailCliente busca el email por razón social para usarlo como variable
// de plantilla. Acá el email es opcional: si la búsqueda falla se sigue
// sin él y sólo queda el registro en el log.
func (s *CorreoService) emailCliente(nombre string) string {
	c, err := s.clientes.BuscarPorNombre(nombre)
	if err != nil {
		log.Printf("no se pudo buscar el email del cliente %q: %v", nombre, err)
		return ""
	}
	if c == nil {
		return ""
	}
	return c.Email
}

// PDF genera el PDF de constancia de un reporte guardado.
func (s *CorreoService) PDF(reporteID string) ([]byte, error) {
	rep, err := s.reportes.GetByID(reporteID)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, ErrReporteNoEncontrado
	}
	mensajes, err := s.mensajes.Mapa()
	if err != nil {
		return nil, err
	}
	return report.GenerarPDF(*rep, mensajes, s.emailCliente(rep.Cliente))
}

// Bitacora devuelve los intentos de envío registrados para un reporte.
func (s *CorreoService) Bitacora(reporteID string) ([]domain.EnvioCorreo, error) {
	return s.bitacora.ListarPorReporte(reporteID)
}
