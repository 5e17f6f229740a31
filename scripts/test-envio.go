package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// Prueba manual del flujo completo: guarda un reporte, pide la vista
// previa y despacha el envío interno.
// Uso: go run scripts/test-envio.go http://localhost:8080
func main() {
	base := "http://localhost:8080"
	if len(os.Args) > 1 {
		base = os.Args[1]
	}
	api := base + "/api/v1"

	reporte := map[string]any{
		"cliente":       "ACME S.A.",
		"paciente":      "Paciente de Prueba",
		"medico":        "Dr. Prueba",
		"lugar_cirugia": "Sanatorio de Prueba",
		"fecha_cirugia": "2026-09-01",
		"material":      "Tornillo 4mm\nPlaca recta",
	}

	fmt.Println("1. Guardando reporte...")
	guardado := postJSON(api+"/reportes", reporte)
	id, _ := guardado["id"].(string)
	if id == "" {
		log.Fatalf("el guardado no devolvió ID: %v", guardado)
	}
	fmt.Printf("   Guardado con ID %s\n", id)

	fmt.Println("2. Generando vista previa...")
	vista := postJSON(api+"/reportes/vista-previa", reporte)
	texto, _ := vista["texto"].(string)
	fmt.Printf("   Texto generado (%d caracteres)\n", len(texto))

	fmt.Println("3. Despachando envío interno...")
	envio := postJSON(api+"/reportes/"+id+"/envios", map[string]any{"tipo": "interno"})
	fmt.Printf("   Destinatario: %v\n", envio["destinatario"])
	fmt.Printf("   Asunto: %v\n", envio["asunto"])
	fmt.Printf("   Mailto: %v\n", envio["mailto"])

	fmt.Println("4. Consultando bitácora...")
	resp, err := http.Get(api + "/reportes/" + id + "/envios")
	if err != nil {
		log.Fatalf("bitácora: %v", err)
	}
	defer resp.Body.Close()
	cuerpo, _ := io.ReadAll(resp.Body)
	fmt.Printf("   %s\n", cuerpo)

	fmt.Println("\nListo.")
}

func postJSON(url string, payload any) map[string]any {
	cuerpo, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewReader(cuerpo))
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	datos, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		log.Fatalf("POST %s: %d %s", url, resp.StatusCode, datos)
	}
	var resultado map[string]any
	if err := json.Unmarshal(datos, &resultado); err != nil {
		log.Fatalf("respuesta inválida de %s: %v", url, err)
	}
	return resultado
}
