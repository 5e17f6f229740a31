package handler

// ErrorResponse — formato estándar de error de la API
type ErrorResponse struct {
	Error   string `json:"error"`             // Mensaje de error
	Details string `json:"details,omitempty"` // Detalle adicional (opcional)
}

// ValidacionResponse — errores de validación por campo del formulario
type ValidacionResponse struct {
	Error   string            `json:"error"`
	Errores map[string]string `json:"errores"` // campo → mensaje
}
