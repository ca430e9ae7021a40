package dto

import "strings"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NormalizarTexto recorta espacios de un campo de texto requerido.
func NormalizarTexto(s string) string {
	return strings.TrimSpace(s)
}

// NormalizarOpcional recorta espacios de un campo de texto opcional y trata la
// cadena vacía como ausente (nil), nunca como "". Esta normalización se aplica
// idéntica en todas las entidades con campos opcionales de texto.
func NormalizarOpcional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
