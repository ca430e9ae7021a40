package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado    = errors.New("recurso no encontrado")
	ErrConflicto       = errors.New("conflicto con el estado actual")
	ErrDuplicado       = errors.New("recurso duplicado")
	ErrEntradaInvalida = errors.New("entrada inválida")
)

// NoEncontrado construye el error NotFound canónico nombrando la entidad y el id.
// Es el único formato de "no existe" que ve el cliente; los casos de uso lo
// emiten desde su GetByID y el resto de operaciones lo reutilizan.
func NoEncontrado(entidad string, id int64) error {
	return fmt.Errorf("%w: el %s con el id %d no existe", ErrNoEncontrado, entidad, id)
}

// Conflicto construye un error de conflicto con mensaje legible.
func Conflicto(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflicto, fmt.Sprintf(format, args...))
}

// EntradaInvalida construye un error de validación con mensaje legible.
func EntradaInvalida(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrEntradaInvalida, fmt.Sprintf(format, args...))
}
