package query

import (
	"errors"
	"fmt"
)

// ---------- Errores del motor de consultas ----------

var (
	ErrDuplicateMapping = errors.New("duplicate field mapping")
	ErrUnknownMapping   = errors.New("unknown field mapping")
	ErrUnknownField     = errors.New("unknown field")
)

// DuplicateMappingError se produce al registrar dos tablas para el mismo par de tipos.
// Es un error de arranque: nunca se recupera.
type DuplicateMappingError struct {
	Key MappingKey
}

func (e *DuplicateMappingError) Error() string {
	return fmt.Sprintf("field mapping already registered for %s", e.Key)
}

func (e *DuplicateMappingError) Is(target error) bool {
	return target == ErrDuplicateMapping
}

// UnknownMappingError indica que falta un registro estático para el par de tipos.
type UnknownMappingError struct {
	Key MappingKey
}

func (e *UnknownMappingError) Error() string {
	return fmt.Sprintf("no field mapping registered for %s", e.Key)
}

func (e *UnknownMappingError) Is(target error) bool {
	return target == ErrUnknownMapping
}

// UnknownFieldError es un error de validación de la petición: el cliente pidió
// un campo (orderBy o fields) que no existe.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}
