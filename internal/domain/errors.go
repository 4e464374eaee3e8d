package domain

import (
	"errors"
	"fmt"
)

// Clases de error del motor (sin dependencias externas). Toda operación
// rechazada devuelve una de estas clases, nunca un fallo genérico.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidState        = errors.New("estado inválido para la operación")
	ErrPolicyViolation     = errors.New("violación de política de inventario")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia, reintentar")
	ErrPersistenceFailure  = errors.New("fallo de persistencia")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
)

// ClassifiedError envuelve una clase de error con la entidad y el campo que
// dispararon el rechazo. errors.Is(err, ErrXxx) sigue funcionando contra la clase.
type ClassifiedError struct {
	Kind   error  // una de las clases de arriba
	Entity string // item, vendor, transaction, batch, snapshot...
	Field  string // campo que disparó el rechazo (opcional)
	Detail string
}

func (e *ClassifiedError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s.%s: %s", e.Kind.Error(), e.Entity, e.Field, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind.Error(), e.Entity, e.Detail)
}

func (e *ClassifiedError) Unwrap() error { return e.Kind }

// NotFound construye un error NotFound clasificado.
func NotFound(entity, field, detail string) error {
	return &ClassifiedError{Kind: ErrNotFound, Entity: entity, Field: field, Detail: detail}
}

// InvalidState construye un error InvalidState clasificado (ítem/vendor
// deshabilitado, corregir un reversal, devolución que excede lo retornable...).
func InvalidState(entity, field, detail string) error {
	return &ClassifiedError{Kind: ErrInvalidState, Entity: entity, Field: field, Detail: detail}
}

// PolicyViolation construye un error PolicyViolation clasificado (signo de
// cantidad incompatible con el tipo, stock resultante negativo...).
func PolicyViolation(entity, field, detail string) error {
	return &ClassifiedError{Kind: ErrPolicyViolation, Entity: entity, Field: field, Detail: detail}
}

// Conflict construye un error ConcurrencyConflict clasificado. Es la única
// clase que el caller debe reintentar automáticamente con backoff.
func Conflict(entity, detail string) error {
	return &ClassifiedError{Kind: ErrConcurrencyConflict, Entity: entity, Detail: detail}
}

// Persistence construye un error PersistenceFailure clasificado; siempre fatal
// para la operación en curso, nunca aplicado parcialmente.
func Persistence(entity, detail string) error {
	return &ClassifiedError{Kind: ErrPersistenceFailure, Entity: entity, Detail: detail}
}
