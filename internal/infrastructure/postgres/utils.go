package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Inventario-ledger/internal/domain"
)

// Códigos SQLSTATE que el motor trata como conflicto de concurrencia:
// el caller debe reintentar con backoff.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03" // lock_timeout vencido en SELECT FOR UPDATE
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// wrapDB clasifica un error del driver en las clases de dominio:
// lock timeout / serialización / deadlock -> ConcurrencyConflict (reintentable);
// cancelación de contexto -> ConcurrencyConflict (timeout del caller);
// el resto -> PersistenceFailure.
func wrapDB(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeLockNotAvailable, codeSerializationFailure, codeDeadlockDetected:
			return domain.Conflict(op, pgErr.Message)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.Conflict(op, err.Error())
	}
	return domain.Persistence(op, fmt.Sprintf("%s: %v", op, err))
}
