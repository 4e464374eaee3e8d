package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// SnapshotRepository define el puerto de persistencia del historial de
// valoración. Append-only: nunca se sobreescribe un snapshot anterior.
type SnapshotRepository interface {
	Create(snapshot *entity.MacSnapshot) error
	// GetCurrent devuelve el snapshot de mayor secuencia para el ítem, o nil
	// si el ítem aún no tiene historial.
	GetCurrent(itemID string) (*entity.MacSnapshot, error)
	ListByItem(itemID string, limit, offset int) ([]*entity.MacSnapshot, error)
}
