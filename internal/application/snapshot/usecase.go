package snapshot

import (
	"context"

	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// QueryUseCase lecturas sobre el historial de valoración.
type QueryUseCase struct {
	snapRepo repository.SnapshotRepository
	itemRepo repository.ItemRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(snapRepo repository.SnapshotRepository, itemRepo repository.ItemRepository) *QueryUseCase {
	return &QueryUseCase{snapRepo: snapRepo, itemRepo: itemRepo}
}

// CurrentMac devuelve el snapshot vigente del ítem: el de mayor secuencia
// (latest-per-key). Lectura pura: dos llamadas consecutivas sin escrituras
// intermedias devuelven valores idénticos.
func (uc *QueryUseCase) CurrentMac(ctx context.Context, itemID string) (*entity.MacSnapshot, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("item", "item_id", itemID)
	}
	snap, err := uc.snapRepo.GetCurrent(itemID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, domain.NotFound("snapshot", "item_id", "el ítem no tiene historial de valoración")
	}
	return snap, nil
}

// History lista el historial de valoración del ítem, más reciente primero
// (consultas point-in-time).
func (uc *QueryUseCase) History(ctx context.Context, itemID string, limit, offset int) ([]*entity.MacSnapshot, error) {
	return uc.snapRepo.ListByItem(itemID, limit, offset)
}
