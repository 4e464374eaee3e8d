package ledger

import (
	"context"

	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// QueryUseCase lecturas sobre el libro mayor (fuera de toda transacción de
// escritura; el ledger es append-only, las lecturas no necesitan locks).
type QueryUseCase struct {
	txnRepo  repository.TransactionRepository
	corrRepo repository.CorrectionRepository
}

// NewQueryUseCase construye el caso de uso de lectura.
func NewQueryUseCase(txnRepo repository.TransactionRepository, corrRepo repository.CorrectionRepository) *QueryUseCase {
	return &QueryUseCase{txnRepo: txnRepo, corrRepo: corrRepo}
}

// GetTransaction obtiene una entrada; NotFound clasificado si no existe.
func (uc *QueryUseCase) GetTransaction(ctx context.Context, id string) (*entity.Transaction, error) {
	txn, err := uc.txnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, domain.NotFound("transaction", "id", id)
	}
	return txn, nil
}

// ListByItem lista la historia del ítem, más reciente primero.
func (uc *QueryUseCase) ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.Transaction, error) {
	return uc.txnRepo.ListByItem(itemID, limit, offset)
}

// ListByBatch lista las entradas de un lote de compra.
func (uc *QueryUseCase) ListByBatch(ctx context.Context, batchID string, limit, offset int) ([]*entity.Transaction, error) {
	return uc.txnRepo.ListByBatch(batchID, limit, offset)
}

// ListCorrections lista la cadena de correcciones aplicadas sobre una entrada.
func (uc *QueryUseCase) ListCorrections(ctx context.Context, originalTxnID string) ([]*entity.Correction, error) {
	return uc.corrRepo.ListByOriginal(originalTxnID)
}
