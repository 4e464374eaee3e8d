package batch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-ledger/internal/application/audit"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// OpenBatchUseCase abre lotes de compra: puro contexto de agrupación para las
// entradas purchase de un mismo evento de intake. Sin lógica de recomputación.
type OpenBatchUseCase struct {
	batchRepo  repository.BatchRepository
	vendorRepo repository.VendorRepository
	auditor    *audit.Auditor
}

// NewOpenBatchUseCase construye el caso de uso.
func NewOpenBatchUseCase(batchRepo repository.BatchRepository, vendorRepo repository.VendorRepository, auditor *audit.Auditor) *OpenBatchUseCase {
	return &OpenBatchUseCase{batchRepo: batchRepo, vendorRepo: vendorRepo, auditor: auditor}
}

// OpenResult lote creado más el indicador de auditoría degradada.
type OpenResult struct {
	Batch         *entity.InventoryBatch
	AuditDegraded bool
}

// Open crea el lote. Solo falla por referencia de proveedor inválida.
func (uc *OpenBatchUseCase) Open(ctx context.Context, actorID, vendorID string, txnDate time.Time, notes string) (*OpenResult, error) {
	vendor, err := uc.vendorRepo.GetByID(vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.NotFound("vendor", "vendor_id", vendorID)
	}
	if !vendor.Active {
		return nil, domain.InvalidState("vendor", "active", "proveedor deshabilitado")
	}
	if txnDate.IsZero() {
		txnDate = time.Now()
	}
	b := &entity.InventoryBatch{
		ID:              uuid.New().String(),
		VendorID:        vendorID,
		TransactionDate: txnDate,
		Notes:           notes,
		CreatedAt:       time.Now(),
		CreatedBy:       actorID,
	}
	if err := uc.batchRepo.Create(b); err != nil {
		return nil, err
	}
	ok := uc.auditor.Record(actorID, "batch.open", "batch", b.ID, map[string]any{
		"vendor_id":        vendorID,
		"transaction_date": txnDate.Format("2006-01-02"),
	})
	return &OpenResult{Batch: b, AuditDegraded: !ok}, nil
}

// GetByID obtiene un lote; NotFound clasificado si no existe.
func (uc *OpenBatchUseCase) GetByID(ctx context.Context, id string) (*entity.InventoryBatch, error) {
	b, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.NotFound("batch", "id", id)
	}
	return b, nil
}
