package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-ledger/internal/application/audit"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// CorrectionDraft valores de reemplazo aportados por el caller para la entrada
// corregida. El ítem siempre es el de la transacción original.
type CorrectionDraft struct {
	ActorID   string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Shipping  decimal.Decimal
	VendorID  string // "" = heredar de la original
	BatchID   string // "" = heredar de la original
}

// CorrectResult resultado de una corrección exitosa: las dos entradas nuevas,
// el registro que las enlaza y el snapshot final del ítem.
type CorrectResult struct {
	Reversal      *entity.Transaction
	Corrected     *entity.Transaction
	Correction    *entity.Correction
	Snapshot      *entity.MacSnapshot
	AuditDegraded bool
}

// CorrectUseCase convierte "corregir la transacción T" en entradas
// compensatorias seguras para el ledger: un reversal con cantidad negada y la
// entrada corregida, más el registro Correction que enlaza las tres
// identidades. La original jamás se muta; las tres escrituras son una unidad
// atómica — cualquier fallo revierte todo y deja el estado previo intacto.
type CorrectUseCase struct {
	txRunner   TxRunner
	vendorRepo repository.VendorRepository
	batchRepo  repository.BatchRepository
	auditor    *audit.Auditor
	policy     Policy
}

// NewCorrectUseCase construye el caso de uso.
func NewCorrectUseCase(
	txRunner TxRunner,
	vendorRepo repository.VendorRepository,
	batchRepo repository.BatchRepository,
	auditor *audit.Auditor,
	policy Policy,
) *CorrectUseCase {
	return &CorrectUseCase{
		txRunner:   txRunner,
		vendorRepo: vendorRepo,
		batchRepo:  batchRepo,
		auditor:    auditor,
		policy:     policy,
	}
}

// Correct aplica la corrección sobre originalTxnID dentro de una sola
// transacción serializada por ítem. Falla NotFound si la original no existe e
// InvalidState si la original es un reversal (se corrige la entrada corregida,
// preservando la cadena trazable).
func (uc *CorrectUseCase) Correct(ctx context.Context, originalTxnID string, in CorrectionDraft, reason string) (*CorrectResult, error) {
	if reason == "" {
		return nil, domain.PolicyViolation("correction", "reason", "el motivo es obligatorio")
	}
	if in.Quantity.IsZero() {
		return nil, domain.PolicyViolation("correction", "quantity", "la cantidad corregida no puede ser cero")
	}
	if in.VendorID != "" {
		vendor, err := uc.vendorRepo.GetByID(in.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.NotFound("vendor", "vendor_id", in.VendorID)
		}
	}
	if in.BatchID != "" {
		batch, err := uc.batchRepo.GetByID(in.BatchID)
		if err != nil {
			return nil, err
		}
		if batch == nil {
			return nil, domain.NotFound("batch", "batch_id", in.BatchID)
		}
	}

	var res CorrectResult
	err := withRetry(ctx, uc.policy, func() error {
		return uc.txRunner.Run(ctx, func(
			itemRepo repository.ItemRepository,
			txnRepo repository.TransactionRepository,
			snapRepo repository.SnapshotRepository,
			returnRepo repository.ReturnRepository,
			corrRepo repository.CorrectionRepository,
		) error {
			orig, err := txnRepo.GetByID(originalTxnID)
			if err != nil {
				return err
			}
			if orig == nil {
				return domain.NotFound("transaction", "original_txn_id", originalTxnID)
			}
			isReversal, err := corrRepo.IsReversal(originalTxnID)
			if err != nil {
				return err
			}
			if isReversal {
				return domain.InvalidState("transaction", "original_txn_id",
					"un reversal no se corrige directamente; corregir la entrada corregida")
			}

			// 1) Reversal: cantidad negada, mismo precio/envío, mismo ítem.
			revDraft := TransactionDraft{
				ActorID:      in.ActorID,
				Type:         entity.TxnTypeCorrection,
				ItemID:       orig.ItemID,
				VendorID:     orig.VendorID,
				BatchID:      orig.BatchID,
				RelatedTxnID: orig.ID,
				Quantity:     orig.Quantity.Neg(),
				UnitPrice:    orig.UnitPrice,
				Shipping:     orig.Shipping,
			}
			reversal, _, err := appendEntry(itemRepo, txnRepo, snapRepo, returnRepo, &revDraft, uc.policy)
			if err != nil {
				return err
			}

			// 2) Entrada corregida con los valores de reemplazo del caller.
			corrVendor, corrBatch := in.VendorID, in.BatchID
			if corrVendor == "" {
				corrVendor = orig.VendorID
			}
			if corrBatch == "" {
				corrBatch = orig.BatchID
			}
			corrDraft := TransactionDraft{
				ActorID:      in.ActorID,
				Type:         entity.TxnTypeCorrection,
				ItemID:       orig.ItemID,
				VendorID:     corrVendor,
				BatchID:      corrBatch,
				RelatedTxnID: orig.ID,
				Quantity:     in.Quantity,
				UnitPrice:    in.UnitPrice,
				Shipping:     in.Shipping,
			}
			corrected, snap, err := appendEntry(itemRepo, txnRepo, snapRepo, returnRepo, &corrDraft, uc.policy)
			if err != nil {
				return err
			}

			// 3) Registro que enlaza las tres identidades más el motivo.
			correction := &entity.Correction{
				ID:             uuid.New().String(),
				OriginalTxnID:  orig.ID,
				ReversalTxnID:  reversal.ID,
				CorrectedTxnID: corrected.ID,
				Reason:         reason,
				CreatedAt:      time.Now(),
				CreatedBy:      in.ActorID,
			}
			if err := corrRepo.Create(correction); err != nil {
				return err
			}

			res = CorrectResult{
				Reversal:   reversal,
				Corrected:  corrected,
				Correction: correction,
				Snapshot:   snap,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	ok := uc.auditor.Record(in.ActorID, "ledger.correct", "transaction", originalTxnID, map[string]any{
		"reversal_txn_id":  res.Reversal.ID,
		"corrected_txn_id": res.Corrected.ID,
		"reason":           reason,
	})
	res.AuditDegraded = !ok
	return &res, nil
}
