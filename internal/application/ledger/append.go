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
	"github.com/jhoicas/Inventario-ledger/internal/domain/valuation"
)

// TransactionDraft entrada para Append: una transacción todavía sin identidad
// ni costo total. Cantidad con signo según el tipo; para devoluciones,
// RelatedTxnID apunta a la compra original y Return lleva el detalle comercial.
type TransactionDraft struct {
	ActorID      string
	Type         string
	ItemID       string
	VendorID     string // opcional
	BatchID      string // opcional
	RelatedTxnID string // obligatorio para return; interno para correction
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	Shipping     decimal.Decimal
	Timestamp    time.Time    // cero = ahora
	Return       *ReturnInput // solo para type return
}

// ReturnInput detalle comercial de una devolución.
type ReturnInput struct {
	RefundAmount  decimal.Decimal
	RestockingFee decimal.Decimal
}

// AppendResult resultado de un Append exitoso. AuditDegraded indica que la
// fila de auditoría no pudo persistirse (la operación primaria sí aterrizó).
type AppendResult struct {
	Transaction   *entity.Transaction
	Snapshot      *entity.MacSnapshot
	AuditDegraded bool
}

// AppendUseCase agrega entradas al libro mayor de forma transaccional:
// valida, bloquea la fila del ítem (SELECT FOR UPDATE), hace el fold MAC,
// persiste entrada + snapshot y audita. Nunca hay commit parcial.
type AppendUseCase struct {
	txRunner   TxRunner
	vendorRepo repository.VendorRepository
	batchRepo  repository.BatchRepository
	auditor    *audit.Auditor
	policy     Policy
}

// NewAppendUseCase construye el caso de uso.
func NewAppendUseCase(
	txRunner TxRunner,
	vendorRepo repository.VendorRepository,
	batchRepo repository.BatchRepository,
	auditor *audit.Auditor,
	policy Policy,
) *AppendUseCase {
	return &AppendUseCase{
		txRunner:   txRunner,
		vendorRepo: vendorRepo,
		batchRepo:  batchRepo,
		auditor:    auditor,
		policy:     policy,
	}
}

// validateDraft valida forma y política de signo antes de cualquier escritura.
func validateDraft(d *TransactionDraft) error {
	if !entity.ValidTxnType(d.Type) {
		return domain.PolicyViolation("transaction", "type", "tipo de transacción desconocido: "+d.Type)
	}
	if d.ItemID == "" {
		return domain.PolicyViolation("transaction", "item_id", "toda entrada del ledger afecta un ítem")
	}
	if d.Quantity.IsZero() {
		return domain.PolicyViolation("transaction", "quantity", "la cantidad no puede ser cero")
	}
	if d.UnitPrice.IsNegative() {
		return domain.PolicyViolation("transaction", "unit_price", "el precio unitario no puede ser negativo")
	}
	if d.Shipping.IsNegative() {
		return domain.PolicyViolation("transaction", "shipping", "el envío no puede ser negativo")
	}
	// Política de signo por tipo: compra entra, devolución/merma/daño/pérdida
	// salen, traslado va en cualquier dirección, corrección la arma el motor.
	switch d.Type {
	case entity.TxnTypePurchase:
		if !d.Quantity.GreaterThan(decimal.Zero) {
			return domain.PolicyViolation("transaction", "quantity", "una compra requiere cantidad positiva")
		}
	case entity.TxnTypeReturn, entity.TxnTypeWaste, entity.TxnTypeDamage, entity.TxnTypeLoss:
		if !d.Quantity.LessThan(decimal.Zero) {
			return domain.PolicyViolation("transaction", "quantity", d.Type+" requiere cantidad negativa")
		}
	}
	if d.Type == entity.TxnTypeReturn && d.RelatedTxnID == "" {
		return domain.PolicyViolation("transaction", "related_txn_id", "obligatorio para devoluciones")
	}
	return nil
}

// checkRefs valida referencias de catálogo (fuera de la tx: lecturas read-mostly).
func (uc *AppendUseCase) checkRefs(d *TransactionDraft) error {
	if d.VendorID != "" {
		vendor, err := uc.vendorRepo.GetByID(d.VendorID)
		if err != nil {
			return err
		}
		if vendor == nil {
			return domain.NotFound("vendor", "vendor_id", d.VendorID)
		}
		if !vendor.Active && (d.Type == entity.TxnTypePurchase || d.Type == entity.TxnTypeReturn) {
			return domain.InvalidState("vendor", "active", "proveedor deshabilitado")
		}
	}
	if d.BatchID != "" {
		batch, err := uc.batchRepo.GetByID(d.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.NotFound("batch", "batch_id", d.BatchID)
		}
	}
	return nil
}

// Append valida el draft, ejecuta entrada+fold+snapshot en una sola
// transacción serializada por ítem, y audita el resultado (best-effort).
// Ante ConcurrencyConflict reintenta con backoff acotado.
func (uc *AppendUseCase) Append(ctx context.Context, draft TransactionDraft) (*AppendResult, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	if err := uc.checkRefs(&draft); err != nil {
		return nil, err
	}

	var txn *entity.Transaction
	var snap *entity.MacSnapshot
	err := withRetry(ctx, uc.policy, func() error {
		return uc.txRunner.Run(ctx, func(
			itemRepo repository.ItemRepository,
			txnRepo repository.TransactionRepository,
			snapRepo repository.SnapshotRepository,
			returnRepo repository.ReturnRepository,
			_ repository.CorrectionRepository,
		) error {
			var err error
			txn, snap, err = appendEntry(itemRepo, txnRepo, snapRepo, returnRepo, &draft, uc.policy)
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	ok := uc.auditor.Record(draft.ActorID, "ledger.append", "transaction", txn.ID, map[string]any{
		"type":        txn.Type,
		"item_id":     txn.ItemID,
		"quantity":    txn.Quantity.String(),
		"mac":         snap.MovingAvgCost.String(),
		"qty_on_hand": snap.QuantityOnHand.String(),
	})
	return &AppendResult{Transaction: txn, Snapshot: snap, AuditDegraded: !ok}, nil
}

// appendEntry es el paso interno compartido por Append y Correct: con la tx ya
// abierta, bloquea la fila del ítem, valida referencias dependientes del
// estado, hace el fold MAC y persiste entrada + snapshot (+ detalle de
// devolución). El lock del ítem se sostiene hasta el commit del caller.
func appendEntry(
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
	snapRepo repository.SnapshotRepository,
	returnRepo repository.ReturnRepository,
	d *TransactionDraft,
	policy Policy,
) (*entity.Transaction, *entity.MacSnapshot, error) {
	if err := validateDraft(d); err != nil {
		return nil, nil, err
	}

	// Lock de intención exclusivo por ítem: serializa el read-compute-write
	// del fold frente a escritores concurrentes del mismo ítem.
	item, err := itemRepo.GetForUpdate(d.ItemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, domain.NotFound("item", "item_id", d.ItemID)
	}
	if !item.Active {
		return nil, nil, domain.InvalidState("item", "active", "ítem deshabilitado")
	}

	if d.RelatedTxnID != "" {
		if err := checkRelated(txnRepo, returnRepo, d); err != nil {
			return nil, nil, err
		}
	}

	// Estado actual de valoración (bajo el lock del ítem).
	head, err := snapRepo.GetCurrent(d.ItemID)
	if err != nil {
		return nil, nil, err
	}
	qty0, mac0 := decimal.Zero, decimal.Zero
	if head != nil {
		qty0, mac0 = head.QuantityOnHand, head.MovingAvgCost
	}

	qty1, mac1 := valuation.Fold(qty0, mac0, d.Quantity, d.UnitPrice)
	if qty1.IsNegative() && !policy.AllowNegativeStock {
		return nil, nil, domain.PolicyViolation("snapshot", "quantity_on_hand",
			"la salida dejaría el stock en "+qty1.String())
	}

	now := time.Now()
	ts := d.Timestamp
	if ts.IsZero() {
		ts = now
	}
	txn := &entity.Transaction{
		ID:           uuid.New().String(),
		Type:         d.Type,
		Timestamp:    ts,
		VendorID:     d.VendorID,
		BatchID:      d.BatchID,
		ItemID:       d.ItemID,
		ItemType:     item.ItemType,
		Category:     item.Category,
		Color:        item.Color,
		Size:         item.Size,
		Material:     item.Material,
		Quantity:     d.Quantity,
		UnitPrice:    d.UnitPrice,
		Shipping:     d.Shipping,
		TotalCost:    d.Quantity.Mul(d.UnitPrice).Add(d.Shipping),
		RelatedTxnID: d.RelatedTxnID,
		CreatedAt:    now,
		CreatedBy:    d.ActorID,
	}
	if err := txnRepo.Create(txn); err != nil {
		return nil, nil, err
	}

	snap := &entity.MacSnapshot{
		ID:             uuid.New().String(),
		ItemID:         d.ItemID,
		QuantityOnHand: qty1,
		MovingAvgCost:  mac1,
		TotalValue:     valuation.TotalValue(qty1, mac1),
		SnapshotTs:     now,
		CreatedBy:      d.ActorID,
	}
	if err := snapRepo.Create(snap); err != nil {
		return nil, nil, err
	}

	if d.Type == entity.TxnTypeReturn {
		ret := &entity.ReturnDetail{
			ID:               uuid.New().String(),
			TransactionID:    txn.ID,
			ReturnedQuantity: d.Quantity.Neg(),
			CreatedAt:        now,
		}
		if d.Return != nil {
			ret.RefundAmount = d.Return.RefundAmount
			ret.RestockingFee = d.Return.RestockingFee
		}
		if err := returnRepo.Create(ret); err != nil {
			return nil, nil, err
		}
	}
	return txn, snap, nil
}

// checkRelated valida que related_txn_id resuelva a una entrada existente del
// mismo ítem; para devoluciones, además, que el origen sea una compra y que lo
// devuelto no exceda lo retornable restante.
func checkRelated(
	txnRepo repository.TransactionRepository,
	returnRepo repository.ReturnRepository,
	d *TransactionDraft,
) error {
	orig, err := txnRepo.GetByID(d.RelatedTxnID)
	if err != nil {
		return err
	}
	if orig == nil {
		return domain.NotFound("transaction", "related_txn_id", d.RelatedTxnID)
	}
	if orig.ItemID != d.ItemID {
		return domain.InvalidState("transaction", "related_txn_id", "la transacción origen es de otro ítem")
	}
	if d.Type == entity.TxnTypeReturn {
		if orig.Type != entity.TxnTypePurchase {
			return domain.InvalidState("transaction", "related_txn_id", "solo se devuelve contra una compra")
		}
		returned, err := returnRepo.SumReturnedByOrigin(orig.ID)
		if err != nil {
			return err
		}
		remaining := orig.Quantity.Sub(returned)
		if d.Quantity.Neg().GreaterThan(remaining) {
			return domain.InvalidState("return", "returned_quantity",
				"excede lo retornable restante ("+remaining.String()+")")
		}
	}
	return nil
}
