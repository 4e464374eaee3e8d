package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppendTransactionRequest body para POST /api/transactions.
// La cantidad lleva signo según el tipo: positiva entra, negativa sale.
type AppendTransactionRequest struct {
	Type          string           `json:"type"`
	ItemID        string           `json:"item_id"`
	VendorID      string           `json:"vendor_id,omitempty"`
	BatchID       string           `json:"batch_id,omitempty"`
	RelatedTxnID  string           `json:"related_txn_id,omitempty"`
	Quantity      decimal.Decimal  `json:"quantity"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	Shipping      decimal.Decimal  `json:"shipping"`
	Timestamp     *time.Time       `json:"timestamp,omitempty"`
	RefundAmount  *decimal.Decimal `json:"refund_amount,omitempty"`
	RestockingFee *decimal.Decimal `json:"restocking_fee,omitempty"`
}

// CorrectTransactionRequest body para POST /api/transactions/:id/corrections.
// Los campos opcionales heredan de la transacción original.
type CorrectTransactionRequest struct {
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Shipping  decimal.Decimal `json:"shipping"`
	VendorID  string          `json:"vendor_id,omitempty"`
	BatchID   string          `json:"batch_id,omitempty"`
	Reason    string          `json:"reason"`
}

// TransactionResponse salida de una entrada del ledger.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Timestamp    time.Time       `json:"timestamp"`
	VendorID     string          `json:"vendor_id,omitempty"`
	BatchID      string          `json:"batch_id,omitempty"`
	ItemID       string          `json:"item_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Shipping     decimal.Decimal `json:"shipping"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	RelatedTxnID string          `json:"related_txn_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	CreatedBy    string          `json:"created_by"`
}

// SnapshotResponse salida de un snapshot de valoración.
type SnapshotResponse struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"item_id"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	MovingAvgCost  decimal.Decimal `json:"moving_avg_cost"`
	TotalValue     decimal.Decimal `json:"total_value"`
	SnapshotTs     time.Time       `json:"snapshot_ts"`
}

// AppendTransactionResponse entrada creada más el snapshot resultante.
type AppendTransactionResponse struct {
	Transaction   TransactionResponse `json:"transaction"`
	Snapshot      SnapshotResponse    `json:"snapshot"`
	AuditDegraded bool                `json:"audit_degraded,omitempty"`
}

// CorrectTransactionResponse resultado de una corrección.
type CorrectTransactionResponse struct {
	Reversal      TransactionResponse `json:"reversal"`
	Corrected     TransactionResponse `json:"corrected"`
	CorrectionID  string              `json:"correction_id"`
	Reason        string              `json:"reason"`
	Snapshot      SnapshotResponse    `json:"snapshot"`
	AuditDegraded bool                `json:"audit_degraded,omitempty"`
}
