package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

// ReturnRepo implementación sobre PostgreSQL (usable con pool o tx).
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

// Create persiste el detalle comercial de una devolución.
func (r *ReturnRepo) Create(ret *entity.ReturnDetail) error {
	if ret.ID == "" {
		ret.ID = uuid.New().String()
	}
	if ret.CreatedAt.IsZero() {
		ret.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO returns (id, transaction_id, returned_quantity, refund_amount, restocking_fee, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.TransactionID, ret.ReturnedQuantity, ret.RefundAmount, ret.RestockingFee, ret.CreatedAt,
	)
	if err != nil {
		return wrapDB("create return", err)
	}
	return nil
}

// GetByTransactionID obtiene el detalle enlazado a una entrada del ledger.
func (r *ReturnRepo) GetByTransactionID(txnID string) (*entity.ReturnDetail, error) {
	query := `
		SELECT id, transaction_id, returned_quantity, refund_amount, restocking_fee, created_at
		FROM returns WHERE transaction_id = $1`
	var ret entity.ReturnDetail
	err := r.q.QueryRow(context.Background(), query, txnID).Scan(
		&ret.ID, &ret.TransactionID, &ret.ReturnedQuantity, &ret.RefundAmount, &ret.RestockingFee, &ret.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDB("get return", err)
	}
	return &ret, nil
}

// SumReturnedByOrigin suma lo ya devuelto contra una compra original, vía el
// related_txn_id de las entradas de tipo return del libro mayor.
func (r *ReturnRepo) SumReturnedByOrigin(originalTxnID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(ret.returned_quantity), 0)
		FROM returns ret
		JOIN transactions t ON t.id = ret.transaction_id
		WHERE t.related_txn_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, originalTxnID).Scan(&sum); err != nil {
		return decimal.Zero, wrapDB("sum returned", err)
	}
	return sum, nil
}
