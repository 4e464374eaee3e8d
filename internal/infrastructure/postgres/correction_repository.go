package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.CorrectionRepository = (*CorrectionRepo)(nil)

// CorrectionRepo implementación sobre PostgreSQL (usable con pool o tx).
type CorrectionRepo struct {
	q Querier
}

// NewCorrectionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCorrectionRepository(q Querier) *CorrectionRepo {
	return &CorrectionRepo{q: q}
}

// Create persiste el registro que enlaza original, reversal y corregida.
func (r *CorrectionRepo) Create(c *entity.Correction) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO corrections (id, original_txn_id, reversal_txn_id, corrected_txn_id, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.OriginalTxnID, c.ReversalTxnID, c.CorrectedTxnID, c.Reason, c.CreatedAt, nullable(c.CreatedBy),
	)
	if err != nil {
		return wrapDB("create correction", err)
	}
	return nil
}

// IsReversal indica si la transacción figura como reversal de alguna corrección.
func (r *CorrectionRepo) IsReversal(txnID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		"SELECT EXISTS (SELECT 1 FROM corrections WHERE reversal_txn_id = $1)", txnID).Scan(&exists)
	if err != nil {
		return false, wrapDB("check reversal", err)
	}
	return exists, nil
}

// ListByOriginal lista las correcciones aplicadas sobre una transacción.
func (r *CorrectionRepo) ListByOriginal(originalTxnID string) ([]*entity.Correction, error) {
	query := `
		SELECT id, original_txn_id, reversal_txn_id, corrected_txn_id, reason, created_at, created_by
		FROM corrections WHERE original_txn_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, originalTxnID)
	if err != nil {
		return nil, wrapDB("list corrections", err)
	}
	defer rows.Close()
	var list []*entity.Correction
	for rows.Next() {
		var c entity.Correction
		var createdBy *string
		if err := rows.Scan(&c.ID, &c.OriginalTxnID, &c.ReversalTxnID, &c.CorrectedTxnID,
			&c.Reason, &c.CreatedAt, &createdBy); err != nil {
			return nil, wrapDB("scan correction", err)
		}
		c.CreatedBy = deref(createdBy)
		list = append(list, &c)
	}
	return list, rows.Err()
}
