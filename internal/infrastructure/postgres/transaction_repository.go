package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del libro mayor sobre PostgreSQL.
// Solo INSERT y SELECT: las filas jamás se actualizan ni se borran.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const txnColumns = `id, type, ts, vendor_id, batch_id, item_id,
	item_type, category, color, size, material,
	quantity, unit_price, shipping, total_cost, related_txn_id, created_at, created_by`

// Create persiste una entrada del libro mayor.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, type, ts, vendor_id, batch_id, item_id,
			item_type, category, color, size, material,
			quantity, unit_price, shipping, total_cost, related_txn_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Type, t.Timestamp, nullable(t.VendorID), nullable(t.BatchID), nullable(t.ItemID),
		t.ItemType, t.Category, t.Color, t.Size, t.Material,
		t.Quantity, t.UnitPrice, t.Shipping, t.TotalCost,
		nullable(t.RelatedTxnID), t.CreatedAt, nullable(t.CreatedBy),
	)
	if err != nil {
		return wrapDB("create transaction", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID. Devuelve nil si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := "SELECT " + txnColumns + " FROM transactions WHERE id = $1"
	t, err := scanTxn(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDB("get transaction", err)
	}
	return t, nil
}

// ListByItem lista entradas de un ítem, más recientes primero.
func (r *TransactionRepo) ListByItem(itemID string, limit, offset int) ([]*entity.Transaction, error) {
	query := "SELECT " + txnColumns + " FROM transactions WHERE item_id = $1 ORDER BY ts DESC LIMIT $2 OFFSET $3"
	return r.list(query, itemID, limit, offset)
}

// ListByBatch lista entradas de un lote de compra.
func (r *TransactionRepo) ListByBatch(batchID string, limit, offset int) ([]*entity.Transaction, error) {
	query := "SELECT " + txnColumns + " FROM transactions WHERE batch_id = $1 ORDER BY ts DESC LIMIT $2 OFFSET $3"
	return r.list(query, batchID, limit, offset)
}

func (r *TransactionRepo) list(query string, key string, limit, offset int) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, key, limit, offset)
	if err != nil {
		return nil, wrapDB("list transactions", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTxn(rows)
		if err != nil {
			return nil, wrapDB("scan transaction", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTxn(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	var vendorID, batchID, itemID, relatedID, createdBy *string
	err := row.Scan(
		&t.ID, &t.Type, &t.Timestamp, &vendorID, &batchID, &itemID,
		&t.ItemType, &t.Category, &t.Color, &t.Size, &t.Material,
		&t.Quantity, &t.UnitPrice, &t.Shipping, &t.TotalCost,
		&relatedID, &t.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}
	t.VendorID = deref(vendorID)
	t.BatchID = deref(batchID)
	t.ItemID = deref(itemID)
	t.RelatedTxnID = deref(relatedID)
	t.CreatedBy = deref(createdBy)
	return &t, nil
}

// nullable convierte "" en NULL para columnas UUID opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
