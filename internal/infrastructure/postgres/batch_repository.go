package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = "id, vendor_id, transaction_date, notes, created_at, created_by"

// Create persiste un lote de compra (inmutable después).
func (r *BatchRepo) Create(b *entity.InventoryBatch) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO inventory_batches (id, vendor_id, transaction_date, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.VendorID, b.TransactionDate, b.Notes, b.CreatedAt, nullable(b.CreatedBy),
	)
	if err != nil {
		return wrapDB("create batch", err)
	}
	return nil
}

// GetByID obtiene un lote por ID. Devuelve nil si no existe.
func (r *BatchRepo) GetByID(id string) (*entity.InventoryBatch, error) {
	query := "SELECT " + batchColumns + " FROM inventory_batches WHERE id = $1"
	b, err := scanBatch(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDB("get batch", err)
	}
	return b, nil
}

// ListByVendor lista lotes de un proveedor, más recientes primero.
func (r *BatchRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.InventoryBatch, error) {
	query := "SELECT " + batchColumns + ` FROM inventory_batches
		WHERE vendor_id = $1 ORDER BY transaction_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, vendorID, limit, offset)
	if err != nil {
		return nil, wrapDB("list batches", err)
	}
	defer rows.Close()
	var list []*entity.InventoryBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, wrapDB("scan batch", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func scanBatch(row pgx.Row) (*entity.InventoryBatch, error) {
	var b entity.InventoryBatch
	var createdBy *string
	err := row.Scan(&b.ID, &b.VendorID, &b.TransactionDate, &b.Notes, &b.CreatedAt, &createdBy)
	if err != nil {
		return nil, err
	}
	b.CreatedBy = deref(createdBy)
	return &b, nil
}
