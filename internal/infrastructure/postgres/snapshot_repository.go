package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación del historial de valoración sobre PostgreSQL.
// Append-only: solo INSERT; el snapshot vigente se resuelve por orden.
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

const snapColumns = "id, seq, item_id, quantity_on_hand, moving_avg_cost, total_value, snapshot_ts, created_by"

// Create persiste un snapshot de valoración. La secuencia monótona la asigna
// la base (bigserial) y se devuelve sobre la entidad.
func (r *SnapshotRepo) Create(s *entity.MacSnapshot) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `
		INSERT INTO mac_snapshots (id, item_id, quantity_on_hand, moving_avg_cost, total_value, snapshot_ts, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq`
	err := r.q.QueryRow(context.Background(), query,
		s.ID, s.ItemID, s.QuantityOnHand, s.MovingAvgCost, s.TotalValue, s.SnapshotTs, nullable(s.CreatedBy),
	).Scan(&s.Seq)
	if err != nil {
		return wrapDB("create snapshot", err)
	}
	return nil
}

// GetCurrent devuelve el snapshot vigente del ítem: el de mayor seq (latest
// per-key sobre el índice (item_id, seq DESC)), o nil si no hay historial.
// snapshot_ts puede empatar dentro de una misma transacción; seq nunca.
func (r *SnapshotRepo) GetCurrent(itemID string) (*entity.MacSnapshot, error) {
	query := "SELECT " + snapColumns + ` FROM mac_snapshots
		WHERE item_id = $1 ORDER BY seq DESC LIMIT 1`
	s, err := scanSnapshot(r.q.QueryRow(context.Background(), query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDB("get current snapshot", err)
	}
	return s, nil
}

// ListByItem lista el historial de valoración de un ítem, más reciente primero.
func (r *SnapshotRepo) ListByItem(itemID string, limit, offset int) ([]*entity.MacSnapshot, error) {
	query := "SELECT " + snapColumns + ` FROM mac_snapshots
		WHERE item_id = $1 ORDER BY seq DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, wrapDB("list snapshots", err)
	}
	defer rows.Close()
	var list []*entity.MacSnapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, wrapDB("scan snapshot", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSnapshot(row pgx.Row) (*entity.MacSnapshot, error) {
	var s entity.MacSnapshot
	var createdBy *string
	err := row.Scan(&s.ID, &s.Seq, &s.ItemID, &s.QuantityOnHand, &s.MovingAvgCost, &s.TotalValue, &s.SnapshotTs, &createdBy)
	if err != nil {
		return nil, err
	}
	s.CreatedBy = deref(createdBy)
	return &s, nil
}
