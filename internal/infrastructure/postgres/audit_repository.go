package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación sobre PostgreSQL (usable con pool o tx).
// Los details van como JSONB.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create persiste una fila de auditoría.
func (r *AuditRepo) Create(e *entity.AuditLogEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	payload, err := json.Marshal(details)
	if err != nil {
		return wrapDB("marshal audit details", err)
	}
	query := `
		INSERT INTO audit_log (actor_id, action, entity_type, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err = r.q.QueryRow(context.Background(), query,
		e.ActorID, e.Action, e.EntityType, e.EntityID, payload, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return wrapDB("create audit entry", err)
	}
	return nil
}

// ListByEntity lista auditoría de una entidad, más reciente primero.
func (r *AuditRepo) ListByEntity(entityType, entityID string, limit, offset int) ([]*entity.AuditLogEntry, error) {
	query := `
		SELECT id, actor_id, action, entity_type, entity_id, details, created_at
		FROM audit_log WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, entityType, entityID, limit, offset)
	if err != nil {
		return nil, wrapDB("list audit entries", err)
	}
	defer rows.Close()
	var list []*entity.AuditLogEntry
	for rows.Next() {
		var e entity.AuditLogEntry
		var payload []byte
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.EntityType, &e.EntityID, &payload, &e.CreatedAt); err != nil {
			return nil, wrapDB("scan audit entry", err)
		}
		if len(payload) > 0 {
			_ = json.Unmarshal(payload, &e.Details)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
