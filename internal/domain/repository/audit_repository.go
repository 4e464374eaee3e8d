package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// AuditRepository define el puerto de persistencia de auditoría.
type AuditRepository interface {
	Create(entry *entity.AuditLogEntry) error
	ListByEntity(entityType, entityID string, limit, offset int) ([]*entity.AuditLogEntry, error)
}
