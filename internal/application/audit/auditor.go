package audit

import (
	"time"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/Inventario-ledger/pkg/logger"
)

// Auditor registra una fila de auditoría por cada llamada mutante del motor.
// Best-effort: si la persistencia de auditoría falla, la operación primaria NO
// falla; se reporta éxito degradado y el fallo queda en el log estructurado.
type Auditor struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewAuditor construye el auditor.
func NewAuditor(repo repository.AuditRepository, log *logger.Logger) *Auditor {
	return &Auditor{repo: repo, log: log}
}

// Record persiste la fila de auditoría. Devuelve false si no pudo persistirse
// (éxito degradado para el caller; el fallo nunca se pierde en silencio).
func (a *Auditor) Record(actorID, action, entityType, entityID string, details map[string]any) bool {
	entry := &entity.AuditLogEntry{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  time.Now(),
	}
	if err := a.repo.Create(entry); err != nil {
		a.log.AuditFailure(err, actorID, action, entityType, entityID)
		return false
	}
	return true
}

// ListByEntity lista las filas de auditoría de una entidad, más reciente primero.
func (a *Auditor) ListByEntity(entityType, entityID string, limit, offset int) ([]*entity.AuditLogEntry, error) {
	return a.repo.ListByEntity(entityType, entityID, limit, offset)
}
