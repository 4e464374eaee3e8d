package entity

import "time"

// AuditLogEntry es una fila de auditoría: quién hizo qué sobre qué entidad.
// Append-only, una fila por llamada mutante del motor.
type AuditLogEntry struct {
	ID         int64
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	Details    map[string]any
	CreatedAt  time.Time
}
