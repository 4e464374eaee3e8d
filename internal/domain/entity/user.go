package entity

import (
	"fmt"
	"time"
)

// Role es el rol de un usuario como variante cerrada: el string persistido se
// valida en el borde con ParseRole en lugar de confiarse tal cual.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// ParseRole valida un rol persistido o recibido por la API.
// Cualquier valor fuera de las tres variantes se rechaza.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

func (r Role) String() string { return string(r) }

// User representa un usuario del sistema (actor de las operaciones del motor).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         Role
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
