package entity

import "time"

// Vendor es un proveedor referenciado por lotes y transacciones.
// Nunca se borra, solo se deshabilita.
type Vendor struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
