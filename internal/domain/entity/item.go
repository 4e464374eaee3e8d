package entity

import "time"

// Item es un registro de catálogo que el motor lee pero no administra.
// Identidad inmutable; nunca se borra, solo se deshabilita (soft-disable).
type Item struct {
	ID        string
	Name      string
	ItemType  string
	Category  string
	Color     string
	Size      string
	Material  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
