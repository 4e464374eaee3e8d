package entity

import "time"

// InventoryBatch agrupa las transacciones de un mismo evento de compra
// (proveedor + fecha). Inmutable después de creado.
type InventoryBatch struct {
	ID              string
	VendorID        string
	TransactionDate time.Time
	Notes           string
	CreatedAt       time.Time
	CreatedBy       string
}
