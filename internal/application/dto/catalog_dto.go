package dto

import "time"

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	ItemType string `json:"item_type"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Size     string `json:"size"`
	Material string `json:"material"`
}

// ItemResponse salida de un ítem de catálogo.
type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ItemType  string    `json:"item_type,omitempty"`
	Category  string    `json:"category,omitempty"`
	Color     string    `json:"color,omitempty"`
	Size      string    `json:"size,omitempty"`
	Material  string    `json:"material,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// AuditDegraded se marca en las mutaciones cuya fila de auditoría no pudo
	// persistirse; la mutación en sí fue exitosa.
	AuditDegraded bool `json:"audit_degraded,omitempty"`
}

// CreateVendorRequest body para POST /api/vendors.
type CreateVendorRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
}

// VendorResponse salida de un proveedor.
type VendorResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactName   string    `json:"contact_name,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	AuditDegraded bool      `json:"audit_degraded,omitempty"`
}

// OpenBatchRequest body para POST /api/batches.
type OpenBatchRequest struct {
	VendorID        string     `json:"vendor_id" validate:"required,uuid"`
	TransactionDate *time.Time `json:"transaction_date,omitempty"`
	Notes           string     `json:"notes"`
}

// BatchResponse salida de un lote de compra.
type BatchResponse struct {
	ID              string    `json:"id"`
	VendorID        string    `json:"vendor_id"`
	TransactionDate time.Time `json:"transaction_date"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	CreatedBy       string    `json:"created_by"`
}
