package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// VendorRepository define el puerto de persistencia para proveedores.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	List(limit, offset int) ([]*entity.Vendor, error)
	SetActive(id string, active bool) error
}
