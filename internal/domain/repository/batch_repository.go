package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// BatchRepository define el puerto de persistencia para lotes de compra.
// Los lotes son inmutables: no hay Update ni Delete.
type BatchRepository interface {
	Create(batch *entity.InventoryBatch) error
	GetByID(id string) (*entity.InventoryBatch, error)
	ListByVendor(vendorID string, limit, offset int) ([]*entity.InventoryBatch, error)
}
