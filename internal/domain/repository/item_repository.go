package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// ItemRepository define el puerto de persistencia para ítems del catálogo.
// GetForUpdate bloquea la fila del ítem: es el lock de intención exclusivo que
// serializa todos los folds de valoración de ese ítem.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetForUpdate(id string) (*entity.Item, error)
	List(limit, offset int) ([]*entity.Item, error)
	SetActive(id string, active bool) error
}
