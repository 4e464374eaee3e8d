package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// TransactionRepository define el puerto de persistencia del libro mayor.
// Solo Create y lecturas: el ledger es append-only por contrato.
type TransactionRepository interface {
	Create(txn *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	ListByItem(itemID string, limit, offset int) ([]*entity.Transaction, error)
	ListByBatch(batchID string, limit, offset int) ([]*entity.Transaction, error)
}
