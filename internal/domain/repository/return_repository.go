package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// ReturnRepository define el puerto de persistencia para detalles de devolución.
type ReturnRepository interface {
	Create(ret *entity.ReturnDetail) error
	GetByTransactionID(txnID string) (*entity.ReturnDetail, error)
	// SumReturnedByOrigin suma las cantidades ya devueltas contra una compra
	// original (vía related_txn_id de las entradas de tipo return).
	SumReturnedByOrigin(originalTxnID string) (decimal.Decimal, error)
}
