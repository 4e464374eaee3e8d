package ledger

import (
	"context"

	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor: ledger,
// snapshot y registros asociados aterrizan juntos o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txnRepo repository.TransactionRepository,
		snapRepo repository.SnapshotRepository,
		returnRepo repository.ReturnRepository,
		corrRepo repository.CorrectionRepository,
	) error) error
}
