package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-ledger/internal/application/ledger"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Aplica SET LOCAL lock_timeout al abrirla: la espera por el lock de fila del
// ítem queda acotada y el vencimiento se clasifica como ConcurrencyConflict.
type TxRunner struct {
	pool          *pgxpool.Pool
	lockTimeoutMS int
}

// NewTxRunner construye el runner con el pool. lockTimeoutMS <= 0 usa 3000.
func NewTxRunner(pool *pgxpool.Pool, lockTimeoutMS int) *TxRunner {
	if lockTimeoutMS <= 0 {
		lockTimeoutMS = 3000
	}
	return &TxRunner{pool: pool, lockTimeoutMS: lockTimeoutMS}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Todo lo que fn escriba aterriza junto o no aterriza.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
	snapRepo repository.SnapshotRepository,
	returnRepo repository.ReturnRepository,
	corrRepo repository.CorrectionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapDB("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeoutMS)); err != nil {
		return wrapDB("set lock_timeout", err)
	}

	itemRepo := NewItemRepository(tx)
	txnRepo := NewTransactionRepository(tx)
	snapRepo := NewSnapshotRepository(tx)
	returnRepo := NewReturnRepository(tx)
	corrRepo := NewCorrectionRepository(tx)

	if err := fn(itemRepo, txnRepo, snapRepo, returnRepo, corrRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapDB("commit transaction", err)
	}
	return nil
}
