package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// CorrectionRepository define el puerto de persistencia para correcciones.
type CorrectionRepository interface {
	Create(corr *entity.Correction) error
	// IsReversal indica si la transacción es la entrada compensatoria de una
	// corrección. Los reversals no se pueden volver a corregir directamente.
	IsReversal(txnID string) (bool, error)
	ListByOriginal(originalTxnID string) ([]*entity.Correction, error)
}
