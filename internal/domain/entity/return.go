package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnDetail registra el detalle comercial de una devolución, enlazado 1:1
// con una entrada de tipo return del libro mayor.
type ReturnDetail struct {
	ID               string
	TransactionID    string
	ReturnedQuantity decimal.Decimal // positiva; la entrada del ledger lleva el signo
	RefundAmount     decimal.Decimal
	RestockingFee    decimal.Decimal
	CreatedAt        time.Time
}
