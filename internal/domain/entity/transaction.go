package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro mayor.
const (
	TxnTypePurchase   = "purchase"   // compra (entrada)
	TxnTypeReturn     = "return"     // devolución a proveedor (salida)
	TxnTypeCorrection = "correction" // entrada compensatoria del motor de correcciones
	TxnTypeTransfer   = "transfer"   // traslado (entrada o salida)
	TxnTypeWaste      = "waste"      // merma
	TxnTypeDamage     = "damage"     // daño
	TxnTypeLoss       = "loss"       // pérdida
)

// ValidTxnType indica si el string es un tipo de transacción conocido.
func ValidTxnType(t string) bool {
	switch t {
	case TxnTypePurchase, TxnTypeReturn, TxnTypeCorrection,
		TxnTypeTransfer, TxnTypeWaste, TxnTypeDamage, TxnTypeLoss:
		return true
	}
	return false
}

// Transaction es la entrada atómica del libro mayor. Append-only: una vez
// persistida nunca se actualiza ni se borra; las correcciones agregan
// entradas nuevas. Cantidad con signo: positivo entrada, negativo salida.
// Los descriptores del ítem se copian al momento del registro para que el
// historial siga siendo fiel aunque el catálogo cambie después.
type Transaction struct {
	ID           string
	Type         string
	Timestamp    time.Time
	VendorID     string // "" = sin proveedor
	BatchID      string // "" = sin lote
	ItemID       string
	ItemType     string
	Category     string
	Color        string
	Size         string
	Material     string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	Shipping     decimal.Decimal
	TotalCost    decimal.Decimal // quantity*unit_price + shipping, calculado al crear
	RelatedTxnID string          // correcciones/devoluciones apuntan a su origen
	CreatedAt    time.Time
	CreatedBy    string
}
