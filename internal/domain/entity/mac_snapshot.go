package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MacSnapshot es el estado de valoración de un ítem en un punto del tiempo:
// cantidad disponible, costo promedio móvil y valor total (qty × mac).
// El historial es append-only; el "vigente" es el de mayor Seq, una secuencia
// monótona asignada al persistir (snapshot_ts puede empatar, Seq no).
// Cuando la cantidad llega a cero el MAC conserva su último valor (no se
// resetea) hasta que una nueva entrada lo redefina.
type MacSnapshot struct {
	ID             string
	Seq            int64 // asignado por la persistencia
	ItemID         string
	QuantityOnHand decimal.Decimal
	MovingAvgCost  decimal.Decimal
	TotalValue     decimal.Decimal
	SnapshotTs     time.Time
	CreatedBy      string
}
