package entity

import "time"

// Correction enlaza las tres identidades de una corrección: el reversal
// (entrada compensatoria con cantidad negada) y la entrada corregida
// reemplazan juntos el efecto de la original, sin mutarla jamás.
type Correction struct {
	ID             string
	OriginalTxnID  string
	ReversalTxnID  string
	CorrectedTxnID string
	Reason         string
	CreatedAt      time.Time
	CreatedBy      string
}
