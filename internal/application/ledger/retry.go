package ledger

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/jhoicas/Inventario-ledger/internal/domain"
)

// Policy agrupa las perillas del motor: stock negativo (backorders) y la
// disciplina de reintentos ante contención por ítem.
type Policy struct {
	AllowNegativeStock bool
	MaxRetries         int           // intentos totales ante ConcurrencyConflict
	RetryBackoff       time.Duration // espera base; crece exponencial con jitter
}

// DefaultPolicy valores por defecto: sin backorders, 3 intentos, 50ms base.
func DefaultPolicy() Policy {
	return Policy{AllowNegativeStock: false, MaxRetries: 3, RetryBackoff: 50 * time.Millisecond}
}

// withRetry ejecuta fn y reintenta solo ante ConcurrencyConflict, con backoff
// exponencial + jitter. La cancelación del contexto corta la espera y se
// reporta como conflicto (el caller decide si reintenta más arriba).
func withRetry(ctx context.Context, p Policy, fn func() error) error {
	attempts := p.MaxRetries
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !errors.Is(err, domain.ErrConcurrencyConflict) {
			return err
		}
		if i == attempts-1 {
			break
		}
		wait := p.RetryBackoff << i
		if wait > 0 {
			wait += time.Duration(rand.Int63n(int64(wait)/2 + 1))
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return domain.Conflict("transaction", "cancelado por el caller: "+ctx.Err().Error())
		}
	}
	return err
}
