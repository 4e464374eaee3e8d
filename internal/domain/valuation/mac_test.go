package valuation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/internal/domain/valuation"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Ley del promedio ponderado: 10 uds a $5 + 10 uds a $7 → 20 uds a $6.
func TestFold_PromedioPonderado(t *testing.T) {
	qty1, mac1 := valuation.Fold(d("10"), d("5"), d("10"), d("7"))

	assert.True(t, qty1.Equal(d("20")), "cantidad: %s", qty1)
	assert.True(t, mac1.Equal(d("6")), "mac: %s", mac1)
	assert.True(t, valuation.TotalValue(qty1, mac1).Equal(d("120")))
}

// Primera entrada sobre un ítem sin historial: el MAC es el precio de compra.
func TestFold_PrimeraEntrada(t *testing.T) {
	qty1, mac1 := valuation.Fold(decimal.Zero, decimal.Zero, d("4"), d("12.50"))

	assert.True(t, qty1.Equal(d("4")))
	assert.True(t, mac1.Equal(d("12.50")))
}

// Las salidas nunca mueven el MAC, solo la cantidad.
func TestFold_SalidaNoMueveMac(t *testing.T) {
	qty1, mac1 := valuation.Fold(d("20"), d("6"), d("-5"), decimal.Zero)

	assert.True(t, qty1.Equal(d("15")))
	assert.True(t, mac1.Equal(d("6")), "una salida no debe recalcular el MAC")
}

// El precio que acompaña a una salida es irrelevante para el MAC.
func TestFold_SalidaIgnoraPrecio(t *testing.T) {
	_, macA := valuation.Fold(d("20"), d("6"), d("-5"), decimal.Zero)
	_, macB := valuation.Fold(d("20"), d("6"), d("-5"), d("999"))

	assert.True(t, macA.Equal(macB))
}

// Al llegar la cantidad a cero el MAC conserva su último valor.
func TestFold_MacSeConservaEnCero(t *testing.T) {
	qty1, mac1 := valuation.Fold(d("5"), d("8"), d("-5"), decimal.Zero)

	assert.True(t, qty1.IsZero())
	assert.True(t, mac1.Equal(d("8")), "el MAC se retiene cuando el stock llega a cero")
}

// Entrada sobre cantidad previa <= 0: el MAC pasa a ser el precio unitario
// nuevo, sin promediar contra el pasado.
func TestFold_EntradaSobreStockNoPositivo(t *testing.T) {
	qty1, mac1 := valuation.Fold(d("-3"), d("8"), d("2"), d("10"))

	assert.True(t, qty1.Equal(d("-1")))
	assert.True(t, mac1.Equal(d("10")), "con stock resultante <= 0 el MAC es el precio nuevo")

	qty1, mac1 = valuation.Fold(d("-3"), d("8"), d("5"), d("10"))
	assert.True(t, qty1.Equal(d("2")))
	assert.True(t, mac1.Equal(d("10")))
}

// Stock regalado (precio cero) diluye el promedio.
func TestFold_EntradaGratisDiluye(t *testing.T) {
	qty1, mac1 := valuation.Fold(d("10"), d("6"), d("10"), decimal.Zero)

	assert.True(t, qty1.Equal(d("20")))
	assert.True(t, mac1.Equal(d("3")))
}

// Secuencia completa entrada-salida-entrada: el fold es una izquierda pura.
func TestFold_Secuencia(t *testing.T) {
	qty, mac := decimal.Zero, decimal.Zero

	steps := []struct {
		quantity, price  string
		wantQty, wantMac string
	}{
		{"10", "5", "10", "5"},
		{"-4", "0", "6", "5"},
		{"6", "7", "12", "6"},
		{"-12", "0", "0", "6"},
	}
	for _, s := range steps {
		qty, mac = valuation.Fold(qty, mac, d(s.quantity), d(s.price))
		require.True(t, qty.Equal(d(s.wantQty)), "qty tras %+v: %s", s, qty)
		require.True(t, mac.Equal(d(s.wantMac)), "mac tras %+v: %s", s, mac)
	}
}
