package valuation

import "github.com/shopspring/decimal"

// Fold aplica una transacción al estado de valoración de un ítem (servicio de
// dominio, aritmética pura en decimal).
//
// Entrada (quantity > 0): promedio ponderado por cantidad
//
//	mac₁ = (qty₀*mac₀ + quantity*unitPrice) / (qty₀+quantity)  si qty₁ > 0
//	mac₁ = unitPrice                                           si qty₁ <= 0
//
// Salida (quantity < 0): el costo base del stock restante no cambia, mac₁ = mac₀.
// Si la cantidad llega a cero el MAC conserva su último valor hasta la próxima
// entrada. unitPrice cero es válido (stock gratuito) y arrastra el MAC hacia
// cero proporcionalmente.
func Fold(qty0, mac0, quantity, unitPrice decimal.Decimal) (qty1, mac1 decimal.Decimal) {
	qty1 = qty0.Add(quantity)
	if quantity.LessThan(decimal.Zero) {
		return qty1, mac0
	}
	if qty1.LessThanOrEqual(decimal.Zero) {
		return qty1, unitPrice
	}
	num := qty0.Mul(mac0).Add(quantity.Mul(unitPrice))
	return qty1, num.Div(qty1)
}

// TotalValue devuelve el valor total de la posición (qty × mac).
func TotalValue(qty, mac decimal.Decimal) decimal.Decimal {
	return qty.Mul(mac)
}
