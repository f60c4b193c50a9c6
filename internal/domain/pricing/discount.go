package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DiscountMode indica cuál de los dos valores del descuento es el autoritativo.
type DiscountMode string

const (
	DiscountPercentage DiscountMode = "percentage"
	DiscountAmount     DiscountMode = "amount"
)

// ParseDiscountMode interpreta el modo; cualquier valor desconocido es porcentaje.
func ParseDiscountMode(s string) DiscountMode {
	return DiscountMode(strings.ToLower(strings.TrimSpace(s))).orDefault()
}

func (m DiscountMode) orDefault() DiscountMode {
	if m == DiscountAmount {
		return DiscountAmount
	}
	return DiscountPercentage
}

// Discount par porcentaje/importe ya resuelto y coherente entre sí.
type Discount struct {
	Percent decimal.Decimal
	Amount  decimal.Decimal
}

// ResolveDiscount calcula el valor derivado del descuento a partir del autoritativo.
// La base es el valor absoluto de base; si es cero ambos resultados son cero.
// El porcentaje se acota a [0,100] y el importe a [0,|base|]; el segundo retorno
// indica si hubo que acotar la entrada. El porcentaje final se recalcula desde el
// importe ya cuantizado.
func ResolveDiscount(base, percent, amount decimal.Decimal, mode DiscountMode) (Discount, bool) {
	baseAbs := base.Abs()
	if !baseAbs.IsPositive() {
		return Discount{Percent: decimal.Zero, Amount: decimal.Zero}, false
	}

	clamped := false
	var imp decimal.Decimal
	if mode.orDefault() == DiscountAmount {
		imp = amount
		if imp.IsNegative() {
			imp, clamped = decimal.Zero, true
		}
		if imp.GreaterThan(baseAbs) {
			imp, clamped = baseAbs, true
		}
	} else {
		pct := percent
		if pct.IsNegative() {
			pct, clamped = decimal.Zero, true
		}
		if pct.GreaterThan(hundred) {
			pct, clamped = hundred, true
		}
		imp = baseAbs.Mul(pct).Shift(-2)
	}

	imp = q4(decimal.Min(imp, baseAbs))
	pct := imp.Mul(hundred).DivRound(baseAbs, InternalPlaces)
	return Discount{Percent: pct, Amount: imp}, clamped
}
