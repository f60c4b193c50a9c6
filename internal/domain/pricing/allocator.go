package pricing

import "github.com/shopspring/decimal"

// Allocate reparte total entre posiciones proporcionalmente a weights, en dos pasadas:
//  1. cada peso positivo salvo el último recibe round4(total * w / Σw);
//  2. el último peso positivo recibe el resto exacto.
//
// Ninguna porción queda fuera de [0, w]; si el resto no entra en el último se
// arrastra hacia las posiciones anteriores. Con 0 < total <= Σw la suma de las
// porciones es exactamente total. Pesos <= 0 reciben cero.
func Allocate(total decimal.Decimal, weights []decimal.Decimal) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(weights))
	for i := range shares {
		shares[i] = decimal.Zero
	}
	if !total.IsPositive() {
		return shares
	}

	denom := decimal.Zero
	last := -1
	for i, w := range weights {
		if w.IsPositive() {
			denom = denom.Add(w)
			last = i
		}
	}
	if last < 0 {
		return shares
	}
	if total.GreaterThan(denom) {
		total = denom
	}

	allocated := decimal.Zero
	for i, w := range weights {
		if i == last || !w.IsPositive() {
			continue
		}
		share := decimal.Min(total.Mul(w).DivRound(denom, InternalPlaces), w)
		shares[i] = share
		allocated = allocated.Add(share)
	}

	rest := total.Sub(allocated)
	for i := last; i >= 0 && !rest.IsZero(); i-- {
		w := weights[i]
		if !w.IsPositive() {
			continue
		}
		next := clamp(shares[i].Add(rest), decimal.Zero, w)
		rest = rest.Sub(next.Sub(shares[i]))
		shares[i] = next
	}
	return shares
}

func clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}
