package pricing

import "github.com/shopspring/decimal"

// applyGlobalDiscount segunda etapa: prorratea el descuento global sobre las
// líneas y devuelve una lista nueva con GlobalShare y Net completos.
//
// Solo participan las líneas con el mismo signo que el subtotal: en una factura
// las líneas de devolución no reciben descuento y en una nota de crédito las de
// cargo tampoco. Así la suma de netos es exactamente subtotal - signo*descuento.
func applyGlobalDiscount(lines []Line, subtotal, amount decimal.Decimal) []Line {
	subSign := signOf(subtotal)
	weights := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		weights[i] = decimal.Zero
		if !l.NetBeforeGlobal.IsZero() && signOf(l.NetBeforeGlobal).Equal(subSign) {
			weights[i] = l.NetBeforeGlobal.Abs()
		}
	}
	shares := Allocate(amount, weights)

	out := make([]Line, len(lines))
	for i, l := range lines {
		l.GlobalShare = shares[i]
		l.Net = l.NetBeforeGlobal.Sub(signOf(l.NetBeforeGlobal).Mul(shares[i]))
		out[i] = l
	}
	return out
}
