package pricing

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// PricingMode indica si los precios excluyen o ya incluyen el impuesto.
type PricingMode string

const (
	// TaxAdded el neto de línea no incluye impuesto; el impuesto se suma.
	TaxAdded PricingMode = "tax_added"
	// TaxIncluded el neto de línea ya contiene el impuesto; se desagrega.
	TaxIncluded PricingMode = "tax_included"
)

// ParsePricingMode interpreta el modo; cualquier valor desconocido es tax_added.
func ParsePricingMode(s string) PricingMode {
	return PricingMode(strings.ToLower(strings.TrimSpace(s))).orDefault()
}

func (m PricingMode) orDefault() PricingMode {
	if m == TaxIncluded {
		return TaxIncluded
	}
	return TaxAdded
}

// BucketRate alícuota que agrupa la línea en el desglose: nominal con impuesto
// sumado, fiscal con impuesto incluido.
func (m PricingMode) BucketRate(l Line) decimal.Decimal {
	if m.orDefault() == TaxIncluded {
		return l.FiscalTaxRate
	}
	return l.TaxRate
}

// lineTax calcula impuesto, neto sin impuesto (solo IVA incluido) y base del
// desglose para una línea con Net ya resuelto.
func (m PricingMode) lineTax(l Line) (tax decimal.Decimal, exclusive decimal.NullDecimal, base decimal.Decimal) {
	if m.orDefault() == TaxIncluded {
		rate := l.FiscalTaxRate
		if !rate.IsPositive() {
			return decimal.Zero, decimal.NullDecimal{Decimal: l.Net, Valid: true}, l.Net
		}
		excl := l.Net.Mul(hundred).DivRound(hundred.Add(rate), InternalPlaces)
		return l.Net.Sub(excl), decimal.NullDecimal{Decimal: excl, Valid: true}, excl
	}
	return q4(l.Net.Mul(l.TaxRate).Shift(-2)), decimal.NullDecimal{}, l.Net
}

// TaxBucket acumulado de base imponible e impuesto para una alícuota.
type TaxBucket struct {
	Rate decimal.Decimal
	Base decimal.Decimal
	Tax  decimal.Decimal
}

type breakdown struct {
	byRate map[string]*TaxBucket
}

func newBreakdown() *breakdown {
	return &breakdown{byRate: make(map[string]*TaxBucket)}
}

func (b *breakdown) add(rate, base, tax decimal.Decimal) {
	key := rate.StringFixed(InternalPlaces)
	bucket, ok := b.byRate[key]
	if !ok {
		bucket = &TaxBucket{Rate: q4(rate), Base: decimal.Zero, Tax: decimal.Zero}
		b.byRate[key] = bucket
	}
	bucket.Base = bucket.Base.Add(base)
	bucket.Tax = bucket.Tax.Add(tax)
}

// sorted devuelve los buckets ordenados por alícuota y luego por base.
func (b *breakdown) sorted() []TaxBucket {
	out := make([]TaxBucket, 0, len(b.byRate))
	for _, bucket := range b.byRate {
		out = append(out, *bucket)
	}
	sortBuckets(out)
	return out
}

func sortBuckets(buckets []TaxBucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		if c := buckets[i].Rate.Cmp(buckets[j].Rate); c != 0 {
			return c < 0
		}
		return buckets[i].Base.LessThan(buckets[j].Base)
	})
}

// applyTax tercera etapa: impuesto por línea y desglose por alícuota.
func applyTax(lines []Line, mode PricingMode) ([]Line, []TaxBucket) {
	bd := newBreakdown()
	out := make([]Line, len(lines))
	for i, l := range lines {
		tax, exclusive, base := mode.lineTax(l)
		l.Tax = tax
		l.TaxExclusive = exclusive
		if rate := mode.BucketRate(l); rate.IsPositive() {
			bd.add(rate, base, tax)
		}
		out[i] = l
	}
	return out, bd.sorted()
}

// reconcile suma en el último bucket la diferencia entre los totales y la suma
// del desglose, para que el desglose cierre exacto. Retorna una lista nueva.
func reconcile(buckets []TaxBucket, base, tax decimal.Decimal) []TaxBucket {
	out := append([]TaxBucket(nil), buckets...)
	if len(out) == 0 {
		return out
	}
	sumBase, sumTax := decimal.Zero, decimal.Zero
	for _, b := range out {
		sumBase = sumBase.Add(b.Base)
		sumTax = sumTax.Add(b.Tax)
	}
	last := &out[len(out)-1]
	last.Base = last.Base.Add(base.Sub(sumBase))
	last.Tax = last.Tax.Add(tax.Sub(sumTax))
	return out
}

// roundBuckets lleva el desglose a precisión de moneda.
func roundBuckets(buckets []TaxBucket) []TaxBucket {
	out := make([]TaxBucket, len(buckets))
	for i, b := range buckets {
		out[i] = TaxBucket{Rate: b.Rate, Base: q2(b.Base), Tax: q2(b.Tax)}
	}
	return out
}

func sumBases(buckets []TaxBucket) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range buckets {
		sum = sum.Add(b.Base)
	}
	return sum
}
