package pricing

import "github.com/shopspring/decimal"

// Document entrada completa del motor.
type Document struct {
	Lines []LineInput

	GlobalDiscountMode    DiscountMode
	GlobalDiscountPercent any
	GlobalDiscountAmount  any

	Advance     any // seña / anticipo
	PricingMode PricingMode
}

// Exact totales con precisión interna (4 decimales), antes del redondeo a moneda.
type Exact struct {
	Net        decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	Advance    decimal.Decimal
	BalanceDue decimal.Decimal
	Breakdown  []TaxBucket
}

// DocumentTotals resultado del motor. Los totales de moneda tienen 2 decimales;
// líneas, pares de descuento y Exact conservan 4.
type DocumentTotals struct {
	Lines       []Line
	PricingMode PricingMode

	GrossSubtotal     decimal.Decimal // antes de cualquier descuento
	LineDiscountTotal decimal.Decimal
	NetLinesSubtotal  decimal.Decimal // después de descuentos de línea, antes del global

	GlobalDiscountPercent decimal.Decimal
	GlobalDiscountAmount  decimal.Decimal

	// DisplaySubtotal y DisplayTax son los valores que muestra la vista previa.
	// Con IVA incluido el subtotal es el total y el impuesto se muestra en cero;
	// el impuesto real está en Tax.
	DisplaySubtotal decimal.Decimal
	DisplayTax      decimal.Decimal

	Breakdown []TaxBucket

	Net        decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	Advance    decimal.Decimal
	BalanceDue decimal.Decimal

	Exact       Exact
	Diagnostics []Diagnostic
}

// Calculate ejecuta el pipeline completo: normalización de líneas, prorrateo del
// descuento global, impuestos y agregados. Nunca falla; ver Diagnostics.
func Calculate(doc Document) DocumentTotals {
	mode := doc.PricingMode.orDefault()
	c := &collector{}

	lines, sums := normalizeLines(doc.Lines, c)

	globalMode := doc.GlobalDiscountMode.orDefault()
	gPct, _ := c.value(DocumentLevel, "global_discount_percent", doc.GlobalDiscountPercent)
	gAmt, _ := c.value(DocumentLevel, "global_discount_amount", doc.GlobalDiscountAmount)
	global, clamped := ResolveDiscount(sums.net, gPct, gAmt, globalMode)
	if clamped {
		if globalMode == DiscountAmount {
			c.clamped(DocumentLevel, "global_discount_amount", gAmt)
		} else {
			c.clamped(DocumentLevel, "global_discount_percent", gPct)
		}
	}

	lines = applyGlobalDiscount(lines, sums.net, global.Amount)
	lines, buckets := applyTax(lines, mode)

	lineNets, taxTotal := decimal.Zero, decimal.Zero
	for _, l := range lines {
		lineNets = lineNets.Add(l.Net)
		taxTotal = taxTotal.Add(l.Tax)
	}

	advance, _ := c.nonNegative(DocumentLevel, "advance", doc.Advance)
	exact := Exact{Tax: taxTotal, Advance: q4(advance)}
	if mode == TaxIncluded {
		exact.Total = lineNets
		exact.Net = lineNets.Sub(taxTotal)
		buckets = reconcile(buckets, exact.Net, exact.Tax)
	} else {
		exact.Net = lineNets
		exact.Total = lineNets.Add(taxTotal)
	}
	exact.BalanceDue = decimal.Max(decimal.Zero, exact.Total.Sub(exact.Advance))
	exact.Breakdown = buckets

	t := DocumentTotals{
		Lines:                 lines,
		PricingMode:           mode,
		GrossSubtotal:         q2(sums.gross),
		LineDiscountTotal:     q2(sums.discounts),
		NetLinesSubtotal:      q2(sums.net),
		GlobalDiscountPercent: global.Percent,
		GlobalDiscountAmount:  global.Amount,
		Advance:               q2(exact.Advance),
		Exact:                 exact,
		Diagnostics:           c.items,
	}

	// Redondeo a moneda: los totales se derivan entre sí para que sigan cerrando.
	t.Tax = q2(exact.Tax)
	baseTarget := q2(sumBases(buckets))
	if mode == TaxIncluded {
		t.Total = q2(exact.Total)
		t.Net = t.Total.Sub(t.Tax)
		t.DisplaySubtotal = t.Total
		t.DisplayTax = decimal.Zero
		baseTarget = t.Net
	} else {
		t.Net = q2(exact.Net)
		t.Total = t.Net.Add(t.Tax)
		t.DisplaySubtotal = t.Net
		t.DisplayTax = t.Tax
	}
	t.Breakdown = reconcile(roundBuckets(buckets), baseTarget, t.Tax)
	t.BalanceDue = decimal.Max(decimal.Zero, t.Total.Sub(t.Advance))
	return t
}

// Resubmission reconstruye una entrada equivalente a partir del resultado, con
// todos los descuentos en modo importe. Calcular sobre ella da los mismos totales.
func (t DocumentTotals) Resubmission() Document {
	lines := make([]LineInput, len(t.Lines))
	for i, l := range t.Lines {
		lines[i] = LineInput{
			ArticleID:      l.ArticleID,
			Description:    l.Description,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			TaxRate:        l.TaxRate,
			FiscalTaxRate:  l.FiscalTaxRate,
			DiscountMode:   DiscountAmount,
			DiscountAmount: l.DiscountAmount,
		}
	}
	return Document{
		Lines:                lines,
		GlobalDiscountMode:   DiscountAmount,
		GlobalDiscountAmount: t.GlobalDiscountAmount,
		Advance:              t.Exact.Advance,
		PricingMode:          t.PricingMode,
	}
}
