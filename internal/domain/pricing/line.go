package pricing

import "github.com/shopspring/decimal"

// LineInput línea tal como la envía el llamador. Los campos numéricos aceptan
// nil, enteros, float, decimal.Decimal, json.Number o texto.
type LineInput struct {
	ArticleID   string
	Description string

	Quantity  any // puede ser negativa (devoluciones)
	UnitPrice any
	TaxRate   any // alícuota nominal, en porcentaje
	// FiscalTaxRate alícuota usada para desagregar precios con IVA incluido;
	// si falta se usa TaxRate.
	FiscalTaxRate any

	DiscountMode    DiscountMode
	DiscountPercent any
	DiscountAmount  any
}

// Line línea normalizada. Todos los importes tienen 4 decimales.
type Line struct {
	ArticleID   string
	Description string

	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	TaxRate       decimal.Decimal
	FiscalTaxRate decimal.Decimal

	DiscountMode    DiscountMode
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal

	Gross           decimal.Decimal // cantidad * precio
	NetBeforeGlobal decimal.Decimal // bruto menos descuento de línea
	GlobalShare     decimal.Decimal // porción prorrateada del descuento global
	Net             decimal.Decimal // neto después del descuento global
	Tax             decimal.Decimal
	// TaxExclusive neto sin impuesto; solo válido con precios con IVA incluido.
	TaxExclusive decimal.NullDecimal
}

// lineSums acumuladores de la etapa de normalización de líneas.
type lineSums struct {
	gross     decimal.Decimal
	discounts decimal.Decimal
	net       decimal.Decimal
}

// normalizeLines primera etapa: cuantiza entradas, calcula bruto y resuelve el
// descuento de cada línea.
func normalizeLines(inputs []LineInput, c *collector) ([]Line, lineSums) {
	lines := make([]Line, len(inputs))
	sums := lineSums{gross: decimal.Zero, discounts: decimal.Zero, net: decimal.Zero}
	for i, in := range inputs {
		l := normalizeLine(i, in, c)
		sums.gross = sums.gross.Add(l.Gross)
		sums.discounts = sums.discounts.Add(l.DiscountAmount)
		sums.net = sums.net.Add(l.NetBeforeGlobal)
		lines[i] = l
	}
	return lines, sums
}

func normalizeLine(idx int, in LineInput, c *collector) Line {
	qty, _ := c.value(idx, "quantity", in.Quantity)
	price, _ := c.value(idx, "unit_price", in.UnitPrice)
	rate, _ := c.nonNegative(idx, "tax_rate", in.TaxRate)
	fiscal, outcome := c.nonNegative(idx, "fiscal_tax_rate", in.FiscalTaxRate)
	if outcome != OutcomeParsed {
		fiscal = rate
	}
	pct, _ := c.value(idx, "discount_percent", in.DiscountPercent)
	amt, _ := c.value(idx, "discount_amount", in.DiscountAmount)

	qty, price = q4(qty), q4(price)
	gross := q4(qty.Mul(price))
	mode := in.DiscountMode.orDefault()
	disc, clamped := ResolveDiscount(gross, pct, amt, mode)
	if clamped {
		if mode == DiscountAmount {
			c.clamped(idx, "discount_amount", amt)
		} else {
			c.clamped(idx, "discount_percent", pct)
		}
	}

	return Line{
		ArticleID:       in.ArticleID,
		Description:     in.Description,
		Quantity:        qty,
		UnitPrice:       price,
		TaxRate:         q4(rate),
		FiscalTaxRate:   q4(fiscal),
		DiscountMode:    mode,
		DiscountPercent: disc.Percent,
		DiscountAmount:  disc.Amount,
		Gross:           gross,
		NetBeforeGlobal: gross.Sub(signOf(gross).Mul(disc.Amount)),
		GlobalShare:     decimal.Zero,
		Net:             decimal.Zero,
		Tax:             decimal.Zero,
	}
}
