package entity

import "github.com/shopspring/decimal"

// DocumentLine representa una línea de un documento. Todos los importes con 4 decimales.
type DocumentLine struct {
	ID          string
	DocumentID  string
	Position    int
	ArticleID   string
	Description string

	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	TaxRate       decimal.Decimal
	FiscalTaxRate decimal.Decimal

	DiscountMode    string // percentage | amount
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal

	Gross           decimal.Decimal
	NetBeforeGlobal decimal.Decimal
	GlobalShare     decimal.Decimal
	Net             decimal.Decimal
	Tax             decimal.Decimal
	TaxExclusive    decimal.NullDecimal // solo con IVA incluido
}

// DocumentTaxBucket acumulado por alícuota del desglose de impuestos.
type DocumentTaxBucket struct {
	DocumentID string
	Rate       decimal.Decimal
	Base       decimal.Decimal
	Tax        decimal.Decimal
}
