package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento. El motor de precios los trata igual; una nota de crédito
// simplemente lleva cantidades negativas.
const (
	DocumentKindInvoice    = "invoice"
	DocumentKindQuote      = "quote"
	DocumentKindOrder      = "order"
	DocumentKindCreditNote = "credit_note"
)

// Estados del documento.
const (
	DocumentStatusConfirmed = "CONFIRMED"
)

// Document representa la cabecera de un documento comercial confirmado.
// Los totales se guardan con precisión de moneda (2 decimales).
type Document struct {
	ID            string
	CompanyID     string
	UserID        string
	Kind          string
	Prefix        string
	Number        string
	Date          time.Time
	CustomerName  string
	CustomerTaxID string
	PricingMode   string // tax_added | tax_included

	GrossSubtotal         decimal.Decimal
	LineDiscountTotal     decimal.Decimal
	NetLinesSubtotal      decimal.Decimal
	GlobalDiscountPercent decimal.Decimal
	GlobalDiscountAmount  decimal.Decimal
	NetTotal              decimal.Decimal
	TaxTotal              decimal.Decimal
	GrandTotal            decimal.Decimal
	Advance               decimal.Decimal
	BalanceDue            decimal.Decimal

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
