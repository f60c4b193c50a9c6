package dto

import "github.com/shopspring/decimal"

// PricingRequest body para POST /api/documents/preview.
// Los campos numéricos aceptan número JSON, texto ("1.234,56") o null.
type PricingRequest struct {
	PricingMode           string        `json:"pricing_mode,omitempty" validate:"omitempty,oneof=tax_added tax_included"`
	GlobalDiscountMode    string        `json:"global_discount_mode,omitempty" validate:"omitempty,oneof=percentage amount"`
	GlobalDiscountPercent any           `json:"global_discount_percent,omitempty" swaggertype:"string"`
	GlobalDiscountAmount  any           `json:"global_discount_amount,omitempty" swaggertype:"string"`
	Advance               any           `json:"advance,omitempty" swaggertype:"string"` // seña / anticipo
	Lines                 []LineRequest `json:"lines" validate:"dive"`
}

// LineRequest línea del documento tal como la carga el usuario.
type LineRequest struct {
	ArticleID       string `json:"article_id,omitempty" validate:"max=64"`
	Description     string `json:"description,omitempty" validate:"max=500"`
	Quantity        any    `json:"quantity" swaggertype:"string"`
	UnitPrice       any    `json:"unit_price" swaggertype:"string"`
	TaxRate         any    `json:"tax_rate" swaggertype:"string"`                   // alícuota nominal (%)
	FiscalTaxRate   any    `json:"fiscal_tax_rate,omitempty" swaggertype:"string"`  // si falta se usa tax_rate
	DiscountMode    string `json:"discount_mode,omitempty" validate:"omitempty,oneof=percentage amount"`
	DiscountPercent any    `json:"discount_percent,omitempty" swaggertype:"string"`
	DiscountAmount  any    `json:"discount_amount,omitempty" swaggertype:"string"`
}

// CreateDocumentRequest body para POST /api/documents.
// Number es opcional; si va vacío se genera como <prefix>-<unix>.
type CreateDocumentRequest struct {
	Kind          string `json:"kind" validate:"required,oneof=invoice quote order credit_note"`
	Prefix        string `json:"prefix" validate:"required,max=10"`
	Number        string `json:"number,omitempty" validate:"omitempty,max=30"`
	Date          string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CustomerName  string `json:"customer_name" validate:"required,max=200"`
	CustomerTaxID string `json:"customer_tax_id,omitempty" validate:"omitempty,max=30"`
	PricingRequest
}

// LineResponse línea normalizada con todos los importes a 4 decimales.
type LineResponse struct {
	Position        int                 `json:"position"`
	ArticleID       string              `json:"article_id,omitempty"`
	Description     string              `json:"description,omitempty"`
	Quantity        decimal.Decimal     `json:"quantity"`
	UnitPrice       decimal.Decimal     `json:"unit_price"`
	TaxRate         decimal.Decimal     `json:"tax_rate"`
	FiscalTaxRate   decimal.Decimal     `json:"fiscal_tax_rate"`
	DiscountMode    string              `json:"discount_mode"`
	DiscountPercent decimal.Decimal     `json:"discount_percent"`
	DiscountAmount  decimal.Decimal     `json:"discount_amount"`
	Gross           decimal.Decimal     `json:"gross"`
	NetBeforeGlobal decimal.Decimal     `json:"net_before_global"`
	GlobalShare     decimal.Decimal     `json:"global_share"`
	Net             decimal.Decimal     `json:"net"`
	Tax             decimal.Decimal     `json:"tax"`
	TaxExclusive    decimal.NullDecimal `json:"tax_exclusive"`
}

// TaxBucketResponse acumulado por alícuota.
type TaxBucketResponse struct {
	Rate decimal.Decimal `json:"rate"`
	Base decimal.Decimal `json:"base"`
	Tax  decimal.Decimal `json:"tax"`
}

// DiagnosticResponse valor de entrada que el motor corrigió (line = -1: cabecera).
type DiagnosticResponse struct {
	Line  int    `json:"line"`
	Field string `json:"field"`
	Issue string `json:"issue"` // unparseable | clamped
	Raw   string `json:"raw"`
}

// TotalsResponse totales del documento. Los importes de cabecera van a 2 decimales,
// salvo el par del descuento global, que conserva 4 para que la suma de las
// porciones prorrateadas de las líneas coincida exactamente con el importe.
type TotalsResponse struct {
	PricingMode           string              `json:"pricing_mode"`
	GrossSubtotal         decimal.Decimal     `json:"gross_subtotal"`
	LineDiscountTotal     decimal.Decimal     `json:"line_discount_total"`
	NetLinesSubtotal      decimal.Decimal     `json:"net_lines_subtotal"`
	GlobalDiscountPercent decimal.Decimal     `json:"global_discount_percent"` // 4 decimales
	GlobalDiscountAmount  decimal.Decimal     `json:"global_discount_amount"`  // 4 decimales
	DisplaySubtotal       decimal.Decimal     `json:"display_subtotal"`
	DisplayTax            decimal.Decimal     `json:"display_tax"`
	Net                   decimal.Decimal     `json:"net"`
	Tax                   decimal.Decimal     `json:"tax"`
	Total                 decimal.Decimal     `json:"total"`
	Advance               decimal.Decimal     `json:"advance"`
	BalanceDue            decimal.Decimal     `json:"balance_due"`
	Breakdown             []TaxBucketResponse `json:"breakdown"`
	Lines                 []LineResponse      `json:"lines"`
}

// PreviewResponse respuesta de la vista previa. Resubmission puede reenviarse tal
// cual a /preview y produce los mismos totales.
type PreviewResponse struct {
	TotalsResponse
	Diagnostics  []DiagnosticResponse `json:"diagnostics,omitempty"`
	Resubmission PricingRequest       `json:"resubmission"`
}

// DocumentResponse documento confirmado para POST /api/documents y GET /api/documents/:id.
type DocumentResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	Kind          string `json:"kind"`
	Prefix        string `json:"prefix"`
	Number        string `json:"number"`
	Date          string `json:"date"`
	CustomerName  string `json:"customer_name"`
	CustomerTaxID string `json:"customer_tax_id,omitempty"`
	Status        string `json:"status"`
	TotalsResponse
	Diagnostics []DiagnosticResponse `json:"diagnostics,omitempty"`
}
