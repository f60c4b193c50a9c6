package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentos-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleDocument() (*entity.Document, []*entity.DocumentLine, []*entity.DocumentTaxBucket) {
	doc := &entity.Document{
		ID:                    "doc-1",
		Kind:                  entity.DocumentKindInvoice,
		Prefix:                "A",
		Number:                "A-0001",
		Date:                  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CustomerName:          "Cliente de Prueba",
		PricingMode:           "tax_added",
		GrossSubtotal:         d("1100"),
		LineDiscountTotal:     d("100"),
		NetLinesSubtotal:      d("1000"),
		GlobalDiscountPercent: d("10"),
		GlobalDiscountAmount:  d("100"),
		NetTotal:              d("900"),
		TaxTotal:              d("189"),
		GrandTotal:            d("1089"),
		Advance:               d("89"),
		BalanceDue:            d("1000"),
	}
	lines := []*entity.DocumentLine{
		{
			Position: 1, ArticleID: "ART-1", Description: "Tornillos",
			Quantity: d("10"), UnitPrice: d("110"), TaxRate: d("21"), FiscalTaxRate: d("21"),
			DiscountMode: "percentage", DiscountPercent: d("9.0909"), DiscountAmount: d("100"),
			Gross: d("1100"), NetBeforeGlobal: d("1000"), GlobalShare: d("100"), Net: d("900"), Tax: d("189"),
		},
		{
			Position: 2, ArticleID: "ART-2",
			Quantity: d("0.5"), UnitPrice: d("0"), TaxRate: d("0"), FiscalTaxRate: d("0"),
			DiscountMode: "amount",
		},
	}
	buckets := []*entity.DocumentTaxBucket{{Rate: d("21"), Base: d("900"), Tax: d("189")}}
	return doc, lines, buckets
}

func TestGenerateDocumentPDF(t *testing.T) {
	doc, lines, buckets := sampleDocument()

	out, err := NewMarotoPDFGenerator("Empresa Demo").GenerateDocumentPDF(context.Background(), doc, lines, buckets)

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "no es un PDF")
}

func TestGenerateDocumentPDF_SinLineasNiAnticipo(t *testing.T) {
	doc, _, _ := sampleDocument()
	doc.Kind = "desconocido"
	doc.PricingMode = "tax_included"
	doc.Advance = decimal.Zero

	out, err := NewMarotoPDFGenerator("").GenerateDocumentPDF(context.Background(), doc, nil, nil)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestDiscountLabel(t *testing.T) {
	assert.Equal(t, "—", discountLabel(&entity.DocumentLine{DiscountAmount: decimal.Zero}))
	assert.Equal(t, "$15,00", discountLabel(&entity.DocumentLine{DiscountMode: "amount", DiscountAmount: d("15")}))
	assert.Equal(t, "12,50%", discountLabel(&entity.DocumentLine{
		DiscountMode: "percentage", DiscountPercent: d("12.5"), DiscountAmount: d("15"),
	}))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "3", formatQuantity(d("3.0000")))
	assert.Equal(t, "1.500", formatQuantity(d("1500")))
	assert.Equal(t, "0,5000", formatQuantity(d("0.5")))
	assert.Equal(t, "-2", formatQuantity(d("-2")))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "NOTA DE CRÉDITO", title(&entity.Document{Kind: entity.DocumentKindCreditNote}))
	assert.Equal(t, "DOCUMENTO", title(&entity.Document{Kind: "otro"}))
}
