package billing

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentos-api/internal/application/dto"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]any{"esperado %s, obtenido %s", want, got.String()}, msgAndArgs...)...)
}

func sampleRequest() dto.PricingRequest {
	return dto.PricingRequest{
		GlobalDiscountMode:    "percentage",
		GlobalDiscountPercent: json.Number("10"),
		Advance:               "100,00",
		Lines: []dto.LineRequest{
			{ArticleID: "A1", Quantity: json.Number("3"), UnitPrice: "33.33", TaxRate: json.Number("21")},
			{ArticleID: "A2", Quantity: 1, UnitPrice: "1.000,00", TaxRate: "10,5", DiscountMode: "amount", DiscountAmount: 50},
		},
	}
}

func TestPreview_CalculaTotales(t *testing.T) {
	metrics := newRecordingMetrics()
	uc := NewPricingUseCase(metrics, nil)

	out := uc.Preview(context.Background(), sampleRequest())

	require.NotNil(t, out)
	assert.Equal(t, "tax_added", out.PricingMode)
	// 99.99 + 950 = 1049.99; 10% = 105.00 (104.999 redondeado a 4 decimales)
	assertDec(t, "1049.99", out.NetLinesSubtotal)
	assertDec(t, "104.999", out.GlobalDiscountAmount)
	assert.True(t, out.Total.Equal(out.Net.Add(out.Tax)))
	assertDec(t, "100", out.Advance)
	assert.True(t, out.BalanceDue.Equal(out.Total.Sub(out.Advance)))
	require.Len(t, out.Lines, 2)
	require.Len(t, out.Breakdown, 2)
	assert.Empty(t, out.Diagnostics)
	assert.Equal(t, []string{"tax_added"}, metrics.modes)
}

func TestPreview_ReenvioDaLosMismosTotales(t *testing.T) {
	uc := NewPricingUseCase(nil, nil)
	first := uc.Preview(context.Background(), sampleRequest())

	second := uc.Preview(context.Background(), first.Resubmission)

	assertDec(t, first.Net.String(), second.Net)
	assertDec(t, first.Tax.String(), second.Tax)
	assertDec(t, first.Total.String(), second.Total)
	assertDec(t, first.BalanceDue.String(), second.BalanceDue)
	assert.Equal(t, "amount", second.Resubmission.GlobalDiscountMode)
	for i := range first.Lines {
		assertDec(t, first.Lines[i].Net.String(), second.Lines[i].Net, "línea %d", i)
	}
}

func TestPreview_DiagnosticosYMetricas(t *testing.T) {
	metrics := newRecordingMetrics()
	uc := NewPricingUseCase(metrics, nil)

	out := uc.Preview(context.Background(), dto.PricingRequest{
		Lines: []dto.LineRequest{
			{Quantity: "dos", UnitPrice: 10, TaxRate: 21},
			{Quantity: 1, UnitPrice: 10, TaxRate: 21, DiscountPercent: 150},
		},
	})

	require.Len(t, out.Diagnostics, 2)
	assert.Equal(t, dto.DiagnosticResponse{Line: 0, Field: "quantity", Issue: "unparseable", Raw: "dos"}, out.Diagnostics[0])
	assert.Equal(t, 1, out.Diagnostics[1].Line)
	assert.Equal(t, "discount_percent", out.Diagnostics[1].Field)
	assert.Equal(t, "clamped", out.Diagnostics[1].Issue)
	assert.Equal(t, 1, metrics.diagnostics["unparseable"])
	assert.Equal(t, 1, metrics.diagnostics["clamped"])
	// La línea con descuento del 150% queda en cero.
	assertDec(t, "0", out.Total)
}

func TestPreview_ImpuestoIncluidoMuestraTotalComoSubtotal(t *testing.T) {
	uc := NewPricingUseCase(nil, nil)

	out := uc.Preview(context.Background(), dto.PricingRequest{
		PricingMode: "tax_included",
		Lines:       []dto.LineRequest{{Quantity: 1, UnitPrice: 121, TaxRate: 21}},
	})

	assertDec(t, "121", out.DisplaySubtotal)
	assertDec(t, "0", out.DisplayTax)
	assertDec(t, "21", out.Tax)
	assertDec(t, "100", out.Net)
}
