package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Documentos-api/internal/domain/pricing"
)

func TestResolveDiscount_PorcentajeCalculaImporte(t *testing.T) {
	d, clamped := pricing.ResolveDiscount(dec("200"), dec("10"), dec("0"), pricing.DiscountPercentage)
	assert.False(t, clamped)
	assertDec(t, "20", d.Amount)
	assertDec(t, "10", d.Percent)
}

func TestResolveDiscount_ImporteCalculaPorcentaje(t *testing.T) {
	d, clamped := pricing.ResolveDiscount(dec("200"), dec("99"), dec("30"), pricing.DiscountAmount)
	assert.False(t, clamped)
	assertDec(t, "30", d.Amount)
	assertDec(t, "15", d.Percent, "el porcentaje recibido se ignora en modo importe")
}

func TestResolveDiscount_PorcentajeRecalculadoDesdeImporte(t *testing.T) {
	d, _ := pricing.ResolveDiscount(dec("3"), dec("0"), dec("1"), pricing.DiscountAmount)
	assertDec(t, "33.3333", d.Percent)
}

func TestResolveDiscount_Acotado(t *testing.T) {
	cases := []struct {
		name    string
		pct     string
		amt     string
		mode    pricing.DiscountMode
		wantPct string
		wantAmt string
	}{
		{"porcentaje mayor a 100", "150", "0", pricing.DiscountPercentage, "100", "200"},
		{"porcentaje negativo", "-5", "0", pricing.DiscountPercentage, "0", "0"},
		{"importe mayor a la base", "0", "250", pricing.DiscountAmount, "100", "200"},
		{"importe negativo", "0", "-1", pricing.DiscountAmount, "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, clamped := pricing.ResolveDiscount(dec("200"), dec(tc.pct), dec(tc.amt), tc.mode)
			assert.True(t, clamped)
			assertDec(t, tc.wantPct, d.Percent)
			assertDec(t, tc.wantAmt, d.Amount)
		})
	}
}

func TestResolveDiscount_BaseCero(t *testing.T) {
	d, clamped := pricing.ResolveDiscount(dec("0"), dec("50"), dec("10"), pricing.DiscountPercentage)
	assert.False(t, clamped)
	assert.True(t, d.Percent.IsZero())
	assert.True(t, d.Amount.IsZero())
}

func TestResolveDiscount_BaseNegativaUsaMagnitud(t *testing.T) {
	d, _ := pricing.ResolveDiscount(dec("-200"), dec("10"), dec("0"), pricing.DiscountPercentage)
	assertDec(t, "20", d.Amount)
	assertDec(t, "10", d.Percent)
}

func TestParseDiscountMode(t *testing.T) {
	assert.Equal(t, pricing.DiscountAmount, pricing.ParseDiscountMode(" Amount "))
	assert.Equal(t, pricing.DiscountPercentage, pricing.ParseDiscountMode("percentage"))
	assert.Equal(t, pricing.DiscountPercentage, pricing.ParseDiscountMode("otro"))
}
