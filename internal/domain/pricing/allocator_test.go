package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentos-api/internal/domain/pricing"
)

func decs(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = dec(v)
	}
	return out
}

func TestAllocate_Proporcional(t *testing.T) {
	shares := pricing.Allocate(dec("40"), decs("100", "300"))
	require.Len(t, shares, 2)
	assertDec(t, "10", shares[0])
	assertDec(t, "30", shares[1])
}

func TestAllocate_RestoAlUltimo(t *testing.T) {
	shares := pricing.Allocate(dec("10"), decs("1", "1", "1"))
	assertDec(t, "3.3333", shares[0])
	assertDec(t, "3.3333", shares[1])
	assertDec(t, "3.3334", shares[2])
}

func TestAllocate_PesosCeroNoReciben(t *testing.T) {
	shares := pricing.Allocate(dec("10"), decs("0", "5", "0", "5", "0"))
	assertDec(t, "0", shares[0])
	assertDec(t, "5", shares[1])
	assertDec(t, "0", shares[2])
	assertDec(t, "5", shares[3])
	assertDec(t, "0", shares[4], "el resto va al último peso positivo, no a la última posición")
}

func TestAllocate_TotalMayorQueSumaDePesos(t *testing.T) {
	shares := pricing.Allocate(dec("50"), decs("10", "20"))
	assertDec(t, "10", shares[0])
	assertDec(t, "20", shares[1])
}

func TestAllocate_TotalNoPositivo(t *testing.T) {
	for _, total := range []string{"0", "-5"} {
		for _, s := range pricing.Allocate(dec(total), decs("1", "2")) {
			assert.True(t, s.IsZero())
		}
	}
}

func TestAllocate_SinPesos(t *testing.T) {
	assert.Empty(t, pricing.Allocate(dec("10"), nil))
}

// La suma de porciones es exacta y cada porción queda en [0, peso].
func TestAllocate_SumaExacta(t *testing.T) {
	cases := []struct {
		total   string
		weights []string
	}{
		{"0.0001", []string{"1", "1", "1"}},
		{"7.77", []string{"0.0003", "12.5", "3.3333", "0.0001"}},
		{"100", []string{"33.3333", "33.3333", "33.3334"}},
		{"0.0002", []string{"0.0001", "0.0001", "0.0001"}},
		{"999.9999", []string{"1000"}},
		{"1.2345", []string{"0.5", "0", "0.7345", "2"}},
	}
	for _, tc := range cases {
		weights := decs(tc.weights...)
		shares := pricing.Allocate(dec(tc.total), weights)
		sum := decimal.Zero
		for i, s := range shares {
			assert.False(t, s.IsNegative())
			assert.True(t, s.LessThanOrEqual(weights[i]), "porción %s excede peso %s", s, weights[i])
			assert.True(t, s.Equal(s.Round(pricing.InternalPlaces)), "porción con más de 4 decimales: %s", s)
			sum = sum.Add(s)
		}
		assertDec(t, tc.total, sum, "total %s pesos %v", tc.total, tc.weights)
	}
}
