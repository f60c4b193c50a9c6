package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentos-api/internal/infrastructure/metrics"
)

func TestPricingCollector_CuentaCalculosYDiagnosticos(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewPricingCollector("test", reg)

	c.ObserveCalculation("tax_added", 2*time.Millisecond)
	c.ObserveCalculation("tax_added", time.Millisecond)
	c.ObserveCalculation("tax_included", time.Millisecond)
	c.CountDiagnostic("clamped")

	count, err := testutil.GatherAndCount(reg, "test_pricing_calculations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "una serie por modo de precios")

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if mf.GetName() == "test_pricing_calculations_total" {
				values[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
			}
			if mf.GetName() == "test_pricing_diagnostics_total" {
				values["diag_"+m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, values["tax_added"])
	assert.Equal(t, 1.0, values["tax_included"])
	assert.Equal(t, 1.0, values["diag_clamped"])
}

func TestPricingCollector_RegistroDobleReutiliza(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := metrics.NewPricingCollector("test", reg)
	second := metrics.NewPricingCollector("test", reg)

	first.CountDiagnostic("unparseable")
	second.CountDiagnostic("unparseable")

	count, err := testutil.GatherAndCount(reg, "test_pricing_diagnostics_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "test_pricing_diagnostics_total" {
			assert.Equal(t, 2.0, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
}
