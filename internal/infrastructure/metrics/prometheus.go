// Package metrics expone contadores e histogramas Prometheus del motor de precios.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Documentos-api/internal/application/billing"
)

var _ billing.PricingMetrics = (*PricingCollector)(nil)

// PricingCollector implementa billing.PricingMetrics.
type PricingCollector struct {
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	diagnostics  *prometheus.CounterVec
}

// NewPricingCollector crea y registra los colectores en reg (DefaultRegisterer si es nil).
// Si ya estaban registrados se reutilizan los existentes.
func NewPricingCollector(namespace string, reg prometheus.Registerer) *PricingCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &PricingCollector{
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_calculations_total",
			Help:      "Cantidad de documentos calculados por el motor de precios.",
		}, []string{"pricing_mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pricing_calculation_duration_ms",
			Help:      "Duración del cálculo de un documento en milisegundos.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50},
		}, []string{"pricing_mode"}),
		diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_diagnostics_total",
			Help:      "Valores de entrada corregidos por el motor, por tipo.",
		}, []string{"issue"}),
	}

	mustRegister(reg, c.calculations, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			c.calculations = v
		}
	})
	mustRegister(reg, c.duration, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.HistogramVec); ok {
			c.duration = v
		}
	})
	mustRegister(reg, c.diagnostics, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			c.diagnostics = v
		}
	})
	return c
}

// ObserveCalculation registra un cálculo y su duración.
func (c *PricingCollector) ObserveCalculation(pricingMode string, elapsed time.Duration) {
	c.calculations.WithLabelValues(pricingMode).Inc()
	c.duration.WithLabelValues(pricingMode).Observe(float64(elapsed) / float64(time.Millisecond))
}

// CountDiagnostic cuenta un valor corregido (unparseable | clamped).
func (c *PricingCollector) CountDiagnostic(issue string) {
	c.diagnostics.WithLabelValues(issue).Inc()
}

func mustRegister(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("registrar métrica: %w", err))
	}
}
