package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Documentos-api/internal/application/dto"
	"github.com/jhoicas/Documentos-api/internal/domain/pricing"
	"github.com/jhoicas/Documentos-api/pkg/logger"
)

// PricingUseCase ejecuta el motor de precios sin persistir (vista previa).
type PricingUseCase struct {
	metrics PricingMetrics
	log     *logger.Logger
}

// NewPricingUseCase construye el caso de uso. metrics puede ser nil.
func NewPricingUseCase(metrics PricingMetrics, log *logger.Logger) *PricingUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PricingUseCase{metrics: metrics, log: log}
}

// Preview calcula los totales del documento. Nunca falla: las entradas que no se
// pudieron interpretar vuelven en Diagnostics.
func (uc *PricingUseCase) Preview(ctx context.Context, in dto.PricingRequest) *dto.PreviewResponse {
	totals := uc.calculate(ctx, toEngineDocument(in))
	return &dto.PreviewResponse{
		TotalsResponse: toTotalsResponse(totals),
		Diagnostics:    toDiagnosticsResponse(totals.Diagnostics),
		Resubmission:   toPricingRequest(totals.Resubmission()),
	}
}

func (uc *PricingUseCase) calculate(_ context.Context, doc pricing.Document) pricing.DocumentTotals {
	start := time.Now()
	totals := pricing.Calculate(doc)
	elapsed := time.Since(start)

	uc.metrics.ObserveCalculation(string(totals.PricingMode), elapsed)
	for _, d := range totals.Diagnostics {
		uc.metrics.CountDiagnostic(string(d.Issue))
		uc.log.Warn().
			Int("line", d.Line).
			Str("field", d.Field).
			Str("issue", string(d.Issue)).
			Str("raw", d.Raw).
			Msg("valor corregido por el motor de precios")
	}
	uc.log.Debug().
		Str("pricing_mode", string(totals.PricingMode)).
		Int("lines", len(totals.Lines)).
		Str("total", totals.Total.StringFixed(2)).
		Dur("elapsed", elapsed).
		Msg("documento calculado")
	return totals
}
