package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	"github.com/jhoicas/Documentos-api/internal/domain/repository"
)

// DocumentTxRunner ejecuta una función dentro de una transacción con el repositorio de documentos.
type DocumentTxRunner interface {
	RunDocuments(ctx context.Context, fn func(documentRepo repository.DocumentRepository) error) error
}

// DocumentPDFGenerator genera la representación gráfica de un documento confirmado.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(
		ctx context.Context,
		doc *entity.Document,
		lines []*entity.DocumentLine,
		buckets []*entity.DocumentTaxBucket,
	) ([]byte, error)
}

// PricingMetrics registra cada cálculo del motor.
type PricingMetrics interface {
	ObserveCalculation(pricingMode string, elapsed time.Duration)
	CountDiagnostic(issue string)
}

type noopMetrics struct{}

func (noopMetrics) ObserveCalculation(string, time.Duration) {}
func (noopMetrics) CountDiagnostic(string)                   {}
