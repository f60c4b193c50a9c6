package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Documentos-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de un documento confirmado.
type PDFUseCase struct {
	documentRepo repository.DocumentRepository
	generator    DocumentPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(documentRepo repository.DocumentRepository, generator DocumentPDFGenerator) *PDFUseCase {
	return &PDFUseCase{documentRepo: documentRepo, generator: generator}
}

// DownloadDocumentPDF recupera el documento y genera el PDF con los valores guardados.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el documento no existe.
//   - domain.ErrForbidden        si el documento no pertenece a la empresa del token.
func (uc *PDFUseCase) DownloadDocumentPDF(ctx context.Context, companyID, documentID string) (pdfBytes []byte, filename string, err error) {
	doc, lines, buckets, err := loadDocument(ctx, uc.documentRepo, companyID, documentID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateDocumentPDF(ctx, doc, lines, buckets)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("%s_%s.pdf", doc.Kind, doc.Number)
	return pdfBytes, filename, nil
}
