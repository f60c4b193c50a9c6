package billing

import (
	"context"
	"fmt"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhoicas/Documentos-api/internal/application/dto"
	"github.com/jhoicas/Documentos-api/internal/domain"
	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	"github.com/jhoicas/Documentos-api/internal/domain/pricing"
	"github.com/jhoicas/Documentos-api/internal/domain/repository"
	"github.com/jhoicas/Documentos-api/pkg/logger"
)

// DocumentUseCase confirma documentos (cálculo + persistencia) y los consulta.
type DocumentUseCase struct {
	txRunner     DocumentTxRunner
	documentRepo repository.DocumentRepository
	pricingUC    *PricingUseCase
	validate     *validator.Validate
	log          *logger.Logger
	now          func() time.Time
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	txRunner DocumentTxRunner,
	documentRepo repository.DocumentRepository,
	pricingUC *PricingUseCase,
	validate *validator.Validate,
	log *logger.Logger,
) *DocumentUseCase {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	if log == nil {
		log = logger.Nop()
	}
	return &DocumentUseCase{
		txRunner:     txRunner,
		documentRepo: documentRepo,
		pricingUC:    pricingUC,
		validate:     validate,
		log:          log,
		now:          time.Now,
	}
}

// CreateDocument valida la cabecera, calcula los totales y guarda cabecera, líneas
// y desglose en una sola transacción.
func (uc *DocumentUseCase) CreateDocument(ctx context.Context, companyID, userID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	now := uc.now()
	date := now
	if in.Date != "" {
		d, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha inválida", domain.ErrInvalidInput)
		}
		date = d
	}
	number := in.Number
	if number == "" {
		number = fmt.Sprintf("%s-%d", in.Prefix, now.Unix())
	}

	totals := uc.pricingUC.calculate(ctx, toEngineDocument(in.PricingRequest))

	doc := &entity.Document{
		ID:                    uuid.New().String(),
		CompanyID:             companyID,
		UserID:                userID,
		Kind:                  in.Kind,
		Prefix:                in.Prefix,
		Number:                number,
		Date:                  date,
		CustomerName:          in.CustomerName,
		CustomerTaxID:         in.CustomerTaxID,
		PricingMode:           string(totals.PricingMode),
		GrossSubtotal:         totals.GrossSubtotal,
		LineDiscountTotal:     totals.LineDiscountTotal,
		NetLinesSubtotal:      totals.NetLinesSubtotal,
		GlobalDiscountPercent: totals.GlobalDiscountPercent,
		GlobalDiscountAmount:  totals.GlobalDiscountAmount,
		NetTotal:              totals.Net,
		TaxTotal:              totals.Tax,
		GrandTotal:            totals.Total,
		Advance:               totals.Advance,
		BalanceDue:            totals.BalanceDue,
		Status:                entity.DocumentStatusConfirmed,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	lines := make([]*entity.DocumentLine, len(totals.Lines))
	for i, l := range totals.Lines {
		lines[i] = toLineEntity(doc.ID, i, l)
	}
	buckets := make([]*entity.DocumentTaxBucket, len(totals.Breakdown))
	for i, b := range totals.Breakdown {
		buckets[i] = &entity.DocumentTaxBucket{DocumentID: doc.ID, Rate: b.Rate, Base: b.Base, Tax: b.Tax}
	}

	err := uc.txRunner.RunDocuments(ctx, func(documentRepo repository.DocumentRepository) error {
		if err := documentRepo.Create(ctx, doc); err != nil {
			return err
		}
		for _, l := range lines {
			if err := documentRepo.CreateLine(ctx, l); err != nil {
				return err
			}
		}
		for _, b := range buckets {
			if err := documentRepo.CreateTaxBucket(ctx, b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("document_id", doc.ID).
		Str("company_id", companyID).
		Str("kind", doc.Kind).
		Str("number", doc.Prefix+" "+doc.Number).
		Str("total", doc.GrandTotal.StringFixed(2)).
		Msg("documento confirmado")

	resp := toDocumentResponse(doc, lines, buckets)
	resp.Diagnostics = toDiagnosticsResponse(totals.Diagnostics)
	return resp, nil
}

func toLineEntity(documentID string, position int, l pricing.Line) *entity.DocumentLine {
	return &entity.DocumentLine{
		ID:              uuid.New().String(),
		DocumentID:      documentID,
		Position:        position,
		ArticleID:       l.ArticleID,
		Description:     l.Description,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice,
		TaxRate:         l.TaxRate,
		FiscalTaxRate:   l.FiscalTaxRate,
		DiscountMode:    string(l.DiscountMode),
		DiscountPercent: l.DiscountPercent,
		DiscountAmount:  l.DiscountAmount,
		Gross:           l.Gross,
		NetBeforeGlobal: l.NetBeforeGlobal,
		GlobalShare:     l.GlobalShare,
		Net:             l.Net,
		Tax:             l.Tax,
		TaxExclusive:    l.TaxExclusive,
	}
}

// GetDocument obtiene un documento confirmado con líneas y desglose, tal como se guardó.
func (uc *DocumentUseCase) GetDocument(ctx context.Context, companyID, id string) (*dto.DocumentResponse, error) {
	doc, lines, buckets, err := loadDocument(ctx, uc.documentRepo, companyID, id)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc, lines, buckets), nil
}

// loadDocument carga cabecera, líneas y desglose verificando que el documento
// pertenezca a la empresa.
func loadDocument(ctx context.Context, repo repository.DocumentRepository, companyID, id string) (
	*entity.Document, []*entity.DocumentLine, []*entity.DocumentTaxBucket, error,
) {
	doc, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("obtener documento: %w", err)
	}
	if doc == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	if doc.CompanyID != companyID {
		return nil, nil, nil, domain.ErrForbidden
	}
	lines, err := repo.GetLinesByDocumentID(ctx, id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("obtener líneas: %w", err)
	}
	buckets, err := repo.GetTaxBucketsByDocumentID(ctx, id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("obtener desglose: %w", err)
	}
	return doc, lines, buckets, nil
}
