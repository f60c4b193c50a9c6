package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Documentos-api/internal/domain"
	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	"github.com/jhoicas/Documentos-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste la cabecera del documento.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	query := `
		INSERT INTO documents (
			id, company_id, user_id, kind, prefix, number, date, customer_name, customer_tax_id, pricing_mode,
			gross_subtotal, line_discount_total, net_lines_subtotal, global_discount_percent, global_discount_amount,
			net_total, tax_total, grand_total, advance, balance_due, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.q.Exec(ctx, query,
		doc.ID, doc.CompanyID, doc.UserID, doc.Kind, doc.Prefix, doc.Number, doc.Date,
		doc.CustomerName, nullIfEmpty(doc.CustomerTaxID), doc.PricingMode,
		doc.GrossSubtotal, doc.LineDiscountTotal, doc.NetLinesSubtotal, doc.GlobalDiscountPercent, doc.GlobalDiscountAmount,
		doc.NetTotal, doc.TaxTotal, doc.GrandTotal, doc.Advance, doc.BalanceDue,
		doc.Status, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el número %s %s ya existe", domain.ErrDuplicate, doc.Prefix, doc.Number)
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// CreateLine persiste una línea del documento.
func (r *DocumentRepo) CreateLine(ctx context.Context, line *entity.DocumentLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO document_lines (
			id, document_id, position, article_id, description, quantity, unit_price, tax_rate, fiscal_tax_rate,
			discount_mode, discount_percent, discount_amount, gross, net_before_global, global_share, net, tax, tax_exclusive)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		line.ID, line.DocumentID, line.Position, nullIfEmpty(line.ArticleID), nullIfEmpty(line.Description),
		line.Quantity, line.UnitPrice, line.TaxRate, line.FiscalTaxRate,
		line.DiscountMode, line.DiscountPercent, line.DiscountAmount,
		line.Gross, line.NetBeforeGlobal, line.GlobalShare, line.Net, line.Tax, line.TaxExclusive,
	)
	if err != nil {
		return fmt.Errorf("insert document line: %w", err)
	}
	return nil
}

// CreateTaxBucket persiste un renglón del desglose por alícuota.
func (r *DocumentRepo) CreateTaxBucket(ctx context.Context, bucket *entity.DocumentTaxBucket) error {
	query := `INSERT INTO document_tax_buckets (document_id, rate, base, tax) VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, bucket.DocumentID, bucket.Rate, bucket.Base, bucket.Tax); err != nil {
		return fmt.Errorf("insert tax bucket: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un documento; (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	query := `
		SELECT id, company_id, user_id, kind, prefix, number, date, customer_name, customer_tax_id, pricing_mode,
		       gross_subtotal, line_discount_total, net_lines_subtotal, global_discount_percent, global_discount_amount,
		       net_total, tax_total, grand_total, advance, balance_due, status, created_at, updated_at
		FROM documents WHERE id = $1`
	var doc entity.Document
	var customerTaxID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&doc.ID, &doc.CompanyID, &doc.UserID, &doc.Kind, &doc.Prefix, &doc.Number, &doc.Date,
		&doc.CustomerName, &customerTaxID, &doc.PricingMode,
		&doc.GrossSubtotal, &doc.LineDiscountTotal, &doc.NetLinesSubtotal, &doc.GlobalDiscountPercent, &doc.GlobalDiscountAmount,
		&doc.NetTotal, &doc.TaxTotal, &doc.GrandTotal, &doc.Advance, &doc.BalanceDue,
		&doc.Status, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	doc.CustomerTaxID = derefStr(customerTaxID)
	return &doc, nil
}

// GetLinesByDocumentID obtiene las líneas en el orden en que se cargaron.
func (r *DocumentRepo) GetLinesByDocumentID(ctx context.Context, documentID string) ([]*entity.DocumentLine, error) {
	query := `
		SELECT id, document_id, position, article_id, description, quantity, unit_price, tax_rate, fiscal_tax_rate,
		       discount_mode, discount_percent, discount_amount, gross, net_before_global, global_share, net, tax, tax_exclusive
		FROM document_lines WHERE document_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		var articleID, description *string
		if err := rows.Scan(
			&l.ID, &l.DocumentID, &l.Position, &articleID, &description,
			&l.Quantity, &l.UnitPrice, &l.TaxRate, &l.FiscalTaxRate,
			&l.DiscountMode, &l.DiscountPercent, &l.DiscountAmount,
			&l.Gross, &l.NetBeforeGlobal, &l.GlobalShare, &l.Net, &l.Tax, &l.TaxExclusive,
		); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		l.ArticleID = derefStr(articleID)
		l.Description = derefStr(description)
		list = append(list, &l)
	}
	return list, rows.Err()
}

// GetTaxBucketsByDocumentID obtiene el desglose ordenado por alícuota.
func (r *DocumentRepo) GetTaxBucketsByDocumentID(ctx context.Context, documentID string) ([]*entity.DocumentTaxBucket, error) {
	query := `SELECT document_id, rate, base, tax FROM document_tax_buckets WHERE document_id = $1 ORDER BY rate`
	rows, err := r.q.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list tax buckets: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentTaxBucket
	for rows.Next() {
		var b entity.DocumentTaxBucket
		if err := rows.Scan(&b.DocumentID, &b.Rate, &b.Base, &b.Tax); err != nil {
			return nil, fmt.Errorf("scan tax bucket: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
