package repository

import (
	"context"

	"github.com/jhoicas/Documentos-api/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia para documentos, líneas y desglose.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	CreateLine(ctx context.Context, line *entity.DocumentLine) error
	CreateTaxBucket(ctx context.Context, bucket *entity.DocumentTaxBucket) error
	// GetByID retorna (nil, nil) si el documento no existe.
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	GetLinesByDocumentID(ctx context.Context, documentID string) ([]*entity.DocumentLine, error)
	GetTaxBucketsByDocumentID(ctx context.Context, documentID string) ([]*entity.DocumentTaxBucket, error)
}
