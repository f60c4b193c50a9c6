package billing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	"github.com/jhoicas/Documentos-api/internal/domain/repository"
)

// memoryDocumentRepo repositorio en memoria para los tests.
type memoryDocumentRepo struct {
	mu      sync.Mutex
	docs    map[string]*entity.Document
	lines   map[string][]*entity.DocumentLine
	buckets map[string][]*entity.DocumentTaxBucket
	failOn  string // "create" | "line" | "bucket"
}

func newMemoryDocumentRepo() *memoryDocumentRepo {
	return &memoryDocumentRepo{
		docs:    map[string]*entity.Document{},
		lines:   map[string][]*entity.DocumentLine{},
		buckets: map[string][]*entity.DocumentTaxBucket{},
	}
}

var errRepo = errors.New("repo: fallo simulado")

func (r *memoryDocumentRepo) Create(_ context.Context, doc *entity.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn == "create" {
		return errRepo
	}
	r.docs[doc.ID] = doc
	return nil
}

func (r *memoryDocumentRepo) CreateLine(_ context.Context, line *entity.DocumentLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn == "line" {
		return errRepo
	}
	r.lines[line.DocumentID] = append(r.lines[line.DocumentID], line)
	return nil
}

func (r *memoryDocumentRepo) CreateTaxBucket(_ context.Context, bucket *entity.DocumentTaxBucket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn == "bucket" {
		return errRepo
	}
	r.buckets[bucket.DocumentID] = append(r.buckets[bucket.DocumentID], bucket)
	return nil
}

func (r *memoryDocumentRepo) GetByID(_ context.Context, id string) (*entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.docs[id], nil
}

func (r *memoryDocumentRepo) GetLinesByDocumentID(_ context.Context, documentID string) ([]*entity.DocumentLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lines[documentID], nil
}

func (r *memoryDocumentRepo) GetTaxBucketsByDocumentID(_ context.Context, documentID string) ([]*entity.DocumentTaxBucket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buckets[documentID], nil
}

// stagingTxRunner simula la transacción: escribe en un repo temporal y solo
// copia al repo real si fn no falla.
type stagingTxRunner struct {
	target *memoryDocumentRepo
}

func (t *stagingTxRunner) RunDocuments(ctx context.Context, fn func(repository.DocumentRepository) error) error {
	tx := newMemoryDocumentRepo()
	tx.failOn = t.target.failOn
	if err := fn(tx); err != nil {
		return err
	}
	t.target.mu.Lock()
	defer t.target.mu.Unlock()
	for id, d := range tx.docs {
		t.target.docs[id] = d
	}
	for id, l := range tx.lines {
		t.target.lines[id] = append(t.target.lines[id], l...)
	}
	for id, b := range tx.buckets {
		t.target.buckets[id] = append(t.target.buckets[id], b...)
	}
	return nil
}

// recordingMetrics guarda lo que reporta el caso de uso.
type recordingMetrics struct {
	mu          sync.Mutex
	modes       []string
	diagnostics map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{diagnostics: map[string]int{}}
}

func (m *recordingMetrics) ObserveCalculation(mode string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modes = append(m.modes, mode)
}

func (m *recordingMetrics) CountDiagnostic(issue string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.diagnostics[issue]++
}

// stubPDFGenerator devuelve bytes fijos o un error.
type stubPDFGenerator struct {
	err   error
	calls int
}

func (g *stubPDFGenerator) GenerateDocumentPDF(context.Context, *entity.Document, []*entity.DocumentLine, []*entity.DocumentTaxBucket) ([]byte, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.3 stub"), nil
}
