// Package store defines the result archive used by the front-end tools.
// The pipeline itself is stateless; archiving analyses and correlations is a
// caller concern, so the store lives beside the engine, not inside it.
package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// AnalysisRecord archives one single-document analysis. Payload is the
// JSON-encoded result.
type AnalysisRecord struct {
	ID         string
	Source     string
	CreatedAt  time.Time
	Confidence float64
	Payload    []byte
}

// CorrelationRecord archives one multi-source correlation run.
type CorrelationRecord struct {
	ID         string
	Sources    []string
	CreatedAt  time.Time
	Confidence float64
	Payload    []byte
}

// Store persists and queries archived results.
type Store interface {
	Close() error

	SaveAnalysis(ctx context.Context, rec AnalysisRecord) error
	GetAnalysis(ctx context.Context, id string) (AnalysisRecord, bool, error)
	GetAnalysisBySource(ctx context.Context, source string) (AnalysisRecord, bool, error)
	ListAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error)

	SaveCorrelation(ctx context.Context, rec CorrelationRecord) error
	ListCorrelations(ctx context.Context, limit int) ([]CorrelationRecord, error)
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a fresh ULID for a record.
func NewID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}
