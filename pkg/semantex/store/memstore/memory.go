// Package memstore is an in-memory store.Store for tests and callers that
// do not need a durable archive.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/semantex/semantex/pkg/semantex/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu           sync.RWMutex
	analyses     map[string]store.AnalysisRecord
	bySource     map[string]string // source → latest analysis id
	correlations map[string]store.CorrelationRecord
	order        []string // analysis insertion order
	corrOrder    []string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		analyses:     make(map[string]store.AnalysisRecord),
		bySource:     make(map[string]string),
		correlations: make(map[string]store.CorrelationRecord),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveAnalysis archives one analysis, becoming the latest for its source.
func (s *Store) SaveAnalysis(ctx context.Context, rec store.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.analyses[rec.ID]; !ok {
		s.order = append(s.order, rec.ID)
	}
	s.analyses[rec.ID] = rec
	s.bySource[rec.Source] = rec.ID
	return nil
}

// GetAnalysis returns the record with the given id.
func (s *Store) GetAnalysis(ctx context.Context, id string) (store.AnalysisRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.analyses[id]
	return rec, ok, nil
}

// GetAnalysisBySource returns the latest record for a source label.
func (s *Store) GetAnalysisBySource(ctx context.Context, source string) (store.AnalysisRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.bySource[source]
	if !ok {
		return store.AnalysisRecord{}, false, nil
	}
	rec, ok := s.analyses[id]
	return rec, ok, nil
}

// ListAnalyses returns up to limit records, most recent first.
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]store.AnalysisRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	sort.Sort(sort.Reverse(sort.StringSlice(ids))) // ULIDs sort by time
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]store.AnalysisRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.analyses[id])
	}
	return out, nil
}

// SaveCorrelation archives one correlation run.
func (s *Store) SaveCorrelation(ctx context.Context, rec store.CorrelationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.correlations[rec.ID]; !ok {
		s.corrOrder = append(s.corrOrder, rec.ID)
	}
	s.correlations[rec.ID] = rec
	return nil
}

// ListCorrelations returns up to limit correlation records, most recent
// first.
func (s *Store) ListCorrelations(ctx context.Context, limit int) ([]store.CorrelationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.corrOrder))
	copy(ids, s.corrOrder)
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]store.CorrelationRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.correlations[id])
	}
	return out, nil
}
