package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/semantex/semantex/pkg/semantex/store"
)

func TestSaveAndGetAnalysis(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	rec := store.AnalysisRecord{
		ID:         store.NewID(),
		Source:     "paper",
		CreatedAt:  time.Now(),
		Confidence: 0.7,
		Payload:    []byte(`{"ok":true}`),
	}
	if err := s.SaveAnalysis(ctx, rec); err != nil {
		t.Fatalf("SaveAnalysis: %v", err)
	}

	got, ok, err := s.GetAnalysis(ctx, rec.ID)
	if err != nil || !ok {
		t.Fatalf("GetAnalysis: ok=%v err=%v", ok, err)
	}
	if got.Source != "paper" || string(got.Payload) != `{"ok":true}` {
		t.Errorf("got %+v", got)
	}

	_, ok, err = s.GetAnalysis(ctx, "missing")
	if err != nil {
		t.Fatalf("GetAnalysis missing: %v", err)
	}
	if ok {
		t.Error("missing id should not be found")
	}
}

func TestGetAnalysisBySourceReturnsLatest(t *testing.T) {
	ctx := context.Background()
	s := New()

	first := store.AnalysisRecord{ID: store.NewID(), Source: "paper"}
	second := store.AnalysisRecord{ID: store.NewID(), Source: "paper", Confidence: 0.9}
	if err := s.SaveAnalysis(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveAnalysis(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.GetAnalysisBySource(ctx, "paper")
	if err != nil || !ok {
		t.Fatalf("GetAnalysisBySource: ok=%v err=%v", ok, err)
	}
	if got.ID != second.ID {
		t.Errorf("got %s, want the latest %s", got.ID, second.ID)
	}

	_, ok, _ = s.GetAnalysisBySource(ctx, "unseen")
	if ok {
		t.Error("unseen source should not be found")
	}
}

func TestListAnalysesNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()

	var ids []string
	for i := 0; i < 5; i++ {
		rec := store.AnalysisRecord{ID: store.NewID(), Source: "doc"}
		ids = append(ids, rec.ID)
		if err := s.SaveAnalysis(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	listed, err := s.ListAnalyses(ctx, 3)
	if err != nil {
		t.Fatalf("ListAnalyses: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 records, got %d", len(listed))
	}
	if listed[0].ID != ids[4] {
		t.Errorf("first listed = %s, want newest %s", listed[0].ID, ids[4])
	}
	for i := 1; i < len(listed); i++ {
		if listed[i-1].ID < listed[i].ID {
			t.Error("listing is not newest-first")
		}
	}
}

func TestCorrelationRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	rec := store.CorrelationRecord{
		ID:      store.NewID(),
		Sources: []string{"a", "b"},
		Payload: []byte("{}"),
	}
	if err := s.SaveCorrelation(ctx, rec); err != nil {
		t.Fatalf("SaveCorrelation: %v", err)
	}

	listed, err := s.ListCorrelations(ctx, 0)
	if err != nil {
		t.Fatalf("ListCorrelations: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != rec.ID {
		t.Errorf("listed = %v", listed)
	}
}

func TestSaveAnalysisIdempotentOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	rec := store.AnalysisRecord{ID: store.NewID(), Source: "doc"}
	for i := 0; i < 3; i++ {
		if err := s.SaveAnalysis(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	listed, err := s.ListAnalyses(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 {
		t.Errorf("re-saving the same id should not duplicate, got %d records", len(listed))
	}
}
