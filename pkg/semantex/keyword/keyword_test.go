package keyword

import (
	"strings"
	"testing"

	"github.com/semantex/semantex/pkg/semantex/segment"
	"github.com/semantex/semantex/pkg/semantex/vocab"
)

const sampleText = "# Introduction\n\nThe transformer architecture enables semantic analysis. " +
	"BERT is a transformer trained on large corpora.\n\n" +
	"# Results\n\nClassification accuracy improved substantially. " +
	"The transformer dominates every benchmark we measured."

func extractSample(t *testing.T) []Keyword {
	t.Helper()
	sections := segment.NewSegmenter().Segment(sampleText)
	return NewExtractor().Extract(sampleText, sections)
}

func TestExtractScoredAndSorted(t *testing.T) {
	keywords := extractSample(t)
	if len(keywords) == 0 {
		t.Fatal("expected keywords")
	}
	if len(keywords) > 50 {
		t.Errorf("got %d keywords, want at most 50", len(keywords))
	}
	for i, kw := range keywords {
		if kw.Relevance <= 0.1 {
			t.Errorf("keyword %q has relevance %f below the floor", kw.Term, kw.Relevance)
		}
		if kw.Frequency < 1 {
			t.Errorf("keyword %q has frequency %d", kw.Term, kw.Frequency)
		}
		if i > 0 && keywords[i-1].Relevance < kw.Relevance {
			t.Errorf("keywords not sorted by relevance at %d", i)
		}
	}
}

func TestExtractFiltersStopwords(t *testing.T) {
	for _, kw := range extractSample(t) {
		if vocab.IsStop(strings.ToLower(kw.Term)) {
			t.Errorf("stopword %q survived extraction", kw.Term)
		}
	}
}

func TestExtractContexts(t *testing.T) {
	for _, kw := range extractSample(t) {
		if len(kw.Contexts) > 3 {
			t.Errorf("keyword %q has %d contexts, want at most 3", kw.Term, len(kw.Contexts))
		}
		for _, ctx := range kw.Contexts {
			if !strings.Contains(strings.ToLower(ctx), strings.ToLower(kw.Term)) {
				t.Errorf("context %q does not mention %q", ctx, kw.Term)
			}
		}
	}
}

func TestExtractKeepsSurfaceForm(t *testing.T) {
	found := false
	for _, kw := range extractSample(t) {
		if kw.Term == "BERT" {
			found = true
			if kw.Category != CategoryEntity {
				t.Errorf("BERT categorized as %s, want entity", kw.Category)
			}
		}
		if kw.Term == "bert" {
			t.Error("surface casing lost for BERT")
		}
	}
	if !found {
		t.Error("expected BERT among keywords")
	}
}

func TestExtractEmptyInput(t *testing.T) {
	if got := NewExtractor().Extract("", nil); got != nil {
		t.Errorf("empty input should yield no keywords, got %v", got)
	}
	if got := NewExtractor().Extract("the and of", nil); len(got) != 0 {
		t.Errorf("stopword-only input should yield no keywords, got %v", got)
	}
}

func TestExtractWithCustomStopwords(t *testing.T) {
	sections := segment.NewSegmenter().Segment(sampleText)
	keywords := NewExtractorWithStopwords(append(vocab.Stopwords(), "transformer")).Extract(sampleText, sections)
	for _, kw := range keywords {
		if strings.EqualFold(kw.Term, "transformer") {
			t.Error("custom stopword survived extraction")
		}
	}
}

func TestCategorize(t *testing.T) {
	cases := []struct {
		term string
		want Category
	}{
		{"algorithm", CategoryMethod},
		{"framework", CategoryTechnique},
		{"classification", CategoryConcept},
		{"BERT", CategoryEntity},
		{"Einstein", CategoryEntity},
		{"physics", CategoryDomain},
	}
	for _, tc := range cases {
		if got := categorize(tc.term); got != tc.want {
			t.Errorf("categorize(%q) = %s, want %s", tc.term, got, tc.want)
		}
	}
}

func TestShapeWeight(t *testing.T) {
	if got := shapeWeight("state-of-the-art"); got < 0.3 {
		t.Errorf("hyphenated term weight = %f, want >= 0.3", got)
	}
	if got := shapeWeight("API"); got < 0.5 {
		t.Errorf("abbreviation weight = %f, want >= 0.5", got)
	}
	if plain, technical := shapeWeight("cat"), shapeWeight("classification"); plain >= technical {
		t.Errorf("plain word %f should weigh less than technical %f", plain, technical)
	}
}
