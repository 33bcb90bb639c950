package perspective

import (
	"strings"
	"testing"

	"github.com/semantex/semantex/pkg/semantex/source"
)

func TestCompareDetectsDisagreement(t *testing.T) {
	docs := []source.Doc{
		{Name: "a", Text: "Nuclear power is effective and beneficial. It keeps emissions low. Nuclear plants run reliably."},
		{Name: "b", Text: "Nuclear power is dangerous and carries risk. Accidents harmed entire regions. Nuclear waste is a problem."},
	}

	comparisons := NewComparator().Compare(docs)
	if len(comparisons) != 1 {
		t.Fatalf("expected 1 comparison, got %d", len(comparisons))
	}

	cmp := comparisons[0]
	if cmp.Topic != "nuclear" {
		t.Errorf("topic = %q, want nuclear", cmp.Topic)
	}
	if len(cmp.Perspectives) != 2 {
		t.Fatalf("expected 2 perspectives, got %d", len(cmp.Perspectives))
	}
	if cmp.Perspectives[0].Stance != StancePositive {
		t.Errorf("source a stance = %s, want positive", cmp.Perspectives[0].Stance)
	}
	if cmp.Perspectives[1].Stance != StanceNegative {
		t.Errorf("source b stance = %s, want negative", cmp.Perspectives[1].Stance)
	}
	if len(cmp.Consensus.Disagreements) != 1 {
		t.Errorf("disagreements = %v, want exactly one", cmp.Consensus.Disagreements)
	}
	if len(cmp.Consensus.Agreements) != 0 {
		t.Errorf("unexpected agreements: %v", cmp.Consensus.Agreements)
	}
	if !strings.Contains(cmp.Synthesis, "nuclear") {
		t.Errorf("synthesis should name the topic: %q", cmp.Synthesis)
	}
}

func TestCompareDetectsAgreement(t *testing.T) {
	docs := []source.Doc{
		{Name: "a", Text: "Solar energy is beneficial today. Solar adoption keeps growing. Solar output doubled."},
		{Name: "b", Text: "Solar panels are effective devices. Solar costs keep falling. Solar supply expanded."},
	}

	comparisons := NewComparator().Compare(docs)
	if len(comparisons) == 0 {
		t.Fatal("expected at least one comparison")
	}

	var cmp *Comparison
	for i := range comparisons {
		if comparisons[i].Topic == "solar" {
			cmp = &comparisons[i]
		}
	}
	if cmp == nil {
		t.Fatalf("no comparison for solar, got %v", comparisons)
	}
	if len(cmp.Consensus.Agreements) != 1 {
		t.Errorf("agreements = %v, want exactly one", cmp.Consensus.Agreements)
	}
	if len(cmp.Consensus.Disagreements) != 0 {
		t.Errorf("unexpected disagreements: %v", cmp.Consensus.Disagreements)
	}
	if len(cmp.Consensus.Uncertainties) != 0 {
		t.Errorf("confident perspectives flagged uncertain: %v", cmp.Consensus.Uncertainties)
	}
}

func TestComparePerspectiveShape(t *testing.T) {
	docs := []source.Doc{
		{Name: "a", Text: "Nuclear power is effective and beneficial. It keeps emissions low. Nuclear plants run reliably."},
		{Name: "b", Text: "Nuclear power is dangerous and carries risk. Accidents harmed entire regions. Nuclear waste is a problem."},
	}

	comparisons := NewComparator().Compare(docs)
	if len(comparisons) != 1 {
		t.Fatalf("expected 1 comparison, got %d", len(comparisons))
	}

	for _, p := range comparisons[0].Perspectives {
		if p.Viewpoint == "" {
			t.Errorf("%s has empty viewpoint", p.Source)
		}
		if !strings.Contains(strings.ToLower(p.Viewpoint), "nuclear") {
			t.Errorf("%s viewpoint does not mention the topic: %q", p.Source, p.Viewpoint)
		}
		if len(p.Evidence) > 2 {
			t.Errorf("%s evidence = %d sentences, want at most 2", p.Source, len(p.Evidence))
		}
		if p.Confidence <= 0.3 || p.Confidence > 0.8 {
			t.Errorf("%s confidence = %f, want in (0.3, 0.8]", p.Source, p.Confidence)
		}
	}
}

func TestCompareSingleSourceTopicSkipped(t *testing.T) {
	docs := []source.Doc{
		{Name: "a", Text: "Quantum computers excite researchers. Quantum advantage nears. Quantum hardware improves."},
		{Name: "b", Text: "Classical chips still dominate the market entirely."},
	}

	if got := NewComparator().Compare(docs); len(got) != 0 {
		t.Errorf("topic held by one source should be skipped, got %v", got)
	}
}

func TestCompareEmptyInput(t *testing.T) {
	if got := NewComparator().Compare(nil); len(got) != 0 {
		t.Errorf("no docs should yield no comparisons, got %v", got)
	}
}

func TestClassifyStance(t *testing.T) {
	cases := []struct {
		viewpoint string
		want      Stance
	}{
		{"The rollout was successful and beneficial", StancePositive},
		{"The rollout failed and caused harmful outcomes", StanceNegative},
		{"The sky is blue", StanceNeutral},
	}
	for _, tc := range cases {
		if got := classifyStance(tc.viewpoint); got != tc.want {
			t.Errorf("classifyStance(%q) = %s, want %s", tc.viewpoint, got, tc.want)
		}
	}
}
