// Package correlate computes the pairwise source correlation matrix and
// synthesizes the cross-source findings summary. Pair computations are
// independent, so the matrix is built with a parallel map and reassembled in
// lexicographic pair order to keep output deterministic.
package correlate

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/semantex/semantex/pkg/semantex/align"
	"github.com/semantex/semantex/pkg/semantex/credibility"
	"github.com/semantex/semantex/pkg/semantex/ingest"
	"github.com/semantex/semantex/pkg/semantex/perspective"
	"github.com/semantex/semantex/pkg/semantex/source"
	"github.com/semantex/semantex/pkg/semantex/timeline"
	"github.com/semantex/semantex/pkg/semantex/vocab"
)

// MatrixEntry correlates one unordered source pair. Source1 < Source2
// lexicographically.
type MatrixEntry struct {
	Source1        string
	Source2        string
	Similarity     float64
	CommonEntities []string
	Conflicts      []string
}

// Matrix computes the full pairwise correlation matrix. Entries come back
// sorted by (Source1, Source2) regardless of execution order.
func Matrix(docs []source.Doc, alignments []align.Alignment) []MatrixEntry {
	tokens := make([]map[string]struct{}, len(docs))
	tokenizer := ingest.NewTokenizer(vocab.Stopwords(), 3)
	for i, doc := range docs {
		set := make(map[string]struct{})
		for _, tok := range tokenizer.Tokenize(doc.Text) {
			set[tok] = struct{}{}
		}
		tokens[i] = set
	}

	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < len(docs); i++ {
		for j := i + 1; j < len(docs); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	entries := make([]MatrixEntry, len(pairs))
	var wg sync.WaitGroup
	for k, p := range pairs {
		wg.Add(1)
		go func(k int, p pair) {
			defer wg.Done()
			entries[k] = correlatePair(docs[p.i], docs[p.j], tokens[p.i], tokens[p.j], alignments)
		}(k, p)
	}
	wg.Wait()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Source1 != entries[j].Source1 {
			return entries[i].Source1 < entries[j].Source1
		}
		return entries[i].Source2 < entries[j].Source2
	})
	return entries
}

func correlatePair(a, b source.Doc, tokensA, tokensB map[string]struct{}, alignments []align.Alignment) MatrixEntry {
	s1, s2 := a.Name, b.Name
	if s1 > s2 {
		s1, s2 = s2, s1
	}
	return MatrixEntry{
		Source1:        s1,
		Source2:        s2,
		Similarity:     jaccard(tokensA, tokensB),
		CommonEntities: commonEntities(a.Name, b.Name, alignments),
		Conflicts:      findConflicts(a, b),
	}
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	common := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			common++
		}
	}
	union := len(a) + len(b) - common
	if union == 0 {
		return 0
	}
	return float64(common) / float64(union)
}

func commonEntities(a, b string, alignments []align.Alignment) []string {
	var names []string
	for _, alignment := range alignments {
		hasA, hasB := false, false
		for _, m := range alignment.Sources {
			if m.Source == a {
				hasA = true
			}
			if m.Source == b {
				hasB = true
			}
		}
		if hasA && hasB {
			names = append(names, alignment.MainName)
		}
	}
	return names
}

// findConflicts flags opposite-polarity vocabulary split across the pair.
func findConflicts(a, b source.Doc) []string {
	lowerA := strings.ToLower(a.Text)
	lowerB := strings.ToLower(b.Text)

	var conflicts []string
	for _, p := range vocab.ConflictPairs {
		if strings.Contains(lowerA, p.A) && strings.Contains(lowerB, p.B) &&
			!strings.Contains(lowerA, p.B) && !strings.Contains(lowerB, p.A) {
			conflicts = append(conflicts, fmt.Sprintf("%q reports %q while %q reports %q", a.Name, p.A, b.Name, p.B))
		} else if strings.Contains(lowerA, p.B) && strings.Contains(lowerB, p.A) &&
			!strings.Contains(lowerA, p.A) && !strings.Contains(lowerB, p.B) {
			conflicts = append(conflicts, fmt.Sprintf("%q reports %q while %q reports %q", a.Name, p.B, b.Name, p.A))
		}
	}
	return conflicts
}

// Synthesis is the human-readable digest of a correlation run.
type Synthesis struct {
	Content         string
	KeyFindings     []string
	Limitations     []string
	Recommendations []string
}

const (
	synthesisEntities     = 3
	synthesisEvents       = 3
	synthesisPerspectives = 2
)

// Synthesize combines the strongest entities, events, and perspectives into
// key findings, plus threshold-triggered limitations and fixed
// recommendations.
func Synthesize(alignments []align.Alignment, events []timeline.Event, comparisons []perspective.Comparison, assessment credibility.Assessment) Synthesis {
	var findings []string
	for i, alignment := range alignments {
		if i >= synthesisEntities {
			break
		}
		findings = append(findings, fmt.Sprintf("entity %q appears in %d sources (confidence %.2f)",
			alignment.MainName, len(alignment.Sources), alignment.Confidence))
	}
	for i, event := range events {
		if i >= synthesisEvents {
			break
		}
		findings = append(findings, fmt.Sprintf("%d: %s", event.Year, event.Title))
	}
	for i, comparison := range comparisons {
		if i >= synthesisPerspectives {
			break
		}
		findings = append(findings, comparison.Synthesis)
	}

	var limitations []string
	if assessment.Overall < 0.8 {
		limitations = append(limitations, fmt.Sprintf("overall credibility is %.2f; findings may need corroboration", assessment.Overall))
	}
	if len(alignments) < 3 {
		limitations = append(limitations, "few cross-source entities were aligned; coverage may be thin")
	}
	if len(comparisons) < 2 {
		limitations = append(limitations, "few shared topics were found; perspective comparison is limited")
	}

	recommendations := []string{
		"review key findings against the original sources before citing",
		"extend the source set to strengthen cross-validation",
	}

	content := strings.Join(findings, "\n")
	if content == "" {
		content = "No cross-source findings could be synthesized."
	}

	return Synthesis{
		Content:         content,
		KeyFindings:     findings,
		Limitations:     limitations,
		Recommendations: recommendations,
	}
}

// Confidence blends mean entity confidence, mean perspective confidence, and
// overall credibility into one score.
func Confidence(alignments []align.Alignment, comparisons []perspective.Comparison, assessment credibility.Assessment) float64 {
	meanEntity := 0.0
	if len(alignments) > 0 {
		for _, a := range alignments {
			meanEntity += a.Confidence
		}
		meanEntity /= float64(len(alignments))
	}

	meanPerspective := 0.0
	count := 0
	for _, c := range comparisons {
		for _, p := range c.Perspectives {
			meanPerspective += p.Confidence
			count++
		}
	}
	if count > 0 {
		meanPerspective /= float64(count)
	}

	return 0.3*meanEntity + 0.3*meanPerspective + 0.4*assessment.Overall
}
