// Package align normalizes entity mentions across sources and merges those
// observed in at least two distinct sources into one alignment record.
package align

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/semantex/semantex/pkg/semantex/ingest"
	"github.com/semantex/semantex/pkg/semantex/source"
	"github.com/semantex/semantex/pkg/semantex/vocab"
)

// EntityKind is the closed set of aligned entity types.
type EntityKind string

const (
	EntityPerson  EntityKind = "person"
	EntityConcept EntityKind = "concept"
)

// SourceMention is one surfaced occurrence of an entity in one source.
type SourceMention struct {
	Source     string
	Name       string
	Confidence float64
	Context    string
}

// MergedInfo carries information pooled across the entity's sources.
type MergedInfo struct {
	Definition    string
	KeyAttributes []string
	Relationships []string
}

// Alignment is one cross-source entity. Invariant: Sources always lists at
// least two distinct source names.
type Alignment struct {
	ID         string
	MainName   string
	Aliases    []string
	Sources    []SourceMention
	Kind       EntityKind
	Confidence float64
	Merged     MergedInfo
}

const (
	personConfidence  = 0.7
	conceptConfidence = 0.6
	contextWindow     = 60
	maxAttributes     = 3
	maxRelationships  = 3
)

var (
	latinPersonPattern  = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
	latinConceptPattern = regexp.MustCompile(`\b[A-Z][A-Za-z0-9-]{2,}\b`)
	cjkRunPattern       = regexp.MustCompile(`\p{Han}{2,8}`)
)

// Aligner extracts and merges entity mentions.
type Aligner struct{}

// NewAligner creates an entity aligner.
func NewAligner() *Aligner {
	return &Aligner{}
}

// candidate is one raw mention before merging.
type candidate struct {
	source     string
	name       string
	kind       EntityKind
	confidence float64
	context    string
}

// Align extracts candidates from every source and merges those whose
// normalized name occurs in two or more distinct sources.
func (a *Aligner) Align(docs []source.Doc) []Alignment {
	groups := make(map[string][]candidate)
	var keys []string

	for _, doc := range docs {
		for _, c := range extractCandidates(doc) {
			key := normalizeName(c.name)
			if key == "" {
				continue
			}
			if _, seen := groups[key]; !seen {
				keys = append(keys, key)
			}
			groups[key] = append(groups[key], c)
		}
	}

	var alignments []Alignment
	for _, key := range keys {
		group := groups[key]
		distinct := distinctSources(group)
		if len(distinct) < 2 {
			continue
		}
		alignments = append(alignments, buildAlignment(group, docs))
	}

	// Strongest alignments first; name breaks ties for stable output.
	sort.SliceStable(alignments, func(i, j int) bool {
		if len(alignments[i].Sources) != len(alignments[j].Sources) {
			return len(alignments[i].Sources) > len(alignments[j].Sources)
		}
		return alignments[i].MainName < alignments[j].MainName
	})
	for i := range alignments {
		alignments[i].ID = fmt.Sprintf("ent_%d", i+1)
	}

	fillRelationships(alignments)
	return alignments
}

func extractCandidates(doc source.Doc) []candidate {
	var out []candidate

	for _, loc := range latinPersonPattern.FindAllStringIndex(doc.Text, -1) {
		name := doc.Text[loc[0]:loc[1]]
		if hasStopword(name) {
			continue
		}
		out = append(out, candidate{
			source:     doc.Name,
			name:       name,
			kind:       EntityPerson,
			confidence: personConfidence,
			context:    window(doc.Text, loc[0], loc[1]),
		})
	}

	for _, loc := range cjkRunPattern.FindAllStringIndex(doc.Text, -1) {
		name := doc.Text[loc[0]:loc[1]]
		runes := []rune(name)
		if vocab.IsStop(name) {
			continue
		}
		switch {
		case len(runes) >= 3 && looksTechnical(name):
			out = append(out, candidate{
				source:     doc.Name,
				name:       name,
				kind:       EntityConcept,
				confidence: conceptConfidence,
				context:    window(doc.Text, loc[0], loc[1]),
			})
		case len(runes) <= 4:
			out = append(out, candidate{
				source:     doc.Name,
				name:       name,
				kind:       EntityPerson,
				confidence: personConfidence,
				context:    window(doc.Text, loc[0], loc[1]),
			})
		}
	}

	for _, loc := range latinConceptPattern.FindAllStringIndex(doc.Text, -1) {
		name := doc.Text[loc[0]:loc[1]]
		runes := []rune(name)
		if len(runes) < 3 || len(runes) > 8 {
			continue
		}
		if hasStopword(name) || !looksTechnical(name) {
			continue
		}
		out = append(out, candidate{
			source:     doc.Name,
			name:       name,
			kind:       EntityConcept,
			confidence: conceptConfidence,
			context:    window(doc.Text, loc[0], loc[1]),
		})
	}

	return out
}

// looksTechnical is the shape heuristic gating concept candidates: all-caps
// abbreviations, digit-bearing names, hyphenated compounds, or academic
// suffixes qualify.
func looksTechnical(name string) bool {
	runes := []rune(name)
	hasDigit, allUpper := false, true
	for _, r := range runes {
		if unicode.IsDigit(r) {
			hasDigit = true
		}
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			allUpper = false
		}
	}
	if hasDigit || strings.ContainsRune(name, '-') {
		return true
	}
	if allUpper && len(runes) >= 2 && len(runes) <= 8 {
		return true
	}
	lower := strings.ToLower(name)
	for _, suffix := range []string{"tion", "ology", "system", "network", "理论", "系统", "技术", "方法"} {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// normalizeName is the merge key: case-folded, punctuation stripped,
// whitespace collapsed.
func normalizeName(name string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) && !lastSpace:
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func hasStopword(name string) bool {
	for _, w := range strings.Fields(strings.ToLower(name)) {
		if vocab.IsStop(w) {
			return true
		}
	}
	return false
}

func distinctSources(group []candidate) map[string]struct{} {
	set := make(map[string]struct{})
	for _, c := range group {
		set[c.source] = struct{}{}
	}
	return set
}

func buildAlignment(group []candidate, docs []source.Doc) Alignment {
	nameCount := make(map[string]int)
	kindCount := make(map[EntityKind]int)
	aliasSet := make(map[string]struct{})
	var mentions []SourceMention
	var confSum float64

	for _, c := range group {
		nameCount[c.name]++
		kindCount[c.kind]++
		aliasSet[c.name] = struct{}{}
		confSum += c.confidence
		mentions = append(mentions, SourceMention{
			Source:     c.source,
			Name:       c.name,
			Confidence: c.confidence,
			Context:    c.context,
		})
	}

	mainName := ""
	best := 0
	for name, n := range nameCount {
		if n > best || (n == best && name < mainName) || mainName == "" {
			mainName, best = name, n
		}
	}

	kind := EntityConcept
	if kindCount[EntityPerson] > kindCount[EntityConcept] {
		kind = EntityPerson
	}

	aliases := make([]string, 0, len(aliasSet))
	for alias := range aliasSet {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	var attributes []string
	for _, m := range mentions {
		if len(attributes) >= maxAttributes {
			break
		}
		attributes = append(attributes, m.Context)
	}

	return Alignment{
		MainName:   mainName,
		Aliases:    aliases,
		Sources:    mentions,
		Kind:       kind,
		Confidence: confSum / float64(len(group)),
		Merged: MergedInfo{
			Definition:    findDefinition(docs, mainName),
			KeyAttributes: attributes,
		},
	}
}

// findDefinition scans all source texts for a definition-marker sentence
// about the entity; first hit wins.
func findDefinition(docs []source.Doc, name string) string {
	lowerName := strings.ToLower(name)
	for _, doc := range docs {
		for _, sentence := range ingest.SplitSentences(doc.Text) {
			lower := strings.ToLower(sentence)
			i := strings.Index(lower, lowerName)
			if i < 0 {
				continue
			}
			after := lower[i+len(lowerName):]
			for _, marker := range vocab.DefinitionMarkers {
				at := strings.Index(after, marker)
				if at >= 0 && at <= 5 && strings.TrimSpace(after[:at]) == "" {
					return strings.TrimSpace(sentence)
				}
			}
		}
	}
	return ""
}

// fillRelationships links alignments whose contexts mention each other.
func fillRelationships(alignments []Alignment) {
	for i := range alignments {
		var related []string
		for j := range alignments {
			if i == j || len(related) >= maxRelationships {
				continue
			}
			other := strings.ToLower(alignments[j].MainName)
			for _, m := range alignments[i].Sources {
				if strings.Contains(strings.ToLower(m.Context), other) {
					related = append(related, alignments[j].MainName)
					break
				}
			}
		}
		alignments[i].Merged.Relationships = related
	}
}

func window(text string, start, end int) string {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	for lo > 0 && text[lo]&0xC0 == 0x80 {
		lo--
	}
	hi := end + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	for hi < len(text) && text[hi]&0xC0 == 0x80 {
		hi++
	}
	return strings.TrimSpace(text[lo:hi])
}
