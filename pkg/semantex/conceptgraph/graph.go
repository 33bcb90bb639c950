// Package conceptgraph builds a node/edge graph over the top-ranked keywords
// of a document. Edges come from directional relationship patterns in the
// text, falling back to sentence-level co-occurrence, and are always stored
// symmetrically on both endpoints.
package conceptgraph

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/semantex/semantex/pkg/semantex/ingest"
	"github.com/semantex/semantex/pkg/semantex/keyword"
	"github.com/semantex/semantex/pkg/semantex/segment"
	"github.com/semantex/semantex/pkg/semantex/vocab"
)

// NodeKind is the closed set of concept node types.
type NodeKind string

const (
	NodePerson       NodeKind = "person"
	NodeOrganization NodeKind = "organization"
	NodeConcept      NodeKind = "concept"
	NodeMethod       NodeKind = "method"
	NodeTechnology   NodeKind = "technology"
	NodeLocation     NodeKind = "location"
)

// Mention records one whole-word occurrence of a concept in a section.
type Mention struct {
	SectionID  string
	Position   int
	Context    string
	Confidence float64
}

// Connection is one symmetric edge endpoint. If node A lists a connection to
// B, node B lists the mirror connection to A with identical kind, strength,
// and evidence.
type Connection struct {
	TargetID string
	Kind     vocab.RelationKind
	Strength float64
	Evidence []string
}

// Node is one concept in the graph, addressed by a stable string id.
type Node struct {
	ID          string
	Name        string
	Kind        NodeKind
	Importance  float64
	Connections []Connection
	Mentions    []Mention
	Definition  string
}

// Graph is the full concept graph. Nodes are stored in rank order; the index
// maps node ids to positions in Nodes.
type Graph struct {
	Nodes []Node
	index map[string]int
}

// NodeByID returns the node with the given id.
func (g *Graph) NodeByID(id string) (*Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return &g.Nodes[i], true
}

const (
	maxGraphKeywords   = 20
	maxMentionsPerNode = 5
	mentionWindow      = 50
	maxEvidenceLen     = 100
	cooccurThreshold   = 0.3
	mentionConfidence  = 0.8
)

// Builder constructs concept graphs.
type Builder struct{}

// NewBuilder creates a concept graph builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build creates the graph from the top keywords of a document. Fewer than
// two keywords yields a graph with no edges; zero keywords yields an empty
// graph.
func (b *Builder) Build(text string, sections []segment.Section, keywords []keyword.Keyword) Graph {
	if len(keywords) > maxGraphKeywords {
		keywords = keywords[:maxGraphKeywords]
	}

	graph := Graph{index: make(map[string]int, len(keywords))}
	for i, kw := range keywords {
		node := Node{
			ID:         fmt.Sprintf("node_%d", i+1),
			Name:       kw.Term,
			Kind:       nodeKind(kw.Category),
			Importance: kw.Relevance,
			Mentions:   findMentions(sections, kw.Term),
			Definition: findDefinition(text, kw.Term),
		}
		graph.index[node.ID] = len(graph.Nodes)
		graph.Nodes = append(graph.Nodes, node)
	}

	sentences := ingest.SplitSentences(text)
	for i := 0; i < len(graph.Nodes); i++ {
		for j := i + 1; j < len(graph.Nodes); j++ {
			kind, strength, evidence, ok := relate(sentences, graph.Nodes[i].Name, graph.Nodes[j].Name)
			if !ok {
				continue
			}
			// Symmetry is a design decision: insert the edge on both
			// endpoints explicitly.
			graph.Nodes[i].Connections = append(graph.Nodes[i].Connections, Connection{
				TargetID: graph.Nodes[j].ID,
				Kind:     kind,
				Strength: strength,
				Evidence: evidence,
			})
			graph.Nodes[j].Connections = append(graph.Nodes[j].Connections, Connection{
				TargetID: graph.Nodes[i].ID,
				Kind:     kind,
				Strength: strength,
				Evidence: evidence,
			})
		}
	}

	return graph
}

// nodeKind maps keyword categories to node types.
func nodeKind(c keyword.Category) NodeKind {
	switch c {
	case keyword.CategoryMethod:
		return NodeMethod
	case keyword.CategoryTechnique:
		return NodeTechnology
	case keyword.CategoryEntity:
		return NodeOrganization
	default: // concept, domain
		return NodeConcept
	}
}

// findMentions scans each section for whole-word occurrences of term,
// capturing up to maxMentionsPerNode with surrounding context.
func findMentions(sections []segment.Section, term string) []Mention {
	var mentions []Mention
	lowerTerm := strings.ToLower(term)

	for _, sec := range sections {
		if len(mentions) >= maxMentionsPerNode {
			break
		}
		lower := strings.ToLower(sec.Content)
		from := 0
		for len(mentions) < maxMentionsPerNode {
			i := strings.Index(lower[from:], lowerTerm)
			if i < 0 {
				break
			}
			at := from + i
			end := at + len(lowerTerm)
			if wholeWord(lower, at, end) {
				mentions = append(mentions, Mention{
					SectionID:  sec.ID,
					Position:   at,
					Context:    window(sec.Content, at, end, mentionWindow),
					Confidence: mentionConfidence,
				})
			}
			from = end
		}
	}
	return mentions
}

// wholeWord reports whether [start,end) is not flanked by letters or digits.
func wholeWord(s string, start, end int) bool {
	if start > 0 {
		r := previousRune(s, start)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(s) {
		r := []rune(s[end:])[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func previousRune(s string, at int) rune {
	runes := []rune(s[:at])
	return runes[len(runes)-1]
}

func window(text string, start, end, size int) string {
	lo := start - size
	if lo < 0 {
		lo = 0
	}
	for lo > 0 && text[lo]&0xC0 == 0x80 {
		lo--
	}
	hi := end + size
	if hi > len(text) {
		hi = len(text)
	}
	for hi < len(text) && text[hi]&0xC0 == 0x80 {
		hi++
	}
	return strings.TrimSpace(text[lo:hi])
}

// findDefinition looks for "<term> is/refers to/是指 ..." sentences; the
// first match wins.
func findDefinition(text, term string) string {
	lowerTerm := strings.ToLower(term)
	for _, sentence := range ingest.SplitSentences(text) {
		lower := strings.ToLower(sentence)
		i := strings.Index(lower, lowerTerm)
		if i < 0 {
			continue
		}
		after := lower[i+len(lowerTerm):]
		for _, marker := range vocab.DefinitionMarkers {
			at := strings.Index(after, marker)
			if at < 0 || at > 5 {
				continue
			}
			// Require the marker to sit right after the term, allowing
			// only whitespace between.
			if strings.TrimSpace(after[:at]) != "" {
				continue
			}
			return strings.TrimSpace(sentence)
		}
	}
	return ""
}

// relate decides the relationship between two terms. Directional patterns
// win over plain co-occurrence.
func relate(sentences []string, a, b string) (vocab.RelationKind, float64, []string, bool) {
	lowerA, lowerB := strings.ToLower(a), strings.ToLower(b)

	either, both := 0, 0
	var patternKind vocab.RelationKind
	var patternStrength float64
	var patternEvidence []string

	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		hasA := strings.Contains(lower, lowerA)
		hasB := strings.Contains(lower, lowerB)
		if hasA || hasB {
			either++
		}
		if !hasA || !hasB {
			continue
		}
		both++

		if patternEvidence == nil {
			if kind, strength, ok := matchPattern(lower, lowerA, lowerB); ok {
				patternKind = kind
				patternStrength = strength
				patternEvidence = []string{truncate(sentence, maxEvidenceLen)}
			}
		}
	}

	if patternEvidence != nil {
		return patternKind, patternStrength, patternEvidence, true
	}

	if either == 0 || both == 0 {
		return "", 0, nil, false
	}
	fraction := float64(both) / float64(either)
	if fraction <= cooccurThreshold {
		return "", 0, nil, false
	}
	return vocab.RelRelated, fraction, nil, true
}

// matchPattern tests the directional verb groups in table order, in both
// directions ("A causes B", "B causes A").
func matchPattern(sentence, a, b string) (vocab.RelationKind, float64, bool) {
	idxA := strings.Index(sentence, a)
	idxB := strings.Index(sentence, b)
	if idxA < 0 || idxB < 0 {
		return "", 0, false
	}
	lo, hi := idxA, idxB
	if lo > hi {
		lo, hi = hi, lo
	}
	between := sentence[lo:hi]

	for _, group := range vocab.RelationPatterns {
		for _, verb := range group.Verbs {
			if strings.Contains(between, verb) {
				return group.Kind, group.Strength, true
			}
		}
	}
	return "", 0, false
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// TopNodes returns up to n nodes by importance, for synthesis summaries.
func (g *Graph) TopNodes(n int) []Node {
	nodes := make([]Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Importance > nodes[j].Importance
	})
	if len(nodes) > n {
		nodes = nodes[:n]
	}
	return nodes
}
