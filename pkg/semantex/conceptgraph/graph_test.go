package conceptgraph

import (
	"fmt"
	"testing"

	"github.com/semantex/semantex/pkg/semantex/keyword"
	"github.com/semantex/semantex/pkg/semantex/segment"
	"github.com/semantex/semantex/pkg/semantex/vocab"
)

func kw(term string, category keyword.Category) keyword.Keyword {
	return keyword.Keyword{Term: term, Category: category, Relevance: 1.0}
}

func TestBuildDirectionalPattern(t *testing.T) {
	text := "Smoking causes cancer. Smoking is widespread in many regions."
	keywords := []keyword.Keyword{kw("smoking", keyword.CategoryDomain), kw("cancer", keyword.CategoryDomain)}

	graph := NewBuilder().Build(text, nil, keywords)
	if len(graph.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(graph.Nodes))
	}

	conns := graph.Nodes[0].Connections
	if len(conns) != 1 {
		t.Fatalf("expected 1 connection, got %d", len(conns))
	}
	if conns[0].Kind != vocab.RelCauses {
		t.Errorf("relation kind = %s, want causes", conns[0].Kind)
	}
	if conns[0].Strength != 0.8 {
		t.Errorf("relation strength = %f, want 0.8", conns[0].Strength)
	}
	if len(conns[0].Evidence) != 1 {
		t.Errorf("pattern edges should carry evidence, got %v", conns[0].Evidence)
	}
}

func TestBuildEdgesAreSymmetric(t *testing.T) {
	text := "Pressure influences temperature. Pressure rises daily. Temperature is logged."
	keywords := []keyword.Keyword{kw("pressure", keyword.CategoryDomain), kw("temperature", keyword.CategoryDomain)}

	graph := NewBuilder().Build(text, nil, keywords)

	for _, node := range graph.Nodes {
		for _, conn := range node.Connections {
			target, ok := graph.NodeByID(conn.TargetID)
			if !ok {
				t.Fatalf("connection targets unknown node %s", conn.TargetID)
			}
			mirrored := false
			for _, back := range target.Connections {
				if back.TargetID == node.ID && back.Kind == conn.Kind && back.Strength == conn.Strength {
					mirrored = true
				}
			}
			if !mirrored {
				t.Errorf("edge %s -> %s has no mirror", node.ID, conn.TargetID)
			}
		}
	}
}

func TestBuildCooccurrenceFallback(t *testing.T) {
	// No directional verb, but the terms share their only sentence.
	text := "Tea and ginger pair well."
	keywords := []keyword.Keyword{kw("tea", keyword.CategoryDomain), kw("ginger", keyword.CategoryDomain)}

	graph := NewBuilder().Build(text, nil, keywords)
	conns := graph.Nodes[0].Connections
	if len(conns) != 1 {
		t.Fatalf("expected a co-occurrence edge, got %d connections", len(conns))
	}
	if conns[0].Kind != vocab.RelRelated {
		t.Errorf("fallback kind = %s, want related", conns[0].Kind)
	}
	if conns[0].Strength <= 0.3 || conns[0].Strength > 1 {
		t.Errorf("fallback strength = %f, want in (0.3, 1]", conns[0].Strength)
	}
}

func TestBuildNoEdgeBelowThreshold(t *testing.T) {
	// One shared sentence out of many mentions keeps the fraction at or
	// below the co-occurrence threshold.
	text := "Salt is mined. Salt is cheap. Salt is white. Pepper is dark. Pepper is spicy. Pepper is costly. Salt and pepper differ."
	keywords := []keyword.Keyword{kw("salt", keyword.CategoryDomain), kw("pepper", keyword.CategoryDomain)}

	graph := NewBuilder().Build(text, nil, keywords)
	if n := len(graph.Nodes[0].Connections); n != 0 {
		t.Errorf("expected no edge at 1/7 co-occurrence, got %d", n)
	}
}

func TestBuildNodeKinds(t *testing.T) {
	keywords := []keyword.Keyword{
		kw("regression", keyword.CategoryMethod),
		kw("pipeline", keyword.CategoryTechnique),
		kw("NASA", keyword.CategoryEntity),
		kw("gravity", keyword.CategoryConcept),
	}
	graph := NewBuilder().Build("", nil, keywords)

	wants := []NodeKind{NodeMethod, NodeTechnology, NodeOrganization, NodeConcept}
	for i, want := range wants {
		if graph.Nodes[i].Kind != want {
			t.Errorf("node %d kind = %s, want %s", i, graph.Nodes[i].Kind, want)
		}
	}
}

func TestBuildMentionsAndDefinition(t *testing.T) {
	text := "Entropy is a measure of disorder. Entropy never decreases."
	sections := []segment.Section{{ID: "sec_1", Content: text}}
	keywords := []keyword.Keyword{kw("entropy", keyword.CategoryConcept)}

	graph := NewBuilder().Build(text, sections, keywords)
	node := graph.Nodes[0]

	if len(node.Mentions) != 2 {
		t.Fatalf("expected 2 mentions, got %d", len(node.Mentions))
	}
	if node.Mentions[0].SectionID != "sec_1" {
		t.Errorf("mention section = %s", node.Mentions[0].SectionID)
	}
	if node.Mentions[0].Confidence != 0.8 {
		t.Errorf("mention confidence = %f", node.Mentions[0].Confidence)
	}
	if node.Definition == "" {
		t.Error("expected a definition from the 'is a' marker")
	}
}

func TestBuildWholeWordMentions(t *testing.T) {
	sections := []segment.Section{{ID: "sec_1", Content: "The cart carts nothing. A cartel forms."}}
	keywords := []keyword.Keyword{kw("cart", keyword.CategoryDomain)}

	graph := NewBuilder().Build("", sections, keywords)
	if n := len(graph.Nodes[0].Mentions); n != 1 {
		t.Errorf("expected 1 whole-word mention, got %d", n)
	}
}

func TestBuildEmpty(t *testing.T) {
	graph := NewBuilder().Build("", nil, nil)
	if len(graph.Nodes) != 0 {
		t.Errorf("expected empty graph, got %d nodes", len(graph.Nodes))
	}
	if _, ok := graph.NodeByID("node_1"); ok {
		t.Error("lookup in empty graph should fail")
	}
}

func TestBuildCapsKeywords(t *testing.T) {
	var keywords []keyword.Keyword
	for i := 0; i < 30; i++ {
		keywords = append(keywords, kw(fmt.Sprintf("term%d", i), keyword.CategoryDomain))
	}
	graph := NewBuilder().Build("", nil, keywords)
	if len(graph.Nodes) != 20 {
		t.Errorf("expected cap at 20 nodes, got %d", len(graph.Nodes))
	}
}

func TestTopNodes(t *testing.T) {
	keywords := []keyword.Keyword{
		{Term: "minor", Category: keyword.CategoryDomain, Relevance: 0.2},
		{Term: "major", Category: keyword.CategoryDomain, Relevance: 0.9},
		{Term: "middling", Category: keyword.CategoryDomain, Relevance: 0.5},
	}
	graph := NewBuilder().Build("", nil, keywords)

	top := graph.TopNodes(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 top nodes, got %d", len(top))
	}
	if top[0].Name != "major" || top[1].Name != "middling" {
		t.Errorf("top nodes = %s, %s", top[0].Name, top[1].Name)
	}
	// Original order must be untouched.
	if graph.Nodes[0].Name != "minor" {
		t.Error("TopNodes mutated the graph ordering")
	}
}
