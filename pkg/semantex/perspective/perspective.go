// Package perspective detects topics shared across sources, extracts each
// source's stance on them, and summarizes where the sources agree and
// disagree.
package perspective

import (
	"fmt"
	"sort"
	"strings"

	"github.com/semantex/semantex/pkg/semantex/ingest"
	"github.com/semantex/semantex/pkg/semantex/source"
	"github.com/semantex/semantex/pkg/semantex/vocab"
)

// Stance is the closed set of viewpoint classifications.
type Stance string

const (
	StancePositive Stance = "positive"
	StanceNegative Stance = "negative"
	StanceNeutral  Stance = "neutral"
	StanceMixed    Stance = "mixed"
)

// Perspective is one source's expressed viewpoint on a topic.
type Perspective struct {
	Source     string
	Viewpoint  string
	Evidence   []string
	Confidence float64
	Stance     Stance
}

// Consensus summarizes cross-source agreement on a topic.
type Consensus struct {
	Agreements    []string
	Disagreements []string
	Uncertainties []string
}

// Comparison is the full per-topic record. It is only materialized when at
// least two sources yield a perspective above the confidence floor.
type Comparison struct {
	Topic        string
	Perspectives []Perspective
	Consensus    Consensus
	Synthesis    string
}

const (
	maxTopics           = 10
	minTopicFrequency   = 3
	minTopicSources     = 2
	maxEvidence         = 2
	confidencePerHit    = 0.2
	maxConfidence       = 0.8
	minConfidence       = 0.3
	uncertainConfidence = 0.5
)

// Comparator builds perspective comparisons.
type Comparator struct {
	tokenizer *ingest.Tokenizer
}

// NewComparator creates a comparator using the built-in stopwords.
func NewComparator() *Comparator {
	return &Comparator{tokenizer: ingest.NewTokenizer(vocab.Stopwords(), 3)}
}

// Compare finds shared topics and extracts one perspective per source and
// topic, keeping topics with at least two confident perspectives.
func (c *Comparator) Compare(docs []source.Doc) []Comparison {
	topics := c.sharedTopics(docs)

	var comparisons []Comparison
	for _, topic := range topics {
		var perspectives []Perspective
		for _, doc := range docs {
			p, ok := extractPerspective(doc, topic)
			if !ok || p.Confidence <= minConfidence {
				continue
			}
			perspectives = append(perspectives, p)
		}
		if len(perspectives) < 2 {
			continue
		}
		comparisons = append(comparisons, Comparison{
			Topic:        topic,
			Perspectives: perspectives,
			Consensus:    buildConsensus(topic, perspectives),
			Synthesis:    synthesize(topic, perspectives),
		})
	}
	return comparisons
}

// sharedTopics returns up to maxTopics tokens with corpus frequency >= 3
// appearing in at least two distinct sources, most frequent first.
func (c *Comparator) sharedTopics(docs []source.Doc) []string {
	freq := make(map[string]int)
	sources := make(map[string]map[string]struct{})

	for _, doc := range docs {
		for _, tok := range c.tokenizer.Tokenize(doc.Text) {
			freq[tok]++
			if sources[tok] == nil {
				sources[tok] = make(map[string]struct{})
			}
			sources[tok][doc.Name] = struct{}{}
		}
	}

	var topics []string
	for tok, n := range freq {
		if n >= minTopicFrequency && len(sources[tok]) >= minTopicSources {
			topics = append(topics, tok)
		}
	}
	sort.Slice(topics, func(i, j int) bool {
		if freq[topics[i]] != freq[topics[j]] {
			return freq[topics[i]] > freq[topics[j]]
		}
		return topics[i] < topics[j]
	})
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}

// extractPerspective pulls the first topic-bearing sentence as the viewpoint
// and the following sentences as evidence. Confidence scales with how often
// the source returns to the topic.
func extractPerspective(doc source.Doc, topic string) (Perspective, bool) {
	sentences := ingest.SplitSentences(doc.Text)
	first := -1
	mentions := 0
	for i, sentence := range sentences {
		if strings.Contains(strings.ToLower(sentence), topic) {
			mentions++
			if first < 0 {
				first = i
			}
		}
	}
	if first < 0 {
		return Perspective{}, false
	}

	var evidence []string
	for i := first + 1; i < len(sentences) && len(evidence) < maxEvidence; i++ {
		evidence = append(evidence, sentences[i])
	}

	confidence := confidencePerHit * float64(mentions)
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	viewpoint := sentences[first]
	return Perspective{
		Source:     doc.Name,
		Viewpoint:  viewpoint,
		Evidence:   evidence,
		Confidence: confidence,
		Stance:     classifyStance(viewpoint),
	}, true
}

func classifyStance(viewpoint string) Stance {
	pos := vocab.CountPositive(viewpoint)
	neg := vocab.CountNegative(viewpoint)
	switch {
	case pos > neg:
		return StancePositive
	case neg > pos:
		return StanceNegative
	case pos > 0 && neg > 0:
		return StanceMixed
	default:
		return StanceNeutral
	}
}

func buildConsensus(topic string, perspectives []Perspective) Consensus {
	var consensus Consensus

	allSame := true
	for _, p := range perspectives[1:] {
		if p.Stance != perspectives[0].Stance {
			allSame = false
			break
		}
	}
	if allSame {
		consensus.Agreements = append(consensus.Agreements,
			fmt.Sprintf("all %d sources take a %s stance on %q", len(perspectives), perspectives[0].Stance, topic))
	} else {
		consensus.Disagreements = append(consensus.Disagreements,
			fmt.Sprintf("sources split on %q: %s", topic, stanceBreakdown(perspectives)))
	}

	for _, p := range perspectives {
		if p.Confidence < uncertainConfidence {
			consensus.Uncertainties = append(consensus.Uncertainties,
				fmt.Sprintf("%s offers only a weak signal on %q (confidence %.2f)", p.Source, topic, p.Confidence))
		}
	}
	return consensus
}

func synthesize(topic string, perspectives []Perspective) string {
	counts := make(map[Stance]int)
	for _, p := range perspectives {
		counts[p.Stance]++
	}
	majority := perspectives[0].Stance
	best := 0
	for _, stance := range []Stance{StancePositive, StanceNegative, StanceNeutral, StanceMixed} {
		if counts[stance] > best {
			majority, best = stance, counts[stance]
		}
	}
	return fmt.Sprintf("on %q the prevailing stance is %s across %d sources (%d distinct stances)",
		topic, majority, len(perspectives), len(counts))
}

func stanceBreakdown(perspectives []Perspective) string {
	counts := make(map[Stance]int)
	for _, p := range perspectives {
		counts[p.Stance]++
	}
	var parts []string
	for _, stance := range []Stance{StancePositive, StanceNegative, StanceNeutral, StanceMixed} {
		if counts[stance] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[stance], stance))
		}
	}
	return strings.Join(parts, ", ")
}
