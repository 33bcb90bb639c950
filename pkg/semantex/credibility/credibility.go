// Package credibility scores how trustworthy each source's content is and
// aggregates an overall confidence across the source set.
package credibility

import (
	"fmt"

	"github.com/semantex/semantex/pkg/semantex/source"
)

// Factors are the weighted components of the overall score. CitationCount,
// ExpertiseLevel, and Recency are fixed placeholder constants until richer
// signals are plumbed through from acquisition metadata.
type Factors struct {
	SourceReliability float64
	CitationCount     float64
	ExpertiseLevel    float64
	Recency           float64
	CrossValidation   float64
}

// SourceScore is one source's reliability with the reasoning behind it.
type SourceScore struct {
	Source      string
	Reliability float64
	Reasoning   string
}

// Assessment is the full credibility result.
type Assessment struct {
	Overall         float64
	Factors         Factors
	Breakdown       []SourceScore
	Recommendations []string
}

const (
	baseReliability    = 0.5
	academicBonus      = 0.3
	curatedBonus       = 0.25
	referenceBonus     = 0.15
	richContentBonus   = 0.1
	richContentLength  = 1000
	multiSourceXVal    = 0.8
	singleSourceXVal   = 0.4
	placeholderCite    = 0.7
	placeholderExpert  = 0.6
	placeholderRecency = 0.8
)

// factor weights; they sum to 1 so Overall stays in [0,1].
const (
	weightReliability = 0.3
	weightCitation    = 0.2
	weightExpertise   = 0.2
	weightRecency     = 0.15
	weightXVal        = 0.15
)

// Assessor scores source sets.
type Assessor struct{}

// NewAssessor creates a credibility assessor.
func NewAssessor() *Assessor {
	return &Assessor{}
}

// Assess scores each source and the overall set. An empty source set yields
// a zero-reliability assessment rather than an error.
func (a *Assessor) Assess(docs []source.Doc) Assessment {
	breakdown := make([]SourceScore, 0, len(docs))
	var sum float64
	for _, doc := range docs {
		score := scoreSource(doc)
		breakdown = append(breakdown, score)
		sum += score.Reliability
	}

	meanReliability := 0.0
	if len(docs) > 0 {
		meanReliability = sum / float64(len(docs))
	}

	crossValidation := singleSourceXVal
	if len(docs) >= 2 {
		crossValidation = multiSourceXVal
	}

	factors := Factors{
		SourceReliability: meanReliability,
		CitationCount:     placeholderCite,
		ExpertiseLevel:    placeholderExpert,
		Recency:           placeholderRecency,
		CrossValidation:   crossValidation,
	}

	overall := factors.SourceReliability*weightReliability +
		factors.CitationCount*weightCitation +
		factors.ExpertiseLevel*weightExpertise +
		factors.Recency*weightRecency +
		factors.CrossValidation*weightXVal

	return Assessment{
		Overall:         overall,
		Factors:         factors,
		Breakdown:       breakdown,
		Recommendations: recommendations(factors, breakdown),
	}
}

func scoreSource(doc source.Doc) SourceScore {
	reliability := baseReliability
	reasoning := "baseline reliability"

	switch source.KindOf(doc) {
	case source.KindAcademic:
		reliability += academicBonus
		reasoning = "peer-reviewed source"
	case source.KindCurated:
		reliability += curatedBonus
		reasoning = "curated knowledge network"
	case source.KindReference:
		reliability += referenceBonus
		reasoning = "general reference work"
	}

	if len(doc.Text) > richContentLength {
		reliability += richContentBonus
		reasoning += ", substantial content"
	}
	if reliability > 1.0 {
		reliability = 1.0
	}

	return SourceScore{
		Source:      doc.Name,
		Reliability: reliability,
		Reasoning:   reasoning,
	}
}

func recommendations(factors Factors, breakdown []SourceScore) []string {
	var recs []string
	if factors.SourceReliability < 0.7 {
		recs = append(recs, "corroborate findings with higher-reliability sources")
	}
	if factors.CrossValidation < 0.6 {
		recs = append(recs, "add at least one more independent source for cross-validation")
	}
	for _, score := range breakdown {
		if score.Reliability < 0.5 {
			recs = append(recs, fmt.Sprintf("treat claims sourced only from %q with caution", score.Source))
		}
	}
	return recs
}
