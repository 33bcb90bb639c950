// Package semantex is the text-analytics and cross-source correlation
// engine facade. Analyze turns one document into sections, keywords, a
// concept graph, and layered summaries; Correlate aligns entities, merges
// timelines, compares perspectives, and scores credibility across a source
// set. Both are pure, deterministic, side-effect-free transformations;
// persisting results is the caller's concern.
package semantex

import (
	"fmt"

	"github.com/semantex/semantex/pkg/semantex/align"
	"github.com/semantex/semantex/pkg/semantex/conceptgraph"
	"github.com/semantex/semantex/pkg/semantex/correlate"
	"github.com/semantex/semantex/pkg/semantex/credibility"
	"github.com/semantex/semantex/pkg/semantex/ingest"
	"github.com/semantex/semantex/pkg/semantex/keyword"
	"github.com/semantex/semantex/pkg/semantex/perspective"
	"github.com/semantex/semantex/pkg/semantex/segment"
	"github.com/semantex/semantex/pkg/semantex/source"
	"github.com/semantex/semantex/pkg/semantex/summary"
	"github.com/semantex/semantex/pkg/semantex/timeline"
)

// ProcessingError is the only failure surfaced to callers. Stage-level
// degeneracies (no sections, no keywords) are valid empty results, not
// errors.
type ProcessingError struct {
	Stage string
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing failed in %s: %v", e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Engine composes the analytic stages. The zero-cost constructor wires the
// built-in bilingual vocabularies; use Options to swap components.
type Engine struct {
	segmenter  *segment.Segmenter
	extractor  *keyword.Extractor
	graphs     *conceptgraph.Builder
	summarizer *summary.Summarizer
	aligner    *align.Aligner
	integrator *timeline.Integrator
	comparator *perspective.Comparator
	assessor   *credibility.Assessor
}

// Options configures an Engine. Nil fields fall back to defaults.
type Options struct {
	Extractor *keyword.Extractor
}

// New creates an engine with the default components.
func New() *Engine {
	return NewWithOptions(Options{})
}

// NewWithOptions creates an engine, honoring any supplied components.
func NewWithOptions(opts Options) *Engine {
	extractor := opts.Extractor
	if extractor == nil {
		extractor = keyword.NewExtractor()
	}
	return &Engine{
		segmenter:  segment.NewSegmenter(),
		extractor:  extractor,
		graphs:     conceptgraph.NewBuilder(),
		summarizer: summary.NewSummarizer(),
		aligner:    align.NewAligner(),
		integrator: timeline.NewIntegrator(),
		comparator: perspective.NewComparator(),
		assessor:   credibility.NewAssessor(),
	}
}

// ProcessingStats counts what one analysis produced.
type ProcessingStats struct {
	Words    int
	Sections int
	Keywords int
	Concepts int
}

// AnalysisResult is the full single-document output.
type AnalysisResult struct {
	Source     string
	Sections   []segment.Section
	Keywords   []keyword.Keyword
	Graph      conceptgraph.Graph
	Summaries  summary.Layered
	Confidence float64
	Stats      ProcessingStats
}

// Analyze runs the single-document pipeline: segmentation, keyword
// extraction, concept graph construction, and layered summarization. Empty
// text yields empty structures and placeholder summaries, never an error;
// only unexpected failures surface as a ProcessingError.
func (e *Engine) Analyze(text, sourceLabel string) (result AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ProcessingError{Stage: "analyze", Err: fmt.Errorf("%v", r)}
		}
	}()

	sections := e.segmenter.Segment(text)
	keywords := e.extractor.Extract(text, sections)
	graph := e.graphs.Build(text, sections, keywords)
	summaries := e.summarizer.Summarize(text, sections, keywords)

	result = AnalysisResult{
		Source:     sourceLabel,
		Sections:   sections,
		Keywords:   keywords,
		Graph:      graph,
		Summaries:  summaries,
		Confidence: analysisConfidence(sections, len(keywords), len(graph.Nodes)),
		Stats: ProcessingStats{
			Words:    ingest.WordCount(text),
			Sections: len(sections),
			Keywords: len(keywords),
			Concepts: len(graph.Nodes),
		},
	}
	return result, nil
}

// analysisConfidence blends section confidence with keyword and concept
// yield. Zero counts are valid and simply score low.
func analysisConfidence(sections []segment.Section, keywords, concepts int) float64 {
	avgSection := 0.0
	if len(sections) > 0 {
		for _, sec := range sections {
			avgSection += sec.Confidence
		}
		avgSection /= float64(len(sections))
	}

	keywordSignal := float64(keywords) / 10.0
	if keywordSignal > 1 {
		keywordSignal = 1
	}
	conceptSignal := float64(concepts) / 5.0
	if conceptSignal > 1 {
		conceptSignal = 1
	}

	return 0.4*avgSection + 0.3*keywordSignal + 0.3*conceptSignal
}

// CorrelationResult is the full multi-source output.
type CorrelationResult struct {
	Entities     []align.Alignment
	Timeline     []timeline.Event
	Perspectives []perspective.Comparison
	Credibility  credibility.Assessment
	Matrix       []correlate.MatrixEntry
	Synthesis    correlate.Synthesis
	Confidence   float64
}

// Correlate runs the multi-source pipeline. Callers are expected to supply
// at least two sources; fewer yield a degenerate (mostly empty) result
// rather than an error, so an unvalidated call never crashes.
func (e *Engine) Correlate(docs []source.Doc) (result CorrelationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ProcessingError{Stage: "correlate", Err: fmt.Errorf("%v", r)}
		}
	}()

	entities := e.aligner.Align(docs)
	events := e.integrator.Integrate(docs)
	comparisons := e.comparator.Compare(docs)
	assessment := e.assessor.Assess(docs)
	matrix := correlate.Matrix(docs, entities)

	result = CorrelationResult{
		Entities:     entities,
		Timeline:     events,
		Perspectives: comparisons,
		Credibility:  assessment,
		Matrix:       matrix,
		Synthesis:    correlate.Synthesize(entities, events, comparisons, assessment),
		Confidence:   correlate.Confidence(entities, comparisons, assessment),
	}
	return result, nil
}
