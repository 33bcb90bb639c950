// Package keyword scores and categorizes terms in a document. TF-IDF is
// computed over a small document set (the full text plus each section), then
// blended with a shape-based semantic weight and a category weight into a
// single relevance score.
package keyword

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/semantex/semantex/pkg/semantex/ingest"
	"github.com/semantex/semantex/pkg/semantex/segment"
	"github.com/semantex/semantex/pkg/semantex/vocab"
)

// Category is the closed set of keyword categories.
type Category string

const (
	CategoryConcept   Category = "concept"
	CategoryMethod    Category = "method"
	CategoryEntity    Category = "entity"
	CategoryTechnique Category = "technique"
	CategoryDomain    Category = "domain"
)

// Keyword is one scored term.
type Keyword struct {
	Term           string
	Frequency      int
	TFIDF          float64
	SemanticWeight float64
	Category       Category
	Contexts       []string
	Relevance      float64
}

const (
	maxKeywords    = 50
	maxContexts    = 3
	minRelevance   = 0.1
	minTokenRunes  = 3
	contextWindow  = 40
	tfidfWeight    = 0.7
	semanticWeight = 0.3
)

// categoryWeights boost or dampen relevance by category.
var categoryWeights = map[Category]float64{
	CategoryConcept:   1.2,
	CategoryMethod:    1.1,
	CategoryTechnique: 1.0,
	CategoryEntity:    0.9,
	CategoryDomain:    0.8,
}

// Extractor extracts weighted keywords from a document.
type Extractor struct {
	tokenizer *ingest.Tokenizer
	stopwords map[string]struct{}
}

// NewExtractor creates an extractor using the built-in bilingual stopwords.
func NewExtractor() *Extractor {
	return NewExtractorWithStopwords(vocab.Stopwords())
}

// NewExtractorWithStopwords creates an extractor with a caller-supplied
// stopword list.
func NewExtractorWithStopwords(stopwords []string) *Extractor {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Extractor{
		tokenizer: ingest.NewTokenizer(stopwords, minTokenRunes),
		stopwords: stops,
	}
}

func (e *Extractor) isStop(word string) bool {
	_, ok := e.stopwords[word]
	return ok
}

// Extract scores terms in text. Sections feed the IDF document set; an empty
// section list still yields a keyword pass over the raw text.
func (e *Extractor) Extract(text string, sections []segment.Section) []Keyword {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	freq, surface := e.termFrequencies(text)
	if len(freq) == 0 {
		return nil
	}

	// Document set for IDF: the full text plus each section.
	docs := [][]string{e.tokenizer.Tokenize(text)}
	for _, sec := range sections {
		docs = append(docs, e.tokenizer.Tokenize(sec.Content))
	}
	df := documentFrequencies(docs)
	totalDocs := float64(len(docs))

	keywords := make([]Keyword, 0, len(freq))
	for term, n := range freq {
		idf := 0.0
		if d := df[term]; d > 0 {
			idf = math.Log(totalDocs / float64(d))
		}
		tfidf := float64(n) * idf

		form := surface[term]
		weight := shapeWeight(form)
		category := categorize(form)
		contexts := collectContexts(text, term, maxContexts)

		relevance := (tfidf*tfidfWeight + weight*semanticWeight) *
			categoryWeights[category] *
			(1 + 0.1*float64(len(contexts)))

		if relevance <= minRelevance {
			continue
		}
		keywords = append(keywords, Keyword{
			Term:           form,
			Frequency:      n,
			TFIDF:          tfidf,
			SemanticWeight: weight,
			Category:       category,
			Contexts:       contexts,
			Relevance:      relevance,
		})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Relevance == keywords[j].Relevance {
			return keywords[i].Term < keywords[j].Term
		}
		return keywords[i].Relevance > keywords[j].Relevance
	})
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

// termFrequencies counts case-folded terms over the full text, remembering
// the first surface form seen so categorization can inspect casing.
func (e *Extractor) termFrequencies(text string) (map[string]int, map[string]string) {
	freq := make(map[string]int)
	surface := make(map[string]string)

	for _, raw := range rawWords(text) {
		raw = strings.Trim(raw, "-")
		if raw == "" {
			continue
		}
		folded := strings.ToLower(raw)
		if !ingest.IsCJK([]rune(raw)[0]) && len([]rune(folded)) < minTokenRunes {
			continue
		}
		if e.isStop(folded) {
			continue
		}
		freq[folded]++
		if _, ok := surface[folded]; !ok {
			surface[folded] = raw
		}
	}
	return freq, surface
}

// rawWords splits text into case-preserving word runs; CJK runes are their
// own words.
func rawWords(text string) []string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range text {
		switch {
		case ingest.IsCJK(r):
			flush()
			words = append(words, string(r))
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-':
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return words
}

func documentFrequencies(docs [][]string) map[string]int {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			folded := strings.ToLower(tok)
			if _, ok := seen[folded]; ok {
				continue
			}
			seen[folded] = struct{}{}
			df[folded]++
		}
	}
	return df
}

// academicSuffixes mark abstract-noun shapes common in scholarly terms.
var academicSuffixes = []string{"tion", "sion", "ness", "ment", "ity", "ogy", "ism"}

// shapeWeight scores how "technical" a term looks from its surface form.
func shapeWeight(term string) float64 {
	weight := 0.0
	if isTechnicalShape(term) {
		weight += 0.3
	}
	if startsUpper(term) {
		weight += 0.2
	}
	if len([]rune(term)) > 6 {
		weight += 0.1
	}
	return weight
}

func isTechnicalShape(term string) bool {
	if isCamelCase(term) || strings.Contains(term, "-") || isAllCapsAbbrev(term) {
		return true
	}
	lower := strings.ToLower(term)
	for _, suffix := range academicSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

func isCamelCase(term string) bool {
	runes := []rune(term)
	if len(runes) < 2 || !unicode.IsLower(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func isAllCapsAbbrev(term string) bool {
	runes := []rune(term)
	if len(runes) < 2 || len(runes) > 6 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsUpper(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

func startsUpper(term string) bool {
	for _, r := range term {
		return unicode.IsUpper(r)
	}
	return false
}

// Category rule tables. Method and technique are matched on word stems,
// entity on casing, concept on academic suffixes; domain is the fallback.
var (
	methodMarkers    = []string{"method", "analysis", "algorithm", "approach", "procedure", "process", "方法", "算法", "分析"}
	techniqueMarkers = []string{"technique", "technology", "system", "model", "framework", "tool", "engine", "技术", "系统", "模型"}
)

func categorize(term string) Category {
	lower := strings.ToLower(term)
	for _, m := range methodMarkers {
		if strings.Contains(lower, m) {
			return CategoryMethod
		}
	}
	for _, m := range techniqueMarkers {
		if strings.Contains(lower, m) {
			return CategoryTechnique
		}
	}
	for _, suffix := range academicSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return CategoryConcept
		}
	}
	if startsUpper(term) || isAllCapsAbbrev(term) {
		return CategoryEntity
	}
	return CategoryDomain
}

// collectContexts gathers up to limit surrounding-text snippets for a term,
// matched case-insensitively against the full text.
func collectContexts(text, folded string, limit int) []string {
	lower := strings.ToLower(text)
	var contexts []string
	from := 0
	for len(contexts) < limit {
		i := strings.Index(lower[from:], folded)
		if i < 0 {
			break
		}
		at := from + i
		contexts = append(contexts, snippet(text, at, at+len(folded)))
		from = at + len(folded)
	}
	return contexts
}

// snippet cuts a ±contextWindow byte window around [start,end), snapped to
// rune boundaries.
func snippet(text string, start, end int) string {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	for lo > 0 && !utf8Start(text[lo]) {
		lo--
	}
	hi := end + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	for hi < len(text) && !utf8Start(text[hi]) {
		hi++
	}
	return strings.TrimSpace(text[lo:hi])
}

func utf8Start(b byte) bool {
	return b&0xC0 != 0x80
}
