// Package summary produces tiered extractive summaries: a short basic tier,
// a section-aware professional tier, and an academic tier with methodology,
// findings, and limitations.
package summary

import (
	"math"
	"strings"
	"unicode"

	"github.com/semantex/semantex/pkg/semantex/ingest"
	"github.com/semantex/semantex/pkg/semantex/keyword"
	"github.com/semantex/semantex/pkg/semantex/segment"
	"github.com/semantex/semantex/pkg/semantex/vocab"
)

// Placeholder is returned as tier content when nothing could be extracted.
// Degenerate input degrades to this rather than failing.
const Placeholder = "No summary could be generated from the available content."

// Basic is the shortest tier, aimed at a general reader.
type Basic struct {
	Content            string
	KeyPoints          []string
	ReadingTimeMinutes int
}

// Professional adds section structure and technical terms.
type Professional struct {
	Content            string
	KeyPoints          []string
	TechnicalTerms     []string
	ReadingTimeMinutes int
}

// Academic is the densest tier, with methodology, findings, and limitations
// pulled out separately.
type Academic struct {
	Content            string
	KeyPoints          []string
	Methodology        string
	Findings           []string
	Limitations        []string
	ReadingTimeMinutes int
}

// Layered bundles all three tiers.
type Layered struct {
	Basic        Basic
	Professional Professional
	Academic     Academic
}

const (
	maxKeywordsUsed     = 10
	basicMaxLen         = 300
	basicMinLen         = 100
	maxTechnicalTerms   = 8
	maxFindings         = 3
	maxLimitations      = 3
	minAcademicWords    = 50
	wordsPerMinBasic    = 200
	wordsPerMinPro      = 180
	wordsPerMinAcademic = 150
)

// Summarizer builds layered summaries.
type Summarizer struct{}

// NewSummarizer creates a summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize builds all three tiers from the text, its sections, and the
// top-ranked keywords.
func (s *Summarizer) Summarize(text string, sections []segment.Section, keywords []keyword.Keyword) Layered {
	if len(keywords) > maxKeywordsUsed {
		keywords = keywords[:maxKeywordsUsed]
	}
	terms := keywordTerms(keywords)

	return Layered{
		Basic:        s.basic(sections, terms),
		Professional: s.professional(sections, keywords, terms),
		Academic:     s.academic(text, sections),
	}
}

func (s *Summarizer) basic(sections []segment.Section, terms []string) Basic {
	var parts []string
	picked := 0
	for _, sec := range sections {
		if picked >= 3 {
			break
		}
		switch sec.Kind {
		case vocab.SectionIntroduction, vocab.SectionConclusion, vocab.SectionOther:
		default:
			continue
		}
		selected := selectSentences(sec.Content, terms, 2)
		if len(selected) == 0 {
			continue
		}
		parts = append(parts, strings.Join(selected, ". ")+".")
		picked++
	}

	content := strings.Join(parts, " ")
	if len([]rune(content)) < basicMinLen && len(sections) > 0 {
		content = ingest.FirstSentences(sections[0].Content, 3)
	}
	content = clip(content, basicMaxLen)
	if content == "" {
		content = Placeholder
	}

	points := terms
	if len(points) > 3 {
		points = points[:3]
	}

	return Basic{
		Content:            content,
		KeyPoints:          points,
		ReadingTimeMinutes: readingTime(content, wordsPerMinBasic),
	}
}

func (s *Summarizer) professional(sections []segment.Section, keywords []keyword.Keyword, terms []string) Professional {
	var parts []string
	var points []string
	for _, sec := range sections {
		switch sec.Kind {
		case vocab.SectionIntroduction, vocab.SectionMethodology, vocab.SectionResults, vocab.SectionDiscussion:
		default:
			continue
		}
		selected := selectSentences(sec.Content, terms, 3)
		if len(selected) == 0 {
			continue
		}
		parts = append(parts, sec.Title+": "+strings.Join(selected, ". ")+".")
		if len(points) < 5 {
			points = append(points, selected[0])
		}
	}

	content := strings.Join(parts, "\n\n")
	if content == "" {
		content = Placeholder
	}

	var technical []string
	for _, kw := range keywords {
		if len(technical) >= maxTechnicalTerms {
			break
		}
		if startsUpper(kw.Term) || len([]rune(kw.Term)) > 6 {
			technical = append(technical, kw.Term)
		}
	}

	return Professional{
		Content:            content,
		KeyPoints:          points,
		TechnicalTerms:     technical,
		ReadingTimeMinutes: readingTime(content, wordsPerMinPro),
	}
}

func (s *Summarizer) academic(text string, sections []segment.Section) Academic {
	var parts []string
	var points []string
	var methodology string
	var findings []string

	for _, sec := range sections {
		if sec.Kind == vocab.SectionOther && sec.WordCount < minAcademicWords {
			continue
		}
		sentences := ingest.SplitSentences(sec.Content)
		take := sentences
		if len(take) > 4 {
			take = take[:4]
		}
		if len(take) == 0 {
			continue
		}
		parts = append(parts, sec.Title+": "+strings.Join(take, ". ")+".")
		if sec.Kind != vocab.SectionOther {
			points = append(points, sec.Title)
		}

		if sec.Kind == vocab.SectionMethodology && methodology == "" {
			methodology = ingest.FirstSentences(sec.Content, 4)
		}
		if sec.Kind == vocab.SectionResults {
			for _, sent := range sentences {
				if len(findings) >= maxFindings {
					break
				}
				findings = append(findings, sent)
			}
		}
	}

	var limitations []string
	for _, sent := range ingest.SplitSentences(text) {
		if len(limitations) >= maxLimitations {
			break
		}
		if vocab.HasLimitation(sent) {
			limitations = append(limitations, sent)
		}
	}

	content := strings.Join(parts, "\n\n")
	if content == "" {
		content = Placeholder
	}

	return Academic{
		Content:            content,
		KeyPoints:          points,
		Methodology:        methodology,
		Findings:           findings,
		Limitations:        limitations,
		ReadingTimeMinutes: readingTime(content, wordsPerMinAcademic),
	}
}

// selectSentences keeps up to limit sentences containing any of the terms,
// in document order.
func selectSentences(content string, terms []string, limit int) []string {
	var selected []string
	for _, sentence := range ingest.SplitSentences(content) {
		if len(selected) >= limit {
			break
		}
		lower := strings.ToLower(sentence)
		for _, term := range terms {
			if strings.Contains(lower, strings.ToLower(term)) {
				selected = append(selected, sentence)
				break
			}
		}
	}
	return selected
}

func keywordTerms(keywords []keyword.Keyword) []string {
	terms := make([]string, len(keywords))
	for i, kw := range keywords {
		terms[i] = kw.Term
	}
	return terms
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

func readingTime(content string, wordsPerMinute int) int {
	words := ingest.WordCount(content)
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / float64(wordsPerMinute)))
}
