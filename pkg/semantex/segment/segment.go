// Package segment splits raw document text into an ordered, typed section
// hierarchy. Boundaries are detected per paragraph from heading vocabulary,
// ordinal markers, explicit heading markers, and short all-caps lines.
package segment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/semantex/semantex/pkg/semantex/ingest"
	"github.com/semantex/semantex/pkg/semantex/vocab"
)

// Section is one contiguous span of the input text. Sections are ordered,
// non-overlapping, and together cover the whole input.
type Section struct {
	ID          string
	Level       int
	Title       string
	Content     string
	Kind        vocab.SectionKind
	WordCount   int
	Confidence  float64
	StartOffset int
	EndOffset   int
}

// maxTitleLen caps section titles, in runes.
const maxTitleLen = 100

// Segmenter detects section boundaries and assembles sections.
type Segmenter struct{}

// NewSegmenter creates a section segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

var (
	arabicMarker      = regexp.MustCompile(`^(\d+(?:\.\d+)*)[.)、．]?\s+`)
	parenMarker       = regexp.MustCompile(`^[(（](\d+|[a-zA-Z]|[一二三四五六七八九十]+)[)）]\s*`)
	cjkNumeralMarker  = regexp.MustCompile(`^([一二三四五六七八九十百]+)[、.．:：]\s*`)
	letterEnumMarker  = regexp.MustCompile(`^([A-Za-z])[.)]\s+`)
	headingHashMarker = regexp.MustCompile(`^(#{1,6})\s+`)
)

// Segment splits text into sections. Empty or whitespace-only input yields
// no sections; downstream stages tolerate an empty list.
func (s *Segmenter) Segment(text string) []Section {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	paragraphs := splitParagraphs(text)

	var sections []Section
	open := func(title string, kind vocab.SectionKind, level, offset int) {
		sections = append(sections, Section{
			ID:          fmt.Sprintf("sec_%d", len(sections)+1),
			Level:       level,
			Title:       title,
			Kind:        kind,
			StartOffset: offset,
		})
	}
	appendContent := func(block string) {
		cur := &sections[len(sections)-1]
		if cur.Content != "" {
			cur.Content += "\n\n"
		}
		cur.Content += block
	}

	for _, p := range paragraphs {
		line, rest := firstLine(p.text)
		if b, ok := detectBoundary(line); ok {
			open(b.title, b.kind, b.level, p.offset)
			if strings.TrimSpace(rest) != "" {
				appendContent(strings.TrimSpace(rest))
			}
			continue
		}
		if len(sections) == 0 {
			// Leading prose before any heading gets an implicit section.
			open("Content", vocab.SectionOther, 1, p.offset)
		}
		appendContent(p.text)
	}

	// Close the spans: each section ends where the next begins, the first
	// stretches back to offset 0 so the spans partition the input.
	if len(sections) > 0 {
		sections[0].StartOffset = 0
		for i := range sections {
			if i+1 < len(sections) {
				sections[i].EndOffset = sections[i+1].StartOffset
			} else {
				sections[i].EndOffset = len(text)
			}
		}
	}

	for i := range sections {
		sections[i].WordCount = ingest.WordCount(sections[i].Content)
		sections[i].Confidence = sectionConfidence(sections[i])
	}

	return sections
}

// firstLine splits a paragraph at its first newline; the remainder is empty
// for single-line paragraphs.
func firstLine(s string) (string, string) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// boundary describes a detected section start.
type boundary struct {
	title string
	kind  vocab.SectionKind
	level int
}

func detectBoundary(line string) (boundary, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return boundary{}, false
	}

	if m := headingHashMarker.FindStringSubmatch(line); m != nil {
		title := truncateTitle(line[len(m[0]):])
		kind, _ := classifyHeading(title)
		return boundary{title: title, kind: kind, level: len(m[1])}, true
	}

	if m := cjkNumeralMarker.FindStringSubmatch(line); m != nil {
		title := truncateTitle(line[len(m[0]):])
		kind, _ := classifyHeading(title)
		return boundary{title: title, kind: kind, level: 1}, true
	}

	if m := parenMarker.FindStringSubmatch(line); m != nil {
		title := truncateTitle(line[len(m[0]):])
		kind, _ := classifyHeading(title)
		return boundary{title: title, kind: kind, level: 2}, true
	}

	if m := arabicMarker.FindStringSubmatch(line); m != nil {
		title := truncateTitle(line[len(m[0]):])
		kind, _ := classifyHeading(title)
		level := strings.Count(m[1], ".") + 1
		return boundary{title: title, kind: kind, level: level}, true
	}

	if m := letterEnumMarker.FindStringSubmatch(line); m != nil {
		title := truncateTitle(line[len(m[0]):])
		kind, _ := classifyHeading(title)
		return boundary{title: title, kind: kind, level: 1}, true
	}

	// Bare heading vocabulary ("Introduction", "摘要", "Results:")
	if kind, ok := classifyHeading(line); ok && len([]rune(line)) < 60 {
		return boundary{title: truncateTitle(line), kind: kind, level: 1}, true
	}

	if isShortAllCaps(line) {
		return boundary{title: truncateTitle(line), kind: vocab.SectionOther, level: 1}, true
	}

	return boundary{}, false
}

// classifyHeading maps a candidate heading line to a section kind via the
// bilingual heading vocabulary.
func classifyHeading(line string) (vocab.SectionKind, bool) {
	cleaned := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ":：.。"))
	if kind, ok := vocab.HeadingKind(cleaned); ok {
		return kind, true
	}
	if fields := strings.Fields(cleaned); len(fields) > 0 {
		if kind, ok := vocab.HeadingKind(fields[0]); ok {
			return kind, true
		}
	}
	// CJK headings carry no spaces; try short leading rune prefixes.
	runes := []rune(cleaned)
	for n := 4; n >= 2; n-- {
		if len(runes) >= n {
			if kind, ok := vocab.HeadingKind(string(runes[:n])); ok {
				return kind, true
			}
		}
	}
	return vocab.SectionOther, false
}

// isShortAllCaps reports whether a line reads as an unmarked heading:
// short, mostly uppercase letters, at least one letter.
func isShortAllCaps(line string) bool {
	runes := []rune(line)
	if len(runes) > 60 {
		return false
	}
	letters, uppers := 0, 0
	for _, r := range runes {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	return letters > 0 && float64(uppers) >= 0.8*float64(letters)
}

func truncateTitle(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	runes := []rune(s)
	if len(runes) > maxTitleLen {
		s = string(runes[:maxTitleLen])
	}
	return s
}

func sectionConfidence(sec Section) float64 {
	conf := 0.5
	if sec.Kind != vocab.SectionOther {
		conf += 0.2
	}
	if n := len([]rune(sec.Title)); n >= 4 && n < 50 {
		conf += 0.1
	}
	if sec.WordCount > 10 && sec.WordCount < 2000 {
		conf += 0.1
	}
	if strings.Contains(sec.Content, "\n") {
		conf += 0.1
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

// paragraph is a blank-line-delimited block with its byte offset in the
// original text.
type paragraph struct {
	text   string
	offset int
}

func splitParagraphs(text string) []paragraph {
	var paragraphs []paragraph
	start := -1 // start of current paragraph, -1 when between blocks
	lineStart := 0

	flush := func(end int) {
		if start < 0 {
			return
		}
		block := strings.TrimRight(text[start:end], "\n\r \t")
		if strings.TrimSpace(block) != "" {
			paragraphs = append(paragraphs, paragraph{text: block, offset: start})
		}
		start = -1
	}

	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			if strings.TrimSpace(text[lineStart:i]) == "" {
				flush(lineStart)
			} else if start < 0 {
				start = lineStart
			}
			lineStart = i + 1
		}
	}
	flush(len(text))

	return paragraphs
}
