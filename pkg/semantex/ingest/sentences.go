package ingest

import (
	"strings"
	"unicode/utf8"
)

// sentence terminators, Latin and CJK
const terminators = ".!?;。！？；"

// SplitSentences splits text into trimmed, non-empty sentences. Terminator
// runes are consumed; no attempt is made to special-case abbreviations,
// which the downstream heuristics tolerate.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		if strings.ContainsRune(terminators, r) {
			s := strings.TrimSpace(current.String())
			current.Reset()
			if s != "" {
				sentences = append(sentences, s)
			}
			continue
		}
		current.WriteRune(r)
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// SentenceAt returns the trimmed sentence containing byte offset at, or ""
// when the offset falls on a terminator or outside the text. Offsets are
// tracked during the scan, so repeated sentences resolve to the right
// occurrence.
func SentenceAt(text string, at int) string {
	if at < 0 || at >= len(text) {
		return ""
	}
	start := 0
	for i, r := range text {
		if strings.ContainsRune(terminators, r) {
			if at >= start && at < i {
				return strings.TrimSpace(text[start:i])
			}
			start = i + utf8.RuneLen(r)
		}
	}
	if at >= start {
		return strings.TrimSpace(text[start:])
	}
	return ""
}

// FirstSentences returns up to n leading sentences of text joined with a
// period separator.
func FirstSentences(text string, n int) string {
	sentences := SplitSentences(text)
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	if len(sentences) == 0 {
		return ""
	}
	return strings.Join(sentences, ". ") + "."
}
