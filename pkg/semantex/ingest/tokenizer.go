// Package ingest holds the shared text plumbing: tokenization, sentence
// splitting, and word counting. Every analytic stage builds on these so the
// whole pipeline agrees on what a token and a sentence are.
package ingest

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into normalized tokens. Latin-script words are
// case-folded and may keep internal hyphens; CJK characters are emitted as
// single-rune tokens.
type Tokenizer struct {
	stopwords map[string]struct{}
	minLen    int
}

// NewTokenizer creates a tokenizer with the given stopword list. Tokens
// shorter than minLen runes are dropped, except CJK tokens which are always
// single runes.
func NewTokenizer(stopwords []string, minLen int) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops, minLen: minLen}
}

// Tokenize splits text into normalized tokens, removing stopwords and
// too-short tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := cleanToken(current.String())
		current.Reset()
		if word == "" || len([]rune(word)) < t.minLen {
			return
		}
		if t.isStopword(word) {
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range text {
		switch {
		case IsCJK(r):
			flush()
			tok := string(r)
			if !t.isStopword(tok) {
				tokens = append(tokens, tok)
			}
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-':
			current.WriteRune(unicode.ToLower(r))
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// cleanToken strips leading/trailing hyphens and collapses doubled hyphens.
func cleanToken(token string) string {
	token = strings.Trim(token, "-")
	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}
	return token
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}

// IsCJK reports whether a rune is a CJK ideograph.
func IsCJK(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// WordCount counts words the way the scoring heuristics expect: one per
// Latin letter/digit run, one per CJK character.
func WordCount(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		switch {
		case IsCJK(r):
			if inWord {
				inWord = false
			}
			count++
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			if !inWord {
				count++
				inWord = true
			}
		default:
			inWord = false
		}
	}
	return count
}
