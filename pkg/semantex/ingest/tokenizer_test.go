package ingest

import (
	"strings"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	tok := NewTokenizer([]string{"the", "and"}, 3)

	tokens := tok.Tokenize("The quick brown fox and the lazy dog")

	for _, got := range tokens {
		if got == "the" || got == "and" {
			t.Errorf("stopword %q should be filtered", got)
		}
	}
	want := []string{"quick", "brown", "fox", "lazy", "dog"}
	if len(tokens) != len(want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizeCaseFolding(t *testing.T) {
	tok := NewTokenizer(nil, 3)

	for _, got := range tok.Tokenize("BERT Transformer GPT-4") {
		if got != strings.ToLower(got) {
			t.Errorf("token %q should be lowercased", got)
		}
	}
}

func TestTokenizeMinLength(t *testing.T) {
	tok := NewTokenizer(nil, 3)

	tokens := tok.Tokenize("an AI is no match for ML analysis")
	for _, got := range tokens {
		if len([]rune(got)) < 3 {
			t.Errorf("short token %q should be filtered", got)
		}
	}
}

func TestTokenizeCJKSingleRuneTokens(t *testing.T) {
	tok := NewTokenizer(nil, 3)

	tokens := tok.Tokenize("深度学习 deep learning")

	foundCJK := false
	for _, got := range tokens {
		if got == "深" || got == "度" {
			foundCJK = true
		}
	}
	if !foundCJK {
		t.Errorf("CJK runes should survive the length filter, got %v", tokens)
	}
}

func TestTokenizeHyphenatedCompounds(t *testing.T) {
	tok := NewTokenizer(nil, 3)

	tokens := tok.Tokenize("state-of-the-art -trimmed- normal")
	found := false
	for _, got := range tokens {
		if got == "state-of-the-art" {
			found = true
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("token %q keeps stray hyphens", got)
		}
	}
	if !found {
		t.Error("hyphenated compound should be preserved")
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tok := NewTokenizer(nil, 3)
	if got := tok.Tokenize(""); len(got) != 0 {
		t.Errorf("empty input should yield no tokens, got %v", got)
	}
	if got := tok.Tokenize("  \t\n  "); len(got) != 0 {
		t.Errorf("whitespace input should yield no tokens, got %v", got)
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("First point. Second point! Third point? 第四句。")
	if len(sentences) != 4 {
		t.Fatalf("expected 4 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[0] != "First point" {
		t.Errorf("sentence 0 = %q", sentences[0])
	}
	if sentences[3] != "第四句" {
		t.Errorf("sentence 3 = %q", sentences[3])
	}
}

func TestSplitSentencesEmpty(t *testing.T) {
	if got := SplitSentences(""); len(got) != 0 {
		t.Errorf("empty input should yield no sentences, got %v", got)
	}
}

func TestSentenceAt(t *testing.T) {
	text := "First point. Second point. First point."

	if got := SentenceAt(text, 0); got != "First point" {
		t.Errorf("SentenceAt(0) = %q", got)
	}
	if got := SentenceAt(text, strings.Index(text, "Second")); got != "Second point" {
		t.Errorf("SentenceAt(second) = %q", got)
	}
	// Repeated sentence: the offset decides the occurrence.
	if got := SentenceAt(text, strings.LastIndex(text, "First")); got != "First point" {
		t.Errorf("SentenceAt(last) = %q", got)
	}
	if got := SentenceAt(text, -1); got != "" {
		t.Errorf("SentenceAt(-1) = %q, want empty", got)
	}
	if got := SentenceAt(text, len(text)+5); got != "" {
		t.Errorf("SentenceAt(beyond) = %q, want empty", got)
	}
}

func TestFirstSentences(t *testing.T) {
	got := FirstSentences("One. Two. Three. Four.", 2)
	if got != "One. Two." {
		t.Errorf("FirstSentences = %q", got)
	}
	if got := FirstSentences("", 3); got != "" {
		t.Errorf("FirstSentences on empty = %q", got)
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"one two three", 3},
		{"hello, world!", 2},
		{"深度学习", 4},
		{"AI 与 machine learning", 4},
	}
	for _, tc := range cases {
		if got := WordCount(tc.text); got != tc.want {
			t.Errorf("WordCount(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}
