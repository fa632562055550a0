package advisor

import (
	"strings"
	"testing"
)

func TestNormalizeLowercasesAndComposes(t *testing.T) {
	// "chào" with a decomposed grave accent (a + combining mark)
	decomposed := "CHào"
	if got := Normalize(decomposed); got != "chào" {
		t.Fatalf("expected composed lowercase form, got %q", got)
	}
}

func TestSanitizeStripsControlCharacters(t *testing.T) {
	in := "xin\x00 chào\a   bạn"
	got := Sanitize(in)
	if strings.ContainsRune(got, '\x00') || strings.ContainsRune(got, '\a') {
		t.Fatalf("control characters survived: %q", got)
	}
	if got != "xin chào bạn" {
		t.Fatalf("expected collapsed whitespace, got %q", got)
	}
}

func TestSanitizeBoundsLength(t *testing.T) {
	long := strings.Repeat("a", 2000)
	got := Sanitize(long)
	if len([]rune(got)) > 500 {
		t.Fatalf("expected truncation to 500 runes, got %d", len([]rune(got)))
	}
}
