package filter

import (
	"math"
	"testing"

	"github.com/textwarden/obscenity-backend/internal/domain"
)

func TestSimilarity_Bounds(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"banan", "banan0"},
		{"banan", "bunan"},
		{"a", "completely different"},
		{"grusha", "granat"},
		{"x", "x"},
	}

	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestSimilarity_Identity(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"banan", "a", "agent007", "pivo"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestSimilarity_Empty(t *testing.T) {
	t.Parallel()

	if got := Similarity("", "banan"); got != 0 {
		t.Errorf("Similarity(\"\", x) = %v, want 0", got)
	}
	if got := Similarity("banan", ""); got != 0 {
		t.Errorf("Similarity(x, \"\") = %v, want 0", got)
	}
	if got := Similarity("", ""); got != 0 {
		t.Errorf("Similarity(\"\", \"\") = %v, want 0", got)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"banan", "banan0"},
		{"banan", "bunan"},
		{"yabloko", "yabl0ki"},
	}

	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarity_KnownScores(t *testing.T) {
	t.Parallel()

	// "banan" trigrams: {"  b", " ba", "ban", "ana", "nan", "an "} — 6 total.
	// "banano" shares 5 of them and adds "ano", "no ": 5/8.
	if got, want := Similarity("banan", "banano"), 5.0/8.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Similarity(banan, banano) = %v, want %v", got, want)
	}

	// "bunan" shares only {"  b", "nan", "an "}: 3/9.
	if got, want := Similarity("banan", "bunan"), 3.0/9.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Similarity(banan, bunan) = %v, want %v", got, want)
	}
}

func TestSimilarity_ShortStrings(t *testing.T) {
	t.Parallel()

	// A single rune still produces trigrams thanks to the padding.
	if got := Similarity("a", "a"); got != 1.0 {
		t.Errorf("Similarity(a, a) = %v, want 1.0", got)
	}
	if got := Similarity("a", "b"); got != 0 {
		t.Errorf("Similarity(a, b) = %v, want 0", got)
	}
}

func dict(values ...string) []domain.ObsceneWord {
	words := make([]domain.ObsceneWord, len(values))
	for i, v := range values {
		words[i] = domain.ObsceneWord{Value: v, NormalizedValue: v}
	}
	return words
}

func TestBestMatch_Ordering(t *testing.T) {
	t.Parallel()

	words := dict("grusha", "banan", "yabloko", "granat")

	matches := BestMatch("banan0", words, 2)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Word.Value != "banan" {
		t.Errorf("best match = %q, want banan", matches[0].Word.Value)
	}
	if matches[0].Score < matches[1].Score {
		t.Errorf("matches not sorted by descending score: %v < %v", matches[0].Score, matches[1].Score)
	}
}

func TestBestMatch_TiesKeepDictionaryOrder(t *testing.T) {
	t.Parallel()

	// Both entries are equally dissimilar to the query; dictionary order wins.
	words := dict("grusha", "granat")

	matches := BestMatch("zzz", words, 2)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Word.Value != "grusha" || matches[1].Word.Value != "granat" {
		t.Errorf("tie order broken: %q, %q", matches[0].Word.Value, matches[1].Word.Value)
	}
}

func TestBestMatch_Degenerate(t *testing.T) {
	t.Parallel()

	if got := BestMatch("banan", nil, 1); got != nil {
		t.Errorf("empty dictionary: got %v, want nil", got)
	}
	if got := BestMatch("banan", dict("banan"), 0); got != nil {
		t.Errorf("zero limit: got %v, want nil", got)
	}
	if got := BestMatch("banan", dict("banan"), 10); len(got) != 1 {
		t.Errorf("limit above dictionary size: got %d matches, want 1", len(got))
	}
}
