package filter

import (
	"sort"

	"github.com/textwarden/obscenity-backend/internal/domain"
)

// Match pairs a dictionary entry with its similarity score against a query.
type Match struct {
	Word  domain.ObsceneWord
	Score float64
}

// trigramSet extracts the set of overlapping 3-rune windows from s, padded
// with two leading and one trailing space so short strings still produce
// trigrams. This mirrors pg_trgm's documented extraction for a single word.
func trigramSet(s string) map[string]struct{} {
	if s == "" {
		return nil
	}
	runes := []rune("  " + s + " ")
	set := make(map[string]struct{}, len(runes))
	for i := 0; i+3 <= len(runes); i++ {
		set[string(runes[i:i+3])] = struct{}{}
	}
	return set
}

// Similarity computes trigram similarity between two already-normalized
// strings: |intersection| / |union| over their trigram sets. The result is
// in [0,1], symmetric, 1 for identical non-empty strings, and 0 whenever
// either string is empty. No normalization is performed here.
func Similarity(a, b string) float64 {
	sa, sb := trigramSet(a), trigramSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}

	inter := 0
	for t := range sa {
		if _, ok := sb[t]; ok {
			inter++
		}
	}

	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}

// BestMatch scores query against every entry's NormalizedValue and returns
// the top limit matches by descending score. Ties keep dictionary order
// (stable sort). Returns nil for an empty dictionary or non-positive limit.
func BestMatch(query string, words []domain.ObsceneWord, limit int) []Match {
	if limit <= 0 || len(words) == 0 {
		return nil
	}

	matches := make([]Match, len(words))
	for i, w := range words {
		matches[i] = Match{Word: w, Score: Similarity(query, w.NormalizedValue)}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
