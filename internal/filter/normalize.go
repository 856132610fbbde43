// Package filter contains the text-matching core: word normalization,
// de-obfuscation transformations, and trigram similarity scoring.
// It has no dependencies on storage or transport and is fully deterministic.
package filter

import (
	"strings"
	"unicode"
)

// translitTable maps lowercase Cyrillic letters to their Latin equivalents.
// Soft and hard signs map to the empty string; multi-letter sounds map to
// 2-4 Latin letters. Keys are lowercase because normalization lowercases
// before transliterating.
var translitTable = map[rune]string{
	'а': "a",
	'б': "b",
	'в': "v",
	'г': "g",
	'д': "d",
	'е': "e",
	'ж': "zh",
	'з': "z",
	'и': "i",
	'й': "j",
	'к': "k",
	'л': "l",
	'м': "m",
	'н': "n",
	'о': "o",
	'п': "p",
	'р': "r",
	'с': "s",
	'т': "t",
	'у': "u",
	'ф': "f",
	'х': "kh",
	'ц': "c",
	'ч': "ch",
	'ш': "sh",
	'щ': "shch",
	'ъ': "",
	'ы': "y",
	'ь': "",
	'э': "e",
	'ю': "yu",
	'я': "ya",
	'ё': "e",
}

// NormalizeWord converts a word to its canonical comparison form:
//   - drops every rune that is not a letter, digit, or underscore
//     (punctuation, whitespace, symbols)
//   - lowercases (Unicode-aware, covers Cyrillic including Ё)
//   - transliterates Cyrillic letters to Latin via translitTable
//
// Runes without a transliteration pass through unchanged. The result is a
// fixed point: NormalizeWord(NormalizeWord(w)) == NormalizeWord(w).
func NormalizeWord(word string) string {
	var kept strings.Builder
	kept.Grow(len(word))
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			kept.WriteRune(r)
		}
	}

	lowered := strings.TrimSpace(strings.ToLower(kept.String()))

	var out strings.Builder
	out.Grow(len(lowered))
	for _, r := range lowered {
		if repl, ok := translitTable[r]; ok {
			out.WriteString(repl)
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// NormalizeText normalizes each space-separated token of text independently
// and rejoins with single spaces. Contiguous text is never normalized as a
// whole, so token boundaries survive normalization.
func NormalizeText(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		words[i] = NormalizeWord(w)
	}
	return strings.Join(words, " ")
}
