package filter

import "strings"

// Transformation is a single de-obfuscation hypothesis: a pure function that
// rewrites a raw word before normalization. Hypotheses are applied
// independently, never composed.
type Transformation func(string) string

// Identity is the baseline hypothesis: the word as submitted.
func Identity(word string) string { return word }

// numbersToLetters maps digits to the Cyrillic (or Latin) letters they
// visually resemble in obfuscated text.
var numbersToLetters = map[rune]rune{
	'0': 'о',
	'1': 'и',
	'3': 'з',
	'4': 'ч',
	'5': 's',
	'6': 'б',
	'7': 'г',
	'8': 'В',
}

// ReplaceNumbersToLetters substitutes digits with visually similar letters.
func ReplaceNumbersToLetters(word string) string {
	return strings.Map(func(r rune) rune {
		if repl, ok := numbersToLetters[r]; ok {
			return repl
		}
		return r
	}, word)
}

// CollapseRepeatingCharacters collapses every run of two or more identical
// consecutive runes into a single instance. Identity is case-sensitive, so
// "aA" does not collapse.
func CollapseRepeatingCharacters(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	var prev rune
	first := true
	for _, r := range word {
		if !first && r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
		first = false
	}
	return b.String()
}

// latinToCyrillic maps Latin letters to the Cyrillic letters they visually
// resemble, in both cases where a look-alike exists.
var latinToCyrillic = map[rune]rune{
	'y': 'у',
	'e': 'е',
	'o': 'о',
	'p': 'р',
	'a': 'а',
	'k': 'к',
	'x': 'х',
	'c': 'с',
	'n': 'п',
	'A': 'А',
	'E': 'Е',
	'T': 'Т',
	'O': 'О',
	'P': 'Р',
	'H': 'Н',
	'K': 'К',
	'X': 'Х',
	'C': 'С',
	'B': 'В',
	'M': 'М',
}

// ReplaceSimilarLatinToCyrillic substitutes Latin look-alike letters with
// their Cyrillic counterparts.
func ReplaceSimilarLatinToCyrillic(word string) string {
	return strings.Map(func(r rune) rune {
		if repl, ok := latinToCyrillic[r]; ok {
			return repl
		}
		return r
	}, word)
}

// DefaultTransformations returns the standard hypothesis pipeline in
// evaluation order. Additional hypotheses may be appended by the caller;
// nothing downstream assumes a fixed count.
func DefaultTransformations() []Transformation {
	return []Transformation{
		Identity,
		ReplaceNumbersToLetters,
		CollapseRepeatingCharacters,
		ReplaceSimilarLatinToCyrillic,
	}
}
