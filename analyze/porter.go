package analyze

import "strings"

// porterStem applies the classic five-step Porter suffix-stripping algorithm.
// Tokens shorter than three characters are returned unchanged. The output is
// byte-identical to the reference implementation for lowercase English input.
func porterStem(word string) string {
	if len(word) < 3 {
		return word
	}
	word = step1a(word)
	word = step1b(word)
	word = step1c(word)
	word = step2(word)
	word = step3(word)
	word = step4(word)
	word = step5a(word)
	word = step5b(word)
	return word
}

// StemWord applies the Porter algorithm to a single lowercase word without
// touching any cache. Prefer Analyzer.Stem on hot paths.
func StemWord(word string) string {
	return porterStem(word)
}

// isConsonant reports whether the byte at position i is a consonant.
// 'y' counts as a consonant at the start of a word or after another vowel.
func isConsonant(word string, i int) bool {
	switch word[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !isConsonant(word, i-1)
	}
	return true
}

// measure counts the vowel-consonant sequences in a word: the m in the
// [C](VC)^m[V] decomposition from the reference algorithm.
func measure(word string) int {
	n := len(word)
	count := 0
	i := 0

	for i < n && isConsonant(word, i) {
		i++
	}
	for i < n {
		for i < n && !isConsonant(word, i) {
			i++
		}
		if i < n {
			count++
			for i < n && isConsonant(word, i) {
				i++
			}
		}
	}
	return count
}

func hasVowel(word string) bool {
	for i := 0; i < len(word); i++ {
		if !isConsonant(word, i) {
			return true
		}
	}
	return false
}

func endsDoubleConsonant(word string) bool {
	n := len(word)
	if n < 2 {
		return false
	}
	return word[n-1] == word[n-2] && isConsonant(word, n-1)
}

// endsCVC reports whether the word ends consonant-vowel-consonant where the
// final consonant is not w, x, or y.
func endsCVC(word string) bool {
	n := len(word)
	if n < 3 {
		return false
	}
	if !isConsonant(word, n-1) || isConsonant(word, n-2) || !isConsonant(word, n-3) {
		return false
	}
	c := word[n-1]
	return c != 'w' && c != 'x' && c != 'y'
}

// step1a handles plural endings: sses -> ss, ies -> i, trailing s removal.
func step1a(word string) string {
	switch {
	case strings.HasSuffix(word, "sses"), strings.HasSuffix(word, "ies"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"):
		return word
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	}
	return word
}

// step1b handles past-tense and gerund endings with the repair rules that
// re-add 'e', undouble consonants, or restore at/bl/iz stems.
func step1b(word string) string {
	if strings.HasSuffix(word, "eed") {
		if measure(word[:len(word)-3]) > 0 {
			return word[:len(word)-1]
		}
		return word
	}

	changed := false
	if strings.HasSuffix(word, "ed") {
		if stem := word[:len(word)-2]; hasVowel(stem) {
			word = stem
			changed = true
		}
	} else if strings.HasSuffix(word, "ing") {
		if stem := word[:len(word)-3]; hasVowel(stem) {
			word = stem
			changed = true
		}
	}
	if !changed {
		return word
	}

	switch {
	case strings.HasSuffix(word, "at"), strings.HasSuffix(word, "bl"), strings.HasSuffix(word, "iz"):
		return word + "e"
	case endsDoubleConsonant(word):
		if c := word[len(word)-1]; c != 'l' && c != 's' && c != 'z' {
			return word[:len(word)-1]
		}
	case measure(word) == 1 && endsCVC(word):
		return word + "e"
	}
	return word
}

// step1c turns a trailing y into i when the stem contains a vowel.
func step1c(word string) string {
	if strings.HasSuffix(word, "y") && hasVowel(word[:len(word)-1]) {
		return word[:len(word)-1] + "i"
	}
	return word
}

type suffixRule struct {
	suffix      string
	replacement string
}

// Ordered so that longer suffixes shadow their substrings (ization before
// ation, ational before tional).
var step2Rules = []suffixRule{
	{"ational", "ate"},
	{"tional", "tion"},
	{"enci", "ence"},
	{"anci", "ance"},
	{"izer", "ize"},
	{"abli", "able"},
	{"alli", "al"},
	{"entli", "ent"},
	{"eli", "e"},
	{"ousli", "ous"},
	{"ization", "ize"},
	{"ation", "ate"},
	{"ator", "ate"},
	{"alism", "al"},
	{"iveness", "ive"},
	{"fulness", "ful"},
	{"ousness", "ous"},
	{"aliti", "al"},
	{"iviti", "ive"},
	{"biliti", "ble"},
}

var step3Rules = []suffixRule{
	{"icate", "ic"},
	{"ative", ""},
	{"alize", "al"},
	{"iciti", "ic"},
	{"ical", "ic"},
	{"ful", ""},
	{"ness", ""},
}

// applyRules rewrites the first matching suffix when the remaining stem has
// measure > 0. Once a suffix matches, no further rules are tried.
func applyRules(word string, rules []suffixRule) string {
	for _, r := range rules {
		if strings.HasSuffix(word, r.suffix) {
			stem := word[:len(word)-len(r.suffix)]
			if measure(stem) > 0 {
				return stem + r.replacement
			}
			return word
		}
	}
	return word
}

func step2(word string) string {
	return applyRules(word, step2Rules)
}

func step3(word string) string {
	return applyRules(word, step3Rules)
}

// Ordered so that ement shadows ment shadows ent.
var step4Suffixes = []string{
	"al", "ance", "ence", "er", "ic", "able", "ible", "ant",
	"ement", "ment", "ent", "ion", "ou", "ism", "ate", "iti",
	"ous", "ive", "ize",
}

// step4 strips derivational suffixes outright when the remaining stem has
// measure > 1. "ion" is only removed after s or t.
func step4(word string) string {
	for _, suffix := range step4Suffixes {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		stem := word[:len(word)-len(suffix)]
		if suffix == "ion" {
			if !strings.HasSuffix(stem, "s") && !strings.HasSuffix(stem, "t") {
				continue
			}
		}
		if measure(stem) > 1 {
			return stem
		}
		return word
	}
	return word
}

// step5a drops a trailing lone e when measure > 1, or when measure is exactly
// 1 and the stem does not end in a short CVC pattern.
func step5a(word string) string {
	if !strings.HasSuffix(word, "e") {
		return word
	}
	m := measure(word)
	if m > 1 || (m == 1 && !endsCVC(word[:len(word)-1])) {
		return word[:len(word)-1]
	}
	return word
}

// step5b collapses a trailing double l when measure > 1.
func step5b(word string) string {
	if strings.HasSuffix(word, "l") && endsDoubleConsonant(word) && measure(word) > 1 {
		return word[:len(word)-1]
	}
	return word
}
