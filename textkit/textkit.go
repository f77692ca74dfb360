// Package textkit provides text preprocessing helpers: punctuation
// stripping, acronym building, word extraction and counting, numeral
// parsing, and string similarity lookups.
package textkit

import (
	"regexp"
	"strings"
	"unicode"
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// RemovePunctuation strips punctuation from s. When rmWhitespace is
// true, runs of whitespace collapse to single spaces as well.
func RemovePunctuation(s string, rmWhitespace bool) string {
	cleaned := nonWordPattern.ReplaceAllString(s, " ")

	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		if r < 128 && strings.ContainsRune(punctuation, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := strings.TrimSpace(b.String())
	if rmWhitespace {
		out = strings.Join(strings.Fields(out), " ")
	}
	return out
}

// AcronymOptions select which characters of the input contribute to
// the acronym built by Acronym.
type AcronymOptions struct {
	// OnlyCapitals keeps capital initials only, skipping words that
	// start with a lowercase letter.
	OnlyCapitals bool
	// CapitalsInWords keeps every capital within a word, not just the
	// initial.
	CapitalsInWords bool
	// KeepPunctuation carries the input's punctuation through to the
	// result instead of stripping it.
	KeepPunctuation bool
}

// Acronym builds an acronym from s. By default it uppercases the first
// letter of each word; opts narrow or widen the selection.
func Acronym(s string, opts AcronymOptions) string {
	var txt string
	if opts.KeepPunctuation {
		var b strings.Builder
		for _, r := range s {
			if r < 128 && strings.ContainsRune(punctuation, r) {
				b.WriteRune(' ')
				b.WriteRune(r)
				b.WriteRune(' ')
			} else {
				b.WriteRune(r)
			}
		}
		txt = b.String()
	} else {
		txt = RemovePunctuation(s, true)
	}

	isPunct := func(r rune) bool {
		return r < 128 && strings.ContainsRune(punctuation, r)
	}

	var b strings.Builder
	switch {
	case opts.OnlyCapitals && opts.CapitalsInWords:
		for _, r := range txt {
			if unicode.IsUpper(r) || isPunct(r) {
				b.WriteRune(r)
			}
		}
	case opts.OnlyCapitals:
		for _, word := range strings.Fields(txt) {
			first := []rune(word)[0]
			if unicode.IsUpper(first) || isPunct(first) {
				b.WriteRune(first)
			}
		}
	case opts.CapitalsInWords:
		for _, word := range strings.Fields(txt) {
			for i, r := range word {
				if i == 0 {
					b.WriteRune(unicode.ToUpper(r))
				} else if unicode.IsUpper(r) || isPunct(r) {
					b.WriteRune(r)
				}
			}
		}
	default:
		for _, word := range strings.Fields(txt) {
			b.WriteRune(unicode.ToUpper([]rune(word)[0]))
		}
	}
	return b.String()
}

var capitalizedRunPattern = regexp.MustCompile(`[a-zA-Z][^A-Z]*`)

// ExtractCapitalizedWords splits a run-together identifier at each
// uppercase letter: "NetworkRailRetainingWall" becomes
// ["Network", "Rail", "Retaining", "Wall"].
func ExtractCapitalizedWords(s string) []string {
	return capitalizedRunPattern.FindAllString(RemovePunctuation(s, true), -1)
}

var tokenPattern = regexp.MustCompile(`\w+|[^\w\s]`)

// CountWords tokenizes s into words and punctuation marks and returns
// the count of each token.
func CountWords(s string) map[string]int {
	counts := make(map[string]int)
	for _, token := range tokenPattern.FindAllString(s, -1) {
		counts[token]++
	}
	return counts
}
