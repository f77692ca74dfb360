package textkit

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

var wordPattern = regexp.MustCompile(`\w+`)

func vectorize(a, b string) (countsA, countsB []float64) {
	wordsA := wordPattern.FindAllString(strings.ToLower(a), -1)
	wordsB := wordPattern.FindAllString(strings.ToLower(b), -1)

	vocab := make([]string, 0, len(wordsA)+len(wordsB))
	seen := make(map[string]bool)
	for _, w := range wordsA {
		if !seen[w] {
			seen[w] = true
			vocab = append(vocab, w)
		}
	}
	for _, w := range wordsB {
		if !seen[w] {
			seen[w] = true
			vocab = append(vocab, w)
		}
	}

	count := func(words []string) []float64 {
		freq := make(map[string]int, len(words))
		for _, w := range words {
			freq[w]++
		}
		vec := make([]float64, len(vocab))
		for i, w := range vocab {
			vec[i] = float64(freq[w])
		}
		return vec
	}
	return count(wordsA), count(wordsB)
}

// CosineSimilarity computes the cosine similarity of the word-count
// vectors of two texts. Texts with no words in common score 0; so do
// empty texts.
func CosineSimilarity(a, b string) float64 {
	va, vb := vectorize(a, b)

	var dot, normA, normB float64
	for i := range va {
		dot += va[i] * vb[i]
		normA += va[i] * va[i]
		normB += vb[i] * vb[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// EuclideanDistance computes the Euclidean distance between the
// word-count vectors of two texts.
func EuclideanDistance(a, b string) float64 {
	va, vb := vectorize(a, b)

	var sum float64
	for i := range va {
		d := va[i] - vb[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// FindMatched returns the lookup entries whose beginnings match the
// regular expression pattern, case-insensitively.
func FindMatched(pattern string, lookup []string) ([]string, error) {
	re, err := regexp.Compile(`(?i)^(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}

	var matched []string
	for _, candidate := range lookup {
		if re.MatchString(candidate) {
			matched = append(matched, candidate)
		}
	}
	return matched, nil
}

// FindSimilar ranks lookup by Levenshtein distance to s, ignoring case
// and punctuation, and returns the n closest entries. n <= 0 returns
// the whole ranking. Ties keep the lookup order.
func FindSimilar(s string, lookup []string, n int) []string {
	if len(lookup) == 0 {
		return nil
	}

	normalized := RemovePunctuation(strings.ToLower(s), true)

	type ranked struct {
		value    string
		distance int
		index    int
	}
	candidates := make([]ranked, len(lookup))
	for i, candidate := range lookup {
		candidates[i] = ranked{
			value:    candidate,
			distance: levenshtein.ComputeDistance(normalized, RemovePunctuation(strings.ToLower(candidate), true)),
			index:    i,
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if n <= 0 || n > len(candidates) {
		n = len(candidates)
	}
	result := make([]string, n)
	for i := range result {
		result[i] = candidates[i].value
	}
	return result
}
