package textkit

import (
	"math"
	"reflect"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"partial overlap", "This is an apple.", "That is a pear.", 0.25},
		{"identical", "same words here", "same words here", 1},
		{"disjoint", "alpha beta", "gamma delta", 0},
		{"empty", "", "words", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("CosineSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEuclideanDistance(t *testing.T) {
	t.Parallel()

	got := EuclideanDistance("This is an apple.", "That is a pear.")
	want := math.Sqrt(6)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("EuclideanDistance() = %v, want %v", got, want)
	}
}

func TestFindMatched(t *testing.T) {
	t.Parallel()

	lookup := []string{"abc", "aapl", "app", "ap", "ape", "apex", "apel", "apple"}

	tests := []struct {
		pattern string
		want    []string
	}{
		{"apple", []string{"apple"}},
		{"app(le)?", []string{"app", "apple"}},
		{"APPLE", []string{"apple"}},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()
			got, err := FindMatched(tt.pattern, lookup)
			if err != nil {
				t.Fatalf("FindMatched(%q) error: %v", tt.pattern, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindMatched(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFindMatched_BadPattern(t *testing.T) {
	t.Parallel()

	if _, err := FindMatched("(unclosed", nil); err == nil {
		t.Fatal("FindMatched returned nil error for invalid pattern")
	}
}

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	lookup := []string{
		"Anglia", "East Coast", "East Midlands", "North and East",
		"London North Western", "Scotland", "South East", "Wales",
		"Wessex", "Western",
	}

	got := FindSimilar("angle", lookup, 1)
	if want := []string{"Anglia"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FindSimilar(\"angle\", _, 1) = %v, want %v", got, want)
	}

	all := FindSimilar("angle", lookup, 0)
	if len(all) != len(lookup) {
		t.Errorf("FindSimilar with n=0 returned %d entries, want %d", len(all), len(lookup))
	}
	if all[0] != "Anglia" {
		t.Errorf("full ranking starts with %q, want \"Anglia\"", all[0])
	}

	if got := FindSimilar("anything", nil, 3); got != nil {
		t.Errorf("FindSimilar with empty lookup = %v, want nil", got)
	}
}
