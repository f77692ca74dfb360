package textkit

import (
	"math"
	"reflect"
	"testing"
)

var tfidfDocs = []string{
	"This is an apple.",
	"That is a pear.",
	"It is human being.",
	"Hello world!",
}

func TestCalculateIDF(t *testing.T) {
	t.Parallel()

	termFreqs, idf := CalculateIDF(tfidfDocs, false)

	wantFreqs := []map[string]int{
		{"This": 1, "is": 1, "an": 1, "apple": 1, ".": 1},
		{"That": 1, "is": 1, "a": 1, "pear": 1, ".": 1},
		{"It": 1, "is": 1, "human": 1, "being": 1, ".": 1},
		{"Hello": 1, "world": 1, "!": 1},
	}
	if !reflect.DeepEqual(termFreqs, wantFreqs) {
		t.Errorf("term frequencies = %v, want %v", termFreqs, wantFreqs)
	}

	// ln(4/2) for tokens in one document, ln(4/4) = 0 for tokens in
	// three.
	rare := math.Log(2)
	wantIDF := map[string]float64{
		"This": rare, "is": 0, "an": rare, "apple": rare, ".": 0,
		"That": rare, "a": rare, "pear": rare,
		"It": rare, "human": rare, "being": rare,
		"Hello": rare, "world": rare, "!": rare,
	}
	if len(idf) != len(wantIDF) {
		t.Fatalf("idf has %d tokens, want %d", len(idf), len(wantIDF))
	}
	for token, want := range wantIDF {
		if got := idf[token]; math.Abs(got-want) > 1e-12 {
			t.Errorf("idf[%q] = %v, want %v", token, got, want)
		}
	}
}

func TestCalculateIDF_RemovesPunctuation(t *testing.T) {
	t.Parallel()

	termFreqs, idf := CalculateIDF(tfidfDocs, true)

	for i, tf := range termFreqs {
		if _, ok := tf["."]; ok {
			t.Errorf("doc %d term frequencies contain \".\" with rmPunc", i)
		}
	}
	if _, ok := idf["."]; ok {
		t.Error("idf contains \".\" with rmPunc")
	}
	if _, ok := idf["!"]; ok {
		t.Error("idf contains \"!\" with rmPunc")
	}
}

func TestCalculateTFIDF(t *testing.T) {
	t.Parallel()

	tfidf := CalculateTFIDF(tfidfDocs, false)

	// Every term frequency is 1, so each weight equals the token's IDF.
	rare := math.Log(2)
	for _, token := range []string{"This", "apple", "Hello", "!"} {
		if got := tfidf[token]; math.Abs(got-rare) > 1e-12 {
			t.Errorf("tfidf[%q] = %v, want %v", token, got, rare)
		}
	}
	for _, token := range []string{"is", "."} {
		if got := tfidf[token]; got != 0 {
			t.Errorf("tfidf[%q] = %v, want 0", token, got)
		}
	}
}

func TestCalculateTFIDF_RepeatedTerm(t *testing.T) {
	t.Parallel()

	tfidf := CalculateTFIDF([]string{"go go go", "stop", "halt"}, false)

	// "go" occurs three times in one of three documents:
	// tf * idf = 3 * ln(3/2).
	want := 3 * math.Log(1.5)
	if got := tfidf["go"]; math.Abs(got-want) > 1e-12 {
		t.Errorf("tfidf[\"go\"] = %v, want %v", got, want)
	}
}
