package textkit

import "math"

// CalculateIDF computes the per-document term frequencies of docs and
// the inverse document frequency of every token across them, as
// ln(len(docs) / (1 + df)) where df is the number of documents the
// token appears in. rmPunc strips punctuation before tokenizing.
func CalculateIDF(docs []string, rmPunc bool) ([]map[string]int, map[string]float64) {
	termFreqs := make([]map[string]int, len(docs))
	for i, doc := range docs {
		if rmPunc {
			doc = RemovePunctuation(doc, true)
		}
		termFreqs[i] = CountWords(doc)
	}

	docFreq := make(map[string]int)
	for _, tf := range termFreqs {
		for token := range tf {
			docFreq[token]++
		}
	}

	idf := make(map[string]float64, len(docFreq))
	for token, df := range docFreq {
		idf[token] = math.Log(float64(len(docs)) / float64(1+df))
	}
	return termFreqs, idf
}

// CalculateTFIDF weights each token's term frequency by its inverse
// document frequency across docs. A token occurring in several
// documents takes its frequency from the last one containing it.
func CalculateTFIDF(docs []string, rmPunc bool) map[string]float64 {
	termFreqs, idf := CalculateIDF(docs, rmPunc)

	tfidf := make(map[string]float64, len(idf))
	for _, tf := range termFreqs {
		for token, count := range tf {
			tfidf[token] = float64(count) * idf[token]
		}
	}
	return tfidf
}
