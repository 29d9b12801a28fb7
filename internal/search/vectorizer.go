package search

import (
	"math"

	"github.com/shopsearch/backend/internal/text"
)

// TFIDFVectorizer implements Term Frequency - Inverse Document Frequency
// over sparse term-weight maps.
type TFIDFVectorizer struct {
	analyzer *text.Analyzer
	IDF      map[string]float64
}

func NewTFIDFVectorizer(analyzer *text.Analyzer) *TFIDFVectorizer {
	return &TFIDFVectorizer{
		analyzer: analyzer,
		IDF:      make(map[string]float64),
	}
}

// Fit analyzes the corpus to build the IDF table
func (v *TFIDFVectorizer) Fit(docs []string) {
	docCount := float64(len(docs))
	wordDocCounts := make(map[string]int)

	// 1. Count document occurrences per term
	for _, doc := range docs {
		tokens := v.analyzer.Tokenize(doc)
		seenInDoc := make(map[string]bool)
		for _, token := range tokens {
			if !seenInDoc[token] {
				wordDocCounts[token]++
				seenInDoc[token] = true
			}
		}
	}

	// 2. Calculate IDF
	for word, count := range wordDocCounts {
		// idf = ln((N+1) / (df+1)) + 1, always > 0
		v.IDF[word] = math.Log((docCount+1)/(float64(count)+1)) + 1
	}
}

// Transform converts text to a sparse vector using the fitted IDF table.
// Terms the corpus has never seen carry no IDF weight and are omitted.
func (v *TFIDFVectorizer) Transform(txt string) map[string]float64 {
	tokens := v.analyzer.Tokenize(txt)

	tf := make(map[string]float64)
	for _, token := range tokens {
		tf[token]++
	}

	// Token count floored at 1 so empty text cannot divide by zero
	length := float64(len(tokens))
	if length == 0 {
		length = 1
	}

	vector := make(map[string]float64, len(tf))
	for token, count := range tf {
		if idf, exists := v.IDF[token]; exists {
			vector[token] = (count / length) * idf
		}
	}
	return vector
}
