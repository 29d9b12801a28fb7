package search

import (
	"github.com/shopsearch/backend/internal/text"
)

// Index holds the fitted vectorizer and per-document vectors for one
// catalog snapshot. It is never mutated after BuildIndex returns, so it
// is safe to share across concurrent readers; a changed catalog requires
// building a fresh Index and swapping the reference.
type Index struct {
	Vectorizer *TFIDFVectorizer
	DocVectors map[string]map[string]float64
}

// BuildIndex fits a vectorizer over the documents and vectorizes each one
func BuildIndex(analyzer *text.Analyzer, docs []Document) *Index {
	rawTexts := make([]string, len(docs))
	for i, d := range docs {
		rawTexts[i] = d.Text
	}

	vectorizer := NewTFIDFVectorizer(analyzer)
	vectorizer.Fit(rawTexts)

	idx := &Index{
		Vectorizer: vectorizer,
		DocVectors: make(map[string]map[string]float64, len(docs)),
	}
	for _, d := range docs {
		idx.DocVectors[d.ID] = vectorizer.Transform(d.Text)
	}
	return idx
}

// VectorizeQuery converts a query against the index's IDF table.
// Out-of-vocabulary query terms vanish here; they still matter to the
// keyword fallback path, which reads the raw query instead.
func (idx *Index) VectorizeQuery(query string) map[string]float64 {
	return idx.Vectorizer.Transform(query)
}
