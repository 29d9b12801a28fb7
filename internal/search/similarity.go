package search

import "math"

// CosineSimilarity calculates the cosine similarity between two sparse
// vectors. Either vector having zero norm yields 0 rather than NaN.
func CosineSimilarity(a, b map[string]float64) float64 {
	var dotProduct, normA, normB float64
	for term, weightA := range a {
		normA += weightA * weightA
		if weightB, exists := b[term]; exists {
			dotProduct += weightA * weightB
		}
	}
	for _, weightB := range b {
		normB += weightB * weightB
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
