package search

import "strings"

// LevenshteinDistance computes the edit distance between two strings,
// case-insensitively, using a single-row dynamic programming pass.
func LevenshteinDistance(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr := make([]int, lb+1)
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
		}
		prev = curr
	}
	return prev[lb]
}

// fuzzyThreshold bounds the edit budget: short keywords tolerate a single
// edit, anything longer two.
func fuzzyThreshold(keyword string) int {
	if len(keyword) <= 4 {
		return 1
	}
	return 2
}

// FuzzyIncludes reports whether any haystack token matches the keyword,
// first by substring containment in either direction, then by edit
// distance within the keyword's threshold.
func FuzzyIncludes(haystackTokens []string, keyword string) bool {
	threshold := fuzzyThreshold(keyword)
	for _, token := range haystackTokens {
		if strings.Contains(token, keyword) || strings.Contains(keyword, token) {
			return true
		}
		if LevenshteinDistance(token, keyword) <= threshold {
			return true
		}
	}
	return false
}
