package text

import (
	"regexp"
	"strings"
)

var (
	// Hyphens survive splitting so compound terms like "t-shirt" stay whole.
	splitPattern = regexp.MustCompile(`[^a-z0-9-]+`)
	// One suffix stripped per token, longest alternative first.
	suffixPattern = regexp.MustCompile(`(?i)(ing|ers|er|s)$`)
)

// Analyzer normalizes raw text into stemmed, stop-word-filtered tokens.
type Analyzer struct {
	lexicon *Lexicon
}

// NewAnalyzer creates an analyzer over the given lexicon.
// A nil lexicon falls back to the defaults.
func NewAnalyzer(lexicon *Lexicon) *Analyzer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Analyzer{lexicon: lexicon}
}

// Lexicon returns the lexicon the analyzer was built with.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lexicon
}

// Stem strips a single suffix (ing, ers, er, s) from the end of a token.
func Stem(token string) string {
	return suffixPattern.ReplaceAllString(token, "")
}

// Tokenize splits text into normalized tokens: lowercased, stop words
// removed, then stemmed. Tokens of any length are kept; this is the
// variant used when indexing documents.
func (a *Analyzer) Tokenize(text string) []string {
	var tokens []string
	for _, field := range splitPattern.Split(strings.ToLower(text), -1) {
		if field == "" || a.lexicon.StopWords[field] {
			continue
		}
		if stemmed := Stem(field); stemmed != "" {
			tokens = append(tokens, stemmed)
		}
	}
	return tokens
}

// Keywords tokenizes like Tokenize but keeps only tokens longer than one
// character after stemming and deduplicates preserving first-seen order.
// This is the variant used for query keyword extraction.
func (a *Analyzer) Keywords(text string) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, token := range a.Tokenize(text) {
		if len(token) < 2 || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}
	return keywords
}
