package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopsearch/backend/internal/text"
)

// ParsedQuery holds the structured constraints and keywords pulled out of
// a raw query string. Unset constraints stay nil; an empty Category means
// no category was detected.
type ParsedQuery struct {
	Keywords  []string
	Category  string
	PriceMin  *float64
	PriceMax  *float64
	RatingMin *float64
}

var (
	priceMaxPattern   = regexp.MustCompile(`(?:under|below|less than)\s*\$?(\d+(?:\.\d+)?)`)
	priceMinPattern   = regexp.MustCompile(`(?:over|above|more than)\s*\$?(\d+(?:\.\d+)?)`)
	priceRangePattern = regexp.MustCompile(`(?:between|from)\s*\$?(\d+(?:\.\d+)?)\s*(?:and|to)\s*\$?(\d+(?:\.\d+)?)`)
	goodReviewPattern = regexp.MustCompile(`good\s+reviews|4\+|4\s*stars|rating\s*>=\s*4`)
	ratingPattern     = regexp.MustCompile(`(?:rating|stars)\s*>=?\s*(\d(?:\.\d)?)`)
)

// Extractor derives structured constraints and keywords from query text.
type Extractor struct {
	analyzer *text.Analyzer
}

func NewExtractor(analyzer *text.Analyzer) *Extractor {
	return &Extractor{analyzer: analyzer}
}

// Parse applies the extraction rules against the lowercased raw query.
// The rules are independent: price, rating, category, and keywords are
// all read from the same raw string, and matched tokens are not removed
// before keyword tokenization. Parse never fails; an absent match simply
// leaves its field unset.
func (e *Extractor) Parse(raw string) ParsedQuery {
	lower := strings.ToLower(raw)
	var parsed ParsedQuery

	if m := priceMaxPattern.FindStringSubmatch(lower); m != nil {
		parsed.PriceMax = parseNumber(m[1])
	}
	if m := priceMinPattern.FindStringSubmatch(lower); m != nil {
		parsed.PriceMin = parseNumber(m[1])
	}
	// The range pattern runs last and overwrites both bounds
	if m := priceRangePattern.FindStringSubmatch(lower); m != nil {
		parsed.PriceMin = parseNumber(m[1])
		parsed.PriceMax = parseNumber(m[2])
	}

	if goodReviewPattern.MatchString(lower) {
		rating := 4.0
		parsed.RatingMin = &rating
	}
	// An explicit number wins over the implicit "good reviews" rule
	if m := ratingPattern.FindStringSubmatch(lower); m != nil {
		parsed.RatingMin = parseNumber(m[1])
	}

	// First synonym found in the query wins, in table order
	for _, syn := range e.analyzer.Lexicon().CategorySynonyms {
		if strings.Contains(lower, syn.Term) {
			parsed.Category = syn.Category
			break
		}
	}

	parsed.Keywords = e.analyzer.Keywords(raw)
	return parsed
}

func parseNumber(s string) *float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return &f
}
