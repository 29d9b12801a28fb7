package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shopsearch/backend/internal/catalog"
	"github.com/shopsearch/backend/internal/config"
	"github.com/shopsearch/backend/internal/query"
	"github.com/shopsearch/backend/internal/search"
	"github.com/shopsearch/backend/internal/text"
)

// Sort orders accepted by Rank
const (
	SortRelevance  = "relevance"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortRatingDesc = "rating_desc"
)

// Filters are the manual filter values set directly by the caller,
// independent of anything parsed out of the query text. The category
// sentinel "All" (or empty) means no category filter.
type Filters struct {
	Category  string
	PriceMin  *float64
	PriceMax  *float64
	RatingMin *float64
}

// ScoredItem pairs a catalog item with its relevance score
type ScoredItem struct {
	Product catalog.Product
	Score   float64
}

// EngineStats describes the currently indexed catalog snapshot
type EngineStats struct {
	Documents      int
	VocabularySize int
	LastIndexed    time.Time
}

// Engine orchestrates query parsing, filtering, scoring and ranking over
// an immutable index snapshot. Rebuilding swaps the snapshot atomically;
// in-flight rankings keep reading the old one safely.
type Engine struct {
	Config    *config.SearchConfig
	Logger    *logrus.Entry
	Analyzer  *text.Analyzer
	Extractor *query.Extractor

	mu       sync.RWMutex
	products []catalog.Product
	index    *search.Index
	stats    EngineStats
}

func NewEngine(cfg *config.SearchConfig, logger *logrus.Entry, analyzer *text.Analyzer) *Engine {
	return &Engine{
		Config:    cfg,
		Logger:    logger,
		Analyzer:  analyzer,
		Extractor: query.NewExtractor(analyzer),
		index:     search.BuildIndex(analyzer, nil),
	}
}

// LoadCatalog indexes a catalog snapshot wholesale and swaps it in.
func (e *Engine) LoadCatalog(products []catalog.Product) {
	docs := make([]search.Document, len(products))
	for i, p := range products {
		docs[i] = search.Document{ID: p.ID, Text: p.Document()}
	}
	idx := search.BuildIndex(e.Analyzer, docs)

	e.mu.Lock()
	e.products = products
	e.index = idx
	e.stats = EngineStats{
		Documents:      len(products),
		VocabularySize: len(idx.Vectorizer.IDF),
		LastIndexed:    time.Now(),
	}
	e.mu.Unlock()

	e.Logger.WithFields(logrus.Fields{
		"documents":  len(products),
		"vocabulary": len(idx.Vectorizer.IDF),
	}).Info("Catalog indexed")
}

// Stats returns a copy of the current index stats
func (e *Engine) Stats() EngineStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}

// Rank runs the full pipeline for one query: parse, vectorize, filter,
// score, fuzzy fallback, sort. It also returns the parsed query so the
// caller can reflect extracted constraints back into its own filters.
func (e *Engine) Rank(rawQuery string, filters Filters, sortOrder string) ([]ScoredItem, query.ParsedQuery) {
	e.mu.RLock()
	products := e.products
	idx := e.index
	e.mu.RUnlock()

	parsed := e.Extractor.Parse(rawQuery)
	queryVec := idx.VectorizeQuery(rawQuery)

	// Manual filters first, parsed constraints on top
	candidates := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if matchesFilters(p, filters) && matchesParsed(p, parsed) {
			candidates = append(candidates, p)
		}
	}

	scored := make([]ScoredItem, 0, len(candidates))
	allZero := true
	for _, p := range candidates {
		score := search.CosineSimilarity(queryVec, idx.DocVectors[p.ID])
		if parsed.Category != "" && p.Category == parsed.Category {
			score += e.Config.CategoryBoost
		}
		if score >= e.Config.FallbackThreshold {
			allZero = false
		}
		scored = append(scored, ScoredItem{Product: p, Score: score})
	}

	if len(scored) > 0 && allZero {
		scored = e.fallback(scored, parsed)
	}

	sortItems(scored, sortOrder)
	return scored, parsed
}

// fallback re-ranks candidates whose vector scores carried no signal,
// keeping only those whose text fuzzily contains every query keyword.
// If nothing survives, every candidate comes back at the nominal score
// so the caller never renders an empty page over a non-empty filter set.
func (e *Engine) fallback(scored []ScoredItem, parsed query.ParsedQuery) []ScoredItem {
	keywords := parsed.Keywords
	if len(keywords) > e.Config.MaxFallbackKeywords {
		keywords = keywords[:e.Config.MaxFallbackKeywords]
	}

	var matched []ScoredItem
	if len(keywords) > 0 {
		for _, item := range scored {
			haystack := e.Analyzer.Tokenize(item.Product.Document())
			ok := true
			for _, kw := range keywords {
				if !search.FuzzyIncludes(haystack, kw) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			item.Score += e.Config.FallbackBoost
			if parsed.Category != "" && item.Product.Category == parsed.Category {
				item.Score += e.Config.FallbackCategoryBoost
			}
			matched = append(matched, item)
		}
	}

	if len(matched) > 0 {
		e.Logger.WithField("matched", len(matched)).Debug("Fuzzy fallback engaged")
		return matched
	}

	e.Logger.WithField("candidates", len(scored)).Debug("Degrading to nominal scores")
	for i := range scored {
		scored[i].Score = e.Config.NominalScore
	}
	return scored
}

func matchesFilters(p catalog.Product, f Filters) bool {
	if f.Category != "" && f.Category != "All" && p.Category != f.Category {
		return false
	}
	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}
	if f.RatingMin != nil && p.Rating < *f.RatingMin {
		return false
	}
	return true
}

func matchesParsed(p catalog.Product, parsed query.ParsedQuery) bool {
	if parsed.Category != "" && p.Category != parsed.Category {
		return false
	}
	if parsed.PriceMin != nil && p.Price < *parsed.PriceMin {
		return false
	}
	if parsed.PriceMax != nil && p.Price > *parsed.PriceMax {
		return false
	}
	if parsed.RatingMin != nil && p.Rating < *parsed.RatingMin {
		return false
	}
	return true
}

func sortItems(items []ScoredItem, order string) {
	switch order {
	case SortPriceAsc:
		sort.Slice(items, func(i, j int) bool {
			return items[i].Product.Price < items[j].Product.Price
		})
	case SortPriceDesc:
		sort.Slice(items, func(i, j int) bool {
			return items[i].Product.Price > items[j].Product.Price
		})
	case SortRatingDesc:
		sort.Slice(items, func(i, j int) bool {
			return items[i].Product.Rating > items[j].Product.Rating
		})
	default:
		sort.Slice(items, func(i, j int) bool {
			return items[i].Score > items[j].Score
		})
	}
}
