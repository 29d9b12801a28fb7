package engine_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsearch/backend/internal/catalog"
	"github.com/shopsearch/backend/internal/config"
	"github.com/shopsearch/backend/internal/engine"
	"github.com/shopsearch/backend/internal/text"
)

func testConfig() *config.SearchConfig {
	return &config.SearchConfig{
		CategoryBoost:         0.25,
		FallbackThreshold:     0.001,
		FallbackBoost:         0.25,
		FallbackCategoryBoost: 0.4,
		NominalScore:          0.12,
		MaxFallbackKeywords:   5,
		DefaultLimit:          20,
	}
}

func testCatalog() []catalog.Product {
	return []catalog.Product{
		{ID: "p1", Name: "Runner Sneakers", Price: 89.99, Category: "Shoes", Rating: 4.5, Description: "Lightweight running sneakers"},
		{ID: "p2", Name: "Leather Boots", Price: 120.00, Category: "Shoes", Rating: 4.2, Description: "Sturdy leather boots"},
		{ID: "p3", Name: "Chronograph Watch", Price: 199.00, Category: "Electronics", Rating: 4.8, Description: "Steel chronograph watch"},
		{ID: "p4", Name: "Wool Socks", Price: 9.99, Category: "Clothing", Rating: 3.9, Description: "Warm wool socks"},
		{ID: "p5", Name: "Denim Jacket", Price: 59.99, Category: "Clothing", Rating: 4.1, Description: "Classic denim jacket"},
	}
}

func newTestEngine(products []catalog.Product) *engine.Engine {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	eng := engine.NewEngine(testConfig(), logger.WithField("service", "test"), text.NewAnalyzer(nil))
	if products != nil {
		eng.LoadCatalog(products)
	}
	return eng
}

func TestRankRelevance(t *testing.T) {
	eng := newTestEngine(testCatalog())

	items, parsed := eng.Rank("running sneakers", engine.Filters{}, engine.SortRelevance)

	assert.Equal(t, "Shoes", parsed.Category)
	require.NotEmpty(t, items)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Greater(t, items[0].Score, items[len(items)-1].Score)
}

func TestRankParsedPriceFilter(t *testing.T) {
	eng := newTestEngine(testCatalog())

	items, parsed := eng.Rank("shoes under $100", engine.Filters{}, engine.SortRelevance)

	require.NotNil(t, parsed.PriceMax)
	assert.Equal(t, 100.0, *parsed.PriceMax)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
}

func TestRankExplicitRatingFilter(t *testing.T) {
	eng := newTestEngine(testCatalog())

	items, parsed := eng.Rank("rating >= 4.5 watch", engine.Filters{}, engine.SortRelevance)

	assert.Equal(t, "Electronics", parsed.Category)
	require.Len(t, items, 1)
	assert.Equal(t, "p3", items[0].Product.ID)
	// Cosine signal plus the category boost
	assert.Greater(t, items[0].Score, 0.25)
}

func TestRankManualFilters(t *testing.T) {
	eng := newTestEngine(testCatalog())
	minRating := 4.0

	items, _ := eng.Rank("", engine.Filters{Category: "Clothing", RatingMin: &minRating}, engine.SortRelevance)

	require.Len(t, items, 1)
	assert.Equal(t, "p5", items[0].Product.ID)
}

func TestRankManualCategoryAllSentinel(t *testing.T) {
	eng := newTestEngine(testCatalog())

	items, _ := eng.Rank("", engine.Filters{Category: "All"}, engine.SortRelevance)

	assert.Len(t, items, len(testCatalog()))
}

func TestRankEmptyQueryDegradesToNominal(t *testing.T) {
	eng := newTestEngine(testCatalog())

	items, _ := eng.Rank("", engine.Filters{}, engine.SortRelevance)

	require.Len(t, items, len(testCatalog()))
	for _, item := range items {
		assert.Equal(t, 0.12, item.Score)
	}
}

func TestRankFuzzyFallbackOnTypo(t *testing.T) {
	eng := newTestEngine(testCatalog())

	// Out-of-vocabulary typo: vector scoring yields no signal, the
	// edit-distance fallback still finds the sneakers
	items, _ := eng.Rank("sneakr", engine.Filters{}, engine.SortRelevance)

	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.InDelta(t, 0.25, items[0].Score, 0.0001)
}

func TestRankFallbackCategoryBoost(t *testing.T) {
	// The fallback's extra category bonus is only reachable when the
	// regular category boost cannot lift scores over the threshold
	cfg := testConfig()
	cfg.CategoryBoost = 0

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	eng := engine.NewEngine(cfg, logger.WithField("service", "test"), text.NewAnalyzer(nil))
	eng.LoadCatalog([]catalog.Product{
		{ID: "a1", Name: "Leather Handbag", Price: 75, Category: "Accessories", Rating: 4.4, Description: "Classic leather handbag"},
	})

	// "bag" hits the Accessories synonym; "handbg" is a 1-edit typo with
	// no vector signal, so ranking goes through the fuzzy fallback
	items, parsed := eng.Rank("bag handbg", engine.Filters{}, engine.SortRelevance)

	assert.Equal(t, "Accessories", parsed.Category)
	require.Len(t, items, 1)
	assert.InDelta(t, 0.65, items[0].Score, 0.0001)
}

func TestRankPriceMinAboveMaxYieldsNothing(t *testing.T) {
	eng := newTestEngine(testCatalog())

	// Contradictory bounds are applied literally, not swapped
	items, parsed := eng.Rank("shoes over $200 under $50", engine.Filters{}, engine.SortRelevance)

	require.NotNil(t, parsed.PriceMin)
	require.NotNil(t, parsed.PriceMax)
	assert.Empty(t, items)
}

func TestRankSortPriceAsc(t *testing.T) {
	eng := newTestEngine(testCatalog())

	items, _ := eng.Rank("", engine.Filters{}, engine.SortPriceAsc)

	require.Len(t, items, len(testCatalog()))
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Product.Price, items[i].Product.Price)
	}
}

func TestRankSortPriceDesc(t *testing.T) {
	eng := newTestEngine(testCatalog())

	items, _ := eng.Rank("", engine.Filters{}, engine.SortPriceDesc)

	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].Product.Price, items[i].Product.Price)
	}
}

func TestRankSortRatingDesc(t *testing.T) {
	eng := newTestEngine(testCatalog())

	items, _ := eng.Rank("", engine.Filters{}, engine.SortRatingDesc)

	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].Product.Rating, items[i].Product.Rating)
	}
}

func TestRankEmptyCatalog(t *testing.T) {
	eng := newTestEngine(nil)

	items, _ := eng.Rank("anything at all", engine.Filters{}, engine.SortRelevance)
	assert.Empty(t, items)
}

func TestLoadCatalogSwapsStats(t *testing.T) {
	eng := newTestEngine(nil)
	assert.Equal(t, 0, eng.Stats().Documents)

	eng.LoadCatalog(testCatalog())
	stats := eng.Stats()
	assert.Equal(t, 5, stats.Documents)
	assert.Greater(t, stats.VocabularySize, 0)
	assert.False(t, stats.LastIndexed.IsZero())
}
