package text

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CategorySynonym maps a surface term to a canonical category name.
// The synonym table is ordered: the first term found in a query wins.
type CategorySynonym struct {
	Term     string `yaml:"term"`
	Category string `yaml:"category"`
}

// Lexicon holds the language data the analyzer and extractor depend on.
// It is immutable after construction and injected explicitly so tests
// and deployments can substitute their own tables.
type Lexicon struct {
	StopWords        map[string]bool
	CategorySynonyms []CategorySynonym
}

// lexiconFile is the on-disk YAML shape.
type lexiconFile struct {
	StopWords  []string          `yaml:"stop_words"`
	Categories []CategorySynonym `yaml:"categories"`
}

// DefaultLexicon returns the built-in English lexicon.
func DefaultLexicon() *Lexicon {
	// Scaffolding words ("show", "find", "under", "best", "reviews") are
	// listed because they are common in the query surface grammar and
	// would otherwise pollute relevance scoring.
	stopWords := []string{
		"a", "an", "the", "and", "or", "of", "in", "on", "at", "to",
		"for", "with", "is", "are", "was", "it", "this", "that", "by",
		"from", "me", "i", "my", "we", "you",
		"show", "find", "search", "get", "want", "need", "looking",
		"some", "any", "all", "please", "buy",
		"under", "over", "below", "above", "between", "than", "less", "more",
		"best", "good", "top", "great", "nice",
		"reviews", "review", "rating", "ratings", "stars", "star",
	}

	lex := &Lexicon{
		StopWords: make(map[string]bool, len(stopWords)),
		CategorySynonyms: []CategorySynonym{
			{Term: "sneaker", Category: "Shoes"},
			{Term: "shoe", Category: "Shoes"},
			{Term: "boot", Category: "Shoes"},
			{Term: "sandal", Category: "Shoes"},
			{Term: "slipper", Category: "Shoes"},
			{Term: "watch", Category: "Electronics"},
			{Term: "phone", Category: "Electronics"},
			{Term: "laptop", Category: "Electronics"},
			{Term: "headphone", Category: "Electronics"},
			{Term: "earbud", Category: "Electronics"},
			{Term: "tablet", Category: "Electronics"},
			{Term: "camera", Category: "Electronics"},
			{Term: "speaker", Category: "Electronics"},
			{Term: "t-shirt", Category: "Clothing"},
			{Term: "shirt", Category: "Clothing"},
			{Term: "jacket", Category: "Clothing"},
			{Term: "hoodie", Category: "Clothing"},
			{Term: "jeans", Category: "Clothing"},
			{Term: "dress", Category: "Clothing"},
			{Term: "sock", Category: "Clothing"},
			{Term: "sweater", Category: "Clothing"},
			{Term: "backpack", Category: "Accessories"},
			{Term: "bag", Category: "Accessories"},
			{Term: "wallet", Category: "Accessories"},
			{Term: "belt", Category: "Accessories"},
			{Term: "scarf", Category: "Accessories"},
			{Term: "sunglasses", Category: "Accessories"},
		},
	}
	for _, w := range stopWords {
		lex.StopWords[w] = true
	}
	return lex
}

// LoadLexicon reads a YAML lexicon file. Fields left empty in the file
// fall back to the defaults, so a file may override only the synonym
// table or only the stop words.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}

	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon file: %w", err)
	}

	lex := DefaultLexicon()
	if len(file.StopWords) > 0 {
		lex.StopWords = make(map[string]bool, len(file.StopWords))
		for _, w := range file.StopWords {
			lex.StopWords[w] = true
		}
	}
	if len(file.Categories) > 0 {
		lex.CategorySynonyms = file.Categories
	}
	return lex, nil
}
