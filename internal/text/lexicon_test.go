package text_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsearch/backend/internal/text"
)

func TestDefaultLexicon(t *testing.T) {
	lex := text.DefaultLexicon()

	assert.True(t, lex.StopWords["show"])
	assert.True(t, lex.StopWords["under"])
	assert.True(t, lex.StopWords["reviews"])
	assert.False(t, lex.StopWords["sneaker"])

	require.NotEmpty(t, lex.CategorySynonyms)
	// Table order is part of the contract: first match wins downstream
	assert.Equal(t, "sneaker", lex.CategorySynonyms[0].Term)
	assert.Equal(t, "Shoes", lex.CategorySynonyms[0].Category)
}

func TestLoadLexiconOverridesCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := []byte("categories:\n  - term: fiets\n    category: Bikes\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	lex, err := text.LoadLexicon(path)
	require.NoError(t, err)

	require.Len(t, lex.CategorySynonyms, 1)
	assert.Equal(t, "Bikes", lex.CategorySynonyms[0].Category)
	// Stop words were not overridden and keep the defaults
	assert.True(t, lex.StopWords["show"])
}

func TestLoadLexiconMissingFile(t *testing.T) {
	_, err := text.LoadLexicon("/nonexistent/lexicon.yaml")
	assert.Error(t, err)
}
