package main

import (
	"github.com/sirupsen/logrus"

	"github.com/shopsearch/backend/internal/api"
	"github.com/shopsearch/backend/internal/catalog"
	"github.com/shopsearch/backend/internal/config"
	"github.com/shopsearch/backend/internal/engine"
	"github.com/shopsearch/backend/internal/text"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "shopsearch-api")

	entry.Info("Starting Shop Search API Service")

	// 1. Config
	cfg := config.Load()

	// 2. Lexicon
	lexicon := text.DefaultLexicon()
	if cfg.Lexicon.Path != "" {
		loaded, err := text.LoadLexicon(cfg.Lexicon.Path)
		if err != nil {
			entry.Fatalf("Failed to load lexicon: %v", err)
		}
		lexicon = loaded
		entry.Infof("Loaded lexicon from %s", cfg.Lexicon.Path)
	}
	analyzer := text.NewAnalyzer(lexicon)

	// 3. Catalog + Index
	eng := engine.NewEngine(&cfg.Search, entry, analyzer)
	products, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		entry.Fatalf("Failed to load catalog: %v", err)
	}
	eng.LoadCatalog(products)

	// 4. API Server
	server := api.NewServer(eng, entry, cfg.Catalog.Path)

	entry.Infof("Shop Search API ready on %s", cfg.Server.Port)
	if err := server.Start(cfg.Server.Port); err != nil {
		entry.Fatal(err)
	}
}
