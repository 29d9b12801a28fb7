package config

import (
	"os"
	"strconv"
)

// Config holds the configuration for the search service
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Lexicon LexiconConfig
	Search  SearchConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
}

// CatalogConfig holds catalog source configuration
type CatalogConfig struct {
	Path string
}

// LexiconConfig points at an optional YAML lexicon override
type LexiconConfig struct {
	Path string
}

// SearchConfig holds ranking pipeline tuning knobs
type SearchConfig struct {
	CategoryBoost         float64
	FallbackThreshold     float64
	FallbackBoost         float64
	FallbackCategoryBoost float64
	NominalScore          float64
	MaxFallbackKeywords   int
	DefaultLimit          int
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: GetStringEnv("SERVER_PORT", ":8080"),
		},
		Catalog: CatalogConfig{
			Path: GetStringEnv("CATALOG_PATH", "./data/catalog.json"),
		},
		Lexicon: LexiconConfig{
			Path: GetStringEnv("LEXICON_PATH", ""),
		},
		Search: SearchConfig{
			CategoryBoost:         GetFloatEnv("SEARCH_CATEGORY_BOOST", 0.25),
			FallbackThreshold:     GetFloatEnv("SEARCH_FALLBACK_THRESHOLD", 0.001),
			FallbackBoost:         GetFloatEnv("SEARCH_FALLBACK_BOOST", 0.25),
			FallbackCategoryBoost: GetFloatEnv("SEARCH_FALLBACK_CATEGORY_BOOST", 0.4),
			NominalScore:          GetFloatEnv("SEARCH_NOMINAL_SCORE", 0.12),
			MaxFallbackKeywords:   GetIntEnv("SEARCH_MAX_FALLBACK_KEYWORDS", 5),
			DefaultLimit:          GetIntEnv("SEARCH_DEFAULT_LIMIT", 20),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
