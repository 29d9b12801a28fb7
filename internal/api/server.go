package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/shopsearch/backend/internal/catalog"
	"github.com/shopsearch/backend/internal/engine"
)

// Server exposes the ranking engine over a JSON API. This layer is glue
// only; all relevance behavior lives in the engine.
type Server struct {
	Engine      *engine.Engine
	Logger      *logrus.Entry
	Router      *http.ServeMux
	CatalogPath string
}

func NewServer(eng *engine.Engine, logger *logrus.Entry, catalogPath string) *Server {
	s := &Server{
		Engine:      eng,
		Logger:      logger,
		Router:      http.NewServeMux(),
		CatalogPath: catalogPath,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("/api/v1/search", s.handleSearch)
	s.Router.HandleFunc("/api/v1/status", s.handleStatus)
	s.Router.HandleFunc("/api/v1/reload", s.handleReload)
}

func (s *Server) Start(port string) error {
	s.Logger.Infof("Starting API Server on %s", port)
	return http.ListenAndServe(port, s.Router)
}

// Responses

type ErrorResponse struct {
	Error string `json:"error"`
}

type SearchResponse struct {
	Query   string       `json:"query"`
	Parsed  ParsedView   `json:"parsed"`
	Results []ResultView `json:"results"`
}

type ParsedView struct {
	Keywords  []string `json:"keywords"`
	Category  string   `json:"category,omitempty"`
	PriceMin  *float64 `json:"price_min,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty"`
	RatingMin *float64 `json:"rating_min,omitempty"`
}

type ResultView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
	Score    float64 `json:"score"`
}

type StatusResponse struct {
	Documents      int    `json:"documents"`
	VocabularySize int    `json:"vocabulary_size"`
	LastIndexed    string `json:"last_indexed"`
}

// Handlers

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := r.URL.Query()
	rawQuery := params.Get("q")

	filters := engine.Filters{
		Category:  params.Get("category"),
		PriceMin:  floatParam(params.Get("min_price")),
		PriceMax:  floatParam(params.Get("max_price")),
		RatingMin: floatParam(params.Get("min_rating")),
	}

	sortOrder := params.Get("sort")
	if sortOrder == "" {
		sortOrder = engine.SortRelevance
	}

	limit := s.Engine.Config.DefaultLimit
	if v := params.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	items, parsed := s.Engine.Rank(rawQuery, filters, sortOrder)
	if len(items) > limit {
		items = items[:limit]
	}

	response := SearchResponse{
		Query: rawQuery,
		Parsed: ParsedView{
			Keywords:  parsed.Keywords,
			Category:  parsed.Category,
			PriceMin:  parsed.PriceMin,
			PriceMax:  parsed.PriceMax,
			RatingMin: parsed.RatingMin,
		},
		Results: make([]ResultView, len(items)),
	}
	for i, item := range items {
		response.Results[i] = ResultView{
			ID:       item.Product.ID,
			Name:     item.Product.Name,
			Price:    item.Product.Price,
			Category: item.Product.Category,
			Rating:   item.Product.Rating,
			Score:    item.Score,
		}
	}

	jsonResponse(w, http.StatusOK, response)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats := s.Engine.Stats()
	jsonResponse(w, http.StatusOK, StatusResponse{
		Documents:      stats.Documents,
		VocabularySize: stats.VocabularySize,
		LastIndexed:    stats.LastIndexed.Format("2006-01-02T15:04:05Z07:00"),
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := catalog.Load(s.CatalogPath)
	if err != nil {
		s.Logger.WithError(err).Error("Failed to reload catalog")
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	s.Engine.LoadCatalog(products)
	jsonResponse(w, http.StatusOK, map[string]int{"documents": len(products)})
}

func jsonResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func floatParam(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}
