package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/domain"
	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/feed"
)

// FallbackMessage is served when every extraction tier came up empty, the
// reader is pointed at the original source instead of getting an error.
const FallbackMessage = "Pełna treść artykułu dostępna jest u źródła. Kliknij w link, aby przeczytać całość."

// rssResponse is the payload of GET /api/rss
type rssResponse struct {
	Items  []domain.FeedItem `json:"items"`
	Source string            `json:"source"`
	Count  int               `json:"count"`
}

// rssHandler serves aggregated feed items for a topic. It always answers
// 200: a topic whose every feed is down yields an empty items list.
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	topic := s.aggregator.ResolveTopic(r.URL.Query().Get("feed"))

	limit := feed.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	items := s.aggregator.Aggregate(r.Context(), topic, limit)
	if items == nil {
		items = []domain.FeedItem{}
	}

	renderJSON(w, r, http.StatusOK, rssResponse{Items: items, Source: topic, Count: len(items)})
}

// articleHandler serves extracted article body text for a URL. Extraction
// failures degrade to the fallback message, only a missing url parameter is
// a client error.
func (s *Server) articleHandler(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("[ERROR] article handler panic: %v", p)
			renderJSON(w, r, http.StatusInternalServerError, map[string]string{
				"error":   "Failed to fetch article",
				"content": FallbackMessage,
			})
		}
	}()

	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		renderError(w, r, fmt.Errorf("Missing URL parameter"), http.StatusBadRequest)
		return
	}

	article := s.articles.Article(r.Context(), rawURL)
	if article.Content == "" {
		article.Content = FallbackMessage
	}

	renderJSON(w, r, http.StatusOK, article)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
