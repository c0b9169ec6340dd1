// Package main implements a mock eMAG mobile API for local development.
// It serves canned payloads from a JSON fixture, issues session
// credentials on the user-details probe and rejects data requests that
// carry none.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	tokenHeader  = "x-tokens"
	defaultLimit = 60
)

type fixture struct {
	Navs       []json.RawMessage          `json:"navs"`
	Categories map[string]json.RawMessage `json:"categories"`
	Redirects  map[string]int             `json:"redirects"`
	Items      []json.RawMessage          `json:"items"`
	Filters    json.RawMessage            `json:"filters"`
	Products   map[string]json.RawMessage `json:"products"`
	Reviews    map[string]json.RawMessage `json:"reviews"`
}

type envelope struct {
	Code          int `json:"code"`
	Data          any `json:"data"`
	Notifications any `json:"notifications"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog.json", "path to catalog fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture",
		"navs", len(fx.Navs),
		"items", len(fx.Items),
		"products", len(fx.Products),
	)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eMAG server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fx)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func newMux(logger *slog.Logger, fx *fixture) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2.0/user/details", tokenHandler(logger))
	mux.Handle("GET /nav/all", authenticated(logger, navAllHandler(fx)))
	mux.Handle("GET /nav/{path...}", authenticated(logger, navHandler(fx)))
	mux.Handle("GET /search-by-filters-with-redirect", authenticated(logger, searchHandler(logger, fx)))
	mux.Handle("GET /products/{id}", authenticated(logger, keyedHandler(fx.Products)))
	mux.Handle("GET /products/{id}/reviews", authenticated(logger, keyedHandler(fx.Reviews)))
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// tokenHandler answers the user-details probe. Only the header matters to
// clients; GET also gets a body.
func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead && r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set(tokenHeader, "mock-token-"+strconv.FormatInt(int64(os.Getpid()), 16))
		if r.Method == http.MethodGet {
			writeEnvelope(w, http.StatusOK, map[string]any{"is_logged_in": false})
		}
		logger.Info("issued mock credential")
	}
}

func authenticated(logger *slog.Logger, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(tokenHeader) == "" {
			logger.Warn("request missing session credential", "path", r.URL.Path)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next(w, r)
	})
}

func navAllHandler(fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{
			"navs":  nonNil(fx.Navs),
			"limit": len(fx.Navs),
			"count": len(fx.Navs),
		})
	}
}

func navHandler(fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nav, ok := fx.Categories["/nav/"+r.PathValue("path")]
		if !ok {
			writeEnvelope(w, http.StatusNotFound, nil)
			return
		}
		writeEnvelope(w, http.StatusOK, nav)
	}
}

// keyedHandler serves a payload keyed by the {id} path value.
func keyedHandler(payloads map[string]json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := payloads[r.PathValue("id")]
		if !ok {
			writeEnvelope(w, http.StatusNotFound, nil)
			return
		}
		writeEnvelope(w, http.StatusOK, payload)
	}
}

func searchHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	type indexedItem struct {
		raw  json.RawMessage
		name string
	}
	items := make([]indexedItem, 0, len(fx.Items))
	for _, raw := range fx.Items {
		var s struct {
			Name string `json:"name"`
		}
		//nolint:errcheck,gosec // fixture data is trusted; name extraction is best-effort
		json.Unmarshal(raw, &s)
		items = append(items, indexedItem{raw: raw, name: strings.ToLower(s.Name)})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		q := strings.ToLower(query.Get("filters[query]"))

		if id, ok := fx.Redirects[q]; ok && query.Get("filters[category][]") == "" {
			writeEnvelope(w, http.StatusOK, map[string]any{
				"deeplink": fmt.Sprintf("emag://listing/category_id=%d", id),
				"items":    []any{},
			})
			logger.Info("search redirected", "query", q, "category_id", id)
			return
		}

		limit := intParam(query.Get("page[limit]"), defaultLimit, 1)
		offset := intParam(query.Get("page[offset]"), 0, 0)

		var matched []json.RawMessage
		for _, item := range items {
			if q == "" || strings.Contains(item.name, q) {
				matched = append(matched, item.raw)
			}
		}
		total := len(matched)

		if offset >= len(matched) {
			matched = nil
		} else {
			end := min(offset+limit, len(matched))
			matched = matched[offset:end]
		}

		writeEnvelope(w, http.StatusOK, map[string]any{
			"title":   query.Get("filters[query]"),
			"items":   nonNil(matched),
			"filters": fx.Filters,
			"pagination": map[string]int{
				"position_item_start": offset + 1,
				"position_item_end":   offset + len(matched),
				"items_count":         total,
				"items_per_page":      limit,
			},
		})
		logger.Info("search", "query", q, "matched", total, "returned", len(matched), "offset", offset)
	}
}

func intParam(raw string, fallback, floor int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < floor {
		return fallback
	}
	return v
}

func nonNil(items []json.RawMessage) []json.RawMessage {
	if items == nil {
		return []json.RawMessage{}
	}
	return items
}

func writeEnvelope(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(envelope{Code: code, Data: data})
}
