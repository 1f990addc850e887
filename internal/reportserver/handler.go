package reportserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"mentis/internal/report"
	"mentis/internal/store"
)

// recentSessionLimit caps the rows shown on the report page.
const recentSessionLimit = 50

// NewHandler builds the HTTP handler for the report UI, the JSON data
// endpoints, and the raw database download.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.DB == nil {
		return nil, errors.New("reportserver: db is required")
	}
	if cfg.DBPath == "" {
		return nil, errors.New("reportserver: db path is required")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", serveReport(cfg))
	mux.HandleFunc("/api/sessions", serveSessions(cfg))
	mux.HandleFunc("/api/progress", serveProgress(cfg))
	mux.Handle("/data/db.duckdb", serveDatabase(cfg.DBPath))
	return mux, nil
}

// serveReport renders the HTML report from the live database.
func serveReport(cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		progress, err := store.LoadProgress(r.Context(), cfg.DB)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		sessions, err := store.ListSessions(r.Context(), cfg.DB, "", recentSessionLimit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		html, err := report.BuildHTML(cfg.Player, progress, sessions)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}

// serveSessions returns persisted sessions as JSON, optionally filtered
// by the task query parameter.
func serveSessions(cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := store.ListSessions(r.Context(), cfg.DB, r.URL.Query().Get("task"), 0)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, sessions)
	}
}

// serveProgress returns the per-task aggregates as JSON.
func serveProgress(cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		progress, err := store.LoadProgress(r.Context(), cfg.DB)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, progress)
	}
}

// serveDatabase serves the DuckDB file for offline analysis.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	})
}

func writeJSON(w http.ResponseWriter, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
