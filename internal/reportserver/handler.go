package reportserver

import (
	"errors"
	"io"
	"net/http"

	"conclave/internal/report"
)

const indexHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Conclave Eval Report</title>
  </head>
  <body>
    <h1>Conclave Eval Report</h1>
    <p>No run directory configured. The history database is available at
    <a href="/data/db.duckdb">/data/db.duckdb</a>.</p>
  </body>
</html>`

// NewHandler builds the HTTP handler for serving the report UI and DuckDB file.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("reportserver: db path is required")
	}

	mux := http.NewServeMux()
	mux.Handle("/", serveIndex(cfg.RunsDir))
	mux.Handle("/data/db.duckdb", serveDatabase(cfg.DBPath))
	return mux, nil
}

// serveIndex renders the report for the configured runs directory, or a bare
// shell when none is set.
func serveIndex(runsDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if runsDir == "" {
			_, _ = io.WriteString(w, indexHTML)
			return
		}
		runs, err := report.LoadDir(runsDir)
		if err != nil {
			http.Error(w, "failed to load runs: "+err.Error(), http.StatusInternalServerError)
			return
		}
		html, err := report.RenderReportHTML(r.Context(), runs)
		if err != nil {
			http.Error(w, "failed to render report: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, html)
	})
}

// serveDatabase serves the DuckDB file from disk for browser-side processing.
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
