package router

import (
	"encoding/json"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpmiddleware "github.com/mareksuchodolski12-hash/marek-it-website/internal/http/middleware"
	"github.com/mareksuchodolski12-hash/marek-it-website/internal/leads"
	"github.com/mareksuchodolski12-hash/marek-it-website/internal/ratelimit"
	"github.com/mareksuchodolski12-hash/marek-it-website/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	LeadsHandler   *leads.Handler
	Limiter        ratelimit.Limiter
	MetricsHandler http.Handler

	// PublicDir is the root of the static site; unknown paths fall back to
	// its index.html.
	PublicDir string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Registered before the /api subrouter so chi copies it there as well;
	// unknown /api paths then get the JSON 404 instead of the landing page.
	r.NotFound(staticSite(cfg.PublicDir))

	r.Get("/health", healthCheck)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Every /api route sits behind the throttle; static pages bypass it.
	r.Route("/api", func(api chi.Router) {
		if cfg.Limiter != nil {
			api.Use(httpmiddleware.RateLimit(cfg.Limiter, cfg.Logger))
		}
		api.Post("/lead", cfg.LeadsHandler.SubmitLead)
	})

	return r
}

// healthCheck reports liveness for uptime monitors.
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}{
		Status:    "running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// staticSite serves files from the public directory, falling back to
// index.html for unmatched page routes. API paths never fall through to the
// page; a miss there is a JSON 404.
func staticSite(publicDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
			leads.WriteJSON(w, http.StatusNotFound, leads.Response{OK: false, Error: "Nie znaleziono."})
			return
		}

		// path.Clean on a rooted path strips any ".." segments before the
		// request reaches the filesystem.
		rel := path.Clean("/" + r.URL.Path)
		file := filepath.Join(publicDir, filepath.FromSlash(rel))

		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			http.ServeFile(w, r, file)
			return
		}

		http.ServeFile(w, r, filepath.Join(publicDir, "index.html"))
	}
}
