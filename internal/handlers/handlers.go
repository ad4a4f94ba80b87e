package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"

	"devkwon.dev/internal/config"
	"devkwon.dev/internal/middleware"
	"devkwon.dev/internal/services"
	"devkwon.dev/internal/view"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMid.RequestID)
	r.Use(chiMid.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(chiMid.Compress(5))
	if cfg.RequestTimeout > 0 {
		r.Use(chiMid.Timeout(cfg.RequestTimeout))
	}

	// Initialize services
	renderer, err := view.NewRenderer(cfg.Page,
		view.WithClock(cfg.Clock),
		view.WithTemplatesDir(cfg.TemplatesDir),
	)
	if err != nil {
		return nil, fmt.Errorf("setup routes: %w", err)
	}
	if cfg.TemplatesDir != "" {
		log.Printf("Reloading templates from %s on every request", cfg.TemplatesDir)
	}
	projectService := services.NewProjectService(cfg.Projects())

	// Initialize handlers
	pageHandler := NewPageHandler(renderer)
	projectHandler := NewProjectHandler(projectService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	r.Handle("/static/*", middleware.AssetsWithCache(view.Static(), "/static"))

	// The page itself
	r.Get("/", pageHandler.ServeHTTP)

	return r, nil
}

// NewServer wraps the router in an http.Server with production timeouts
func NewServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
