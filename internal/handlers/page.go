package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	"devkwon.dev/internal/view"
)

// PageHandler serves the portfolio page
type PageHandler struct {
	handler http.Handler
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(renderer *view.Renderer) *PageHandler {
	h := templ.Handler(renderer.Page(),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				log.Printf("Error rendering page: %v", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	)
	return &PageHandler{handler: h}
}

// ServeHTTP handles GET /
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}
