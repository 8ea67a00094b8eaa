// Package handler implements the HTTP handlers for the Travel Booklet API.
// All handlers are methods on Server; routes are assembled by Routes so
// main.go and tests wire the exact same router.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acourtney/travel-booklet/internal/domain"
	"github.com/acourtney/travel-booklet/spec"
)

// BookletServicer defines the business operations the handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without running the generation pipeline.
type BookletServicer interface {
	Create(ctx context.Context, input domain.PreferencesInput) (domain.TravelPreferences, error)
	GetByID(ctx context.Context, id int) (domain.TravelPreferences, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	booklets BookletServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(booklets BookletServicer) *Server {
	return &Server{booklets: booklets}
}

// Routes returns the API router. Middleware is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)

	r.Route("/api/booklets", func(r chi.Router) {
		r.Post("/", s.CreateBooklet)
		r.Get("/{id}", s.GetBooklet)
	})

	return r
}

// GetOpenAPISpec handles GET /openapi.yaml.
// Serving the embedded document keeps the spec and the running code in sync.
func (s *Server) GetOpenAPISpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
