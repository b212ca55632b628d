// Package web provides the HTTP server and handlers for the reconciliation
// service: record CRUD, spreadsheet import/export, template downloads and
// edit-session operations, one route tree per record variant.
package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pautaops/pauta/internal/catalog"
	"github.com/pautaops/pauta/internal/collection"
	"github.com/pautaops/pauta/internal/config"
	"github.com/pautaops/pauta/internal/edit"
	"github.com/pautaops/pauta/internal/store"
)

// Resource bundles everything one record variant needs: its catalog, its
// storage collaborator, the in-memory collection, and the edit controller.
type Resource struct {
	Catalog *catalog.Catalog
	Store   store.Store
	Records *collection.Collection
	Edits   *edit.Controller
}

// Server is the HTTP server for the reconciliation service.
type Server struct {
	cfg       *config.Config
	resources map[string]*Resource // keyed by URL variant: "pi", "pc"
	router    *chi.Mux
	server    *http.Server
}

// NewServer creates a Server serving the given variant resources.
func NewServer(cfg *config.Config, resources map[string]*Resource) *Server {
	s := &Server{
		cfg:       cfg,
		resources: resources,
		router:    chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(securityHeaders)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/{variant}", func(r chi.Router) {
		r.Use(s.withResource)

		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/fields", s.handleFields)

		r.Post("/import", s.handleImport)
		r.Get("/export", s.handleExport)
		r.Get("/template", s.handleTemplate)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Put("/", s.handleUpdate)
			r.Delete("/", s.handleDelete)

			r.Post("/edit", s.handleStartEdit)
			r.Patch("/edit", s.handleStageFields)
			r.Delete("/edit", s.handleCancelEdit)
			r.Post("/commit", s.handleCommit)
		})
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds baseline security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
