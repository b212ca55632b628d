package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ctxKey int

const resourceKey ctxKey = iota

// withResource resolves the {variant} URL segment to a Resource and stores
// it in the request context. Unknown variants 404 before any handler runs.
func (s *Server) withResource(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, ok := s.resources[chi.URLParam(r, "variant")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), resourceKey, res)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resource returns the Resource stashed by withResource.
func resource(r *http.Request) *Resource {
	return r.Context().Value(resourceKey).(*Resource)
}
