package web

// handlers_edit.go exposes the edit-session state machine over HTTP. The
// session itself lives server-side in the variant's controller; these
// handlers only translate requests into controller calls.

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pautaops/pauta/internal/catalog"
	"github.com/pautaops/pauta/internal/edit"
)

// handleStartEdit opens an edit session for the row, snapshotting the
// current record into the staging buffer.
func (s *Server) handleStartEdit(w http.ResponseWriter, r *http.Request) {
	res := resource(r)
	id := chi.URLParam(r, "id")

	rec, ok := res.Records.Get(id)
	if !ok {
		loaded, err := res.Store.GetByID(r.Context(), id)
		if err != nil {
			respondError(w, r, err)
			return
		}
		rec = loaded
	}

	if err := res.Edits.StartEdit(rec); err != nil {
		respondError(w, r, err)
		return
	}
	buffer, _ := res.Edits.Buffer()
	respondJSON(w, http.StatusOK, buffer)
}

// handleStageFields stages a set of field values into the open session's
// buffer. Writes to read-only or unknown fields fail the whole request and
// leave the buffer untouched.
func (s *Server) handleStageFields(w http.ResponseWriter, r *http.Request) {
	res := resource(r)
	id := chi.URLParam(r, "id")

	if err := requireSession(res, id); err != nil {
		respondError(w, r, err)
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondBadRequest(w, r, "invalid JSON body: "+err.Error())
		return
	}

	// Validate the whole patch before staging anything, so a rejected field
	// does not leave a half-applied buffer.
	for key := range fields {
		f, ok := res.Catalog.ByKey(key)
		if !ok {
			respondError(w, r, fmt.Errorf("%w: %s", edit.ErrUnknownField, key))
			return
		}
		if f.Provenance == catalog.External {
			respondError(w, r, fmt.Errorf("%w: %s", edit.ErrReadOnlyField, key))
			return
		}
	}
	for key, value := range fields {
		if err := res.Edits.SetField(key, value); err != nil {
			respondError(w, r, err)
			return
		}
	}

	buffer, _ := res.Edits.Buffer()
	respondJSON(w, http.StatusOK, buffer)
}

// handleCommit merges the staged buffer through the storage collaborator.
func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	res := resource(r)
	id := chi.URLParam(r, "id")

	if err := requireSession(res, id); err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := res.Edits.CommitEdit(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// handleCancelEdit discards the row's staging buffer.
func (s *Server) handleCancelEdit(w http.ResponseWriter, r *http.Request) {
	res := resource(r)
	id := chi.URLParam(r, "id")

	if err := requireSession(res, id); err != nil {
		respondError(w, r, err)
		return
	}
	res.Edits.CancelEdit()
	w.WriteHeader(http.StatusNoContent)
}

// requireSession checks that the open session, if any, belongs to the row
// addressed by the URL.
func requireSession(res *Resource, id string) error {
	open, ok := res.Edits.EditingID()
	if !ok || open != id {
		return fmt.Errorf("row %q: %w", id, edit.ErrNoSession)
	}
	return nil
}
