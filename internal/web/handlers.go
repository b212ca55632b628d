package web

// handlers.go implements the record CRUD surface. The list endpoint reads
// the in-memory collection; writes go through the storage collaborator and
// the collection mirrors the authoritative responses.

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pautaops/pauta/internal/logging"
	"github.com/pautaops/pauta/internal/record"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// FieldInfo is the JSON shape of one catalog field, enough for a UI to build
// its columns, pickers and read-only markers without re-deriving anything.
type FieldInfo struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Provenance string   `json:"provenance"`
	Kind       string   `json:"kind"`
	EnumValues []string `json:"enumValues,omitempty"`
	Required   bool     `json:"required"`
}

// handleFields returns the variant's field catalog in column order.
func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	res := resource(r)

	fields := res.Catalog.Fields()
	out := make([]FieldInfo, len(fields))
	for i, f := range fields {
		out[i] = FieldInfo{
			Key:        f.Key,
			Label:      f.Label,
			Provenance: f.Provenance.String(),
			Kind:       f.Kind.String(),
			EnumValues: f.EnumValues,
			Required:   f.Required,
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// handleList returns the current collection snapshot. With ?refresh=1 the
// collection is reloaded from storage first.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	res := resource(r)

	if r.URL.Query().Get("refresh") == "1" {
		recs, err := res.Store.GetAll(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}
		res.Records.ReplaceAll(recs)
	}

	respondJSON(w, http.StatusOK, res.Records.Snapshot())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	res := resource(r)

	rec, err := res.Store.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// handleCreate inserts a new record. A missing identity key is generated
// against the live collection, and for variants carrying the net/commission
// pair an unset gross value is derived once here.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	res := resource(r)

	rec, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	if rec.String(res.Catalog.IDKey) == "" {
		rec[res.Catalog.IDKey] = record.NewKey(res.Catalog.Variant, res.Records.Exists)
	}
	record.DeriveGross(res.Catalog, rec)

	created, err := res.Store.Create(r.Context(), rec)
	if err != nil {
		respondError(w, r, err)
		return
	}
	res.Records.Prepend(created)

	logging.FromContext(r.Context()).Info("record created",
		"variant", res.Catalog.Variant,
		"id", created.String(res.Catalog.IDKey),
	)
	respondJSON(w, http.StatusCreated, created)
}

// handleUpdate applies a partial record directly through the storage
// contract, bypassing any edit session.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	res := resource(r)
	id := chi.URLParam(r, "id")

	partial, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	updated, err := res.Store.Update(r.Context(), id, partial)
	if err != nil {
		respondError(w, r, err)
		return
	}
	res.Records.Replace(updated)
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	res := resource(r)
	id := chi.URLParam(r, "id")

	if err := res.Store.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	res.Records.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}

// decodeRecord reads a JSON object body into a Record. On failure it writes
// the error response and returns ok=false. A literal null body decodes to a
// nil map, which callers must be able to write to, so it comes back as an
// empty record.
func decodeRecord(w http.ResponseWriter, r *http.Request) (record.Record, bool) {
	var rec record.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respondBadRequest(w, r, "invalid JSON body: "+err.Error())
		return nil, false
	}
	if rec == nil {
		rec = record.Record{}
	}
	return rec, true
}
