package web

// handlers_sheet.go implements the spreadsheet surface: import uploads,
// data export and template download.

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/pautaops/pauta/internal/logging"
	"github.com/pautaops/pauta/internal/record"
	"github.com/pautaops/pauta/internal/sheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportResponse is the JSON body of an import call. Records and Errors are
// always both populated even when nothing was persisted; Imported counts
// what actually reached storage.
type ImportResponse struct {
	Success  bool            `json:"success"`
	Imported int             `json:"imported"`
	Records  []record.Record `json:"records"`
	Errors   []string        `json:"errors"`
}

// handleImport parses an uploaded spreadsheet and persists the accepted
// records, but only when the whole file validated cleanly. A file with any
// rejected row is reported back without touching storage, so the user can
// fix and re-upload.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	res := resource(r)

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxFileSize)
	if err := r.ParseMultipartForm(s.cfg.Import.MaxFileSize); err != nil {
		if errors.As(err, new(*http.MaxBytesError)) {
			respondBadRequest(w, r, "file exceeds the upload size limit")
			return
		}
		respondBadRequest(w, r, "invalid multipart form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondBadRequest(w, r, "missing \"file\" form field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondBadRequest(w, r, "read upload: "+err.Error())
		return
	}

	result := sheet.Import(res.Catalog, data)

	imported := 0
	returned := result.Records
	if result.Success && len(result.Records) > 0 {
		persisted, err := res.Store.ImportMany(r.Context(), result.Records)
		if err != nil {
			respondError(w, r, err)
			return
		}
		res.Records.Prepend(persisted...)
		imported = len(persisted)
		returned = persisted
	}

	logging.FromContext(r.Context()).Info("import finished",
		"variant", res.Catalog.Variant,
		"accepted", len(result.Records),
		"rejected", len(result.Errors),
		"persisted", imported,
	)
	respondJSON(w, http.StatusOK, ImportResponse{
		Success:  result.Success,
		Imported: imported,
		Records:  returned,
		Errors:   result.Errors,
	})
}

// handleExport serializes the current in-memory collection into a dated
// xlsx download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	res := resource(r)

	data, err := sheet.Export(res.Catalog, res.Records.Snapshot())
	if err != nil {
		respondError(w, r, err)
		return
	}
	serveFile(w, sheet.ExportFilename(res.Catalog.ExportBase, time.Now()), data)
}

// handleTemplate serves the import template under its fixed filename.
func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	res := resource(r)

	data, err := sheet.Template(res.Catalog)
	if err != nil {
		respondError(w, r, err)
		return
	}
	serveFile(w, res.Catalog.TemplateName, data)
}

func serveFile(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(data)
}
