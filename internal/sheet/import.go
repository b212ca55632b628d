package sheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pautaops/pauta/internal/catalog"
	"github.com/pautaops/pauta/internal/record"
)

// Result partitions an import into accepted records and per-row error
// messages. Success means no row was rejected; accepted records are
// returned either way, and the caller decides whether to persist them.
type Result struct {
	Success bool            `json:"success"`
	Records []record.Record `json:"records"`
	Errors  []string        `json:"errors"`
}

func decodeFailure(msg string) Result {
	return Result{Success: false, Records: []record.Record{}, Errors: []string{msg}}
}

// Import parses an uploaded xlsx/xls byte stream into records of the given
// catalog. Only the first sheet is read; the first row must be the header.
//
// Column headers are matched against catalog labels, unknown headers are
// ignored, and cell values are coerced per the field's declared kind. Rows
// missing required fields are rejected individually with a message naming
// the row and the missing fields; one bad row never aborts the batch. A
// byte stream that is not a readable spreadsheet fails the whole call with
// a single error and no partial result.
func Import(cat *catalog.Catalog, data []byte) Result {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return decodeFailure(fmt.Sprintf("unreadable spreadsheet: %v", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return decodeFailure("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return decodeFailure(fmt.Sprintf("read sheet %q: %v", sheets[0], err))
	}
	if len(rows) == 0 {
		return decodeFailure("spreadsheet has no header row")
	}

	// Resolve headers once; unknown columns stay unmapped and are skipped.
	headers := rows[0]
	specs := make([]catalog.FieldSpec, len(headers))
	known := make([]bool, len(headers))
	for i, h := range headers {
		if spec, ok := cat.ByLabel(strings.TrimSpace(h)); ok {
			specs[i] = spec
			known[i] = true
		}
	}

	records := []record.Record{}
	errs := []string{}
	for i, cells := range rows[1:] {
		rowNum := i + 2 // user-facing numbering counts the header as row 1
		rec := record.Record{}
		for j, cell := range cells {
			if j >= len(headers) || !known[j] {
				continue
			}
			raw := strings.TrimSpace(cell)
			if raw == "" {
				continue
			}
			spec := specs[j]
			switch spec.Kind {
			case catalog.KindDate:
				rec[spec.Key] = CoerceDate(raw)
			case catalog.KindNumber:
				rec[spec.Key] = CoerceNumber(raw)
			default:
				rec[spec.Key] = raw
			}
		}
		if len(rec) == 0 {
			continue // fully blank row
		}
		if missing := missingRequired(cat, rec); len(missing) > 0 {
			errs = append(errs, fmt.Sprintf("Row %d: %s", rowNum, strings.Join(missing, ", ")))
			continue
		}
		records = append(records, rec)
	}

	return Result{Success: len(errs) == 0, Records: records, Errors: errs}
}

func missingRequired(cat *catalog.Catalog, rec record.Record) []string {
	var missing []string
	for _, f := range cat.Required() {
		if rec.Zero(f.Key) {
			missing = append(missing, f.Key)
		}
	}
	return missing
}
