package sheet

// export.go serializes record collections into xlsx. Column set, order and
// header labels come straight from the catalog. Number-kind cells are
// written as raw numeric values, never locale-formatted strings: display
// formatting is a presentation concern, and raw numerics keep the
// export→import round trip lossless.

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pautaops/pauta/internal/catalog"
	"github.com/pautaops/pauta/internal/record"
)

// Export serializes the records into an xlsx byte stream, one column per
// catalog field in catalog order.
func Export(cat *catalog.Catalog, recs []record.Record) ([]byte, error) {
	return write(cat, cat.Sheet, func(f catalog.FieldSpec, row int) any {
		rec := recs[row]
		if !rec.Has(f.Key) {
			return nil
		}
		if f.Kind == catalog.KindNumber {
			return rec.Number(f.Key)
		}
		return rec.String(f.Key)
	}, len(recs))
}

// Template produces the annotated import template: the header row plus a
// single example row holding every field's placeholder value.
func Template(cat *catalog.Catalog) ([]byte, error) {
	return write(cat, "Template", func(f catalog.FieldSpec, _ int) any {
		return f.Placeholder
	}, 1)
}

// ExportFilename builds the dated download name, e.g. "pauta_export_2025-03-01.xlsx".
// There is no collision handling: a later export with the same base simply
// overwrites on the client side.
func ExportFilename(base string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", base, now.Format("2006-01-02"))
}

func write(cat *catalog.Catalog, sheetName string, cell func(catalog.FieldSpec, int) any, rows int) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	fields := cat.Fields()
	headers := make([]any, len(fields))
	for i, fld := range fields {
		headers[i] = fld.Label
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for r := 0; r < rows; r++ {
		values := make([]any, len(fields))
		for i, fld := range fields {
			values[i] = cell(fld, r)
		}
		start, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, start, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r+2, err)
		}
	}

	// Width hints are advisory only.
	for i, fld := range fields {
		if fld.Width <= 0 {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, fld.Width); err != nil {
			return nil, fmt.Errorf("set width for %s: %w", fld.Label, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
