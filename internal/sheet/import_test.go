package sheet

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/pautaops/pauta/internal/catalog"
)

// buildSheet assembles an in-memory workbook from rows of cell values, the
// first row being the header.
func buildSheet(t *testing.T, rows ...[]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i := range rows {
		start, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", start, &rows[i]); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func piRow(id, cliente string) []any {
	return []any{id, cliente, "Verão 2025", "01/01/2025 - 31/01/2025", "2025-01-01", 12345, "Internet", "Google Ads", 57500.00}
}

var piHeader = []any{"ID PI", "Cliente", "Campanha", "Período Veiculação", "Data Emissão PI", "Número PI", "Meio", "Veículo", "Valor Bruto"}

func TestImportAcceptsCompleteRows(t *testing.T) {
	data := buildSheet(t, piHeader,
		piRow("PI-2025-001", "Cliente A"),
		piRow("PI-2025-002", "Cliente B"),
	)

	res := Import(catalog.PI, data)
	if !res.Success {
		t.Fatalf("Success = false, errors: %v", res.Errors)
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(res.Records))
	}

	rec := res.Records[0]
	if got := rec.String("ID_PI"); got != "PI-2025-001" {
		t.Errorf("ID_PI = %q", got)
	}
	if got := rec.String("NUMERO_PI"); got != "12345" {
		t.Errorf("NUMERO_PI = %q, want string %q", got, "12345")
	}
	if got := rec.Number("VALOR_BRUTO"); got != 57500 {
		t.Errorf("VALOR_BRUTO = %v, want 57500", got)
	}
	if got := rec.String("DATA_EMISSAO_PI"); got != "2025-01-01" {
		t.Errorf("DATA_EMISSAO_PI = %q", got)
	}
}

func TestImportRejectsRowsMissingRequiredFields(t *testing.T) {
	// Row 3 (first data row is row 2) has an empty Cliente cell.
	data := buildSheet(t, piHeader,
		piRow("PI-2025-001", "Cliente A"),
		piRow("PI-2025-002", ""),
		piRow("PI-2025-003", "Cliente C"),
	)

	res := Import(catalog.PI, data)
	if res.Success {
		t.Fatal("Success = true for sheet with a bad row")
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d records, want 2; the bad row must not abort the batch", len(res.Records))
	}
	if len(res.Errors) != 1 || res.Errors[0] != "Row 3: CLIENTE" {
		t.Fatalf("errors = %v, want [\"Row 3: CLIENTE\"]", res.Errors)
	}
	for _, rec := range res.Records {
		if rec.String("ID_PI") == "PI-2025-002" {
			t.Error("rejected row leaked into accepted records")
		}
	}
}

func TestImportNamesEveryMissingField(t *testing.T) {
	data := buildSheet(t, piHeader,
		[]any{"PI-2025-001", "", "", "01/01/2025 - 31/01/2025", "2025-01-01", 12345, "Internet", "Google Ads", 57500.00},
	)

	res := Import(catalog.PI, data)
	if len(res.Errors) != 1 || res.Errors[0] != "Row 2: CLIENTE, CAMPANHA" {
		t.Fatalf("errors = %v, want [\"Row 2: CLIENTE, CAMPANHA\"]", res.Errors)
	}
}

func TestImportIgnoresUnknownHeaders(t *testing.T) {
	header := append(append([]any{}, piHeader...), "Coluna Misteriosa")
	row := append(piRow("PI-2025-001", "Cliente A"), "ignorado")
	data := buildSheet(t, header, row)

	res := Import(catalog.PI, data)
	if !res.Success || len(res.Records) != 1 {
		t.Fatalf("res = %+v", res)
	}
	for key := range res.Records[0] {
		if _, ok := catalog.PI.ByKey(key); !ok {
			t.Errorf("record carries non-catalog key %q", key)
		}
	}
}

func TestImportSkipsBlankRows(t *testing.T) {
	data := buildSheet(t, piHeader,
		piRow("PI-2025-001", "Cliente A"),
		[]any{"", "", "", "", "", "", "", "", ""},
		piRow("PI-2025-003", "Cliente C"),
	)

	res := Import(catalog.PI, data)
	if !res.Success {
		t.Fatalf("Success = false, errors: %v", res.Errors)
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(res.Records))
	}
}

func TestImportUnreadableBytes(t *testing.T) {
	res := Import(catalog.PI, []byte("this is not a spreadsheet"))
	if res.Success {
		t.Fatal("Success = true for garbage bytes")
	}
	if len(res.Records) != 0 {
		t.Fatalf("got %d records, want 0", len(res.Records))
	}
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors, want exactly 1", len(res.Errors))
	}
}

func TestImportCoercesDateSerials(t *testing.T) {
	row := piRow("PI-2025-001", "Cliente A")
	row[4] = 45658 // date serial for 2025-01-01
	data := buildSheet(t, piHeader, row)

	res := Import(catalog.PI, data)
	if !res.Success {
		t.Fatalf("Success = false, errors: %v", res.Errors)
	}
	if got := res.Records[0].String("DATA_EMISSAO_PI"); got != "2025-01-01" {
		t.Errorf("DATA_EMISSAO_PI = %q, want 2025-01-01", got)
	}
}

func TestTemplateRoundTrips(t *testing.T) {
	for _, cat := range []*catalog.Catalog{catalog.PI, catalog.PC} {
		t.Run(cat.Variant, func(t *testing.T) {
			data, err := Template(cat)
			if err != nil {
				t.Fatal(err)
			}
			res := Import(cat, data)
			if !res.Success {
				t.Fatalf("template rejected by its own importer: %v", res.Errors)
			}
			if len(res.Records) != 1 {
				t.Fatalf("got %d records, want 1", len(res.Records))
			}
			// The accepted record carries every field's literal placeholder.
			rec := res.Records[0]
			for _, f := range cat.Fields() {
				switch f.Kind {
				case catalog.KindNumber:
					want, ok := f.Placeholder.(float64)
					if !ok {
						want = float64(f.Placeholder.(int))
					}
					if got := rec.Number(f.Key); got != want {
						t.Errorf("%s = %v, want placeholder %v", f.Key, got, want)
					}
				default:
					if got := rec.String(f.Key); got != f.Placeholder.(string) {
						t.Errorf("%s = %q, want placeholder %q", f.Key, got, f.Placeholder)
					}
				}
			}
		})
	}
}
