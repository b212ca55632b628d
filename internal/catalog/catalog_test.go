package catalog

import "testing"

func TestPIColumnOrderIsStable(t *testing.T) {
	// Export and template layout depend on this exact order. A reshuffle is
	// a breaking change for everyone holding an old spreadsheet.
	wantLabels := []string{
		"ID PI", "Cliente", "Campanha", "Período Veiculação", "Data Emissão PI",
		"Número PI", "Número EC", "Número PC", "Meio", "Veículo", "Praça", "UF",
		"Fornecedor Produção", "Itens Produção", "Valor Líquido", "Valor Comissão",
		"Valor Bruto", "DOAC", "Status", "Status Geral", "Status Mídia",
		"Status Produção", "Status Faturamento", "Detalhamento Status",
		"Responsável Checking", "Ocorrência Enviada Dia",
		"Link Relatório Comprovação", "Data Envio Conformidade", "Link Conformidade",
		"Pagadoria/Nota VBS", "Data Faturamento Agência", "Data Recebimento Agência",
		"Data Repasse Fornecedor",
	}

	fields := PI.Fields()
	if len(fields) != len(wantLabels) {
		t.Fatalf("PI has %d fields, want %d", len(fields), len(wantLabels))
	}
	for i, f := range fields {
		if f.Label != wantLabels[i] {
			t.Errorf("field %d: label = %q, want %q", i, f.Label, wantLabels[i])
		}
	}
}

func TestLabelLookupInvertsFieldLabels(t *testing.T) {
	for _, cat := range []*Catalog{PI, PC} {
		for _, f := range cat.Fields() {
			got, ok := cat.ByLabel(f.Label)
			if !ok {
				t.Errorf("%s: ByLabel(%q) not found", cat.Variant, f.Label)
				continue
			}
			if got.Key != f.Key {
				t.Errorf("%s: ByLabel(%q).Key = %q, want %q", cat.Variant, f.Label, got.Key, f.Key)
			}
		}
	}
}

func TestIdentityKeys(t *testing.T) {
	tests := []struct {
		cat        *Catalog
		wantIDKey  string
		wantColumn string
	}{
		{PI, "ID_PI", "id_pi"},
		{PC, "ID_PC", "id_pc"},
	}
	for _, tt := range tests {
		if tt.cat.IDKey != tt.wantIDKey {
			t.Errorf("%s: IDKey = %q, want %q", tt.cat.Variant, tt.cat.IDKey, tt.wantIDKey)
		}
		if got := tt.cat.IDColumn(); got != tt.wantColumn {
			t.Errorf("%s: IDColumn() = %q, want %q", tt.cat.Variant, got, tt.wantColumn)
		}
		f, ok := tt.cat.ByKey(tt.cat.IDKey)
		if !ok {
			t.Fatalf("%s: identity key not declared", tt.cat.Variant)
		}
		if !f.Required {
			t.Errorf("%s: identity key must be required", tt.cat.Variant)
		}
		if f.Provenance != External {
			t.Errorf("%s: identity key must be external provenance", tt.cat.Variant)
		}
	}
}

func TestPIRequiredFields(t *testing.T) {
	want := map[string]bool{
		"ID_PI": true, "CLIENTE": true, "CAMPANHA": true, "PERIODO_VEICULACAO": true,
		"DATA_EMISSAO_PI": true, "NUMERO_PI": true, "MEIO": true, "VEICULO": true,
		"VALOR_BRUTO": true,
	}
	got := PI.Required()
	if len(got) != len(want) {
		t.Fatalf("PI has %d required fields, want %d", len(got), len(want))
	}
	for _, f := range got {
		if !want[f.Key] {
			t.Errorf("unexpected required field %s", f.Key)
		}
	}
}

func TestEnumDomains(t *testing.T) {
	f, ok := PI.ByKey("STATUS_GERAL")
	if !ok {
		t.Fatal("STATUS_GERAL not declared")
	}
	if f.Kind != KindEnum {
		t.Fatalf("STATUS_GERAL kind = %v, want KindEnum", f.Kind)
	}
	if !f.InDomain("FATURADO") {
		t.Error("FATURADO should be in the STATUS_GERAL domain")
	}
	// Out-of-domain values are stored and displayed, just not offered; the
	// catalog only reports membership.
	if f.InDomain("Algo Novo") {
		t.Error("unexpected domain member \"Algo Novo\"")
	}

	text, _ := PI.ByKey("CLIENTE")
	if !text.InDomain("qualquer coisa") {
		t.Error("non-enum fields accept everything")
	}
}

func TestCatalogColumnsAreUnique(t *testing.T) {
	for _, cat := range []*Catalog{PI, PC} {
		seen := make(map[string]string)
		for _, f := range cat.Fields() {
			if prev, dup := seen[f.Column]; dup {
				t.Errorf("%s: column %q used by both %s and %s", cat.Variant, f.Column, prev, f.Key)
			}
			seen[f.Column] = f.Key
		}
	}
}

func TestFieldsReturnsACopy(t *testing.T) {
	a := PI.Fields()
	a[0].Label = "mutated"
	b := PI.Fields()
	if b[0].Label == "mutated" {
		t.Error("Fields() must not expose internal state")
	}
}
