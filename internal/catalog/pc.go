package catalog

// PC is the catalog for purchase orders (pedidos de compra), the
// production-side counterpart of PI. Structure mirrors PI: a feed-owned
// block followed by the manual blocks for produção, checking and financeiro.
var PC = newCatalog(Catalog{
	Variant:      "PC",
	IDKey:        "ID_PC",
	Table:        "pauta_pedidos_compra",
	Sheet:        "Producao",
	ExportBase:   "producao_export",
	TemplateName: "template_importacao_producao.xlsx",
}, []FieldSpec{
	// Identificação e dados do feed
	{Key: "ID_PC", Label: "ID PC", Column: "id_pc", Provenance: External, Kind: KindText, Required: true, Width: 15, Placeholder: "PC-2025-XXX"},
	{Key: "NUMERO_EC", Label: "Número EC", Column: "numero_ec", Provenance: External, Kind: KindNumber, Width: 12, Placeholder: 1001},
	{Key: "NUMERO_PC", Label: "Número PC", Column: "numero_pc", Provenance: External, Kind: KindNumber, Required: true, Width: 12, Placeholder: 54321},
	{Key: "CLIENTE", Label: "Cliente", Column: "cliente", Provenance: External, Kind: KindText, Required: true, Width: 25, Placeholder: "Nome do Cliente"},
	{Key: "DOAC", Label: "DOAC", Column: "doac", Provenance: External, Kind: KindText, Width: 18, Placeholder: "DOAC-2025-XXX"},
	{Key: "CAMPANHA", Label: "Campanha", Column: "campanha", Provenance: External, Kind: KindText, Required: true, Width: 30, Placeholder: "Nome da Campanha"},
	{Key: "PERIODO", Label: "Período", Column: "periodo", Provenance: External, Kind: KindText, Required: true, Width: 25, Placeholder: "01/01/2025 - 31/01/2025"},
	{Key: "VALOR_BRUTO", Label: "Valor Bruto", Column: "valor_bruto", Provenance: External, Kind: KindNumber, Required: true, Width: 15, Placeholder: 25000.00},
	{Key: "STATUS_FATURAMENTO", Label: "Status Faturamento", Column: "status_faturamento", Provenance: External, Kind: KindEnum, EnumValues: StatusFaturamentoValues, Width: 20, Placeholder: "Não Faturado"},
	{Key: "NOTA_VBS", Label: "Nota VBS", Column: "nota_vbs", Provenance: External, Kind: KindText, Width: 18, Placeholder: "NF-2025-XXX"},

	// Produção (manual)
	{Key: "ITENS", Label: "Itens", Column: "itens", Provenance: Manual, Kind: KindText, Width: 30, Placeholder: "Descrição dos itens"},
	{Key: "FORNECEDOR", Label: "Fornecedor", Column: "fornecedor", Provenance: Manual, Kind: KindText, Width: 25, Placeholder: "Nome do Fornecedor"},
	{Key: "STATUS", Label: "Status", Column: "status", Provenance: Manual, Kind: KindText, Width: 20, Placeholder: "Em Andamento"},
	{Key: "DETALHAMENTO", Label: "Detalhamento", Column: "detalhamento", Provenance: Manual, Kind: KindText, Width: 40, Placeholder: "Observações sobre o status"},
	{Key: "OCORRENCIA_ENVIADA_DIA", Label: "Ocorrência Enviada Dia", Column: "ocorrencia_enviada_dia", Provenance: Manual, Kind: KindDate, Width: 18, Placeholder: "2025-01-01"},
	{Key: "STATUS_PRODUCAO", Label: "Status Produção", Column: "status_producao", Provenance: Manual, Kind: KindText, Width: 20, Placeholder: "Não Iniciado"},

	// Checking (manual)
	{Key: "RESPONSAVEL_CHECKING", Label: "Responsável Checking", Column: "responsavel_checking", Provenance: Manual, Kind: KindEnum, EnumValues: ResponsavelCheckingValues, Width: 20, Placeholder: "Ana Silva"},
	{Key: "DATA_ENVIO_CONFORMIDADE", Label: "Data Envio Conformidade", Column: "data_envio_conformidade", Provenance: Manual, Kind: KindDate, Width: 20, Placeholder: "2025-01-01"},
	{Key: "LINK_CONFORMIDADE", Label: "Link Conformidade", Column: "link_conformidade", Provenance: Manual, Kind: KindURL, Width: 30, Placeholder: "https://exemplo.com"},
	{Key: "LINK_COMPROVANTE", Label: "Link Comprovante", Column: "link_comprovante", Provenance: Manual, Kind: KindURL, Width: 30, Placeholder: "https://exemplo.com"},
	{Key: "PAGADORIA_NOTA_VBS", Label: "Pagadoria/Nota VBS", Column: "pagadoria_nota_vbs", Provenance: Manual, Kind: KindText, Width: 20, Placeholder: "NF-2025-XXX"},

	// Financeiro (manual)
	{Key: "DATA_FATURAMENTO_AGENCIA", Label: "Data Faturamento Agência", Column: "data_faturamento_agencia", Provenance: Manual, Kind: KindDate, Width: 22, Placeholder: "2025-01-01"},
	{Key: "DATA_RECEBIMENTO_AGENCIA", Label: "Data Recebimento Agência", Column: "data_recebimento_agencia", Provenance: Manual, Kind: KindDate, Width: 22, Placeholder: "2025-01-01"},
	{Key: "DATA_REPASSE_FORNECEDOR", Label: "Data Repasse Fornecedor", Column: "data_repasse_fornecedor", Provenance: Manual, Kind: KindDate, Width: 22, Placeholder: "2025-01-01"},
})
