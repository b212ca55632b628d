package catalog

// Closed status domains for insertion orders. Values outside these lists are
// stored and displayed as-is but never offered in pickers.
var (
	StatusGeralValues = []string{
		"Checking: Em Análise",
		"Pendente: Veículo",
		"Pendente: Mídia",
		"Pendente: Fiscalizadora",
		"Cliente: Aguardando Conformidade",
		"FATURADO",
		"PI CANCELADO",
		"Aprovado",
		"Em Produção",
	}

	StatusFaturamentoValues = []string{
		"Não Faturado",
		"Faturado Parcial",
		"Faturado Total",
	}

	ResponsavelCheckingValues = []string{
		"Ana Silva",
		"Carlos Mendes",
		"Juliana Costa",
	}
)

// PI is the catalog for insertion orders (pedidos de inserção).
//
// The first block of fields comes from the upstream feed and is read-only;
// everything from DOAC on is owned by the internal teams. Field order is the
// export column order and must not be reshuffled between releases.
var PI = newCatalog(Catalog{
	Variant:      "PI",
	IDKey:        "ID_PI",
	Table:        "pauta_pedidos_insercao",
	Sheet:        "Pauta",
	ExportBase:   "pauta_export",
	TemplateName: "template_importacao_pauta.xlsx",
}, []FieldSpec{
	// Dados gerais (feed)
	{Key: "ID_PI", Label: "ID PI", Column: "id_pi", Provenance: External, Kind: KindText, Required: true, Width: 15, Placeholder: "PI-2025-XXX"},
	{Key: "CLIENTE", Label: "Cliente", Column: "cliente", Provenance: External, Kind: KindText, Required: true, Width: 25, Placeholder: "Nome do Cliente"},
	{Key: "CAMPANHA", Label: "Campanha", Column: "campanha", Provenance: External, Kind: KindText, Required: true, Width: 30, Placeholder: "Nome da Campanha"},
	{Key: "PERIODO_VEICULACAO", Label: "Período Veiculação", Column: "periodo", Provenance: External, Kind: KindText, Required: true, Width: 25, Placeholder: "01/01/2025 - 31/01/2025"},
	{Key: "DATA_EMISSAO_PI", Label: "Data Emissão PI", Column: "data_emissao", Provenance: External, Kind: KindDate, Required: true, Width: 15, Placeholder: "2025-01-01"},
	{Key: "NUMERO_PI", Label: "Número PI", Column: "numero_pi", Provenance: External, Kind: KindText, Required: true, IntColumn: true, Width: 12, Placeholder: "12345"},
	{Key: "NUMERO_EC", Label: "Número EC", Column: "numero_ec", Provenance: External, Kind: KindText, Width: 12, Placeholder: "EC-001"},
	{Key: "NUMERO_PC", Label: "Número PC", Column: "numero_pc", Provenance: External, Kind: KindText, Width: 12, Placeholder: "PC-001"},

	// Dados de mídia (feed)
	{Key: "MEIO", Label: "Meio", Column: "tipo_midia", Provenance: External, Kind: KindText, Required: true, Width: 15, Placeholder: "Internet"},
	{Key: "VEICULO", Label: "Veículo", Column: "veiculo", Provenance: External, Kind: KindText, Required: true, Width: 20, Placeholder: "Google Ads"},
	{Key: "PRACA", Label: "Praça", Column: "praca", Provenance: External, Kind: KindText, Width: 20, Placeholder: "Nacional"},
	{Key: "UF", Label: "UF", Column: "uf", Provenance: External, Kind: KindText, Width: 8, Placeholder: "BR"},

	// Dados de produção (feed)
	{Key: "FORNECEDOR_PRODUCAO", Label: "Fornecedor Produção", Column: "fornecedor", Provenance: External, Kind: KindText, Width: 25, Placeholder: "Nome do Fornecedor"},
	{Key: "ITENS_PRODUCAO", Label: "Itens Produção", Column: "itens", Provenance: External, Kind: KindText, Width: 30, Placeholder: "Descrição dos itens"},

	// Valores (feed)
	{Key: "VALOR_LIQUIDO", Label: "Valor Líquido", Column: "valor_liquido", Provenance: External, Kind: KindNumber, Width: 15, Placeholder: 50000.00},
	{Key: "VALOR_COMISSAO", Label: "Valor Comissão", Column: "valor_comissao", Provenance: External, Kind: KindNumber, Width: 15, Placeholder: 7500.00},
	{Key: "VALOR_BRUTO", Label: "Valor Bruto", Column: "valor_bruto", Provenance: External, Kind: KindNumber, Required: true, Width: 15, Placeholder: 57500.00},

	// Status e controle (manual)
	{Key: "DOAC", Label: "DOAC", Column: "doac", Provenance: Manual, Kind: KindText, Width: 18, Placeholder: "DOAC-2025-XXX"},
	{Key: "STATUS", Label: "Status", Column: "status", Provenance: Manual, Kind: KindText, Width: 20, Placeholder: "Em Andamento"},
	{Key: "STATUS_GERAL", Label: "Status Geral", Column: "status_geral", Provenance: Manual, Kind: KindEnum, EnumValues: StatusGeralValues, Width: 25, Placeholder: "Checking: Em Análise"},
	{Key: "STATUS_MIDIA", Label: "Status Mídia", Column: "status_midia", Provenance: Manual, Kind: KindText, Width: 20, Placeholder: "Em Planejamento"},
	{Key: "STATUS_PRODUCAO", Label: "Status Produção", Column: "status_producao", Provenance: Manual, Kind: KindText, Width: 20, Placeholder: "Não Iniciado"},
	{Key: "STATUS_FATURAMENTO", Label: "Status Faturamento", Column: "status_faturamento", Provenance: Manual, Kind: KindEnum, EnumValues: StatusFaturamentoValues, Width: 20, Placeholder: "Não Faturado"},
	{Key: "DETALHAMENTO", Label: "Detalhamento Status", Column: "detalhamento", Provenance: Manual, Kind: KindText, Width: 40, Placeholder: "Observações sobre o status"},
	{Key: "RESPONSAVEL_CHECKING", Label: "Responsável Checking", Column: "responsavel_checking", Provenance: Manual, Kind: KindEnum, EnumValues: ResponsavelCheckingValues, Width: 20, Placeholder: "Ana Silva"},
	{Key: "OCORRENCIA_ENVIADA_DIA", Label: "Ocorrência Enviada Dia", Column: "ocorrencia_enviada_dia", Provenance: Manual, Kind: KindDate, Width: 18, Placeholder: "2025-01-01"},

	// Comprovação e conformidade (manual)
	{Key: "RELATORIO_COMPROVACAO", Label: "Link Relatório Comprovação", Column: "relatorio_comprovacao", Provenance: Manual, Kind: KindURL, Width: 30, Placeholder: "https://exemplo.com"},
	{Key: "DATA_ENVIO_CONFORMIDADE", Label: "Data Envio Conformidade", Column: "data_envio_conformidade", Provenance: Manual, Kind: KindDate, Width: 20, Placeholder: "2025-01-01"},
	{Key: "LINK_CONFORMIDADE", Label: "Link Conformidade", Column: "link_conformidade", Provenance: Manual, Kind: KindURL, Width: 30, Placeholder: "https://exemplo.com"},

	// Dados financeiros (manual)
	{Key: "PAGADORIA_NOTA_VBS", Label: "Pagadoria/Nota VBS", Column: "nota_vbs", Provenance: Manual, Kind: KindText, Width: 20, Placeholder: "NF-2025-XXX"},
	{Key: "DATA_FATURAMENTO_AGENCIA", Label: "Data Faturamento Agência", Column: "data_faturamento_nf_agencia", Provenance: Manual, Kind: KindDate, Width: 22, Placeholder: "2025-01-01"},
	{Key: "DATA_RECEBIMENTO_AGENCIA", Label: "Data Recebimento Agência", Column: "data_recebimento_agencia", Provenance: Manual, Kind: KindDate, Width: 22, Placeholder: "2025-01-01"},
	{Key: "DATA_REPASSE_FORNECEDOR", Label: "Data Repasse Fornecedor", Column: "data_repasse_fornecedor", Provenance: Manual, Kind: KindDate, Width: 22, Placeholder: "2025-01-01"},
})
