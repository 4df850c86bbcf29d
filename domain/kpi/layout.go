package kpi

// Source workbook layout. The six table blocks sit at fixed offsets in the
// Marketing sheet. They are pinned here as named constants and never
// discovered from headers: the workbook does not maintain its own layout
// defensively, so a shifted block is treated as a fatal error upstream.

const (
	// SourceSheet is the workbook sheet holding all six tables.
	SourceSheet = "Marketing"

	// MetricCol is the 0-based column holding metric names.
	MetricCol = 0
	// DataStartCol is the 0-based first month column.
	DataStartCol = 1
	// MonthsPerTable is the number of month columns in every block.
	MonthsPerTable = 12

	// ReportYear is the reporting year of the workbook.
	ReportYear = 2025
	// ActiveMonths is the number of months with reporting data,
	// Janeiro through Outubro.
	ActiveMonths = 10
)

// Table names, also used as sheet names in the prepared workbook.
const (
	TableMarketingGeral = "Marketing_Geral"
	TableLeads          = "Leads_Condominios"
	TableIndices        = "Indices_Condominios"
	TableImoveis        = "Campanha_Imoveis"
	TableBoleto         = "Campanha_Boleto_Digital"
	TableMultiseguros   = "Campanha_Multiseguros"
)

// Prepared workbook sheet names for the derived outputs.
const (
	SheetSummary      = "Resumo_Analitico"
	SheetMetricStats  = "Estatisticas_Metricas"
	SheetConsolidated = "Dados_Consolidados_Long"
)

// TableLayout pins one table block to its row range in the source sheet.
// StartRow..EndRow is 0-based and end-exclusive. The first row of a block may
// be a month header row; the extractor detects and skips it.
type TableLayout struct {
	Name     string
	StartRow int
	EndRow   int
}

// Layouts returns the six table blocks in workbook order.
func Layouts() []TableLayout {
	return []TableLayout{
		{Name: TableMarketingGeral, StartRow: 3, EndRow: 10},
		{Name: TableLeads, StartRow: 11, EndRow: 30},
		{Name: TableIndices, StartRow: 32, EndRow: 40},
		{Name: TableImoveis, StartRow: 42, EndRow: 52},
		{Name: TableBoleto, StartRow: 53, EndRow: 59},
		{Name: TableMultiseguros, StartRow: 60, EndRow: 70},
	}
}

// ActiveMonthList returns the months of the reporting period in order.
func ActiveMonthList() []Month {
	months := make([]Month, ActiveMonths)
	for i := range months {
		months[i] = Month(i + 1)
	}
	return months
}
