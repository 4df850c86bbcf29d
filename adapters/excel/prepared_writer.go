package excel

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/internal/errors"
)

// PreparedWriter produces the prepared workbook: one wide sheet per table,
// the analytic summary, per-metric statistics and the consolidated long
// table. Nothing is written until every sheet has been assembled, so a
// failed run leaves no partial output behind.
type PreparedWriter struct {
	filePath string
}

// NewPreparedWriter creates a writer for the prepared workbook
func NewPreparedWriter(filePath string) *PreparedWriter {
	return &PreparedWriter{filePath: filePath}
}

// Write assembles the whole workbook in memory and saves it.
func (w *PreparedWriter) Write(
	tables []kpi.Table,
	summaries []kpi.TableSummary,
	metricStats []kpi.MetricStats,
	observations []kpi.Observation,
) error {
	f := excelize.NewFile()
	defer f.Close()

	if len(tables) == 0 {
		return errors.InternalError("no tables to write")
	}

	// Reuse the default sheet for the first table, create the rest.
	if err := f.SetSheetName(f.GetSheetName(0), tables[0].Name); err != nil {
		return errors.WorkbookError("failed to rename default sheet", err)
	}
	for _, t := range tables[1:] {
		if _, err := f.NewSheet(t.Name); err != nil {
			return errors.WorkbookError(fmt.Sprintf("failed to create sheet %s", t.Name), err)
		}
	}
	for _, sheet := range []string{kpi.SheetSummary, kpi.SheetMetricStats, kpi.SheetConsolidated} {
		if _, err := f.NewSheet(sheet); err != nil {
			return errors.WorkbookError(fmt.Sprintf("failed to create sheet %s", sheet), err)
		}
	}

	for _, t := range tables {
		if err := writeWideSheet(f, t); err != nil {
			return err
		}
	}
	if err := writeSummarySheet(f, summaries); err != nil {
		return err
	}
	if err := writeMetricStatsSheet(f, metricStats); err != nil {
		return err
	}
	if err := writeConsolidatedSheet(f, observations); err != nil {
		return err
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return errors.WorkbookError(fmt.Sprintf("failed to save workbook %s", w.filePath), err)
	}
	log.Printf("[PreparedWriter] Workbook saved: %s (%d sheets, %d long rows)",
		w.filePath, len(tables)+3, len(observations))
	return nil
}

// writeWideSheet writes one table in its original wide shape: a header of
// month names, then one row per metric. Missing cells stay empty.
func writeWideSheet(f *excelize.File, t kpi.Table) error {
	if err := setCell(f, t.Name, 1, 1, "Métrica"); err != nil {
		return err
	}
	for m := 1; m <= kpi.MonthsPerTable; m++ {
		if err := setCell(f, t.Name, 1+m, 1, kpi.Month(m).Name()); err != nil {
			return err
		}
	}

	for i, metric := range t.Metrics {
		row := i + 2
		if err := setCell(f, t.Name, 1, row, metric); err != nil {
			return err
		}
		for m, v := range t.Cells[i] {
			if !v.Valid {
				continue
			}
			if err := setCell(f, t.Name, 2+m, row, v.Float); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summaries []kpi.TableSummary) error {
	headers := []string{
		"Tabela", "Num_Métricas", "Num_Meses", "Total_Células",
		"Células_Preenchidas", "Células_Vazias", "Pct_Preenchimento",
	}
	if err := writeHeader(f, kpi.SheetSummary, headers); err != nil {
		return err
	}
	for i, s := range summaries {
		row := i + 2
		cells := []interface{}{
			s.Table, s.NumMetrics, s.NumMonths, s.TotalCells,
			s.FilledCells, s.EmptyCells, s.FillPct,
		}
		if err := writeRow(f, kpi.SheetSummary, row, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeMetricStatsSheet(f *excelize.File, metricStats []kpi.MetricStats) error {
	headers := []string{
		"Tabela", "Métrica", "N", "Média", "Mediana",
		"Mínimo", "Máximo", "Desvio_Padrão", "Tendência",
	}
	if err := writeHeader(f, kpi.SheetMetricStats, headers); err != nil {
		return err
	}
	for i, ms := range metricStats {
		row := i + 2
		cells := []interface{}{
			ms.Table, ms.Metric, ms.Count,
			cellValue(ms.Mean), cellValue(ms.Median), cellValue(ms.Min),
			cellValue(ms.Max), cellValue(ms.StdDev), cellValue(ms.Trend),
		}
		if err := writeRow(f, kpi.SheetMetricStats, row, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeConsolidatedSheet(f *excelize.File, observations []kpi.Observation) error {
	headers := []string{"Tabela", "Métrica", "Ano", "Mês", "Mês_Num", "Data", "Valor"}
	if err := writeHeader(f, kpi.SheetConsolidated, headers); err != nil {
		return err
	}
	for i, o := range observations {
		row := i + 2
		cells := []interface{}{
			o.Table, o.Metric, o.Year, o.Month.Name(), o.Month.Number(),
			o.Date().Format("2006-01-02"), cellValue(o.Value),
		}
		if err := writeRow(f, kpi.SheetConsolidated, row, cells); err != nil {
			return err
		}
	}
	return nil
}

// cellValue maps the missing sentinel to an empty cell.
func cellValue(v kpi.Value) interface{} {
	if !v.Valid {
		return nil
	}
	return v.Float
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		if err := setCell(f, sheet, i+1, 1, h); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for i, c := range cells {
		if c == nil {
			continue
		}
		if err := setCell(f, sheet, i+1, row, c); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.WorkbookError(fmt.Sprintf("bad coordinates (%d,%d)", col, row), err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return errors.WorkbookError(fmt.Sprintf("failed to set %s!%s", sheet, cell), err)
	}
	return nil
}
