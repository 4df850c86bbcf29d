package excel

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/internal/errors"
)

// SourceReader extracts the six fixed-offset KPI tables from the Marketing
// sheet of the raw workbook.
type SourceReader struct {
	filePath string
}

// NewSourceReader creates a reader for the raw KPI workbook
func NewSourceReader(filePath string) *SourceReader {
	return &SourceReader{filePath: filePath}
}

// Read opens the workbook and extracts every table block. A shifted or
// malformed block is fatal: the offsets are constants, so a mismatch means
// the workbook no longer has the layout this pipeline was built for.
func (r *SourceReader) Read() ([]kpi.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(fmt.Sprintf("source workbook %s", r.filePath))
	}

	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.WorkbookError(fmt.Sprintf("failed to open workbook %s", r.filePath), err)
	}
	defer f.Close()

	rows, err := f.GetRows(kpi.SourceSheet)
	if err != nil {
		return nil, errors.WorkbookError(fmt.Sprintf("failed to read sheet %q", kpi.SourceSheet), err)
	}
	log.Printf("[SourceReader] Sheet %q loaded (%d rows)", kpi.SourceSheet, len(rows))

	var tables []kpi.Table
	for _, layout := range kpi.Layouts() {
		table, err := extractTable(rows, layout)
		if err != nil {
			return nil, errors.Wrapf(err, "table %s (rows %d-%d)", layout.Name, layout.StartRow+1, layout.EndRow)
		}
		log.Printf("[SourceReader] %s: %d metrics extracted", table.Name, len(table.Metrics))
		tables = append(tables, *table)
	}
	return tables, nil
}

// extractTable reads one block. The first block row is treated as a header
// and skipped when its first data cell carries a month name. Rows with an
// empty metric name and rows whose data cells are all blank are dropped.
func extractTable(rows [][]string, layout kpi.TableLayout) (*kpi.Table, error) {
	if layout.EndRow > len(rows) {
		return nil, errors.LayoutInvalid(fmt.Sprintf(
			"sheet has %d rows but the block ends at row %d; offsets are likely shifted",
			len(rows), layout.EndRow))
	}

	start := layout.StartRow
	if kpi.IsMonthName(cellAt(rows, start, kpi.DataStartCol)) {
		start++
	}

	table := &kpi.Table{Name: layout.Name}
	for rowIdx := start; rowIdx < layout.EndRow; rowIdx++ {
		metric := strings.TrimSpace(cellAt(rows, rowIdx, kpi.MetricCol))
		if metric == "" {
			continue
		}

		cells := make([]kpi.Value, kpi.MonthsPerTable)
		filled := 0
		for m := 0; m < kpi.MonthsPerTable; m++ {
			raw := cellAt(rows, rowIdx, kpi.DataStartCol+m)
			if strings.TrimSpace(raw) != "" {
				filled++
			}
			cells[m] = kpi.ParseCell(raw)
		}
		if filled == 0 {
			// Spacer row inside the block
			continue
		}

		table.Metrics = append(table.Metrics, metric)
		table.Cells = append(table.Cells, cells)
	}

	if len(table.Metrics) == 0 {
		return nil, errors.LayoutInvalid("no metric rows found; offsets are likely shifted")
	}
	return table, nil
}

func cellAt(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}
