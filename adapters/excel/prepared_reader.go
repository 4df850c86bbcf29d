package excel

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/internal/errors"
)

// PreparedReader loads the prepared workbook produced by the ETL run. The
// dashboard trusts the file beyond existence and sheet-presence checks: the
// prepare step already validated the source layout.
type PreparedReader struct {
	filePath string
}

// NewPreparedReader creates a reader for the prepared workbook
func NewPreparedReader(filePath string) *PreparedReader {
	return &PreparedReader{filePath: filePath}
}

// Read loads the consolidated long table and the analytic summary. The two
// sheets are independent, so they are read concurrently, each over its own
// file handle.
func (r *PreparedReader) Read(ctx context.Context) ([]kpi.Observation, []kpi.TableSummary, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, errors.NotFound(fmt.Sprintf("prepared workbook %s", r.filePath))
	}

	var (
		observations []kpi.Observation
		summaries    []kpi.TableSummary
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.sheetRows(kpi.SheetConsolidated)
		if err != nil {
			return err
		}
		observations, err = parseObservations(rows)
		return err
	})
	g.Go(func() error {
		rows, err := r.sheetRows(kpi.SheetSummary)
		if err != nil {
			return err
		}
		summaries = parseSummaries(rows)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	log.Printf("[PreparedReader] Loaded %d observations, %d table summaries from %s",
		len(observations), len(summaries), r.filePath)
	return observations, summaries, nil
}

// sheetRows opens a fresh handle per call so concurrent loads never share
// excelize state.
func (r *PreparedReader) sheetRows(sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.WorkbookError(fmt.Sprintf("failed to open workbook %s", r.filePath), err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WorkbookError(fmt.Sprintf("failed to read sheet %q", sheet), err)
	}
	return rows, nil
}

// Column order of Dados_Consolidados_Long:
// Tabela, Métrica, Ano, Mês, Mês_Num, Data, Valor
func parseObservations(rows [][]string) ([]kpi.Observation, error) {
	if len(rows) < 2 {
		return nil, errors.WorkbookError("consolidated sheet has no data rows", nil)
	}

	observations := make([]kpi.Observation, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 5 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, errors.WorkbookError(fmt.Sprintf("bad year on long row %d: %q", i+2, row[2]), err)
		}
		month, err := kpi.ParseMonth(row[3])
		if err != nil {
			return nil, errors.WorkbookError(fmt.Sprintf("bad month on long row %d", i+2), err)
		}
		value := kpi.Missing()
		if len(row) > 6 {
			value = kpi.ParseCell(row[6])
		}
		observations = append(observations, kpi.Observation{
			Table:  strings.TrimSpace(row[0]),
			Metric: strings.TrimSpace(row[1]),
			Year:   year,
			Month:  month,
			Value:  value,
		})
	}
	return observations, nil
}

// Column order of Resumo_Analitico:
// Tabela, Num_Métricas, Num_Meses, Total_Células, Células_Preenchidas,
// Células_Vazias, Pct_Preenchimento
func parseSummaries(rows [][]string) []kpi.TableSummary {
	var summaries []kpi.TableSummary
	for _, row := range rows[1:] {
		if len(row) < 7 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		summaries = append(summaries, kpi.TableSummary{
			Table:       strings.TrimSpace(row[0]),
			NumMetrics:  atoiOrZero(row[1]),
			NumMonths:   atoiOrZero(row[2]),
			TotalCells:  atoiOrZero(row[3]),
			FilledCells: atoiOrZero(row[4]),
			EmptyCells:  atoiOrZero(row[5]),
			FillPct:     atofOrZero(row[6]),
		})
	}
	return summaries
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func atofOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
