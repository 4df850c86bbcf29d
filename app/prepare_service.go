package app

import (
	"github.com/google/uuid"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/adapters/excel"
	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/internal"
	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/internal/errors"
)

// PrepareService runs the one-shot ETL: extract the six fixed-offset tables
// from the raw workbook, clean them, unpivot to the consolidated long format
// and write the prepared workbook. Any layout failure aborts the run before
// a single byte of output exists.
type PrepareService struct {
	sourceFile   string
	preparedFile string
	log          *internal.Logger
}

// NewPrepareService creates the ETL service for the given workbook paths
func NewPrepareService(sourceFile, preparedFile string) *PrepareService {
	return &PrepareService{
		sourceFile:   sourceFile,
		preparedFile: preparedFile,
		log:          internal.DefaultLogger,
	}
}

// Run executes a full prepare pass and returns the observations it wrote.
func (s *PrepareService) Run() ([]kpi.Observation, error) {
	runID := uuid.NewString()
	s.log.Info("[Prepare] run %s: reading %s", runID, s.sourceFile)

	tables, err := excel.NewSourceReader(s.sourceFile).Read()
	if err != nil {
		return nil, errors.Wrap(err, "extraction failed")
	}

	observations := kpi.Unpivot(tables)
	summaries := SummarizeAll(tables)
	metricStats := MetricStatsAll(tables)

	for _, sum := range summaries {
		s.log.Info("[Prepare] run %s: %s: %d metrics, %.1f%% filled",
			runID, sum.Table, sum.NumMetrics, sum.FillPct)
	}
	s.log.Info("[Prepare] run %s: %d long-format rows", runID, len(observations))

	writer := excel.NewPreparedWriter(s.preparedFile)
	if err := writer.Write(tables, summaries, metricStats, observations); err != nil {
		return nil, errors.Wrap(err, "failed to write prepared workbook")
	}

	s.log.Info("[Prepare] run %s: done, output at %s", runID, s.preparedFile)
	return observations, nil
}
