package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// CSVScheduleExporter writes every schedule row of every scenario.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "detailed-csv" }

func (c CSVScheduleExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Period", "Year", "Month", "StartingBalance", "Contribution", "InterestEarned", "EndingBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, rec := range sc.Result.Schedule {
			row := []string{
				sc.Name,
				intToString(rec.PeriodIndex),
				intToString(rec.Year),
				intToString(rec.MonthInYear),
				amount(rec.StartingBalance),
				amount(rec.Contribution),
				amount(rec.InterestEarned),
				amount(rec.EndingBalance),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
