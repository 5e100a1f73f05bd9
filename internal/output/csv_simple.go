package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Principal", "MonthlyContribution", "AnnualRatePercent", "Years", "CompoundingFrequency", "Granularity", "FutureValue", "TotalContributions", "TotalPrincipalInvested", "TotalInterestEarned", "SimpleInterestValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		res := sc.Result
		p := res.Parameters
		row := []string{
			sc.Name,
			amount(p.Principal),
			amount(p.MonthlyContribution),
			floatToString(p.AnnualRatePercent),
			intToString(p.Years),
			intToString(int(p.CompoundingFrequency)),
			string(res.Granularity),
			amount(res.FutureValue),
			amount(res.TotalContributions),
			amount(res.TotalPrincipalInvested),
			amount(res.TotalInterestEarned),
			amount(res.SimpleInterestValue),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
