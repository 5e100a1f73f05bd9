package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/compound-calculator/internal/domain"
	money "github.com/rpgo/compound-calculator/pkg/decimal"
)

// HTMLFormatter produces a standalone HTML report with a balance chart per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":      FormatCurrency,
	"pct":       FormatPercentage,
	"period":    FormatPeriod,
	"frequency": FormatFrequency,
	"share":     InterestShare,
	"add":       func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is one line of the balance chart.
type chartSeries struct {
	Label  string    `json:"label"`
	Points []float64 `json:"data"`
}

type chartData struct {
	Labels []string      `json:"labels"`
	Series []chartSeries `json:"datasets"`
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	report := NewReport(results)

	data := struct {
		Report
		*domain.ScenarioComparison
		Recommendation Recommendation
		Assumptions    []string
		Chart          chartData
	}{report, results, AnalyzeScenarios(results), DefaultAssumptions, balanceChart(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// balanceChart lines up ending balances by period; the longest schedule supplies the labels.
func balanceChart(results *domain.ScenarioComparison) chartData {
	var chart chartData
	for _, sc := range results.Scenarios {
		points := make([]float64, len(sc.Result.Schedule))
		for i, rec := range sc.Result.Schedule {
			points[i] = money.NewMoney(rec.EndingBalance).Round().Float64()
		}
		if len(sc.Result.Schedule) > len(chart.Labels) {
			chart.Labels = chart.Labels[:0]
			for _, rec := range sc.Result.Schedule {
				chart.Labels = append(chart.Labels, FormatPeriod(rec))
			}
		}
		chart.Series = append(chart.Series, chartSeries{Label: sc.Name, Points: points})
	}
	return chart
}
