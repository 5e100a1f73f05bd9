package output

import (
	"testing"

	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func summaryWithFV(name string, fv, interest float64) domain.ScenarioSummary {
	return domain.ScenarioSummary{Name: name, Result: domain.ProjectionResult{FutureValue: fv, TotalInterestEarned: interest}}
}

func TestAnalyzeScenarios_SelectsHighestFutureValue(t *testing.T) {
	comparison := &domain.ScenarioComparison{
		Scenarios: []domain.ScenarioSummary{
			summaryWithFV("Scenario A", 1000, 100),
			summaryWithFV("Scenario B", 1250, 300),
			summaryWithFV("Scenario C", 900, 50),
		},
	}

	rec := AnalyzeScenarios(comparison)
	assert.Equal(t, "Scenario B", rec.ScenarioName)
	assert.Equal(t, 1250.0, rec.FutureValue)
	assert.Equal(t, 300.0, rec.InterestEarned)
	assert.InDelta(t, 250, rec.LeadAmount, 1e-9)
	assert.InDelta(t, 25, rec.LeadPercentage, 1e-9)
}

func TestAnalyzeScenarios_TiesKeepFirst(t *testing.T) {
	comparison := &domain.ScenarioComparison{
		Scenarios: []domain.ScenarioSummary{summaryWithFV("first", 10, 1), summaryWithFV("second", 10, 1)},
	}
	rec := AnalyzeScenarios(comparison)
	assert.Equal(t, "first", rec.ScenarioName)
	assert.Zero(t, rec.LeadAmount)
}

func TestAnalyzeScenarios_EmptyAndSingle(t *testing.T) {
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(&domain.ScenarioComparison{}))
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(nil))

	rec := AnalyzeScenarios(&domain.ScenarioComparison{Scenarios: []domain.ScenarioSummary{summaryWithFV("only", 10, 2)}})
	assert.Equal(t, "only", rec.ScenarioName)
	assert.Zero(t, rec.LeadAmount)
	assert.Zero(t, rec.LeadPercentage)
}

func TestInterestShare(t *testing.T) {
	assert.InDelta(t, 20, InterestShare(domain.ProjectionResult{FutureValue: 500, TotalInterestEarned: 100}), 1e-9)
	assert.Zero(t, InterestShare(domain.ProjectionResult{}))
}

func TestGenerateAssumptions(t *testing.T) {
	result := domain.ProjectionResult{Parameters: domain.DefaultParameters()}
	got := GenerateAssumptions(result)
	assert.Equal(t, "Annual rate 5,00% compounded monthly (12x/year), 0,42% per period", got[0])
	assert.Equal(t, "120 monthly contributions of R$ 100,00 over 10 years", got[1])
	assert.Equal(t, DefaultAssumptions, got[2:])
}
