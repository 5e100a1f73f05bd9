package output

import (
	"sort"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName   string
	FutureValue    float64
	InterestEarned float64
	// Lead over the runner-up; zero when only one scenario was run.
	LeadAmount     float64
	LeadPercentage float64
}

// AnalyzeScenarios determines the scenario with the highest future value.
// Ties keep the scenario listed first.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	ranks := make([]domain.ScenarioSummary, len(results.Scenarios))
	copy(ranks, results.Scenarios)
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Result.FutureValue > ranks[j].Result.FutureValue
	})

	best := ranks[0]
	rec := Recommendation{
		ScenarioName:   best.Name,
		FutureValue:    best.Result.FutureValue,
		InterestEarned: best.Result.TotalInterestEarned,
	}
	if len(ranks) > 1 {
		runnerUp := ranks[1].Result.FutureValue
		rec.LeadAmount = best.Result.FutureValue - runnerUp
		if runnerUp != 0 {
			rec.LeadPercentage = rec.LeadAmount / runnerUp * 100
		}
	}
	return rec
}

// InterestShare is the percentage of the future value that came from interest.
func InterestShare(result domain.ProjectionResult) float64 {
	if result.FutureValue == 0 {
		return 0
	}
	return result.TotalInterestEarned / result.FutureValue * 100
}
