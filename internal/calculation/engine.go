package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// Engine projects investment parameters into future values and growth schedules.
// It holds no state between calls; the Logger only receives diagnostics.
type Engine struct {
	Logger Logger
}

// NewEngine creates a new projection engine
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Project runs an annual-schedule projection with a silent engine.
func Project(params domain.InvestmentParameters) domain.ProjectionResult {
	return NewEngine().Project(params, domain.GranularityAnnual)
}

// Project computes the future value, totals and schedule for params.
// Input is trusted to be validated: principal > 0, years >= 1, frequency >= 1.
// Both schedule granularities compound at the parameters' frequency, so the
// last record always ends on FutureValue.
func (e *Engine) Project(params domain.InvestmentParameters, granularity domain.Granularity) domain.ProjectionResult {
	fv := FutureValue(params)
	totalContributions := params.MonthlyContribution * float64(params.TotalMonths())
	invested := params.Principal + totalContributions

	result := domain.ProjectionResult{
		Parameters:             params,
		FutureValue:            fv,
		TotalContributions:     totalContributions,
		TotalPrincipalInvested: invested,
		TotalInterestEarned:    fv - invested,
		SimpleInterestValue:    SimpleInterestValue(params),
	}

	switch granularity.OrDefault() {
	case domain.GranularityMonthly:
		result.Granularity = domain.GranularityMonthly
		result.Schedule = monthlySchedule(params)
	default:
		result.Granularity = domain.GranularityAnnual
		result.Schedule = annualSchedule(params)
	}

	e.Logger.Debugf("projected %.2f over %d years at %.4f%% (%s): fv=%.2f interest=%.2f periods=%d",
		params.Principal, params.Years, params.AnnualRatePercent, params.CompoundingFrequency,
		fv, result.TotalInterestEarned, len(result.Schedule))

	return result
}

// FutureValue returns FV_principal + FV_contributions.
func FutureValue(params domain.InvestmentParameters) float64 {
	return principalFutureValue(params) + contributionFutureValue(params)
}

// principalFutureValue is principal * (1 + r/f)^(years*f).
func principalFutureValue(params domain.InvestmentParameters) float64 {
	f := float64(params.CompoundingFrequency)
	return params.Principal * math.Pow(1+params.RatePerPeriod(), float64(params.Years)*f)
}

// contributionFutureValue sums every end-of-month contribution grown to the horizon:
// contribution * (1 + r/f)^((remainingMonths/12)*f).
func contributionFutureValue(params domain.InvestmentParameters) float64 {
	pmt := params.MonthlyContribution
	if pmt == 0 {
		return 0
	}

	base := 1 + params.RatePerPeriod()
	f := float64(params.CompoundingFrequency)
	n := params.TotalMonths()

	sum := 0.0
	for k := 0; k < n; k++ {
		remaining := n - (k + 1)
		sum += math.Pow(base, float64(remaining)/12*f)
	}
	return pmt * sum
}

// annualSchedule grows the running balance by (1 + r/f)^f each year and adds
// the year's twelve contributions, each grown to the end of that year.
func annualSchedule(params domain.InvestmentParameters) []domain.PeriodRecord {
	base := 1 + params.RatePerPeriod()
	f := float64(params.CompoundingFrequency)
	pmt := params.MonthlyContribution
	yearFactor := math.Pow(base, f)

	contributionComponent := 0.0
	if pmt != 0 {
		for m := 0; m < 12; m++ {
			contributionComponent += pmt * math.Pow(base, float64(12-(m+1))/12*f)
		}
	}
	contributionsThisYear := pmt * 12

	schedule := make([]domain.PeriodRecord, 0, params.Years)
	balance := params.Principal
	for year := 1; year <= params.Years; year++ {
		start := balance
		ending := start*yearFactor + contributionComponent
		schedule = append(schedule, domain.PeriodRecord{
			PeriodIndex:     year,
			Year:            year,
			StartingBalance: start,
			Contribution:    contributionsThisYear,
			InterestEarned:  ending - start - contributionsThisYear,
			EndingBalance:   ending,
		})
		balance = ending
	}
	return schedule
}

// monthlySchedule compounds at the parameters' frequency expressed per month,
// (1 + r/f)^(f/12). A contribution lands at month end and earns nothing that month.
func monthlySchedule(params domain.InvestmentParameters) []domain.PeriodRecord {
	f := float64(params.CompoundingFrequency)
	monthlyGrowth := math.Pow(1+params.RatePerPeriod(), f/12) - 1
	pmt := params.MonthlyContribution
	n := params.TotalMonths()

	schedule := make([]domain.PeriodRecord, 0, n)
	balance := params.Principal
	for m := 1; m <= n; m++ {
		start := balance
		interest := start * monthlyGrowth
		ending := start + interest + pmt
		schedule = append(schedule, domain.PeriodRecord{
			PeriodIndex:     m,
			Year:            (m-1)/12 + 1,
			MonthInYear:     (m-1)%12 + 1,
			StartingBalance: start,
			Contribution:    pmt,
			InterestEarned:  interest,
			EndingBalance:   ending,
		})
		balance = ending
	}
	return schedule
}

// SimpleInterestValue is what the same deposits would be worth if interest never
// compounded: the principal earns r*years and each contribution earns r for the
// fraction of the horizon it was invested.
func SimpleInterestValue(params domain.InvestmentParameters) float64 {
	r := params.AnnualRate()
	value := params.Principal * (1 + r*float64(params.Years))

	pmt := params.MonthlyContribution
	if pmt == 0 {
		return value
	}
	n := params.TotalMonths()
	for k := 0; k < n; k++ {
		remaining := n - (k + 1)
		value += pmt * (1 + r*float64(remaining)/12)
	}
	return value
}

// RunScenarios projects every scenario and compares them
func (e *Engine) RunScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if config == nil || len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to run")
	}

	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		scoped := &Engine{Logger: withScope(e.Logger, scenario.Name)}
		scoped.Logger.Infof("running %s schedule", scenario.Granularity.OrDefault())
		scenarios[i] = domain.ScenarioSummary{
			Name:   scenario.Name,
			Result: scoped.Project(scenario.InvestmentParameters, scenario.Granularity),
		}
	}

	comparison := &domain.ScenarioComparison{
		Scenarios: scenarios,
		Best:      bestScenario(scenarios),
	}

	for i := 0; i < len(scenarios); i++ {
		for j := i + 1; j < len(scenarios); j++ {
			crossover, err := FindCrossover(scenarios[i], scenarios[j])
			if err != nil {
				if errors.Is(err, ErrScheduleMismatch) {
					e.Logger.Debugf("skipping crossover %q vs %q: %v", scenarios[i].Name, scenarios[j].Name, err)
					continue
				}
				return nil, fmt.Errorf("crossover %q vs %q: %w", scenarios[i].Name, scenarios[j].Name, err)
			}
			if crossover != nil {
				comparison.Crossovers = append(comparison.Crossovers, *crossover)
			}
		}
	}

	return comparison, nil
}

// bestScenario returns the name with the highest future value; ties keep the earlier scenario.
func bestScenario(scenarios []domain.ScenarioSummary) string {
	best := -1
	for i := range scenarios {
		if best < 0 || scenarios[i].Result.FutureValue > scenarios[best].Result.FutureValue {
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return scenarios[best].Name
}
