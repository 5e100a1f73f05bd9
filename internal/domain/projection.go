package domain

// PeriodRecord is one row of the growth schedule.
// EndingBalance == StartingBalance + Contribution + InterestEarned (within float tolerance).
type PeriodRecord struct {
	PeriodIndex     int     `json:"period_index" yaml:"period_index"`
	Year            int     `json:"year" yaml:"year"`
	MonthInYear     int     `json:"month_in_year,omitempty" yaml:"month_in_year,omitempty"` // 0 for annual rows
	StartingBalance float64 `json:"starting_balance" yaml:"starting_balance"`
	Contribution    float64 `json:"contribution" yaml:"contribution"`
	InterestEarned  float64 `json:"interest_earned" yaml:"interest_earned"`
	EndingBalance   float64 `json:"ending_balance" yaml:"ending_balance"`
}

// IsMonthly reports whether the record belongs to a monthly schedule.
func (r PeriodRecord) IsMonthly() bool {
	return r.MonthInYear > 0
}

// ProjectionResult is the outcome of projecting one parameter set.
type ProjectionResult struct {
	Parameters             InvestmentParameters `json:"parameters" yaml:"parameters"`
	Granularity            Granularity          `json:"granularity" yaml:"granularity"`
	FutureValue            float64              `json:"future_value" yaml:"future_value"`
	TotalContributions     float64              `json:"total_contributions" yaml:"total_contributions"`
	TotalPrincipalInvested float64              `json:"total_principal_invested" yaml:"total_principal_invested"`
	TotalInterestEarned    float64              `json:"total_interest_earned" yaml:"total_interest_earned"`
	SimpleInterestValue    float64              `json:"simple_interest_value" yaml:"simple_interest_value"`
	Schedule               []PeriodRecord       `json:"schedule" yaml:"schedule"`
}

// CompoundAdvantage is how much more compounding yields than simple interest over the same horizon.
func (pr *ProjectionResult) CompoundAdvantage() float64 {
	return pr.FutureValue - pr.SimpleInterestValue
}

// FinalRecord returns the last schedule row, or false when the schedule is empty.
func (pr *ProjectionResult) FinalRecord() (PeriodRecord, bool) {
	if len(pr.Schedule) == 0 {
		return PeriodRecord{}, false
	}
	return pr.Schedule[len(pr.Schedule)-1], true
}

// ScenarioSummary pairs a scenario name with its projection.
type ScenarioSummary struct {
	Name   string           `json:"name" yaml:"name"`
	Result ProjectionResult `json:"result" yaml:"result"`
}

// Crossover marks the first period where a trailing scenario overtakes the leading one.
type Crossover struct {
	Leader            string  `json:"leader" yaml:"leader"`
	Challenger        string  `json:"challenger" yaml:"challenger"`
	PeriodIndex       int     `json:"period_index" yaml:"period_index"`
	Year              int     `json:"year" yaml:"year"`
	MonthInYear       int     `json:"month_in_year,omitempty" yaml:"month_in_year,omitempty"`
	LeaderBalance     float64 `json:"leader_balance" yaml:"leader_balance"`
	ChallengerBalance float64 `json:"challenger_balance" yaml:"challenger_balance"`
}

// ScenarioComparison is what the report formatters render. A single calculation is a one-scenario comparison.
type ScenarioComparison struct {
	Scenarios  []ScenarioSummary `json:"scenarios" yaml:"scenarios"`
	Best       string            `json:"best,omitempty" yaml:"best,omitempty"`
	Crossovers []Crossover       `json:"crossovers,omitempty" yaml:"crossovers,omitempty"`
}

// NewSingleComparison wraps one projection so it can go through the report formatters.
func NewSingleComparison(name string, result ProjectionResult) *ScenarioComparison {
	return &ScenarioComparison{
		Scenarios: []ScenarioSummary{{Name: name, Result: result}},
		Best:      name,
	}
}

// Scenario looks up a summary by name.
func (sc *ScenarioComparison) Scenario(name string) (*ScenarioSummary, bool) {
	for i := range sc.Scenarios {
		if sc.Scenarios[i].Name == name {
			return &sc.Scenarios[i], true
		}
	}
	return nil, false
}
