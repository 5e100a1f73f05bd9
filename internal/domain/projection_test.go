package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectionResult_FinalRecord(t *testing.T) {
	var empty ProjectionResult
	_, ok := empty.FinalRecord()
	assert.False(t, ok)

	pr := ProjectionResult{
		FutureValue:         1100,
		SimpleInterestValue: 1080,
		Schedule: []PeriodRecord{
			{PeriodIndex: 1, Year: 1, EndingBalance: 1050},
			{PeriodIndex: 2, Year: 2, EndingBalance: 1100},
		},
	}
	last, ok := pr.FinalRecord()
	assert.True(t, ok)
	assert.Equal(t, 2, last.PeriodIndex)
	assert.InDelta(t, 20.0, pr.CompoundAdvantage(), 1e-9)
	assert.False(t, last.IsMonthly())
}

func TestScenarioComparison_Lookup(t *testing.T) {
	sc := NewSingleComparison("Calculation", ProjectionResult{FutureValue: 42})
	assert.Equal(t, "Calculation", sc.Best)

	s, ok := sc.Scenario("Calculation")
	assert.True(t, ok)
	assert.Equal(t, 42.0, s.Result.FutureValue)

	_, ok = sc.Scenario("missing")
	assert.False(t, ok)
}
