package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseCompoundingFrequency(t *testing.T) {
	tests := []struct {
		input    string
		expected CompoundingFrequency
	}{
		{"12", Monthly},
		{" 365 ", Daily},
		{"3", CompoundingFrequency(3)}, // numeric input is not range-checked here
		{"monthly", Monthly},
		{"Mensal", Monthly},
		{"quarterly", Quarterly},
		{"Semestral", Semiannually},
		{"yearly", Annually},
		{"diário", Daily},
		{"diario", Daily},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCompoundingFrequency(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCompoundingFrequency_Invalid(t *testing.T) {
	_, err := ParseCompoundingFrequency("fortnightly")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown compounding frequency")

	_, err = ParseCompoundingFrequency("  ")
	assert.Error(t, err)
}

func TestCompoundingFrequency_Labels(t *testing.T) {
	assert.Equal(t, "monthly", Monthly.Name())
	assert.Equal(t, "Mensal", Monthly.Label())
	assert.Equal(t, "Diário", Daily.Label())
	assert.Equal(t, "3/year", CompoundingFrequency(3).Name())
	assert.False(t, CompoundingFrequency(3).IsSupported())
	assert.True(t, Quarterly.IsSupported())
	assert.Equal(t, []CompoundingFrequency{1, 2, 4, 12, 365}, SupportedFrequencies())
}

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity("")
	require.NoError(t, err)
	assert.Equal(t, GranularityAnnual, g)

	g, err = ParseGranularity("Monthly")
	require.NoError(t, err)
	assert.Equal(t, GranularityMonthly, g)

	_, err = ParseGranularity("weekly")
	assert.Error(t, err)

	assert.Equal(t, GranularityAnnual, Granularity("").OrDefault())
}

func TestScenario_UnmarshalYAML(t *testing.T) {
	src := `
scenarios:
  - name: "Reserva"
    principal: 5000
    monthly_contribution: 250.50
    annual_rate_percent: 12
    years: 3
    compounding_frequency: monthly
    granularity: monthly
  - name: "Tesouro"
    principal: 1000
    annual_rate_percent: 8
    years: 20
    compounding_frequency: 4
`
	var cfg Configuration
	require.NoError(t, yaml.Unmarshal([]byte(src), &cfg))
	require.Len(t, cfg.Scenarios, 2)

	first := cfg.Scenarios[0]
	assert.Equal(t, "Reserva", first.Name)
	assert.Equal(t, 5000.0, first.Principal)
	assert.Equal(t, 250.50, first.MonthlyContribution)
	assert.Equal(t, Monthly, first.CompoundingFrequency)
	assert.Equal(t, GranularityMonthly, first.Granularity)

	second := cfg.Scenarios[1]
	assert.Equal(t, Quarterly, second.CompoundingFrequency)
	assert.Zero(t, second.MonthlyContribution)
	assert.Equal(t, Granularity(""), second.Granularity)
}

func TestScenario_UnmarshalYAML_BadFrequency(t *testing.T) {
	src := "scenarios:\n  - name: x\n    compounding_frequency: hourly\n"
	var cfg Configuration
	err := yaml.Unmarshal([]byte(src), &cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown compounding frequency")
}

func TestScenario_MarshalYAMLWritesNumericFrequency(t *testing.T) {
	cfg := Configuration{Scenarios: []Scenario{{Name: "a", InvestmentParameters: DefaultParameters()}}}
	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "compounding_frequency: 12")
	assert.Contains(t, string(out), "principal: 1000")
}

func TestInvestmentParameters_Rates(t *testing.T) {
	p := InvestmentParameters{AnnualRatePercent: 12, Years: 2, CompoundingFrequency: Quarterly}
	assert.InDelta(t, 0.12, p.AnnualRate(), 1e-12)
	assert.InDelta(t, 0.03, p.RatePerPeriod(), 1e-12)
	assert.Equal(t, 24, p.TotalMonths())
}
