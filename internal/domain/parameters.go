package domain

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CompoundingFrequency is the number of times per year interest is capitalized into the balance.
type CompoundingFrequency int

const (
	Annually     CompoundingFrequency = 1
	Semiannually CompoundingFrequency = 2
	Quarterly    CompoundingFrequency = 4
	Monthly      CompoundingFrequency = 12
	Daily        CompoundingFrequency = 365
)

type frequencyOption struct {
	value   CompoundingFrequency
	name    string
	label   string // pt-BR label shown by the form
	aliases []string
}

var frequencyOptions = []frequencyOption{
	{Annually, "annual", "Anual", []string{"annually", "yearly", "anual"}},
	{Semiannually, "semiannual", "Semestral", []string{"semiannually", "semi-annual", "semestral"}},
	{Quarterly, "quarterly", "Trimestral", []string{"quarter", "trimestral"}},
	{Monthly, "monthly", "Mensal", []string{"month", "mensal"}},
	{Daily, "daily", "Diário", []string{"day", "diario", "diário"}},
}

// SupportedFrequencies returns the compounding frequencies the calculator accepts, in ascending order.
func SupportedFrequencies() []CompoundingFrequency {
	out := make([]CompoundingFrequency, 0, len(frequencyOptions))
	for _, o := range frequencyOptions {
		out = append(out, o.value)
	}
	return out
}

func (f CompoundingFrequency) option() (frequencyOption, bool) {
	for _, o := range frequencyOptions {
		if o.value == f {
			return o, true
		}
	}
	return frequencyOption{}, false
}

// IsSupported reports whether f is one of the enumerated frequencies.
func (f CompoundingFrequency) IsSupported() bool {
	_, ok := f.option()
	return ok
}

// Name returns the canonical English identifier ("monthly").
func (f CompoundingFrequency) Name() string {
	if o, ok := f.option(); ok {
		return o.name
	}
	return fmt.Sprintf("%d/year", int(f))
}

// Label returns the display label used by the form ("Mensal").
func (f CompoundingFrequency) Label() string {
	if o, ok := f.option(); ok {
		return o.label
	}
	return f.Name()
}

func (f CompoundingFrequency) String() string { return f.Name() }

// ParseCompoundingFrequency accepts either the number of periods per year or a frequency name.
// Numeric input is returned as-is; whether it is supported is the validator's call.
func ParseCompoundingFrequency(s string) (CompoundingFrequency, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return 0, fmt.Errorf("compounding frequency is empty")
	}
	if n, err := strconv.Atoi(v); err == nil {
		return CompoundingFrequency(n), nil
	}
	for _, o := range frequencyOptions {
		if v == o.name || v == strings.ToLower(o.label) {
			return o.value, nil
		}
		for _, a := range o.aliases {
			if v == a {
				return o.value, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown compounding frequency %q", s)
}

// UnmarshalYAML lets scenario files use either `compounding_frequency: 12` or `compounding_frequency: monthly`.
func (f *CompoundingFrequency) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: compounding frequency must be a scalar", value.Line)
	}
	parsed, err := ParseCompoundingFrequency(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*f = parsed
	return nil
}

// MarshalYAML writes the frequency as its number of periods per year.
func (f CompoundingFrequency) MarshalYAML() (interface{}, error) {
	return int(f), nil
}

// Granularity selects the resolution of the growth schedule.
type Granularity string

const (
	GranularityAnnual  Granularity = "annual"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity resolves a user-supplied schedule granularity. Empty input means annual.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "annual", "annually", "yearly", "year", "anual":
		return GranularityAnnual, nil
	case "monthly", "month", "mensal":
		return GranularityMonthly, nil
	default:
		return "", fmt.Errorf("unknown schedule granularity %q (want annual or monthly)", s)
	}
}

// OrDefault returns annual for the zero value.
func (g Granularity) OrDefault() Granularity {
	if g == "" {
		return GranularityAnnual
	}
	return g
}

// InvestmentParameters is the validated, immutable input to a single projection.
type InvestmentParameters struct {
	Principal            float64              `yaml:"principal" json:"principal"`
	MonthlyContribution  float64              `yaml:"monthly_contribution,omitempty" json:"monthly_contribution"`
	AnnualRatePercent    float64              `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	Years                int                  `yaml:"years" json:"years"`
	CompoundingFrequency CompoundingFrequency `yaml:"compounding_frequency" json:"compounding_frequency"`
}

// DefaultParameters returns the values the calculator form starts with.
func DefaultParameters() InvestmentParameters {
	return InvestmentParameters{
		Principal:            1000,
		MonthlyContribution:  100,
		AnnualRatePercent:    5,
		Years:                10,
		CompoundingFrequency: Monthly,
	}
}

// AnnualRate returns the annual rate as a fraction (5% -> 0.05).
func (p InvestmentParameters) AnnualRate() float64 {
	return p.AnnualRatePercent / 100
}

// RatePerPeriod returns the rate applied per compounding period.
func (p InvestmentParameters) RatePerPeriod() float64 {
	return p.AnnualRate() / float64(p.CompoundingFrequency)
}

// TotalMonths is the number of monthly contributions over the horizon.
func (p InvestmentParameters) TotalMonths() int {
	return p.Years * 12
}
