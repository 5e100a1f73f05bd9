package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/rpgo/compound-calculator/internal/domain"
)

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New("form aborted")

// FormValues is the state bound to the calculator form fields.
type FormValues struct {
	Principal    string
	Contribution string
	Rate         string
	Years        string
	Frequency    domain.CompoundingFrequency
	Granularity  domain.Granularity
}

// NewFormValues pre-fills the form from defaults.
func NewFormValues(defaults domain.InvestmentParameters, granularity domain.Granularity) *FormValues {
	raw := config.RawFromParameters(defaults)
	return &FormValues{
		Principal:    raw.Principal,
		Contribution: raw.MonthlyContribution,
		Rate:         raw.AnnualRatePercent,
		Years:        raw.Years,
		Frequency:    defaults.CompoundingFrequency,
		Granularity:  granularity.OrDefault(),
	}
}

// Raw returns the typed text for the validator.
func (v *FormValues) Raw() config.RawParameters {
	return config.RawParameters{
		Principal:            v.Principal,
		MonthlyContribution:  v.Contribution,
		AnnualRatePercent:    v.Rate,
		Years:                v.Years,
		CompoundingFrequency: strconv.Itoa(int(v.Frequency)),
	}
}

// Parameters validates the collected values.
func (v *FormValues) Parameters() (domain.InvestmentParameters, error) {
	return config.ParseParameters(v.Raw())
}

// FrequencyOptions lists every supported frequency as "Mensal (monthly)".
func FrequencyOptions() []huh.Option[domain.CompoundingFrequency] {
	freqs := domain.SupportedFrequencies()
	opts := make([]huh.Option[domain.CompoundingFrequency], 0, len(freqs))
	for _, f := range freqs {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", f.Label(), f.Name()), f))
	}
	return opts
}

// GranularityOptions lists the schedule resolutions.
func GranularityOptions() []huh.Option[domain.Granularity] {
	return []huh.Option[domain.Granularity]{
		huh.NewOption("Anual (one row per year)", domain.GranularityAnnual),
		huh.NewOption("Mensal (one row per month)", domain.GranularityMonthly),
	}
}

// NewParametersForm builds the calculator form bound to v. Each field runs
// the same check the validator applies, so the form cannot submit bad input.
func NewParametersForm(v *FormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Valor inicial (R$)").
				Description("Principal, e.g. 1.000,00").
				Value(&v.Principal).
				Validate(config.ValidatePrincipal),
			huh.NewInput().
				Title("Aporte mensal (R$)").
				Description("Added at the end of every month; 0 for none").
				Value(&v.Contribution).
				Validate(config.ValidateContribution),
			huh.NewInput().
				Title("Taxa de juros anual (%)").
				Value(&v.Rate).
				Validate(config.ValidateRate),
			huh.NewInput().
				Title("Período (anos)").
				Value(&v.Years).
				Validate(config.ValidateYears),
		),
		huh.NewGroup(
			huh.NewSelect[domain.CompoundingFrequency]().
				Title("Capitalização").
				Options(FrequencyOptions()...).
				Value(&v.Frequency).
				Validate(config.ValidateFrequency),
			huh.NewSelect[domain.Granularity]().
				Title("Detalhamento").
				Options(GranularityOptions()...).
				Value(&v.Granularity),
		),
	).WithTheme(huh.ThemeCharm())
}

// RunParametersForm shows the form and returns validated parameters.
func RunParametersForm(defaults domain.InvestmentParameters, granularity domain.Granularity) (domain.InvestmentParameters, domain.Granularity, error) {
	v := NewFormValues(defaults, granularity)
	if err := NewParametersForm(v).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.InvestmentParameters{}, "", ErrAborted
		}
		return domain.InvestmentParameters{}, "", fmt.Errorf("running form: %w", err)
	}

	params, err := v.Parameters()
	if err != nil {
		return domain.InvestmentParameters{}, "", err
	}
	return params, v.Granularity, nil
}
