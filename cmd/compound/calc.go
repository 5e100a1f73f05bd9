package main

import (
	"fmt"

	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/rpgo/compound-calculator/internal/tui"
	"github.com/spf13/cobra"
)

var (
	flagPrincipal  string
	flagMonthly    string
	flagRate       string
	flagYears      string
	flagFrequency  string
	flagSchedule   string
	flagName       string
	flagCalcFormat string
	flagCalcOut    string
	flagCalcBrowse bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Project a single investment",
	Long: `Project a single investment. Inputs not given on the command line come
from the settings file, or from the built-in defaults (R$ 1.000,00 plus
R$ 100,00 a month at 5% a year for 10 years, compounded monthly).`,
	Example: `  compound calc --principal "R$ 1.000,00" --monthly 100 --rate 5% --years 10
  compound calc --rate 12 --years 5 --frequency annual --schedule monthly --format csv`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	addCalcFlags(calcCmd)
	rootCmd.AddCommand(calcCmd)
}

// addCalcFlags is shared by calc and the bare root command.
func addCalcFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagPrincipal, "principal", "p", "", "Initial amount")
	cmd.Flags().StringVarP(&flagMonthly, "monthly", "m", "", "Contribution added at the end of every month")
	cmd.Flags().StringVarP(&flagRate, "rate", "r", "", "Annual interest rate in percent")
	cmd.Flags().StringVarP(&flagYears, "years", "y", "", "Investment horizon in whole years")
	cmd.Flags().StringVar(&flagFrequency, "frequency", "", "Compounding frequency: annual, semiannual, quarterly, monthly, daily or times per year")
	cmd.Flags().StringVarP(&flagSchedule, "schedule", "s", "", "Schedule rows: annual or monthly (default from settings)")
	cmd.Flags().StringVar(&flagName, "name", "Projeção", "Scenario name shown in the report")
	cmd.Flags().BoolVarP(&flagCalcBrowse, "browse", "b", false, "Browse the schedule interactively")
	addReportFlags(cmd, &flagCalcFormat, &flagCalcOut)
}

// calcInput merges settings defaults with the flags the user set.
func calcInput(cmd *cobra.Command) config.RawParameters {
	raw := config.RawFromParameters(settings.Parameters())
	overrides := []struct {
		flag  string
		value string
		dst   *string
	}{
		{"principal", flagPrincipal, &raw.Principal},
		{"monthly", flagMonthly, &raw.MonthlyContribution},
		{"rate", flagRate, &raw.AnnualRatePercent},
		{"years", flagYears, &raw.Years},
		{"frequency", flagFrequency, &raw.CompoundingFrequency},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.dst = o.value
		}
	}
	return raw
}

func scheduleGranularity(flag string) (domain.Granularity, error) {
	if flag == "" {
		flag = settings.Output.Schedule
	}
	return domain.ParseGranularity(flag)
}

func runCalc(cmd *cobra.Command, _ []string) error {
	params, err := config.ParseParameters(calcInput(cmd))
	if err != nil {
		return err
	}
	granularity, err := scheduleGranularity(flagSchedule)
	if err != nil {
		return err
	}

	results, err := newEngine(cmd).RunScenarios(&domain.Configuration{Scenarios: []domain.Scenario{
		{Name: flagName, InvestmentParameters: params, Granularity: granularity},
	}})
	if err != nil {
		return fmt.Errorf("projecting: %w", err)
	}

	if flagCalcBrowse {
		return tui.Run(results)
	}
	return writeReport(cmd, results, flagCalcFormat, flagCalcOut)
}
