package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/compound-calculator/internal/cli"
	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/rpgo/compound-calculator/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagSetFormat   string
	flagSetSchedule string
	flagSetDefaults bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved preferences",
	Long: `Show the saved preferences. With --format or --schedule the new value is
written to the settings file. --save-defaults stores the calculator flags
(--principal, --monthly, --rate, --years, --frequency) as the new defaults.`,
	Example: `  compound settings --format html --schedule monthly
  compound settings --save-defaults --principal 5000 --rate 11,5`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagSetFormat, "format", "", "Default report format")
	settingsCmd.Flags().StringVar(&flagSetSchedule, "schedule", "", "Default schedule rows: annual or monthly")
	settingsCmd.Flags().BoolVar(&flagSetDefaults, "save-defaults", false, "Store the calculator flags as defaults")
	settingsCmd.Flags().StringVarP(&flagPrincipal, "principal", "p", "", "Initial amount")
	settingsCmd.Flags().StringVarP(&flagMonthly, "monthly", "m", "", "Monthly contribution")
	settingsCmd.Flags().StringVarP(&flagRate, "rate", "r", "", "Annual interest rate in percent")
	settingsCmd.Flags().StringVarP(&flagYears, "years", "y", "", "Investment horizon in whole years")
	settingsCmd.Flags().StringVar(&flagFrequency, "frequency", "", "Compounding frequency")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, _ []string) error {
	changed := false
	next := settings

	if cmd.Flags().Changed("format") {
		f := output.GetFormatterByName(flagSetFormat)
		if f == nil {
			return output.UnsupportedFormatError(flagSetFormat)
		}
		next.Output.Format = f.Name()
		changed = true
	}
	if cmd.Flags().Changed("schedule") {
		g, err := domain.ParseGranularity(flagSetSchedule)
		if err != nil {
			return err
		}
		next.Output.Schedule = string(g)
		changed = true
	}
	if flagSetDefaults {
		params, err := config.ParseParameters(calcInput(cmd))
		if err != nil {
			return err
		}
		next.Defaults = config.DefaultsSettings{
			Principal:            params.Principal,
			MonthlyContribution:  params.MonthlyContribution,
			AnnualRatePercent:    params.AnnualRatePercent,
			Years:                params.Years,
			CompoundingFrequency: int(params.CompoundingFrequency),
		}
		changed = true
	}

	path := settingsPath()
	if changed {
		if err := next.Validate(); err != nil {
			return err
		}
		if err := config.SaveSettingsTo(path, next); err != nil {
			return err
		}
		settings = next
		fmt.Fprintf(cmd.ErrOrStderr(), "  Saved to %s\n\n", path)
	}

	printSettings(cmd, path)
	return nil
}

func printSettings(cmd *cobra.Command, path string) {
	w := cmd.OutOrStdout()
	styles := cli.NewStyles(lipgloss.NewRenderer(w))

	status := "using defaults (no settings file)"
	if _, err := os.Stat(path); err == nil {
		status = "loaded"
	}

	p := settings.Parameters()
	fmt.Fprint(w, styles.RenderPairs([]cli.KeyValue{
		{Key: "Settings file", Value: path},
		{Key: "Status", Value: status},
	}))
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Header.Render("  [output]"))
	fmt.Fprint(w, styles.RenderPairs([]cli.KeyValue{
		{Key: "Format", Value: settings.Output.Format},
		{Key: "Schedule", Value: settings.Output.Schedule},
	}))
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Header.Render("  [defaults]"))
	fmt.Fprint(w, styles.RenderPairs([]cli.KeyValue{
		{Key: "Principal", Value: output.FormatCurrency(p.Principal)},
		{Key: "Monthly contribution", Value: output.FormatCurrency(p.MonthlyContribution)},
		{Key: "Annual rate", Value: output.FormatPercentage(p.AnnualRatePercent)},
		{Key: "Years", Value: fmt.Sprintf("%d", p.Years)},
		{Key: "Compounding", Value: output.FormatFrequency(p.CompoundingFrequency)},
	}))
}
