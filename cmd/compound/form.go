package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/rpgo/compound-calculator/internal/tui"
	"github.com/spf13/cobra"
)

var (
	flagFormFormat string
	flagFormOut    string
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill in the calculator interactively",
	Long: `Fill in the calculator inputs in an interactive form, starting from the
saved defaults. Without --format or --out the result opens in the schedule
browser.`,
	Args: cobra.NoArgs,
	RunE: runForm,
}

func init() {
	addReportFlags(formCmd, &flagFormFormat, &flagFormOut)
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, _ []string) error {
	granularity, err := scheduleGranularity("")
	if err != nil {
		return err
	}

	params, granularity, err := tui.RunParametersForm(settings.Parameters(), granularity)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "  Cancelled.")
			return nil
		}
		return err
	}

	var (
		results *domain.ScenarioComparison
		runErr  error
	)
	engine := newEngine(cmd)
	err = tui.RunWithSpinner("Calculando...", 200*time.Millisecond, func() {
		results, runErr = engine.RunScenarios(&domain.Configuration{Scenarios: []domain.Scenario{
			{Name: "Simulação", InvestmentParameters: params, Granularity: granularity},
		}})
	})
	if err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("projecting: %w", runErr)
	}

	if flagFormFormat == "" && flagFormOut == "" {
		return tui.Run(results)
	}
	return writeReport(cmd, results, flagFormFormat, flagFormOut)
}
