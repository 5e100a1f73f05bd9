package main

import (
	"fmt"

	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/rpgo/compound-calculator/internal/tui"
	"github.com/spf13/cobra"
)

var (
	flagRunFormat string
	flagRunOut    string
	flagRunBrowse bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenarios.yaml>",
	Short: "Project and compare every scenario in a YAML file",
	Long: `Project every scenario in a YAML file and compare them. The report names
the scenario with the highest future value and, for scenarios with the same
schedule shape, the period in which one overtakes another.

Run "compound example scenarios.yaml" for a starting point.`,
	Args: cobra.ExactArgs(1),
	RunE: runScenarios,
}

func init() {
	addReportFlags(runCmd, &flagRunFormat, &flagRunOut)
	runCmd.Flags().BoolVarP(&flagRunBrowse, "browse", "b", false, "Browse the schedules interactively")
	rootCmd.AddCommand(runCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}

	results, err := newEngine(cmd).RunScenarios(cfg)
	if err != nil {
		return fmt.Errorf("projecting %s: %w", args[0], err)
	}

	if flagRunBrowse {
		return tui.Run(results)
	}
	return writeReport(cmd, results, flagRunFormat, flagRunOut)
}
