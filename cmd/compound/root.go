// Command compound projects how savings grow under compound interest.
package main

import (
	"fmt"
	"os"

	"github.com/rpgo/compound-calculator/internal/calculation"
	"github.com/rpgo/compound-calculator/internal/cli"
	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/rpgo/compound-calculator/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagVerbose  bool
	flagSettings string
)

// settings is loaded before every command runs.
var settings = config.DefaultSettings()

var rootCmd = &cobra.Command{
	Use:   "compound",
	Short: "Compound interest calculator",
	Long: `Project the future value of an investment with monthly contributions,
compare scenarios side by side and export the growth schedule.

Amounts accept plain ("1234.56") or Brazilian ("R$ 1.234,56") notation.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runCalc,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log projection details to stderr")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Settings file (default "+config.SettingsPath()+")")
	addCalcFlags(rootCmd)
}

func settingsPath() string {
	if flagSettings != "" {
		return flagSettings
	}
	return config.SettingsPath()
}

// loadSettings falls back to defaults when the file is broken so a bad
// settings file never blocks a calculation. The report format is checked
// against the output registry.
func loadSettings(cmd *cobra.Command, _ []string) error {
	path := settingsPath()
	s, err := config.LoadSettingsFrom(path)
	if err == nil && output.GetFormatterByName(s.Output.Format) == nil {
		err = fmt.Errorf("invalid settings in %s: output.format: %w", path, output.UnsupportedFormatError(s.Output.Format))
		s = config.DefaultSettings()
	}
	if err != nil {
		newLogger(cmd).Warnf("%v; using defaults", err)
	}
	settings = s
	return nil
}

func newLogger(cmd *cobra.Command) *cli.StderrLogger {
	return cli.NewLogger(cmd.ErrOrStderr(), flagVerbose)
}

func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	engine.SetLogger(newLogger(cmd))
	return engine
}
