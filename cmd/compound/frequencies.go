package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/compound-calculator/internal/cli"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/spf13/cobra"
)

var frequenciesCmd = &cobra.Command{
	Use:   "frequencies",
	Short: "List the supported compounding frequencies",
	Args:  cobra.NoArgs,
	RunE:  runFrequencies,
}

func init() {
	rootCmd.AddCommand(frequenciesCmd)
}

func runFrequencies(cmd *cobra.Command, _ []string) error {
	styles := cli.NewStyles(lipgloss.NewRenderer(cmd.OutOrStdout()))

	pairs := make([]cli.KeyValue, 0, len(domain.SupportedFrequencies()))
	for _, f := range domain.SupportedFrequencies() {
		pairs = append(pairs, cli.KeyValue{
			Key:   f.Name(),
			Value: fmt.Sprintf("%3dx/year  %s", int(f), f.Label()),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.Header.Render("  Compounding frequencies"))
	fmt.Fprint(cmd.OutOrStdout(), styles.RenderPairs(pairs))
	return nil
}
