package main

import (
	"fmt"
	"os"

	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/spf13/cobra"
)

var flagExampleForce bool

var exampleCmd = &cobra.Command{
	Use:   "example <path>",
	Short: "Write an example scenario file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExample,
}

func init() {
	exampleCmd.Flags().BoolVar(&flagExampleForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !flagExampleForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	parser := config.NewInputParser()
	if err := config.SaveConfiguration(parser.CreateExampleConfiguration(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Example scenarios written to %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "  Run: compound run %s\n", path)
	return nil
}
