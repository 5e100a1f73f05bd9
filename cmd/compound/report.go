package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/rpgo/compound-calculator/internal/output"
	"github.com/spf13/cobra"
)

// addReportFlags registers --format and --out on commands that print a report.
func addReportFlags(cmd *cobra.Command, format, out *string) {
	cmd.Flags().StringVarP(format, "format", "f", "", "Report format: "+formatList()+" (default from settings)")
	cmd.Flags().StringVarP(out, "out", "o", "", "Write the report to a file, or to a timestamped file inside a directory")
}

func formatList() string {
	return strings.Join(output.AvailableFormatterNames(), ", ")
}

// writeReport renders results to stdout, to the file out, or into the directory out.
// Console output to a terminal is colored; everything else is plain.
func writeReport(cmd *cobra.Command, results *domain.ScenarioComparison, format, out string) error {
	if format == "" {
		format = settings.Output.Format
	}
	f := output.GetFormatterByName(format)
	if f == nil {
		return output.UnsupportedFormatError(format)
	}

	if out == "" {
		w := cmd.OutOrStdout()
		if _, ok := f.(output.ConsoleFormatter); ok {
			f = output.ConsoleFormatter{Renderer: lipgloss.NewRenderer(w)}
		}
		data, err := f.Format(results)
		if err != nil {
			return fmt.Errorf("%s formatter: %w", f.Name(), err)
		}
		_, err = w.Write(data)
		return err
	}

	if info, err := os.Stat(out); err == nil && info.IsDir() {
		path, err := output.WriteFormatted(f, results, out)
		if err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "  Report written to %s\n", path)
		return nil
	}

	if err := writeReportFile(results, f.Name(), out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "  Report written to %s\n", out)
	return nil
}

// writeReportFile creates path and removes it again if the report could not be fully written.
func writeReportFile(results *domain.ScenarioComparison, format, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return output.GenerateReport(results, format, file)
}
