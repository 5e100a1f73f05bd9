package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for report formats with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// ReportCurrency is the ISO code of the single currency reports are rendered in.
const ReportCurrency = "BRL"

// Report is the envelope written by the machine-readable formatters.
type Report struct {
	ID          string                     `json:"id" yaml:"id"`
	GeneratedAt time.Time                  `json:"generated_at" yaml:"generated_at"`
	Currency    string                     `json:"currency" yaml:"currency"`
	Comparison  *domain.ScenarioComparison `json:"comparison" yaml:"comparison"`
}

// NewReport stamps results with a fresh report id and the generation time.
func NewReport(results *domain.ScenarioComparison) Report {
	return Report{
		ID:          idFunc(),
		GeneratedAt: nowFunc().UTC(),
		Currency:    ReportCurrency,
		Comparison:  results,
	}
}

// GenerateReport renders results with the named formatter and writes them to w.
func GenerateReport(results *domain.ScenarioComparison, format string, w io.Writer) error {
	f := GetFormatterByName(format)
	if f == nil {
		return UnsupportedFormatError(format)
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s report: %w", f.Name(), err)
	}
	return nil
}

// UnsupportedFormatError wraps ErrUnsupportedFormat with the formats and aliases that would work.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
