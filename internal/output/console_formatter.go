package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rpgo/compound-calculator/internal/domain"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorMuted  = lipgloss.Color("#6F6E69")
)

// plainRenderer renders without color so files and tests stay byte-stable.
var plainRenderer = lipgloss.NewRenderer(io.Discard)

// ConsoleFormatter renders a terminal report: a summary block and schedule table per scenario.
// A nil Renderer produces plain text; pass lipgloss.DefaultRenderer() for colored terminal output.
type ConsoleFormatter struct {
	Renderer *lipgloss.Renderer
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	r := c.Renderer
	if r == nil {
		r = plainRenderer
	}
	title := r.NewStyle().Bold(true).Foreground(colorAccent)
	label := r.NewStyle().Foreground(colorMuted)
	highlight := r.NewStyle().Bold(true).Foreground(colorGreen)

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "COMPOUND INTEREST PROJECTION")
	fmt.Fprintln(&buf, "============================")

	for i, sc := range results.Scenarios {
		res := sc.Result
		p := res.Parameters
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, title.Render(fmt.Sprintf("SCENARIO %d: %s", i+1, sc.Name)))

		line := func(name, value string) {
			fmt.Fprintf(&buf, "  %s %s\n", label.Render(fmt.Sprintf("%-24s", name+":")), value)
		}
		line("Initial principal", FormatCurrency(p.Principal))
		line("Monthly contribution", FormatCurrency(p.MonthlyContribution))
		line("Annual rate", fmt.Sprintf("%s, %s", FormatPercentage(p.AnnualRatePercent), FormatFrequency(p.CompoundingFrequency)))
		line("Horizon", fmt.Sprintf("%d years", p.Years))
		line("Future value", highlight.Render(FormatCurrency(res.FutureValue)))
		line("Total contributions", FormatCurrency(res.TotalContributions))
		line("Total invested", FormatCurrency(res.TotalPrincipalInvested))
		line("Total interest", fmt.Sprintf("%s (%s of future value)", FormatCurrency(res.TotalInterestEarned), FormatPercentage(InterestShare(res))))
		line("With simple interest", fmt.Sprintf("%s (compounding adds %s)", FormatCurrency(res.SimpleInterestValue), FormatCurrency(res.CompoundAdvantage())))

		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, scheduleTable(r, res.Schedule))
	}

	if len(results.Scenarios) > 1 {
		rec := AnalyzeScenarios(results)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best: %s with %s (ahead by %s / %s)\n",
			rec.ScenarioName, FormatCurrency(rec.FutureValue), FormatCurrency(rec.LeadAmount), FormatPercentage(rec.LeadPercentage))
		for _, c := range results.Crossovers {
			fmt.Fprintf(&buf, "Crossover: %s overtakes %s in %s (%s vs %s)\n",
				c.Challenger, c.Leader, crossoverPeriod(c), FormatCurrency(c.ChallengerBalance), FormatCurrency(c.LeaderBalance))
		}
	}

	if len(results.Scenarios) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "ASSUMPTIONS:")
		for _, a := range DefaultAssumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

func scheduleTable(r *lipgloss.Renderer, schedule []domain.PeriodRecord) string {
	header := r.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	number := cell.Align(lipgloss.Right)

	rows := make([][]string, 0, len(schedule))
	for _, rec := range schedule {
		rows = append(rows, []string{
			FormatPeriod(rec),
			FormatCurrency(rec.StartingBalance),
			FormatCurrency(rec.Contribution),
			FormatCurrency(rec.InterestEarned),
			FormatCurrency(rec.EndingBalance),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(colorBorder)).
		Headers("Period", "Starting balance", "Contributions", "Interest", "Ending balance").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return cell
			default:
				return number
			}
		})
	return t.Render()
}

func crossoverPeriod(c domain.Crossover) string {
	return strings.ToLower(FormatPeriod(domain.PeriodRecord{Year: c.Year, MonthInYear: c.MonthInYear}))
}
