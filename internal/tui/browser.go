package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/rpgo/compound-calculator/internal/output"
)

const (
	headerHeight = 4 // title + tabs + summary + blank
	footerHeight = 2 // help line + border slack
	minTableRows = 3
)

// Model browses the growth schedule of each projected scenario.
type Model struct {
	width  int
	height int

	comparison *domain.ScenarioComparison
	active     int
	table      table.Model
}

var scheduleColumns = []table.Column{
	{Title: "Period", Width: 18},
	{Title: "Starting", Width: 16},
	{Title: "Contribution", Width: 14},
	{Title: "Interest", Width: 14},
	{Title: "Ending", Width: 16},
}

// New creates a browser positioned on the first scenario.
func New(comparison *domain.ScenarioComparison) Model {
	t := table.New(
		table.WithColumns(scheduleColumns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(ColorText).
		Background(ColorPrimary).
		Bold(false)
	t.SetStyles(styles)

	m := Model{comparison: comparison, table: t}
	m.loadScenario(0)
	return m
}

// Active returns the scenario being shown.
func (m Model) Active() (domain.ScenarioSummary, bool) {
	if m.comparison == nil || m.active >= len(m.comparison.Scenarios) {
		return domain.ScenarioSummary{}, false
	}
	return m.comparison.Scenarios[m.active], true
}

// Rows returns the schedule rows currently loaded in the table.
func (m Model) Rows() []table.Row { return m.table.Rows() }

// Cursor returns the highlighted schedule row.
func (m Model) Cursor() int { return m.table.Cursor() }

// TableHeight returns the number of rows the table may show.
func (m Model) TableHeight() int { return m.table.Height() }

// Init initializes the model
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.loadScenario(m.active + 1)
			return m, nil
		case "shift+tab", "left", "h":
			m.loadScenario(m.active - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-headerHeight-footerHeight, minTableRows))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// loadScenario switches to scenario i, wrapping around both ends.
func (m *Model) loadScenario(i int) {
	n := 0
	if m.comparison != nil {
		n = len(m.comparison.Scenarios)
	}
	if n == 0 {
		m.table.SetRows(nil)
		return
	}
	m.active = ((i % n) + n) % n
	m.table.SetRows(scheduleRows(m.comparison.Scenarios[m.active].Result.Schedule))
	m.table.GotoTop()
}

func scheduleRows(schedule []domain.PeriodRecord) []table.Row {
	rows := make([]table.Row, 0, len(schedule))
	for _, rec := range schedule {
		rows = append(rows, table.Row{
			output.FormatPeriod(rec),
			output.FormatCurrency(rec.StartingBalance),
			output.FormatCurrency(rec.Contribution),
			output.FormatCurrency(rec.InterestEarned),
			output.FormatCurrency(rec.EndingBalance),
		})
	}
	return rows
}

// View renders the UI
func (m Model) View() string {
	scenario, ok := m.Active()
	if !ok {
		return "No scenarios to show.\n"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Compound interest schedule"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderSummary(scenario.Result))
	b.WriteString("\n")
	b.WriteString(TableBorderStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓ scroll • tab/←/→ scenario • q quit"))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.comparison.Scenarios))
	for i, s := range m.comparison.Scenarios {
		if i == m.active {
			tabs = append(tabs, ActiveTabStyle.Render(s.Name))
		} else {
			tabs = append(tabs, TabStyle.Render(s.Name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderSummary(r domain.ProjectionResult) string {
	return SummaryStyle.Render(fmt.Sprintf("Future value %s • invested %s • interest %s • %s",
		MoneyStyle.Render(output.FormatCurrency(r.FutureValue)),
		output.FormatCurrency(r.TotalPrincipalInvested),
		output.FormatCurrency(r.TotalInterestEarned),
		output.FormatFrequency(r.Parameters.CompoundingFrequency)))
}

// Run starts the browser in the alternate screen.
func Run(comparison *domain.ScenarioComparison) error {
	p := tea.NewProgram(New(comparison), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
