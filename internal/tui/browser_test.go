package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rpgo/compound-calculator/internal/calculation"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	p := domain.DefaultParameters()
	lump := domain.InvestmentParameters{
		Principal:            10000,
		AnnualRatePercent:    2,
		Years:                10,
		CompoundingFrequency: domain.Monthly,
	}
	results, err := calculation.NewEngine().RunScenarios(&domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "Aporte mensal", InvestmentParameters: p},
		{Name: "Sem aportes", InvestmentParameters: lump, Granularity: domain.GranularityMonthly},
	}})
	require.NoError(t, err)
	return results
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_LoadsFirstScenario(t *testing.T) {
	m := New(testComparison(t))

	active, ok := m.Active()
	require.True(t, ok)
	assert.Equal(t, "Aporte mensal", active.Name)
	require.Len(t, m.Rows(), 10)
	assert.Equal(t, "Year 1", m.Rows()[0][0])
	assert.Equal(t, "R$ 17.175,24", m.Rows()[9][4])
	assert.Nil(t, m.Init())
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			_, cmd := update(t, New(testComparison(t)), msg)
			require.NotNil(t, cmd)
			_, quit := cmd().(tea.QuitMsg)
			assert.True(t, quit)
		})
	}
}

func TestUpdate_SwitchScenarioWraps(t *testing.T) {
	m := New(testComparison(t))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	active, _ := m.Active()
	assert.Equal(t, "Sem aportes", active.Name)
	assert.Len(t, m.Rows(), 120)
	assert.Equal(t, "Year 1, month 01", m.Rows()[0][0])

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	active, _ = m.Active()
	assert.Equal(t, "Aporte mensal", active.Name)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	active, _ = m.Active()
	assert.Equal(t, "Sem aportes", active.Name)
}

func TestUpdate_ScrollResetsOnSwitch(t *testing.T) {
	m := New(testComparison(t))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Cursor())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.Cursor())
}

func TestUpdate_WindowResize(t *testing.T) {
	m := New(testComparison(t))

	tall, _ := update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	short, _ := update(t, m, tea.WindowSizeMsg{Width: 120, Height: 10})
	tiny, _ := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 2})

	assert.Greater(t, tall.TableHeight(), short.TableHeight())
	floor, _ := update(t, m, tea.WindowSizeMsg{Width: 40, Height: headerHeight + footerHeight + minTableRows})
	assert.Equal(t, floor.TableHeight(), tiny.TableHeight())
}

func TestView(t *testing.T) {
	m := New(testComparison(t))
	view := m.View()
	assert.Contains(t, view, "Aporte mensal")
	assert.Contains(t, view, "Sem aportes")
	assert.Contains(t, view, "R$ 17.175,24")
	assert.Contains(t, view, "q quit")

	empty := New(&domain.ScenarioComparison{})
	assert.Equal(t, "No scenarios to show.\n", empty.View())
	_, ok := empty.Active()
	assert.False(t, ok)

	m, _ = update(t, New(nil), runes("l"))
	assert.Empty(t, m.Rows())
}
