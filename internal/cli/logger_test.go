package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStderrLogger_QuietDropsDebugAndInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, false)

	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("rate %.1f%% looks high", 40.0)
	l.Errorf("boom")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"  WARN  rate 40.0% looks high",
		"  ERROR boom",
	}, lines)
}

func TestStderrLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, true)

	l.Debugf("projected %d periods", 120)
	l.Infof("[%s] running %s schedule", "Reserva", "monthly")

	assert.Equal(t, "  DEBUG projected 120 periods\n  INFO  [Reserva] running monthly schedule\n", buf.String())
}

func TestRenderPairs_AlignsKeys(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(lipgloss.NewRenderer(&buf))

	out := s.RenderPairs([]KeyValue{
		{Key: "Future value", Value: "R$ 17.175,24"},
		{Key: "Years", Value: "10"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "R$"), strings.Index(lines[1], "10"))
}
