// Package cli holds the terminal styling and logging shared by the compound commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// Styles bound to one renderer so output written to a pipe stays plain.
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
}

// NewStyles builds the palette for r. A nil renderer uses lipgloss's default.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Header: r.NewStyle().Bold(true).Foreground(ColorAccent),
		Label:  r.NewStyle().Foreground(ColorTextMuted),
		Value:  r.NewStyle().Foreground(ColorText),
	}
}

// KeyValue is one aligned line of a RenderPairs block.
type KeyValue struct {
	Key   string
	Value string
}

// RenderPairs renders "key: value" lines with the keys padded to a common width.
func (s Styles) RenderPairs(pairs []KeyValue) string {
	width := 0
	for _, p := range pairs {
		if w := lipgloss.Width(p.Key); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, p := range pairs {
		pad := strings.Repeat(" ", width-lipgloss.Width(p.Key))
		fmt.Fprintf(&b, "  %s%s  %s\n", s.Label.Render(p.Key+":"), pad, s.Value.Render(p.Value))
	}
	return b.String()
}
