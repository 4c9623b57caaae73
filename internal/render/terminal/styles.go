// Package terminal renders the dashboard page for a terminal using lipgloss.
package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sawpanic/defiboard/internal/dashboard"
)

// Palette
var (
	Foreground = lipgloss.Color("#e2e8f0")
	Muted      = lipgloss.Color("#94a3b8")
	Border     = lipgloss.Color("#334155")
	Accent     = lipgloss.Color("#38bdf8")

	toneColors = map[dashboard.Tone]lipgloss.Color{
		dashboard.ToneGreen:  lipgloss.Color("#22c55e"),
		dashboard.ToneYellow: lipgloss.Color("#eab308"),
		dashboard.ToneRed:    lipgloss.Color("#ef4444"),
		dashboard.ToneGray:   lipgloss.Color("#9ca3af"),
	}
)

// Styles holds every style the renderer uses, bound to one lipgloss renderer
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Card    lipgloss.Style
	Value   lipgloss.Style
	Header  lipgloss.Style
	Yes     lipgloss.Style
	No      lipgloss.Style

	r *lipgloss.Renderer
}

// NewStyles builds the style set on r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(Accent).MarginBottom(1),
		Section: r.NewStyle().Bold(true).Foreground(Foreground).Underline(true).MarginTop(1),
		Body:    r.NewStyle().Foreground(Foreground),
		Muted:   r.NewStyle().Foreground(Muted),
		Bold:    r.NewStyle().Bold(true),
		Card:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1),
		Value:   r.NewStyle().Bold(true).Foreground(Foreground),
		Header:  r.NewStyle().Bold(true).Foreground(Muted),
		Yes:     r.NewStyle().Foreground(toneColors[dashboard.ToneGreen]),
		No:      r.NewStyle().Foreground(toneColors[dashboard.ToneRed]),
		r:       r,
	}
}

// Badge styles a status badge by tone
func (s Styles) Badge(t dashboard.Tone) lipgloss.Style {
	c, ok := toneColors[t]
	if !ok {
		c = toneColors[dashboard.ToneGray]
	}
	return s.r.NewStyle().Bold(true).Foreground(c)
}

// Gradient styles text with the leading color of a tile gradient
func (s Styles) Gradient(g dashboard.Gradient) lipgloss.Style {
	return s.r.NewStyle().Bold(true).Foreground(lipgloss.Color(g.From))
}
