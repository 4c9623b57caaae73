package terminal

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sawpanic/defiboard/internal/dashboard"
)

const (
	// DefaultWidth is used when the terminal size is unknown.
	DefaultWidth = 100
	barWidth     = 20
	cardWidth    = 24
)

// Options controls terminal output
type Options struct {
	Width int
	Color bool
}

// Renderer writes a dashboard page as styled terminal text
type Renderer struct {
	opts Options
}

// NewRenderer creates a terminal renderer
func NewRenderer(opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	return &Renderer{opts: opts}
}

// Render writes page to w
func (r *Renderer) Render(w io.Writer, page dashboard.Page) error {
	lr := lipgloss.NewRenderer(w)
	if !r.opts.Color {
		lr.SetColorProfile(termenv.Ascii)
	}
	styles := NewStyles(lr)

	blocks := []string{
		styles.Title.Render(page.Title),
		r.riskSection(styles, page.Headings.Risk, page.Risk),
		r.lendingSection(styles, page.Headings.Lending, page.Lending),
		r.allocationSection(styles, page.Headings.Allocation, page.Allocation),
		r.yieldSection(styles, page.Headings.Yield, page.Yield),
	}

	if _, err := io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, blocks...)+"\n"); err != nil {
		return fmt.Errorf("failed to write terminal page: %w", err)
	}
	return nil
}

func (r *Renderer) riskSection(s Styles, heading string, cards []dashboard.RiskCard) string {
	boxes := make([]string, 0, len(cards))
	for _, c := range cards {
		title := c.Name
		if c.Icon != nil {
			title = c.Icon.Glyph + " " + title
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.Bold.Render(title),
			s.Badge(c.Tone).Render(c.Badge),
			s.Value.Render(c.Value),
			s.Muted.Render("/ "+c.Threshold+" threshold"),
		)
		boxes = append(boxes, s.Card.Width(cardWidth).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.Section.Render(heading), r.grid(boxes))
}

func (r *Renderer) lendingSection(s Styles, heading string, tiles []dashboard.LendingTile) string {
	boxes := make([]string, 0, len(tiles))
	for _, t := range tiles {
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.Gradient(t.Gradient).Render(t.Asset),
			s.Muted.Render("on "+t.Protocol),
			s.Body.Render("↗ "+t.APY+" APY"),
			s.Muted.Render("Utilization "+t.UtilizationLabel),
			Bar(t.Utilization, barWidth),
			s.Body.Render("$"+t.TVL+" TVL"),
			s.Bold.Render("["+t.Action+"]"),
		)
		boxes = append(boxes, s.Card.Width(cardWidth).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.Section.Render(heading), r.grid(boxes))
}

func (r *Renderer) allocationSection(s Styles, heading string, view dashboard.AllocationView) string {
	rows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, []string{row.Name, Bar(row.Allocation, barWidth),
			row.Value + " (" + row.AllocationLabel + ")", "Risk Score: " + row.Risk})
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Section.Render(heading),
		s.Bold.Render(view.Title),
		table(s, nil, rows),
		s.Bold.Render("Total Portfolio Value "+view.TotalText),
	)
}

func (r *Renderer) yieldSection(s Styles, heading string, view dashboard.YieldView) string {
	rows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		glyph := s.No.Render(row.Glyph)
		if row.Recommended {
			glyph = s.Yes.Render(row.Glyph)
		}
		rows = append(rows, []string{row.Protocol, row.APY, "$" + row.TVL, row.Risk, glyph})
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Section.Render(heading),
		s.Bold.Render(view.Title),
		s.Muted.Render(view.Subtitle),
		table(s, []string{"PROTOCOL", "APY", "TVL", "RISK SCORE", "RECOMMENDED"}, rows),
	)
}

// grid lays boxes out left to right, wrapping at the configured width
func (r *Renderer) grid(boxes []string) string {
	if len(boxes) == 0 {
		return ""
	}

	var lines []string
	var current []string
	used := 0
	for _, b := range boxes {
		w := lipgloss.Width(b)
		if used > 0 && used+w > r.opts.Width {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current, used = nil, 0
		}
		current = append(current, b)
		used += w
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// table pads columns to their widest cell
func table(s Styles, headers []string, rows [][]string) string {
	cols := len(headers)
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(cells []string, style *lipgloss.Style) string {
		var sb strings.Builder
		for i, cell := range cells {
			text := cell
			if style != nil {
				text = style.Render(cell)
			}
			sb.WriteString(text)
			if i < len(cells)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		return sb.String()
	}

	var out []string
	if len(headers) > 0 {
		out = append(out, line(headers, &s.Header))
	}
	for _, row := range rows {
		out = append(out, line(row, nil))
	}
	return strings.Join(out, "\n")
}

// Bar draws a proportional bar of width cells. Percentages outside 0-100 are
// clamped for drawing only.
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	p := math.Max(0, math.Min(100, pct))
	filled := int(math.Round(p / 100 * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
