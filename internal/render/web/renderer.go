// Package web renders the dashboard page as HTML.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"regexp"

	"github.com/sawpanic/defiboard/internal/dashboard"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer writes dashboard pages as HTML. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// background renders a tile gradient as an inline CSS declaration. Stops that
// are not hex colors fall back to the neutral gradient.
func background(g dashboard.Gradient) template.CSS {
	if !hexColor.MatchString(g.From) || !hexColor.MatchString(g.To) {
		g = dashboard.NeutralGradient
	}
	return template.CSS(fmt.Sprintf("background: linear-gradient(135deg, %s, %s)", g.From, g.To))
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("defiboard").
		Funcs(template.FuncMap{"background": background}).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes page to w. Output is buffered so a template failure never
// leaves a half-written page.
func (r *Renderer) Render(w io.Writer, page dashboard.Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}
