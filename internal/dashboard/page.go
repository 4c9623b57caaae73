// Package dashboard turns portfolio records into display-ready view models.
// Every function here is pure: it reads its input and returns a new value.
package dashboard

import (
	"time"

	"github.com/sawpanic/defiboard/internal/domain/portfolio"
)

// DefaultTitle heads the page when no title is configured.
const DefaultTitle = "DeFi Guardian"

// Headings are the section titles, in page order.
type Headings struct {
	Risk       string `json:"risk"`
	Lending    string `json:"lending"`
	Allocation string `json:"allocation"`
	Yield      string `json:"yield"`
}

// DefaultHeadings returns the standard section titles.
func DefaultHeadings() Headings {
	return Headings{
		Risk:       "Risk Assessment",
		Lending:    "Lending Markets",
		Allocation: "Portfolio Overview",
		Yield:      "Yield Optimization",
	}
}

// Source supplies the record collections the page reads.
type Source interface {
	RiskMetrics() []portfolio.RiskMetric
	LendingOpportunities() []portfolio.LendingOpportunity
	PortfolioAssets() []portfolio.PortfolioAsset
	YieldOpportunities() []portfolio.YieldOpportunity
}

// Options tunes page composition.
type Options struct {
	Title   string
	Ranking Ranking
	// Now stamps the page. Nil uses time.Now.
	Now func() time.Time
}

// Page is the full dashboard. Sections render top to bottom in field order.
type Page struct {
	Title       string         `json:"title"`
	GeneratedAt time.Time      `json:"generated_at"`
	Headings    Headings       `json:"headings"`
	Risk        []RiskCard     `json:"risk"`
	Lending     []LendingTile  `json:"lending"`
	Allocation  AllocationView `json:"allocation"`
	Yield       YieldView      `json:"yield"`
}

// Build composes the four sections from src.
func Build(src Source, opts Options) Page {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	return Page{
		Title:       title,
		GeneratedAt: now().UTC(),
		Headings:    DefaultHeadings(),
		Risk:        RiskCards(src.RiskMetrics()),
		Lending:     LendingTiles(src.LendingOpportunities()),
		Allocation:  Allocation(src.PortfolioAssets()),
		Yield:       YieldTable(src.YieldOpportunities(), opts.Ranking),
	}
}
