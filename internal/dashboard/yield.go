package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sawpanic/defiboard/internal/domain/portfolio"
)

// Ranking selects the row order of the yield table.
type Ranking string

const (
	// RankingAsGiven keeps the input order.
	RankingAsGiven Ranking = "as_given"
	// RankingRiskAdjusted orders by APY per unit of risk, highest first.
	RankingRiskAdjusted Ranking = "risk_adjusted"
)

// YieldPanelTitle heads the yield table.
const YieldPanelTitle = "Yield Opportunities"

const (
	subtitleAsGiven      = "Current opportunities across integrated protocols"
	subtitleRiskAdjusted = "Current opportunities ranked by risk-adjusted returns"
)

// Glyphs for the recommendation column.
const (
	GlyphRecommended    = "✓"
	GlyphNotRecommended = "✗"
)

// ParseRanking accepts the ranking names case-insensitively. An empty string
// means RankingAsGiven.
func ParseRanking(s string) (Ranking, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(RankingAsGiven):
		return RankingAsGiven, nil
	case string(RankingRiskAdjusted):
		return RankingRiskAdjusted, nil
	default:
		return "", fmt.Errorf("unknown yield ranking %q (want %s or %s)", s, RankingAsGiven, RankingRiskAdjusted)
	}
}

// YieldRow is one row of the yield table.
type YieldRow struct {
	Protocol    string  `json:"protocol"`
	APY         string  `json:"apy"`
	TVL         string  `json:"tvl"`
	Risk        string  `json:"risk"`
	Score       float64 `json:"score"`
	Recommended bool    `json:"recommended"`
	Glyph       string  `json:"glyph"`
}

// YieldView is the yield optimizer section.
type YieldView struct {
	Title    string     `json:"title"`
	Ranking  Ranking    `json:"ranking"`
	Subtitle string     `json:"subtitle"`
	Rows     []YieldRow `json:"rows"`
}

// RiskAdjustedScore is APY divided by risk. Zero or negative risk scores
// +Inf.
func RiskAdjustedScore(o portfolio.YieldOpportunity) float64 {
	if o.Risk <= 0 {
		return math.Inf(1)
	}
	return o.APY / o.Risk
}

// RecommendationGlyph returns the check or cross for a recommendation flag.
func RecommendationGlyph(recommended bool) string {
	if recommended {
		return GlyphRecommended
	}
	return GlyphNotRecommended
}

// YieldTable builds the yield section. The input slice is not reordered.
func YieldTable(opps []portfolio.YieldOpportunity, ranking Ranking) YieldView {
	ordered := append([]portfolio.YieldOpportunity(nil), opps...)

	view := YieldView{Title: YieldPanelTitle, Ranking: RankingAsGiven, Subtitle: subtitleAsGiven}
	if ranking == RankingRiskAdjusted {
		view.Ranking = RankingRiskAdjusted
		view.Subtitle = subtitleRiskAdjusted
		sort.SliceStable(ordered, func(i, j int) bool {
			si, sj := RiskAdjustedScore(ordered[i]), RiskAdjustedScore(ordered[j])
			if si != sj {
				return si > sj
			}
			return ordered[i].APY > ordered[j].APY
		})
	}

	view.Rows = make([]YieldRow, 0, len(ordered))
	for _, o := range ordered {
		score := RiskAdjustedScore(o)
		if math.IsInf(score, 1) {
			// JSON cannot carry +Inf.
			score = math.MaxFloat64
		}
		view.Rows = append(view.Rows, YieldRow{
			Protocol:    o.Protocol,
			APY:         Percent(o.APY),
			TVL:         Thousands(o.TVL),
			Risk:        FractionPercent(o.Risk),
			Score:       score,
			Recommended: o.Recommended,
			Glyph:       RecommendationGlyph(o.Recommended),
		})
	}
	return view
}
