package dashboard

import (
	"strings"

	"github.com/sawpanic/defiboard/internal/domain/portfolio"
)

// Tone is the color family of a badge.
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneYellow Tone = "yellow"
	ToneRed    Tone = "red"
	ToneGray   Tone = "gray"
)

// Icon is a named glyph shown on a risk card.
type Icon struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
}

// riskIcons is keyed by exact metric name.
var riskIcons = map[string]Icon{
	"Portfolio VaR":       {Name: "alert-triangle", Glyph: "⚠"},
	"Volatility":          {Name: "trending-up", Glyph: "↗"},
	"Liquidity Risk":      {Name: "dollar-sign", Glyph: "$"},
	"Smart Contract Risk": {Name: "shield", Glyph: "⛨"},
}

// RiskCard is the display form of one risk metric.
type RiskCard struct {
	Name       string `json:"name"`
	Icon       *Icon  `json:"icon,omitempty"` // nil when the name has no mapping
	Badge      string `json:"badge"`
	Tone       Tone   `json:"tone"`
	BadgeClass string `json:"badge_class"`
	Value      string `json:"value"`
	Threshold  string `json:"threshold"`
}

// StatusTone maps a status to its badge color. Unknown statuses are gray.
func StatusTone(s portfolio.RiskStatus) Tone {
	switch s {
	case portfolio.StatusLow:
		return ToneGreen
	case portfolio.StatusMedium:
		return ToneYellow
	case portfolio.StatusHigh:
		return ToneRed
	default:
		return ToneGray
	}
}

// IconFor returns the icon registered for an exact metric name.
func IconFor(name string) (Icon, bool) {
	icon, ok := riskIcons[name]
	return icon, ok
}

// RiskCards builds one card per metric, preserving order.
func RiskCards(metrics []portfolio.RiskMetric) []RiskCard {
	cards := make([]RiskCard, 0, len(metrics))
	for _, m := range metrics {
		tone := StatusTone(m.Status)
		card := RiskCard{
			Name:       m.Name,
			Badge:      strings.ToUpper(string(m.Status)),
			Tone:       tone,
			BadgeClass: "badge-" + string(tone),
			Value:      FractionPercent(m.Value),
			Threshold:  FractionPercent(m.Threshold),
		}
		if icon, ok := IconFor(m.Name); ok {
			card.Icon = &icon
		}
		cards = append(cards, card)
	}
	return cards
}
