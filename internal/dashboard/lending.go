package dashboard

import (
	"strings"

	"github.com/sawpanic/defiboard/internal/domain/portfolio"
)

// Gradient is a two-stop background resolved from a record color token.
type Gradient struct {
	Token string `json:"token"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// NeutralGradient is used for color tokens that do not resolve.
var NeutralGradient = Gradient{Token: "neutral", From: "#6b7280", To: "#374151"}

// swatches are the color stops a token may name, as "<hue>-<shade>".
var swatches = map[string]string{
	"purple-500":  "#a855f7",
	"pink-500":    "#ec4899",
	"blue-500":    "#3b82f6",
	"teal-500":    "#14b8a6",
	"yellow-500":  "#eab308",
	"orange-500":  "#f97316",
	"red-500":     "#ef4444",
	"green-500":   "#22c55e",
	"emerald-500": "#10b981",
	"indigo-500":  "#6366f1",
}

// GradientFor resolves a token of the form "from-<stop> to-<stop>", e.g.
// "from-purple-500 to-pink-500". Anything else, including an unknown stop,
// falls back to NeutralGradient.
func GradientFor(token string) Gradient {
	parts := strings.Fields(token)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "from-") || !strings.HasPrefix(parts[1], "to-") {
		return NeutralGradient
	}
	fromStop := strings.TrimPrefix(parts[0], "from-")
	toStop := strings.TrimPrefix(parts[1], "to-")

	from, ok := swatches[fromStop]
	if !ok {
		return NeutralGradient
	}
	to, ok := swatches[toStop]
	if !ok {
		return NeutralGradient
	}
	return Gradient{Token: fromStop + "-" + toStop, From: from, To: to}
}

// LendAction is the label of a tile's lend button. No transaction handler is
// attached.
func LendAction(asset string) string {
	return strings.TrimSpace("Lend " + asset)
}

// LendingTile is the display form of one lending market.
type LendingTile struct {
	Protocol         string   `json:"protocol"`
	Asset            string   `json:"asset"`
	Gradient         Gradient `json:"gradient"`
	APY              string   `json:"apy"`
	Utilization      float64  `json:"utilization"`
	UtilizationLabel string   `json:"utilization_label"`
	UtilizationWidth string   `json:"utilization_width"`
	TVL              string   `json:"tvl"`
	Action           string   `json:"action"`
}

// LendingTiles builds one tile per lending market, preserving order.
func LendingTiles(opps []portfolio.LendingOpportunity) []LendingTile {
	tiles := make([]LendingTile, 0, len(opps))
	for _, o := range opps {
		tiles = append(tiles, LendingTile{
			Protocol:         o.Protocol,
			Asset:            o.Asset,
			Gradient:         GradientFor(o.Color),
			APY:              Percent(o.APY),
			Utilization:      o.Utilization,
			UtilizationLabel: Width(o.Utilization),
			UtilizationWidth: Width(o.Utilization),
			TVL:              Millions(o.TVL),
			Action:           LendAction(o.Asset),
		})
	}
	return tiles
}
