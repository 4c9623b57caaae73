package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawpanic/defiboard/internal/domain/portfolio"
)

func TestLendingTiles(t *testing.T) {
	tiles := LendingTiles([]portfolio.LendingOpportunity{
		{Protocol: "Aave", Asset: "ETH", APY: 3.8, TVL: 2500000, Utilization: 65, Color: "from-purple-500 to-pink-500"},
	})
	require.Len(t, tiles, 1)

	tile := tiles[0]
	assert.Equal(t, "Aave", tile.Protocol)
	assert.Equal(t, "ETH", tile.Asset)
	assert.Equal(t, "3.8%", tile.APY)
	assert.Equal(t, "2.50M", tile.TVL)
	assert.Equal(t, "65%", tile.UtilizationLabel)
	assert.Equal(t, "65%", tile.UtilizationWidth)
	assert.Equal(t, 65.0, tile.Utilization)
	assert.Equal(t, "Lend ETH", tile.Action)
	assert.Equal(t, Gradient{Token: "purple-500-pink-500", From: "#a855f7", To: "#ec4899"}, tile.Gradient)
}

func TestLendingTiles_UtilizationIsIdentity(t *testing.T) {
	for _, u := range []float64{0, 12.5, 50, 99.9, 100} {
		tiles := LendingTiles([]portfolio.LendingOpportunity{{Utilization: u}})
		require.Len(t, tiles, 1)
		assert.Equal(t, Width(u), tiles[0].UtilizationWidth)
		assert.Equal(t, Width(u), tiles[0].UtilizationLabel)
		assert.Equal(t, u, tiles[0].Utilization)
	}
}

func TestLendAction(t *testing.T) {
	assert.Equal(t, "Lend BTC.b", LendAction("BTC.b"))
	assert.Equal(t, "Lend", LendAction(""))
}

func TestGradientFor(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"from-purple-500 to-pink-500", "purple-500-pink-500"},
		{"from-blue-500 to-teal-500", "blue-500-teal-500"},
		{"from-yellow-500 to-orange-500", "yellow-500-orange-500"},
		{"from-red-500 to-pink-500", "red-500-pink-500"},
		{"from-green-500 to-emerald-500", "green-500-emerald-500"},
		{"from-indigo-500 to-purple-500", "indigo-500-purple-500"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			g := GradientFor(tt.token)
			assert.Equal(t, tt.want, g.Token)
			assert.NotEqual(t, NeutralGradient, g)
		})
	}
}

func TestGradientFor_UnknownTokenIsNeutral(t *testing.T) {
	for _, token := range []string{"", "purple", "from-magenta-500 to-pink-500", "to-pink-500 from-purple-500", "from-purple-500"} {
		assert.Equal(t, NeutralGradient, GradientFor(token), token)
	}
}
