package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawpanic/defiboard/internal/domain/portfolio"
)

func sampleAssets() []portfolio.PortfolioAsset {
	return []portfolio.PortfolioAsset{
		{Name: "ETH", Allocation: 40, Value: 400000, Risk: 0.12},
		{Name: "USDC", Allocation: 30, Value: 300000, Risk: 0.05},
		{Name: "WBTC", Allocation: 20, Value: 200000, Risk: 0.15},
		{Name: "DAI", Allocation: 10, Value: 100000, Risk: 0.04},
	}
}

func TestTotalValue(t *testing.T) {
	assert.Equal(t, 1000000.0, TotalValue(sampleAssets()))
	assert.Equal(t, 0.0, TotalValue(nil))
}

func TestTotalValue_SingleDelta(t *testing.T) {
	base := sampleAssets()
	before := TotalValue(base)

	for i := range base {
		changed := sampleAssets()
		changed[i].Value += 12345
		assert.Equal(t, before+12345, TotalValue(changed), changed[i].Name)
	}
}

func TestAllocation(t *testing.T) {
	view := Allocation(sampleAssets())
	require.Len(t, view.Rows, 4)

	assert.Equal(t, AllocationPanelTitle, view.Title)
	assert.Equal(t, "ETH", view.Rows[0].Name)
	assert.Equal(t, "40%", view.Rows[0].AllocationWidth)
	assert.Equal(t, "40%", view.Rows[0].AllocationLabel)
	assert.Equal(t, "12.0%", view.Rows[0].Risk)
	assert.Equal(t, "$400,000", view.Rows[0].Value)
	assert.Equal(t, "DAI", view.Rows[3].Name)
	assert.Equal(t, "4.0%", view.Rows[3].Risk)

	assert.Equal(t, 1000000.0, view.Total)
	assert.Equal(t, "$1,000,000", view.TotalText)
}
