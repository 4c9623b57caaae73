package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocationSum(t *testing.T) {
	assets := []PortfolioAsset{
		{Name: "ETH", Allocation: 40},
		{Name: "WBTC", Allocation: 30},
		{Name: "USDC", Allocation: 20},
		{Name: "AAVE", Allocation: 10},
	}
	assert.Equal(t, 100.0, AllocationSum(assets))
	assert.Equal(t, 0.0, AllocationSum(nil))
}

func TestAllocationBalanced(t *testing.T) {
	tests := []struct {
		name   string
		allocs []float64
		want   bool
	}{
		{"exact", []float64{50, 50}, true},
		{"within_tolerance_above", []float64{50, 50.4}, true},
		{"within_tolerance_below", []float64{50, 49.6}, true},
		{"over", []float64{60, 50}, false},
		{"under", []float64{10, 20}, false},
		{"empty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var assets []PortfolioAsset
			for _, a := range tt.allocs {
				assets = append(assets, PortfolioAsset{Allocation: a})
			}
			assert.Equal(t, tt.want, AllocationBalanced(assets))
		})
	}
}
