package portfolio

import "time"

// RiskStatus is the externally assigned severity label of a risk metric.
type RiskStatus string

const (
	StatusLow    RiskStatus = "low"
	StatusMedium RiskStatus = "medium"
	StatusHigh   RiskStatus = "high"
)

// RiskMetric is a single portfolio risk reading. Value and Threshold are
// fractions in [0,1]. Status is assigned by the data source and is not
// derived from Value or Threshold.
type RiskMetric struct {
	Name      string     `json:"name" yaml:"name"`
	Value     float64    `json:"value" yaml:"value"`
	Threshold float64    `json:"threshold" yaml:"threshold"`
	Status    RiskStatus `json:"status" yaml:"status"`
}

// YieldOpportunity is a protocol yield offer. Risk is a fraction in [0,1].
type YieldOpportunity struct {
	Protocol    string  `json:"protocol" yaml:"protocol"`
	APY         float64 `json:"apy" yaml:"apy"` // percent, e.g. 4.5 for 4.5%
	TVL         float64 `json:"tvl" yaml:"tvl"` // USD
	Risk        float64 `json:"risk" yaml:"risk"`
	Recommended bool    `json:"recommended" yaml:"recommended"`
}

// PortfolioAsset is a single holding. Allocation is a percent in [0,100].
type PortfolioAsset struct {
	Name       string  `json:"name" yaml:"name"`
	Allocation float64 `json:"allocation" yaml:"allocation"`
	Value      float64 `json:"value" yaml:"value"` // USD
	Risk       float64 `json:"risk" yaml:"risk"`
}

// MarketData is one point of a price series.
type MarketData struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Price     float64   `json:"price" yaml:"price"`
	Volume    float64   `json:"volume" yaml:"volume"`
}

// LendingOpportunity is a lending market for one asset on one protocol.
// Utilization is a percent in [0,100]; Color is a presentational gradient
// token resolved by the view layer.
type LendingOpportunity struct {
	Protocol    string  `json:"protocol" yaml:"protocol"`
	Asset       string  `json:"asset" yaml:"asset"`
	APY         float64 `json:"apy" yaml:"apy"`
	TVL         float64 `json:"tvl" yaml:"tvl"`
	Utilization float64 `json:"utilization" yaml:"utilization"`
	Color       string  `json:"color" yaml:"color"`
}

// AllocationTolerance is how far the allocation sum may drift from 100
// before AllocationBalanced reports false.
const AllocationTolerance = 0.5

// AllocationSum returns the sum of asset allocation percentages.
func AllocationSum(assets []PortfolioAsset) float64 {
	var sum float64
	for _, a := range assets {
		sum += a.Allocation
	}
	return sum
}

// AllocationBalanced reports whether allocations add up to roughly 100%.
// An empty portfolio is considered balanced.
func AllocationBalanced(assets []PortfolioAsset) bool {
	if len(assets) == 0 {
		return true
	}
	diff := AllocationSum(assets) - 100
	return diff <= AllocationTolerance && diff >= -AllocationTolerance
}
