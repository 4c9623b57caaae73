package sample

import "github.com/sawpanic/defiboard/internal/domain/portfolio"

func riskMetrics() []portfolio.RiskMetric {
	return []portfolio.RiskMetric{
		{Name: "Portfolio VaR", Value: 0.15, Threshold: 0.2, Status: portfolio.StatusMedium},
		{Name: "Volatility", Value: 0.25, Threshold: 0.3, Status: portfolio.StatusMedium},
		{Name: "Liquidity Risk", Value: 0.1, Threshold: 0.15, Status: portfolio.StatusLow},
		{Name: "Smart Contract Risk", Value: 0.05, Threshold: 0.1, Status: portfolio.StatusLow},
	}
}

func yieldOpportunities() []portfolio.YieldOpportunity {
	return []portfolio.YieldOpportunity{
		{Protocol: "Aave", APY: 4.5, TVL: 1000000, Risk: 0.1, Recommended: true},
		{Protocol: "Compound", APY: 3.8, TVL: 800000, Risk: 0.08, Recommended: true},
		{Protocol: "Curve", APY: 6.2, TVL: 500000, Risk: 0.15, Recommended: false},
		{Protocol: "Yearn", APY: 8.5, TVL: 300000, Risk: 0.2, Recommended: false},
	}
}

func portfolioAssets() []portfolio.PortfolioAsset {
	return []portfolio.PortfolioAsset{
		{Name: "ETH", Allocation: 40, Value: 400000, Risk: 0.12},
		{Name: "USDC", Allocation: 30, Value: 300000, Risk: 0.05},
		{Name: "WBTC", Allocation: 20, Value: 200000, Risk: 0.15},
		{Name: "DAI", Allocation: 10, Value: 100000, Risk: 0.04},
	}
}

// Color tokens are gradient stop pairs, resolved by dashboard.GradientFor.
func lendingOpportunities() []portfolio.LendingOpportunity {
	return []portfolio.LendingOpportunity{
		{Protocol: "Aave", Asset: "ETH", APY: 3.8, TVL: 2500000, Utilization: 65, Color: "from-purple-500 to-pink-500"},
		{Protocol: "Compound", Asset: "USDC", APY: 4.2, TVL: 1800000, Utilization: 72, Color: "from-blue-500 to-teal-500"},
		{Protocol: "Maker", Asset: "DAI", APY: 3.5, TVL: 1200000, Utilization: 58, Color: "from-yellow-500 to-orange-500"},
		{Protocol: "Benqi", Asset: "AVAX", APY: 5.1, TVL: 800000, Utilization: 81, Color: "from-red-500 to-pink-500"},
		{Protocol: "Trader Joe", Asset: "BTC.b", APY: 2.9, TVL: 1500000, Utilization: 45, Color: "from-green-500 to-emerald-500"},
		{Protocol: "Geist", Asset: "FTM", APY: 6.2, TVL: 600000, Utilization: 88, Color: "from-indigo-500 to-purple-500"},
	}
}
