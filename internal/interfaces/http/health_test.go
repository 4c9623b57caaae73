package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sawpanic/defiboard/internal/domain/portfolio"
)

type stubSource struct {
	risk    []portfolio.RiskMetric
	lending []portfolio.LendingOpportunity
	assets  []portfolio.PortfolioAsset
	yields  []portfolio.YieldOpportunity
	market  []portfolio.MarketData
}

func (s stubSource) RiskMetrics() []portfolio.RiskMetric                  { return s.risk }
func (s stubSource) LendingOpportunities() []portfolio.LendingOpportunity { return s.lending }
func (s stubSource) PortfolioAssets() []portfolio.PortfolioAsset          { return s.assets }
func (s stubSource) YieldOpportunities() []portfolio.YieldOpportunity     { return s.yields }
func (s stubSource) MarketData() []portfolio.MarketData                   { return s.market }

func TestHealth_EmptyDatasetIsUnhealthy(t *testing.T) {
	h := NewHealthHandler(stubSource{}, nil, "v")
	resp := h.Gather()
	assert.Equal(t, StatusUnhealthy, resp.Status)
	assert.Equal(t, CheckFail, resp.Checks["dataset"].Status)
}

func TestHealth_UnbalancedAllocationDegrades(t *testing.T) {
	src := stubSource{
		risk:    []portfolio.RiskMetric{{Name: "a"}},
		lending: []portfolio.LendingOpportunity{{Protocol: "b"}},
		assets:  []portfolio.PortfolioAsset{{Name: "ETH", Allocation: 70}},
		yields:  []portfolio.YieldOpportunity{{Protocol: "c"}},
		market:  []portfolio.MarketData{{Price: 1}},
	}
	resp := NewHealthHandler(src, NewMetricsRegistry(), "v").Gather()
	assert.Equal(t, StatusDegraded, resp.Status)
	assert.Equal(t, CheckWarn, resp.Checks["allocation"].Status)
	assert.Equal(t, CheckPass, resp.Checks["dataset"].Status)
}

func TestHealth_PartialDatasetDegrades(t *testing.T) {
	src := stubSource{
		risk:   []portfolio.RiskMetric{{Name: "a"}},
		assets: []portfolio.PortfolioAsset{{Name: "ETH", Allocation: 100}},
	}
	resp := NewHealthHandler(src, nil, "v").Gather()
	assert.Equal(t, StatusDegraded, resp.Status)
	assert.Equal(t, CheckWarn, resp.Checks["dataset"].Status)
}
