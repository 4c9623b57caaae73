package handlers

import (
	"net/http"

	"github.com/sawpanic/defiboard/internal/dashboard"
	"github.com/sawpanic/defiboard/internal/domain/portfolio"
	httpContracts "github.com/sawpanic/defiboard/internal/http"
)

// RiskMetrics handles GET /api/risk
func (h *Handlers) RiskMetrics(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, httpContracts.NewListResponse(h.source.RiskMetrics(), h.opts.Now()))
}

// Lending handles GET /api/lending
func (h *Handlers) Lending(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, httpContracts.NewListResponse(h.source.LendingOpportunities(), h.opts.Now()))
}

// Portfolio handles GET /api/portfolio
func (h *Handlers) Portfolio(w http.ResponseWriter, r *http.Request) {
	assets := h.source.PortfolioAssets()
	h.writeJSON(w, http.StatusOK, httpContracts.PortfolioResponse{
		ListResponse:  httpContracts.NewListResponse(assets, h.opts.Now()),
		TotalValue:    dashboard.TotalValue(assets),
		AllocationSum: portfolio.AllocationSum(assets),
	})
}

// Yield handles GET /api/yield. Records are returned in stored order.
func (h *Handlers) Yield(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, httpContracts.NewListResponse(h.source.YieldOpportunities(), h.opts.Now()))
}

// Market handles GET /api/market with the synthetic price series
func (h *Handlers) Market(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, httpContracts.NewListResponse(h.source.MarketData(), h.opts.Now()))
}
