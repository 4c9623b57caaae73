package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sawpanic/defiboard/internal/domain/portfolio"
	"github.com/sawpanic/defiboard/internal/interfaces/http/handlers"
)

// Check statuses
const (
	CheckPass = "pass"
	CheckWarn = "warn"
	CheckFail = "fail"
)

// Overall statuses
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthHandler provides system health status endpoint
type HealthHandler struct {
	source    handlers.Source
	metrics   *MetricsRegistry
	startTime time.Time
	version   string
}

// NewHealthHandler creates a new health handler. metrics may be nil.
func NewHealthHandler(source handlers.Source, metrics *MetricsRegistry, version string) *HealthHandler {
	return &HealthHandler{
		source:    source,
		metrics:   metrics,
		startTime: time.Now(),
		version:   version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string                 `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp time.Time              `json:"timestamp"`
	Uptime    string                 `json:"uptime"`
	Version   string                 `json:"version"`
	System    SystemInfo             `json:"system"`
	Records   map[string]int         `json:"records"`
	Renders   RenderSummary          `json:"renders"`
	Checks    map[string]CheckResult `json:"checks"`
}

// SystemInfo provides system-level information
type SystemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	MemAlloc      uint64 `json:"mem_alloc_bytes"`
	NumGC         uint32 `json:"num_gc"`
}

// RenderSummary counts page builds since start
type RenderSummary struct {
	HTML   float64 `json:"html"`
	JSON   float64 `json:"json"`
	Failed float64 `json:"failed"`
}

// CheckResult represents individual health check results
type CheckResult struct {
	Status  string `json:"status"` // "pass", "warn", "fail"
	Message string `json:"message"`
}

// ServeHTTP implements the health check endpoint
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := h.Gather()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if response.Status == StatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("Failed to encode health response")
	}
}

// RecordCounts returns the size of every collection in source
func RecordCounts(source handlers.Source) map[string]int {
	return map[string]int{
		"risk_metrics": len(source.RiskMetrics()),
		"lending":      len(source.LendingOpportunities()),
		"portfolio":    len(source.PortfolioAssets()),
		"yield":        len(source.YieldOpportunities()),
		"market":       len(source.MarketData()),
	}
}

// Gather collects all health information
func (h *HealthHandler) Gather() HealthResponse {
	records := RecordCounts(h.source)
	response := HealthResponse{
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		System:    systemInfo(),
		Records:   records,
		Checks:    make(map[string]CheckResult),
	}

	if h.metrics != nil {
		response.Renders = RenderSummary{
			HTML:   h.metrics.RenderCount("html", "success"),
			JSON:   h.metrics.RenderCount("json", "success"),
			Failed: h.metrics.RenderCount("html", "error") + h.metrics.RenderCount("json", "error"),
		}
	}

	empty := 0
	for _, n := range records {
		if n == 0 {
			empty++
		}
	}
	switch {
	case empty == len(records):
		response.Checks["dataset"] = CheckResult{Status: CheckFail, Message: "All collections are empty"}
	case empty > 0:
		response.Checks["dataset"] = CheckResult{Status: CheckWarn, Message: fmt.Sprintf("%d collections are empty", empty)}
	default:
		response.Checks["dataset"] = CheckResult{Status: CheckPass, Message: "All collections loaded"}
	}

	assets := h.source.PortfolioAssets()
	sum := portfolio.AllocationSum(assets)
	if portfolio.AllocationBalanced(assets) {
		response.Checks["allocation"] = CheckResult{Status: CheckPass, Message: fmt.Sprintf("Allocations sum to %.1f%%", sum)}
	} else {
		response.Checks["allocation"] = CheckResult{Status: CheckWarn, Message: fmt.Sprintf("Allocations sum to %.1f%%, expected 100%%", sum)}
	}

	response.Status = overallStatus(response.Checks)
	return response
}

func overallStatus(checks map[string]CheckResult) string {
	status := StatusHealthy
	for _, c := range checks {
		switch c.Status {
		case CheckFail:
			return StatusUnhealthy
		case CheckWarn:
			status = StatusDegraded
		}
	}
	return status
}

func systemInfo() SystemInfo {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return SystemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		MemAlloc:      memStats.Alloc,
		NumGC:         memStats.NumGC,
	}
}
