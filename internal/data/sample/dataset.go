// Package sample holds the locally declared dashboard data. Every collection
// is built once by NewDataset and never mutated afterwards; accessors hand out
// copies.
package sample

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sawpanic/defiboard/internal/domain/portfolio"
)

// Options controls generation of the synthetic market series. Prices and
// volumes are drawn uniformly from [Base, Base+Spread).
type Options struct {
	MarketPoints   int
	MarketInterval time.Duration
	PriceBase      float64
	PriceSpread    float64
	VolumeBase     float64
	VolumeSpread   float64
	// Seed fixes the generator. Zero seeds from the clock.
	Seed int64
	// End is the timestamp of the last point. Zero means now.
	End time.Time
}

// DefaultOptions returns the series shape used when nothing is configured:
// thirty daily points ending now.
func DefaultOptions() Options {
	return Options{
		MarketPoints:   30,
		MarketInterval: 24 * time.Hour,
		PriceBase:      1800,
		PriceSpread:    400,
		VolumeBase:     1000000,
		VolumeSpread:   500000,
	}
}

// Dataset is the immutable set of records every view reads.
type Dataset struct {
	riskMetrics []portfolio.RiskMetric
	yields      []portfolio.YieldOpportunity
	assets      []portfolio.PortfolioAsset
	lending     []portfolio.LendingOpportunity
	market      []portfolio.MarketData
	builtAt     time.Time
}

// NewDataset builds all collections.
func NewDataset(opts Options) *Dataset {
	ds := &Dataset{
		riskMetrics: riskMetrics(),
		yields:      yieldOpportunities(),
		assets:      portfolioAssets(),
		lending:     lendingOpportunities(),
		market:      MarketSeries(opts),
		builtAt:     time.Now().UTC(),
	}

	log.Debug().
		Int("risk_metrics", len(ds.riskMetrics)).
		Int("yields", len(ds.yields)).
		Int("assets", len(ds.assets)).
		Int("lending", len(ds.lending)).
		Int("market_points", len(ds.market)).
		Msg("Sample dataset built")

	return ds
}

// RiskMetrics returns a copy of the risk metrics in display order.
func (d *Dataset) RiskMetrics() []portfolio.RiskMetric {
	return append([]portfolio.RiskMetric(nil), d.riskMetrics...)
}

// YieldOpportunities returns a copy of the yield opportunities.
func (d *Dataset) YieldOpportunities() []portfolio.YieldOpportunity {
	return append([]portfolio.YieldOpportunity(nil), d.yields...)
}

// PortfolioAssets returns a copy of the portfolio holdings.
func (d *Dataset) PortfolioAssets() []portfolio.PortfolioAsset {
	return append([]portfolio.PortfolioAsset(nil), d.assets...)
}

// LendingOpportunities returns a copy of the lending markets.
func (d *Dataset) LendingOpportunities() []portfolio.LendingOpportunity {
	return append([]portfolio.LendingOpportunity(nil), d.lending...)
}

// MarketData returns a copy of the synthetic price series.
func (d *Dataset) MarketData() []portfolio.MarketData {
	return append([]portfolio.MarketData(nil), d.market...)
}

// BuiltAt is when the dataset was created.
func (d *Dataset) BuiltAt() time.Time {
	return d.builtAt
}

// MarketSeries generates independent uniform price and volume samples at a
// fixed interval, oldest first.
func MarketSeries(opts Options) []portfolio.MarketData {
	def := DefaultOptions()
	if opts.MarketPoints <= 0 {
		opts.MarketPoints = def.MarketPoints
	}
	if opts.MarketInterval <= 0 {
		opts.MarketInterval = def.MarketInterval
	}
	if opts.PriceBase <= 0 && opts.PriceSpread <= 0 {
		opts.PriceBase, opts.PriceSpread = def.PriceBase, def.PriceSpread
	}
	if opts.VolumeBase <= 0 && opts.VolumeSpread <= 0 {
		opts.VolumeBase, opts.VolumeSpread = def.VolumeBase, def.VolumeSpread
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	end := opts.End
	if end.IsZero() {
		end = time.Now().UTC()
	}

	series := make([]portfolio.MarketData, 0, opts.MarketPoints)
	for i := 0; i < opts.MarketPoints; i++ {
		back := time.Duration(opts.MarketPoints-1-i) * opts.MarketInterval
		series = append(series, portfolio.MarketData{
			Timestamp: end.Add(-back),
			Price:     opts.PriceBase + rng.Float64()*opts.PriceSpread,
			Volume:    opts.VolumeBase + rng.Float64()*opts.VolumeSpread,
		})
	}
	return series
}
