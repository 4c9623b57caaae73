package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sawpanic/defiboard/internal/dashboard"
	"github.com/sawpanic/defiboard/internal/data/sample"
	"github.com/sawpanic/defiboard/internal/domain/portfolio"
)

// rawExport is the --raw document
type rawExport struct {
	Generated    time.Time                      `json:"generated"`
	RiskMetrics  []portfolio.RiskMetric         `json:"risk_metrics"`
	Lending      []portfolio.LendingOpportunity `json:"lending"`
	Portfolio    []portfolio.PortfolioAsset     `json:"portfolio"`
	TotalValue   float64                        `json:"total_value"`
	Yield        []portfolio.YieldOpportunity   `json:"yield"`
	MarketSeries []portfolio.MarketData         `json:"market_series"`
}

// runExport writes the dashboard as JSON
func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	raw, _ := cmd.Flags().GetBool("raw")
	output, _ := cmd.Flags().GetString("output")

	ds := newDataset(cfg)
	var doc interface{}
	if raw {
		doc = buildRawExport(ds)
	} else {
		doc = dashboard.Build(ds, dashboard.Options{Title: cfg.Dashboard.Title, Ranking: cfg.Ranking()})
	}

	if output == "-" {
		return writeJSON(cmd.OutOrStdout(), doc)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := writeAndClose(f, doc); err != nil {
		return err
	}
	log.Info().Str("path", output).Bool("raw", raw).Msg("Dashboard exported")
	return nil
}

// writeAndClose encodes doc to wc and always closes it. A failed close is
// reported when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, doc interface{}) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close export file: %w", cerr)
		}
	}()
	return writeJSON(wc, doc)
}

func buildRawExport(ds *sample.Dataset) rawExport {
	assets := ds.PortfolioAssets()
	return rawExport{
		Generated:    time.Now().UTC(),
		RiskMetrics:  ds.RiskMetrics(),
		Lending:      ds.LendingOpportunities(),
		Portfolio:    assets,
		TotalValue:   dashboard.TotalValue(assets),
		Yield:        ds.YieldOpportunities(),
		MarketSeries: ds.MarketData(),
	}
}

func writeJSON(w io.Writer, doc interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}
