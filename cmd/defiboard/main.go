package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sawpanic/defiboard/internal/config"
	"github.com/sawpanic/defiboard/internal/data/sample"
)

const (
	appName = "DeFiBoard"
	version = "v1.0.0"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "defiboard",
		Short:   "DeFi portfolio risk and yield dashboard",
		Version: version,
		Long: `DeFiBoard renders a portfolio dashboard: risk metrics, lending market rates,
asset allocation and yield opportunities.

Serve it over HTTP with 'defiboard serve' or print it with 'defiboard render'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to YAML config file")
	config.BindFlags(rootCmd.PersistentFlags())

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		Long:  "Serves the HTML dashboard at /, JSON records under /api, /health and /metrics",
		RunE:  runServe,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Print the dashboard to the terminal",
		RunE:  runRender,
	}
	renderCmd.Flags().Bool("no-color", false, "Disable colored output")
	renderCmd.Flags().Int("width", 0, "Output width in columns (0 = detect)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dashboard as JSON",
		Long:  "Writes the page view model, or the raw records with --raw, as JSON",
		RunE:  runExport,
	}
	exportCmd.Flags().Bool("raw", false, "Export raw records including the market series")
	exportCmd.Flags().StringP("output", "o", "-", "Output file (- for stdout)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version)
		},
	}

	rootCmd.AddCommand(serveCmd, renderCmd, exportCmd, versionCmd)
	return rootCmd
}

// loadConfig resolves configuration for cmd and configures logging from it
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	required := cmd.Flags().Changed("config")

	cfg, err := config.Resolve(path, required, os.LookupEnv, cmd.Flags())
	if err != nil {
		return cfg, err
	}
	setupLogging(cfg.Log)
	return cfg, nil
}

// setupLogging configures the global zerolog logger
func setupLogging(cfg config.LogConfig) {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.JSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// newDataset builds the dataset once for the process
func newDataset(cfg config.Config) *sample.Dataset {
	return sample.NewDataset(sample.Options{
		MarketPoints:   cfg.Market.Points,
		MarketInterval: cfg.Market.Interval,
		PriceBase:      cfg.Market.PriceBase,
		PriceSpread:    cfg.Market.PriceSpread,
		VolumeBase:     cfg.Market.VolumeBase,
		VolumeSpread:   cfg.Market.VolumeSpread,
		Seed:           cfg.Market.Seed,
	})
}
