package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpserver "github.com/sawpanic/defiboard/internal/interfaces/http"
	"github.com/sawpanic/defiboard/internal/interfaces/http/handlers"
	"github.com/sawpanic/defiboard/internal/render/web"
)

// runServe starts the dashboard HTTP server and blocks until SIGINT/SIGTERM
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to initialize page renderer: %w", err)
	}

	server := httpserver.NewServer(httpserver.ServerConfig{
		Host:             cfg.HTTP.Host,
		Port:             cfg.HTTP.Port,
		ReadTimeout:      cfg.HTTP.ReadTimeout,
		WriteTimeout:     cfg.HTTP.WriteTimeout,
		IdleTimeout:      cfg.HTTP.IdleTimeout,
		RequestTimeout:   cfg.HTTP.RequestTimeout,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimitRPS:     cfg.RateLimit.RPS,
		RateLimitBurst:   cfg.RateLimit.Burst,
	}, httpserver.Dependencies{
		Source:   newDataset(cfg),
		Renderer: renderer,
		Version:  version,
		Options: handlers.Options{
			Title:   cfg.Dashboard.Title,
			Ranking: cfg.Ranking(),
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("addr", server.Addr()).
		Str("yield_ranking", string(cfg.Ranking())).
		Bool("rate_limit", cfg.RateLimit.Enabled).
		Msg("Starting DeFiBoard")

	return server.Run(ctx)
}
