package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawpanic/defiboard/internal/dashboard"
)

func noEnv(string) (string, bool) { return "", false }

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defiboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, dashboard.RankingAsGiven, cfg.Ranking())
	assert.Equal(t, 24*time.Hour, cfg.Market.Interval)
	assert.Equal(t, 1800.0, cfg.Market.PriceBase)
	assert.Equal(t, 400.0, cfg.Market.PriceSpread)
}

func TestSampleFileMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", DefaultPath), true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
http:
  port: 9090
  read_timeout: 3s
dashboard:
  title: Treasury
  yield_ranking: risk_adjusted
market:
  seed: 99
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host, "unset fields keep defaults")
	assert.Equal(t, "Treasury", cfg.Dashboard.Title)
	assert.Equal(t, int64(99), cfg.Market.Seed)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, dashboard.RankingRiskAdjusted, cfg.Ranking())
}

func TestLoad_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, "http: [not, a, map")
	_, err := Load(path, true)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvHTTPPort: "7070", EnvLogLevel: "debug"}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 7070, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)

	env[EnvHTTPPort] = "eighty"
	assert.Error(t, cfg.ApplyEnv(lookup))
}

func TestResolve_Precedence(t *testing.T) {
	path := writeConfig(t, "http:\n  port: 9000\nlog:\n  level: warn\n")
	lookup := func(k string) (string, bool) {
		if k == EnvHTTPPort {
			return "9100", true
		}
		return "", false
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--port", "9200", "--yield-ranking", "risk_adjusted"}))

	cfg, err := Resolve(path, true, lookup, fs)
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.HTTP.Port, "flag beats env and file")
	assert.Equal(t, "warn", cfg.Log.Level, "file beats default")
	assert.Equal(t, dashboard.RankingRiskAdjusted, cfg.Ranking())
}

func TestResolve_UnsetFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, "http:\n  port: 9000\n")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := Resolve(path, true, noEnv, fs)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTP.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port_zero", func(c *Config) { c.HTTP.Port = 0 }},
		{"port_too_high", func(c *Config) { c.HTTP.Port = 70000 }},
		{"read_timeout", func(c *Config) { c.HTTP.ReadTimeout = 0 }},
		{"request_timeout", func(c *Config) { c.HTTP.RequestTimeout = -time.Second }},
		{"log_level", func(c *Config) { c.Log.Level = "loud" }},
		{"ranking", func(c *Config) { c.Dashboard.YieldRanking = "by_tvl" }},
		{"market_points", func(c *Config) { c.Market.Points = 0 }},
		{"market_interval", func(c *Config) { c.Market.Interval = 0 }},
		{"market_price", func(c *Config) { c.Market.PriceBase = 0 }},
		{"market_volume", func(c *Config) { c.Market.VolumeSpread = -1 }},
		{"rate_rps", func(c *Config) { c.RateLimit.RPS = 0 }},
		{"rate_burst", func(c *Config) { c.RateLimit.Burst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.RateLimit = RateLimitConfig{Enabled: false}
	assert.NoError(t, cfg.Validate(), "disabled limiter skips rate checks")
}
