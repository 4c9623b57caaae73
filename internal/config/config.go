package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/sawpanic/defiboard/internal/dashboard"
)

// DefaultPath is read when --config is not given. A missing file there is
// not an error.
const DefaultPath = "config/defiboard.yaml"

// Environment overrides.
const (
	EnvHTTPPort = "DEFIBOARD_HTTP_PORT"
	EnvLogLevel = "DEFIBOARD_LOG_LEVEL"
)

// Config is the complete DeFiBoard configuration
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Log       LogConfig       `yaml:"log"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Market    MarketConfig    `yaml:"market"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// HTTPConfig configures the dashboard server
type HTTPConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"` // per-request context deadline
}

// LogConfig configures zerolog output
type LogConfig struct {
	Level string `yaml:"level"` // trace|debug|info|warn|error
	JSON  bool   `yaml:"json"`  // raw JSON lines instead of console output
}

// DashboardConfig configures page composition
type DashboardConfig struct {
	Title        string `yaml:"title"`
	YieldRanking string `yaml:"yield_ranking"` // as_given|risk_adjusted
}

// MarketConfig shapes the synthetic market series
type MarketConfig struct {
	Points       int           `yaml:"points"`
	Interval     time.Duration `yaml:"interval"`
	PriceBase    float64       `yaml:"price_base"`
	PriceSpread  float64       `yaml:"price_spread"`
	VolumeBase   float64       `yaml:"volume_base"`
	VolumeSpread float64       `yaml:"volume_spread"`
	Seed         int64         `yaml:"seed"` // 0 seeds from the clock
}

// RateLimitConfig configures per-client request limiting
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:           "127.0.0.1", // Local-only by default
			Port:           8080,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    60 * time.Second,
			RequestTimeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "info"},
		Dashboard: DashboardConfig{
			Title:        dashboard.DefaultTitle,
			YieldRanking: string(dashboard.RankingAsGiven),
		},
		Market: MarketConfig{
			Points:       30,
			Interval:     24 * time.Hour,
			PriceBase:    1800,
			PriceSpread:  400,
			VolumeBase:   1000000,
			VolumeSpread: 500000,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     20,
			Burst:   40,
		},
	}
}

// Load reads a YAML file over the defaults. When required is false a
// missing file yields the defaults.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from environment variables. lookup is normally
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvHTTPPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid port %q: %w", EnvHTTPPort, v, err)
		}
		c.HTTP.Port = port
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

// Flag names shared by every command.
const (
	FlagHost         = "host"
	FlagPort         = "port"
	FlagLogLevel     = "log-level"
	FlagLogJSON      = "log-json"
	FlagYieldRanking = "yield-ranking"
	FlagMarketSeed   = "market-seed"
	FlagRateLimitRPS = "rate-limit-rps"
)

// BindFlags registers override flags on fs with the defaults as help values
func BindFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String(FlagHost, def.HTTP.Host, "HTTP listen host")
	fs.Int(FlagPort, def.HTTP.Port, "HTTP listen port")
	fs.String(FlagLogLevel, def.Log.Level, "Log level (trace|debug|info|warn|error)")
	fs.Bool(FlagLogJSON, def.Log.JSON, "Emit JSON log lines")
	fs.String(FlagYieldRanking, def.Dashboard.YieldRanking, "Yield table order (as_given|risk_adjusted)")
	fs.Int64(FlagMarketSeed, def.Market.Seed, "Seed for the synthetic market series (0 = clock)")
	fs.Float64(FlagRateLimitRPS, def.RateLimit.RPS, "Per-client requests per second")
}

// ApplyFlags copies flags the user actually set. Unregistered flags are
// skipped so commands may bind a subset.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}

	if changed(FlagHost) {
		if c.HTTP.Host, err = fs.GetString(FlagHost); err != nil {
			return err
		}
	}
	if changed(FlagPort) {
		if c.HTTP.Port, err = fs.GetInt(FlagPort); err != nil {
			return err
		}
	}
	if changed(FlagLogLevel) {
		if c.Log.Level, err = fs.GetString(FlagLogLevel); err != nil {
			return err
		}
	}
	if changed(FlagLogJSON) {
		if c.Log.JSON, err = fs.GetBool(FlagLogJSON); err != nil {
			return err
		}
	}
	if changed(FlagYieldRanking) {
		if c.Dashboard.YieldRanking, err = fs.GetString(FlagYieldRanking); err != nil {
			return err
		}
	}
	if changed(FlagMarketSeed) {
		if c.Market.Seed, err = fs.GetInt64(FlagMarketSeed); err != nil {
			return err
		}
	}
	if changed(FlagRateLimitRPS) {
		if c.RateLimit.RPS, err = fs.GetFloat64(FlagRateLimitRPS); err != nil {
			return err
		}
	}
	return nil
}

// Resolve layers defaults, file, environment and flags, then validates.
func Resolve(path string, required bool, lookup func(string) (string, bool), fs *pflag.FlagSet) (Config, error) {
	cfg, err := Load(path, required)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}
	if fs != nil {
		if err := cfg.ApplyFlags(fs); err != nil {
			return cfg, fmt.Errorf("failed to read flags: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate ensures the configuration is valid and consistent
func (c *Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 || c.HTTP.IdleTimeout <= 0 {
		return fmt.Errorf("http timeouts must be positive")
	}
	if c.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("http request_timeout must be positive, got %s", c.HTTP.RequestTimeout)
	}

	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q is not one of trace|debug|info|warn|error", c.Log.Level)
	}

	if _, err := dashboard.ParseRanking(c.Dashboard.YieldRanking); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	if c.Market.Points <= 0 {
		return fmt.Errorf("market points must be positive, got %d", c.Market.Points)
	}
	if c.Market.Interval <= 0 {
		return fmt.Errorf("market interval must be positive, got %s", c.Market.Interval)
	}
	if c.Market.PriceBase <= 0 {
		return fmt.Errorf("market price_base must be positive, got %f", c.Market.PriceBase)
	}
	if c.Market.PriceSpread < 0 || c.Market.VolumeBase < 0 || c.Market.VolumeSpread < 0 {
		return fmt.Errorf("market price_spread, volume_base and volume_spread must not be negative")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			return fmt.Errorf("rate_limit rps must be positive, got %f", c.RateLimit.RPS)
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("rate_limit burst must be at least 1, got %d", c.RateLimit.Burst)
		}
	}

	return nil
}

// Ranking returns the parsed yield ranking. Call after Validate.
func (c *Config) Ranking() dashboard.Ranking {
	r, _ := dashboard.ParseRanking(c.Dashboard.YieldRanking)
	return r
}

// Addr is the host:port the server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}
