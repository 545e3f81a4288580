package config

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	RATE_LIMIT_PER_MINUTE=60
//	REQUEST_TIMEOUT=10s
//	GRAPH_LOAD_DELAY=1500ms
//	MAX_GRAPHS=1000
//	TICKER_REFRESH=5s
//	FEATURED_SYMBOL=SPY
//	SEED_FILE=./catalog.yaml
type Config struct {
	Server ServerConfig // HTTP server configuration
	Graph  GraphConfig  // Advanced graph sessions
	Market MarketConfig // Synthetic market data
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string        // TCP port the HTTP server listens on (e.g., "8080")
	RateLimitPerMinute int           // Requests allowed per client IP per minute
	RequestTimeout     time.Duration // Deadline applied to every non-streaming request
}

// GraphConfig tunes graph sessions.
type GraphConfig struct {
	LoadDelay time.Duration // Simulated latency before a graph series resolves
	MaxGraphs int           // Cap on concurrently open graph sessions
}

// MarketConfig describes the synthetic market.
//
// Fields:
//   - TickerRefresh: initial refresh rate of the ticker (real-time, 5s, 15s or manual).
//   - FeaturedSymbol: symbol of the series shown on the dashboard.
//   - SeedFile: YAML catalog path; empty selects the embedded catalog.
type MarketConfig struct {
	TickerRefresh  string
	FeaturedSymbol string
	SeedFile       string
}

// AppConfig is the globally accessible configuration instance, populated by LoadConfig().
var AppConfig Config

var refreshRates = map[string]bool{"real-time": true, "5s": true, "15s": true, "manual": true}

// Load reads the configuration.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("GRAPH_LOAD_DELAY", "1500ms")
	v.SetDefault("MAX_GRAPHS", 1000)
	v.SetDefault("TICKER_REFRESH", "5s")
	v.SetDefault("FEATURED_SYMBOL", "SPY")
	v.SetDefault("SEED_FILE", "")

	// Optional .env for local development.
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	cfg := Config{
		Server: ServerConfig{
			Port:               strings.TrimSpace(v.GetString("SERVER_PORT")),
			RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
			RequestTimeout:     v.GetDuration("REQUEST_TIMEOUT"),
		},
		Graph: GraphConfig{
			LoadDelay: v.GetDuration("GRAPH_LOAD_DELAY"),
			MaxGraphs: v.GetInt("MAX_GRAPHS"),
		},
		Market: MarketConfig{
			TickerRefresh:  strings.ToLower(strings.TrimSpace(v.GetString("TICKER_REFRESH"))),
			FeaturedSymbol: strings.ToUpper(strings.TrimSpace(v.GetString("FEATURED_SYMBOL"))),
			SeedFile:       strings.TrimSpace(v.GetString("SEED_FILE")),
		},
	}
	return cfg, cfg.Validate()
}

// LoadConfig populates AppConfig and terminates the process with a descriptive
// message when the configuration is invalid.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	AppConfig = cfg
}

// Validate reports every invalid or missing setting at once.
func (c Config) Validate() error {
	var problems []error

	if p, err := strconv.Atoi(c.Server.Port); err != nil || p < 0 || p > 65535 {
		problems = append(problems, fmt.Errorf("SERVER_PORT %q is not a valid port", c.Server.Port))
	}
	if c.Server.RateLimitPerMinute <= 0 {
		problems = append(problems, errors.New("RATE_LIMIT_PER_MINUTE must be positive"))
	}
	if c.Server.RequestTimeout <= 0 {
		problems = append(problems, errors.New("REQUEST_TIMEOUT must be positive"))
	}
	if c.Graph.LoadDelay < 0 {
		problems = append(problems, errors.New("GRAPH_LOAD_DELAY must not be negative"))
	}
	if c.Graph.MaxGraphs <= 0 {
		problems = append(problems, errors.New("MAX_GRAPHS must be positive"))
	}
	if !refreshRates[c.Market.TickerRefresh] {
		problems = append(problems, fmt.Errorf("TICKER_REFRESH %q must be one of real-time, 5s, 15s, manual", c.Market.TickerRefresh))
	}
	if c.Market.FeaturedSymbol == "" {
		problems = append(problems, errors.New("FEATURED_SYMBOL is required"))
	}

	return errors.Join(problems...)
}
