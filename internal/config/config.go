// Package config loads the pathfinder service configuration.
//
// Sources, from lowest to highest priority:
//  1. Defaults (Default).
//  2. An optional YAML file passed to Load.
//  3. Environment variables (PORT, HOST, GRAPH_FILE, ...).
//
// The result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Environment selects logger flavour and a few defaults.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full service configuration.
type Config struct {
	Environment Environment `yaml:"environment"`
	LogLevel    string      `yaml:"log_level"`

	Server   Server   `yaml:"server"`
	Graph    Graph    `yaml:"graph"`
	Features Features `yaml:"features"`
}

// Server holds HTTP listener settings.
type Server struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	StaticDir       string        `yaml:"static_dir"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	QueryTimeout    time.Duration `yaml:"query_timeout"`
}

// Graph locates the served graph. An empty File serves the built-in sample.
type Graph struct {
	File          string        `yaml:"file"`
	Watch         bool          `yaml:"watch"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// Features toggles optional endpoints.
type Features struct {
	EnableMetrics bool `yaml:"enable_metrics"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Environment: Production,
		LogLevel:    "info",
		Server: Server{
			Host:            "0.0.0.0",
			Port:            8000,
			StaticDir:       "static",
			AllowedOrigins:  []string{"*"},
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			QueryTimeout:    5 * time.Second,
		},
		Graph: Graph{
			WatchDebounce: 500 * time.Millisecond,
		},
		Features: Features{
			EnableMetrics: true,
		},
	}
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// IsDevelopment reports whether the development logger should be used.
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// Level parses LogLevel into a zap level.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	var errs []string

	switch c.Environment {
	case Development, Production:
	default:
		errs = append(errs, fmt.Sprintf("environment %q must be %q or %q", c.Environment, Development, Production))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Sprintf("log_level: %v", err))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, "server.allowed_origins must not be empty")
	}
	if c.Server.QueryTimeout <= 0 {
		errs = append(errs, "server.query_timeout must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "server.shutdown_timeout must be positive")
	}
	if c.Graph.Watch && c.Graph.File == "" {
		errs = append(errs, "graph.watch requires graph.file")
	}
	if c.Graph.Watch && c.Graph.WatchDebounce <= 0 {
		errs = append(errs, "graph.watch_debounce must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}
