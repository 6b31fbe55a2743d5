// Package config loads service configuration with layered precedence:
// struct defaults, then an optional YAML file, then environment variables.
package config

import (
	"fmt"
	"time"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig    `koanf:"server"`
	Graph   GraphConfig   `koanf:"graph"`
	Logging LoggingConfig `koanf:"log"`
	Engine  EngineConfig  `koanf:"engine"`
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	MetricsEnabled    bool          `koanf:"metrics_enabled"`
	AllowedOriginsCSV string        `koanf:"allowed_origins"`
}

// GraphConfig describes connectivity to the graph database.
type GraphConfig struct {
	URI            string `koanf:"uri"`
	Database       string `koanf:"database"`
	Username       string `koanf:"username"`
	Password       string `koanf:"password"`
	MaxConnections int    `koanf:"max_connections"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `koanf:"level"`
	Format        string `koanf:"format"` // text|json
	IncludeCaller bool   `koanf:"include_caller"`
}

// EngineConfig bounds the path engine. MaxDepth applies to single-path
// searches; EnumMaxDepth and MaxPaths bound alternative-path enumeration,
// which is exponential and deliberately kept shallower.
type EngineConfig struct {
	MaxDepth     int `koanf:"max_depth"`
	EnumMaxDepth int `koanf:"enum_max_depth"`
	MaxPaths     int `koanf:"max_paths"`
}

func defaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MetricsEnabled:  false,
		},
		Graph: GraphConfig{
			MaxConnections: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Engine: EngineConfig{
			MaxDepth:     10,
			EnumMaxDepth: 5,
			MaxPaths:     3,
		},
	}
}

// Validate rejects configurations the service cannot run with.
func (c Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.HTTP.Port)
	}
	if c.Engine.MaxDepth <= 0 {
		return fmt.Errorf("engine max_depth must be positive, got %d", c.Engine.MaxDepth)
	}
	if c.Engine.EnumMaxDepth <= 0 {
		return fmt.Errorf("engine enum_max_depth must be positive, got %d", c.Engine.EnumMaxDepth)
	}
	if c.Engine.MaxPaths <= 0 {
		return fmt.Errorf("engine max_paths must be positive, got %d", c.Engine.MaxPaths)
	}
	return nil
}
