package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfigPaths are searched in order; the first existing file wins.
var defaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/course-paths/config.yaml",
}

// envKeys maps recognised environment variables to config paths. Unlisted
// variables are ignored rather than guessed at.
var envKeys = map[string]string{
	"SERVER_HOST":             "server.host",
	"SERVER_PORT":             "server.port",
	"SERVER_READ_TIMEOUT":     "server.read_timeout",
	"SERVER_WRITE_TIMEOUT":    "server.write_timeout",
	"SERVER_IDLE_TIMEOUT":     "server.idle_timeout",
	"SERVER_SHUTDOWN_TIMEOUT": "server.shutdown_timeout",
	"SERVER_METRICS_ENABLED":  "server.metrics_enabled",
	"SERVER_ALLOWED_ORIGINS":  "server.allowed_origins",
	"GRAPH_URI":               "graph.uri",
	"GRAPH_DATABASE":          "graph.database",
	"GRAPH_USERNAME":          "graph.username",
	"GRAPH_PASSWORD":          "graph.password",
	"GRAPH_MAX_CONNECTIONS":   "graph.max_connections",
	"LOG_LEVEL":               "log.level",
	"LOG_FORMAT":              "log.format",
	"LOG_INCLUDE_CALLER":      "log.include_caller",
	"ENGINE_MAX_DEPTH":        "engine.max_depth",
	"ENGINE_ENUM_MAX_DEPTH":   "engine.enum_max_depth",
	"ENGINE_MAX_PATHS":        "engine.max_paths",
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables, in increasing order of precedence.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", mapEnvKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mapEnvKey(key string) string {
	return envKeys[key] // "" drops the variable
}

func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	for _, path := range defaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
