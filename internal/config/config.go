// Package config holds server configuration with YAML file loading and
// environment overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default identity reported during the MCP handshake and by get_server_info.
const (
	DefaultServerName    = "author-style-mcp"
	DefaultServerVersion = "0.1.0"
)

// Config holds all server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Tools   ToolsConfig   `yaml:"tools"`
}

// ServerConfig identifies the server to MCP clients.
type ServerConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// ToolsConfig narrows the exposed tool surface.
type ToolsConfig struct {
	// Disabled lists tool names to withhold from clients. Unknown names
	// are ignored.
	Disabled []string `yaml:"disabled"`
}

// LoggingConfig configures the zap logger. All output goes to stderr; stdout
// belongs to the protocol.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Development switches to the human-readable console encoder.
	Development bool `yaml:"development"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:    DefaultServerName,
			Version: DefaultServerVersion,
			Description: "Curated catalog of 11 author writing styles decomposed into " +
				"8 orthogonal dimensions with dual text/image output paths. " +
				"Each style colors prompts with structural writing patterns, " +
				"not copied text.",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		// Env overrides still apply on top of the defaults.
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets deployment environments adjust identity and log
// level without editing the config file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("AUTHOR_STYLE_SERVER_NAME"); v != "" {
		c.Server.Name = v
	}
	if v := os.Getenv("AUTHOR_STYLE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return fmt.Errorf("server.name cannot be empty")
	}
	if c.Server.Version == "" {
		return fmt.Errorf("server.version cannot be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	return nil
}
