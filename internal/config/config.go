package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when no -config flag is given.
const DefaultFile = "pokedex.yaml"

// Config holds the application settings resolved from file, environment
// and command line.
type Config struct {
	DatabasePath string `yaml:"database"`
	LogLevel     string `yaml:"logLevel"`
	LogJSON      bool   `yaml:"logJSON"`
	WindowWidth  int    `yaml:"windowWidth"`
	WindowHeight int    `yaml:"windowHeight"`
}

// Default returns the built-in settings used when no file or override
// provides a value.
func Default() *Config {
	return &Config{
		DatabasePath: "pokemon.db",
		LogLevel:     "info",
		LogJSON:      false,
		WindowWidth:  600,
		WindowHeight: 500,
	}
}

// Load reads configuration from the specified YAML file on top of the
// defaults. A missing file is not an error; the defaults are returned.
func Load(configPath string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}

	return config, nil
}

// ApplyEnv overlays process environment overrides onto the config.
func (c *Config) ApplyEnv() {
	if db := os.Getenv("POKEDEX_DB"); db != "" {
		c.DatabasePath = db
	}
	if level := os.Getenv("POKEDEX_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

func (c *Config) validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is empty")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
