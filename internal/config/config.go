package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Traversal strategies understood by the crawl engine.
const (
	StrategyBestFirst  = "best-first"
	StrategyDepthFirst = "depth-first"
)

// Config holds all application configuration
type Config struct {
	// Crawler configuration
	Crawler CrawlerConfig `mapstructure:"crawler"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// CrawlerConfig holds the per-run crawl parameters
type CrawlerConfig struct {
	Seed      string        `mapstructure:"seed"`
	MaxPages  int           `mapstructure:"max_pages"`
	MaxDepth  int           `mapstructure:"max_depth"`
	Keywords  []string      `mapstructure:"keywords"`
	Strategy  string        `mapstructure:"strategy"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	LogDir     string `mapstructure:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/.linkharvest")
	}

	setDefaults()

	viper.SetEnvPrefix("LINKHARVEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Config file not found is not an error, defaults and env apply
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("crawler.max_pages", 20)
	viper.SetDefault("crawler.max_depth", 3)
	viper.SetDefault("crawler.strategy", StrategyBestFirst)
	viper.SetDefault("crawler.user_agent", "linkharvest/1.0")
	viper.SetDefault("crawler.timeout", "15s")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.log_dir", "logs")
	viper.SetDefault("logging.max_size_mb", 10)
	viper.SetDefault("logging.max_backups", 3)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.Crawler.Validate()
}

// Validate rejects invalid crawl parameters before a run is allowed to start.
func (c *CrawlerConfig) Validate() error {
	if strings.TrimSpace(c.Seed) == "" {
		return fmt.Errorf("crawler.seed must not be empty")
	}
	if c.MaxPages < 1 {
		return fmt.Errorf("crawler.max_pages must be at least 1, got %d", c.MaxPages)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("crawler.max_depth must not be negative, got %d", c.MaxDepth)
	}
	switch c.Strategy {
	case StrategyBestFirst, StrategyDepthFirst:
	default:
		return fmt.Errorf("crawler.strategy must be %q or %q, got %q", StrategyBestFirst, StrategyDepthFirst, c.Strategy)
	}
	return nil
}
