package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultBarWeight            = 45
	defaultInventoryCacheSizeMB = 8
	defaultCalcRateLimitPerMin  = 120
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	// plates
	DefaultBarWeight            float64 `toml:"default_bar_weight"`
	InventoryCacheSizeMB        int     `toml:"inventory_cache_size_mb"`
	CalculateRateLimitPerMinute int     `toml:"calculate_rate_limit_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

func Load(env, configPath string) (*Config, error) {
	var tomlCfg Toml
	if _, err := toml.DecodeFile(configPath, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", configPath, err)
	}
	return fromToml(&tomlCfg, env)
}

func Parse(env, content string) (*Config, error) {
	var tomlCfg Toml
	if _, err := toml.Decode(content, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&tomlCfg, env)
}

func fromToml(tomlCfg *Toml, env string) (*Config, error) {
	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.DefaultBarWeight == 0 {
		c.DefaultBarWeight = defaultBarWeight
	}
	if c.InventoryCacheSizeMB == 0 {
		c.InventoryCacheSizeMB = defaultInventoryCacheSizeMB
	}
	if c.CalculateRateLimitPerMinute == 0 {
		c.CalculateRateLimitPerMinute = defaultCalcRateLimitPerMin
	}
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.DefaultBarWeight < 0 {
		return errors.New("default bar weight must be positive")
	}
	if c.InventoryCacheSizeMB < 0 || c.CalculateRateLimitPerMinute < 0 {
		return errors.New("cache size and rate limit must not be negative")
	}
	return nil
}
