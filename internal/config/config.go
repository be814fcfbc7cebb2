package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the pipeline. Every field has a
// working default; a config file is optional tuning only.
type Config struct {
	API     APIConfig     `mapstructure:"api" yaml:"api"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

type APIConfig struct {
	BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
	RequestTimeout int    `mapstructure:"request_timeout" yaml:"request_timeout"` // seconds
	Retries        int    `mapstructure:"retries" yaml:"retries"`
	CooldownMillis int    `mapstructure:"cooldown_ms" yaml:"cooldown_ms"`
	Radius         int    `mapstructure:"radius" yaml:"radius"` // miles around each query point
	RegionLimit    int    `mapstructure:"region_limit" yaml:"region_limit"`
	UtilityLimit   int    `mapstructure:"utility_limit" yaml:"utility_limit"`
	CompanyLimit   int    `mapstructure:"company_limit" yaml:"company_limit"`
	CacheSize      int    `mapstructure:"cache_size" yaml:"cache_size"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Timeout returns the per-request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.RequestTimeout) * time.Second
}

// Cooldown returns the post-query pacing delay as a duration.
func (a APIConfig) Cooldown() time.Duration {
	return time.Duration(a.CooldownMillis) * time.Millisecond
}

// Load reads configuration from an optional YAML file, expanding
// environment variable references. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables
	expandedData := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal defaults: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://api.openei.org/utility_rates")
	v.SetDefault("api.request_timeout", 30)
	v.SetDefault("api.retries", 3)
	v.SetDefault("api.cooldown_ms", 300)
	v.SetDefault("api.radius", 100)
	v.SetDefault("api.region_limit", 500)
	v.SetDefault("api.utility_limit", 10)
	v.SetDefault("api.company_limit", 30)
	v.SetDefault("api.cache_size", 256)

	v.SetDefault("output.dir", "data/utilities")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
