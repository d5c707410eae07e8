// Package config loads crawler settings from defaults, an optional config
// file and SEOCRAWLER_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"seocrawler/internal/export"
)

const envPrefix = "SEOCRAWLER"

// Config holds crawler run settings.
type Config struct {
	Input     string        `mapstructure:"input"`      // URL list file
	OutDir    string        `mapstructure:"out_dir"`    // base directory for reports/
	Format    string        `mapstructure:"format"`     // xlsx or csv
	Timeout   time.Duration `mapstructure:"timeout"`    // per-request timeout
	UserAgent string        `mapstructure:"user_agent"` // empty means the fetcher default
	Workers   int           `mapstructure:"workers"`    // 1 is fully sequential
	Preview   bool          `mapstructure:"preview"`    // print the report table to stdout
	LogLevel  string        `mapstructure:"log_level"`

	// StripQuotes is nil when unset; see ShouldStripQuotes.
	StripQuotes *bool `mapstructure:"strip_quotes"`
}

// Load reads configuration. An empty path skips the config file; a path that
// cannot be read is an error.
func Load(path string) (Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("strip_quotes"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "urls.txt")
	v.SetDefault("out_dir", ".")
	v.SetDefault("format", "xlsx")
	v.SetDefault("timeout", "15s")
	v.SetDefault("user_agent", "")
	v.SetDefault("workers", 1)
	v.SetDefault("preview", false)
	v.SetDefault("log_level", "info")
}

// ShouldStripQuotes reports whether double quotes are removed from text cells.
// Unless set explicitly, quotes are stripped for CSV output only.
func (c Config) ShouldStripQuotes() bool {
	if c.StripQuotes != nil {
		return *c.StripQuotes
	}

	return strings.EqualFold(c.Format, "csv")
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return ErrEmptyInput
	}

	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if _, err := export.ParseFormat(c.Format); err != nil {
		return err
	}

	return nil
}
