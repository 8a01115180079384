// SPDX-License-Identifier: MIT

// Package config loads runtime settings from defaults, an optional file and
// WORDLADDER_* environment variables, in increasing priority. Command-line
// flags bound with BindPFlag override all three.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/wordladder/daily"
)

// EnvPrefix prefixes every environment override, e.g. WORDLADDER_STORE_KIND.
const EnvPrefix = "WORDLADDER"

// Store kinds.
const (
	StoreFile   = "file"
	StoreBadger = "badger"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full runtime configuration.
type Config struct {
	Addr       string          `mapstructure:"addr"`
	WordBank   string          `mapstructure:"word_bank"`
	ValidWords string          `mapstructure:"valid_words"`
	Store      StoreConfig     `mapstructure:"store"`
	Selection  SelectionConfig `mapstructure:"selection"`
	Log        LogConfig       `mapstructure:"log"`
	CORS       CORSConfig      `mapstructure:"cors"`
}

// StoreConfig picks the daily record backend.
type StoreConfig struct {
	Kind string `mapstructure:"kind"`
	Path string `mapstructure:"path"`
}

// SelectionConfig tunes daily pair selection. Seed 0 means time-seeded.
type SelectionConfig struct {
	MinSteps      int   `mapstructure:"min_steps"`
	MaxSteps      int   `mapstructure:"max_steps"`
	Attempts      int   `mapstructure:"attempts"`
	FallbackLimit int   `mapstructure:"fallback_limit"`
	Seed          int64 `mapstructure:"seed"`
}

// LogConfig selects level and handler format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig lists allowed browser origins.
type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

// SetDefaults registers every key, which also makes each one visible to
// AutomaticEnv during Unmarshal.
func SetDefaults(v *viper.Viper) {
	r := daily.DefaultRange()
	v.SetDefault("addr", ":5000")
	v.SetDefault("word_bank", "word-bank.csv")
	v.SetDefault("valid_words", "")
	v.SetDefault("store.kind", StoreFile)
	v.SetDefault("store.path", "daily_pair.json")
	v.SetDefault("selection.min_steps", r.MinSteps)
	v.SetDefault("selection.max_steps", r.MaxSteps)
	v.SetDefault("selection.attempts", daily.DefaultAttempts)
	v.SetDefault("selection.fallback_limit", daily.DefaultFallbackLimit)
	v.SetDefault("selection.seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cors.origins", []string{"*"})
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file (yaml, json or toml by extension) when non-empty, then
// decodes and validates the merged settings.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Store.Kind {
	case StoreFile, StoreBadger:
	default:
		return fmt.Errorf("%w: store.kind %q (want %s or %s)", ErrInvalid, c.Store.Kind, StoreFile, StoreBadger)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("%w: store.path is empty", ErrInvalid)
	}
	if c.WordBank == "" {
		return fmt.Errorf("%w: word_bank is empty", ErrInvalid)
	}
	if err := c.Range().Validate(); err != nil {
		return fmt.Errorf("%w: selection: %w", ErrInvalid, err)
	}
	if c.Selection.Attempts < 0 || c.Selection.FallbackLimit < 0 {
		return fmt.Errorf("%w: selection attempts and fallback_limit must not be negative", ErrInvalid)
	}
	return nil
}

// Range returns the selection step range.
func (c *Config) Range() daily.Range {
	return daily.Range{MinSteps: c.Selection.MinSteps, MaxSteps: c.Selection.MaxSteps}
}

// SelectorOptions translates the selection settings into daily options.
func (c *Config) SelectorOptions() []daily.Option {
	opts := []daily.Option{
		daily.WithAttempts(c.Selection.Attempts),
		daily.WithFallbackLimit(c.Selection.FallbackLimit),
	}
	if c.Selection.Seed != 0 {
		opts = append(opts, daily.WithSeed(c.Selection.Seed))
	}
	return opts
}
