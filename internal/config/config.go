// Package config loads mojifix settings from defaults, an optional config
// file, MOJIFIX_* environment variables and command-line flags, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/mojifix/internal/adapter"
	"github.com/mouse-blink/mojifix/internal/domain/repair"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "MOJIFIX"

// FileName is the config file looked up in the working directory, without
// extension.
const FileName = ".mojifix"

// ReportConfig controls the report artifact.
type ReportConfig struct {
	Path       string `mapstructure:"path"`
	MaxRecords int    `mapstructure:"max_records"`
	SampleSize int    `mapstructure:"sample_size"`
}

// WatchConfig controls continuous mode.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config is the full set of settings.
type Config struct {
	Roots            []string      `mapstructure:"roots"`
	Extensions       []string      `mapstructure:"extensions"`
	ExcludeDirs      []string      `mapstructure:"exclude_dirs"`
	Exclude          []string      `mapstructure:"exclude"`
	RespectGitignore bool          `mapstructure:"respect_gitignore"`
	Workers          int           `mapstructure:"workers"`
	Backup           bool          `mapstructure:"backup"`
	Report           ReportConfig  `mapstructure:"report"`
	Watch            WatchConfig   `mapstructure:"watch"`
	Scoring          repair.Policy `mapstructure:"scoring"`
	Log              LogConfig     `mapstructure:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Roots:            []string{"."},
		Extensions:       append([]string(nil), adapter.DefaultExtensions...),
		ExcludeDirs:      append([]string(nil), adapter.DefaultExcludeDirs...),
		RespectGitignore: true,
		Workers:          runtime.NumCPU(),
		Backup:           true,
		Report: ReportConfig{
			Path:       ".mojifix/report.json",
			MaxRecords: 1000,
			SampleSize: 20,
		},
		Watch:   WatchConfig{Debounce: 200 * time.Millisecond},
		Scoring: repair.DefaultPolicy(),
		Log:     LogConfig{Level: "info"},
	}
}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// File is an explicit config file; it must exist when set.
	File string
	// Dir is searched for FileName.{yaml,yml,json,toml} when File is empty.
	Dir string
	// Flags maps config keys to command-line flags. Only flags the user set
	// override lower layers; nil entries are skipped.
	Flags map[string]*pflag.Flag
}

// Load resolves the configuration.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.File, err)
		}
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}

		v.SetConfigName(FileName)
		v.AddConfigPath(dir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("roots", d.Roots)
	v.SetDefault("extensions", d.Extensions)
	v.SetDefault("exclude_dirs", d.ExcludeDirs)
	v.SetDefault("exclude", []string{})
	v.SetDefault("respect_gitignore", d.RespectGitignore)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("backup", d.Backup)
	v.SetDefault("report.path", d.Report.Path)
	v.SetDefault("report.max_records", d.Report.MaxRecords)
	v.SetDefault("report.sample_size", d.Report.SampleSize)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("scoring.arabic_weight", d.Scoring.ArabicWeight)
	v.SetDefault("scoring.hard_marker_weight", d.Scoring.HardMarkerWeight)
	v.SetDefault("scoring.replacement_weight", d.Scoring.ReplacementWeight)
	v.SetDefault("scoring.latin_marker_weight", d.Scoring.LatinMarkerWeight)
	v.SetDefault("scoring.latin_letter_weight", d.Scoring.LatinLetterWeight)
	v.SetDefault("scoring.margin", d.Scoring.Margin)
	v.SetDefault("scoring.density_threshold", d.Scoring.DensityThreshold)
	v.SetDefault("scoring.min_runes", d.Scoring.MinRunes)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Error reports an invalid setting.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return &Error{Field: "workers", Message: "must not be negative"}
	}

	if c.Report.MaxRecords < 0 {
		return &Error{Field: "report.max_records", Message: "must not be negative"}
	}

	if c.Watch.Debounce < 0 {
		return &Error{Field: "watch.debounce", Message: "must not be negative"}
	}

	if c.Scoring.Margin < 0 {
		return &Error{Field: "scoring.margin", Message: "must not be negative"}
	}

	if c.Scoring.DensityThreshold < 0 || c.Scoring.DensityThreshold > 1 {
		return &Error{Field: "scoring.density_threshold", Message: "must be between 0 and 1"}
	}

	return nil
}
