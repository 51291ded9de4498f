package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	GolfGenius GolfGeniusConfig `mapstructure:"golfgenius"`
	Season     SeasonConfig     `mapstructure:"season"`
	Report     ReportConfig     `mapstructure:"report"`
	Filter     FilterConfig     `mapstructure:"filter"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// GolfGeniusConfig holds GolfGenius API connection details
type GolfGeniusConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"`
	Timeout      time.Duration `mapstructure:"timeout"`
	RequestDelay time.Duration `mapstructure:"request_delay"`
}

// SeasonConfig selects the season and the qualifying threshold
type SeasonConfig struct {
	Year      int `mapstructure:"year"`
	MinRounds int `mapstructure:"min_rounds"`
}

// ReportConfig controls leaderboard output
type ReportConfig struct {
	Format      string `mapstructure:"format"`
	Precision   int    `mapstructure:"precision"`
	ShowSkipped bool   `mapstructure:"show_skipped"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// MetricsConfig contains metrics output settings
type MetricsConfig struct {
	// Textfile is the node-exporter textfile path; empty disables output
	Textfile string `mapstructure:"textfile"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
