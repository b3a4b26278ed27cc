package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName     string `mapstructure:"app_name"`
	Env         string `mapstructure:"app_env"`
	LogLevel    string `mapstructure:"log_level"`
	CKANURL     string `mapstructure:"ckan_url"`
	ActionsFile string `mapstructure:"actions_file"`
	OutputFmt   string `mapstructure:"output_format"`

	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	PollIntervalSeconds   int64         `mapstructure:"poll_interval_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`
	PollInterval          time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("app_name", "ckan-client")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("ckan_url", "")
	v.SetDefault("actions_file", "")
	v.SetDefault("output_format", OutputJSON)
	v.SetDefault("request_timeout_seconds", 30)
	v.SetDefault("poll_interval_seconds", 0) // run once

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.CKANURL = strings.TrimSpace(cfg.CKANURL)
	if cfg.CKANURL == "" {
		return nil, fmt.Errorf("ckan_url is required")
	}

	cfg.OutputFmt = strings.ToLower(strings.TrimSpace(cfg.OutputFmt))
	switch cfg.OutputFmt {
	case OutputJSON, OutputYAML:
	default:
		return nil, fmt.Errorf("invalid output_format %q (expected json or yaml)", cfg.OutputFmt)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	if cfg.PollIntervalSeconds < 0 {
		return nil, fmt.Errorf("invalid poll_interval_seconds (must be zero or positive seconds)")
	}
	cfg.PollInterval = time.Duration(cfg.PollIntervalSeconds) * time.Second

	return &cfg, nil
}
