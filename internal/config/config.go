package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "KURLAR"

var ErrConfigNotValid = errors.New("config is not valid")

type Config struct {
	BaseURL        string        `mapstructure:"base_url"`
	UserAgent      string        `mapstructure:"user_agent"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	RetryNum       uint64        `mapstructure:"retry_num"`
	RetryDuration  time.Duration `mapstructure:"retry_duration"`
	LogLevel       string        `mapstructure:"log_level"`
	RateClass      string        `mapstructure:"rate_class"`
}

var defaults = map[string]interface{}{
	"base_url":        "https://www.tcmb.gov.tr/kurlar/",
	"user_agent":      "",
	"request_timeout": 10 * time.Second,
	"retry_num":       0,
	"retry_duration":  time.Second,
	"log_level":       "warn",
	"rate_class":      "forex",
}

// Load reads an optional .env file, then the yaml file at path when it is set, then
// KURLAR_* environment variables. Later sources win
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	for key := range defaults {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("%w: base_url is empty", ErrConfigNotValid)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request_timeout %s", ErrConfigNotValid, c.RequestTimeout)
	}

	if c.RetryDuration < 0 {
		return fmt.Errorf("%w: negative retry_duration %s", ErrConfigNotValid, c.RetryDuration)
	}

	return nil
}
