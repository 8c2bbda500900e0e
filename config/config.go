// Package config loads the bot's TOML configuration and the documented
// environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	envConfigPath = "BOT_CONFIG"
	defaultPath   = "config.toml"

	defaultRequestTimeout = 10
	defaultUpdateInterval = 300
)

// Config mirrors the TOML document: one bot block and one table per source.
type Config struct {
	Bot BotConfig            `mapstructure:"bot"`
	Src map[string]SrcConfig `mapstructure:"src"`
}

type BotConfig struct {
	RequestTimeout int           `mapstructure:"reqwest_timeout"`
	UpdateInterval int           `mapstructure:"update_interval"`
	Polling        bool          `mapstructure:"polling"`
	Webhook        WebhookConfig `mapstructure:"webhook"`
}

type WebhookConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Cert string `mapstructure:"cert"`
}

// SrcConfig is one provider's table. Req carries provider-specific request
// fields for the form and SOAP adapters; the commission knobs apply to the
// transfer providers that hide fees outside the published rate.
type SrcConfig struct {
	RatesURL       string  `mapstructure:"rates_url"`
	Enabled        bool    `mapstructure:"enabled"`
	CommissionRate float64 `mapstructure:"commission_rate"`

	CommissionToRuCard    float64 `mapstructure:"commission_rate_to_ru_card"`
	CommissionFromAnyCard float64 `mapstructure:"commission_rate_from_any_card"`
	CommissionFromBank    float64 `mapstructure:"commission_rate_from_bank"`

	Req map[string]interface{} `mapstructure:"req"`
}

// envOverrides maps config keys to the environment variables that may
// override them.
var envOverrides = map[string]string{
	"bot.polling":         "POLLING",
	"bot.reqwest_timeout": "REQWEST_TIMEOUT",
	"bot.update_interval": "UPDATE_INTERVAL",
	"bot.webhook.host":    "HOST",
	"bot.webhook.port":    "PORT",
	"bot.webhook.cert":    "CERT",
}

// Load reads the TOML file at path. An empty path falls back to BOT_CONFIG,
// then to config.toml in the working directory.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(envConfigPath)
	}
	if path == "" {
		path = defaultPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault("bot.reqwest_timeout", defaultRequestTimeout)
	v.SetDefault("bot.update_interval", defaultUpdateInterval)
	for key, env := range envOverrides {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Bot.RequestTimeout <= 0 {
		return nil, fmt.Errorf("bot.reqwest_timeout must be positive")
	}
	if cfg.Bot.UpdateInterval <= 0 {
		return nil, fmt.Errorf("bot.update_interval must be positive")
	}
	return &cfg, nil
}

// Source returns the table for one provider key, lowercase.
func (c *Config) Source(key string) (SrcConfig, bool) {
	sc, ok := c.Src[key]
	return sc, ok
}

// EnabledCount reports how many sources take part in a refresh; the refresh
// channel is sized with it.
func (c *Config) EnabledCount() int {
	n := 0
	for _, sc := range c.Src {
		if sc.Enabled {
			n++
		}
	}
	return n
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Bot.RequestTimeout) * time.Second
}

func (c *Config) UpdateInterval() time.Duration {
	return time.Duration(c.Bot.UpdateInterval) * time.Second
}

// ReqString reads one field from a source's req table as a string. TOML
// integers and booleans are cast, missing keys come back empty.
func (sc SrcConfig) ReqString(key string) string {
	return cast.ToString(sc.Req[key])
}

// ReqFields flattens the whole req table to strings, for form-encoded POSTs.
func (sc SrcConfig) ReqFields() map[string]string {
	if len(sc.Req) == 0 {
		return nil
	}
	return cast.ToStringMapString(sc.Req)
}
