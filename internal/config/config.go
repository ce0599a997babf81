package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr             string `mapstructure:"PSYCAB_ADDR"`
	SQLitePath       string `mapstructure:"PSYCAB_SQLITE_PATH"`
	StaticDir        string `mapstructure:"PSYCAB_STATIC_DIR"`
	AIBaseURL        string `mapstructure:"PSYCAB_AI_BASE_URL"`
	AITimeoutSeconds int    `mapstructure:"PSYCAB_AI_TIMEOUT_SECONDS"`
	Pretty           bool   `mapstructure:"PSYCAB_PRETTY_LOG"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PSYCAB_ADDR", ":8080")
	v.SetDefault("PSYCAB_SQLITE_PATH", "data/psycab.db")
	v.SetDefault("PSYCAB_AI_BASE_URL", "")
	v.SetDefault("PSYCAB_AI_TIMEOUT_SECONDS", 60)

	v.BindEnv("PSYCAB_ADDR")
	v.BindEnv("PSYCAB_SQLITE_PATH")
	v.BindEnv("PSYCAB_STATIC_DIR")
	v.BindEnv("PSYCAB_AI_BASE_URL")
	v.BindEnv("PSYCAB_AI_TIMEOUT_SECONDS")
	v.BindEnv("PSYCAB_PRETTY_LOG")

	// a .env file is optional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.AITimeoutSeconds <= 0 {
		return nil, fmt.Errorf("PSYCAB_AI_TIMEOUT_SECONDS must be positive")
	}
	return cfg, nil
}

func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutSeconds) * time.Second
}
