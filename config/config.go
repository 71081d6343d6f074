package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Wallet WalletConfig `mapstructure:"wallet"`
	Timers TimersConfig `mapstructure:"timers"`
	Log    LogConfig    `mapstructure:"log"`
}

// WalletConfig seeds the in-memory wallet and history at boot.
type WalletConfig struct {
	OpeningBalance string `mapstructure:"opening_balance"`
	Currency       string `mapstructure:"currency"`
	SeedHistory    bool   `mapstructure:"seed_history"`
}

// TimersConfig holds the cosmetic delays. None of them carry business
// meaning; they only pace the UI.
type TimersConfig struct {
	Splash          time.Duration `mapstructure:"splash"`
	BiometricVerify time.Duration `mapstructure:"biometric_verify"`
	BiometricSettle time.Duration `mapstructure:"biometric_settle"`
	Scan            time.Duration `mapstructure:"scan"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PP_ (PocketPay).
// Nested keys use underscore: PP_TIMERS_SPLASH, PP_LOG_LEVEL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("wallet.opening_balance", "125000")
	v.SetDefault("wallet.currency", "IDR")
	v.SetDefault("wallet.seed_history", true)
	v.SetDefault("timers.splash", "5s")
	v.SetDefault("timers.biometric_verify", "600ms")
	v.SetDefault("timers.biometric_settle", "300ms")
	v.SetDefault("timers.scan", "1500ms")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PP_TIMERS_SCAN -> timers.scan
	v.SetEnvPrefix("PP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars can carry everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
