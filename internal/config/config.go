package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/akerkez/coinkeeper/internal/common"
)

// Config is the resolved application configuration. Values come from the
// config file, COINKEEPER_ environment variables, and flag bindings, in
// viper's usual precedence order.
type Config struct {
	StoragePath    string
	LogLevel       string
	LogFormat      string
	CurrencySymbol string
	MonthlyLimit   float64
}

// Load resolves the configuration from viper's current state.
func Load() Config {
	cfg := Config{
		StoragePath:    DefaultStoragePath(),
		LogLevel:       "info",
		LogFormat:      "console",
		CurrencySymbol: "₸",
	}

	if v := viper.GetString("storage.path"); v != "" {
		cfg.StoragePath = ExpandPath(v)
	}
	if v := viper.GetString("logging.level"); v != "" {
		cfg.LogLevel = v
	}
	if v := viper.GetString("logging.format"); v != "" {
		cfg.LogFormat = v
	}
	if v := viper.GetString("currency.symbol"); v != "" {
		cfg.CurrencySymbol = v
	}
	if v := viper.GetFloat64("budget.monthly_limit"); v > 0 {
		cfg.MonthlyLimit = v
	}

	return cfg
}

// Validate checks that the resolved configuration is usable.
func (c Config) Validate() error {
	if c.StoragePath == "" {
		return fmt.Errorf("%w: storage path", common.ErrMissingConfig)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", common.ErrInvalidConfig, c.LogLevel)
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", common.ErrInvalidConfig, c.LogFormat)
	}

	return nil
}
