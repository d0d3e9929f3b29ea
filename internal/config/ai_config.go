package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// AIConfig describes the external CV-parsing microservice.
type AIConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	MaxRequestsPerSecond float32       `mapstructure:"max_requests_per_second"`
	PollInterval         time.Duration `mapstructure:"poll_interval"`
	PollTimeout          time.Duration `mapstructure:"poll_timeout"`
}

func (config AIConfig) validate() error {
	if config.BaseURL == "" {
		return fmt.Errorf("missing variable: ai base_url")
	}
	if config.PollInterval <= 0 || config.PollTimeout <= 0 {
		return fmt.Errorf("poll_interval and poll_timeout must be positive")
	}
	return nil
}

func (config AIConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("ai.base_url", "AI_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("ai.max_requests_per_second", "AI_MAX_REQUESTS_PER_SECOND"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("ai.poll_interval", "AI_POLL_INTERVAL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("ai.poll_timeout", "AI_POLL_TIMEOUT"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
