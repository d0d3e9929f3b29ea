package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type JobsConfig struct {
	// RetentionDays is how long an expired listing is kept before the
	// daily cleaner removes it.
	RetentionDays int `mapstructure:"retention_days"`
}

func (config JobsConfig) validate() error {
	if config.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be positive")
	}
	return nil
}

func (config JobsConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("jobs.retention_days", "JOBS_RETENTION_DAYS")
}
