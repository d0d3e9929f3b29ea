package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type SearchConfig struct {
	// CacheTTL bounds how long a memoized result page stays valid.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// OverfetchFactor multiplies the page size when salary or experience
	// filtering must happen in memory after fetch. A heuristic, not a
	// guarantee: a page may still come back under-filled.
	OverfetchFactor int `mapstructure:"overfetch_factor"`
}

func (config SearchConfig) validate() error {
	if config.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive")
	}
	if config.OverfetchFactor < 1 {
		return fmt.Errorf("overfetch_factor must be at least 1")
	}
	return nil
}

func (config SearchConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("search.cache_ttl", "SEARCH_CACHE_TTL"); err != nil {
		return err
	}
	return viper.BindEnv("search.overfetch_factor", "SEARCH_OVERFETCH_FACTOR")
}
