package config

import (
	"errors"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`
}

func (config ServerConfig) validate() error {
	if config.Port <= 0 || config.MetricsPort <= 0 {
		return errors.New("ports must be positive")
	}
	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("server.port", "SERVER_PORT"); err != nil {
		return err
	}
	return viper.BindEnv("server.metrics_port", "METRICS_PORT")
}
