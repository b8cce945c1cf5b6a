package main

import (
	"github.com/kvanta/lockpulse/internal/config"
	"github.com/kvanta/lockpulse/internal/logger"
)

// initLogger sets up the global structured logger from application config.
func initLogger(cfg *config.Config) {
	logCfg := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == logger.EnvironmentDev,
	)
	logger.InitLogger(logCfg)
}
