package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module loads the configuration once and reports the effective values at startup.
var Module = fx.Options(
	fx.Provide(Load),
	fx.Invoke(func(cfg *Config, log *slog.Logger) {
		log.Info("configuration loaded", slog.Any("config", cfg))
	}),
)
