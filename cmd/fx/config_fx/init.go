package config_fx

import (
	"go.uber.org/fx"

	"gigwise/internal/config"
	"gigwise/pkg/logger"
	"gigwise/pkg/utils"
)

// The runtime setup runs through fx.Invoke, not fx.Provide: providers
// are built lazily and a logger nobody injects would never configure
// zerolog at all.
var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Invoke(configureRuntime),
)

func configureRuntime(cfg *config.Config) {
	logger.New(cfg.AppEnv)
	utils.ConfigureJWT(cfg.JWTSecret)
}
