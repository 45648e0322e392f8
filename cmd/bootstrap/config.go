package bootstrap

import (
	"log/slog"

	"court-slot-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(loadConfig),
)

func loadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	slog.Info("configuration loaded",
		"store", cfg.Store.Driver,
		"amqp", cfg.AMQP.URL != "",
		"jobs", cfg.Jobs.Enabled,
		"metrics", cfg.Metrics.Enabled)
	return cfg, nil
}
