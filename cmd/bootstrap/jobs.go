package bootstrap

import (
	"context"
	"log/slog"

	"court-slot-engine/internal/handler/job"
	"court-slot-engine/internal/pkg/config"
	"court-slot-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, bookings commands.BookingCommands, outbox commands.OutboxCommands) error {
	if !cfg.Jobs.Enabled {
		slog.Info("background jobs disabled")
		return nil
	}
	s, err := job.NewScheduler(job.Jobs(cfg.Jobs, bookings, outbox))
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
	return nil
}
