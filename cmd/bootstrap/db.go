package bootstrap

import (
	"context"
	"log/slog"

	"court-slot-engine/internal/infra/db"
	"court-slot-engine/internal/infra/memstore"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/infra/uow"
	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/pkg/config"
	"court-slot-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork selects the store named by STORE_DRIVER. The postgres pool is closed on stop.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (shared.UnitOfWork, error) {
	if cfg.Store.IsMemory() {
		slog.Warn("using in-memory store; data is lost on restart")
		return memstore.New(), nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return uow.NewPostgresUoW(pool, sqlc.New(), clk), nil
}
