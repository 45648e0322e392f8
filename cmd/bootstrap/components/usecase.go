package components

import (
	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/pkg/config"
	"court-slot-engine/internal/pkg/metrics"
	"court-slot-engine/internal/usecase"
	"court-slot-engine/internal/usecase/commands"
	"court-slot-engine/internal/usecase/queries"
	"court-slot-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.ResourceCommands {
			return commands.NewResourceUseCase(uow, clk, cfg.Booking.DefaultTimezone)
		},
		commands.NewScheduleUseCase,
		commands.NewSlotUseCase,
		commands.NewPromotionUseCase,
		func(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) commands.BookingCommands {
			return commands.NewBookingUseCase(uow, clk, m)
		},
		func(uow shared.UnitOfWork, pub commands.Publisher, clk clock.Clock, m *metrics.Metrics, cfg config.Config) commands.OutboxCommands {
			return commands.NewOutboxUseCase(uow, pub, clk, m, cfg.Jobs.MaxAttempts)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewResourceQueries,
		queries.NewScheduleQueries,
		queries.NewBookingQueries,
		queries.NewPriceQueries,
		queries.NewRevenueQueries,
		func(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics, cfg config.Config) queries.SlotQueries {
			return queries.NewSlotQueries(uow, clk, m, cfg.Booking.MaxRangeDays)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
