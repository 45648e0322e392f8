package bootstrap

import (
	"court-slot-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	JWTModule,
	components.UseCaseModule,
	DBModule,
	MessagingModule,
	components.HandlerModule,
	JobsModule,
)
