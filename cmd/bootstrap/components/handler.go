package components

import (
	"court-slot-engine/internal/handler"
	"court-slot-engine/internal/handler/api"
	"court-slot-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewReportHandler,
		api.NewPromotionHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Resource  *api.ResourceHandler
	Slot      *api.SlotHandler
	Booking   *api.BookingHandler
	Report    *api.ReportHandler
	Promotion *api.PromotionHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Resource:  p.Resource,
		Slot:      p.Slot,
		Booking:   p.Booking,
		Report:    p.Report,
		Promotion: p.Promotion,
	}
}
