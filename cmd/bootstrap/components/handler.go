package components

import (
	"tablebook/internal/handler"
	"tablebook/internal/handler/api"
	"tablebook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewMenuHandler,
		api.NewOrderHandler,
		api.NewChatHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
