package components

import (
	"go.uber.org/fx"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/api"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewSeriesHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
