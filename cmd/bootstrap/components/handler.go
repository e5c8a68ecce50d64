package components

import (
	"perfume-order-api/internal/handler"
	"perfume-order-api/internal/handler/api"
	"perfume-order-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewEnumHandler,
		middleware.NewAuthMiddleware,
		func(cart *api.CartHandler, order *api.OrderHandler, enum *api.EnumHandler) handler.Handlers {
			return handler.Handlers{Cart: cart, Order: order, Enum: enum}
		},
	),
	fx.Invoke(handler.NewRouter),
)
