package components

import (
	"boxoffice/internal/handler"
	"boxoffice/internal/handler/api"
	"boxoffice/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSpotHandler,
		api.NewCatalogHandler,
		api.NewPromotionHandler,
		api.NewBookingHandler,
		api.NewCustomerHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	spot *api.SpotHandler,
	catalog *api.CatalogHandler,
	promotion *api.PromotionHandler,
	booking *api.BookingHandler,
	customer *api.CustomerHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Spot:      spot,
		Catalog:   catalog,
		Promotion: promotion,
		Booking:   booking,
		Customer:  customer,
	}
}
