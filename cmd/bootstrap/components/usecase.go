package components

import (
	"boxoffice/internal/domain/order"
	"boxoffice/internal/domain/promotion"
	"boxoffice/internal/pkg/clock"
	"boxoffice/internal/pkg/config"
	"boxoffice/internal/usecase"
	"boxoffice/internal/usecase/commands"
	"boxoffice/internal/usecase/queries"
	"boxoffice/internal/usecase/shared"

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
	NewSessionStore,
	fx.Annotate(
		promotion.NewStaticTable,
		fx.As(new(order.DiscountLookup)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
		queries.NewPromotionQueries,
		queries.NewCustomerQueries,
		queries.NewUserQueries,
		queries.NewSpotQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewSpotCommands,
		commands.NewCatalogCommands,
		commands.NewPromotionCommands,
		commands.NewBookingCommands,
		commands.NewCustomerCommands,
	),
)

func NewSessionStore(cfg config.SpotConfig, clk clock.Clock) *shared.SessionStore {
	return shared.NewSessionStore(cfg.SessionTTL, clk)
}
