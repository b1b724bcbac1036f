package components

import (
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase"
	"tablebook/internal/usecase/assistant"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseAssistantModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRestaurantQueries,
		queries.NewAvailabilityQueries,
		queries.NewMenuQueries,
		queries.NewReservationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewOrderCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseAssistantModule = fx.Module("usecase/assistant",
	fx.Provide(
		assistant.NewToolset,
		NewDispatcher,
	),
)

func NewDispatcher(
	model assistant.ChatModel,
	tools *assistant.Toolset,
	restaurants queries.RestaurantQueries,
	conversations assistant.ConversationRepository,
	usage assistant.UsageReadStore,
	clk clock.Clock,
	cfg config.Config,
) assistant.Dispatcher {
	return assistant.NewDispatcher(model, tools, restaurants, conversations, usage, clk, cfg.Assistant.MaxTokens)
}
