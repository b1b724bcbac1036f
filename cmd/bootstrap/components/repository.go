package components

import (
	"tablebook/internal/infra/billing"
	"tablebook/internal/infra/llm"
	"tablebook/internal/infra/readstore"
	"tablebook/internal/infra/repository"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/assistant"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			readstore.NewRestaurantReadStore,
			fx.As(new(queries.RestaurantReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuReadStore)),
			fx.As(new(commands.OrderMenuReadStore)),
		),
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(commands.AccountReadStore)),
		),
		fx.Annotate(
			readstore.NewUsageReadStore,
			fx.As(new(assistant.UsageReadStore)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewConversationRepository,
			fx.As(new(assistant.ConversationRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		// Outbound HTTP collaborators
		fx.Annotate(
			NewLLMClient,
			fx.As(new(assistant.ChatModel)),
		),
		fx.Annotate(
			NewBillingClient,
			fx.As(new(commands.CheckoutProvider)),
		),
	),
)

func NewLLMClient(cfg config.Config) *llm.Client {
	return llm.NewClient(cfg.Assistant)
}

func NewBillingClient(cfg config.Config) *billing.Client {
	return billing.NewClient(cfg.Billing)
}
