package components

import (
	"ambassador-ledger/internal/infra/notifier"
	"ambassador-ledger/internal/infra/readstore"
	"ambassador-ledger/internal/infra/repository"
	"ambassador-ledger/internal/pkg/config"
	"ambassador-ledger/internal/usecase/commands"
	"ambassador-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
	notifierModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewAmbassadorReadStore,
			fx.As(new(queries.AmbassadorReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAmbassadorRepository,
			fx.As(new(commands.AmbassadorRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)

var notifierModule = fx.Module("persistence/notifier",
	fx.Provide(
		fx.Annotate(
			NewWebhookNotifier,
			fx.As(new(commands.ApplicationNotifier)),
		),
	),
)

func NewWebhookNotifier(cfg config.Config) *notifier.WebhookNotifier {
	return notifier.NewWebhookNotifier(cfg.Notifier)
}
