package components

import (
	"ambassador-ledger/internal/domain/ambassador"
	"ambassador-ledger/internal/pkg/clock"
	"ambassador-ledger/internal/usecase"
	"ambassador-ledger/internal/usecase/commands"
	"ambassador-ledger/internal/usecase/queries"

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
	ambassador.NewRandomCodeGenerator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAmbassadorCommands,
		commands.NewLedgerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAmbassadorQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
