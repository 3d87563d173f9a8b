package components

import (
	"ambassador-ledger/internal/handler"
	"ambassador-ledger/internal/handler/api"
	"ambassador-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAmbassadorHandler,
		api.NewLedgerHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
