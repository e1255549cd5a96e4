package api

import "go.uber.org/fx"

var Module = fx.Module("api",
	fx.Provide(NewAuthHandlers),
	fx.Provide(NewUserHandlers),
	fx.Provide(NewGroupHandlers),
	fx.Provide(NewSystemHandlers),
)
