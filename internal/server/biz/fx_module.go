package biz

import (
	"context"

	"go.uber.org/fx"
)

var Module = fx.Module("biz",
	fx.Provide(NewSystemService),
	fx.Provide(NewAuthService),
	fx.Provide(NewUserService),
	fx.Provide(NewGroupService),
	fx.Invoke(func(lc fx.Lifecycle, svc *SystemService) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return svc.EnsureSeedData(ctx)
			},
		})
	}),
)
