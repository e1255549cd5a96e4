package dependencies

import (
	"context"

	"go.uber.org/fx"

	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/log"
	"github.com/looplj/authhub/internal/server/db"
)

var Module = fx.Module("dependencies",
	fx.Provide(log.New),
	fx.Provide(db.NewEntClient),
	fx.Invoke(func(lc fx.Lifecycle, client *ent.Client) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
	}),
)
