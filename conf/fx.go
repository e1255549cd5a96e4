package conf

import (
	"go.uber.org/fx"

	"github.com/looplj/authhub/internal/log"
	"github.com/looplj/authhub/internal/pkg/xcache"
	"github.com/looplj/authhub/internal/server"
	"github.com/looplj/authhub/internal/server/biz"
	"github.com/looplj/authhub/internal/server/db"
	"github.com/looplj/authhub/internal/server/gc"
)

// Provides loads the configuration and exposes every sub-config as its own
// type so components depend only on the slice they need.
func Provides() fx.Option {
	return fx.Provide(
		Load,
		func(c Config) server.Config { return c.APIServer },
		func(c Config) db.Config { return c.DB },
		func(c Config) log.Config { return c.Log },
		func(c Config) biz.JWTConfig { return c.JWT },
		func(c Config) xcache.Config { return c.Cache },
		func(c Config) biz.Config { return c.Biz },
		func(c Config) gc.Config { return c.GC },
	)
}
