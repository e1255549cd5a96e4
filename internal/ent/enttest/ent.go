package enttest

import (
	"database/sql"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/looplj/authhub/internal/ent"
	_ "github.com/looplj/authhub/internal/pkg/sqlite"
)

// NewEntClient opens an ent client against the given database and runs the
// auto migration, failing the test on error.
func NewEntClient(t TestingT, driverName, dataSourceName string) *ent.Client {
	sqlDB, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		panic(err)
	}

	return NewClient(t,
		WithOptions(
			ent.Driver(entsql.OpenDB(driverName, sqlDB)),
		),
	)
}
