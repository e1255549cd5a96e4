package gc

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/ent/enttest"
	"github.com/looplj/authhub/internal/ent/group"
	"github.com/looplj/authhub/internal/ent/user"
)

func setupWorker(t *testing.T) (*Worker, *ent.Client) {
	t.Helper()

	client := enttest.NewEntClient(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))

	worker := NewWorker(Params{
		Config: Config{Enabled: true, Retention: 30 * 24 * time.Hour},
		Client: client,
	})

	return worker, client
}

func createTombstonedUser(t *testing.T, client *ent.Client, email string, deletedAt time.Time) *ent.User {
	t.Helper()

	ctx := context.Background()

	g, err := client.Group.Create().SetName("Group-" + email).Save(ctx)
	require.NoError(t, err)

	u, err := client.User.Create().
		SetUsername("user-" + email).
		SetEmail(email).
		SetPassword("irrelevant").
		SetGroupID(g.ID).
		SetDeletedAt(deletedAt).
		Save(ctx)
	require.NoError(t, err)

	return u
}

func TestPurgeUsers(t *testing.T) {
	worker, client := setupWorker(t)
	ctx := context.Background()

	now := time.Now().UTC()
	cutoff := now.Add(-worker.Config.Retention)

	old := createTombstonedUser(t, client, "old@example.com", cutoff.Add(-time.Hour))
	recent := createTombstonedUser(t, client, "recent@example.com", now.Add(-time.Hour))

	_, err := client.UserPermission.Create().
		SetUserID(old.ID).
		SetPermission("USER_LIST").
		SetAllow(true).
		Save(ctx)
	require.NoError(t, err)

	deleted, err := worker.purgeUsers(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	// The old tombstone and its overrides are gone for good.
	n, err := client.User.Query().Where(user.IDEQ(old.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	overrides, err := client.UserPermission.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, overrides)

	// The recent tombstone stays within the retention window.
	n, err = client.User.Query().Where(user.IDEQ(recent.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPurgeGroups(t *testing.T) {
	worker, client := setupWorker(t)
	ctx := context.Background()

	now := time.Now().UTC()
	cutoff := now.Add(-worker.Config.Retention)

	empty, err := client.Group.Create().
		SetName("Empty").
		SetDeletedAt(cutoff.Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.GroupPermission.Create().
		SetGroupID(empty.ID).
		SetPermission("USER_LIST").
		SetAllow(true).
		Save(ctx)
	require.NoError(t, err)

	// A tombstoned group still referenced by a user is skipped.
	populated, err := client.Group.Create().
		SetName("Populated").
		SetDeletedAt(cutoff.Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.User.Create().
		SetUsername("leftover").
		SetEmail("leftover@example.com").
		SetPassword("irrelevant").
		SetGroupID(populated.ID).
		Save(ctx)
	require.NoError(t, err)

	deleted, err := worker.purgeGroups(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	n, err := client.Group.Query().Where(group.IDEQ(empty.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	grants, err := client.GroupPermission.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, grants)

	n, err = client.Group.Query().Where(group.IDEQ(populated.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
