package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/looplj/authhub/internal/authz"
	"github.com/looplj/authhub/internal/ent/group"
	"github.com/looplj/authhub/internal/pkg/xcache"
)

func setupSystemService(t *testing.T) (*SystemService, *AuthService) {
	t.Helper()

	client := setupTestDB(t)

	userService := NewUserService(UserServiceParams{
		Config:      Config{SeedAdminEmail: "root@example.com", SeedAdminPassword: "root-password-123"},
		CacheConfig: xcache.Config{},
		Ent:         client,
	})
	groupService := NewGroupService(GroupServiceParams{Ent: client})
	authService := NewAuthService(AuthServiceParams{
		JWT:         JWTConfig{Secret: "test-secret"},
		UserService: userService,
		Ent:         client,
	})

	systemService := NewSystemService(SystemServiceParams{
		Config:       Config{SeedAdminEmail: "root@example.com", SeedAdminPassword: "root-password-123"},
		GroupService: groupService,
		UserService:  userService,
		Ent:          client,
	})

	return systemService, authService
}

func TestEnsureSeedData(t *testing.T) {
	systemService, authService := setupSystemService(t)
	ctx := context.Background()

	require.NoError(t, systemService.EnsureSeedData(ctx))

	client := systemService.db

	groups, err := client.Group.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	admin, err := client.Group.Query().
		Where(group.NameEQ("Admin")).
		WithPermissions().
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, admin.Protected)
	assert.Len(t, admin.Edges.Permissions, len(authz.AllPermissions()))

	users, err := client.Group.Query().
		Where(group.NameEQ("User")).
		WithPermissions().
		Only(ctx)
	require.NoError(t, err)
	assert.False(t, users.Protected)
	assert.Len(t, users.Edges.Permissions, 4)

	guest, err := client.Group.Query().
		Where(group.NameEQ("Guest")).
		WithPermissions().
		Only(ctx)
	require.NoError(t, err)
	assert.Empty(t, guest.Edges.Permissions)

	// The initial administrator can sign in with the configured password.
	u, err := authService.AuthenticateUser(ctx, "root@example.com", "root-password-123")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, u.GroupID)

	// A second run changes nothing.
	require.NoError(t, systemService.EnsureSeedData(ctx))

	groupCount, err := client.Group.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, groupCount)

	userCount, err := client.User.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, userCount)
}
