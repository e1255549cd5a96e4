package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/looplj/authhub/internal/authz"
	"github.com/looplj/authhub/internal/ent/user"
)

func TestRegister(t *testing.T) {
	_, userService, groupService, _ := setupServices(t)
	ctx := context.Background()

	g, err := groupService.CreateGroup(ctx, CreateGroupInput{Name: "Default"})
	require.NoError(t, err)

	userService.Config.DefaultGroupID = g.ID

	u, err := userService.Register(ctx, "newcomer", "newcomer@example.com", "password-123")
	require.NoError(t, err)
	assert.Equal(t, g.ID, u.GroupID)

	// The stored password is hashed, never the raw secret.
	assert.NotEqual(t, "password-123", u.Password)
	assert.NoError(t, VerifyPassword(u.Password, "password-123"))
}

func TestCreateUser_Conflicts(t *testing.T) {
	_, userService, groupService, _ := setupServices(t)
	ctx := context.Background()

	g, err := groupService.CreateGroup(ctx, CreateGroupInput{Name: "Members"})
	require.NoError(t, err)

	_, err = userService.CreateUser(ctx, CreateUserInput{
		Username: "first",
		Email:    "taken@example.com",
		Password: "password-123",
		GroupID:  g.ID,
	})
	require.NoError(t, err)

	_, err = userService.CreateUser(ctx, CreateUserInput{
		Username: "second",
		Email:    "taken@example.com",
		Password: "password-123",
		GroupID:  g.ID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = userService.CreateUser(ctx, CreateUserInput{
		Username: "orphan",
		Email:    "orphan@example.com",
		Password: "password-123",
		GroupID:  99999,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	_, userService, groupService, client := setupServices(t)
	ctx := context.Background()

	g, err := groupService.CreateGroup(ctx, CreateGroupInput{Name: "Movable"})
	require.NoError(t, err)

	u := createTestUser(t, client, "update@example.com", "password-123")
	other := createTestUser(t, client, "other@example.com", "password-123")

	newEmail := "other@example.com"
	_, err = userService.UpdateUser(ctx, u.ID, UpdateUserInput{Email: &newEmail})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	updated, err := userService.UpdateUser(ctx, u.ID, UpdateUserInput{GroupID: &g.ID})
	require.NoError(t, err)
	assert.Equal(t, g.ID, updated.GroupID)

	badGroup := 99999
	_, err = userService.UpdateUser(ctx, other.ID, UpdateUserInput{GroupID: &badGroup})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	_, userService, _, client := setupServices(t)
	ctx := context.Background()

	u := createTestUser(t, client, "gone@example.com", "password-123")

	require.NoError(t, userService.DeleteUser(ctx, u.ID))

	_, err := userService.GetUserByID(ctx, u.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	// The row survives as a tombstone for audit.
	row, err := client.User.Query().
		Where(user.IDEQ(u.ID)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, row.DeletedAt)

	err = userService.DeleteUser(ctx, u.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPermissionOverrides(t *testing.T) {
	_, userService, groupService, client := setupServices(t)
	ctx := context.Background()

	u := createTestUser(t, client, "override@example.com", "password-123")

	_, err := groupService.ReconcileGrants(ctx, u.GroupID, []string{authz.PermUserList})
	require.NoError(t, err)

	snapshot, err := userService.GetSnapshot(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, authz.Resolve(snapshot, authz.PermUserList))
	assert.False(t, authz.Resolve(snapshot, authz.PermUserCreate))

	// An explicit deny beats the group grant.
	require.NoError(t, userService.SetPermissionOverride(ctx, u.ID, authz.PermUserList, false))

	snapshot, err = userService.GetSnapshot(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, authz.Resolve(snapshot, authz.PermUserList))

	// An explicit allow grants beyond the group.
	require.NoError(t, userService.SetPermissionOverride(ctx, u.ID, authz.PermUserCreate, true))

	snapshot, err = userService.GetSnapshot(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, authz.Resolve(snapshot, authz.PermUserCreate))

	// Removing the override falls back to the group decision.
	require.NoError(t, userService.RemovePermissionOverride(ctx, u.ID, authz.PermUserList))

	snapshot, err = userService.GetSnapshot(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, authz.Resolve(snapshot, authz.PermUserList))

	err = userService.RemovePermissionOverride(ctx, u.ID, authz.PermUserList)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	err = userService.SetPermissionOverride(ctx, 99999, authz.PermUserList, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSnapshot_DeletedUser(t *testing.T) {
	_, userService, _, client := setupServices(t)
	ctx := context.Background()

	u := createTestUser(t, client, "snapshot@example.com", "password-123")

	require.NoError(t, userService.DeleteUser(ctx, u.ID))

	_, err := userService.GetSnapshot(ctx, u.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
