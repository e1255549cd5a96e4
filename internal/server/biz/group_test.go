package biz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/looplj/authhub/internal/authz"
	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/ent/grouppermission"
)

func grantMap(grants []*ent.GroupPermission) map[string]bool {
	m := make(map[string]bool, len(grants))
	for _, g := range grants {
		m[g.Permission] = g.Allow
	}

	return m
}

func TestCreateGroup(t *testing.T) {
	_, _, groupService, _ := setupServices(t)
	ctx := context.Background()

	g, err := groupService.CreateGroup(ctx, CreateGroupInput{
		Name:        "Editors",
		Permissions: []string{authz.PermUserList, authz.PermUserGet, authz.PermUserGet},
	})
	require.NoError(t, err)
	assert.Equal(t, "Editors", g.Name)
	assert.False(t, g.Protected)

	// Duplicate names in the desired set collapse into one grant.
	assert.Equal(t, map[string]bool{
		authz.PermUserList: true,
		authz.PermUserGet:  true,
	}, grantMap(g.Edges.Permissions))
}

func TestReconcileGrants(t *testing.T) {
	_, _, groupService, client := setupServices(t)
	ctx := context.Background()

	g, err := groupService.CreateGroup(ctx, CreateGroupInput{
		Name:        "Staff",
		Permissions: []string{authz.PermUserGet, "OLD_PERM"},
	})
	require.NoError(t, err)

	grants, err := groupService.ReconcileGrants(ctx, g.ID, []string{authz.PermUserGet, authz.PermUserCreate})
	require.NoError(t, err)

	// Kept grants stay, absent ones are removed, missing ones are created.
	assert.Equal(t, map[string]bool{
		authz.PermUserGet:    true,
		authz.PermUserCreate: true,
	}, grantMap(grants))

	// The removed grant is gone from the store, not just disabled.
	n, err := client.GroupPermission.Query().
		Where(grouppermission.GroupID(g.ID)).
		Where(grouppermission.PermissionEQ("OLD_PERM")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReconcileGrants_EnablesDisabledGrant(t *testing.T) {
	_, _, groupService, client := setupServices(t)
	ctx := context.Background()

	g, err := groupService.CreateGroup(ctx, CreateGroupInput{
		Name:        "Support",
		Permissions: []string{authz.PermUserGet},
	})
	require.NoError(t, err)

	err = client.GroupPermission.Update().
		Where(grouppermission.GroupID(g.ID)).
		Where(grouppermission.PermissionEQ(authz.PermUserGet)).
		SetAllow(false).
		Exec(ctx)
	require.NoError(t, err)

	grants, err := groupService.ReconcileGrants(ctx, g.ID, []string{authz.PermUserGet})
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{authz.PermUserGet: true}, grantMap(grants))
}

func TestReconcileGrants_Idempotent(t *testing.T) {
	_, _, groupService, _ := setupServices(t)
	ctx := context.Background()

	g, err := groupService.CreateGroup(ctx, CreateGroupInput{Name: "Ops"})
	require.NoError(t, err)

	desired := []string{authz.PermGroupList, authz.PermGroupGet}

	first, err := groupService.ReconcileGrants(ctx, g.ID, desired)
	require.NoError(t, err)

	second, err := groupService.ReconcileGrants(ctx, g.ID, desired)
	require.NoError(t, err)

	assert.Equal(t, grantMap(first), grantMap(second))
	assert.Len(t, second, 2)
}

func TestReconcileGrants_Atomic(t *testing.T) {
	_, _, groupService, client := setupServices(t)
	ctx := context.Background()

	g, err := groupService.CreateGroup(ctx, CreateGroupInput{
		Name:        "Atomic",
		Permissions: []string{authz.PermUserGet, "DOOMED_PERM"},
	})
	require.NoError(t, err)

	// Fail the creation of one specific grant mid-reconciliation.
	client.GroupPermission.Use(func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if m.Op().Is(ent.OpCreate) {
				if p, ok := m.Field(grouppermission.FieldPermission); ok && p == "BROKEN_PERM" {
					return nil, errors.New("injected failure")
				}
			}

			return next.Mutate(ctx, m)
		})
	})

	_, err = groupService.ReconcileGrants(ctx, g.ID, []string{authz.PermUserCreate, "BROKEN_PERM"})
	require.Error(t, err)

	// The failed run must leave the previous grant set untouched.
	grants, err := client.GroupPermission.Query().
		Where(grouppermission.GroupID(g.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		authz.PermUserGet: true,
		"DOOMED_PERM":     true,
	}, grantMap(grants))
}

func TestUpdateGroup(t *testing.T) {
	_, _, groupService, _ := setupServices(t)
	ctx := context.Background()

	g, err := groupService.CreateGroup(ctx, CreateGroupInput{
		Name:        "Renamable",
		Permissions: []string{authz.PermUserGet},
	})
	require.NoError(t, err)

	// A rename without a desired permission set leaves the grants alone.
	newName := "Renamed"

	updated, err := groupService.UpdateGroup(ctx, g.ID, UpdateGroupInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, map[string]bool{authz.PermUserGet: true}, grantMap(updated.Edges.Permissions))

	// A desired set reconciles in the same call.
	desired := []string{authz.PermGroupList}

	updated, err = groupService.UpdateGroup(ctx, g.ID, UpdateGroupInput{Permissions: &desired})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{authz.PermGroupList: true}, grantMap(updated.Edges.Permissions))

	_, err = groupService.UpdateGroup(ctx, 99999, UpdateGroupInput{Name: &newName})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteGroup(t *testing.T) {
	_, _, groupService, _ := setupServices(t)
	ctx := context.Background()

	g, err := groupService.CreateGroup(ctx, CreateGroupInput{Name: "Ephemeral"})
	require.NoError(t, err)

	require.NoError(t, groupService.DeleteGroup(ctx, g.ID))

	_, err = groupService.GetGroup(ctx, g.ID, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	groups, err := groupService.ListGroups(ctx)
	require.NoError(t, err)

	for _, listed := range groups {
		assert.NotEqual(t, g.ID, listed.ID)
	}

	err = groupService.DeleteGroup(ctx, g.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteGroup_Protected(t *testing.T) {
	_, _, groupService, client := setupServices(t)
	ctx := context.Background()

	g, err := client.Group.Create().
		SetName("Admin").
		SetProtected(true).
		Save(ctx)
	require.NoError(t, err)

	err = groupService.DeleteGroup(ctx, g.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// The protected group stays live.
	got, err := groupService.GetGroup(ctx, g.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Admin", got.Name)
}
