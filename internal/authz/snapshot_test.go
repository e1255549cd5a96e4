package authz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("override allow wins", func(t *testing.T) {
		snapshot := Snapshot{
			Overrides:   map[string]bool{PermUserDelete: true},
			GroupGrants: map[string]bool{},
		}
		require.True(t, Resolve(snapshot, PermUserDelete))
	})

	t.Run("override deny wins over group allow", func(t *testing.T) {
		snapshot := Snapshot{
			Overrides:   map[string]bool{PermUserDelete: false},
			GroupGrants: map[string]bool{PermUserDelete: true},
		}
		require.False(t, Resolve(snapshot, PermUserDelete))
	})

	t.Run("falls back to group grant without override", func(t *testing.T) {
		snapshot := Snapshot{
			Overrides:   map[string]bool{},
			GroupGrants: map[string]bool{PermGroupList: true},
		}
		require.True(t, Resolve(snapshot, PermGroupList))
	})

	t.Run("group deny applies without override", func(t *testing.T) {
		snapshot := Snapshot{
			GroupGrants: map[string]bool{PermGroupList: false},
		}
		require.False(t, Resolve(snapshot, PermGroupList))
	})

	t.Run("unknown permission denies", func(t *testing.T) {
		snapshot := Snapshot{
			Overrides:   map[string]bool{PermUserGet: true},
			GroupGrants: map[string]bool{PermGroupList: true},
		}
		require.False(t, Resolve(snapshot, "SOMETHING_ELSE"))
	})

	t.Run("nil maps deny", func(t *testing.T) {
		require.False(t, Resolve(Snapshot{}, PermUserGet))
	})

	t.Run("exact string equality only", func(t *testing.T) {
		snapshot := Snapshot{
			GroupGrants: map[string]bool{PermUserGet: true},
		}
		require.False(t, Resolve(snapshot, "user_get"))
		require.False(t, Resolve(snapshot, "USER_GET "))
		require.False(t, Resolve(snapshot, "USER_*"))
	})
}

func TestResolveScenarios(t *testing.T) {
	t.Run("admin with group grant", func(t *testing.T) {
		admin := Snapshot{
			UserID:      1,
			Overrides:   map[string]bool{},
			GroupGrants: map[string]bool{PermGroupList: true},
		}
		require.True(t, Resolve(admin, PermGroupList))
	})

	t.Run("guest override survives later group grant", func(t *testing.T) {
		guest := Snapshot{
			UserID:    3,
			Overrides: map[string]bool{PermUserDelete: false},
		}
		require.False(t, Resolve(guest, PermUserDelete))

		// Group grant added afterwards, override still wins.
		guest.GroupGrants = map[string]bool{PermUserDelete: true}
		require.False(t, Resolve(guest, PermUserDelete))

		// Removing the override falls back to the group grant.
		delete(guest.Overrides, PermUserDelete)
		require.True(t, Resolve(guest, PermUserDelete))

		// And to default deny once the grant goes away too.
		delete(guest.GroupGrants, PermUserDelete)
		require.False(t, Resolve(guest, PermUserDelete))
	})
}
