package authz

// Snapshot is the hydrated, read-only view of an identity's permission state.
// Overrides are identity-level decisions, GroupGrants come from the identity's
// group. Snapshots are assembled by an explicit fetch step before resolution
// and are never mutated by Resolve.
type Snapshot struct {
	UserID      int
	Overrides   map[string]bool
	GroupGrants map[string]bool
}

// Resolve computes the allow/deny decision for one permission name.
//
// Precedence is strict and two-level: an identity override always wins,
// including an explicit deny over a group-level allow. Without an override the
// group grant applies. Unknown names resolve to deny (default-closed).
func Resolve(snapshot Snapshot, permission string) bool {
	if allow, ok := snapshot.Overrides[permission]; ok {
		return allow
	}

	if allow, ok := snapshot.GroupGrants[permission]; ok {
		return allow
	}

	return false
}
