package authz

// Permission names form the application catalog. The resolver treats them as
// opaque keys; there are no wildcards and no hierarchy.
const (
	PermGroupList   = "GROUP_LIST"
	PermGroupGet    = "GROUP_GET"
	PermGroupCreate = "GROUP_CREATE"
	PermGroupUpdate = "GROUP_UPDATE"
	PermGroupDelete = "GROUP_DELETE"

	PermUserList   = "USER_LIST"
	PermUserGet    = "USER_GET"
	PermUserCreate = "USER_CREATE"
	PermUserUpdate = "USER_UPDATE"
	PermUserDelete = "USER_DELETE"
)

// AllPermissions lists every permission in the catalog.
func AllPermissions() []string {
	return []string{
		PermGroupList,
		PermGroupGet,
		PermGroupCreate,
		PermGroupUpdate,
		PermGroupDelete,
		PermUserList,
		PermUserGet,
		PermUserCreate,
		PermUserUpdate,
		PermUserDelete,
	}
}
