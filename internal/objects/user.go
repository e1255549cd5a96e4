package objects

// PermissionEntry is one named allow/deny decision.
type PermissionEntry struct {
	Permission string `json:"permission"`
	Allow      bool   `json:"allow"`
}

// UserInfo is the wire representation of a user.
type UserInfo struct {
	ID          int               `json:"id"`
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	Group       *GroupInfo        `json:"group,omitempty"`
	Permissions []PermissionEntry `json:"permissions,omitempty"`
}
