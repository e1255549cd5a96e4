package objects

// GroupInfo is the wire representation of a group.
type GroupInfo struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Protected   bool              `json:"protected"`
	Permissions []PermissionEntry `json:"permissions,omitempty"`
}
