package biz

// Config holds service-level settings.
type Config struct {
	// DefaultGroupID is the group new registrations are bound to.
	DefaultGroupID int `conf:"default_group_id" yaml:"default_group_id" json:"default_group_id"`

	// SeedAdminEmail and SeedAdminPassword are used once, when the store has
	// no users at all, to create the initial administrator account.
	SeedAdminEmail    string `conf:"seed_admin_email" yaml:"seed_admin_email" json:"seed_admin_email"`
	SeedAdminPassword string `conf:"seed_admin_password" yaml:"seed_admin_password" json:"seed_admin_password"`
}

const DefaultGroupID = 2
