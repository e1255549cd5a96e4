package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserPermission is an identity-level permission override. It takes
// precedence over the group grant for the same permission name.
type UserPermission struct {
	ent.Schema
}

func (UserPermission) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("permission"),
		field.Bool("allow"),
	}
}

func (UserPermission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("permissions").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (UserPermission) Indexes() []ent.Index {
	return []ent.Index{
		// At most one override per (user, permission).
		index.Fields("user_id", "permission").Unique(),
	}
}
