package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GroupPermission is a group-level permission grant, the fallback applied
// when the user has no override for the permission name.
type GroupPermission struct {
	ent.Schema
}

func (GroupPermission) Fields() []ent.Field {
	return []ent.Field{
		field.Int("group_id"),
		field.String("permission"),
		field.Bool("allow"),
	}
}

func (GroupPermission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", Group.Type).
			Ref("permissions").
			Field("group_id").
			Unique().
			Required(),
	}
}

func (GroupPermission) Indexes() []ent.Index {
	return []ent.Index{
		// At most one grant per (group, permission).
		index.Fields("group_id", "permission").Unique(),
	}
}
