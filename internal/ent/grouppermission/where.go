// Code generated by ent, DO NOT EDIT.

package grouppermission

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/looplj/authhub/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldLTE(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldEQ(FieldGroupID, v))
}

// Permission applies equality check predicate on the "permission" field. It's identical to PermissionEQ.
func Permission(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldEQ(FieldPermission, v))
}

// Allow applies equality check predicate on the "allow" field. It's identical to AllowEQ.
func Allow(v bool) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldEQ(FieldAllow, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...int) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldNotIn(FieldGroupID, vs...))
}

// PermissionEQ applies the EQ predicate on the "permission" field.
func PermissionEQ(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldEQ(FieldPermission, v))
}

// PermissionNEQ applies the NEQ predicate on the "permission" field.
func PermissionNEQ(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldNEQ(FieldPermission, v))
}

// PermissionIn applies the In predicate on the "permission" field.
func PermissionIn(vs ...string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldIn(FieldPermission, vs...))
}

// PermissionNotIn applies the NotIn predicate on the "permission" field.
func PermissionNotIn(vs ...string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldNotIn(FieldPermission, vs...))
}

// PermissionGT applies the GT predicate on the "permission" field.
func PermissionGT(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldGT(FieldPermission, v))
}

// PermissionGTE applies the GTE predicate on the "permission" field.
func PermissionGTE(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldGTE(FieldPermission, v))
}

// PermissionLT applies the LT predicate on the "permission" field.
func PermissionLT(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldLT(FieldPermission, v))
}

// PermissionLTE applies the LTE predicate on the "permission" field.
func PermissionLTE(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldLTE(FieldPermission, v))
}

// PermissionContains applies the Contains predicate on the "permission" field.
func PermissionContains(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldContains(FieldPermission, v))
}

// PermissionHasPrefix applies the HasPrefix predicate on the "permission" field.
func PermissionHasPrefix(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldHasPrefix(FieldPermission, v))
}

// PermissionHasSuffix applies the HasSuffix predicate on the "permission" field.
func PermissionHasSuffix(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldHasSuffix(FieldPermission, v))
}

// PermissionEqualFold applies the EqualFold predicate on the "permission" field.
func PermissionEqualFold(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldEqualFold(FieldPermission, v))
}

// PermissionContainsFold applies the ContainsFold predicate on the "permission" field.
func PermissionContainsFold(v string) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldContainsFold(FieldPermission, v))
}

// AllowEQ applies the EQ predicate on the "allow" field.
func AllowEQ(v bool) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldEQ(FieldAllow, v))
}

// AllowNEQ applies the NEQ predicate on the "allow" field.
func AllowNEQ(v bool) predicate.GroupPermission {
	return predicate.GroupPermission(sql.FieldNEQ(FieldAllow, v))
}

// HasGroup applies the HasEdge predicate on the "group" edge.
func HasGroup() predicate.GroupPermission {
	return predicate.GroupPermission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupWith applies the HasEdge predicate on the "group" edge with a given conditions (other predicates).
func HasGroupWith(preds ...predicate.Group) predicate.GroupPermission {
	return predicate.GroupPermission(func(s *sql.Selector) {
		step := newGroupStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GroupPermission) predicate.GroupPermission {
	return predicate.GroupPermission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GroupPermission) predicate.GroupPermission {
	return predicate.GroupPermission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GroupPermission) predicate.GroupPermission {
	return predicate.GroupPermission(sql.NotPredicates(p))
}
