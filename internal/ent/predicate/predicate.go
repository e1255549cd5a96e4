// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// GroupPermission is the predicate function for grouppermission builders.
type GroupPermission func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserPermission is the predicate function for userpermission builders.
type UserPermission func(*sql.Selector)
