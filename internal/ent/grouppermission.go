// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/looplj/authhub/internal/ent/group"
	"github.com/looplj/authhub/internal/ent/grouppermission"
)

// GroupPermission is the model entity for the GroupPermission schema.
type GroupPermission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID int `json:"group_id,omitempty"`
	// Permission holds the value of the "permission" field.
	Permission string `json:"permission,omitempty"`
	// Allow holds the value of the "allow" field.
	Allow bool `json:"allow,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GroupPermissionQuery when eager-loading is set.
	Edges        GroupPermissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GroupPermissionEdges holds the relations/edges for other nodes in the graph.
type GroupPermissionEdges struct {
	// Group holds the value of the group edge.
	Group *Group `json:"group,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GroupPermissionEdges) GroupOrErr() (*Group, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: group.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GroupPermission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case grouppermission.FieldAllow:
			values[i] = new(sql.NullBool)
		case grouppermission.FieldID, grouppermission.FieldGroupID:
			values[i] = new(sql.NullInt64)
		case grouppermission.FieldPermission:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GroupPermission fields.
func (gp *GroupPermission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case grouppermission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			gp.ID = int(value.Int64)
		case grouppermission.FieldGroupID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				gp.GroupID = int(value.Int64)
			}
		case grouppermission.FieldPermission:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field permission", values[i])
			} else if value.Valid {
				gp.Permission = value.String
			}
		case grouppermission.FieldAllow:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow", values[i])
			} else if value.Valid {
				gp.Allow = value.Bool
			}
		default:
			gp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GroupPermission.
// This includes values selected through modifiers, order, etc.
func (gp *GroupPermission) Value(name string) (ent.Value, error) {
	return gp.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the GroupPermission entity.
func (gp *GroupPermission) QueryGroup() *GroupQuery {
	return NewGroupPermissionClient(gp.config).QueryGroup(gp)
}

// Update returns a builder for updating this GroupPermission.
// Note that you need to call GroupPermission.Unwrap() before calling this method if this GroupPermission
// was returned from a transaction, and the transaction was committed or rolled back.
func (gp *GroupPermission) Update() *GroupPermissionUpdateOne {
	return NewGroupPermissionClient(gp.config).UpdateOne(gp)
}

// Unwrap unwraps the GroupPermission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (gp *GroupPermission) Unwrap() *GroupPermission {
	_tx, ok := gp.config.driver.(*txDriver)
	if !ok {
		panic("ent: GroupPermission is not a transactional entity")
	}
	gp.config.driver = _tx.drv
	return gp
}

// String implements the fmt.Stringer.
func (gp *GroupPermission) String() string {
	var builder strings.Builder
	builder.WriteString("GroupPermission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", gp.ID))
	builder.WriteString("group_id=")
	builder.WriteString(fmt.Sprintf("%v", gp.GroupID))
	builder.WriteString(", ")
	builder.WriteString("permission=")
	builder.WriteString(gp.Permission)
	builder.WriteString(", ")
	builder.WriteString("allow=")
	builder.WriteString(fmt.Sprintf("%v", gp.Allow))
	builder.WriteByte(')')
	return builder.String()
}

// GroupPermissions is a parsable slice of GroupPermission.
type GroupPermissions []*GroupPermission
