// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/looplj/authhub/internal/ent/group"
	"github.com/looplj/authhub/internal/ent/grouppermission"
	"github.com/looplj/authhub/internal/ent/predicate"
)

// GroupPermissionUpdate is the builder for updating GroupPermission entities.
type GroupPermissionUpdate struct {
	config
	hooks    []Hook
	mutation *GroupPermissionMutation
}

// Where appends a list predicates to the GroupPermissionUpdate builder.
func (gpu *GroupPermissionUpdate) Where(ps ...predicate.GroupPermission) *GroupPermissionUpdate {
	gpu.mutation.Where(ps...)
	return gpu
}

// SetGroupID sets the "group_id" field.
func (gpu *GroupPermissionUpdate) SetGroupID(i int) *GroupPermissionUpdate {
	gpu.mutation.SetGroupID(i)
	return gpu
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (gpu *GroupPermissionUpdate) SetNillableGroupID(i *int) *GroupPermissionUpdate {
	if i != nil {
		gpu.SetGroupID(*i)
	}
	return gpu
}

// SetPermission sets the "permission" field.
func (gpu *GroupPermissionUpdate) SetPermission(s string) *GroupPermissionUpdate {
	gpu.mutation.SetPermission(s)
	return gpu
}

// SetNillablePermission sets the "permission" field if the given value is not nil.
func (gpu *GroupPermissionUpdate) SetNillablePermission(s *string) *GroupPermissionUpdate {
	if s != nil {
		gpu.SetPermission(*s)
	}
	return gpu
}

// SetAllow sets the "allow" field.
func (gpu *GroupPermissionUpdate) SetAllow(b bool) *GroupPermissionUpdate {
	gpu.mutation.SetAllow(b)
	return gpu
}

// SetNillableAllow sets the "allow" field if the given value is not nil.
func (gpu *GroupPermissionUpdate) SetNillableAllow(b *bool) *GroupPermissionUpdate {
	if b != nil {
		gpu.SetAllow(*b)
	}
	return gpu
}

// SetGroup sets the "group" edge to the Group entity.
func (gpu *GroupPermissionUpdate) SetGroup(g *Group) *GroupPermissionUpdate {
	return gpu.SetGroupID(g.ID)
}

// Mutation returns the GroupPermissionMutation object of the builder.
func (gpu *GroupPermissionUpdate) Mutation() *GroupPermissionMutation {
	return gpu.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (gpu *GroupPermissionUpdate) ClearGroup() *GroupPermissionUpdate {
	gpu.mutation.ClearGroup()
	return gpu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (gpu *GroupPermissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, gpu.sqlSave, gpu.mutation, gpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gpu *GroupPermissionUpdate) SaveX(ctx context.Context) int {
	affected, err := gpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (gpu *GroupPermissionUpdate) Exec(ctx context.Context) error {
	_, err := gpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gpu *GroupPermissionUpdate) ExecX(ctx context.Context) {
	if err := gpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gpu *GroupPermissionUpdate) check() error {
	if gpu.mutation.GroupCleared() && len(gpu.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupPermission.group"`)
	}
	return nil
}

func (gpu *GroupPermissionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := gpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(grouppermission.Table, grouppermission.Columns, sqlgraph.NewFieldSpec(grouppermission.FieldID, field.TypeInt))
	if ps := gpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gpu.mutation.Permission(); ok {
		_spec.SetField(grouppermission.FieldPermission, field.TypeString, value)
	}
	if value, ok := gpu.mutation.Allow(); ok {
		_spec.SetField(grouppermission.FieldAllow, field.TypeBool, value)
	}
	if gpu.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   grouppermission.GroupTable,
			Columns: []string{grouppermission.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := gpu.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   grouppermission.GroupTable,
			Columns: []string{grouppermission.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, gpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grouppermission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	gpu.mutation.done = true
	return n, nil
}

// GroupPermissionUpdateOne is the builder for updating a single GroupPermission entity.
type GroupPermissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupPermissionMutation
}

// SetGroupID sets the "group_id" field.
func (gpuo *GroupPermissionUpdateOne) SetGroupID(i int) *GroupPermissionUpdateOne {
	gpuo.mutation.SetGroupID(i)
	return gpuo
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (gpuo *GroupPermissionUpdateOne) SetNillableGroupID(i *int) *GroupPermissionUpdateOne {
	if i != nil {
		gpuo.SetGroupID(*i)
	}
	return gpuo
}

// SetPermission sets the "permission" field.
func (gpuo *GroupPermissionUpdateOne) SetPermission(s string) *GroupPermissionUpdateOne {
	gpuo.mutation.SetPermission(s)
	return gpuo
}

// SetNillablePermission sets the "permission" field if the given value is not nil.
func (gpuo *GroupPermissionUpdateOne) SetNillablePermission(s *string) *GroupPermissionUpdateOne {
	if s != nil {
		gpuo.SetPermission(*s)
	}
	return gpuo
}

// SetAllow sets the "allow" field.
func (gpuo *GroupPermissionUpdateOne) SetAllow(b bool) *GroupPermissionUpdateOne {
	gpuo.mutation.SetAllow(b)
	return gpuo
}

// SetNillableAllow sets the "allow" field if the given value is not nil.
func (gpuo *GroupPermissionUpdateOne) SetNillableAllow(b *bool) *GroupPermissionUpdateOne {
	if b != nil {
		gpuo.SetAllow(*b)
	}
	return gpuo
}

// SetGroup sets the "group" edge to the Group entity.
func (gpuo *GroupPermissionUpdateOne) SetGroup(g *Group) *GroupPermissionUpdateOne {
	return gpuo.SetGroupID(g.ID)
}

// Mutation returns the GroupPermissionMutation object of the builder.
func (gpuo *GroupPermissionUpdateOne) Mutation() *GroupPermissionMutation {
	return gpuo.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (gpuo *GroupPermissionUpdateOne) ClearGroup() *GroupPermissionUpdateOne {
	gpuo.mutation.ClearGroup()
	return gpuo
}

// Where appends a list predicates to the GroupPermissionUpdate builder.
func (gpuo *GroupPermissionUpdateOne) Where(ps ...predicate.GroupPermission) *GroupPermissionUpdateOne {
	gpuo.mutation.Where(ps...)
	return gpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (gpuo *GroupPermissionUpdateOne) Select(field string, fields ...string) *GroupPermissionUpdateOne {
	gpuo.fields = append([]string{field}, fields...)
	return gpuo
}

// Save executes the query and returns the updated GroupPermission entity.
func (gpuo *GroupPermissionUpdateOne) Save(ctx context.Context) (*GroupPermission, error) {
	return withHooks(ctx, gpuo.sqlSave, gpuo.mutation, gpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gpuo *GroupPermissionUpdateOne) SaveX(ctx context.Context) *GroupPermission {
	node, err := gpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (gpuo *GroupPermissionUpdateOne) Exec(ctx context.Context) error {
	_, err := gpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gpuo *GroupPermissionUpdateOne) ExecX(ctx context.Context) {
	if err := gpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gpuo *GroupPermissionUpdateOne) check() error {
	if gpuo.mutation.GroupCleared() && len(gpuo.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupPermission.group"`)
	}
	return nil
}

func (gpuo *GroupPermissionUpdateOne) sqlSave(ctx context.Context) (_node *GroupPermission, err error) {
	if err := gpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grouppermission.Table, grouppermission.Columns, sqlgraph.NewFieldSpec(grouppermission.FieldID, field.TypeInt))
	id, ok := gpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GroupPermission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := gpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grouppermission.FieldID)
		for _, f := range fields {
			if !grouppermission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != grouppermission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := gpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gpuo.mutation.Permission(); ok {
		_spec.SetField(grouppermission.FieldPermission, field.TypeString, value)
	}
	if value, ok := gpuo.mutation.Allow(); ok {
		_spec.SetField(grouppermission.FieldAllow, field.TypeBool, value)
	}
	if gpuo.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   grouppermission.GroupTable,
			Columns: []string{grouppermission.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := gpuo.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   grouppermission.GroupTable,
			Columns: []string{grouppermission.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GroupPermission{config: gpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, gpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grouppermission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	gpuo.mutation.done = true
	return _node, nil
}
