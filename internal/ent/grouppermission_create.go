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
)

// GroupPermissionCreate is the builder for creating a GroupPermission entity.
type GroupPermissionCreate struct {
	config
	mutation *GroupPermissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGroupID sets the "group_id" field.
func (gpc *GroupPermissionCreate) SetGroupID(i int) *GroupPermissionCreate {
	gpc.mutation.SetGroupID(i)
	return gpc
}

// SetPermission sets the "permission" field.
func (gpc *GroupPermissionCreate) SetPermission(s string) *GroupPermissionCreate {
	gpc.mutation.SetPermission(s)
	return gpc
}

// SetAllow sets the "allow" field.
func (gpc *GroupPermissionCreate) SetAllow(b bool) *GroupPermissionCreate {
	gpc.mutation.SetAllow(b)
	return gpc
}

// SetGroup sets the "group" edge to the Group entity.
func (gpc *GroupPermissionCreate) SetGroup(g *Group) *GroupPermissionCreate {
	return gpc.SetGroupID(g.ID)
}

// Mutation returns the GroupPermissionMutation object of the builder.
func (gpc *GroupPermissionCreate) Mutation() *GroupPermissionMutation {
	return gpc.mutation
}

// Save creates the GroupPermission in the database.
func (gpc *GroupPermissionCreate) Save(ctx context.Context) (*GroupPermission, error) {
	return withHooks(ctx, gpc.sqlSave, gpc.mutation, gpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (gpc *GroupPermissionCreate) SaveX(ctx context.Context) *GroupPermission {
	v, err := gpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gpc *GroupPermissionCreate) Exec(ctx context.Context) error {
	_, err := gpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gpc *GroupPermissionCreate) ExecX(ctx context.Context) {
	if err := gpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gpc *GroupPermissionCreate) check() error {
	if _, ok := gpc.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "GroupPermission.group_id"`)}
	}
	if _, ok := gpc.mutation.Permission(); !ok {
		return &ValidationError{Name: "permission", err: errors.New(`ent: missing required field "GroupPermission.permission"`)}
	}
	if _, ok := gpc.mutation.Allow(); !ok {
		return &ValidationError{Name: "allow", err: errors.New(`ent: missing required field "GroupPermission.allow"`)}
	}
	if len(gpc.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required edge "GroupPermission.group"`)}
	}
	return nil
}

func (gpc *GroupPermissionCreate) sqlSave(ctx context.Context) (*GroupPermission, error) {
	if err := gpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := gpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, gpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	gpc.mutation.id = &_node.ID
	gpc.mutation.done = true
	return _node, nil
}

func (gpc *GroupPermissionCreate) createSpec() (*GroupPermission, *sqlgraph.CreateSpec) {
	var (
		_node = &GroupPermission{config: gpc.config}
		_spec = sqlgraph.NewCreateSpec(grouppermission.Table, sqlgraph.NewFieldSpec(grouppermission.FieldID, field.TypeInt))
	)
	_spec.OnConflict = gpc.conflict
	if value, ok := gpc.mutation.Permission(); ok {
		_spec.SetField(grouppermission.FieldPermission, field.TypeString, value)
		_node.Permission = value
	}
	if value, ok := gpc.mutation.Allow(); ok {
		_spec.SetField(grouppermission.FieldAllow, field.TypeBool, value)
		_node.Allow = value
	}
	if nodes := gpc.mutation.GroupIDs(); len(nodes) > 0 {
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
		_node.GroupID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GroupPermission.Create().
//		SetGroupID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GroupPermissionUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (gpc *GroupPermissionCreate) OnConflict(opts ...sql.ConflictOption) *GroupPermissionUpsertOne {
	gpc.conflict = opts
	return &GroupPermissionUpsertOne{
		create: gpc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GroupPermission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (gpc *GroupPermissionCreate) OnConflictColumns(columns ...string) *GroupPermissionUpsertOne {
	gpc.conflict = append(gpc.conflict, sql.ConflictColumns(columns...))
	return &GroupPermissionUpsertOne{
		create: gpc,
	}
}

type (
	// GroupPermissionUpsertOne is the builder for "upsert"-ing
	//  one GroupPermission node.
	GroupPermissionUpsertOne struct {
		create *GroupPermissionCreate
	}

	// GroupPermissionUpsert is the "OnConflict" setter.
	GroupPermissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetGroupID sets the "group_id" field.
func (u *GroupPermissionUpsert) SetGroupID(v int) *GroupPermissionUpsert {
	u.Set(grouppermission.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *GroupPermissionUpsert) UpdateGroupID() *GroupPermissionUpsert {
	u.SetExcluded(grouppermission.FieldGroupID)
	return u
}

// SetPermission sets the "permission" field.
func (u *GroupPermissionUpsert) SetPermission(v string) *GroupPermissionUpsert {
	u.Set(grouppermission.FieldPermission, v)
	return u
}

// UpdatePermission sets the "permission" field to the value that was provided on create.
func (u *GroupPermissionUpsert) UpdatePermission() *GroupPermissionUpsert {
	u.SetExcluded(grouppermission.FieldPermission)
	return u
}

// SetAllow sets the "allow" field.
func (u *GroupPermissionUpsert) SetAllow(v bool) *GroupPermissionUpsert {
	u.Set(grouppermission.FieldAllow, v)
	return u
}

// UpdateAllow sets the "allow" field to the value that was provided on create.
func (u *GroupPermissionUpsert) UpdateAllow() *GroupPermissionUpsert {
	u.SetExcluded(grouppermission.FieldAllow)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.GroupPermission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GroupPermissionUpsertOne) UpdateNewValues() *GroupPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GroupPermission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GroupPermissionUpsertOne) Ignore() *GroupPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GroupPermissionUpsertOne) DoNothing() *GroupPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GroupPermissionCreate.OnConflict
// documentation for more info.
func (u *GroupPermissionUpsertOne) Update(set func(*GroupPermissionUpsert)) *GroupPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GroupPermissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetGroupID sets the "group_id" field.
func (u *GroupPermissionUpsertOne) SetGroupID(v int) *GroupPermissionUpsertOne {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *GroupPermissionUpsertOne) UpdateGroupID() *GroupPermissionUpsertOne {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.UpdateGroupID()
	})
}

// SetPermission sets the "permission" field.
func (u *GroupPermissionUpsertOne) SetPermission(v string) *GroupPermissionUpsertOne {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.SetPermission(v)
	})
}

// UpdatePermission sets the "permission" field to the value that was provided on create.
func (u *GroupPermissionUpsertOne) UpdatePermission() *GroupPermissionUpsertOne {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.UpdatePermission()
	})
}

// SetAllow sets the "allow" field.
func (u *GroupPermissionUpsertOne) SetAllow(v bool) *GroupPermissionUpsertOne {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.SetAllow(v)
	})
}

// UpdateAllow sets the "allow" field to the value that was provided on create.
func (u *GroupPermissionUpsertOne) UpdateAllow() *GroupPermissionUpsertOne {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.UpdateAllow()
	})
}

// Exec executes the query.
func (u *GroupPermissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GroupPermissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GroupPermissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GroupPermissionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GroupPermissionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GroupPermissionCreateBulk is the builder for creating many GroupPermission entities in bulk.
type GroupPermissionCreateBulk struct {
	config
	err      error
	builders []*GroupPermissionCreate
	conflict []sql.ConflictOption
}

// Save creates the GroupPermission entities in the database.
func (gpcb *GroupPermissionCreateBulk) Save(ctx context.Context) ([]*GroupPermission, error) {
	if gpcb.err != nil {
		return nil, gpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(gpcb.builders))
	nodes := make([]*GroupPermission, len(gpcb.builders))
	mutators := make([]Mutator, len(gpcb.builders))
	for i := range gpcb.builders {
		func(i int, root context.Context) {
			builder := gpcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupPermissionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, gpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = gpcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, gpcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, gpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (gpcb *GroupPermissionCreateBulk) SaveX(ctx context.Context) []*GroupPermission {
	v, err := gpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gpcb *GroupPermissionCreateBulk) Exec(ctx context.Context) error {
	_, err := gpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gpcb *GroupPermissionCreateBulk) ExecX(ctx context.Context) {
	if err := gpcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GroupPermission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GroupPermissionUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (gpcb *GroupPermissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *GroupPermissionUpsertBulk {
	gpcb.conflict = opts
	return &GroupPermissionUpsertBulk{
		create: gpcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GroupPermission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (gpcb *GroupPermissionCreateBulk) OnConflictColumns(columns ...string) *GroupPermissionUpsertBulk {
	gpcb.conflict = append(gpcb.conflict, sql.ConflictColumns(columns...))
	return &GroupPermissionUpsertBulk{
		create: gpcb,
	}
}

// GroupPermissionUpsertBulk is the builder for "upsert"-ing
// a bulk of GroupPermission nodes.
type GroupPermissionUpsertBulk struct {
	create *GroupPermissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GroupPermission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GroupPermissionUpsertBulk) UpdateNewValues() *GroupPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GroupPermission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GroupPermissionUpsertBulk) Ignore() *GroupPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GroupPermissionUpsertBulk) DoNothing() *GroupPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GroupPermissionCreateBulk.OnConflict
// documentation for more info.
func (u *GroupPermissionUpsertBulk) Update(set func(*GroupPermissionUpsert)) *GroupPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GroupPermissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetGroupID sets the "group_id" field.
func (u *GroupPermissionUpsertBulk) SetGroupID(v int) *GroupPermissionUpsertBulk {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *GroupPermissionUpsertBulk) UpdateGroupID() *GroupPermissionUpsertBulk {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.UpdateGroupID()
	})
}

// SetPermission sets the "permission" field.
func (u *GroupPermissionUpsertBulk) SetPermission(v string) *GroupPermissionUpsertBulk {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.SetPermission(v)
	})
}

// UpdatePermission sets the "permission" field to the value that was provided on create.
func (u *GroupPermissionUpsertBulk) UpdatePermission() *GroupPermissionUpsertBulk {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.UpdatePermission()
	})
}

// SetAllow sets the "allow" field.
func (u *GroupPermissionUpsertBulk) SetAllow(v bool) *GroupPermissionUpsertBulk {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.SetAllow(v)
	})
}

// UpdateAllow sets the "allow" field to the value that was provided on create.
func (u *GroupPermissionUpsertBulk) UpdateAllow() *GroupPermissionUpsertBulk {
	return u.Update(func(s *GroupPermissionUpsert) {
		s.UpdateAllow()
	})
}

// Exec executes the query.
func (u *GroupPermissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GroupPermissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GroupPermissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GroupPermissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
