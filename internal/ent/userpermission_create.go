// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/looplj/authhub/internal/ent/user"
	"github.com/looplj/authhub/internal/ent/userpermission"
)

// UserPermissionCreate is the builder for creating a UserPermission entity.
type UserPermissionCreate struct {
	config
	mutation *UserPermissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (upc *UserPermissionCreate) SetUserID(i int) *UserPermissionCreate {
	upc.mutation.SetUserID(i)
	return upc
}

// SetPermission sets the "permission" field.
func (upc *UserPermissionCreate) SetPermission(s string) *UserPermissionCreate {
	upc.mutation.SetPermission(s)
	return upc
}

// SetAllow sets the "allow" field.
func (upc *UserPermissionCreate) SetAllow(b bool) *UserPermissionCreate {
	upc.mutation.SetAllow(b)
	return upc
}

// SetUser sets the "user" edge to the User entity.
func (upc *UserPermissionCreate) SetUser(u *User) *UserPermissionCreate {
	return upc.SetUserID(u.ID)
}

// Mutation returns the UserPermissionMutation object of the builder.
func (upc *UserPermissionCreate) Mutation() *UserPermissionMutation {
	return upc.mutation
}

// Save creates the UserPermission in the database.
func (upc *UserPermissionCreate) Save(ctx context.Context) (*UserPermission, error) {
	return withHooks(ctx, upc.sqlSave, upc.mutation, upc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (upc *UserPermissionCreate) SaveX(ctx context.Context) *UserPermission {
	v, err := upc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (upc *UserPermissionCreate) Exec(ctx context.Context) error {
	_, err := upc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (upc *UserPermissionCreate) ExecX(ctx context.Context) {
	if err := upc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (upc *UserPermissionCreate) check() error {
	if _, ok := upc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserPermission.user_id"`)}
	}
	if _, ok := upc.mutation.Permission(); !ok {
		return &ValidationError{Name: "permission", err: errors.New(`ent: missing required field "UserPermission.permission"`)}
	}
	if _, ok := upc.mutation.Allow(); !ok {
		return &ValidationError{Name: "allow", err: errors.New(`ent: missing required field "UserPermission.allow"`)}
	}
	if len(upc.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "UserPermission.user"`)}
	}
	return nil
}

func (upc *UserPermissionCreate) sqlSave(ctx context.Context) (*UserPermission, error) {
	if err := upc.check(); err != nil {
		return nil, err
	}
	_node, _spec := upc.createSpec()
	if err := sqlgraph.CreateNode(ctx, upc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	upc.mutation.id = &_node.ID
	upc.mutation.done = true
	return _node, nil
}

func (upc *UserPermissionCreate) createSpec() (*UserPermission, *sqlgraph.CreateSpec) {
	var (
		_node = &UserPermission{config: upc.config}
		_spec = sqlgraph.NewCreateSpec(userpermission.Table, sqlgraph.NewFieldSpec(userpermission.FieldID, field.TypeInt))
	)
	_spec.OnConflict = upc.conflict
	if value, ok := upc.mutation.Permission(); ok {
		_spec.SetField(userpermission.FieldPermission, field.TypeString, value)
		_node.Permission = value
	}
	if value, ok := upc.mutation.Allow(); ok {
		_spec.SetField(userpermission.FieldAllow, field.TypeBool, value)
		_node.Allow = value
	}
	if nodes := upc.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   userpermission.UserTable,
			Columns: []string{userpermission.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserPermission.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserPermissionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (upc *UserPermissionCreate) OnConflict(opts ...sql.ConflictOption) *UserPermissionUpsertOne {
	upc.conflict = opts
	return &UserPermissionUpsertOne{
		create: upc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserPermission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (upc *UserPermissionCreate) OnConflictColumns(columns ...string) *UserPermissionUpsertOne {
	upc.conflict = append(upc.conflict, sql.ConflictColumns(columns...))
	return &UserPermissionUpsertOne{
		create: upc,
	}
}

type (
	// UserPermissionUpsertOne is the builder for "upsert"-ing
	//  one UserPermission node.
	UserPermissionUpsertOne struct {
		create *UserPermissionCreate
	}

	// UserPermissionUpsert is the "OnConflict" setter.
	UserPermissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UserPermissionUpsert) SetUserID(v int) *UserPermissionUpsert {
	u.Set(userpermission.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserPermissionUpsert) UpdateUserID() *UserPermissionUpsert {
	u.SetExcluded(userpermission.FieldUserID)
	return u
}

// SetPermission sets the "permission" field.
func (u *UserPermissionUpsert) SetPermission(v string) *UserPermissionUpsert {
	u.Set(userpermission.FieldPermission, v)
	return u
}

// UpdatePermission sets the "permission" field to the value that was provided on create.
func (u *UserPermissionUpsert) UpdatePermission() *UserPermissionUpsert {
	u.SetExcluded(userpermission.FieldPermission)
	return u
}

// SetAllow sets the "allow" field.
func (u *UserPermissionUpsert) SetAllow(v bool) *UserPermissionUpsert {
	u.Set(userpermission.FieldAllow, v)
	return u
}

// UpdateAllow sets the "allow" field to the value that was provided on create.
func (u *UserPermissionUpsert) UpdateAllow() *UserPermissionUpsert {
	u.SetExcluded(userpermission.FieldAllow)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UserPermission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserPermissionUpsertOne) UpdateNewValues() *UserPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserPermission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserPermissionUpsertOne) Ignore() *UserPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserPermissionUpsertOne) DoNothing() *UserPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserPermissionCreate.OnConflict
// documentation for more info.
func (u *UserPermissionUpsertOne) Update(set func(*UserPermissionUpsert)) *UserPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserPermissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserPermissionUpsertOne) SetUserID(v int) *UserPermissionUpsertOne {
	return u.Update(func(s *UserPermissionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserPermissionUpsertOne) UpdateUserID() *UserPermissionUpsertOne {
	return u.Update(func(s *UserPermissionUpsert) {
		s.UpdateUserID()
	})
}

// SetPermission sets the "permission" field.
func (u *UserPermissionUpsertOne) SetPermission(v string) *UserPermissionUpsertOne {
	return u.Update(func(s *UserPermissionUpsert) {
		s.SetPermission(v)
	})
}

// UpdatePermission sets the "permission" field to the value that was provided on create.
func (u *UserPermissionUpsertOne) UpdatePermission() *UserPermissionUpsertOne {
	return u.Update(func(s *UserPermissionUpsert) {
		s.UpdatePermission()
	})
}

// SetAllow sets the "allow" field.
func (u *UserPermissionUpsertOne) SetAllow(v bool) *UserPermissionUpsertOne {
	return u.Update(func(s *UserPermissionUpsert) {
		s.SetAllow(v)
	})
}

// UpdateAllow sets the "allow" field to the value that was provided on create.
func (u *UserPermissionUpsertOne) UpdateAllow() *UserPermissionUpsertOne {
	return u.Update(func(s *UserPermissionUpsert) {
		s.UpdateAllow()
	})
}

// Exec executes the query.
func (u *UserPermissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserPermissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserPermissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserPermissionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserPermissionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserPermissionCreateBulk is the builder for creating many UserPermission entities in bulk.
type UserPermissionCreateBulk struct {
	config
	err      error
	builders []*UserPermissionCreate
	conflict []sql.ConflictOption
}

// Save creates the UserPermission entities in the database.
func (upcb *UserPermissionCreateBulk) Save(ctx context.Context) ([]*UserPermission, error) {
	if upcb.err != nil {
		return nil, upcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(upcb.builders))
	nodes := make([]*UserPermission, len(upcb.builders))
	mutators := make([]Mutator, len(upcb.builders))
	for i := range upcb.builders {
		func(i int, root context.Context) {
			builder := upcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserPermissionMutation)
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
					_, err = mutators[i+1].Mutate(root, upcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = upcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, upcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, upcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (upcb *UserPermissionCreateBulk) SaveX(ctx context.Context) []*UserPermission {
	v, err := upcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (upcb *UserPermissionCreateBulk) Exec(ctx context.Context) error {
	_, err := upcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (upcb *UserPermissionCreateBulk) ExecX(ctx context.Context) {
	if err := upcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserPermission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserPermissionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (upcb *UserPermissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserPermissionUpsertBulk {
	upcb.conflict = opts
	return &UserPermissionUpsertBulk{
		create: upcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserPermission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (upcb *UserPermissionCreateBulk) OnConflictColumns(columns ...string) *UserPermissionUpsertBulk {
	upcb.conflict = append(upcb.conflict, sql.ConflictColumns(columns...))
	return &UserPermissionUpsertBulk{
		create: upcb,
	}
}

// UserPermissionUpsertBulk is the builder for "upsert"-ing
// a bulk of UserPermission nodes.
type UserPermissionUpsertBulk struct {
	create *UserPermissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserPermission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserPermissionUpsertBulk) UpdateNewValues() *UserPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserPermission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserPermissionUpsertBulk) Ignore() *UserPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserPermissionUpsertBulk) DoNothing() *UserPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserPermissionCreateBulk.OnConflict
// documentation for more info.
func (u *UserPermissionUpsertBulk) Update(set func(*UserPermissionUpsert)) *UserPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserPermissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserPermissionUpsertBulk) SetUserID(v int) *UserPermissionUpsertBulk {
	return u.Update(func(s *UserPermissionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserPermissionUpsertBulk) UpdateUserID() *UserPermissionUpsertBulk {
	return u.Update(func(s *UserPermissionUpsert) {
		s.UpdateUserID()
	})
}

// SetPermission sets the "permission" field.
func (u *UserPermissionUpsertBulk) SetPermission(v string) *UserPermissionUpsertBulk {
	return u.Update(func(s *UserPermissionUpsert) {
		s.SetPermission(v)
	})
}

// UpdatePermission sets the "permission" field to the value that was provided on create.
func (u *UserPermissionUpsertBulk) UpdatePermission() *UserPermissionUpsertBulk {
	return u.Update(func(s *UserPermissionUpsert) {
		s.UpdatePermission()
	})
}

// SetAllow sets the "allow" field.
func (u *UserPermissionUpsertBulk) SetAllow(v bool) *UserPermissionUpsertBulk {
	return u.Update(func(s *UserPermissionUpsert) {
		s.SetAllow(v)
	})
}

// UpdateAllow sets the "allow" field to the value that was provided on create.
func (u *UserPermissionUpsertBulk) UpdateAllow() *UserPermissionUpsertBulk {
	return u.Update(func(s *UserPermissionUpsert) {
		s.UpdateAllow()
	})
}

// Exec executes the query.
func (u *UserPermissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserPermissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserPermissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserPermissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
