// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/looplj/authhub/internal/ent/group"
	"github.com/looplj/authhub/internal/ent/grouppermission"
	"github.com/looplj/authhub/internal/ent/predicate"
)

// GroupPermissionQuery is the builder for querying GroupPermission entities.
type GroupPermissionQuery struct {
	config
	ctx        *QueryContext
	order      []grouppermission.OrderOption
	inters     []Interceptor
	predicates []predicate.GroupPermission
	withGroup  *GroupQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GroupPermissionQuery builder.
func (gpq *GroupPermissionQuery) Where(ps ...predicate.GroupPermission) *GroupPermissionQuery {
	gpq.predicates = append(gpq.predicates, ps...)
	return gpq
}

// Limit the number of records to be returned by this query.
func (gpq *GroupPermissionQuery) Limit(limit int) *GroupPermissionQuery {
	gpq.ctx.Limit = &limit
	return gpq
}

// Offset to start from.
func (gpq *GroupPermissionQuery) Offset(offset int) *GroupPermissionQuery {
	gpq.ctx.Offset = &offset
	return gpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (gpq *GroupPermissionQuery) Unique(unique bool) *GroupPermissionQuery {
	gpq.ctx.Unique = &unique
	return gpq
}

// Order specifies how the records should be ordered.
func (gpq *GroupPermissionQuery) Order(o ...grouppermission.OrderOption) *GroupPermissionQuery {
	gpq.order = append(gpq.order, o...)
	return gpq
}

// QueryGroup chains the current query on the "group" edge.
func (gpq *GroupPermissionQuery) QueryGroup() *GroupQuery {
	query := (&GroupClient{config: gpq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := gpq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := gpq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(grouppermission.Table, grouppermission.FieldID, selector),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, grouppermission.GroupTable, grouppermission.GroupColumn),
		)
		fromU = sqlgraph.SetNeighbors(gpq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first GroupPermission entity from the query.
// Returns a *NotFoundError when no GroupPermission was found.
func (gpq *GroupPermissionQuery) First(ctx context.Context) (*GroupPermission, error) {
	nodes, err := gpq.Limit(1).All(setContextOp(ctx, gpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{grouppermission.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (gpq *GroupPermissionQuery) FirstX(ctx context.Context) *GroupPermission {
	node, err := gpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first GroupPermission ID from the query.
// Returns a *NotFoundError when no GroupPermission ID was found.
func (gpq *GroupPermissionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = gpq.Limit(1).IDs(setContextOp(ctx, gpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{grouppermission.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (gpq *GroupPermissionQuery) FirstIDX(ctx context.Context) int {
	id, err := gpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single GroupPermission entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one GroupPermission entity is found.
// Returns a *NotFoundError when no GroupPermission entities are found.
func (gpq *GroupPermissionQuery) Only(ctx context.Context) (*GroupPermission, error) {
	nodes, err := gpq.Limit(2).All(setContextOp(ctx, gpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{grouppermission.Label}
	default:
		return nil, &NotSingularError{grouppermission.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (gpq *GroupPermissionQuery) OnlyX(ctx context.Context) *GroupPermission {
	node, err := gpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only GroupPermission ID in the query.
// Returns a *NotSingularError when more than one GroupPermission ID is found.
// Returns a *NotFoundError when no entities are found.
func (gpq *GroupPermissionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = gpq.Limit(2).IDs(setContextOp(ctx, gpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{grouppermission.Label}
	default:
		err = &NotSingularError{grouppermission.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (gpq *GroupPermissionQuery) OnlyIDX(ctx context.Context) int {
	id, err := gpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of GroupPermissions.
func (gpq *GroupPermissionQuery) All(ctx context.Context) ([]*GroupPermission, error) {
	ctx = setContextOp(ctx, gpq.ctx, ent.OpQueryAll)
	if err := gpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*GroupPermission, *GroupPermissionQuery]()
	return withInterceptors[[]*GroupPermission](ctx, gpq, qr, gpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (gpq *GroupPermissionQuery) AllX(ctx context.Context) []*GroupPermission {
	nodes, err := gpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of GroupPermission IDs.
func (gpq *GroupPermissionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if gpq.ctx.Unique == nil && gpq.path != nil {
		gpq.Unique(true)
	}
	ctx = setContextOp(ctx, gpq.ctx, ent.OpQueryIDs)
	if err = gpq.Select(grouppermission.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (gpq *GroupPermissionQuery) IDsX(ctx context.Context) []int {
	ids, err := gpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (gpq *GroupPermissionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, gpq.ctx, ent.OpQueryCount)
	if err := gpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, gpq, querierCount[*GroupPermissionQuery](), gpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (gpq *GroupPermissionQuery) CountX(ctx context.Context) int {
	count, err := gpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (gpq *GroupPermissionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, gpq.ctx, ent.OpQueryExist)
	switch _, err := gpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (gpq *GroupPermissionQuery) ExistX(ctx context.Context) bool {
	exist, err := gpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GroupPermissionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (gpq *GroupPermissionQuery) Clone() *GroupPermissionQuery {
	if gpq == nil {
		return nil
	}
	return &GroupPermissionQuery{
		config:     gpq.config,
		ctx:        gpq.ctx.Clone(),
		order:      append([]grouppermission.OrderOption{}, gpq.order...),
		inters:     append([]Interceptor{}, gpq.inters...),
		predicates: append([]predicate.GroupPermission{}, gpq.predicates...),
		withGroup:  gpq.withGroup.Clone(),
		// clone intermediate query.
		sql:  gpq.sql.Clone(),
		path: gpq.path,
	}
}

// WithGroup tells the query-builder to eager-load the nodes that are connected to
// the "group" edge. The optional arguments are used to configure the query builder of the edge.
func (gpq *GroupPermissionQuery) WithGroup(opts ...func(*GroupQuery)) *GroupPermissionQuery {
	query := (&GroupClient{config: gpq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	gpq.withGroup = query
	return gpq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		GroupID int `json:"group_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.GroupPermission.Query().
//		GroupBy(grouppermission.FieldGroupID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (gpq *GroupPermissionQuery) GroupBy(field string, fields ...string) *GroupPermissionGroupBy {
	gpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GroupPermissionGroupBy{build: gpq}
	grbuild.flds = &gpq.ctx.Fields
	grbuild.label = grouppermission.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		GroupID int `json:"group_id,omitempty"`
//	}
//
//	client.GroupPermission.Query().
//		Select(grouppermission.FieldGroupID).
//		Scan(ctx, &v)
func (gpq *GroupPermissionQuery) Select(fields ...string) *GroupPermissionSelect {
	gpq.ctx.Fields = append(gpq.ctx.Fields, fields...)
	sbuild := &GroupPermissionSelect{GroupPermissionQuery: gpq}
	sbuild.label = grouppermission.Label
	sbuild.flds, sbuild.scan = &gpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GroupPermissionSelect configured with the given aggregations.
func (gpq *GroupPermissionQuery) Aggregate(fns ...AggregateFunc) *GroupPermissionSelect {
	return gpq.Select().Aggregate(fns...)
}

func (gpq *GroupPermissionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range gpq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, gpq); err != nil {
				return err
			}
		}
	}
	for _, f := range gpq.ctx.Fields {
		if !grouppermission.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if gpq.path != nil {
		prev, err := gpq.path(ctx)
		if err != nil {
			return err
		}
		gpq.sql = prev
	}
	return nil
}

func (gpq *GroupPermissionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*GroupPermission, error) {
	var (
		nodes       = []*GroupPermission{}
		_spec       = gpq.querySpec()
		loadedTypes = [1]bool{
			gpq.withGroup != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*GroupPermission).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &GroupPermission{config: gpq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, gpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := gpq.withGroup; query != nil {
		if err := gpq.loadGroup(ctx, query, nodes, nil,
			func(n *GroupPermission, e *Group) { n.Edges.Group = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (gpq *GroupPermissionQuery) loadGroup(ctx context.Context, query *GroupQuery, nodes []*GroupPermission, init func(*GroupPermission), assign func(*GroupPermission, *Group)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*GroupPermission)
	for i := range nodes {
		fk := nodes[i].GroupID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(group.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "group_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (gpq *GroupPermissionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := gpq.querySpec()
	_spec.Node.Columns = gpq.ctx.Fields
	if len(gpq.ctx.Fields) > 0 {
		_spec.Unique = gpq.ctx.Unique != nil && *gpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, gpq.driver, _spec)
}

func (gpq *GroupPermissionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(grouppermission.Table, grouppermission.Columns, sqlgraph.NewFieldSpec(grouppermission.FieldID, field.TypeInt))
	_spec.From = gpq.sql
	if unique := gpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if gpq.path != nil {
		_spec.Unique = true
	}
	if fields := gpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grouppermission.FieldID)
		for i := range fields {
			if fields[i] != grouppermission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if gpq.withGroup != nil {
			_spec.Node.AddColumnOnce(grouppermission.FieldGroupID)
		}
	}
	if ps := gpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := gpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := gpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := gpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (gpq *GroupPermissionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(gpq.driver.Dialect())
	t1 := builder.Table(grouppermission.Table)
	columns := gpq.ctx.Fields
	if len(columns) == 0 {
		columns = grouppermission.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if gpq.sql != nil {
		selector = gpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if gpq.ctx.Unique != nil && *gpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range gpq.predicates {
		p(selector)
	}
	for _, p := range gpq.order {
		p(selector)
	}
	if offset := gpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := gpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// GroupPermissionGroupBy is the group-by builder for GroupPermission entities.
type GroupPermissionGroupBy struct {
	selector
	build *GroupPermissionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (gpgb *GroupPermissionGroupBy) Aggregate(fns ...AggregateFunc) *GroupPermissionGroupBy {
	gpgb.fns = append(gpgb.fns, fns...)
	return gpgb
}

// Scan applies the selector query and scans the result into the given value.
func (gpgb *GroupPermissionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, gpgb.build.ctx, ent.OpQueryGroupBy)
	if err := gpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GroupPermissionQuery, *GroupPermissionGroupBy](ctx, gpgb.build, gpgb, gpgb.build.inters, v)
}

func (gpgb *GroupPermissionGroupBy) sqlScan(ctx context.Context, root *GroupPermissionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(gpgb.fns))
	for _, fn := range gpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*gpgb.flds)+len(gpgb.fns))
		for _, f := range *gpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*gpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := gpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// GroupPermissionSelect is the builder for selecting fields of GroupPermission entities.
type GroupPermissionSelect struct {
	*GroupPermissionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (gps *GroupPermissionSelect) Aggregate(fns ...AggregateFunc) *GroupPermissionSelect {
	gps.fns = append(gps.fns, fns...)
	return gps
}

// Scan applies the selector query and scans the result into the given value.
func (gps *GroupPermissionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, gps.ctx, ent.OpQuerySelect)
	if err := gps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GroupPermissionQuery, *GroupPermissionSelect](ctx, gps.GroupPermissionQuery, gps, gps.inters, v)
}

func (gps *GroupPermissionSelect) sqlScan(ctx context.Context, root *GroupPermissionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(gps.fns))
	for _, fn := range gps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*gps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := gps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
