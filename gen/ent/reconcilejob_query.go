// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/utility-bills/gen/ent/billfile"
	"github.com/joseph-ayodele/utility-bills/gen/ent/predicate"
	"github.com/joseph-ayodele/utility-bills/gen/ent/reconcilejob"
)

// ReconcileJobQuery is the builder for querying ReconcileJob entities.
type ReconcileJobQuery struct {
	config
	ctx        *QueryContext
	order      []reconcilejob.OrderOption
	inters     []Interceptor
	predicates []predicate.ReconcileJob
	withFile   *BillFileQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReconcileJobQuery builder.
func (rjq *ReconcileJobQuery) Where(ps ...predicate.ReconcileJob) *ReconcileJobQuery {
	rjq.predicates = append(rjq.predicates, ps...)
	return rjq
}

// Limit the number of records to be returned by this query.
func (rjq *ReconcileJobQuery) Limit(limit int) *ReconcileJobQuery {
	rjq.ctx.Limit = &limit
	return rjq
}

// Offset to start from.
func (rjq *ReconcileJobQuery) Offset(offset int) *ReconcileJobQuery {
	rjq.ctx.Offset = &offset
	return rjq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (rjq *ReconcileJobQuery) Unique(unique bool) *ReconcileJobQuery {
	rjq.ctx.Unique = &unique
	return rjq
}

// Order specifies how the records should be ordered.
func (rjq *ReconcileJobQuery) Order(o ...reconcilejob.OrderOption) *ReconcileJobQuery {
	rjq.order = append(rjq.order, o...)
	return rjq
}

// QueryFile chains the current query on the "file" edge.
func (rjq *ReconcileJobQuery) QueryFile() *BillFileQuery {
	query := (&BillFileClient{config: rjq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := rjq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := rjq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reconcilejob.Table, reconcilejob.FieldID, selector),
			sqlgraph.To(billfile.Table, billfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reconcilejob.FileTable, reconcilejob.FileColumn),
		)
		fromU = sqlgraph.SetNeighbors(rjq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ReconcileJob entity from the query.
// Returns a *NotFoundError when no ReconcileJob was found.
func (rjq *ReconcileJobQuery) First(ctx context.Context) (*ReconcileJob, error) {
	nodes, err := rjq.Limit(1).All(setContextOp(ctx, rjq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{reconcilejob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (rjq *ReconcileJobQuery) FirstX(ctx context.Context) *ReconcileJob {
	node, err := rjq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReconcileJob ID from the query.
// Returns a *NotFoundError when no ReconcileJob ID was found.
func (rjq *ReconcileJobQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = rjq.Limit(1).IDs(setContextOp(ctx, rjq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{reconcilejob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (rjq *ReconcileJobQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := rjq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReconcileJob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReconcileJob entity is found.
// Returns a *NotFoundError when no ReconcileJob entities are found.
func (rjq *ReconcileJobQuery) Only(ctx context.Context) (*ReconcileJob, error) {
	nodes, err := rjq.Limit(2).All(setContextOp(ctx, rjq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{reconcilejob.Label}
	default:
		return nil, &NotSingularError{reconcilejob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (rjq *ReconcileJobQuery) OnlyX(ctx context.Context) *ReconcileJob {
	node, err := rjq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReconcileJob ID in the query.
// Returns a *NotSingularError when more than one ReconcileJob ID is found.
// Returns a *NotFoundError when no entities are found.
func (rjq *ReconcileJobQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = rjq.Limit(2).IDs(setContextOp(ctx, rjq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{reconcilejob.Label}
	default:
		err = &NotSingularError{reconcilejob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (rjq *ReconcileJobQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := rjq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReconcileJobs.
func (rjq *ReconcileJobQuery) All(ctx context.Context) ([]*ReconcileJob, error) {
	ctx = setContextOp(ctx, rjq.ctx, "All")
	if err := rjq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReconcileJob, *ReconcileJobQuery]()
	return withInterceptors[[]*ReconcileJob](ctx, rjq, qr, rjq.inters)
}

// AllX is like All, but panics if an error occurs.
func (rjq *ReconcileJobQuery) AllX(ctx context.Context) []*ReconcileJob {
	nodes, err := rjq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReconcileJob IDs.
func (rjq *ReconcileJobQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if rjq.ctx.Unique == nil && rjq.path != nil {
		rjq.Unique(true)
	}
	ctx = setContextOp(ctx, rjq.ctx, "IDs")
	if err = rjq.Select(reconcilejob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (rjq *ReconcileJobQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := rjq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (rjq *ReconcileJobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, rjq.ctx, "Count")
	if err := rjq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, rjq, querierCount[*ReconcileJobQuery](), rjq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (rjq *ReconcileJobQuery) CountX(ctx context.Context) int {
	count, err := rjq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (rjq *ReconcileJobQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, rjq.ctx, "Exist")
	switch _, err := rjq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (rjq *ReconcileJobQuery) ExistX(ctx context.Context) bool {
	exist, err := rjq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReconcileJobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (rjq *ReconcileJobQuery) Clone() *ReconcileJobQuery {
	if rjq == nil {
		return nil
	}
	return &ReconcileJobQuery{
		config:     rjq.config,
		ctx:        rjq.ctx.Clone(),
		order:      append([]reconcilejob.OrderOption{}, rjq.order...),
		inters:     append([]Interceptor{}, rjq.inters...),
		predicates: append([]predicate.ReconcileJob{}, rjq.predicates...),
		withFile:   rjq.withFile.Clone(),
		// clone intermediate query.
		sql:  rjq.sql.Clone(),
		path: rjq.path,
	}
}

// WithFile tells the query-builder to eager-load the nodes that are connected to
// the "file" edge. The optional arguments are used to configure the query builder of the edge.
func (rjq *ReconcileJobQuery) WithFile(opts ...func(*BillFileQuery)) *ReconcileJobQuery {
	query := (&BillFileClient{config: rjq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	rjq.withFile = query
	return rjq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FileID uuid.UUID `json:"file_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ReconcileJob.Query().
//		GroupBy(reconcilejob.FieldFileID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (rjq *ReconcileJobQuery) GroupBy(field string, fields ...string) *ReconcileJobGroupBy {
	rjq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReconcileJobGroupBy{build: rjq}
	grbuild.flds = &rjq.ctx.Fields
	grbuild.label = reconcilejob.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FileID uuid.UUID `json:"file_id,omitempty"`
//	}
//
//	client.ReconcileJob.Query().
//		Select(reconcilejob.FieldFileID).
//		Scan(ctx, &v)
func (rjq *ReconcileJobQuery) Select(fields ...string) *ReconcileJobSelect {
	rjq.ctx.Fields = append(rjq.ctx.Fields, fields...)
	sbuild := &ReconcileJobSelect{ReconcileJobQuery: rjq}
	sbuild.label = reconcilejob.Label
	sbuild.flds, sbuild.scan = &rjq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReconcileJobSelect configured with the given aggregations.
func (rjq *ReconcileJobQuery) Aggregate(fns ...AggregateFunc) *ReconcileJobSelect {
	return rjq.Select().Aggregate(fns...)
}

func (rjq *ReconcileJobQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range rjq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, rjq); err != nil {
				return err
			}
		}
	}
	for _, f := range rjq.ctx.Fields {
		if !reconcilejob.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if rjq.path != nil {
		prev, err := rjq.path(ctx)
		if err != nil {
			return err
		}
		rjq.sql = prev
	}
	return nil
}

func (rjq *ReconcileJobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReconcileJob, error) {
	var (
		nodes       = []*ReconcileJob{}
		_spec       = rjq.querySpec()
		loadedTypes = [1]bool{
			rjq.withFile != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReconcileJob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReconcileJob{config: rjq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, rjq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := rjq.withFile; query != nil {
		if err := rjq.loadFile(ctx, query, nodes, nil,
			func(n *ReconcileJob, e *BillFile) { n.Edges.File = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (rjq *ReconcileJobQuery) loadFile(ctx context.Context, query *BillFileQuery, nodes []*ReconcileJob, init func(*ReconcileJob), assign func(*ReconcileJob, *BillFile)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ReconcileJob)
	for i := range nodes {
		fk := nodes[i].FileID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(billfile.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "file_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (rjq *ReconcileJobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := rjq.querySpec()
	_spec.Node.Columns = rjq.ctx.Fields
	if len(rjq.ctx.Fields) > 0 {
		_spec.Unique = rjq.ctx.Unique != nil && *rjq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, rjq.driver, _spec)
}

func (rjq *ReconcileJobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(reconcilejob.Table, reconcilejob.Columns, sqlgraph.NewFieldSpec(reconcilejob.FieldID, field.TypeUUID))
	_spec.From = rjq.sql
	if unique := rjq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if rjq.path != nil {
		_spec.Unique = true
	}
	if fields := rjq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reconcilejob.FieldID)
		for i := range fields {
			if fields[i] != reconcilejob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if rjq.withFile != nil {
			_spec.Node.AddColumnOnce(reconcilejob.FieldFileID)
		}
	}
	if ps := rjq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := rjq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := rjq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := rjq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (rjq *ReconcileJobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(rjq.driver.Dialect())
	t1 := builder.Table(reconcilejob.Table)
	columns := rjq.ctx.Fields
	if len(columns) == 0 {
		columns = reconcilejob.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if rjq.sql != nil {
		selector = rjq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if rjq.ctx.Unique != nil && *rjq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range rjq.predicates {
		p(selector)
	}
	for _, p := range rjq.order {
		p(selector)
	}
	if offset := rjq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := rjq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ReconcileJobGroupBy is the group-by builder for ReconcileJob entities.
type ReconcileJobGroupBy struct {
	selector
	build *ReconcileJobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (rjgb *ReconcileJobGroupBy) Aggregate(fns ...AggregateFunc) *ReconcileJobGroupBy {
	rjgb.fns = append(rjgb.fns, fns...)
	return rjgb
}

// Scan applies the selector query and scans the result into the given value.
func (rjgb *ReconcileJobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rjgb.build.ctx, "GroupBy")
	if err := rjgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReconcileJobQuery, *ReconcileJobGroupBy](ctx, rjgb.build, rjgb, rjgb.build.inters, v)
}

func (rjgb *ReconcileJobGroupBy) sqlScan(ctx context.Context, root *ReconcileJobQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(rjgb.fns))
	for _, fn := range rjgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*rjgb.flds)+len(rjgb.fns))
		for _, f := range *rjgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*rjgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rjgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ReconcileJobSelect is the builder for selecting fields of ReconcileJob entities.
type ReconcileJobSelect struct {
	*ReconcileJobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (rjs *ReconcileJobSelect) Aggregate(fns ...AggregateFunc) *ReconcileJobSelect {
	rjs.fns = append(rjs.fns, fns...)
	return rjs
}

// Scan applies the selector query and scans the result into the given value.
func (rjs *ReconcileJobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rjs.ctx, "Select")
	if err := rjs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReconcileJobQuery, *ReconcileJobSelect](ctx, rjs.ReconcileJobQuery, rjs, rjs.inters, v)
}

func (rjs *ReconcileJobSelect) sqlScan(ctx context.Context, root *ReconcileJobQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(rjs.fns))
	for _, fn := range rjs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*rjs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rjs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
