// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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

// BillFileQuery is the builder for querying BillFile entities.
type BillFileQuery struct {
	config
	ctx        *QueryContext
	order      []billfile.OrderOption
	inters     []Interceptor
	predicates []predicate.BillFile
	withJobs   *ReconcileJobQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BillFileQuery builder.
func (bfq *BillFileQuery) Where(ps ...predicate.BillFile) *BillFileQuery {
	bfq.predicates = append(bfq.predicates, ps...)
	return bfq
}

// Limit the number of records to be returned by this query.
func (bfq *BillFileQuery) Limit(limit int) *BillFileQuery {
	bfq.ctx.Limit = &limit
	return bfq
}

// Offset to start from.
func (bfq *BillFileQuery) Offset(offset int) *BillFileQuery {
	bfq.ctx.Offset = &offset
	return bfq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (bfq *BillFileQuery) Unique(unique bool) *BillFileQuery {
	bfq.ctx.Unique = &unique
	return bfq
}

// Order specifies how the records should be ordered.
func (bfq *BillFileQuery) Order(o ...billfile.OrderOption) *BillFileQuery {
	bfq.order = append(bfq.order, o...)
	return bfq
}

// QueryJobs chains the current query on the "jobs" edge.
func (bfq *BillFileQuery) QueryJobs() *ReconcileJobQuery {
	query := (&ReconcileJobClient{config: bfq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := bfq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := bfq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(billfile.Table, billfile.FieldID, selector),
			sqlgraph.To(reconcilejob.Table, reconcilejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, billfile.JobsTable, billfile.JobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(bfq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BillFile entity from the query.
// Returns a *NotFoundError when no BillFile was found.
func (bfq *BillFileQuery) First(ctx context.Context) (*BillFile, error) {
	nodes, err := bfq.Limit(1).All(setContextOp(ctx, bfq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{billfile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (bfq *BillFileQuery) FirstX(ctx context.Context) *BillFile {
	node, err := bfq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BillFile ID from the query.
// Returns a *NotFoundError when no BillFile ID was found.
func (bfq *BillFileQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = bfq.Limit(1).IDs(setContextOp(ctx, bfq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{billfile.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (bfq *BillFileQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := bfq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BillFile entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BillFile entity is found.
// Returns a *NotFoundError when no BillFile entities are found.
func (bfq *BillFileQuery) Only(ctx context.Context) (*BillFile, error) {
	nodes, err := bfq.Limit(2).All(setContextOp(ctx, bfq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{billfile.Label}
	default:
		return nil, &NotSingularError{billfile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (bfq *BillFileQuery) OnlyX(ctx context.Context) *BillFile {
	node, err := bfq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BillFile ID in the query.
// Returns a *NotSingularError when more than one BillFile ID is found.
// Returns a *NotFoundError when no entities are found.
func (bfq *BillFileQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = bfq.Limit(2).IDs(setContextOp(ctx, bfq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{billfile.Label}
	default:
		err = &NotSingularError{billfile.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (bfq *BillFileQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := bfq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BillFiles.
func (bfq *BillFileQuery) All(ctx context.Context) ([]*BillFile, error) {
	ctx = setContextOp(ctx, bfq.ctx, "All")
	if err := bfq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BillFile, *BillFileQuery]()
	return withInterceptors[[]*BillFile](ctx, bfq, qr, bfq.inters)
}

// AllX is like All, but panics if an error occurs.
func (bfq *BillFileQuery) AllX(ctx context.Context) []*BillFile {
	nodes, err := bfq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BillFile IDs.
func (bfq *BillFileQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if bfq.ctx.Unique == nil && bfq.path != nil {
		bfq.Unique(true)
	}
	ctx = setContextOp(ctx, bfq.ctx, "IDs")
	if err = bfq.Select(billfile.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (bfq *BillFileQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := bfq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (bfq *BillFileQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, bfq.ctx, "Count")
	if err := bfq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, bfq, querierCount[*BillFileQuery](), bfq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (bfq *BillFileQuery) CountX(ctx context.Context) int {
	count, err := bfq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (bfq *BillFileQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, bfq.ctx, "Exist")
	switch _, err := bfq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (bfq *BillFileQuery) ExistX(ctx context.Context) bool {
	exist, err := bfq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BillFileQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (bfq *BillFileQuery) Clone() *BillFileQuery {
	if bfq == nil {
		return nil
	}
	return &BillFileQuery{
		config:     bfq.config,
		ctx:        bfq.ctx.Clone(),
		order:      append([]billfile.OrderOption{}, bfq.order...),
		inters:     append([]Interceptor{}, bfq.inters...),
		predicates: append([]predicate.BillFile{}, bfq.predicates...),
		withJobs:   bfq.withJobs.Clone(),
		// clone intermediate query.
		sql:  bfq.sql.Clone(),
		path: bfq.path,
	}
}

// WithJobs tells the query-builder to eager-load the nodes that are connected to
// the "jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (bfq *BillFileQuery) WithJobs(opts ...func(*ReconcileJobQuery)) *BillFileQuery {
	query := (&ReconcileJobClient{config: bfq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	bfq.withJobs = query
	return bfq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SourcePath string `json:"source_path,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BillFile.Query().
//		GroupBy(billfile.FieldSourcePath).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (bfq *BillFileQuery) GroupBy(field string, fields ...string) *BillFileGroupBy {
	bfq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BillFileGroupBy{build: bfq}
	grbuild.flds = &bfq.ctx.Fields
	grbuild.label = billfile.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SourcePath string `json:"source_path,omitempty"`
//	}
//
//	client.BillFile.Query().
//		Select(billfile.FieldSourcePath).
//		Scan(ctx, &v)
func (bfq *BillFileQuery) Select(fields ...string) *BillFileSelect {
	bfq.ctx.Fields = append(bfq.ctx.Fields, fields...)
	sbuild := &BillFileSelect{BillFileQuery: bfq}
	sbuild.label = billfile.Label
	sbuild.flds, sbuild.scan = &bfq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BillFileSelect configured with the given aggregations.
func (bfq *BillFileQuery) Aggregate(fns ...AggregateFunc) *BillFileSelect {
	return bfq.Select().Aggregate(fns...)
}

func (bfq *BillFileQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range bfq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, bfq); err != nil {
				return err
			}
		}
	}
	for _, f := range bfq.ctx.Fields {
		if !billfile.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if bfq.path != nil {
		prev, err := bfq.path(ctx)
		if err != nil {
			return err
		}
		bfq.sql = prev
	}
	return nil
}

func (bfq *BillFileQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BillFile, error) {
	var (
		nodes       = []*BillFile{}
		_spec       = bfq.querySpec()
		loadedTypes = [1]bool{
			bfq.withJobs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BillFile).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BillFile{config: bfq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, bfq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := bfq.withJobs; query != nil {
		if err := bfq.loadJobs(ctx, query, nodes,
			func(n *BillFile) { n.Edges.Jobs = []*ReconcileJob{} },
			func(n *BillFile, e *ReconcileJob) { n.Edges.Jobs = append(n.Edges.Jobs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (bfq *BillFileQuery) loadJobs(ctx context.Context, query *ReconcileJobQuery, nodes []*BillFile, init func(*BillFile), assign func(*BillFile, *ReconcileJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*BillFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(reconcilejob.FieldFileID)
	}
	query.Where(predicate.ReconcileJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(billfile.JobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FileID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "file_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (bfq *BillFileQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := bfq.querySpec()
	_spec.Node.Columns = bfq.ctx.Fields
	if len(bfq.ctx.Fields) > 0 {
		_spec.Unique = bfq.ctx.Unique != nil && *bfq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, bfq.driver, _spec)
}

func (bfq *BillFileQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(billfile.Table, billfile.Columns, sqlgraph.NewFieldSpec(billfile.FieldID, field.TypeUUID))
	_spec.From = bfq.sql
	if unique := bfq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if bfq.path != nil {
		_spec.Unique = true
	}
	if fields := bfq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billfile.FieldID)
		for i := range fields {
			if fields[i] != billfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := bfq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := bfq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := bfq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := bfq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (bfq *BillFileQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(bfq.driver.Dialect())
	t1 := builder.Table(billfile.Table)
	columns := bfq.ctx.Fields
	if len(columns) == 0 {
		columns = billfile.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if bfq.sql != nil {
		selector = bfq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if bfq.ctx.Unique != nil && *bfq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range bfq.predicates {
		p(selector)
	}
	for _, p := range bfq.order {
		p(selector)
	}
	if offset := bfq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := bfq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// BillFileGroupBy is the group-by builder for BillFile entities.
type BillFileGroupBy struct {
	selector
	build *BillFileQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (bfgb *BillFileGroupBy) Aggregate(fns ...AggregateFunc) *BillFileGroupBy {
	bfgb.fns = append(bfgb.fns, fns...)
	return bfgb
}

// Scan applies the selector query and scans the result into the given value.
func (bfgb *BillFileGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bfgb.build.ctx, "GroupBy")
	if err := bfgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BillFileQuery, *BillFileGroupBy](ctx, bfgb.build, bfgb, bfgb.build.inters, v)
}

func (bfgb *BillFileGroupBy) sqlScan(ctx context.Context, root *BillFileQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(bfgb.fns))
	for _, fn := range bfgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*bfgb.flds)+len(bfgb.fns))
		for _, f := range *bfgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*bfgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bfgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BillFileSelect is the builder for selecting fields of BillFile entities.
type BillFileSelect struct {
	*BillFileQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (bfs *BillFileSelect) Aggregate(fns ...AggregateFunc) *BillFileSelect {
	bfs.fns = append(bfs.fns, fns...)
	return bfs
}

// Scan applies the selector query and scans the result into the given value.
func (bfs *BillFileSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bfs.ctx, "Select")
	if err := bfs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BillFileQuery, *BillFileSelect](ctx, bfs.BillFileQuery, bfs, bfs.inters, v)
}

func (bfs *BillFileSelect) sqlScan(ctx context.Context, root *BillFileQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(bfs.fns))
	for _, fn := range bfs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*bfs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bfs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
