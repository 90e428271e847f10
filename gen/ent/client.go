// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/utility-bills/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/joseph-ayodele/utility-bills/gen/ent/billfile"
	"github.com/joseph-ayodele/utility-bills/gen/ent/reconcilejob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BillFile is the client for interacting with the BillFile builders.
	BillFile *BillFileClient
	// ReconcileJob is the client for interacting with the ReconcileJob builders.
	ReconcileJob *ReconcileJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BillFile = NewBillFileClient(c.config)
	c.ReconcileJob = NewReconcileJobClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		BillFile:     NewBillFileClient(cfg),
		ReconcileJob: NewReconcileJobClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		BillFile:     NewBillFileClient(cfg),
		ReconcileJob: NewReconcileJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BillFile.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.BillFile.Use(hooks...)
	c.ReconcileJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BillFile.Intercept(interceptors...)
	c.ReconcileJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BillFileMutation:
		return c.BillFile.mutate(ctx, m)
	case *ReconcileJobMutation:
		return c.ReconcileJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BillFileClient is a client for the BillFile schema.
type BillFileClient struct {
	config
}

// NewBillFileClient returns a client for the BillFile from the given config.
func NewBillFileClient(c config) *BillFileClient {
	return &BillFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `billfile.Hooks(f(g(h())))`.
func (c *BillFileClient) Use(hooks ...Hook) {
	c.hooks.BillFile = append(c.hooks.BillFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `billfile.Intercept(f(g(h())))`.
func (c *BillFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.BillFile = append(c.inters.BillFile, interceptors...)
}

// Create returns a builder for creating a BillFile entity.
func (c *BillFileClient) Create() *BillFileCreate {
	mutation := newBillFileMutation(c.config, OpCreate)
	return &BillFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BillFile entities.
func (c *BillFileClient) CreateBulk(builders ...*BillFileCreate) *BillFileCreateBulk {
	return &BillFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BillFileClient) MapCreateBulk(slice any, setFunc func(*BillFileCreate, int)) *BillFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BillFileCreateBulk{err: fmt.Errorf("calling to BillFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BillFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BillFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BillFile.
func (c *BillFileClient) Update() *BillFileUpdate {
	mutation := newBillFileMutation(c.config, OpUpdate)
	return &BillFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BillFileClient) UpdateOne(bf *BillFile) *BillFileUpdateOne {
	mutation := newBillFileMutation(c.config, OpUpdateOne, withBillFile(bf))
	return &BillFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BillFileClient) UpdateOneID(id uuid.UUID) *BillFileUpdateOne {
	mutation := newBillFileMutation(c.config, OpUpdateOne, withBillFileID(id))
	return &BillFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BillFile.
func (c *BillFileClient) Delete() *BillFileDelete {
	mutation := newBillFileMutation(c.config, OpDelete)
	return &BillFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BillFileClient) DeleteOne(bf *BillFile) *BillFileDeleteOne {
	return c.DeleteOneID(bf.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BillFileClient) DeleteOneID(id uuid.UUID) *BillFileDeleteOne {
	builder := c.Delete().Where(billfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BillFileDeleteOne{builder}
}

// Query returns a query builder for BillFile.
func (c *BillFileClient) Query() *BillFileQuery {
	return &BillFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBillFile},
		inters: c.Interceptors(),
	}
}

// Get returns a BillFile entity by its id.
func (c *BillFileClient) Get(ctx context.Context, id uuid.UUID) (*BillFile, error) {
	return c.Query().Where(billfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BillFileClient) GetX(ctx context.Context, id uuid.UUID) *BillFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a BillFile.
func (c *BillFileClient) QueryJobs(bf *BillFile) *ReconcileJobQuery {
	query := (&ReconcileJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := bf.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(billfile.Table, billfile.FieldID, id),
			sqlgraph.To(reconcilejob.Table, reconcilejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, billfile.JobsTable, billfile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(bf.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BillFileClient) Hooks() []Hook {
	return c.hooks.BillFile
}

// Interceptors returns the client interceptors.
func (c *BillFileClient) Interceptors() []Interceptor {
	return c.inters.BillFile
}

func (c *BillFileClient) mutate(ctx context.Context, m *BillFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BillFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BillFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BillFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BillFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BillFile mutation op: %q", m.Op())
	}
}

// ReconcileJobClient is a client for the ReconcileJob schema.
type ReconcileJobClient struct {
	config
}

// NewReconcileJobClient returns a client for the ReconcileJob from the given config.
func NewReconcileJobClient(c config) *ReconcileJobClient {
	return &ReconcileJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reconcilejob.Hooks(f(g(h())))`.
func (c *ReconcileJobClient) Use(hooks ...Hook) {
	c.hooks.ReconcileJob = append(c.hooks.ReconcileJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reconcilejob.Intercept(f(g(h())))`.
func (c *ReconcileJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReconcileJob = append(c.inters.ReconcileJob, interceptors...)
}

// Create returns a builder for creating a ReconcileJob entity.
func (c *ReconcileJobClient) Create() *ReconcileJobCreate {
	mutation := newReconcileJobMutation(c.config, OpCreate)
	return &ReconcileJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReconcileJob entities.
func (c *ReconcileJobClient) CreateBulk(builders ...*ReconcileJobCreate) *ReconcileJobCreateBulk {
	return &ReconcileJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReconcileJobClient) MapCreateBulk(slice any, setFunc func(*ReconcileJobCreate, int)) *ReconcileJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReconcileJobCreateBulk{err: fmt.Errorf("calling to ReconcileJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReconcileJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReconcileJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReconcileJob.
func (c *ReconcileJobClient) Update() *ReconcileJobUpdate {
	mutation := newReconcileJobMutation(c.config, OpUpdate)
	return &ReconcileJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReconcileJobClient) UpdateOne(rj *ReconcileJob) *ReconcileJobUpdateOne {
	mutation := newReconcileJobMutation(c.config, OpUpdateOne, withReconcileJob(rj))
	return &ReconcileJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReconcileJobClient) UpdateOneID(id uuid.UUID) *ReconcileJobUpdateOne {
	mutation := newReconcileJobMutation(c.config, OpUpdateOne, withReconcileJobID(id))
	return &ReconcileJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReconcileJob.
func (c *ReconcileJobClient) Delete() *ReconcileJobDelete {
	mutation := newReconcileJobMutation(c.config, OpDelete)
	return &ReconcileJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReconcileJobClient) DeleteOne(rj *ReconcileJob) *ReconcileJobDeleteOne {
	return c.DeleteOneID(rj.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReconcileJobClient) DeleteOneID(id uuid.UUID) *ReconcileJobDeleteOne {
	builder := c.Delete().Where(reconcilejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReconcileJobDeleteOne{builder}
}

// Query returns a query builder for ReconcileJob.
func (c *ReconcileJobClient) Query() *ReconcileJobQuery {
	return &ReconcileJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReconcileJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ReconcileJob entity by its id.
func (c *ReconcileJobClient) Get(ctx context.Context, id uuid.UUID) (*ReconcileJob, error) {
	return c.Query().Where(reconcilejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReconcileJobClient) GetX(ctx context.Context, id uuid.UUID) *ReconcileJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ReconcileJob.
func (c *ReconcileJobClient) QueryFile(rj *ReconcileJob) *BillFileQuery {
	query := (&BillFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := rj.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reconcilejob.Table, reconcilejob.FieldID, id),
			sqlgraph.To(billfile.Table, billfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reconcilejob.FileTable, reconcilejob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(rj.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReconcileJobClient) Hooks() []Hook {
	return c.hooks.ReconcileJob
}

// Interceptors returns the client interceptors.
func (c *ReconcileJobClient) Interceptors() []Interceptor {
	return c.inters.ReconcileJob
}

func (c *ReconcileJobClient) mutate(ctx context.Context, m *ReconcileJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReconcileJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReconcileJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReconcileJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReconcileJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReconcileJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BillFile, ReconcileJob []ent.Hook
	}
	inters struct {
		BillFile, ReconcileJob []ent.Interceptor
	}
)
