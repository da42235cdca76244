// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/variantlab/abtest/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/ent/experimentvariant"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Experiment is the client for interacting with the Experiment builders.
	Experiment *ExperimentClient
	// ExperimentAssignment is the client for interacting with the ExperimentAssignment builders.
	ExperimentAssignment *ExperimentAssignmentClient
	// ExperimentResult is the client for interacting with the ExperimentResult builders.
	ExperimentResult *ExperimentResultClient
	// ExperimentVariant is the client for interacting with the ExperimentVariant builders.
	ExperimentVariant *ExperimentVariantClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Experiment = NewExperimentClient(c.config)
	c.ExperimentAssignment = NewExperimentAssignmentClient(c.config)
	c.ExperimentResult = NewExperimentResultClient(c.config)
	c.ExperimentVariant = NewExperimentVariantClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		Experiment:           NewExperimentClient(cfg),
		ExperimentAssignment: NewExperimentAssignmentClient(cfg),
		ExperimentResult:     NewExperimentResultClient(cfg),
		ExperimentVariant:    NewExperimentVariantClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		Experiment:           NewExperimentClient(cfg),
		ExperimentAssignment: NewExperimentAssignmentClient(cfg),
		ExperimentResult:     NewExperimentResultClient(cfg),
		ExperimentVariant:    NewExperimentVariantClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Experiment.
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
	c.Experiment.Use(hooks...)
	c.ExperimentAssignment.Use(hooks...)
	c.ExperimentResult.Use(hooks...)
	c.ExperimentVariant.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Experiment.Intercept(interceptors...)
	c.ExperimentAssignment.Intercept(interceptors...)
	c.ExperimentResult.Intercept(interceptors...)
	c.ExperimentVariant.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExperimentMutation:
		return c.Experiment.mutate(ctx, m)
	case *ExperimentAssignmentMutation:
		return c.ExperimentAssignment.mutate(ctx, m)
	case *ExperimentResultMutation:
		return c.ExperimentResult.mutate(ctx, m)
	case *ExperimentVariantMutation:
		return c.ExperimentVariant.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExperimentClient is a client for the Experiment schema.
type ExperimentClient struct {
	config
}

// NewExperimentClient returns a client for the Experiment from the given config.
func NewExperimentClient(c config) *ExperimentClient {
	return &ExperimentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `experiment.Hooks(f(g(h())))`.
func (c *ExperimentClient) Use(hooks ...Hook) {
	c.hooks.Experiment = append(c.hooks.Experiment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `experiment.Intercept(f(g(h())))`.
func (c *ExperimentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Experiment = append(c.inters.Experiment, interceptors...)
}

// Create returns a builder for creating a Experiment entity.
func (c *ExperimentClient) Create() *ExperimentCreate {
	mutation := newExperimentMutation(c.config, OpCreate)
	return &ExperimentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Experiment entities.
func (c *ExperimentClient) CreateBulk(builders ...*ExperimentCreate) *ExperimentCreateBulk {
	return &ExperimentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExperimentClient) MapCreateBulk(slice any, setFunc func(*ExperimentCreate, int)) *ExperimentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExperimentCreateBulk{err: fmt.Errorf("calling to ExperimentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExperimentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExperimentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Experiment.
func (c *ExperimentClient) Update() *ExperimentUpdate {
	mutation := newExperimentMutation(c.config, OpUpdate)
	return &ExperimentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExperimentClient) UpdateOne(_m *Experiment) *ExperimentUpdateOne {
	mutation := newExperimentMutation(c.config, OpUpdateOne, withExperiment(_m))
	return &ExperimentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExperimentClient) UpdateOneID(id int) *ExperimentUpdateOne {
	mutation := newExperimentMutation(c.config, OpUpdateOne, withExperimentID(id))
	return &ExperimentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Experiment.
func (c *ExperimentClient) Delete() *ExperimentDelete {
	mutation := newExperimentMutation(c.config, OpDelete)
	return &ExperimentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExperimentClient) DeleteOne(_m *Experiment) *ExperimentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExperimentClient) DeleteOneID(id int) *ExperimentDeleteOne {
	builder := c.Delete().Where(experiment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExperimentDeleteOne{builder}
}

// Query returns a query builder for Experiment.
func (c *ExperimentClient) Query() *ExperimentQuery {
	return &ExperimentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExperiment},
		inters: c.Interceptors(),
	}
}

// Get returns a Experiment entity by its id.
func (c *ExperimentClient) Get(ctx context.Context, id int) (*Experiment, error) {
	return c.Query().Where(experiment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExperimentClient) GetX(ctx context.Context, id int) *Experiment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVariants queries the variants edge of a Experiment.
func (c *ExperimentClient) QueryVariants(_m *Experiment) *ExperimentVariantQuery {
	query := (&ExperimentVariantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(experiment.Table, experiment.FieldID, id),
			sqlgraph.To(experimentvariant.Table, experimentvariant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, experiment.VariantsTable, experiment.VariantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignments queries the assignments edge of a Experiment.
func (c *ExperimentClient) QueryAssignments(_m *Experiment) *ExperimentAssignmentQuery {
	query := (&ExperimentAssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(experiment.Table, experiment.FieldID, id),
			sqlgraph.To(experimentassignment.Table, experimentassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, experiment.AssignmentsTable, experiment.AssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExperimentClient) Hooks() []Hook {
	return c.hooks.Experiment
}

// Interceptors returns the client interceptors.
func (c *ExperimentClient) Interceptors() []Interceptor {
	return c.inters.Experiment
}

func (c *ExperimentClient) mutate(ctx context.Context, m *ExperimentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExperimentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExperimentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExperimentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExperimentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Experiment mutation op: %q", m.Op())
	}
}

// ExperimentAssignmentClient is a client for the ExperimentAssignment schema.
type ExperimentAssignmentClient struct {
	config
}

// NewExperimentAssignmentClient returns a client for the ExperimentAssignment from the given config.
func NewExperimentAssignmentClient(c config) *ExperimentAssignmentClient {
	return &ExperimentAssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `experimentassignment.Hooks(f(g(h())))`.
func (c *ExperimentAssignmentClient) Use(hooks ...Hook) {
	c.hooks.ExperimentAssignment = append(c.hooks.ExperimentAssignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `experimentassignment.Intercept(f(g(h())))`.
func (c *ExperimentAssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExperimentAssignment = append(c.inters.ExperimentAssignment, interceptors...)
}

// Create returns a builder for creating a ExperimentAssignment entity.
func (c *ExperimentAssignmentClient) Create() *ExperimentAssignmentCreate {
	mutation := newExperimentAssignmentMutation(c.config, OpCreate)
	return &ExperimentAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExperimentAssignment entities.
func (c *ExperimentAssignmentClient) CreateBulk(builders ...*ExperimentAssignmentCreate) *ExperimentAssignmentCreateBulk {
	return &ExperimentAssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExperimentAssignmentClient) MapCreateBulk(slice any, setFunc func(*ExperimentAssignmentCreate, int)) *ExperimentAssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExperimentAssignmentCreateBulk{err: fmt.Errorf("calling to ExperimentAssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExperimentAssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExperimentAssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExperimentAssignment.
func (c *ExperimentAssignmentClient) Update() *ExperimentAssignmentUpdate {
	mutation := newExperimentAssignmentMutation(c.config, OpUpdate)
	return &ExperimentAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExperimentAssignmentClient) UpdateOne(_m *ExperimentAssignment) *ExperimentAssignmentUpdateOne {
	mutation := newExperimentAssignmentMutation(c.config, OpUpdateOne, withExperimentAssignment(_m))
	return &ExperimentAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExperimentAssignmentClient) UpdateOneID(id int) *ExperimentAssignmentUpdateOne {
	mutation := newExperimentAssignmentMutation(c.config, OpUpdateOne, withExperimentAssignmentID(id))
	return &ExperimentAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExperimentAssignment.
func (c *ExperimentAssignmentClient) Delete() *ExperimentAssignmentDelete {
	mutation := newExperimentAssignmentMutation(c.config, OpDelete)
	return &ExperimentAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExperimentAssignmentClient) DeleteOne(_m *ExperimentAssignment) *ExperimentAssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExperimentAssignmentClient) DeleteOneID(id int) *ExperimentAssignmentDeleteOne {
	builder := c.Delete().Where(experimentassignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExperimentAssignmentDeleteOne{builder}
}

// Query returns a query builder for ExperimentAssignment.
func (c *ExperimentAssignmentClient) Query() *ExperimentAssignmentQuery {
	return &ExperimentAssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExperimentAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a ExperimentAssignment entity by its id.
func (c *ExperimentAssignmentClient) Get(ctx context.Context, id int) (*ExperimentAssignment, error) {
	return c.Query().Where(experimentassignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExperimentAssignmentClient) GetX(ctx context.Context, id int) *ExperimentAssignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExperiment queries the experiment edge of a ExperimentAssignment.
func (c *ExperimentAssignmentClient) QueryExperiment(_m *ExperimentAssignment) *ExperimentQuery {
	query := (&ExperimentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(experimentassignment.Table, experimentassignment.FieldID, id),
			sqlgraph.To(experiment.Table, experiment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, experimentassignment.ExperimentTable, experimentassignment.ExperimentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVariant queries the variant edge of a ExperimentAssignment.
func (c *ExperimentAssignmentClient) QueryVariant(_m *ExperimentAssignment) *ExperimentVariantQuery {
	query := (&ExperimentVariantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(experimentassignment.Table, experimentassignment.FieldID, id),
			sqlgraph.To(experimentvariant.Table, experimentvariant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, experimentassignment.VariantTable, experimentassignment.VariantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExperimentAssignmentClient) Hooks() []Hook {
	return c.hooks.ExperimentAssignment
}

// Interceptors returns the client interceptors.
func (c *ExperimentAssignmentClient) Interceptors() []Interceptor {
	return c.inters.ExperimentAssignment
}

func (c *ExperimentAssignmentClient) mutate(ctx context.Context, m *ExperimentAssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExperimentAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExperimentAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExperimentAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExperimentAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExperimentAssignment mutation op: %q", m.Op())
	}
}

// ExperimentResultClient is a client for the ExperimentResult schema.
type ExperimentResultClient struct {
	config
}

// NewExperimentResultClient returns a client for the ExperimentResult from the given config.
func NewExperimentResultClient(c config) *ExperimentResultClient {
	return &ExperimentResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `experimentresult.Hooks(f(g(h())))`.
func (c *ExperimentResultClient) Use(hooks ...Hook) {
	c.hooks.ExperimentResult = append(c.hooks.ExperimentResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `experimentresult.Intercept(f(g(h())))`.
func (c *ExperimentResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExperimentResult = append(c.inters.ExperimentResult, interceptors...)
}

// Create returns a builder for creating a ExperimentResult entity.
func (c *ExperimentResultClient) Create() *ExperimentResultCreate {
	mutation := newExperimentResultMutation(c.config, OpCreate)
	return &ExperimentResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExperimentResult entities.
func (c *ExperimentResultClient) CreateBulk(builders ...*ExperimentResultCreate) *ExperimentResultCreateBulk {
	return &ExperimentResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExperimentResultClient) MapCreateBulk(slice any, setFunc func(*ExperimentResultCreate, int)) *ExperimentResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExperimentResultCreateBulk{err: fmt.Errorf("calling to ExperimentResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExperimentResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExperimentResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExperimentResult.
func (c *ExperimentResultClient) Update() *ExperimentResultUpdate {
	mutation := newExperimentResultMutation(c.config, OpUpdate)
	return &ExperimentResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExperimentResultClient) UpdateOne(_m *ExperimentResult) *ExperimentResultUpdateOne {
	mutation := newExperimentResultMutation(c.config, OpUpdateOne, withExperimentResult(_m))
	return &ExperimentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExperimentResultClient) UpdateOneID(id int) *ExperimentResultUpdateOne {
	mutation := newExperimentResultMutation(c.config, OpUpdateOne, withExperimentResultID(id))
	return &ExperimentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExperimentResult.
func (c *ExperimentResultClient) Delete() *ExperimentResultDelete {
	mutation := newExperimentResultMutation(c.config, OpDelete)
	return &ExperimentResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExperimentResultClient) DeleteOne(_m *ExperimentResult) *ExperimentResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExperimentResultClient) DeleteOneID(id int) *ExperimentResultDeleteOne {
	builder := c.Delete().Where(experimentresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExperimentResultDeleteOne{builder}
}

// Query returns a query builder for ExperimentResult.
func (c *ExperimentResultClient) Query() *ExperimentResultQuery {
	return &ExperimentResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExperimentResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ExperimentResult entity by its id.
func (c *ExperimentResultClient) Get(ctx context.Context, id int) (*ExperimentResult, error) {
	return c.Query().Where(experimentresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExperimentResultClient) GetX(ctx context.Context, id int) *ExperimentResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVariant queries the variant edge of a ExperimentResult.
func (c *ExperimentResultClient) QueryVariant(_m *ExperimentResult) *ExperimentVariantQuery {
	query := (&ExperimentVariantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(experimentresult.Table, experimentresult.FieldID, id),
			sqlgraph.To(experimentvariant.Table, experimentvariant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, experimentresult.VariantTable, experimentresult.VariantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExperimentResultClient) Hooks() []Hook {
	return c.hooks.ExperimentResult
}

// Interceptors returns the client interceptors.
func (c *ExperimentResultClient) Interceptors() []Interceptor {
	return c.inters.ExperimentResult
}

func (c *ExperimentResultClient) mutate(ctx context.Context, m *ExperimentResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExperimentResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExperimentResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExperimentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExperimentResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExperimentResult mutation op: %q", m.Op())
	}
}

// ExperimentVariantClient is a client for the ExperimentVariant schema.
type ExperimentVariantClient struct {
	config
}

// NewExperimentVariantClient returns a client for the ExperimentVariant from the given config.
func NewExperimentVariantClient(c config) *ExperimentVariantClient {
	return &ExperimentVariantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `experimentvariant.Hooks(f(g(h())))`.
func (c *ExperimentVariantClient) Use(hooks ...Hook) {
	c.hooks.ExperimentVariant = append(c.hooks.ExperimentVariant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `experimentvariant.Intercept(f(g(h())))`.
func (c *ExperimentVariantClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExperimentVariant = append(c.inters.ExperimentVariant, interceptors...)
}

// Create returns a builder for creating a ExperimentVariant entity.
func (c *ExperimentVariantClient) Create() *ExperimentVariantCreate {
	mutation := newExperimentVariantMutation(c.config, OpCreate)
	return &ExperimentVariantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExperimentVariant entities.
func (c *ExperimentVariantClient) CreateBulk(builders ...*ExperimentVariantCreate) *ExperimentVariantCreateBulk {
	return &ExperimentVariantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExperimentVariantClient) MapCreateBulk(slice any, setFunc func(*ExperimentVariantCreate, int)) *ExperimentVariantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExperimentVariantCreateBulk{err: fmt.Errorf("calling to ExperimentVariantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExperimentVariantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExperimentVariantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExperimentVariant.
func (c *ExperimentVariantClient) Update() *ExperimentVariantUpdate {
	mutation := newExperimentVariantMutation(c.config, OpUpdate)
	return &ExperimentVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExperimentVariantClient) UpdateOne(_m *ExperimentVariant) *ExperimentVariantUpdateOne {
	mutation := newExperimentVariantMutation(c.config, OpUpdateOne, withExperimentVariant(_m))
	return &ExperimentVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExperimentVariantClient) UpdateOneID(id int) *ExperimentVariantUpdateOne {
	mutation := newExperimentVariantMutation(c.config, OpUpdateOne, withExperimentVariantID(id))
	return &ExperimentVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExperimentVariant.
func (c *ExperimentVariantClient) Delete() *ExperimentVariantDelete {
	mutation := newExperimentVariantMutation(c.config, OpDelete)
	return &ExperimentVariantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExperimentVariantClient) DeleteOne(_m *ExperimentVariant) *ExperimentVariantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExperimentVariantClient) DeleteOneID(id int) *ExperimentVariantDeleteOne {
	builder := c.Delete().Where(experimentvariant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExperimentVariantDeleteOne{builder}
}

// Query returns a query builder for ExperimentVariant.
func (c *ExperimentVariantClient) Query() *ExperimentVariantQuery {
	return &ExperimentVariantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExperimentVariant},
		inters: c.Interceptors(),
	}
}

// Get returns a ExperimentVariant entity by its id.
func (c *ExperimentVariantClient) Get(ctx context.Context, id int) (*ExperimentVariant, error) {
	return c.Query().Where(experimentvariant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExperimentVariantClient) GetX(ctx context.Context, id int) *ExperimentVariant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExperiment queries the experiment edge of a ExperimentVariant.
func (c *ExperimentVariantClient) QueryExperiment(_m *ExperimentVariant) *ExperimentQuery {
	query := (&ExperimentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(experimentvariant.Table, experimentvariant.FieldID, id),
			sqlgraph.To(experiment.Table, experiment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, experimentvariant.ExperimentTable, experimentvariant.ExperimentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignments queries the assignments edge of a ExperimentVariant.
func (c *ExperimentVariantClient) QueryAssignments(_m *ExperimentVariant) *ExperimentAssignmentQuery {
	query := (&ExperimentAssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(experimentvariant.Table, experimentvariant.FieldID, id),
			sqlgraph.To(experimentassignment.Table, experimentassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, experimentvariant.AssignmentsTable, experimentvariant.AssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a ExperimentVariant.
func (c *ExperimentVariantClient) QueryResults(_m *ExperimentVariant) *ExperimentResultQuery {
	query := (&ExperimentResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(experimentvariant.Table, experimentvariant.FieldID, id),
			sqlgraph.To(experimentresult.Table, experimentresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, experimentvariant.ResultsTable, experimentvariant.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExperimentVariantClient) Hooks() []Hook {
	return c.hooks.ExperimentVariant
}

// Interceptors returns the client interceptors.
func (c *ExperimentVariantClient) Interceptors() []Interceptor {
	return c.inters.ExperimentVariant
}

func (c *ExperimentVariantClient) mutate(ctx context.Context, m *ExperimentVariantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExperimentVariantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExperimentVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExperimentVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExperimentVariantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExperimentVariant mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Experiment, ExperimentAssignment, ExperimentResult, ExperimentVariant []ent.Hook
	}
	inters struct {
		Experiment, ExperimentAssignment, ExperimentResult,
		ExperimentVariant []ent.Interceptor
	}
)
