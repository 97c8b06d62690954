// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/asengupta/cyberquest/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/asengupta/cyberquest/ent/challengestate"
	"github.com/asengupta/cyberquest/ent/leaderboardentry"
	"github.com/asengupta/cyberquest/ent/profile"
	"github.com/asengupta/cyberquest/ent/taskcompletion"
	"github.com/asengupta/cyberquest/ent/xpevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChallengeState is the client for interacting with the ChallengeState builders.
	ChallengeState *ChallengeStateClient
	// LeaderboardEntry is the client for interacting with the LeaderboardEntry builders.
	LeaderboardEntry *LeaderboardEntryClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// TaskCompletion is the client for interacting with the TaskCompletion builders.
	TaskCompletion *TaskCompletionClient
	// XPEvent is the client for interacting with the XPEvent builders.
	XPEvent *XPEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChallengeState = NewChallengeStateClient(c.config)
	c.LeaderboardEntry = NewLeaderboardEntryClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.TaskCompletion = NewTaskCompletionClient(c.config)
	c.XPEvent = NewXPEventClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		ChallengeState:   NewChallengeStateClient(cfg),
		LeaderboardEntry: NewLeaderboardEntryClient(cfg),
		Profile:          NewProfileClient(cfg),
		TaskCompletion:   NewTaskCompletionClient(cfg),
		XPEvent:          NewXPEventClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		ChallengeState:   NewChallengeStateClient(cfg),
		LeaderboardEntry: NewLeaderboardEntryClient(cfg),
		Profile:          NewProfileClient(cfg),
		TaskCompletion:   NewTaskCompletionClient(cfg),
		XPEvent:          NewXPEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChallengeState.
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
	c.ChallengeState.Use(hooks...)
	c.LeaderboardEntry.Use(hooks...)
	c.Profile.Use(hooks...)
	c.TaskCompletion.Use(hooks...)
	c.XPEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChallengeState.Intercept(interceptors...)
	c.LeaderboardEntry.Intercept(interceptors...)
	c.Profile.Intercept(interceptors...)
	c.TaskCompletion.Intercept(interceptors...)
	c.XPEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChallengeStateMutation:
		return c.ChallengeState.mutate(ctx, m)
	case *LeaderboardEntryMutation:
		return c.LeaderboardEntry.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *TaskCompletionMutation:
		return c.TaskCompletion.mutate(ctx, m)
	case *XPEventMutation:
		return c.XPEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChallengeStateClient is a client for the ChallengeState schema.
type ChallengeStateClient struct {
	config
}

// NewChallengeStateClient returns a client for the ChallengeState from the given config.
func NewChallengeStateClient(c config) *ChallengeStateClient {
	return &ChallengeStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `challengestate.Hooks(f(g(h())))`.
func (c *ChallengeStateClient) Use(hooks ...Hook) {
	c.hooks.ChallengeState = append(c.hooks.ChallengeState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `challengestate.Intercept(f(g(h())))`.
func (c *ChallengeStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChallengeState = append(c.inters.ChallengeState, interceptors...)
}

// Create returns a builder for creating a ChallengeState entity.
func (c *ChallengeStateClient) Create() *ChallengeStateCreate {
	mutation := newChallengeStateMutation(c.config, OpCreate)
	return &ChallengeStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChallengeState entities.
func (c *ChallengeStateClient) CreateBulk(builders ...*ChallengeStateCreate) *ChallengeStateCreateBulk {
	return &ChallengeStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChallengeStateClient) MapCreateBulk(slice any, setFunc func(*ChallengeStateCreate, int)) *ChallengeStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChallengeStateCreateBulk{err: fmt.Errorf("calling to ChallengeStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChallengeStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChallengeStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChallengeState.
func (c *ChallengeStateClient) Update() *ChallengeStateUpdate {
	mutation := newChallengeStateMutation(c.config, OpUpdate)
	return &ChallengeStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChallengeStateClient) UpdateOne(_m *ChallengeState) *ChallengeStateUpdateOne {
	mutation := newChallengeStateMutation(c.config, OpUpdateOne, withChallengeState(_m))
	return &ChallengeStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChallengeStateClient) UpdateOneID(id int) *ChallengeStateUpdateOne {
	mutation := newChallengeStateMutation(c.config, OpUpdateOne, withChallengeStateID(id))
	return &ChallengeStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChallengeState.
func (c *ChallengeStateClient) Delete() *ChallengeStateDelete {
	mutation := newChallengeStateMutation(c.config, OpDelete)
	return &ChallengeStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChallengeStateClient) DeleteOne(_m *ChallengeState) *ChallengeStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChallengeStateClient) DeleteOneID(id int) *ChallengeStateDeleteOne {
	builder := c.Delete().Where(challengestate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChallengeStateDeleteOne{builder}
}

// Query returns a query builder for ChallengeState.
func (c *ChallengeStateClient) Query() *ChallengeStateQuery {
	return &ChallengeStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChallengeState},
		inters: c.Interceptors(),
	}
}

// Get returns a ChallengeState entity by its id.
func (c *ChallengeStateClient) Get(ctx context.Context, id int) (*ChallengeState, error) {
	return c.Query().Where(challengestate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChallengeStateClient) GetX(ctx context.Context, id int) *ChallengeState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChallengeStateClient) Hooks() []Hook {
	return c.hooks.ChallengeState
}

// Interceptors returns the client interceptors.
func (c *ChallengeStateClient) Interceptors() []Interceptor {
	return c.inters.ChallengeState
}

func (c *ChallengeStateClient) mutate(ctx context.Context, m *ChallengeStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChallengeStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChallengeStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChallengeStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChallengeStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChallengeState mutation op: %q", m.Op())
	}
}

// LeaderboardEntryClient is a client for the LeaderboardEntry schema.
type LeaderboardEntryClient struct {
	config
}

// NewLeaderboardEntryClient returns a client for the LeaderboardEntry from the given config.
func NewLeaderboardEntryClient(c config) *LeaderboardEntryClient {
	return &LeaderboardEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `leaderboardentry.Hooks(f(g(h())))`.
func (c *LeaderboardEntryClient) Use(hooks ...Hook) {
	c.hooks.LeaderboardEntry = append(c.hooks.LeaderboardEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `leaderboardentry.Intercept(f(g(h())))`.
func (c *LeaderboardEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LeaderboardEntry = append(c.inters.LeaderboardEntry, interceptors...)
}

// Create returns a builder for creating a LeaderboardEntry entity.
func (c *LeaderboardEntryClient) Create() *LeaderboardEntryCreate {
	mutation := newLeaderboardEntryMutation(c.config, OpCreate)
	return &LeaderboardEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LeaderboardEntry entities.
func (c *LeaderboardEntryClient) CreateBulk(builders ...*LeaderboardEntryCreate) *LeaderboardEntryCreateBulk {
	return &LeaderboardEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeaderboardEntryClient) MapCreateBulk(slice any, setFunc func(*LeaderboardEntryCreate, int)) *LeaderboardEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeaderboardEntryCreateBulk{err: fmt.Errorf("calling to LeaderboardEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeaderboardEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeaderboardEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LeaderboardEntry.
func (c *LeaderboardEntryClient) Update() *LeaderboardEntryUpdate {
	mutation := newLeaderboardEntryMutation(c.config, OpUpdate)
	return &LeaderboardEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeaderboardEntryClient) UpdateOne(_m *LeaderboardEntry) *LeaderboardEntryUpdateOne {
	mutation := newLeaderboardEntryMutation(c.config, OpUpdateOne, withLeaderboardEntry(_m))
	return &LeaderboardEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeaderboardEntryClient) UpdateOneID(id int) *LeaderboardEntryUpdateOne {
	mutation := newLeaderboardEntryMutation(c.config, OpUpdateOne, withLeaderboardEntryID(id))
	return &LeaderboardEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LeaderboardEntry.
func (c *LeaderboardEntryClient) Delete() *LeaderboardEntryDelete {
	mutation := newLeaderboardEntryMutation(c.config, OpDelete)
	return &LeaderboardEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeaderboardEntryClient) DeleteOne(_m *LeaderboardEntry) *LeaderboardEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeaderboardEntryClient) DeleteOneID(id int) *LeaderboardEntryDeleteOne {
	builder := c.Delete().Where(leaderboardentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeaderboardEntryDeleteOne{builder}
}

// Query returns a query builder for LeaderboardEntry.
func (c *LeaderboardEntryClient) Query() *LeaderboardEntryQuery {
	return &LeaderboardEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLeaderboardEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a LeaderboardEntry entity by its id.
func (c *LeaderboardEntryClient) Get(ctx context.Context, id int) (*LeaderboardEntry, error) {
	return c.Query().Where(leaderboardentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeaderboardEntryClient) GetX(ctx context.Context, id int) *LeaderboardEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LeaderboardEntryClient) Hooks() []Hook {
	return c.hooks.LeaderboardEntry
}

// Interceptors returns the client interceptors.
func (c *LeaderboardEntryClient) Interceptors() []Interceptor {
	return c.inters.LeaderboardEntry
}

func (c *LeaderboardEntryClient) mutate(ctx context.Context, m *LeaderboardEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeaderboardEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeaderboardEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeaderboardEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeaderboardEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LeaderboardEntry mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id int) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id int) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id int) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id int) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// TaskCompletionClient is a client for the TaskCompletion schema.
type TaskCompletionClient struct {
	config
}

// NewTaskCompletionClient returns a client for the TaskCompletion from the given config.
func NewTaskCompletionClient(c config) *TaskCompletionClient {
	return &TaskCompletionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskcompletion.Hooks(f(g(h())))`.
func (c *TaskCompletionClient) Use(hooks ...Hook) {
	c.hooks.TaskCompletion = append(c.hooks.TaskCompletion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskcompletion.Intercept(f(g(h())))`.
func (c *TaskCompletionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskCompletion = append(c.inters.TaskCompletion, interceptors...)
}

// Create returns a builder for creating a TaskCompletion entity.
func (c *TaskCompletionClient) Create() *TaskCompletionCreate {
	mutation := newTaskCompletionMutation(c.config, OpCreate)
	return &TaskCompletionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskCompletion entities.
func (c *TaskCompletionClient) CreateBulk(builders ...*TaskCompletionCreate) *TaskCompletionCreateBulk {
	return &TaskCompletionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskCompletionClient) MapCreateBulk(slice any, setFunc func(*TaskCompletionCreate, int)) *TaskCompletionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCompletionCreateBulk{err: fmt.Errorf("calling to TaskCompletionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCompletionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCompletionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskCompletion.
func (c *TaskCompletionClient) Update() *TaskCompletionUpdate {
	mutation := newTaskCompletionMutation(c.config, OpUpdate)
	return &TaskCompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskCompletionClient) UpdateOne(_m *TaskCompletion) *TaskCompletionUpdateOne {
	mutation := newTaskCompletionMutation(c.config, OpUpdateOne, withTaskCompletion(_m))
	return &TaskCompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskCompletionClient) UpdateOneID(id int) *TaskCompletionUpdateOne {
	mutation := newTaskCompletionMutation(c.config, OpUpdateOne, withTaskCompletionID(id))
	return &TaskCompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskCompletion.
func (c *TaskCompletionClient) Delete() *TaskCompletionDelete {
	mutation := newTaskCompletionMutation(c.config, OpDelete)
	return &TaskCompletionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskCompletionClient) DeleteOne(_m *TaskCompletion) *TaskCompletionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskCompletionClient) DeleteOneID(id int) *TaskCompletionDeleteOne {
	builder := c.Delete().Where(taskcompletion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskCompletionDeleteOne{builder}
}

// Query returns a query builder for TaskCompletion.
func (c *TaskCompletionClient) Query() *TaskCompletionQuery {
	return &TaskCompletionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskCompletion},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskCompletion entity by its id.
func (c *TaskCompletionClient) Get(ctx context.Context, id int) (*TaskCompletion, error) {
	return c.Query().Where(taskcompletion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskCompletionClient) GetX(ctx context.Context, id int) *TaskCompletion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskCompletionClient) Hooks() []Hook {
	return c.hooks.TaskCompletion
}

// Interceptors returns the client interceptors.
func (c *TaskCompletionClient) Interceptors() []Interceptor {
	return c.inters.TaskCompletion
}

func (c *TaskCompletionClient) mutate(ctx context.Context, m *TaskCompletionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCompletionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskCompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskCompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskCompletionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskCompletion mutation op: %q", m.Op())
	}
}

// XPEventClient is a client for the XPEvent schema.
type XPEventClient struct {
	config
}

// NewXPEventClient returns a client for the XPEvent from the given config.
func NewXPEventClient(c config) *XPEventClient {
	return &XPEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `xpevent.Hooks(f(g(h())))`.
func (c *XPEventClient) Use(hooks ...Hook) {
	c.hooks.XPEvent = append(c.hooks.XPEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `xpevent.Intercept(f(g(h())))`.
func (c *XPEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.XPEvent = append(c.inters.XPEvent, interceptors...)
}

// Create returns a builder for creating a XPEvent entity.
func (c *XPEventClient) Create() *XPEventCreate {
	mutation := newXPEventMutation(c.config, OpCreate)
	return &XPEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of XPEvent entities.
func (c *XPEventClient) CreateBulk(builders ...*XPEventCreate) *XPEventCreateBulk {
	return &XPEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *XPEventClient) MapCreateBulk(slice any, setFunc func(*XPEventCreate, int)) *XPEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &XPEventCreateBulk{err: fmt.Errorf("calling to XPEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*XPEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &XPEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for XPEvent.
func (c *XPEventClient) Update() *XPEventUpdate {
	mutation := newXPEventMutation(c.config, OpUpdate)
	return &XPEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *XPEventClient) UpdateOne(_m *XPEvent) *XPEventUpdateOne {
	mutation := newXPEventMutation(c.config, OpUpdateOne, withXPEvent(_m))
	return &XPEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *XPEventClient) UpdateOneID(id int) *XPEventUpdateOne {
	mutation := newXPEventMutation(c.config, OpUpdateOne, withXPEventID(id))
	return &XPEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for XPEvent.
func (c *XPEventClient) Delete() *XPEventDelete {
	mutation := newXPEventMutation(c.config, OpDelete)
	return &XPEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *XPEventClient) DeleteOne(_m *XPEvent) *XPEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *XPEventClient) DeleteOneID(id int) *XPEventDeleteOne {
	builder := c.Delete().Where(xpevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &XPEventDeleteOne{builder}
}

// Query returns a query builder for XPEvent.
func (c *XPEventClient) Query() *XPEventQuery {
	return &XPEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeXPEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a XPEvent entity by its id.
func (c *XPEventClient) Get(ctx context.Context, id int) (*XPEvent, error) {
	return c.Query().Where(xpevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *XPEventClient) GetX(ctx context.Context, id int) *XPEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *XPEventClient) Hooks() []Hook {
	return c.hooks.XPEvent
}

// Interceptors returns the client interceptors.
func (c *XPEventClient) Interceptors() []Interceptor {
	return c.inters.XPEvent
}

func (c *XPEventClient) mutate(ctx context.Context, m *XPEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&XPEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&XPEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&XPEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&XPEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown XPEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChallengeState, LeaderboardEntry, Profile, TaskCompletion, XPEvent []ent.Hook
	}
	inters struct {
		ChallengeState, LeaderboardEntry, Profile, TaskCompletion,
		XPEvent []ent.Interceptor
	}
)
