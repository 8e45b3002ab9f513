// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/callsight/callsight/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callsight/callsight/ent/agentperformance"
	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/ent/call"
	"github.com/callsight/callsight/ent/compliancerule"
	"github.com/callsight/callsight/ent/complianceviolation"
	"github.com/callsight/callsight/ent/notification"
	"github.com/callsight/callsight/ent/sentimentanalysis"
	"github.com/callsight/callsight/ent/transcription"
	"github.com/callsight/callsight/ent/transcriptsegment"
	"github.com/callsight/callsight/ent/vocinsight"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentPerformance is the client for interacting with the AgentPerformance builders.
	AgentPerformance *AgentPerformanceClient
	// AuditResult is the client for interacting with the AuditResult builders.
	AuditResult *AuditResultClient
	// Call is the client for interacting with the Call builders.
	Call *CallClient
	// ComplianceRule is the client for interacting with the ComplianceRule builders.
	ComplianceRule *ComplianceRuleClient
	// ComplianceViolation is the client for interacting with the ComplianceViolation builders.
	ComplianceViolation *ComplianceViolationClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// SentimentAnalysis is the client for interacting with the SentimentAnalysis builders.
	SentimentAnalysis *SentimentAnalysisClient
	// TranscriptSegment is the client for interacting with the TranscriptSegment builders.
	TranscriptSegment *TranscriptSegmentClient
	// Transcription is the client for interacting with the Transcription builders.
	Transcription *TranscriptionClient
	// VocInsight is the client for interacting with the VocInsight builders.
	VocInsight *VocInsightClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentPerformance = NewAgentPerformanceClient(c.config)
	c.AuditResult = NewAuditResultClient(c.config)
	c.Call = NewCallClient(c.config)
	c.ComplianceRule = NewComplianceRuleClient(c.config)
	c.ComplianceViolation = NewComplianceViolationClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.SentimentAnalysis = NewSentimentAnalysisClient(c.config)
	c.TranscriptSegment = NewTranscriptSegmentClient(c.config)
	c.Transcription = NewTranscriptionClient(c.config)
	c.VocInsight = NewVocInsightClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		AgentPerformance:    NewAgentPerformanceClient(cfg),
		AuditResult:         NewAuditResultClient(cfg),
		Call:                NewCallClient(cfg),
		ComplianceRule:      NewComplianceRuleClient(cfg),
		ComplianceViolation: NewComplianceViolationClient(cfg),
		Notification:        NewNotificationClient(cfg),
		SentimentAnalysis:   NewSentimentAnalysisClient(cfg),
		TranscriptSegment:   NewTranscriptSegmentClient(cfg),
		Transcription:       NewTranscriptionClient(cfg),
		VocInsight:          NewVocInsightClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		AgentPerformance:    NewAgentPerformanceClient(cfg),
		AuditResult:         NewAuditResultClient(cfg),
		Call:                NewCallClient(cfg),
		ComplianceRule:      NewComplianceRuleClient(cfg),
		ComplianceViolation: NewComplianceViolationClient(cfg),
		Notification:        NewNotificationClient(cfg),
		SentimentAnalysis:   NewSentimentAnalysisClient(cfg),
		TranscriptSegment:   NewTranscriptSegmentClient(cfg),
		Transcription:       NewTranscriptionClient(cfg),
		VocInsight:          NewVocInsightClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentPerformance.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentPerformance, c.AuditResult, c.Call, c.ComplianceRule,
		c.ComplianceViolation, c.Notification, c.SentimentAnalysis,
		c.TranscriptSegment, c.Transcription, c.VocInsight,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentPerformance, c.AuditResult, c.Call, c.ComplianceRule,
		c.ComplianceViolation, c.Notification, c.SentimentAnalysis,
		c.TranscriptSegment, c.Transcription, c.VocInsight,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentPerformanceMutation:
		return c.AgentPerformance.mutate(ctx, m)
	case *AuditResultMutation:
		return c.AuditResult.mutate(ctx, m)
	case *CallMutation:
		return c.Call.mutate(ctx, m)
	case *ComplianceRuleMutation:
		return c.ComplianceRule.mutate(ctx, m)
	case *ComplianceViolationMutation:
		return c.ComplianceViolation.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *SentimentAnalysisMutation:
		return c.SentimentAnalysis.mutate(ctx, m)
	case *TranscriptSegmentMutation:
		return c.TranscriptSegment.mutate(ctx, m)
	case *TranscriptionMutation:
		return c.Transcription.mutate(ctx, m)
	case *VocInsightMutation:
		return c.VocInsight.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentPerformanceClient is a client for the AgentPerformance schema.
type AgentPerformanceClient struct {
	config
}

// NewAgentPerformanceClient returns a client for the AgentPerformance from the given config.
func NewAgentPerformanceClient(c config) *AgentPerformanceClient {
	return &AgentPerformanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentperformance.Hooks(f(g(h())))`.
func (c *AgentPerformanceClient) Use(hooks ...Hook) {
	c.hooks.AgentPerformance = append(c.hooks.AgentPerformance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentperformance.Intercept(f(g(h())))`.
func (c *AgentPerformanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentPerformance = append(c.inters.AgentPerformance, interceptors...)
}

// Create returns a builder for creating a AgentPerformance entity.
func (c *AgentPerformanceClient) Create() *AgentPerformanceCreate {
	mutation := newAgentPerformanceMutation(c.config, OpCreate)
	return &AgentPerformanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentPerformance entities.
func (c *AgentPerformanceClient) CreateBulk(builders ...*AgentPerformanceCreate) *AgentPerformanceCreateBulk {
	return &AgentPerformanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentPerformanceClient) MapCreateBulk(slice any, setFunc func(*AgentPerformanceCreate, int)) *AgentPerformanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentPerformanceCreateBulk{err: fmt.Errorf("calling to AgentPerformanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentPerformanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentPerformanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentPerformance.
func (c *AgentPerformanceClient) Update() *AgentPerformanceUpdate {
	mutation := newAgentPerformanceMutation(c.config, OpUpdate)
	return &AgentPerformanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentPerformanceClient) UpdateOne(_m *AgentPerformance) *AgentPerformanceUpdateOne {
	mutation := newAgentPerformanceMutation(c.config, OpUpdateOne, withAgentPerformance(_m))
	return &AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentPerformanceClient) UpdateOneID(id string) *AgentPerformanceUpdateOne {
	mutation := newAgentPerformanceMutation(c.config, OpUpdateOne, withAgentPerformanceID(id))
	return &AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentPerformance.
func (c *AgentPerformanceClient) Delete() *AgentPerformanceDelete {
	mutation := newAgentPerformanceMutation(c.config, OpDelete)
	return &AgentPerformanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentPerformanceClient) DeleteOne(_m *AgentPerformance) *AgentPerformanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentPerformanceClient) DeleteOneID(id string) *AgentPerformanceDeleteOne {
	builder := c.Delete().Where(agentperformance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentPerformanceDeleteOne{builder}
}

// Query returns a query builder for AgentPerformance.
func (c *AgentPerformanceClient) Query() *AgentPerformanceQuery {
	return &AgentPerformanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentPerformance},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentPerformance entity by its id.
func (c *AgentPerformanceClient) Get(ctx context.Context, id string) (*AgentPerformance, error) {
	return c.Query().Where(agentperformance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentPerformanceClient) GetX(ctx context.Context, id string) *AgentPerformance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentPerformanceClient) Hooks() []Hook {
	return c.hooks.AgentPerformance
}

// Interceptors returns the client interceptors.
func (c *AgentPerformanceClient) Interceptors() []Interceptor {
	return c.inters.AgentPerformance
}

func (c *AgentPerformanceClient) mutate(ctx context.Context, m *AgentPerformanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentPerformanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentPerformanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentPerformanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentPerformance mutation op: %q", m.Op())
	}
}

// AuditResultClient is a client for the AuditResult schema.
type AuditResultClient struct {
	config
}

// NewAuditResultClient returns a client for the AuditResult from the given config.
func NewAuditResultClient(c config) *AuditResultClient {
	return &AuditResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditresult.Hooks(f(g(h())))`.
func (c *AuditResultClient) Use(hooks ...Hook) {
	c.hooks.AuditResult = append(c.hooks.AuditResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditresult.Intercept(f(g(h())))`.
func (c *AuditResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditResult = append(c.inters.AuditResult, interceptors...)
}

// Create returns a builder for creating a AuditResult entity.
func (c *AuditResultClient) Create() *AuditResultCreate {
	mutation := newAuditResultMutation(c.config, OpCreate)
	return &AuditResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditResult entities.
func (c *AuditResultClient) CreateBulk(builders ...*AuditResultCreate) *AuditResultCreateBulk {
	return &AuditResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditResultClient) MapCreateBulk(slice any, setFunc func(*AuditResultCreate, int)) *AuditResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditResultCreateBulk{err: fmt.Errorf("calling to AuditResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditResult.
func (c *AuditResultClient) Update() *AuditResultUpdate {
	mutation := newAuditResultMutation(c.config, OpUpdate)
	return &AuditResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditResultClient) UpdateOne(_m *AuditResult) *AuditResultUpdateOne {
	mutation := newAuditResultMutation(c.config, OpUpdateOne, withAuditResult(_m))
	return &AuditResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditResultClient) UpdateOneID(id string) *AuditResultUpdateOne {
	mutation := newAuditResultMutation(c.config, OpUpdateOne, withAuditResultID(id))
	return &AuditResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditResult.
func (c *AuditResultClient) Delete() *AuditResultDelete {
	mutation := newAuditResultMutation(c.config, OpDelete)
	return &AuditResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditResultClient) DeleteOne(_m *AuditResult) *AuditResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditResultClient) DeleteOneID(id string) *AuditResultDeleteOne {
	builder := c.Delete().Where(auditresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditResultDeleteOne{builder}
}

// Query returns a query builder for AuditResult.
func (c *AuditResultClient) Query() *AuditResultQuery {
	return &AuditResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditResult},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditResult entity by its id.
func (c *AuditResultClient) Get(ctx context.Context, id string) (*AuditResult, error) {
	return c.Query().Where(auditresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditResultClient) GetX(ctx context.Context, id string) *AuditResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryViolations queries the violations edge of a AuditResult.
func (c *AuditResultClient) QueryViolations(_m *AuditResult) *ComplianceViolationQuery {
	query := (&ComplianceViolationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditresult.Table, auditresult.FieldID, id),
			sqlgraph.To(complianceviolation.Table, complianceviolation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, auditresult.ViolationsTable, auditresult.ViolationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditResultClient) Hooks() []Hook {
	return c.hooks.AuditResult
}

// Interceptors returns the client interceptors.
func (c *AuditResultClient) Interceptors() []Interceptor {
	return c.inters.AuditResult
}

func (c *AuditResultClient) mutate(ctx context.Context, m *AuditResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditResult mutation op: %q", m.Op())
	}
}

// CallClient is a client for the Call schema.
type CallClient struct {
	config
}

// NewCallClient returns a client for the Call from the given config.
func NewCallClient(c config) *CallClient {
	return &CallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `call.Hooks(f(g(h())))`.
func (c *CallClient) Use(hooks ...Hook) {
	c.hooks.Call = append(c.hooks.Call, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `call.Intercept(f(g(h())))`.
func (c *CallClient) Intercept(interceptors ...Interceptor) {
	c.inters.Call = append(c.inters.Call, interceptors...)
}

// Create returns a builder for creating a Call entity.
func (c *CallClient) Create() *CallCreate {
	mutation := newCallMutation(c.config, OpCreate)
	return &CallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Call entities.
func (c *CallClient) CreateBulk(builders ...*CallCreate) *CallCreateBulk {
	return &CallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CallClient) MapCreateBulk(slice any, setFunc func(*CallCreate, int)) *CallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CallCreateBulk{err: fmt.Errorf("calling to CallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Call.
func (c *CallClient) Update() *CallUpdate {
	mutation := newCallMutation(c.config, OpUpdate)
	return &CallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CallClient) UpdateOne(_m *Call) *CallUpdateOne {
	mutation := newCallMutation(c.config, OpUpdateOne, withCall(_m))
	return &CallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CallClient) UpdateOneID(id string) *CallUpdateOne {
	mutation := newCallMutation(c.config, OpUpdateOne, withCallID(id))
	return &CallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Call.
func (c *CallClient) Delete() *CallDelete {
	mutation := newCallMutation(c.config, OpDelete)
	return &CallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CallClient) DeleteOne(_m *Call) *CallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CallClient) DeleteOneID(id string) *CallDeleteOne {
	builder := c.Delete().Where(call.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CallDeleteOne{builder}
}

// Query returns a query builder for Call.
func (c *CallClient) Query() *CallQuery {
	return &CallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCall},
		inters: c.Interceptors(),
	}
}

// Get returns a Call entity by its id.
func (c *CallClient) Get(ctx context.Context, id string) (*Call, error) {
	return c.Query().Where(call.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CallClient) GetX(ctx context.Context, id string) *Call {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CallClient) Hooks() []Hook {
	return c.hooks.Call
}

// Interceptors returns the client interceptors.
func (c *CallClient) Interceptors() []Interceptor {
	return c.inters.Call
}

func (c *CallClient) mutate(ctx context.Context, m *CallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Call mutation op: %q", m.Op())
	}
}

// ComplianceRuleClient is a client for the ComplianceRule schema.
type ComplianceRuleClient struct {
	config
}

// NewComplianceRuleClient returns a client for the ComplianceRule from the given config.
func NewComplianceRuleClient(c config) *ComplianceRuleClient {
	return &ComplianceRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `compliancerule.Hooks(f(g(h())))`.
func (c *ComplianceRuleClient) Use(hooks ...Hook) {
	c.hooks.ComplianceRule = append(c.hooks.ComplianceRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `compliancerule.Intercept(f(g(h())))`.
func (c *ComplianceRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ComplianceRule = append(c.inters.ComplianceRule, interceptors...)
}

// Create returns a builder for creating a ComplianceRule entity.
func (c *ComplianceRuleClient) Create() *ComplianceRuleCreate {
	mutation := newComplianceRuleMutation(c.config, OpCreate)
	return &ComplianceRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ComplianceRule entities.
func (c *ComplianceRuleClient) CreateBulk(builders ...*ComplianceRuleCreate) *ComplianceRuleCreateBulk {
	return &ComplianceRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ComplianceRuleClient) MapCreateBulk(slice any, setFunc func(*ComplianceRuleCreate, int)) *ComplianceRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ComplianceRuleCreateBulk{err: fmt.Errorf("calling to ComplianceRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ComplianceRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ComplianceRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ComplianceRule.
func (c *ComplianceRuleClient) Update() *ComplianceRuleUpdate {
	mutation := newComplianceRuleMutation(c.config, OpUpdate)
	return &ComplianceRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ComplianceRuleClient) UpdateOne(_m *ComplianceRule) *ComplianceRuleUpdateOne {
	mutation := newComplianceRuleMutation(c.config, OpUpdateOne, withComplianceRule(_m))
	return &ComplianceRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ComplianceRuleClient) UpdateOneID(id string) *ComplianceRuleUpdateOne {
	mutation := newComplianceRuleMutation(c.config, OpUpdateOne, withComplianceRuleID(id))
	return &ComplianceRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ComplianceRule.
func (c *ComplianceRuleClient) Delete() *ComplianceRuleDelete {
	mutation := newComplianceRuleMutation(c.config, OpDelete)
	return &ComplianceRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ComplianceRuleClient) DeleteOne(_m *ComplianceRule) *ComplianceRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ComplianceRuleClient) DeleteOneID(id string) *ComplianceRuleDeleteOne {
	builder := c.Delete().Where(compliancerule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ComplianceRuleDeleteOne{builder}
}

// Query returns a query builder for ComplianceRule.
func (c *ComplianceRuleClient) Query() *ComplianceRuleQuery {
	return &ComplianceRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComplianceRule},
		inters: c.Interceptors(),
	}
}

// Get returns a ComplianceRule entity by its id.
func (c *ComplianceRuleClient) Get(ctx context.Context, id string) (*ComplianceRule, error) {
	return c.Query().Where(compliancerule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ComplianceRuleClient) GetX(ctx context.Context, id string) *ComplianceRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ComplianceRuleClient) Hooks() []Hook {
	return c.hooks.ComplianceRule
}

// Interceptors returns the client interceptors.
func (c *ComplianceRuleClient) Interceptors() []Interceptor {
	return c.inters.ComplianceRule
}

func (c *ComplianceRuleClient) mutate(ctx context.Context, m *ComplianceRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ComplianceRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ComplianceRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ComplianceRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ComplianceRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ComplianceRule mutation op: %q", m.Op())
	}
}

// ComplianceViolationClient is a client for the ComplianceViolation schema.
type ComplianceViolationClient struct {
	config
}

// NewComplianceViolationClient returns a client for the ComplianceViolation from the given config.
func NewComplianceViolationClient(c config) *ComplianceViolationClient {
	return &ComplianceViolationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `complianceviolation.Hooks(f(g(h())))`.
func (c *ComplianceViolationClient) Use(hooks ...Hook) {
	c.hooks.ComplianceViolation = append(c.hooks.ComplianceViolation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `complianceviolation.Intercept(f(g(h())))`.
func (c *ComplianceViolationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ComplianceViolation = append(c.inters.ComplianceViolation, interceptors...)
}

// Create returns a builder for creating a ComplianceViolation entity.
func (c *ComplianceViolationClient) Create() *ComplianceViolationCreate {
	mutation := newComplianceViolationMutation(c.config, OpCreate)
	return &ComplianceViolationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ComplianceViolation entities.
func (c *ComplianceViolationClient) CreateBulk(builders ...*ComplianceViolationCreate) *ComplianceViolationCreateBulk {
	return &ComplianceViolationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ComplianceViolationClient) MapCreateBulk(slice any, setFunc func(*ComplianceViolationCreate, int)) *ComplianceViolationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ComplianceViolationCreateBulk{err: fmt.Errorf("calling to ComplianceViolationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ComplianceViolationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ComplianceViolationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ComplianceViolation.
func (c *ComplianceViolationClient) Update() *ComplianceViolationUpdate {
	mutation := newComplianceViolationMutation(c.config, OpUpdate)
	return &ComplianceViolationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ComplianceViolationClient) UpdateOne(_m *ComplianceViolation) *ComplianceViolationUpdateOne {
	mutation := newComplianceViolationMutation(c.config, OpUpdateOne, withComplianceViolation(_m))
	return &ComplianceViolationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ComplianceViolationClient) UpdateOneID(id string) *ComplianceViolationUpdateOne {
	mutation := newComplianceViolationMutation(c.config, OpUpdateOne, withComplianceViolationID(id))
	return &ComplianceViolationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ComplianceViolation.
func (c *ComplianceViolationClient) Delete() *ComplianceViolationDelete {
	mutation := newComplianceViolationMutation(c.config, OpDelete)
	return &ComplianceViolationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ComplianceViolationClient) DeleteOne(_m *ComplianceViolation) *ComplianceViolationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ComplianceViolationClient) DeleteOneID(id string) *ComplianceViolationDeleteOne {
	builder := c.Delete().Where(complianceviolation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ComplianceViolationDeleteOne{builder}
}

// Query returns a query builder for ComplianceViolation.
func (c *ComplianceViolationClient) Query() *ComplianceViolationQuery {
	return &ComplianceViolationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComplianceViolation},
		inters: c.Interceptors(),
	}
}

// Get returns a ComplianceViolation entity by its id.
func (c *ComplianceViolationClient) Get(ctx context.Context, id string) (*ComplianceViolation, error) {
	return c.Query().Where(complianceviolation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ComplianceViolationClient) GetX(ctx context.Context, id string) *ComplianceViolation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAuditResult queries the audit_result edge of a ComplianceViolation.
func (c *ComplianceViolationClient) QueryAuditResult(_m *ComplianceViolation) *AuditResultQuery {
	query := (&AuditResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(complianceviolation.Table, complianceviolation.FieldID, id),
			sqlgraph.To(auditresult.Table, auditresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, complianceviolation.AuditResultTable, complianceviolation.AuditResultColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ComplianceViolationClient) Hooks() []Hook {
	return c.hooks.ComplianceViolation
}

// Interceptors returns the client interceptors.
func (c *ComplianceViolationClient) Interceptors() []Interceptor {
	return c.inters.ComplianceViolation
}

func (c *ComplianceViolationClient) mutate(ctx context.Context, m *ComplianceViolationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ComplianceViolationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ComplianceViolationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ComplianceViolationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ComplianceViolationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ComplianceViolation mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id string) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id string) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id string) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id string) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// SentimentAnalysisClient is a client for the SentimentAnalysis schema.
type SentimentAnalysisClient struct {
	config
}

// NewSentimentAnalysisClient returns a client for the SentimentAnalysis from the given config.
func NewSentimentAnalysisClient(c config) *SentimentAnalysisClient {
	return &SentimentAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sentimentanalysis.Hooks(f(g(h())))`.
func (c *SentimentAnalysisClient) Use(hooks ...Hook) {
	c.hooks.SentimentAnalysis = append(c.hooks.SentimentAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sentimentanalysis.Intercept(f(g(h())))`.
func (c *SentimentAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.SentimentAnalysis = append(c.inters.SentimentAnalysis, interceptors...)
}

// Create returns a builder for creating a SentimentAnalysis entity.
func (c *SentimentAnalysisClient) Create() *SentimentAnalysisCreate {
	mutation := newSentimentAnalysisMutation(c.config, OpCreate)
	return &SentimentAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SentimentAnalysis entities.
func (c *SentimentAnalysisClient) CreateBulk(builders ...*SentimentAnalysisCreate) *SentimentAnalysisCreateBulk {
	return &SentimentAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SentimentAnalysisClient) MapCreateBulk(slice any, setFunc func(*SentimentAnalysisCreate, int)) *SentimentAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SentimentAnalysisCreateBulk{err: fmt.Errorf("calling to SentimentAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SentimentAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SentimentAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SentimentAnalysis.
func (c *SentimentAnalysisClient) Update() *SentimentAnalysisUpdate {
	mutation := newSentimentAnalysisMutation(c.config, OpUpdate)
	return &SentimentAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SentimentAnalysisClient) UpdateOne(_m *SentimentAnalysis) *SentimentAnalysisUpdateOne {
	mutation := newSentimentAnalysisMutation(c.config, OpUpdateOne, withSentimentAnalysis(_m))
	return &SentimentAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SentimentAnalysisClient) UpdateOneID(id string) *SentimentAnalysisUpdateOne {
	mutation := newSentimentAnalysisMutation(c.config, OpUpdateOne, withSentimentAnalysisID(id))
	return &SentimentAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SentimentAnalysis.
func (c *SentimentAnalysisClient) Delete() *SentimentAnalysisDelete {
	mutation := newSentimentAnalysisMutation(c.config, OpDelete)
	return &SentimentAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SentimentAnalysisClient) DeleteOne(_m *SentimentAnalysis) *SentimentAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SentimentAnalysisClient) DeleteOneID(id string) *SentimentAnalysisDeleteOne {
	builder := c.Delete().Where(sentimentanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SentimentAnalysisDeleteOne{builder}
}

// Query returns a query builder for SentimentAnalysis.
func (c *SentimentAnalysisClient) Query() *SentimentAnalysisQuery {
	return &SentimentAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSentimentAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a SentimentAnalysis entity by its id.
func (c *SentimentAnalysisClient) Get(ctx context.Context, id string) (*SentimentAnalysis, error) {
	return c.Query().Where(sentimentanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SentimentAnalysisClient) GetX(ctx context.Context, id string) *SentimentAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SentimentAnalysisClient) Hooks() []Hook {
	return c.hooks.SentimentAnalysis
}

// Interceptors returns the client interceptors.
func (c *SentimentAnalysisClient) Interceptors() []Interceptor {
	return c.inters.SentimentAnalysis
}

func (c *SentimentAnalysisClient) mutate(ctx context.Context, m *SentimentAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SentimentAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SentimentAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SentimentAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SentimentAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SentimentAnalysis mutation op: %q", m.Op())
	}
}

// TranscriptSegmentClient is a client for the TranscriptSegment schema.
type TranscriptSegmentClient struct {
	config
}

// NewTranscriptSegmentClient returns a client for the TranscriptSegment from the given config.
func NewTranscriptSegmentClient(c config) *TranscriptSegmentClient {
	return &TranscriptSegmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcriptsegment.Hooks(f(g(h())))`.
func (c *TranscriptSegmentClient) Use(hooks ...Hook) {
	c.hooks.TranscriptSegment = append(c.hooks.TranscriptSegment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcriptsegment.Intercept(f(g(h())))`.
func (c *TranscriptSegmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TranscriptSegment = append(c.inters.TranscriptSegment, interceptors...)
}

// Create returns a builder for creating a TranscriptSegment entity.
func (c *TranscriptSegmentClient) Create() *TranscriptSegmentCreate {
	mutation := newTranscriptSegmentMutation(c.config, OpCreate)
	return &TranscriptSegmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TranscriptSegment entities.
func (c *TranscriptSegmentClient) CreateBulk(builders ...*TranscriptSegmentCreate) *TranscriptSegmentCreateBulk {
	return &TranscriptSegmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptSegmentClient) MapCreateBulk(slice any, setFunc func(*TranscriptSegmentCreate, int)) *TranscriptSegmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptSegmentCreateBulk{err: fmt.Errorf("calling to TranscriptSegmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptSegmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptSegmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TranscriptSegment.
func (c *TranscriptSegmentClient) Update() *TranscriptSegmentUpdate {
	mutation := newTranscriptSegmentMutation(c.config, OpUpdate)
	return &TranscriptSegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptSegmentClient) UpdateOne(_m *TranscriptSegment) *TranscriptSegmentUpdateOne {
	mutation := newTranscriptSegmentMutation(c.config, OpUpdateOne, withTranscriptSegment(_m))
	return &TranscriptSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptSegmentClient) UpdateOneID(id string) *TranscriptSegmentUpdateOne {
	mutation := newTranscriptSegmentMutation(c.config, OpUpdateOne, withTranscriptSegmentID(id))
	return &TranscriptSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TranscriptSegment.
func (c *TranscriptSegmentClient) Delete() *TranscriptSegmentDelete {
	mutation := newTranscriptSegmentMutation(c.config, OpDelete)
	return &TranscriptSegmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptSegmentClient) DeleteOne(_m *TranscriptSegment) *TranscriptSegmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptSegmentClient) DeleteOneID(id string) *TranscriptSegmentDeleteOne {
	builder := c.Delete().Where(transcriptsegment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptSegmentDeleteOne{builder}
}

// Query returns a query builder for TranscriptSegment.
func (c *TranscriptSegmentClient) Query() *TranscriptSegmentQuery {
	return &TranscriptSegmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscriptSegment},
		inters: c.Interceptors(),
	}
}

// Get returns a TranscriptSegment entity by its id.
func (c *TranscriptSegmentClient) Get(ctx context.Context, id string) (*TranscriptSegment, error) {
	return c.Query().Where(transcriptsegment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptSegmentClient) GetX(ctx context.Context, id string) *TranscriptSegment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTranscription queries the transcription edge of a TranscriptSegment.
func (c *TranscriptSegmentClient) QueryTranscription(_m *TranscriptSegment) *TranscriptionQuery {
	query := (&TranscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcriptsegment.Table, transcriptsegment.FieldID, id),
			sqlgraph.To(transcription.Table, transcription.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transcriptsegment.TranscriptionTable, transcriptsegment.TranscriptionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranscriptSegmentClient) Hooks() []Hook {
	return c.hooks.TranscriptSegment
}

// Interceptors returns the client interceptors.
func (c *TranscriptSegmentClient) Interceptors() []Interceptor {
	return c.inters.TranscriptSegment
}

func (c *TranscriptSegmentClient) mutate(ctx context.Context, m *TranscriptSegmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptSegmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptSegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptSegmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TranscriptSegment mutation op: %q", m.Op())
	}
}

// TranscriptionClient is a client for the Transcription schema.
type TranscriptionClient struct {
	config
}

// NewTranscriptionClient returns a client for the Transcription from the given config.
func NewTranscriptionClient(c config) *TranscriptionClient {
	return &TranscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcription.Hooks(f(g(h())))`.
func (c *TranscriptionClient) Use(hooks ...Hook) {
	c.hooks.Transcription = append(c.hooks.Transcription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcription.Intercept(f(g(h())))`.
func (c *TranscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transcription = append(c.inters.Transcription, interceptors...)
}

// Create returns a builder for creating a Transcription entity.
func (c *TranscriptionClient) Create() *TranscriptionCreate {
	mutation := newTranscriptionMutation(c.config, OpCreate)
	return &TranscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transcription entities.
func (c *TranscriptionClient) CreateBulk(builders ...*TranscriptionCreate) *TranscriptionCreateBulk {
	return &TranscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptionClient) MapCreateBulk(slice any, setFunc func(*TranscriptionCreate, int)) *TranscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptionCreateBulk{err: fmt.Errorf("calling to TranscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transcription.
func (c *TranscriptionClient) Update() *TranscriptionUpdate {
	mutation := newTranscriptionMutation(c.config, OpUpdate)
	return &TranscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptionClient) UpdateOne(_m *Transcription) *TranscriptionUpdateOne {
	mutation := newTranscriptionMutation(c.config, OpUpdateOne, withTranscription(_m))
	return &TranscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptionClient) UpdateOneID(id string) *TranscriptionUpdateOne {
	mutation := newTranscriptionMutation(c.config, OpUpdateOne, withTranscriptionID(id))
	return &TranscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transcription.
func (c *TranscriptionClient) Delete() *TranscriptionDelete {
	mutation := newTranscriptionMutation(c.config, OpDelete)
	return &TranscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptionClient) DeleteOne(_m *Transcription) *TranscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptionClient) DeleteOneID(id string) *TranscriptionDeleteOne {
	builder := c.Delete().Where(transcription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptionDeleteOne{builder}
}

// Query returns a query builder for Transcription.
func (c *TranscriptionClient) Query() *TranscriptionQuery {
	return &TranscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscription},
		inters: c.Interceptors(),
	}
}

// Get returns a Transcription entity by its id.
func (c *TranscriptionClient) Get(ctx context.Context, id string) (*Transcription, error) {
	return c.Query().Where(transcription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptionClient) GetX(ctx context.Context, id string) *Transcription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySegments queries the segments edge of a Transcription.
func (c *TranscriptionClient) QuerySegments(_m *Transcription) *TranscriptSegmentQuery {
	query := (&TranscriptSegmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcription.Table, transcription.FieldID, id),
			sqlgraph.To(transcriptsegment.Table, transcriptsegment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transcription.SegmentsTable, transcription.SegmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranscriptionClient) Hooks() []Hook {
	return c.hooks.Transcription
}

// Interceptors returns the client interceptors.
func (c *TranscriptionClient) Interceptors() []Interceptor {
	return c.inters.Transcription
}

func (c *TranscriptionClient) mutate(ctx context.Context, m *TranscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Transcription mutation op: %q", m.Op())
	}
}

// VocInsightClient is a client for the VocInsight schema.
type VocInsightClient struct {
	config
}

// NewVocInsightClient returns a client for the VocInsight from the given config.
func NewVocInsightClient(c config) *VocInsightClient {
	return &VocInsightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vocinsight.Hooks(f(g(h())))`.
func (c *VocInsightClient) Use(hooks ...Hook) {
	c.hooks.VocInsight = append(c.hooks.VocInsight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vocinsight.Intercept(f(g(h())))`.
func (c *VocInsightClient) Intercept(interceptors ...Interceptor) {
	c.inters.VocInsight = append(c.inters.VocInsight, interceptors...)
}

// Create returns a builder for creating a VocInsight entity.
func (c *VocInsightClient) Create() *VocInsightCreate {
	mutation := newVocInsightMutation(c.config, OpCreate)
	return &VocInsightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VocInsight entities.
func (c *VocInsightClient) CreateBulk(builders ...*VocInsightCreate) *VocInsightCreateBulk {
	return &VocInsightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VocInsightClient) MapCreateBulk(slice any, setFunc func(*VocInsightCreate, int)) *VocInsightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VocInsightCreateBulk{err: fmt.Errorf("calling to VocInsightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VocInsightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VocInsightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VocInsight.
func (c *VocInsightClient) Update() *VocInsightUpdate {
	mutation := newVocInsightMutation(c.config, OpUpdate)
	return &VocInsightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VocInsightClient) UpdateOne(_m *VocInsight) *VocInsightUpdateOne {
	mutation := newVocInsightMutation(c.config, OpUpdateOne, withVocInsight(_m))
	return &VocInsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VocInsightClient) UpdateOneID(id string) *VocInsightUpdateOne {
	mutation := newVocInsightMutation(c.config, OpUpdateOne, withVocInsightID(id))
	return &VocInsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VocInsight.
func (c *VocInsightClient) Delete() *VocInsightDelete {
	mutation := newVocInsightMutation(c.config, OpDelete)
	return &VocInsightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VocInsightClient) DeleteOne(_m *VocInsight) *VocInsightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VocInsightClient) DeleteOneID(id string) *VocInsightDeleteOne {
	builder := c.Delete().Where(vocinsight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VocInsightDeleteOne{builder}
}

// Query returns a query builder for VocInsight.
func (c *VocInsightClient) Query() *VocInsightQuery {
	return &VocInsightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVocInsight},
		inters: c.Interceptors(),
	}
}

// Get returns a VocInsight entity by its id.
func (c *VocInsightClient) Get(ctx context.Context, id string) (*VocInsight, error) {
	return c.Query().Where(vocinsight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VocInsightClient) GetX(ctx context.Context, id string) *VocInsight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VocInsightClient) Hooks() []Hook {
	return c.hooks.VocInsight
}

// Interceptors returns the client interceptors.
func (c *VocInsightClient) Interceptors() []Interceptor {
	return c.inters.VocInsight
}

func (c *VocInsightClient) mutate(ctx context.Context, m *VocInsightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VocInsightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VocInsightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VocInsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VocInsightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VocInsight mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentPerformance, AuditResult, Call, ComplianceRule, ComplianceViolation,
		Notification, SentimentAnalysis, TranscriptSegment, Transcription,
		VocInsight []ent.Hook
	}
	inters struct {
		AgentPerformance, AuditResult, Call, ComplianceRule, ComplianceViolation,
		Notification, SentimentAnalysis, TranscriptSegment, Transcription,
		VocInsight []ent.Interceptor
	}
)
