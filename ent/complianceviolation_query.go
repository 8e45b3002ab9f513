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
	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/ent/complianceviolation"
	"github.com/callsight/callsight/ent/predicate"
)

// ComplianceViolationQuery is the builder for querying ComplianceViolation entities.
type ComplianceViolationQuery struct {
	config
	ctx             *QueryContext
	order           []complianceviolation.OrderOption
	inters          []Interceptor
	predicates      []predicate.ComplianceViolation
	withAuditResult *AuditResultQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ComplianceViolationQuery builder.
func (_q *ComplianceViolationQuery) Where(ps ...predicate.ComplianceViolation) *ComplianceViolationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ComplianceViolationQuery) Limit(limit int) *ComplianceViolationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ComplianceViolationQuery) Offset(offset int) *ComplianceViolationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ComplianceViolationQuery) Unique(unique bool) *ComplianceViolationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ComplianceViolationQuery) Order(o ...complianceviolation.OrderOption) *ComplianceViolationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAuditResult chains the current query on the "audit_result" edge.
func (_q *ComplianceViolationQuery) QueryAuditResult() *AuditResultQuery {
	query := (&AuditResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(complianceviolation.Table, complianceviolation.FieldID, selector),
			sqlgraph.To(auditresult.Table, auditresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, complianceviolation.AuditResultTable, complianceviolation.AuditResultColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ComplianceViolation entity from the query.
// Returns a *NotFoundError when no ComplianceViolation was found.
func (_q *ComplianceViolationQuery) First(ctx context.Context) (*ComplianceViolation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{complianceviolation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ComplianceViolationQuery) FirstX(ctx context.Context) *ComplianceViolation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ComplianceViolation ID from the query.
// Returns a *NotFoundError when no ComplianceViolation ID was found.
func (_q *ComplianceViolationQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{complianceviolation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ComplianceViolationQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ComplianceViolation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ComplianceViolation entity is found.
// Returns a *NotFoundError when no ComplianceViolation entities are found.
func (_q *ComplianceViolationQuery) Only(ctx context.Context) (*ComplianceViolation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{complianceviolation.Label}
	default:
		return nil, &NotSingularError{complianceviolation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ComplianceViolationQuery) OnlyX(ctx context.Context) *ComplianceViolation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ComplianceViolation ID in the query.
// Returns a *NotSingularError when more than one ComplianceViolation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ComplianceViolationQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{complianceviolation.Label}
	default:
		err = &NotSingularError{complianceviolation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ComplianceViolationQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ComplianceViolations.
func (_q *ComplianceViolationQuery) All(ctx context.Context) ([]*ComplianceViolation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ComplianceViolation, *ComplianceViolationQuery]()
	return withInterceptors[[]*ComplianceViolation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ComplianceViolationQuery) AllX(ctx context.Context) []*ComplianceViolation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ComplianceViolation IDs.
func (_q *ComplianceViolationQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(complianceviolation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ComplianceViolationQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ComplianceViolationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ComplianceViolationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ComplianceViolationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ComplianceViolationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ComplianceViolationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ComplianceViolationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ComplianceViolationQuery) Clone() *ComplianceViolationQuery {
	if _q == nil {
		return nil
	}
	return &ComplianceViolationQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]complianceviolation.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.ComplianceViolation{}, _q.predicates...),
		withAuditResult: _q.withAuditResult.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAuditResult tells the query-builder to eager-load the nodes that are connected to
// the "audit_result" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ComplianceViolationQuery) WithAuditResult(opts ...func(*AuditResultQuery)) *ComplianceViolationQuery {
	query := (&AuditResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAuditResult = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AuditResultID string `json:"audit_result_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ComplianceViolation.Query().
//		GroupBy(complianceviolation.FieldAuditResultID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ComplianceViolationQuery) GroupBy(field string, fields ...string) *ComplianceViolationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ComplianceViolationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = complianceviolation.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AuditResultID string `json:"audit_result_id,omitempty"`
//	}
//
//	client.ComplianceViolation.Query().
//		Select(complianceviolation.FieldAuditResultID).
//		Scan(ctx, &v)
func (_q *ComplianceViolationQuery) Select(fields ...string) *ComplianceViolationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ComplianceViolationSelect{ComplianceViolationQuery: _q}
	sbuild.label = complianceviolation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ComplianceViolationSelect configured with the given aggregations.
func (_q *ComplianceViolationQuery) Aggregate(fns ...AggregateFunc) *ComplianceViolationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ComplianceViolationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !complianceviolation.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ComplianceViolationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ComplianceViolation, error) {
	var (
		nodes       = []*ComplianceViolation{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withAuditResult != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ComplianceViolation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ComplianceViolation{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAuditResult; query != nil {
		if err := _q.loadAuditResult(ctx, query, nodes, nil,
			func(n *ComplianceViolation, e *AuditResult) { n.Edges.AuditResult = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ComplianceViolationQuery) loadAuditResult(ctx context.Context, query *AuditResultQuery, nodes []*ComplianceViolation, init func(*ComplianceViolation), assign func(*ComplianceViolation, *AuditResult)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ComplianceViolation)
	for i := range nodes {
		fk := nodes[i].AuditResultID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(auditresult.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "audit_result_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ComplianceViolationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ComplianceViolationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(complianceviolation.Table, complianceviolation.Columns, sqlgraph.NewFieldSpec(complianceviolation.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, complianceviolation.FieldID)
		for i := range fields {
			if fields[i] != complianceviolation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAuditResult != nil {
			_spec.Node.AddColumnOnce(complianceviolation.FieldAuditResultID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ComplianceViolationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(complianceviolation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = complianceviolation.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ComplianceViolationGroupBy is the group-by builder for ComplianceViolation entities.
type ComplianceViolationGroupBy struct {
	selector
	build *ComplianceViolationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ComplianceViolationGroupBy) Aggregate(fns ...AggregateFunc) *ComplianceViolationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ComplianceViolationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ComplianceViolationQuery, *ComplianceViolationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ComplianceViolationGroupBy) sqlScan(ctx context.Context, root *ComplianceViolationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ComplianceViolationSelect is the builder for selecting fields of ComplianceViolation entities.
type ComplianceViolationSelect struct {
	*ComplianceViolationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ComplianceViolationSelect) Aggregate(fns ...AggregateFunc) *ComplianceViolationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ComplianceViolationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ComplianceViolationQuery, *ComplianceViolationSelect](ctx, _s.ComplianceViolationQuery, _s, _s.inters, v)
}

func (_s *ComplianceViolationSelect) sqlScan(ctx context.Context, root *ComplianceViolationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
