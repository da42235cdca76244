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
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentvariant"
	"github.com/variantlab/abtest/ent/predicate"
)

// ExperimentAssignmentQuery is the builder for querying ExperimentAssignment entities.
type ExperimentAssignmentQuery struct {
	config
	ctx            *QueryContext
	order          []experimentassignment.OrderOption
	inters         []Interceptor
	predicates     []predicate.ExperimentAssignment
	withExperiment *ExperimentQuery
	withVariant    *ExperimentVariantQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExperimentAssignmentQuery builder.
func (_q *ExperimentAssignmentQuery) Where(ps ...predicate.ExperimentAssignment) *ExperimentAssignmentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExperimentAssignmentQuery) Limit(limit int) *ExperimentAssignmentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExperimentAssignmentQuery) Offset(offset int) *ExperimentAssignmentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExperimentAssignmentQuery) Unique(unique bool) *ExperimentAssignmentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExperimentAssignmentQuery) Order(o ...experimentassignment.OrderOption) *ExperimentAssignmentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExperiment chains the current query on the "experiment" edge.
func (_q *ExperimentAssignmentQuery) QueryExperiment() *ExperimentQuery {
	query := (&ExperimentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(experimentassignment.Table, experimentassignment.FieldID, selector),
			sqlgraph.To(experiment.Table, experiment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, experimentassignment.ExperimentTable, experimentassignment.ExperimentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVariant chains the current query on the "variant" edge.
func (_q *ExperimentAssignmentQuery) QueryVariant() *ExperimentVariantQuery {
	query := (&ExperimentVariantClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(experimentassignment.Table, experimentassignment.FieldID, selector),
			sqlgraph.To(experimentvariant.Table, experimentvariant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, experimentassignment.VariantTable, experimentassignment.VariantColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExperimentAssignment entity from the query.
// Returns a *NotFoundError when no ExperimentAssignment was found.
func (_q *ExperimentAssignmentQuery) First(ctx context.Context) (*ExperimentAssignment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{experimentassignment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExperimentAssignmentQuery) FirstX(ctx context.Context) *ExperimentAssignment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExperimentAssignment ID from the query.
// Returns a *NotFoundError when no ExperimentAssignment ID was found.
func (_q *ExperimentAssignmentQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{experimentassignment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExperimentAssignmentQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExperimentAssignment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExperimentAssignment entity is found.
// Returns a *NotFoundError when no ExperimentAssignment entities are found.
func (_q *ExperimentAssignmentQuery) Only(ctx context.Context) (*ExperimentAssignment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{experimentassignment.Label}
	default:
		return nil, &NotSingularError{experimentassignment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExperimentAssignmentQuery) OnlyX(ctx context.Context) *ExperimentAssignment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExperimentAssignment ID in the query.
// Returns a *NotSingularError when more than one ExperimentAssignment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExperimentAssignmentQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{experimentassignment.Label}
	default:
		err = &NotSingularError{experimentassignment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExperimentAssignmentQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExperimentAssignments.
func (_q *ExperimentAssignmentQuery) All(ctx context.Context) ([]*ExperimentAssignment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExperimentAssignment, *ExperimentAssignmentQuery]()
	return withInterceptors[[]*ExperimentAssignment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExperimentAssignmentQuery) AllX(ctx context.Context) []*ExperimentAssignment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExperimentAssignment IDs.
func (_q *ExperimentAssignmentQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(experimentassignment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExperimentAssignmentQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExperimentAssignmentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExperimentAssignmentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExperimentAssignmentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExperimentAssignmentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExperimentAssignmentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExperimentAssignmentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExperimentAssignmentQuery) Clone() *ExperimentAssignmentQuery {
	if _q == nil {
		return nil
	}
	return &ExperimentAssignmentQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]experimentassignment.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.ExperimentAssignment{}, _q.predicates...),
		withExperiment: _q.withExperiment.Clone(),
		withVariant:    _q.withVariant.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExperiment tells the query-builder to eager-load the nodes that are connected to
// the "experiment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExperimentAssignmentQuery) WithExperiment(opts ...func(*ExperimentQuery)) *ExperimentAssignmentQuery {
	query := (&ExperimentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExperiment = query
	return _q
}

// WithVariant tells the query-builder to eager-load the nodes that are connected to
// the "variant" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExperimentAssignmentQuery) WithVariant(opts ...func(*ExperimentVariantQuery)) *ExperimentAssignmentQuery {
	query := (&ExperimentVariantClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVariant = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ExperimentID int `json:"experiment_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExperimentAssignment.Query().
//		GroupBy(experimentassignment.FieldExperimentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExperimentAssignmentQuery) GroupBy(field string, fields ...string) *ExperimentAssignmentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExperimentAssignmentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = experimentassignment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ExperimentID int `json:"experiment_id,omitempty"`
//	}
//
//	client.ExperimentAssignment.Query().
//		Select(experimentassignment.FieldExperimentID).
//		Scan(ctx, &v)
func (_q *ExperimentAssignmentQuery) Select(fields ...string) *ExperimentAssignmentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExperimentAssignmentSelect{ExperimentAssignmentQuery: _q}
	sbuild.label = experimentassignment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExperimentAssignmentSelect configured with the given aggregations.
func (_q *ExperimentAssignmentQuery) Aggregate(fns ...AggregateFunc) *ExperimentAssignmentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExperimentAssignmentQuery) prepareQuery(ctx context.Context) error {
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
		if !experimentassignment.ValidColumn(f) {
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

func (_q *ExperimentAssignmentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExperimentAssignment, error) {
	var (
		nodes       = []*ExperimentAssignment{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withExperiment != nil,
			_q.withVariant != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExperimentAssignment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExperimentAssignment{config: _q.config}
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
	if query := _q.withExperiment; query != nil {
		if err := _q.loadExperiment(ctx, query, nodes, nil,
			func(n *ExperimentAssignment, e *Experiment) { n.Edges.Experiment = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVariant; query != nil {
		if err := _q.loadVariant(ctx, query, nodes, nil,
			func(n *ExperimentAssignment, e *ExperimentVariant) { n.Edges.Variant = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExperimentAssignmentQuery) loadExperiment(ctx context.Context, query *ExperimentQuery, nodes []*ExperimentAssignment, init func(*ExperimentAssignment), assign func(*ExperimentAssignment, *Experiment)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ExperimentAssignment)
	for i := range nodes {
		fk := nodes[i].ExperimentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(experiment.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "experiment_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExperimentAssignmentQuery) loadVariant(ctx context.Context, query *ExperimentVariantQuery, nodes []*ExperimentAssignment, init func(*ExperimentAssignment), assign func(*ExperimentAssignment, *ExperimentVariant)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ExperimentAssignment)
	for i := range nodes {
		fk := nodes[i].VariantID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(experimentvariant.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "variant_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ExperimentAssignmentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExperimentAssignmentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(experimentassignment.Table, experimentassignment.Columns, sqlgraph.NewFieldSpec(experimentassignment.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experimentassignment.FieldID)
		for i := range fields {
			if fields[i] != experimentassignment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withExperiment != nil {
			_spec.Node.AddColumnOnce(experimentassignment.FieldExperimentID)
		}
		if _q.withVariant != nil {
			_spec.Node.AddColumnOnce(experimentassignment.FieldVariantID)
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

func (_q *ExperimentAssignmentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(experimentassignment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = experimentassignment.Columns
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

// ExperimentAssignmentGroupBy is the group-by builder for ExperimentAssignment entities.
type ExperimentAssignmentGroupBy struct {
	selector
	build *ExperimentAssignmentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExperimentAssignmentGroupBy) Aggregate(fns ...AggregateFunc) *ExperimentAssignmentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExperimentAssignmentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExperimentAssignmentQuery, *ExperimentAssignmentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExperimentAssignmentGroupBy) sqlScan(ctx context.Context, root *ExperimentAssignmentQuery, v any) error {
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

// ExperimentAssignmentSelect is the builder for selecting fields of ExperimentAssignment entities.
type ExperimentAssignmentSelect struct {
	*ExperimentAssignmentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExperimentAssignmentSelect) Aggregate(fns ...AggregateFunc) *ExperimentAssignmentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExperimentAssignmentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExperimentAssignmentQuery, *ExperimentAssignmentSelect](ctx, _s.ExperimentAssignmentQuery, _s, _s.inters, v)
}

func (_s *ExperimentAssignmentSelect) sqlScan(ctx context.Context, root *ExperimentAssignmentQuery, v any) error {
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
