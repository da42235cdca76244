// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/ent/experimentvariant"
	"github.com/variantlab/abtest/ent/predicate"
)

// ExperimentVariantQuery is the builder for querying ExperimentVariant entities.
type ExperimentVariantQuery struct {
	config
	ctx             *QueryContext
	order           []experimentvariant.OrderOption
	inters          []Interceptor
	predicates      []predicate.ExperimentVariant
	withExperiment  *ExperimentQuery
	withAssignments *ExperimentAssignmentQuery
	withResults     *ExperimentResultQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExperimentVariantQuery builder.
func (_q *ExperimentVariantQuery) Where(ps ...predicate.ExperimentVariant) *ExperimentVariantQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExperimentVariantQuery) Limit(limit int) *ExperimentVariantQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExperimentVariantQuery) Offset(offset int) *ExperimentVariantQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExperimentVariantQuery) Unique(unique bool) *ExperimentVariantQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExperimentVariantQuery) Order(o ...experimentvariant.OrderOption) *ExperimentVariantQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExperiment chains the current query on the "experiment" edge.
func (_q *ExperimentVariantQuery) QueryExperiment() *ExperimentQuery {
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
			sqlgraph.From(experimentvariant.Table, experimentvariant.FieldID, selector),
			sqlgraph.To(experiment.Table, experiment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, experimentvariant.ExperimentTable, experimentvariant.ExperimentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignments chains the current query on the "assignments" edge.
func (_q *ExperimentVariantQuery) QueryAssignments() *ExperimentAssignmentQuery {
	query := (&ExperimentAssignmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(experimentvariant.Table, experimentvariant.FieldID, selector),
			sqlgraph.To(experimentassignment.Table, experimentassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, experimentvariant.AssignmentsTable, experimentvariant.AssignmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryResults chains the current query on the "results" edge.
func (_q *ExperimentVariantQuery) QueryResults() *ExperimentResultQuery {
	query := (&ExperimentResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(experimentvariant.Table, experimentvariant.FieldID, selector),
			sqlgraph.To(experimentresult.Table, experimentresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, experimentvariant.ResultsTable, experimentvariant.ResultsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExperimentVariant entity from the query.
// Returns a *NotFoundError when no ExperimentVariant was found.
func (_q *ExperimentVariantQuery) First(ctx context.Context) (*ExperimentVariant, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{experimentvariant.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExperimentVariantQuery) FirstX(ctx context.Context) *ExperimentVariant {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExperimentVariant ID from the query.
// Returns a *NotFoundError when no ExperimentVariant ID was found.
func (_q *ExperimentVariantQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{experimentvariant.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExperimentVariantQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExperimentVariant entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExperimentVariant entity is found.
// Returns a *NotFoundError when no ExperimentVariant entities are found.
func (_q *ExperimentVariantQuery) Only(ctx context.Context) (*ExperimentVariant, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{experimentvariant.Label}
	default:
		return nil, &NotSingularError{experimentvariant.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExperimentVariantQuery) OnlyX(ctx context.Context) *ExperimentVariant {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExperimentVariant ID in the query.
// Returns a *NotSingularError when more than one ExperimentVariant ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExperimentVariantQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{experimentvariant.Label}
	default:
		err = &NotSingularError{experimentvariant.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExperimentVariantQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExperimentVariants.
func (_q *ExperimentVariantQuery) All(ctx context.Context) ([]*ExperimentVariant, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExperimentVariant, *ExperimentVariantQuery]()
	return withInterceptors[[]*ExperimentVariant](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExperimentVariantQuery) AllX(ctx context.Context) []*ExperimentVariant {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExperimentVariant IDs.
func (_q *ExperimentVariantQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(experimentvariant.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExperimentVariantQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExperimentVariantQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExperimentVariantQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExperimentVariantQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExperimentVariantQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExperimentVariantQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExperimentVariantQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExperimentVariantQuery) Clone() *ExperimentVariantQuery {
	if _q == nil {
		return nil
	}
	return &ExperimentVariantQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]experimentvariant.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.ExperimentVariant{}, _q.predicates...),
		withExperiment:  _q.withExperiment.Clone(),
		withAssignments: _q.withAssignments.Clone(),
		withResults:     _q.withResults.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExperiment tells the query-builder to eager-load the nodes that are connected to
// the "experiment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExperimentVariantQuery) WithExperiment(opts ...func(*ExperimentQuery)) *ExperimentVariantQuery {
	query := (&ExperimentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExperiment = query
	return _q
}

// WithAssignments tells the query-builder to eager-load the nodes that are connected to
// the "assignments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExperimentVariantQuery) WithAssignments(opts ...func(*ExperimentAssignmentQuery)) *ExperimentVariantQuery {
	query := (&ExperimentAssignmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssignments = query
	return _q
}

// WithResults tells the query-builder to eager-load the nodes that are connected to
// the "results" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExperimentVariantQuery) WithResults(opts ...func(*ExperimentResultQuery)) *ExperimentVariantQuery {
	query := (&ExperimentResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withResults = query
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
//	client.ExperimentVariant.Query().
//		GroupBy(experimentvariant.FieldExperimentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExperimentVariantQuery) GroupBy(field string, fields ...string) *ExperimentVariantGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExperimentVariantGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = experimentvariant.Label
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
//	client.ExperimentVariant.Query().
//		Select(experimentvariant.FieldExperimentID).
//		Scan(ctx, &v)
func (_q *ExperimentVariantQuery) Select(fields ...string) *ExperimentVariantSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExperimentVariantSelect{ExperimentVariantQuery: _q}
	sbuild.label = experimentvariant.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExperimentVariantSelect configured with the given aggregations.
func (_q *ExperimentVariantQuery) Aggregate(fns ...AggregateFunc) *ExperimentVariantSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExperimentVariantQuery) prepareQuery(ctx context.Context) error {
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
		if !experimentvariant.ValidColumn(f) {
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

func (_q *ExperimentVariantQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExperimentVariant, error) {
	var (
		nodes       = []*ExperimentVariant{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withExperiment != nil,
			_q.withAssignments != nil,
			_q.withResults != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExperimentVariant).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExperimentVariant{config: _q.config}
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
			func(n *ExperimentVariant, e *Experiment) { n.Edges.Experiment = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssignments; query != nil {
		if err := _q.loadAssignments(ctx, query, nodes,
			func(n *ExperimentVariant) { n.Edges.Assignments = []*ExperimentAssignment{} },
			func(n *ExperimentVariant, e *ExperimentAssignment) {
				n.Edges.Assignments = append(n.Edges.Assignments, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withResults; query != nil {
		if err := _q.loadResults(ctx, query, nodes,
			func(n *ExperimentVariant) { n.Edges.Results = []*ExperimentResult{} },
			func(n *ExperimentVariant, e *ExperimentResult) { n.Edges.Results = append(n.Edges.Results, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExperimentVariantQuery) loadExperiment(ctx context.Context, query *ExperimentQuery, nodes []*ExperimentVariant, init func(*ExperimentVariant), assign func(*ExperimentVariant, *Experiment)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ExperimentVariant)
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
func (_q *ExperimentVariantQuery) loadAssignments(ctx context.Context, query *ExperimentAssignmentQuery, nodes []*ExperimentVariant, init func(*ExperimentVariant), assign func(*ExperimentVariant, *ExperimentAssignment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ExperimentVariant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(experimentassignment.FieldVariantID)
	}
	query.Where(predicate.ExperimentAssignment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(experimentvariant.AssignmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.VariantID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "variant_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ExperimentVariantQuery) loadResults(ctx context.Context, query *ExperimentResultQuery, nodes []*ExperimentVariant, init func(*ExperimentVariant), assign func(*ExperimentVariant, *ExperimentResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ExperimentVariant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(experimentresult.FieldVariantID)
	}
	query.Where(predicate.ExperimentResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(experimentvariant.ResultsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.VariantID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "variant_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ExperimentVariantQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExperimentVariantQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(experimentvariant.Table, experimentvariant.Columns, sqlgraph.NewFieldSpec(experimentvariant.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experimentvariant.FieldID)
		for i := range fields {
			if fields[i] != experimentvariant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withExperiment != nil {
			_spec.Node.AddColumnOnce(experimentvariant.FieldExperimentID)
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

func (_q *ExperimentVariantQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(experimentvariant.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = experimentvariant.Columns
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

// ExperimentVariantGroupBy is the group-by builder for ExperimentVariant entities.
type ExperimentVariantGroupBy struct {
	selector
	build *ExperimentVariantQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExperimentVariantGroupBy) Aggregate(fns ...AggregateFunc) *ExperimentVariantGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExperimentVariantGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExperimentVariantQuery, *ExperimentVariantGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExperimentVariantGroupBy) sqlScan(ctx context.Context, root *ExperimentVariantQuery, v any) error {
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

// ExperimentVariantSelect is the builder for selecting fields of ExperimentVariant entities.
type ExperimentVariantSelect struct {
	*ExperimentVariantQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExperimentVariantSelect) Aggregate(fns ...AggregateFunc) *ExperimentVariantSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExperimentVariantSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExperimentVariantQuery, *ExperimentVariantSelect](ctx, _s.ExperimentVariantQuery, _s, _s.inters, v)
}

func (_s *ExperimentVariantSelect) sqlScan(ctx context.Context, root *ExperimentVariantQuery, v any) error {
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
