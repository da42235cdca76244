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
	"github.com/variantlab/abtest/ent/experimentvariant"
	"github.com/variantlab/abtest/ent/predicate"
)

// ExperimentQuery is the builder for querying Experiment entities.
type ExperimentQuery struct {
	config
	ctx             *QueryContext
	order           []experiment.OrderOption
	inters          []Interceptor
	predicates      []predicate.Experiment
	withVariants    *ExperimentVariantQuery
	withAssignments *ExperimentAssignmentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExperimentQuery builder.
func (_q *ExperimentQuery) Where(ps ...predicate.Experiment) *ExperimentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExperimentQuery) Limit(limit int) *ExperimentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExperimentQuery) Offset(offset int) *ExperimentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExperimentQuery) Unique(unique bool) *ExperimentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExperimentQuery) Order(o ...experiment.OrderOption) *ExperimentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryVariants chains the current query on the "variants" edge.
func (_q *ExperimentQuery) QueryVariants() *ExperimentVariantQuery {
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
			sqlgraph.From(experiment.Table, experiment.FieldID, selector),
			sqlgraph.To(experimentvariant.Table, experimentvariant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, experiment.VariantsTable, experiment.VariantsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignments chains the current query on the "assignments" edge.
func (_q *ExperimentQuery) QueryAssignments() *ExperimentAssignmentQuery {
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
			sqlgraph.From(experiment.Table, experiment.FieldID, selector),
			sqlgraph.To(experimentassignment.Table, experimentassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, experiment.AssignmentsTable, experiment.AssignmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Experiment entity from the query.
// Returns a *NotFoundError when no Experiment was found.
func (_q *ExperimentQuery) First(ctx context.Context) (*Experiment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{experiment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExperimentQuery) FirstX(ctx context.Context) *Experiment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Experiment ID from the query.
// Returns a *NotFoundError when no Experiment ID was found.
func (_q *ExperimentQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{experiment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExperimentQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Experiment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Experiment entity is found.
// Returns a *NotFoundError when no Experiment entities are found.
func (_q *ExperimentQuery) Only(ctx context.Context) (*Experiment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{experiment.Label}
	default:
		return nil, &NotSingularError{experiment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExperimentQuery) OnlyX(ctx context.Context) *Experiment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Experiment ID in the query.
// Returns a *NotSingularError when more than one Experiment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExperimentQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{experiment.Label}
	default:
		err = &NotSingularError{experiment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExperimentQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Experiments.
func (_q *ExperimentQuery) All(ctx context.Context) ([]*Experiment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Experiment, *ExperimentQuery]()
	return withInterceptors[[]*Experiment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExperimentQuery) AllX(ctx context.Context) []*Experiment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Experiment IDs.
func (_q *ExperimentQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(experiment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExperimentQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExperimentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExperimentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExperimentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExperimentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExperimentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExperimentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExperimentQuery) Clone() *ExperimentQuery {
	if _q == nil {
		return nil
	}
	return &ExperimentQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]experiment.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Experiment{}, _q.predicates...),
		withVariants:    _q.withVariants.Clone(),
		withAssignments: _q.withAssignments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithVariants tells the query-builder to eager-load the nodes that are connected to
// the "variants" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExperimentQuery) WithVariants(opts ...func(*ExperimentVariantQuery)) *ExperimentQuery {
	query := (&ExperimentVariantClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVariants = query
	return _q
}

// WithAssignments tells the query-builder to eager-load the nodes that are connected to
// the "assignments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExperimentQuery) WithAssignments(opts ...func(*ExperimentAssignmentQuery)) *ExperimentQuery {
	query := (&ExperimentAssignmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssignments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Experiment.Query().
//		GroupBy(experiment.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExperimentQuery) GroupBy(field string, fields ...string) *ExperimentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExperimentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = experiment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Experiment.Query().
//		Select(experiment.FieldName).
//		Scan(ctx, &v)
func (_q *ExperimentQuery) Select(fields ...string) *ExperimentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExperimentSelect{ExperimentQuery: _q}
	sbuild.label = experiment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExperimentSelect configured with the given aggregations.
func (_q *ExperimentQuery) Aggregate(fns ...AggregateFunc) *ExperimentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExperimentQuery) prepareQuery(ctx context.Context) error {
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
		if !experiment.ValidColumn(f) {
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

func (_q *ExperimentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Experiment, error) {
	var (
		nodes       = []*Experiment{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withVariants != nil,
			_q.withAssignments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Experiment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Experiment{config: _q.config}
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
	if query := _q.withVariants; query != nil {
		if err := _q.loadVariants(ctx, query, nodes,
			func(n *Experiment) { n.Edges.Variants = []*ExperimentVariant{} },
			func(n *Experiment, e *ExperimentVariant) { n.Edges.Variants = append(n.Edges.Variants, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssignments; query != nil {
		if err := _q.loadAssignments(ctx, query, nodes,
			func(n *Experiment) { n.Edges.Assignments = []*ExperimentAssignment{} },
			func(n *Experiment, e *ExperimentAssignment) { n.Edges.Assignments = append(n.Edges.Assignments, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExperimentQuery) loadVariants(ctx context.Context, query *ExperimentVariantQuery, nodes []*Experiment, init func(*Experiment), assign func(*Experiment, *ExperimentVariant)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Experiment)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(experimentvariant.FieldExperimentID)
	}
	query.Where(predicate.ExperimentVariant(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(experiment.VariantsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExperimentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "experiment_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ExperimentQuery) loadAssignments(ctx context.Context, query *ExperimentAssignmentQuery, nodes []*Experiment, init func(*Experiment), assign func(*Experiment, *ExperimentAssignment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Experiment)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(experimentassignment.FieldExperimentID)
	}
	query.Where(predicate.ExperimentAssignment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(experiment.AssignmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExperimentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "experiment_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ExperimentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExperimentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(experiment.Table, experiment.Columns, sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experiment.FieldID)
		for i := range fields {
			if fields[i] != experiment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *ExperimentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(experiment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = experiment.Columns
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

// ExperimentGroupBy is the group-by builder for Experiment entities.
type ExperimentGroupBy struct {
	selector
	build *ExperimentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExperimentGroupBy) Aggregate(fns ...AggregateFunc) *ExperimentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExperimentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExperimentQuery, *ExperimentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExperimentGroupBy) sqlScan(ctx context.Context, root *ExperimentQuery, v any) error {
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

// ExperimentSelect is the builder for selecting fields of Experiment entities.
type ExperimentSelect struct {
	*ExperimentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExperimentSelect) Aggregate(fns ...AggregateFunc) *ExperimentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExperimentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExperimentQuery, *ExperimentSelect](ctx, _s.ExperimentQuery, _s, _s.inters, v)
}

func (_s *ExperimentSelect) sqlScan(ctx context.Context, root *ExperimentQuery, v any) error {
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
