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
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/ent/experimentvariant"
	"github.com/variantlab/abtest/ent/predicate"
)

// ExperimentResultQuery is the builder for querying ExperimentResult entities.
type ExperimentResultQuery struct {
	config
	ctx         *QueryContext
	order       []experimentresult.OrderOption
	inters      []Interceptor
	predicates  []predicate.ExperimentResult
	withVariant *ExperimentVariantQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExperimentResultQuery builder.
func (_q *ExperimentResultQuery) Where(ps ...predicate.ExperimentResult) *ExperimentResultQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExperimentResultQuery) Limit(limit int) *ExperimentResultQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExperimentResultQuery) Offset(offset int) *ExperimentResultQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExperimentResultQuery) Unique(unique bool) *ExperimentResultQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExperimentResultQuery) Order(o ...experimentresult.OrderOption) *ExperimentResultQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryVariant chains the current query on the "variant" edge.
func (_q *ExperimentResultQuery) QueryVariant() *ExperimentVariantQuery {
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
			sqlgraph.From(experimentresult.Table, experimentresult.FieldID, selector),
			sqlgraph.To(experimentvariant.Table, experimentvariant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, experimentresult.VariantTable, experimentresult.VariantColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExperimentResult entity from the query.
// Returns a *NotFoundError when no ExperimentResult was found.
func (_q *ExperimentResultQuery) First(ctx context.Context) (*ExperimentResult, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{experimentresult.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExperimentResultQuery) FirstX(ctx context.Context) *ExperimentResult {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExperimentResult ID from the query.
// Returns a *NotFoundError when no ExperimentResult ID was found.
func (_q *ExperimentResultQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{experimentresult.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExperimentResultQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExperimentResult entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExperimentResult entity is found.
// Returns a *NotFoundError when no ExperimentResult entities are found.
func (_q *ExperimentResultQuery) Only(ctx context.Context) (*ExperimentResult, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{experimentresult.Label}
	default:
		return nil, &NotSingularError{experimentresult.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExperimentResultQuery) OnlyX(ctx context.Context) *ExperimentResult {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExperimentResult ID in the query.
// Returns a *NotSingularError when more than one ExperimentResult ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExperimentResultQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{experimentresult.Label}
	default:
		err = &NotSingularError{experimentresult.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExperimentResultQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExperimentResults.
func (_q *ExperimentResultQuery) All(ctx context.Context) ([]*ExperimentResult, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExperimentResult, *ExperimentResultQuery]()
	return withInterceptors[[]*ExperimentResult](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExperimentResultQuery) AllX(ctx context.Context) []*ExperimentResult {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExperimentResult IDs.
func (_q *ExperimentResultQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(experimentresult.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExperimentResultQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExperimentResultQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExperimentResultQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExperimentResultQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExperimentResultQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExperimentResultQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExperimentResultQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExperimentResultQuery) Clone() *ExperimentResultQuery {
	if _q == nil {
		return nil
	}
	return &ExperimentResultQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]experimentresult.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.ExperimentResult{}, _q.predicates...),
		withVariant: _q.withVariant.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithVariant tells the query-builder to eager-load the nodes that are connected to
// the "variant" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExperimentResultQuery) WithVariant(opts ...func(*ExperimentVariantQuery)) *ExperimentResultQuery {
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
//		VariantID int `json:"variant_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExperimentResult.Query().
//		GroupBy(experimentresult.FieldVariantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExperimentResultQuery) GroupBy(field string, fields ...string) *ExperimentResultGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExperimentResultGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = experimentresult.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		VariantID int `json:"variant_id,omitempty"`
//	}
//
//	client.ExperimentResult.Query().
//		Select(experimentresult.FieldVariantID).
//		Scan(ctx, &v)
func (_q *ExperimentResultQuery) Select(fields ...string) *ExperimentResultSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExperimentResultSelect{ExperimentResultQuery: _q}
	sbuild.label = experimentresult.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExperimentResultSelect configured with the given aggregations.
func (_q *ExperimentResultQuery) Aggregate(fns ...AggregateFunc) *ExperimentResultSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExperimentResultQuery) prepareQuery(ctx context.Context) error {
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
		if !experimentresult.ValidColumn(f) {
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

func (_q *ExperimentResultQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExperimentResult, error) {
	var (
		nodes       = []*ExperimentResult{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withVariant != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExperimentResult).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExperimentResult{config: _q.config}
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
	if query := _q.withVariant; query != nil {
		if err := _q.loadVariant(ctx, query, nodes, nil,
			func(n *ExperimentResult, e *ExperimentVariant) { n.Edges.Variant = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExperimentResultQuery) loadVariant(ctx context.Context, query *ExperimentVariantQuery, nodes []*ExperimentResult, init func(*ExperimentResult), assign func(*ExperimentResult, *ExperimentVariant)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ExperimentResult)
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

func (_q *ExperimentResultQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExperimentResultQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(experimentresult.Table, experimentresult.Columns, sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experimentresult.FieldID)
		for i := range fields {
			if fields[i] != experimentresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withVariant != nil {
			_spec.Node.AddColumnOnce(experimentresult.FieldVariantID)
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

func (_q *ExperimentResultQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(experimentresult.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = experimentresult.Columns
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

// ExperimentResultGroupBy is the group-by builder for ExperimentResult entities.
type ExperimentResultGroupBy struct {
	selector
	build *ExperimentResultQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExperimentResultGroupBy) Aggregate(fns ...AggregateFunc) *ExperimentResultGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExperimentResultGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExperimentResultQuery, *ExperimentResultGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExperimentResultGroupBy) sqlScan(ctx context.Context, root *ExperimentResultQuery, v any) error {
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

// ExperimentResultSelect is the builder for selecting fields of ExperimentResult entities.
type ExperimentResultSelect struct {
	*ExperimentResultQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExperimentResultSelect) Aggregate(fns ...AggregateFunc) *ExperimentResultSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExperimentResultSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExperimentResultQuery, *ExperimentResultSelect](ctx, _s.ExperimentResultQuery, _s, _s.inters, v)
}

func (_s *ExperimentResultSelect) sqlScan(ctx context.Context, root *ExperimentResultQuery, v any) error {
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
