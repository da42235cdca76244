// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Experiment is the predicate function for experiment builders.
type Experiment func(*sql.Selector)

// ExperimentAssignment is the predicate function for experimentassignment builders.
type ExperimentAssignment func(*sql.Selector)

// ExperimentResult is the predicate function for experimentresult builders.
type ExperimentResult func(*sql.Selector)

// ExperimentVariant is the predicate function for experimentvariant builders.
type ExperimentVariant func(*sql.Selector)
