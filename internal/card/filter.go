// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

// # Compiled Filter Tree

// Op identifies a comparison operator inside a compiled filter.
//
// The set is deliberately small: it is exactly what the two interpreters can
// produce and what the store gateway knows how to translate.
type Op int

const (
	// OpEq matches a column equal to a scalar value.
	OpEq Op = iota
	// OpIn matches a column equal to any member of a value list.
	OpIn
	// OpGt matches a numeric column strictly greater than the value.
	OpGt
	// OpLte matches a numeric column less than or equal to the value.
	OpLte
	// OpRegex matches a text column against a case-insensitive pattern.
	OpRegex
)

// Condition is a single comparison against one card field.
//
// Value holds a scalar for [OpEq], [OpGt], [OpLte] and [OpRegex], or a slice
// ([]string / []float64) for [OpIn].
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Branch is a conjunction of conditions forming one arm of a disjunction.
// A bucket such as "2000-2010" compiles to the two-condition branch
// (year > 2000 AND year <= 2010).
type Branch []Condition

// Clause is the per-field unit of a compiled filter: a disjunction of
// branches. A single-condition clause is a one-branch, one-condition tree.
type Clause struct {
	Or []Branch
}

// Filter is the abstract boolean predicate handed to the store gateway:
// a conjunction across all clauses. An empty filter matches every record.
//
// The tree is request-scoped and immutable once built; interpreters are the
// only producers and the store gateway the only consumer.
type Filter struct {
	And []Clause
}

// # Constructors

// Cond builds a single [Condition].
func Cond(field string, op Op, value any) Condition {
	return Condition{Field: field, Op: op, Value: value}
}

// Single wraps one condition into a one-branch clause.
func Single(condition Condition) Clause {
	return Clause{Or: []Branch{{condition}}}
}

// AnyOf builds a clause matching when any branch matches.
func AnyOf(branches ...Branch) Clause {
	return Clause{Or: branches}
}

// Conjunction builds a filter ANDing the given clauses.
func Conjunction(clauses ...Clause) Filter {
	return Filter{And: clauses}
}
