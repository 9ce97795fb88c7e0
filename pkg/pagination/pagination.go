// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides the shared window/sort directive for API list
// endpoints.
//
// # Overview
//
// It standardizes how a result window (skip/limit) and a single-field sort
// order travel from the query interpreters to the record store, separately
// from the filter predicate itself.
package pagination

// Sort order tokens as they appear on the wire.
const (
	// OrderAscending is the wire token for an ascending sort.
	OrderAscending = 1
	// OrderDescending is the wire token for a descending sort.
	OrderDescending = -1
)

// Window describes the slice of the result set to fetch and how to order it.
type Window struct {
	// Skip is the number of matching records to pass over.
	Skip int
	// Limit is the maximum number of records to return.
	Limit int
	// SortField is the field to order by. Validated against the sortable
	// field set before a Window is ever constructed.
	SortField string
	// SortOrder is [OrderAscending] or [OrderDescending].
	SortOrder int
}

// Descending reports whether the window sorts in descending order.
func (w Window) Descending() bool {
	return w.SortOrder == OrderDescending
}
