// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"context"

	"github.com/taibuivan/cardex/pkg/pagination"
)

// # Record Store Gateway

// Repository defines the read-only data access contract for card records.
//
// The catalogue never writes through this interface; records are loaded out
// of band and the service only compiles filters against them.
type Repository interface {

	/*
		FindCards retrieves every record matching the compiled filter.

		Parameters:
		  - context: context.Context
		  - filter: Filter (compiled predicate tree)

		Returns:
		  - []*Card: All matching records, store order
		  - error: Database execution failures
	*/
	FindCards(context context.Context, filter Filter) ([]*Card, error)

	/*
		FindCardsWindow retrieves one sorted window of matching records.

		Parameters:
		  - context: context.Context
		  - filter: Filter
		  - window: pagination.Window (skip/limit/sort directive)

		Returns:
		  - []*Card: The requested result slice
		  - error: Database execution failures
	*/
	FindCardsWindow(context context.Context, filter Filter, window pagination.Window) ([]*Card, error)

	/*
		CountCards counts every record matching the filter, ignoring any
		window directive.

		Parameters:
		  - context: context.Context
		  - filter: Filter

		Returns:
		  - int: Total matching record count
		  - error: Database execution failures
	*/
	CountCards(context context.Context, filter Filter) (int, error)
}
