// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/cardex/internal/platform/database/schema"
	"github.com/taibuivan/cardex/internal/platform/dberr"
	"github.com/taibuivan/cardex/pkg/pagination"
)

// # Postgres Gateway

// filterColumns whitelists the card columns a compiled filter may reference.
// The interpreters only emit these fields, but the gateway re-checks so that
// no identifier ever reaches the SQL text unvetted.
var filterColumns = map[string]string{
	FieldMonster: schema.CoreCard.Monster,
	FieldType:    schema.CoreCard.Type,
	FieldCard:    schema.CoreCard.Card,
	FieldYear:    schema.CoreCard.Year,
	FieldGrade:   schema.CoreCard.Grade,
	FieldPrice:   schema.CoreCard.Price,
}

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool

	// table is the configured card table (operator-supplied, like the
	// collection name in a document store).
	table string
}

// NewPostgresRepository returns a fully wired postgres implementation
// reading from the given table.
func NewPostgresRepository(db *pgxpool.Pool, table string) *PostgresRepository {
	if table == "" {
		table = schema.CoreCard.Table
	}
	return &PostgresRepository{db: db, table: table}
}

/*
FindCards retrieves every record matching the compiled filter.

Description: Compiles the filter tree into a parameterized WHERE clause and
selects the projection columns only; identifiers and timestamps stay inside
the store.

Parameters:
  - context: context.Context
  - filter: Filter

Returns:
  - []*Card: All matching records
  - error: Database execution or scanning errors
*/
func (repository *PostgresRepository) FindCards(context context.Context, filter Filter) ([]*Card, error) {

	// Assemble selection plus dynamic predicate
	var queryBuilder strings.Builder
	queryBuilder.WriteString(repository.selectClause())

	where, args := CompileFilter(filter, 1)
	queryBuilder.WriteString(where)

	return repository.queryCards(context, queryBuilder.String(), args)
}

/*
FindCardsWindow retrieves one sorted window of matching records.

Description: Identical predicate compilation as [FindCards], with a
whitelisted ORDER BY column and LIMIT/OFFSET window applied on top.

Parameters:
  - context: context.Context
  - filter: Filter
  - window: pagination.Window

Returns:
  - []*Card: The requested result slice
  - error: Database execution or scanning errors
*/
func (repository *PostgresRepository) FindCardsWindow(context context.Context, filter Filter, window pagination.Window) ([]*Card, error) {

	var queryBuilder strings.Builder
	queryBuilder.WriteString(repository.selectClause())

	where, args := CompileFilter(filter, 1)
	queryBuilder.WriteString(where)

	// Sort column comes from the validated sortable set; fall back to the
	// primary key ordering surrogate if the directive is empty.
	sortColumn, ok := filterColumns[window.SortField]
	if !ok {
		sortColumn = schema.CoreCard.CreatedAt
	}

	direction := "ASC"
	if window.Descending() {
		direction = "DESC"
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", sortColumn, direction))

	argID := len(args) + 1
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, window.Limit, window.Skip)

	return repository.queryCards(context, queryBuilder.String(), args)
}

/*
CountCards counts every record matching the filter, ignoring any window.

Parameters:
  - context: context.Context
  - filter: Filter

Returns:
  - int: Total matching record count
  - error: Database execution errors
*/
func (repository *PostgresRepository) CountCards(context context.Context, filter Filter) (int, error) {

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("SELECT COUNT(*) FROM %s", repository.table))

	where, args := CompileFilter(filter, 1)
	queryBuilder.WriteString(where)

	var total int
	if err := repository.db.QueryRow(context, queryBuilder.String(), args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_cards")
	}

	return total, nil
}

// selectClause renders the projection selection over the configured table.
func (repository *PostgresRepository) selectClause() string {
	return fmt.Sprintf(
		"SELECT %s FROM %s",
		strings.Join(schema.CoreCard.ProjectionColumns(), ", "),
		repository.table,
	)
}

// queryCards executes a compiled selection and hydrates the result slice.
func (repository *PostgresRepository) queryCards(context context.Context, query string, args []any) ([]*Card, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_cards")
	}
	defer rows.Close()

	var cards []*Card
	for rows.Next() {
		c := &Card{}
		if err := rows.Scan(
			&c.Monster, &c.Type, &c.Card, &c.Year,
			&c.Grade, &c.Image, &c.AuctionURL, &c.Price,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_card")
		}
		cards = append(cards, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_cards")
	}

	return cards, nil
}

// # Filter Compilation

/*
CompileFilter renders a filter tree into a parameterized SQL predicate.

Description: Each clause becomes one ANDed term. A multi-branch clause
renders as a parenthesized OR of its branches; each branch is the AND of its
conditions. Values travel exclusively through positional arguments; only
whitelisted column names appear in the SQL text.

Parameters:
  - filter: Filter
  - startArg: int (first positional argument index)

Returns:
  - string: " WHERE ..." fragment, or "" for an empty filter
  - []any: Positional argument values
*/
func CompileFilter(filter Filter, startArg int) (string, []any) {
	if len(filter.And) == 0 {
		return "", nil
	}

	var args []any
	argID := startArg
	terms := make([]string, 0, len(filter.And))

	for _, clause := range filter.And {
		branches := make([]string, 0, len(clause.Or))

		for _, branch := range clause.Or {
			conditions := make([]string, 0, len(branch))
			for _, condition := range branch {
				sql, usesArg := renderCondition(condition, argID)
				conditions = append(conditions, sql)
				if usesArg {
					args = append(args, condition.Value)
					argID++
				}
			}

			if len(conditions) == 1 {
				branches = append(branches, conditions[0])
			} else {
				branches = append(branches, "("+strings.Join(conditions, " AND ")+")")
			}
		}

		if len(branches) == 1 {
			terms = append(terms, branches[0])
		} else {
			terms = append(terms, "("+strings.Join(branches, " OR ")+")")
		}
	}

	return " WHERE " + strings.Join(terms, " AND "), args
}

// renderCondition renders one comparison. The boolean reports whether the
// term consumed the positional argument.
func renderCondition(condition Condition, argID int) (string, bool) {
	column, ok := filterColumns[condition.Field]
	if !ok {
		// An unmapped field can only come from a programming error;
		// compile it to a term that matches nothing.
		return "FALSE", false
	}

	switch condition.Op {
	case OpEq:
		return fmt.Sprintf("%s = $%d", column, argID), true
	case OpIn:
		return fmt.Sprintf("%s = ANY($%d)", column, argID), true
	case OpGt:
		return fmt.Sprintf("%s > $%d", column, argID), true
	case OpLte:
		return fmt.Sprintf("%s <= $%d", column, argID), true
	case OpRegex:
		return fmt.Sprintf("%s ~* $%d", column, argID), true
	}

	return "FALSE", false
}
