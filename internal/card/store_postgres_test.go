// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cardex/internal/card"
)

/*
TestCompileFilter_Empty verifies that the match-all filter renders no WHERE
clause and no arguments.
*/
func TestCompileFilter_Empty(t *testing.T) {
	where, args := card.CompileFilter(card.Filter{}, 1)

	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

/*
TestCompileFilter_SingleEquality verifies the simplest one-condition tree.
*/
func TestCompileFilter_SingleEquality(t *testing.T) {
	filter := card.Conjunction(card.Single(card.Cond(card.FieldMonster, card.OpEq, "voltmaw")))

	where, args := card.CompileFilter(filter, 1)

	assert.Equal(t, " WHERE monster = $1", where)
	assert.Equal(t, []any{"voltmaw"}, args)
}

/*
TestCompileFilter_Operators verifies each operator's SQL rendering.
*/
func TestCompileFilter_Operators(t *testing.T) {
	cases := []struct {
		name     string
		cond     card.Condition
		expected string
	}{
		{"in", card.Cond(card.FieldType, card.OpIn, []string{"thunder"}), " WHERE type = ANY($1)"},
		{"gt", card.Cond(card.FieldPrice, card.OpGt, 200.0), " WHERE price > $1"},
		{"lte", card.Cond(card.FieldYear, card.OpLte, 2000), " WHERE year <= $1"},
		{"regex", card.Cond(card.FieldCard, card.OpRegex, "promo"), " WHERE card ~* $1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := card.CompileFilter(card.Conjunction(card.Single(tc.cond)), 1)

			assert.Equal(t, tc.expected, where)
			require.Len(t, args, 1)
			assert.Equal(t, tc.cond.Value, args[0])
		})
	}
}

/*
TestCompileFilter_Disjunction verifies that multi-branch clauses render as a
parenthesized OR with branch-level ANDs.
*/
func TestCompileFilter_Disjunction(t *testing.T) {
	filter := card.Conjunction(card.AnyOf(
		card.Branch{card.Cond(card.FieldYear, card.OpLte, 2000)},
		card.Branch{
			card.Cond(card.FieldYear, card.OpGt, 2010),
			card.Cond(card.FieldYear, card.OpLte, 2020),
		},
	))

	where, args := card.CompileFilter(filter, 1)

	assert.Equal(t, " WHERE (year <= $1 OR (year > $2 AND year <= $3))", where)
	assert.Equal(t, []any{2000, 2010, 2020}, args)
}

/*
TestCompileFilter_MultipleClauses verifies that clauses AND together with
consecutive argument numbering.
*/
func TestCompileFilter_MultipleClauses(t *testing.T) {
	filter := card.Conjunction(
		card.Single(card.Cond(card.FieldType, card.OpIn, []string{"thunder", "undead"})),
		card.Single(card.Cond(card.FieldGrade, card.OpIn, []float64{9, 10})),
	)

	where, args := card.CompileFilter(filter, 1)

	assert.Equal(t, " WHERE type = ANY($1) AND grade = ANY($2)", where)
	require.Len(t, args, 2)
}

/*
TestCompileFilter_StartArg verifies that argument numbering honors a non-unit
starting index.
*/
func TestCompileFilter_StartArg(t *testing.T) {
	filter := card.Conjunction(card.Single(card.Cond(card.FieldMonster, card.OpEq, "voltmaw")))

	where, _ := card.CompileFilter(filter, 4)

	assert.Equal(t, " WHERE monster = $4", where)
}

/*
TestCompileFilter_UnknownField verifies that an unmapped field compiles to a
term matching nothing and consumes no argument.
*/
func TestCompileFilter_UnknownField(t *testing.T) {
	filter := card.Conjunction(
		card.Single(card.Cond("bogus", card.OpEq, "x")),
		card.Single(card.Cond(card.FieldMonster, card.OpEq, "voltmaw")),
	)

	where, args := card.CompileFilter(filter, 1)

	assert.Equal(t, " WHERE FALSE AND monster = $1", where)
	assert.Equal(t, []any{"voltmaw"}, args)
}
