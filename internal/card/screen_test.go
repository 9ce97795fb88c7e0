// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cardex/internal/card"
	"github.com/taibuivan/cardex/pkg/pagination"
)

// directives returns the mandatory pagination/sort parameters every screen
// query must carry.
func directives() url.Values {
	return url.Values{
		"start": {"0"},
		"count": {"10"},
		"sort":  {"price,-1"},
	}
}

/*
TestScreen_FullQuery verifies a representative multi-field query: every field
contributes one clause and the directives shape the window.
*/
func TestScreen_FullQuery(t *testing.T) {
	interpreter := card.NewScreenInterpreter()

	raw := directives()
	raw.Set("monster", "voltmaw,thundrak")
	raw.Set("type", "thunder")
	raw.Set("grade", "9,10")
	raw.Set("year", "2010-2020")
	raw.Set("price", "$50-$100")

	filter, window, err := interpreter.Build(raw)

	require.NoError(t, err)
	assert.Len(t, filter.And, 5)

	assert.Equal(t, 0, window.Skip)
	assert.Equal(t, 10, window.Limit)
	assert.Equal(t, "price", window.SortField)
	assert.Equal(t, pagination.OrderDescending, window.SortOrder)
	assert.True(t, window.Descending())
}

/*
TestScreen_DirectivesOnly verifies that a query with no filterable fields
compiles to the match-all filter.
*/
func TestScreen_DirectivesOnly(t *testing.T) {
	interpreter := card.NewScreenInterpreter()

	filter, window, err := interpreter.Build(directives())

	require.NoError(t, err)
	assert.Empty(t, filter.And)
	assert.Equal(t, 10, window.Limit)
}

/*
TestScreen_GradeZero verifies that grade 0 passes the numeric domain check.
*/
func TestScreen_GradeZero(t *testing.T) {
	interpreter := card.NewScreenInterpreter()

	raw := directives()
	raw.Set("grade", "0")

	filter, _, err := interpreter.Build(raw)

	require.NoError(t, err)
	require.Len(t, filter.And, 1)
	condition := filter.And[0].Or[0][0]
	assert.Equal(t, card.OpIn, condition.Op)
	assert.Equal(t, []float64{0}, condition.Value)
}

/*
TestScreen_YearBuckets verifies that multiple year labels compile to a
disjunction of range branches, with the open bucket unbounded above.
*/
func TestScreen_YearBuckets(t *testing.T) {
	interpreter := card.NewScreenInterpreter()

	raw := directives()
	raw.Set("year", "-2000,2020+")

	filter, _, err := interpreter.Build(raw)

	require.NoError(t, err)
	require.Len(t, filter.And, 1)
	require.Len(t, filter.And[0].Or, 2)

	// "-2000" is a single upper-bound condition.
	first := filter.And[0].Or[0]
	require.Len(t, first, 1)
	assert.Equal(t, card.OpLte, first[0].Op)
	assert.Equal(t, 2000, first[0].Value)

	// "2020+" is a single lower-bound condition.
	second := filter.And[0].Or[1]
	require.Len(t, second, 1)
	assert.Equal(t, card.OpGt, second[0].Op)
	assert.Equal(t, 2020, second[0].Value)
}

/*
TestScreen_PriceBucketRange verifies that a bounded price label compiles to a
two-condition branch.
*/
func TestScreen_PriceBucketRange(t *testing.T) {
	interpreter := card.NewScreenInterpreter()

	raw := directives()
	raw.Set("price", "$20-$50")

	filter, _, err := interpreter.Build(raw)

	require.NoError(t, err)
	branch := filter.And[0].Or[0]
	require.Len(t, branch, 2)
	assert.Equal(t, card.OpGt, branch[0].Op)
	assert.Equal(t, 20.0, branch[0].Value)
	assert.Equal(t, card.OpLte, branch[1].Op)
	assert.Equal(t, 50.0, branch[1].Value)
}

/*
TestScreen_MissingDirectives verifies that start, count, and sort are each
mandatory.
*/
func TestScreen_MissingDirectives(t *testing.T) {
	interpreter := card.NewScreenInterpreter()

	for _, missing := range []string{"start", "count", "sort"} {
		raw := directives()
		raw.Del(missing)
		raw.Set("type", "thunder")

		_, _, err := interpreter.Build(raw)
		assert.ErrorIs(t, err, card.ErrInvalidScreen, "missing %s", missing)
	}
}

/*
TestScreen_SortValidation verifies the [field, order] contract of the sort
directive.
*/
func TestScreen_SortValidation(t *testing.T) {
	interpreter := card.NewScreenInterpreter()

	invalid := []string{
		"monster",    // missing order
		"monster,2",  // unknown order token
		"card,1",     // unsortable field
		"price,1,-1", // too many tokens
	}

	for _, sort := range invalid {
		raw := directives()
		raw.Set("sort", sort)

		_, _, err := interpreter.Build(raw)
		assert.ErrorIs(t, err, card.ErrInvalidScreen, "sort=%q", sort)
	}

	raw := directives()
	raw.Set("sort", "monster,1")

	_, window, err := interpreter.Build(raw)
	require.NoError(t, err)
	assert.Equal(t, "monster", window.SortField)
	assert.Equal(t, pagination.OrderAscending, window.SortOrder)
}

/*
TestScreen_DuplicateValues verifies that repeated values within one field are
rejected, with grades compared numerically.
*/
func TestScreen_DuplicateValues(t *testing.T) {
	interpreter := card.NewScreenInterpreter()

	raw := directives()
	raw.Set("type", "thunder,thunder")
	_, _, err := interpreter.Build(raw)
	assert.ErrorIs(t, err, card.ErrInvalidScreen)

	// "5" and "5.0" parse to the same grade.
	raw = directives()
	raw.Set("grade", "5,5.0")
	_, _, err = interpreter.Build(raw)
	assert.ErrorIs(t, err, card.ErrInvalidScreen)
}

/*
TestScreen_RejectsOutOfDomain verifies unknown keys and out-of-domain values.
*/
func TestScreen_RejectsOutOfDomain(t *testing.T) {
	interpreter := card.NewScreenInterpreter()

	cases := map[string][2]string{
		"unknown key":      {"card", "promo"},
		"unknown monster":  {"monster", "pikachu"},
		"unknown type":     {"type", "cosmic"},
		"grade outside":    {"grade", "2.5"},
		"year not bucket":  {"year", "2015"},
		"price not bucket": {"price", "$30"},
	}

	for name, pair := range cases {
		raw := directives()
		raw.Set(pair[0], pair[1])

		_, _, err := interpreter.Build(raw)
		assert.ErrorIs(t, err, card.ErrInvalidScreen, name)
	}
}

/*
TestScreen_RepeatedKey verifies that a repeated query key fails structural
normalization.
*/
func TestScreen_RepeatedKey(t *testing.T) {
	interpreter := card.NewScreenInterpreter()

	raw := directives()
	raw["type"] = []string{"thunder", "undead"}

	_, _, err := interpreter.Build(raw)
	assert.ErrorIs(t, err, card.ErrInvalidScreen)
}
