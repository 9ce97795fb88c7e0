// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cardex/internal/card"
)

func newSearchInterpreter() *card.SearchInterpreter {
	return card.NewSearchInterpreter(card.NewMatcher(card.Monsters))
}

/*
TestSearch_CardPlainText verifies that a card query without an embedded
monster compiles to a single pattern condition.
*/
func TestSearch_CardPlainText(t *testing.T) {
	interpreter := newSearchInterpreter()

	filter, err := interpreter.Build(url.Values{"card": {"holo promo"}})

	require.NoError(t, err)
	require.Len(t, filter.And, 1)
	require.Len(t, filter.And[0].Or, 1)

	condition := filter.And[0].Or[0][0]
	assert.Equal(t, card.FieldCard, condition.Field)
	assert.Equal(t, card.OpRegex, condition.Op)
	assert.Equal(t, "holo promo", condition.Value)
}

/*
TestSearch_CardEmbeddedMonster verifies that a card query embedding a known
monster name widens into a three-branch disjunction.
*/
func TestSearch_CardEmbeddedMonster(t *testing.T) {
	interpreter := newSearchInterpreter()

	filter, err := interpreter.Build(url.Values{"card": {"Skystormer 1st Edition"}})

	require.NoError(t, err)
	require.Len(t, filter.And, 1)
	require.Len(t, filter.And[0].Or, 3)

	// Last branch pins the resolved monster record.
	last := filter.And[0].Or[2][0]
	assert.Equal(t, card.FieldMonster, last.Field)
	assert.Equal(t, card.OpEq, last.Op)
	assert.Equal(t, "skystormer", last.Value)
}

/*
TestSearch_MonsterExact verifies that a value embedding a known monster name
compiles to an equality condition.
*/
func TestSearch_MonsterExact(t *testing.T) {
	interpreter := newSearchInterpreter()

	filter, err := interpreter.Build(url.Values{"monster": {"Voltmaw"}})

	require.NoError(t, err)
	condition := filter.And[0].Or[0][0]
	assert.Equal(t, card.OpEq, condition.Op)
	assert.Equal(t, "voltmaw", condition.Value)
}

/*
TestSearch_MonsterFuzzy verifies that an unknown monster name falls back to
the top approximate matches.
*/
func TestSearch_MonsterFuzzy(t *testing.T) {
	interpreter := newSearchInterpreter()

	filter, err := interpreter.Build(url.Values{"monster": {"skystrmer"}})

	require.NoError(t, err)
	condition := filter.And[0].Or[0][0]
	assert.Equal(t, card.OpIn, condition.Op)

	candidates, ok := condition.Value.([]string)
	require.True(t, ok)
	require.NotEmpty(t, candidates)
	assert.Equal(t, "skystormer", candidates[0])
	assert.LessOrEqual(t, len(candidates), 3)
}

/*
TestSearch_MonsterNoCandidates verifies that a hopeless monster query still
builds a valid (zero-result) filter rather than failing.
*/
func TestSearch_MonsterNoCandidates(t *testing.T) {
	interpreter := newSearchInterpreter()

	filter, err := interpreter.Build(url.Values{"monster": {"zzzzzzzzzz"}})

	require.NoError(t, err)
	condition := filter.And[0].Or[0][0]
	assert.Equal(t, card.OpIn, condition.Op)
	assert.Empty(t, condition.Value)
}

/*
TestSearch_TypeCaseInsensitive verifies that type matching lowercases the
input before the enum check.
*/
func TestSearch_TypeCaseInsensitive(t *testing.T) {
	interpreter := newSearchInterpreter()

	filter, err := interpreter.Build(url.Values{"type": {"Thunder"}})

	require.NoError(t, err)
	condition := filter.And[0].Or[0][0]
	assert.Equal(t, card.OpEq, condition.Op)
	assert.Equal(t, "thunder", condition.Value)
}

/*
TestSearch_TypeUnknown verifies that a value outside the type enum is
rejected.
*/
func TestSearch_TypeUnknown(t *testing.T) {
	interpreter := newSearchInterpreter()

	_, err := interpreter.Build(url.Values{"type": {"cosmic"}})

	assert.ErrorIs(t, err, card.ErrInvalidSearch)
}

/*
TestSearch_GradeZero verifies that grade 0, a legitimate enum member, is
accepted.
*/
func TestSearch_GradeZero(t *testing.T) {
	interpreter := newSearchInterpreter()

	filter, err := interpreter.Build(url.Values{"grade": {"0"}})

	require.NoError(t, err)
	condition := filter.And[0].Or[0][0]
	assert.Equal(t, card.OpEq, condition.Op)
	assert.Equal(t, 0.0, condition.Value)
}

/*
TestSearch_GradeInvalid verifies that values outside the grade set are
rejected.
*/
func TestSearch_GradeInvalid(t *testing.T) {
	interpreter := newSearchInterpreter()

	for _, value := range []string{"2.5", "11", "abc", ""} {
		_, err := interpreter.Build(url.Values{"grade": {value}})
		assert.ErrorIs(t, err, card.ErrInvalidSearch, "grade=%q", value)
	}
}

/*
TestSearch_YearBounds verifies the inclusive year range and the rejection of
non-numeric or out-of-range values.
*/
func TestSearch_YearBounds(t *testing.T) {
	interpreter := newSearchInterpreter()

	filter, err := interpreter.Build(url.Values{"year": {"1990"}})
	require.NoError(t, err)
	assert.Equal(t, 1990, filter.And[0].Or[0][0].Value)

	for _, value := range []string{"1989", "0", "3000", "199x", ""} {
		_, err := interpreter.Build(url.Values{"year": {value}})
		assert.ErrorIs(t, err, card.ErrInvalidSearch, "year=%q", value)
	}
}

/*
TestSearch_StructuralRejection verifies that zero fields, multiple fields,
repeated keys, and unsearchable fields are all rejected.
*/
func TestSearch_StructuralRejection(t *testing.T) {
	interpreter := newSearchInterpreter()

	cases := map[string]url.Values{
		"no fields":          {},
		"two fields":         {"monster": {"voltmaw"}, "type": {"thunder"}},
		"repeated key":       {"monster": {"voltmaw", "thundrak"}},
		"unsearchable field": {"price": {"<$20"}},
	}

	for name, raw := range cases {
		_, err := interpreter.Build(raw)
		assert.ErrorIs(t, err, card.ErrInvalidSearch, name)
	}
}
