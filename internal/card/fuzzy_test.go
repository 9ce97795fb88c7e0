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
TestMatcher_ExactMatch verifies that an exact corpus entry ranks first with a
zero score.
*/
func TestMatcher_ExactMatch(t *testing.T) {
	matcher := card.NewMatcher(card.Monsters)

	matches := matcher.Rank("skystormer")

	require.NotEmpty(t, matches)
	assert.Equal(t, "skystormer", matches[0].Name)
	assert.Equal(t, 0.0, matches[0].Score)
}

/*
TestMatcher_Typo verifies that a misspelled monster name still resolves to
the intended entry.
*/
func TestMatcher_Typo(t *testing.T) {
	matcher := card.NewMatcher(card.Monsters)

	// One dropped letter.
	names := matcher.Top("skystrmer", 3)

	require.NotEmpty(t, names)
	assert.Equal(t, "skystormer", names[0])
}

/*
TestMatcher_CaseInsensitive verifies that matching folds case before scoring.
*/
func TestMatcher_CaseInsensitive(t *testing.T) {
	matcher := card.NewMatcher(card.Monsters)

	matches := matcher.Rank("SKYSTORMER")

	require.NotEmpty(t, matches)
	assert.Equal(t, "skystormer", matches[0].Name)
	assert.Equal(t, 0.0, matches[0].Score)
}

/*
TestMatcher_ShortQuery verifies that queries below the minimum length never
match anything.
*/
func TestMatcher_ShortQuery(t *testing.T) {
	matcher := card.NewMatcher(card.Monsters)

	assert.Nil(t, matcher.Rank("sk"))
	assert.Empty(t, matcher.Top("sk", 3))
}

/*
TestMatcher_NoMatch verifies that a query unrelated to the whole corpus
yields no candidates.
*/
func TestMatcher_NoMatch(t *testing.T) {
	matcher := card.NewMatcher(card.Monsters)

	assert.Nil(t, matcher.Rank("xqzjwv9k2"))
}

/*
TestMatcher_Containment verifies that a substring of a name qualifies when
the unmatched remainder is small enough.
*/
func TestMatcher_Containment(t *testing.T) {
	matcher := card.NewMatcher([]string{"thundrak"})

	// "thundra" is contained in "thundrak": score 1/8.
	matches := matcher.Rank("thundra")

	require.Len(t, matches, 1)
	assert.Equal(t, "thundrak", matches[0].Name)
	assert.InDelta(t, 0.125, matches[0].Score, 1e-9)
}

/*
TestMatcher_Deterministic verifies that ranking is stable across calls: equal
scores keep corpus order.
*/
func TestMatcher_Deterministic(t *testing.T) {
	matcher := card.NewMatcher([]string{"aaax", "aaay"})

	first := matcher.Top("aaa", 2)
	second := matcher.Top("aaa", 2)

	assert.Equal(t, []string{"aaax", "aaay"}, first)
	assert.Equal(t, first, second)
}

/*
TestMatcher_TopTruncates verifies that Top never returns more than n names.
*/
func TestMatcher_TopTruncates(t *testing.T) {
	matcher := card.NewMatcher([]string{"aaax", "aaay", "aaaz"})

	assert.Len(t, matcher.Top("aaa", 2), 2)
}
