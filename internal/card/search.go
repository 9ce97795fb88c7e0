// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/cardex/internal/platform/apperr"
	"github.com/taibuivan/cardex/pkg/query"
)

// ErrInvalidSearch is returned for every search query that fails
// interpretation, regardless of which rule rejected it.
var ErrInvalidSearch = apperr.ValidationError("Invalid search parameter")

// # Search Interpreter

// SearchInterpreter turns a raw single-field search query into a compiled
// filter. Unlike the screen path it is permissive: unknown monster names fall
// back to approximate matching instead of being rejected.
type SearchInterpreter struct {
	matcher *Matcher

	// now supplies the current time for year-range validation.
	now func() time.Time
}

// NewSearchInterpreter builds the interpreter over the monster corpus.
func NewSearchInterpreter(matcher *Matcher) *SearchInterpreter {
	return &SearchInterpreter{matcher: matcher, now: time.Now}
}

/*
Build compiles a raw search query into a [Filter].

Description: The query must contain exactly one key, the key must be
searchable, and its value must be a single string. Each field then applies
its own semantics:

  - card: substring/regex match, widened when a known monster name is
    embedded in the value.
  - monster: exact match on an embedded name, otherwise the top 3
    approximate matches.
  - type: exact lowercase enum match.
  - grade: exact membership in the grade set (index lookup, 0 is valid).
  - year: integer within [MinYear, current year].

Parameters:
  - raw: url.Values (unparsed query parameters)

Returns:
  - Filter: Compiled predicate tree
  - error: [ErrInvalidSearch] on any rule violation
*/
func (interpreter *SearchInterpreter) Build(raw url.Values) (Filter, error) {

	// Exactly one field at a time.
	if len(raw) != 1 {
		return Filter{}, ErrInvalidSearch
	}

	var key string
	var values []string
	for k, v := range raw {
		key, values = k, v
	}

	// A repeated key means the value is not a single string.
	if !isSearchable(key) || len(values) != 1 {
		return Filter{}, ErrInvalidSearch
	}
	value := values[0]

	switch key {
	case FieldCard:
		return interpreter.buildCardFilter(value), nil
	case FieldMonster:
		return interpreter.buildMonsterFilter(value), nil
	case FieldType:
		return interpreter.buildTypeFilter(value)
	case FieldGrade:
		return interpreter.buildGradeFilter(value)
	case FieldYear:
		return interpreter.buildYearFilter(value)
	}

	return Filter{}, ErrInvalidSearch
}

// buildCardFilter matches free text against card titles.
//
// When the value embeds a known monster name the filter widens to a
// disjunction so that cards referencing the monster by name or by record
// are all found.
func (interpreter *SearchInterpreter) buildCardFilter(value string) Filter {
	if monsterFound, ok := findEmbeddedMonster(value); ok {
		return Conjunction(AnyOf(
			Branch{Cond(FieldCard, OpRegex, value)},
			Branch{Cond(FieldCard, OpRegex, monsterFound)},
			Branch{Cond(FieldMonster, OpEq, monsterFound)},
		))
	}

	return Conjunction(Single(Cond(FieldCard, OpRegex, value)))
}

// buildMonsterFilter resolves a monster name, exactly when possible and
// approximately otherwise.
//
// A matcher miss still yields a valid filter (one that matches zero
// monsters) rather than no filter at all.
func (interpreter *SearchInterpreter) buildMonsterFilter(value string) Filter {
	if monsterFound, ok := findEmbeddedMonster(value); ok {
		return Conjunction(Single(Cond(FieldMonster, OpEq, monsterFound)))
	}

	candidates := interpreter.matcher.Top(value, 3)
	return Conjunction(Single(Cond(FieldMonster, OpIn, candidates)))
}

// buildTypeFilter matches the value against the type enum, case-insensitively.
func (interpreter *SearchInterpreter) buildTypeFilter(value string) (Filter, error) {
	lowered := strings.ToLower(value)
	for _, monsterType := range MonsterTypes {
		if monsterType == lowered {
			return Conjunction(Single(Cond(FieldType, OpEq, lowered))), nil
		}
	}
	return Filter{}, ErrInvalidSearch
}

// buildGradeFilter matches the value against the grade enum.
//
// Grade 0 is a legitimate value, so membership is checked by index rather
// than by a zero-value sentinel.
func (interpreter *SearchInterpreter) buildGradeFilter(value string) (Filter, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Filter{}, ErrInvalidSearch
	}

	for index := range CardGrades {
		if CardGrades[index] == parsed {
			return Conjunction(Single(Cond(FieldGrade, OpEq, parsed))), nil
		}
	}
	return Filter{}, ErrInvalidSearch
}

// buildYearFilter matches a literal print year within the supported range.
func (interpreter *SearchInterpreter) buildYearFilter(value string) (Filter, error) {
	parsed, ok := query.Int(value)
	if !ok || parsed == 0 || parsed < MinYear || parsed > interpreter.now().Year() {
		return Filter{}, ErrInvalidSearch
	}
	return Conjunction(Single(Cond(FieldYear, OpEq, parsed))), nil
}

// # Helpers

// findEmbeddedMonster scans the monster corpus for a name contained in the
// value. The value is lowercased once for the containment test; the corpus
// is already lowercase.
func findEmbeddedMonster(value string) (string, bool) {
	lowered := strings.ToLower(value)
	for _, monster := range Monsters {
		if strings.Contains(lowered, monster) {
			return monster, true
		}
	}
	return "", false
}

func isSearchable(key string) bool {
	for _, searchable := range SearchableKeys {
		if key == searchable {
			return true
		}
	}
	return false
}
