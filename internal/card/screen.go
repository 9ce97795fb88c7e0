// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"net/url"

	"github.com/taibuivan/cardex/internal/platform/apperr"
	"github.com/taibuivan/cardex/pkg/pagination"
	"github.com/taibuivan/cardex/pkg/query"
)

// ErrInvalidScreen is returned for every screen query that fails structural
// or per-field validation, regardless of which rule rejected it.
var ErrInvalidScreen = apperr.ValidationError("Invalid screen criteria")

/*
Screening is the strict counterpart of searching: clients may only submit
values we enumerate up front, which makes every query string fully
validatable before it ever reaches the store.

Each screenable field belongs to exactly one domain kind, and each kind
carries its own validate/compile behavior:

  - enumDomain: literal membership in a fixed string set (monster, type).
  - gradeDomain: literal membership in the numeric grade set.
  - bucketDomain: named range labels mapped to numeric comparisons
    (year, price).
  - intDirective: a single integer pagination directive (start, count).
  - sortDirective: a [field, order] pair over the sortable field set.

Directives shape the result window; only domain fields contribute filter
clauses.
*/

// # Field Domain Variants

// fieldDomain is the per-kind validation contract of the screen domain table.
type fieldDomain interface {
	// validate reports whether every value of the parameter lies in the
	// field's domain. Duplicate detection is handled before dispatch.
	validate(param Param) bool
}

// enumDomain accepts only literal members of a fixed string set.
type enumDomain struct {
	allowed []string
}

func (domain enumDomain) validate(param Param) bool {
	for _, value := range param.Values {
		if !containsString(domain.allowed, value) {
			return false
		}
	}
	return true
}

// gradeDomain accepts only literal members of the numeric grade set. The
// normalizer has already parsed the tokens into floats.
type gradeDomain struct {
	allowed []float64
}

func (domain gradeDomain) validate(param Param) bool {
	for _, grade := range param.Grades {
		found := false
		for index := range domain.allowed {
			if domain.allowed[index] == grade {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// bucketDomain accepts named range labels and compiles each into a
// conjunction of numeric comparisons.
type bucketDomain struct {
	buckets map[string]Branch
}

func (domain bucketDomain) validate(param Param) bool {
	for _, label := range param.Values {
		if _, ok := domain.buckets[label]; !ok {
			return false
		}
	}
	return true
}

// intDirective accepts a single integer value (start, count).
type intDirective struct{}

func (intDirective) validate(param Param) bool {
	if len(param.Values) != 1 {
		return false
	}
	_, ok := query.Int(param.Values[0])
	return ok
}

// sortDirective accepts exactly [field, order] with a sortable field and a
// literal "1" or "-1" order token.
type sortDirective struct {
	sortable []string
}

func (domain sortDirective) validate(param Param) bool {
	if len(param.Values) != 2 {
		return false
	}

	field, order := param.Values[0], param.Values[1]
	if !containsString(domain.sortable, field) {
		return false
	}
	return order == "1" || order == "-1"
}

// # Bucket Tables

// yearBuckets maps each year label to its range predicate. Buckets are
// half-open on the low side and "2020+" is unbounded above.
var yearBuckets = map[string]Branch{
	"-2000":     {Cond(FieldYear, OpLte, 2000)},
	"2000-2010": {Cond(FieldYear, OpGt, 2000), Cond(FieldYear, OpLte, 2010)},
	"2010-2020": {Cond(FieldYear, OpGt, 2010), Cond(FieldYear, OpLte, 2020)},
	"2020+":     {Cond(FieldYear, OpGt, 2020)},
}

// priceBuckets maps each price label to its range predicate. ">$200" is
// unbounded above.
var priceBuckets = map[string]Branch{
	"<$20":      {Cond(FieldPrice, OpLte, 20.0)},
	"$20-$50":   {Cond(FieldPrice, OpGt, 20.0), Cond(FieldPrice, OpLte, 50.0)},
	"$50-$100":  {Cond(FieldPrice, OpGt, 50.0), Cond(FieldPrice, OpLte, 100.0)},
	"$100-$200": {Cond(FieldPrice, OpGt, 100.0), Cond(FieldPrice, OpLte, 200.0)},
	">$200":     {Cond(FieldPrice, OpGt, 200.0)},
}

// # Screen Interpreter

// ScreenInterpreter validates and compiles multi-field screen queries.
//
// # Concurrency
//
// The interpreter is stateless beyond its immutable domain table and safe
// for concurrent use.
type ScreenInterpreter struct {
	domains map[string]fieldDomain
}

// NewScreenInterpreter builds the interpreter with the full domain table.
func NewScreenInterpreter() *ScreenInterpreter {
	return &ScreenInterpreter{
		domains: map[string]fieldDomain{
			FieldMonster: enumDomain{allowed: Monsters},
			FieldType:    enumDomain{allowed: MonsterTypes},
			FieldGrade:   gradeDomain{allowed: CardGrades},
			FieldYear:    bucketDomain{buckets: yearBuckets},
			FieldPrice:   bucketDomain{buckets: priceBuckets},
			KeyStart:     intDirective{},
			KeyCount:     intDirective{},
			KeySort:      sortDirective{sortable: SortableKeys},
		},
	}
}

/*
Build normalizes, validates, and compiles a raw screen query.

Description: The pipeline fails fast. No filter ever reaches the store with
a partially valid query. Structural rejection (repeated keys), missing
directives, unknown fields, duplicate values, and out-of-domain values all
collapse into the same fixed client error.

Parameters:
  - raw: url.Values (unparsed query parameters)

Returns:
  - Filter: Conjunction across all filterable fields
  - pagination.Window: skip/limit/sort directive
  - error: [ErrInvalidScreen] on any validation failure
*/
func (interpreter *ScreenInterpreter) Build(raw url.Values) (Filter, pagination.Window, error) {

	// 1. Normalize the raw query shape
	params, err := Normalize(raw)
	if err != nil {
		return Filter{}, pagination.Window{}, ErrInvalidScreen
	}

	// 2. Pagination and sort directives are mandatory. Presence first,
	//    their values validated with everything else below.
	if !hasRequiredDirectives(params) {
		return Filter{}, pagination.Window{}, ErrInvalidScreen
	}

	// 3. Per-field validation against the domain table
	for _, param := range params {
		domain, known := interpreter.domains[param.Key]
		if !known {
			// Unknown fields are rejected, never ignored.
			return Filter{}, pagination.Window{}, ErrInvalidScreen
		}

		if hasDuplicateValues(param) {
			return Filter{}, pagination.Window{}, ErrInvalidScreen
		}

		if !domain.validate(param) {
			return Filter{}, pagination.Window{}, ErrInvalidScreen
		}
	}

	// 4. Compile filter clauses and extract the result window
	filter := interpreter.compile(params)
	window := extractWindow(params)

	return filter, window, nil
}

// compile builds the top-level conjunction across all filterable fields.
// Directive keys contribute no clauses.
func (interpreter *ScreenInterpreter) compile(params []Param) Filter {
	var clauses []Clause

	for _, param := range params {
		switch domain := interpreter.domains[param.Key].(type) {

		case bucketDomain:
			// Multiple bucket labels for one field combine with OR.
			branches := make([]Branch, 0, len(param.Values))
			for _, label := range param.Values {
				branches = append(branches, domain.buckets[label])
			}
			clauses = append(clauses, AnyOf(branches...))

		case gradeDomain:
			clauses = append(clauses, Single(Cond(param.Key, OpIn, param.Grades)))

		case enumDomain:
			clauses = append(clauses, Single(Cond(param.Key, OpIn, param.Values)))
		}
	}

	return Filter{And: clauses}
}

// extractWindow pulls the skip/limit/sort directive out of validated params.
func extractWindow(params []Param) pagination.Window {
	window := pagination.Window{}

	for _, param := range params {
		switch param.Key {
		case KeyStart:
			window.Skip, _ = query.Int(param.Values[0])
		case KeyCount:
			window.Limit, _ = query.Int(param.Values[0])
		case KeySort:
			window.SortField = param.Values[0]
			if param.Values[1] == "-1" {
				window.SortOrder = pagination.OrderDescending
			} else {
				window.SortOrder = pagination.OrderAscending
			}
		}
	}

	return window
}

// # Validation Helpers

// hasRequiredDirectives checks that start, count, and sort are all present.
func hasRequiredDirectives(params []Param) bool {
	var hasStart, hasCount, hasSort bool
	for _, param := range params {
		switch param.Key {
		case KeyStart:
			hasStart = true
		case KeyCount:
			hasCount = true
		case KeySort:
			hasSort = true
		}
	}
	return hasStart && hasCount && hasSort
}

// hasDuplicateValues rejects any value repeated within one field's list.
// Grades are compared on their parsed numeric form, so "5" and "5.0" count
// as the same value.
func hasDuplicateValues(param Param) bool {
	if param.Key == FieldGrade {
		occurrences := make(map[float64]int, len(param.Grades))
		for _, grade := range param.Grades {
			occurrences[grade]++
		}
		for _, count := range occurrences {
			if count != 1 {
				return true
			}
		}
		return false
	}

	occurrences := make(map[string]int, len(param.Values))
	for _, value := range param.Values {
		occurrences[value]++
	}
	for _, count := range occurrences {
		if count != 1 {
			return true
		}
	}
	return false
}

func containsString(set []string, value string) bool {
	for _, member := range set {
		if member == value {
			return true
		}
	}
	return false
}
