// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"errors"
	"net/url"
	"sort"

	"github.com/taibuivan/cardex/pkg/query"
)

// # Query Normalization

// ErrMalformedQuery signals that the raw query string violated the structural
// contract (a repeated key, or an unparsable grade list) before any per-field
// validation ran.
var ErrMalformedQuery = errors.New("malformed query shape")

// Param is one normalized (field, values) pair from the query string.
//
// Values holds the comma-split string tokens. For the grade field the tokens
// are additionally parsed up front into Grades; every other field defers
// interpretation to the relevant domain.
type Param struct {
	Key    string
	Values []string
	Grades []float64
}

// Normalize converts raw query parameters into an ordered parameter list.
//
// Every key must carry exactly one raw string value; clients repeating a
// query key are rejected outright, never merged. The output order is
// deterministic (sorted by key); only key presence carries semantics.
func Normalize(raw url.Values) ([]Param, error) {
	keys := make([]string, 0, len(raw))
	for key, values := range raw {
		// A repeated key arrives as a multi-valued entry. Hard rejection.
		if len(values) != 1 {
			return nil, ErrMalformedQuery
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	params := make([]Param, 0, len(keys))
	for _, key := range keys {
		value := raw.Get(key)

		if key == FieldGrade {
			grades, err := query.Floats(value)
			if err != nil {
				return nil, ErrMalformedQuery
			}
			params = append(params, Param{Key: key, Values: query.Split(value), Grades: grades})
			continue
		}

		params = append(params, Param{Key: key, Values: query.Split(value)})
	}

	return params, nil
}
