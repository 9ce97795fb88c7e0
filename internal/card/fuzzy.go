// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// # Approximate Matcher

// Matcher configuration. Lower scores are better matches; candidates scoring
// above maxScore are discarded. Queries shorter than minQueryLength never
// match anything.
const (
	minQueryLength = 3
	maxScore       = 0.5
)

// Match is a scored candidate from the reference corpus.
type Match struct {
	Name  string
	Score float64
}

// Matcher ranks reference names by similarity to a query string.
//
// Matching is case-insensitive and ignores where inside a name the query
// occurs. Ranking is fully deterministic: ascending score, ties broken by
// corpus order.
//
// # Concurrency
//
// A Matcher is immutable after construction and safe for concurrent use.
type Matcher struct {
	corpus []string
	folded []string
}

// NewMatcher builds a matcher over the given reference names.
func NewMatcher(corpus []string) *Matcher {
	folded := make([]string, len(corpus))
	for i, name := range corpus {
		folded[i] = fold(name)
	}
	return &Matcher{corpus: corpus, folded: folded}
}

// Rank returns every corpus entry scoring at or below the acceptance
// threshold, ordered best-first. It returns nil when the query is too short
// or nothing qualifies.
func (matcher *Matcher) Rank(query string) []Match {
	q := fold(query)
	if len(q) < minQueryLength {
		return nil
	}

	var matches []Match
	for i, name := range matcher.folded {
		score := similarity(q, name)
		if score <= maxScore {
			matches = append(matches, Match{Name: matcher.corpus[i], Score: score})
		}
	}

	// Stable sort keeps corpus order for equal scores, making the ranking
	// reproducible across runs.
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score < matches[b].Score
	})

	return matches
}

// Top returns the names of the best n matches for the query.
func (matcher *Matcher) Top(query string, n int) []string {
	matches := matcher.Rank(query)
	if len(matches) > n {
		matches = matches[:n]
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match.Name)
	}
	return names
}

// fold canonicalizes input for comparison: NFC normalization, then lowercase.
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// similarity scores query against candidate in [0, 1], 0 being an exact match.
//
// A containment hit scores by the unmatched remainder of the longer string;
// otherwise the score is the edit distance normalized by the longer length.
func similarity(query, candidate string) float64 {
	if query == candidate {
		return 0
	}

	longer := len(candidate)
	if len(query) > longer {
		longer = len(query)
	}

	if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
		shorter := len(query) + len(candidate) - longer
		return float64(longer-shorter) / float64(longer)
	}

	return float64(editDistance(query, candidate)) / float64(longer)
}

// editDistance computes the Levenshtein distance using a single-row DP table.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(b)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(a); i++ {
		current := make([]int, len(b)+1)
		current[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[j] = minOf(current[j-1]+1, previous[j]+1, previous[j-1]+cost)
		}
		previous = current
	}

	return previous[len(b)]
}

func minOf(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
