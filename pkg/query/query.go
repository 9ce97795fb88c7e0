package query

import (
	"strconv"
	"strings"
)

// Split splits a raw comma-separated query value into its tokens.
// Tokens are kept verbatim (no trimming, empty tokens preserved) so that
// downstream domain validation sees exactly what the client sent.
func Split(val string) []string {
	return strings.Split(val, ",")
}

// Floats splits a comma-separated query value and parses every token as a
// 64-bit float. Any unparsable token fails the whole value.
func Floats(val string) ([]float64, error) {
	tokens := Split(val)
	res := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, nil
}

// Int parses a single query token as an integer.
func Int(val string) (int, bool) {
	n, err := strconv.Atoi(val)
	return n, err == nil
}
