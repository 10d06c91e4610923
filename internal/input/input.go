// Package input turns raw user input into a validated generator Input.
package input

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/san-kum/algoviz/internal/algorithms"
)

// Parse reads integers separated by commas, semicolons or whitespace.
func Parse(raw string) ([]int, error) {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}

	values := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{Pos: i, Token: tok, Wrapped: ErrBadToken}
		}
		values = append(values, v)
	}
	return values, nil
}

// Validate checks values against the algorithm's limits.
func Validate(values []int, lim algorithms.Limits) error {
	if len(values) == 0 {
		return ErrEmpty
	}
	if lim.MaxLen > 0 && len(values) > lim.MaxLen {
		return fmt.Errorf("%w: got %d, max %d", ErrTooMany, len(values), lim.MaxLen)
	}
	return nil
}

// Prepare validates values for info and sorts a copy when the algorithm
// requires sorted input.
func Prepare(info algorithms.Info, values []int, target int) (algorithms.Input, error) {
	if err := Validate(values, info.Limits); err != nil {
		return algorithms.Input{}, err
	}
	vals := append([]int(nil), values...)
	if info.Limits.RequiresSorted {
		sort.Ints(vals)
	}
	in := algorithms.Input{Values: vals}
	if info.Limits.NeedsTarget {
		in.Target = target
	}
	return in, nil
}

// PrepareString parses raw and hands the result to Prepare.
func PrepareString(info algorithms.Info, raw string, target int) (algorithms.Input, error) {
	values, err := Parse(raw)
	if err != nil {
		return algorithms.Input{}, err
	}
	return Prepare(info, values, target)
}

// Random draws an input suitable for info. Sorts get 6-8 values in 1..100;
// searches get 8-12 sorted values in 1..50 and a target that is taken from
// the array seven times out of ten.
func Random(rng *rand.Rand, info algorithms.Info) algorithms.Input {
	if info.Limits.RequiresSorted {
		values := randomValues(rng, 8+rng.Intn(5), 50)
		sort.Ints(values)
		in := algorithms.Input{Values: values}
		if info.Limits.NeedsTarget {
			in.Target = RandomTarget(rng, values)
		}
		return in
	}

	n := 6 + rng.Intn(3)
	if info.Limits.MaxLen > 0 && n > info.Limits.MaxLen {
		n = info.Limits.MaxLen
	}
	in := algorithms.Input{Values: randomValues(rng, n, 100)}
	if info.Limits.NeedsTarget {
		in.Target = RandomTarget(rng, in.Values)
	}
	return in
}

// RandomTarget picks a value from values with probability 0.7, otherwise a
// uniform value in 1..60 that may be absent.
func RandomTarget(rng *rand.Rand, values []int) int {
	if len(values) == 0 || rng.Float64() > 0.7 {
		return rng.Intn(60) + 1
	}
	return values[rng.Intn(len(values))]
}

func randomValues(rng *rand.Rand, n, max int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(max) + 1
	}
	return values
}

// Format renders values the way Parse reads them.
func Format(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
