// Package linqtest provides utilities for testing sequence queries. It offers
// checks that verify the laws relating the linq operations to each other for
// arbitrary sequences, predicates and transforms, so that a test only needs to
// supply interesting inputs.
//
// # Overview
//
// [Quantifiers] checks All, Any and None against each other and against a
// reference traversal, including how many times the predicate was called.
// [Filter] checks Where and Except, and [Map] checks Select.
//
// # Example Usage
//
//	func TestEvens(t *testing.T) {
//		isEven := func(n int) bool { return n%2 == 0 }
//		for _, s := range [][]int{nil, {1}, {2}, {1, 2, 3, 4}} {
//			linqtest.Quantifiers(t, s, isEven)
//			linqtest.Filter(t, s, isEven)
//		}
//	}
//
// Predicates and transforms passed to these helpers are called many times and
// must be deterministic.
package linqtest

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tombrtls/linq"
)

// Quantifiers verifies All, Any and None over s with predicate p.
//
// The function verifies that:
//
//   - All(s, p) holds exactly when no element fails p, and equals !Any(s, not p).
//   - None(s, p) equals !Any(s, p).
//   - The quantifiers short-circuit: each calls p only up to the element that
//     decides its result, in sequence order.
//   - s is not modified.
func Quantifiers[T any](t *testing.T, s []T, p func(T) bool) {
	t.Helper()
	original := slices.Clone(s)

	// Index of the first match and of the first mismatch, or len(s).
	firstMatch, firstMismatch := len(s), len(s)
	for i, v := range s {
		if p(v) {
			firstMatch = min(firstMatch, i)
		} else {
			firstMismatch = min(firstMismatch, i)
		}
	}

	all := Record(p)
	assert.Equal(t, firstMismatch == len(s), linq.All(s, all.Predicate), "All")
	assert.Equal(t, prefix(s, firstMismatch), all.Calls, "All must stop at the first mismatch")

	anyOf := Record(p)
	assert.Equal(t, firstMatch < len(s), linq.Any(s, anyOf.Predicate), "Any")
	assert.Equal(t, prefix(s, firstMatch), anyOf.Calls, "Any must stop at the first match")

	none := Record(p)
	assert.Equal(t, firstMatch == len(s), linq.None(s, none.Predicate), "None")
	assert.Equal(t, prefix(s, firstMatch), none.Calls, "None must stop at the first match")

	not := func(v T) bool { return !p(v) }
	assert.Equal(t, !linq.Any(s, not), linq.All(s, p), "All(s, p) != !Any(s, not p)")
	assert.Equal(t, !linq.Any(s, p), linq.None(s, p), "None(s, p) != !Any(s, p)")

	assert.Equal(t, original, s, "input sequence was modified")
}

// Filter verifies Where and Except over s with predicate p.
//
// The function verifies that:
//
//   - Where returns exactly the elements satisfying p, in their original order,
//     each appearing once.
//   - Where is idempotent.
//   - Except returns the remaining elements, so the two results partition s.
//   - First and Last agree with the ends of the Where result.
//   - s is not modified.
func Filter[T any](t *testing.T, s []T, p func(T) bool) {
	t.Helper()
	original := slices.Clone(s)

	matched, rest := make([]T, 0), make([]T, 0)
	for _, v := range s {
		if p(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}

	where := linq.Where(s, p)
	assert.Equal(t, matched, []T(where), "Where")
	assert.Equal(t, where, linq.Where(where, p), "Where is not idempotent")
	assert.Equal(t, rest, []T(linq.Except(s, p)), "Except")

	first, ok := linq.First(s, p)
	if assert.Equal(t, len(matched) > 0, ok, "First found") && ok {
		assert.Equal(t, matched[0], first, "First")
	}
	last, ok := linq.Last(s, p)
	if assert.Equal(t, len(matched) > 0, ok, "Last found") && ok {
		assert.Equal(t, matched[len(matched)-1], last, "Last")
	}

	assert.Equal(t, original, s, "input sequence was modified")
}

// Map verifies Select over s with transform f: the result has the length of s,
// and its i-th element equals f(s[i]). The transform must be called exactly
// once per element, in order.
func Map[T, U any](t *testing.T, s []T, f func(T) U) {
	t.Helper()
	original := slices.Clone(s)

	calls := make([]T, 0, len(s))
	out := linq.Select(s, func(v T) U {
		calls = append(calls, v)
		return f(v)
	})
	if assert.Len(t, out, len(s), "Select must preserve length") {
		for i, v := range s {
			assert.Equal(t, f(v), out[i], "Select at index %d", i)
		}
	}
	assert.Equal(t, prefix(s, len(s)), calls, "Select must call the transform once per element")

	assert.Equal(t, original, s, "input sequence was modified")
}

// Recorder wraps a predicate and records every element it is called with.
type Recorder[T any] struct {
	// Calls lists the arguments of every call to Predicate, in call order.
	Calls []T

	predicate func(T) bool
}

// Record returns a Recorder delegating to p.
func Record[T any](p func(T) bool) *Recorder[T] {
	return &Recorder[T]{Calls: make([]T, 0), predicate: p}
}

// Predicate records v and returns the wrapped predicate's verdict.
func (r *Recorder[T]) Predicate(v T) bool {
	r.Calls = append(r.Calls, v)
	return r.predicate(v)
}

// Returns the elements of s up to and including index i, as a non-nil slice.
func prefix[T any](s []T, i int) []T {
	return append(make([]T, 0), s[:min(i+1, len(s))]...)
}
