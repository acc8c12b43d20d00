package linq_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombrtls/linq"
	"github.com/tombrtls/linq/linqtest"
)

func isEven(n int) bool { return n%2 == 0 }

var names = []string{"luz", "bart", "rajayjay", "tom", "thomas", "thoma", "martijn"}

func TestQuantifiers(t *testing.T) {
	for name, tc := range map[string]struct {
		input          []int
		all, any, none bool
	}{
		"nil":      {input: nil, all: true, any: false, none: true},
		"empty":    {input: []int{}, all: true, any: false, none: true},
		"mixed":    {input: []int{1, 2, 3, 4}, all: false, any: true, none: false},
		"all-even": {input: []int{2, 4, 6}, all: true, any: true, none: false},
		"all-odd":  {input: []int{1, 3, 5}, all: false, any: false, none: true},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.all, linq.All(tc.input, isEven), "All")
			assert.Equal(t, tc.any, linq.Any(tc.input, isEven), "Any")
			assert.Equal(t, tc.none, linq.None(tc.input, isEven), "None")

			s := linq.Sequence[int](tc.input)
			assert.Equal(t, tc.all, s.All(isEven), "Sequence.All")
			assert.Equal(t, tc.any, s.Any(isEven), "Sequence.Any")
			assert.Equal(t, tc.none, s.None(isEven), "Sequence.None")

			// The results must agree with an independent implementation.
			assert.Equal(t, lo.EveryBy(tc.input, isEven), linq.All(tc.input, isEven))
			assert.Equal(t, lo.SomeBy(tc.input, isEven), linq.Any(tc.input, isEven))
			assert.Equal(t, lo.NoneBy(tc.input, isEven), linq.None(tc.input, isEven))

			linqtest.Quantifiers(t, tc.input, isEven)
		})
	}
}

func TestQuantifiersOverStrings(t *testing.T) {
	s := linq.Sequence[string](names)

	assert.True(t, s.All(func(string) bool { return true }))
	assert.False(t, s.All(func(n string) bool { return n == "John #1" }))
	assert.False(t, s.All(func(string) bool { return false }))

	assert.True(t, s.Any(func(string) bool { return true }))
	assert.True(t, s.Any(func(n string) bool { return n == "luz" }))
	assert.False(t, s.Any(func(string) bool { return false }))

	assert.False(t, s.None(func(string) bool { return true }))
	assert.False(t, s.None(func(n string) bool { return n == "luz" }))
	assert.True(t, s.None(func(string) bool { return false }))

	for _, prefix := range []string{"", "t", "th", "x"} {
		linqtest.Quantifiers(t, names, func(n string) bool { return strings.HasPrefix(n, prefix) })
	}
}

func TestNotEmpty(t *testing.T) {
	assert.True(t, linq.NotEmpty(names))
	assert.True(t, linq.Sequence[int]{0}.NotEmpty())
	assert.False(t, linq.NotEmpty([]string{}))
	assert.False(t, linq.Sequence[string](nil).NotEmpty())
}

func TestShortCircuit(t *testing.T) {
	input := []int{1, 2, 3, 4}

	r := linqtest.Record(isEven)
	require.True(t, linq.Any(input, r.Predicate))
	assert.Equal(t, []int{1, 2}, r.Calls, "Any must stop at the first match")

	r = linqtest.Record(isEven)
	require.False(t, linq.All(input, r.Predicate))
	assert.Equal(t, []int{1}, r.Calls, "All must stop at the first mismatch")

	r = linqtest.Record(isEven)
	require.False(t, linq.None(input, r.Predicate))
	assert.Equal(t, []int{1, 2}, r.Calls, "None must stop at the first match")

	r = linqtest.Record(isEven)
	require.True(t, linq.All([]int{}, r.Predicate))
	assert.Empty(t, r.Calls, "All must not call the predicate for an empty sequence")
}

// A predicate that panics on 2, the second element.
func panicsOnTwo(n int) bool {
	if n == 2 {
		panic("boom")
	}
	return n > 2
}

func TestPanicPropagates(t *testing.T) {
	input := []int{1, 2, 3}

	assert.PanicsWithValue(t, "boom", func() { linq.Any(input, panicsOnTwo) })
	assert.PanicsWithValue(t, "boom", func() { linq.None(input, panicsOnTwo) })
	assert.PanicsWithValue(t, "boom", func() { linq.All(input, func(n int) bool { return !panicsOnTwo(n) }) })

	// Traversal that stops before the failing element never observes it.
	assert.NotPanics(t, func() { linq.Any([]int{3, 2}, panicsOnTwo) })
}

var errTwo = errors.New("two is not allowed")

// A fallible predicate that fails on 2 and reports whether n exceeds 2.
func failsOnTwo(n int) (bool, error) {
	if n == 2 {
		return false, errTwo
	}
	return n > 2, nil
}

func TestTryQuantifiers(t *testing.T) {
	t.Run("error-propagates", func(t *testing.T) {
		input := []int{1, 2, 3}

		ok, err := linq.TryAny(input, failsOnTwo)
		assert.ErrorIs(t, err, errTwo)
		assert.False(t, ok)

		ok, err = linq.TryAll(input, func(n int) (bool, error) {
			ok, err := failsOnTwo(n)
			return !ok, err
		})
		assert.ErrorIs(t, err, errTwo)
		assert.False(t, ok)

		ok, err = linq.TryNone(input, failsOnTwo)
		assert.ErrorIs(t, err, errTwo)
		assert.False(t, ok, "a failed None must not report true")
	})

	t.Run("error-is-unwrapped", func(t *testing.T) {
		_, err := linq.TryAny([]int{2}, failsOnTwo)
		assert.Same(t, errTwo, err)
	})

	t.Run("stops-at-error", func(t *testing.T) {
		var calls []int
		_, err := linq.TryAll([]int{1, 2, 3, 4}, func(n int) (bool, error) {
			calls = append(calls, n)
			return failsOnTwo(n)
		})
		// 1 fails the predicate before 2 could raise an error.
		assert.NoError(t, err)
		assert.Equal(t, []int{1}, calls)

		calls = nil
		_, err = linq.TryAny([]int{1, 2, 3, 4}, func(n int) (bool, error) {
			calls = append(calls, n)
			return failsOnTwo(n)
		})
		assert.ErrorIs(t, err, errTwo)
		assert.Equal(t, []int{1, 2}, calls)
	})

	t.Run("success", func(t *testing.T) {
		s := linq.Sequence[int]{3, 4, 5}

		ok, err := s.TryAll(failsOnTwo)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.TryAny(failsOnTwo)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.TryNone(failsOnTwo)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		var s linq.Sequence[int]

		ok, err := s.TryAll(failsOnTwo)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.TryAny(failsOnTwo)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = s.TryNone(failsOnTwo)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
