package linq

// Select returns a new sequence holding transform applied to each element of s,
// in order. The result always has the same length as s, and its i-th element
// is transform(s[i]).
//
// For an empty s, Select returns an empty, non-nil sequence.
func Select[S ~[]T, T, U any](s S, transform func(T) U) Sequence[U] {
	out := make(Sequence[U], len(s))
	for i, v := range s {
		out[i] = transform(v)
	}
	return out
}

// SelectMany applies transform to each element of s and concatenates the
// resulting slices, in order.
func SelectMany[S ~[]T, T, U any](s S, transform func(T) []U) Sequence[U] {
	out := make(Sequence[U], 0, len(s))
	for _, v := range s {
		out = append(out, transform(v)...)
	}
	return out
}

// Where returns a new sequence holding exactly the elements of s for which
// predicate returns true, in their original relative order.
//
// For an empty s, or when nothing matches, Where returns an empty, non-nil
// sequence. Where is idempotent: filtering its result again with the same
// predicate yields an equal sequence.
func Where[S ~[]T, T any](s S, predicate func(T) bool) Sequence[T] {
	out := make(Sequence[T], 0)
	for _, v := range s {
		if predicate(v) {
			out = append(out, v)
		}
	}
	return out
}

// Except is the complement of [Where]: it returns the elements of s for which
// predicate returns false, in their original relative order.
func Except[S ~[]T, T any](s S, predicate func(T) bool) Sequence[T] {
	return Where(s, func(v T) bool { return !predicate(v) })
}

// First returns the first element of s that satisfies predicate. If no element
// matches, it returns the zero value of T and false.
func First[S ~[]T, T any](s S, predicate func(T) bool) (T, bool) {
	for _, v := range s {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element of s that satisfies predicate. The sequence is
// scanned from the end, so predicate is not called on elements preceding the
// match. If no element matches, it returns the zero value of T and false.
func Last[S ~[]T, T any](s S, predicate func(T) bool) (T, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if predicate(s[i]) {
			return s[i], true
		}
	}
	var zero T
	return zero, false
}

// OfType returns the elements of s whose dynamic type is U, converted to U, in
// their original relative order. When U is an interface type, the elements
// implementing it are kept.
//
//	var shapes []any = ...
//	circles := linq.OfType[Circle](shapes)
func OfType[U any, S ~[]T, T any](s S) Sequence[U] {
	out := make(Sequence[U], 0)
	for _, v := range s {
		if u, ok := any(v).(U); ok {
			out = append(out, u)
		}
	}
	return out
}

// Cast converts every element of s to U with a type assertion. It panics on the
// first element that is not a U; use [OfType] to skip such elements instead.
func Cast[U any, S ~[]T, T any](s S) Sequence[U] {
	out := make(Sequence[U], len(s))
	for i, v := range s {
		out[i] = any(v).(U)
	}
	return out
}

// TrySelect is like [Select] for transforms that can fail. The first error
// returned by transform stops the traversal and is returned unchanged with a
// nil sequence; elements transformed before the failure are discarded.
func TrySelect[S ~[]T, T, U any](s S, transform func(T) (U, error)) (Sequence[U], error) {
	out := make(Sequence[U], len(s))
	for i, v := range s {
		u, err := transform(v)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

// TryWhere is like [Where] for predicates that can fail. The first error
// returned by predicate stops the traversal and is returned unchanged with a
// nil sequence.
func TryWhere[S ~[]T, T any](s S, predicate func(T) (bool, error)) (Sequence[T], error) {
	out := make(Sequence[T], 0)
	for _, v := range s {
		ok, err := predicate(v)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}
