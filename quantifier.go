package linq

// All reports whether predicate returns true for every element of s.
//
// Elements are tested in order and the traversal stops at the first element
// for which predicate returns false. An empty sequence satisfies every
// predicate, so All returns true without calling predicate at all.
//
// All(s, p) is equivalent to None(s, not p).
func All[S ~[]T, T any](s S, predicate func(T) bool) bool {
	for _, v := range s {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Any reports whether predicate returns true for at least one element of s.
//
// Elements are tested in order and the traversal stops at the first element
// for which predicate returns true. Any returns false for an empty sequence.
func Any[S ~[]T, T any](s S, predicate func(T) bool) bool {
	for _, v := range s {
		if predicate(v) {
			return true
		}
	}
	return false
}

// None reports whether predicate returns false for every element of s. It is
// the negation of [Any], stopping at the first match, and returns true for an
// empty sequence.
func None[S ~[]T, T any](s S, predicate func(T) bool) bool {
	return !Any(s, predicate)
}

// NotEmpty reports whether s has at least one element. It is Any with a
// predicate that accepts everything.
func NotEmpty[S ~[]T, T any](s S) bool {
	return len(s) > 0
}

// TryAll is like [All] for predicates that can fail. The first error returned
// by predicate stops the traversal and is returned unchanged along with false.
func TryAll[S ~[]T, T any](s S, predicate func(T) (bool, error)) (bool, error) {
	for _, v := range s {
		ok, err := predicate(v)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// TryAny is like [Any] for predicates that can fail. The first error returned
// by predicate stops the traversal and is returned unchanged along with false.
func TryAny[S ~[]T, T any](s S, predicate func(T) (bool, error)) (bool, error) {
	for _, v := range s {
		ok, err := predicate(v)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// TryNone is like [None] for predicates that can fail. The first error returned
// by predicate stops the traversal and is returned unchanged along with false.
func TryNone[S ~[]T, T any](s S, predicate func(T) (bool, error)) (bool, error) {
	found, err := TryAny(s, predicate)
	if err != nil {
		return false, err
	}
	return !found, nil
}
