package linq

// Sequence is an ordered, finite collection of elements that exposes the query
// operations of this package as methods.
//
// A Sequence is a plain slice, so any []T converts to it without copying:
//
//	s := linq.Sequence[string](names)
//
// The methods never modify the receiver. Methods that return a Sequence
// return a new slice that does not share storage with the receiver.
//
// The nil Sequence is an empty sequence and is ready to use.
type Sequence[T any] []T

// All reports whether every element satisfies predicate. See [All].
func (s Sequence[T]) All(predicate func(T) bool) bool {
	return All(s, predicate)
}

// Any reports whether at least one element satisfies predicate. See [Any].
func (s Sequence[T]) Any(predicate func(T) bool) bool {
	return Any(s, predicate)
}

// None reports whether no element satisfies predicate. See [None].
func (s Sequence[T]) None(predicate func(T) bool) bool {
	return None(s, predicate)
}

// NotEmpty reports whether the sequence has at least one element.
func (s Sequence[T]) NotEmpty() bool {
	return NotEmpty(s)
}

// Where returns the elements that satisfy predicate. See [Where].
func (s Sequence[T]) Where(predicate func(T) bool) Sequence[T] {
	return Where(s, predicate)
}

// Except returns the elements that do not satisfy predicate. See [Except].
func (s Sequence[T]) Except(predicate func(T) bool) Sequence[T] {
	return Except(s, predicate)
}

// First returns the first element that satisfies predicate. See [First].
func (s Sequence[T]) First(predicate func(T) bool) (T, bool) {
	return First(s, predicate)
}

// Last returns the last element that satisfies predicate. See [Last].
func (s Sequence[T]) Last(predicate func(T) bool) (T, bool) {
	return Last(s, predicate)
}

// TryAll is like All for predicates that can fail. See [TryAll].
func (s Sequence[T]) TryAll(predicate func(T) (bool, error)) (bool, error) {
	return TryAll(s, predicate)
}

// TryAny is like Any for predicates that can fail. See [TryAny].
func (s Sequence[T]) TryAny(predicate func(T) (bool, error)) (bool, error) {
	return TryAny(s, predicate)
}

// TryNone is like None for predicates that can fail. See [TryNone].
func (s Sequence[T]) TryNone(predicate func(T) (bool, error)) (bool, error) {
	return TryNone(s, predicate)
}

// TryWhere is like Where for predicates that can fail. See [TryWhere].
func (s Sequence[T]) TryWhere(predicate func(T) (bool, error)) (Sequence[T], error) {
	return TryWhere(s, predicate)
}
