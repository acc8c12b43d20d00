// Package linq provides query-style helpers over ordered, finite sequences,
// modelled after the enumerable extensions found in other ecosystems: All, Any,
// None, Select and Where, plus a handful of companions (Except, First, Last,
// SelectMany, OfType and Cast).
//
// Every operation is a single synchronous pass over a slice. Inputs are never
// mutated, and every slice returned is freshly allocated, so results may be
// modified without affecting the sequence they were derived from.
//
// # Sequences
//
// The package functions accept any slice type through an S ~[]T constraint:
//
//	evens := linq.Where([]int{1, 2, 3, 4}, isEven) // [2 4]
//
// Converting a slice to [Sequence] exposes the same operations as methods,
// which reads naturally when queries are chained:
//
//	active := linq.Sequence[Project](projects).Where(isActive)
//	names := linq.Select(active, func(p Project) string { return p.Name })
//
// Select and SelectMany exist only as package functions, because a method
// cannot introduce the result type parameter.
//
// # Quantifiers
//
// [All], [Any] and [None] short-circuit: they stop calling the predicate as soon
// as the result is determined. Over an empty sequence, All and None report true
// (vacuous truth) and Any reports false.
//
// # Callback Failures
//
// The package neither recovers nor wraps failures raised by caller-supplied
// callbacks. A panic inside a predicate or transform unwinds through the
// operation to its caller, and no result is produced.
//
// Callbacks that fail by returning an error use the Try variants ([TryAll],
// [TryAny], [TryNone], [TrySelect] and [TryWhere]). The first error stops the
// traversal and is returned unchanged, together with the zero value of the
// result, so callers may match it with errors.Is or errors.As:
//
//	ok, err := linq.TryAny(paths, func(p string) (bool, error) {
//	    info, err := os.Stat(p)
//	    if err != nil {
//	        return false, err
//	    }
//	    return info.IsDir(), nil
//	})
//
// # Concurrency
//
// The package holds no state. Concurrent calls, even over the same sequence,
// are safe as long as the callbacks themselves are safe for concurrent use.
package linq
