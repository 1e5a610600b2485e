package iterators

// Empty returns an iterator over no values at all.
// Factories hand it out when a configuration describes a range that holds
// nothing, so callers can consume the result without a nil check.
func Empty[T any]() *EmptyIter[T] {
	return &EmptyIter[T]{}
}

// EmptyIter is an already exhausted iterator: Next is false from the first
// call, Err is nil and Value is the zero value of T.
type EmptyIter[T any] struct{}

func (i *EmptyIter[T]) Close() error { return nil }

func (i *EmptyIter[T]) Err() error { return nil }

func (i *EmptyIter[T]) Next() bool { return false }

func (i *EmptyIter[T]) Value() T {
	var v T
	return v
}
