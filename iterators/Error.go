package iterators

// NewError returns an iterator which has no values and returns the given error from Err.
// It lets constructors whose signature promises an iterator surface a configuration failure
// through the iterator contract itself.
func NewError[T any](err error) *Error[T] {
	return &Error[T]{err: err}
}

// Error iterator can be used for returning an error wrapped with iterator interface.
type Error[T any] struct {
	err error
}

func (i *Error[T]) Close() error {
	return nil
}

func (i *Error[T]) Next() bool {
	return false
}

func (i *Error[T]) Err() error {
	return i.err
}

func (i *Error[T]) Value() T {
	var v T
	return v
}
