package iterators

import (
	"github.com/adamluzsi/timeseq"
)

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Like when you enumerate the days of a year,
// and the consumer works with a textual representation of a day,
// in order to not expose what steps needed to format a day,
// thus protect the consumer from this information.
func Map[T, V any](i timeseq.Iterator[T], transform func(T) (V, error)) *MapIter[T, V] {
	return &MapIter[T, V]{src: i, transform: transform}
}

type MapIter[T, V any] struct {
	src       timeseq.Iterator[T]
	transform func(T) (V, error)

	value V
	err   error
}

func (i *MapIter[T, V]) Close() error {
	return i.src.Close()
}

func (i *MapIter[T, V]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *MapIter[T, V]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.src.Next() {
		return false
	}
	v, err := i.transform(i.src.Value())
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *MapIter[T, V]) Value() V {
	return i.value
}
