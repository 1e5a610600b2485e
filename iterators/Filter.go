package iterators

import (
	"github.com/adamluzsi/timeseq"
)

// Filter keeps only the values of the source iterator the selector matches.
func Filter[T any](i timeseq.Iterator[T], selector func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{src: i, match: selector}
}

type FilterIter[T any] struct {
	src   timeseq.Iterator[T]
	match func(T) bool

	value T
}

func (fi *FilterIter[T]) Close() error {
	return fi.src.Close()
}

func (fi *FilterIter[T]) Err() error {
	return fi.src.Err()
}

func (fi *FilterIter[T]) Next() bool {
	for fi.src.Next() {
		v := fi.src.Value()
		if fi.match(v) {
			fi.value = v
			return true
		}
	}
	return false
}

func (fi *FilterIter[T]) Value() T {
	return fi.value
}
