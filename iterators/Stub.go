package iterators

import (
	"github.com/adamluzsi/timeseq"
)

// Stub wraps an iterator so tests can override a single behavior of it,
// typically to inject an iteration or closing failure,
// while the untouched behaviors keep delegating to the wrapped iterator.
func Stub[T any](i timeseq.Iterator[T]) *StubIter[T] {
	return &StubIter[T]{
		Iterator:  i,
		StubClose: i.Close,
		StubErr:   i.Err,
		StubNext:  i.Next,
		StubValue: i.Value,
	}
}

// StubIter proxies every call to the matching Stub* field.
// Overriding a field replaces that one behavior; the Reset methods
// restore the delegation to the wrapped iterator.
type StubIter[T any] struct {
	Iterator  timeseq.Iterator[T]
	StubClose func() error
	StubErr   func() error
	StubNext  func() bool
	StubValue func() T
}

func (i *StubIter[T]) Close() error { return i.StubClose() }

func (i *StubIter[T]) Err() error { return i.StubErr() }

func (i *StubIter[T]) Next() bool { return i.StubNext() }

func (i *StubIter[T]) Value() T { return i.StubValue() }

func (i *StubIter[T]) ResetClose() { i.StubClose = i.Iterator.Close }

func (i *StubIter[T]) ResetErr() { i.StubErr = i.Iterator.Err }

func (i *StubIter[T]) ResetNext() { i.StubNext = i.Iterator.Next }

func (i *StubIter[T]) ResetValue() { i.StubValue = i.Iterator.Value }
