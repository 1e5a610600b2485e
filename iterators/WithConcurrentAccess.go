package iterators

import (
	"sync"

	"github.com/adamluzsi/timeseq"
)

// WithConcurrentAccess allows you to convert any iterator into one that is safe to use from concurrent access.
// The caveat with this, that this protection only allows 1 Value call for each Next call.
//
// For a RangeIter, prefer consuming split halves from separate goroutines over
// sharing a single iterator; the shared form serializes every interaction.
func WithConcurrentAccess[T any](i timeseq.Iterator[T]) *ConcurrentAccessIterator[T] {
	return &ConcurrentAccessIterator[T]{iterator: i}
}

type ConcurrentAccessIterator[T any] struct {
	iterator timeseq.Iterator[T]
	mutex    sync.Mutex
}

func (i *ConcurrentAccessIterator[T]) Next() bool {
	i.mutex.Lock()
	if !i.iterator.Next() {
		i.mutex.Unlock()
		return false
	}
	return true
}

func (i *ConcurrentAccessIterator[T]) Value() T {
	defer i.mutex.Unlock()
	return i.iterator.Value()
}

func (i *ConcurrentAccessIterator[T]) Err() error {
	return i.iterator.Err()
}

func (i *ConcurrentAccessIterator[T]) Close() error {
	return i.iterator.Close()
}
