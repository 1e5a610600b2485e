package iterators

import (
	"github.com/adamluzsi/timeseq"
)

// First returns the first value of the iterator and closes the iterator.
// When the iterator is empty, ErrNotFound is returned.
func First[T any](i timeseq.Iterator[T]) (v T, err error) {
	defer func() {
		cErr := i.Close()

		if err == nil {
			err = cErr
		}
	}()

	if !i.Next() {
		if iErr := i.Err(); iErr != nil {
			return v, iErr
		}
		return v, timeseq.ErrNotFound
	}

	return i.Value(), i.Err()
}
