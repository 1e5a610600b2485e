package iterators

import (
	"github.com/adamluzsi/timeseq"
)

// Last drains the iterator and returns the last value it produced.
// When the iterator is empty, ErrNotFound is returned.
func Last[T any](i timeseq.Iterator[T]) (v T, err error) {
	defer func() {
		cErr := i.Close()

		if err == nil && cErr != nil {
			err = cErr
		}
	}()

	iterated := false

	for i.Next() {
		iterated = true
		v = i.Value()
	}

	if err := i.Err(); err != nil {
		return v, err
	}

	if !iterated {
		return v, timeseq.ErrNotFound
	}

	return v, nil
}
