package iterators

import (
	"github.com/adamluzsi/timeseq"
)

// Break can be returned from the ForEach function block to stop the iteration early without an error.
const Break timeseq.Error = `iterators:break`

// ForEach drives fn with every value of the iterator, then closes the iterator.
// Returning Break from fn stops the iteration early, any other error is returned as is.
func ForEach[T any](i timeseq.Iterator[T], fn func(T) error) (rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	for i.Next() {
		if err := fn(i.Value()); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}

	return i.Err()
}
