package streams

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/adamluzsi/timeseq"
	"github.com/adamluzsi/timeseq/iterators"
)

// SplitN divides the remaining range of r into at most n chunks by repeated
// splitting, always halving the currently largest chunk. The returned chunks
// are in chronological order, they are pairwise disjoint, and together they
// cover exactly the points r would have produced. The receiver itself becomes
// one of the chunks, so r must not be used directly afterwards.
//
// Fewer than n chunks are returned when the range runs out of split
// opportunities, for example when it holds fewer than n points.
func SplitN[T timeseq.Temporal[T]](r *iterators.RangeIter[T], n int) ([]*iterators.RangeIter[T], error) {
	chunks := []*iterators.RangeIter[T]{r}
	for len(chunks) < n {
		largest, at := chunks[0], 0
		for i, c := range chunks {
			if largest.EstimateSize() < c.EstimateSize() {
				largest, at = c, i
			}
		}
		front, err := largest.TrySplit()
		if err != nil {
			return nil, err
		}
		if front == nil {
			break
		}
		// the front half goes before the chunk it was split from
		chunks = append(chunks[:at], append([]*iterators.RangeIter[T]{front, largest}, chunks[at+1:]...)...)
	}
	return chunks, nil
}

// Parallel consumes the range from the given number of goroutines and merges
// what they produce into a single iterator. The merged values arrive in no
// particular order; use the sequential iterator when the chronological order
// matters. Closing the returned iterator releases the feeding goroutines.
func Parallel[T timeseq.Temporal[T]](r *iterators.RangeIter[T], workers int) timeseq.Iterator[T] {
	if workers < 1 {
		workers = 1
	}
	chunks, err := SplitN(r, workers)
	if err != nil {
		return iterators.NewError[T](err)
	}
	in, out := iterators.Pipe[T]()
	go func() {
		var g errgroup.Group
		for _, c := range chunks {
			c := c
			g.Go(func() error {
				for c.Next() {
					if !in.Value(c.Value()) {
						return nil
					}
				}
				return c.Err()
			})
		}
		in.Error(g.Wait())
		in.Close()
	}()
	return out
}

// ForEachParallel drives fn with every point of the range from the given
// number of goroutines. Each goroutine owns a split chunk of the range, so fn
// may be called concurrently and must be safe for that. The first error stops
// the work: the context handed to the remaining goroutines is cancelled and
// they stop at their next point. The first error is returned.
func ForEachParallel[T timeseq.Temporal[T]](ctx context.Context, r *iterators.RangeIter[T], workers int, fn func(T) error) error {
	if workers < 1 {
		workers = 1
	}
	chunks, err := SplitN(r, workers)
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			defer c.Close()
			for c.Next() {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(c.Value()); err != nil {
					return err
				}
			}
			return c.Err()
		})
	}
	return g.Wait()
}
