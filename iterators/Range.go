package iterators

import (
	"fmt"
	"math"

	"github.com/adamluzsi/timeseq"
)

// Range creates an iterator that enumerates the half-open [begin, until)
// range of the timeline, moving forward by step between neighbouring points.
//
// The points are created lazily, one per Next call, so the size of the range
// has no effect on the memory footprint. The begin point is the first value
// produced, the until point is never produced, and production stops as soon as
// the position reaches or passes until by the natural order of T.
//
// Range fails when the step has no unit with a nonzero magnitude, when the
// step would not move the position forward, or when the smallest unit of the
// step is not supported by the begin or the until point.
func Range[T timeseq.Temporal[T]](begin, until T, step timeseq.Step) (*RangeIter[T], error) {
	smallest, ok := step.SmallestUnit()
	if !ok {
		return nil, timeseq.ErrEmptyStep
	}
	if !begin.Supports(smallest) || !until.Supports(smallest) {
		return nil, fmt.Errorf("%w: %s as the smallest unit of %s", timeseq.ErrUnsupportedUnit, smallest, step)
	}
	perStep := timeseq.EstimatedUnits(step, smallest)
	if perStep <= 0 {
		return nil, timeseq.ErrNonPositiveStep
	}
	return &RangeIter[T]{
		begin:    begin,
		until:    until,
		current:  begin,
		step:     step,
		smallest: smallest,
		perStep:  perStep,
	}, nil
}

// RangeIter enumerates a half-open range of the timeline point by point,
// and can split itself in two so that the halves can be consumed in parallel.
//
// A RangeIter is owned by a single goroutine at a time. It has no internal
// locking; handing parts of a range to other goroutines is done exclusively
// through TrySplit, which transfers the ownership of the front half wholesale.
// Use WithConcurrentAccess if a single iterator must be shared instead.
//
// The produced values are strictly increasing and distinct. When the span of
// the range does not divide evenly by the step, the last produced point is
// followed by the position being clamped to the until point, so a partial
// tail period never produces an overshooting value. The same clamping keeps
// cyclic temporal types, like a time of day, from wrapping past the end of
// the range. For composite steps that mix estimated duration units the
// clamping decision is based on the estimated length of one step, which is a
// documented approximation, not an exact calculation.
type RangeIter[T timeseq.Temporal[T]] struct {
	begin    T
	until    T
	step     timeseq.Step
	smallest timeseq.Unit
	perStep  float64

	current T
	value   T
	closed  bool
	err     error
}

// Close stops the iteration. After Close, Next returns false, EstimateSize
// reports zero and TrySplit refuses to split. Close is idempotent.
func (i *RangeIter[T]) Close() error {
	i.closed = true
	return nil
}

// Err returns the domain addition failure that stopped the iteration, if any.
func (i *RangeIter[T]) Err() error {
	return i.err
}

// Next reports whether a next point of the range is available, and prepares
// it for Value. Once the position reached the end of the range, Next keeps
// returning false without touching the state.
func (i *RangeIter[T]) Next() bool {
	if i.closed || i.err != nil {
		return false
	}
	if 0 <= i.current.Compare(i.until) {
		return false
	}
	i.value = i.current
	i.advance()
	return true
}

// Value returns the current point of the range.
func (i *RangeIter[T]) Value() T {
	return i.value
}

// advance moves the position one step forward.
//
// When less than one step's worth of distance remains, the position is set
// directly to the until point. This is what keeps a partial tail period from
// producing a value past the end, and what keeps cyclic temporal types from
// wrapping around the range boundary.
func (i *RangeIter[T]) advance() {
	remaining := i.current.Until(i.until, i.smallest)
	if float64(remaining) < i.perStep {
		i.current = i.until
		return
	}
	next, err := i.current.Add(i.step)
	if err != nil {
		// domain addition failure: surface it through Err and stop producing
		i.err = err
		i.current = i.until
		return
	}
	i.current = next
}

// EstimateSize returns the number of points not yet produced from the range.
//
// The count is the remaining distance measured in the smallest unit of the
// step, divided by the estimated length of one step, rounded up. Rounding up
// is mandatory: the quantity counts points, not the spans between them, so a
// partial trailing span still holds one more point. The result is exact when
// no estimated duration unit is involved and the span divides evenly by the
// step; otherwise it is a best-effort estimate.
func (i *RangeIter[T]) EstimateSize() int64 {
	if i.closed || i.err != nil {
		return 0
	}
	return i.remainingCount()
}

func (i *RangeIter[T]) remainingCount() int64 {
	if 0 <= i.current.Compare(i.until) {
		return 0
	}
	remaining := i.current.Until(i.until, i.smallest)
	return int64(math.Ceil(float64(remaining) / i.perStep))
}

// TrySplit divides the remaining range in two and returns a new iterator that
// owns the front (chronologically earlier) half, while the receiver keeps
// only the back half. The two halves are disjoint and contiguous: the front
// half ends exactly where the back half begins. Every point the undivided
// range would have produced is produced by exactly one of the two iterators.
//
// TrySplit returns nil without an error when the remaining range holds one
// point or less, as such a range cannot be divided into two nonempty halves.
// A domain addition failure while computing the split point is returned with
// the receiver left untouched.
//
// After a successful split the two iterators share no mutable state and may
// be consumed by different goroutines without coordination.
func (i *RangeIter[T]) TrySplit() (*RangeIter[T], error) {
	if i.closed || i.err != nil {
		return nil, nil
	}
	count := i.remainingCount()
	if count <= 1 {
		return nil, nil
	}
	splitPoint, err := i.current.AddUnits(i.smallest, int64(math.Round(i.perStep*float64(count/2))))
	if err != nil {
		return nil, err
	}
	front := &RangeIter[T]{
		begin:    i.current,
		until:    splitPoint,
		current:  i.current,
		step:     i.step,
		smallest: i.smallest,
		perStep:  i.perStep,
	}
	i.current = splitPoint
	return front, nil
}

// Characteristics reports the structural guarantees of the iteration.
// A RangeIter is always ordered and sorted by the natural order of its
// temporal type, produces distinct non-zero values, reports its size, and
// never mutates the points it produces. These follow from the algorithm
// itself, they are not runtime checks.
func (i *RangeIter[T]) Characteristics() Characteristic {
	return Ordered | Sorted | Distinct | NonNull | Sized | SubSized | Immutable
}
