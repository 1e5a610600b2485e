// Package streams assembles sequence iterators out of a start point,
// an end point and a step, and provides the helpers to consume them
// from multiple goroutines by splitting the underlying range.
package streams

import (
	"github.com/adamluzsi/timeseq"
	"github.com/adamluzsi/timeseq/iterators"
)

const (
	// ErrStepRequired is returned by Builder.Iter when Every was not called.
	ErrStepRequired timeseq.Error = "Builder requires Every to be set"
	// ErrStartRequired is returned by Builder.Iter when From was not called.
	ErrStartRequired timeseq.Error = "Builder requires From to be set"
	// ErrEndRequired is returned by Builder.Iter when Until was not called.
	ErrEndRequired timeseq.Error = "Builder requires Until to be set"
)

// NewBuilder returns an empty Builder.
// Every, From and Until must all be called before the sequence can be built.
func NewBuilder[T timeseq.Temporal[T]]() *Builder[T] {
	return &Builder[T]{}
}

// Builder is the fluent way to describe a sequence:
//
//	days, err := streams.NewBuilder[temporals.Date]().
//		Every(timeseq.Days(1)).
//		From(temporals.DateOf(2020, time.January, 1)).
//		Until(temporals.DateOf(2021, time.January, 1)).
//		Iter()
//
// The value set with From is inclusive and becomes the first produced point,
// the value set with Until is exclusive and is never produced.
// A Builder is plain configuration plumbing: it holds the three ingredients
// and hands them to the range iterator constructor unchanged.
type Builder[T timeseq.Temporal[T]] struct {
	step     timeseq.Step
	from     T
	until    T
	hasStep  bool
	hasFrom  bool
	hasUntil bool
}

// Every sets the distance between two neighbouring points of the sequence.
func (b *Builder[T]) Every(step timeseq.Step) *Builder[T] {
	b.step = step
	b.hasStep = true
	return b
}

// From sets the inclusive starting point of the sequence.
func (b *Builder[T]) From(point T) *Builder[T] {
	b.from = point
	b.hasFrom = true
	return b
}

// Until sets the exclusive ending point of the sequence.
func (b *Builder[T]) Until(point T) *Builder[T] {
	b.until = point
	b.hasUntil = true
	return b
}

// Iter builds the sequence iterator.
// It fails when one of the three ingredients is missing,
// or when the range iterator constructor rejects the configuration.
func (b *Builder[T]) Iter() (*iterators.RangeIter[T], error) {
	if !b.hasStep {
		return nil, ErrStepRequired
	}
	if !b.hasFrom {
		return nil, ErrStartRequired
	}
	if !b.hasUntil {
		return nil, ErrEndRequired
	}
	return iterators.Range(b.from, b.until, b.step)
}

// ParallelIter builds the sequence iterator and fans its consumption out
// across the given number of goroutines; see Parallel for the semantics.
func (b *Builder[T]) ParallelIter(workers int) timeseq.Iterator[T] {
	r, err := b.Iter()
	if err != nil {
		return iterators.NewError[T](err)
	}
	return Parallel(r, workers)
}
