package timeseq

// Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.
//
//	TL;DR:
//	  const ErrSomething timeseq.Error = "something is an error"
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

const (
	// ErrEmptyStep is returned when a Step without any nonzero magnitude unit
	// is used to describe the distance between sequence points.
	ErrEmptyStep Error = "Step must have a nonzero magnitude for at least one unit"
	// ErrNonPositiveStep is returned when a Step would not move the sequence
	// forward on the timeline.
	ErrNonPositiveStep Error = "Step must advance the timeline forward"
	// ErrUnsupportedUnit is returned when a Unit has no meaning
	// for the temporal type it is used with.
	ErrUnsupportedUnit Error = "Unit is not supported by the temporal type"
	// ErrNotFound is returned when a value was expected from an iterator,
	// but the iterator was empty.
	ErrNotFound Error = "ErrNotFound"
)
