package iterators

// Pipe creates a connected sender and receiver pair.
// The receiver side is an ordinary iterator, the sender side is fed from
// other goroutines. It is the fan-in primitive of the library: the parallel
// range consumers split a range, drain the halves concurrently, and push
// everything they produce through one pipe to the reading goroutine.
func Pipe[T any]() (*PipeIn[T], *PipeOut[T]) {
	p := &pipe[T]{
		values: make(chan T),
		done:   make(chan struct{}, 1),
		errs:   make(chan error, 1),
	}
	return &PipeIn[T]{pipe: p}, &PipeOut[T]{pipe: p}
}

// pipe is the channel state the two endpoints share.
// values carries the produced elements, done signals that the receiver
// stopped listening, errs hands over at most one failure cause.
type pipe[T any] struct {
	values chan T
	done   chan struct{}
	errs   chan error
}

// PipeIn is the sender endpoint of a pipe.
type PipeIn[T any] struct {
	pipe *pipe[T]
}

// Value offers v to the receiver and blocks until it is taken.
// It reports false once the receiver closed its end, which tells the
// feeding goroutine to stop producing.
func (in *PipeIn[T]) Value(v T) (ok bool) {
	select {
	case in.pipe.values <- v:
		return true
	case <-in.pipe.done:
		return false
	}
}

// Error hands the failure cause over to the receiver, where it surfaces
// through Err. A nil error is ignored so callers can pass one along
// unconditionally.
func (in *PipeIn[T]) Error(err error) {
	if err == nil {
		return
	}
	defer func() { recover() }()
	in.pipe.errs <- err
}

// Close tells the receiver that no more values follow.
// Closing an already closed sender is a no-op.
func (in *PipeIn[T]) Close() error {
	defer func() { recover() }()
	close(in.pipe.values)
	close(in.pipe.errs)
	return nil
}

// PipeOut is the receiver endpoint of a pipe, an Iterator over whatever the
// sender feeds in.
type PipeOut[T any] struct {
	pipe *pipe[T]

	value   T
	lastErr error
}

// Next blocks until the sender offers a value or closes its end.
func (out *PipeOut[T]) Next() bool {
	v, ok := <-out.pipe.values
	if !ok {
		return false
	}
	out.value = v
	return true
}

// Value returns the last value taken from the sender.
func (out *PipeOut[T]) Value() T {
	return out.value
}

// Err returns the failure cause the sender handed over, if any.
func (out *PipeOut[T]) Err() error {
	if err, ok := <-out.pipe.errs; ok {
		out.lastErr = err
	}
	return out.lastErr
}

// Close signals the sender that the receiver stopped listening,
// unblocking its pending and future Value calls. Close is idempotent.
func (out *PipeOut[T]) Close() error {
	defer func() { recover() }()
	out.pipe.done <- struct{}{}
	close(out.pipe.done)
	return nil
}
