package timeseq

// Temporal is the capability a point type must provide to be enumerable as a sequence.
//
// Implementations are expected to be immutable value types:
// AddUnits and Add return a new value and never modify the receiver.
// The natural order defined by Compare is the only order the library uses.
type Temporal[T any] interface {
	// Compare orders the receiver against oth by the natural order of the type:
	// -1 when the receiver is earlier, 0 when they are the same point, +1 when it is later.
	Compare(oth T) int
	// Supports reports whether the unit is meaningful for this temporal type,
	// and thus whether Until and AddUnits accept it.
	Supports(u Unit) bool
	// Until returns the distance from the receiver to oth measured in whole units of u.
	// The result is negative when oth is earlier than the receiver.
	// The unit must be one the type Supports.
	Until(oth T, u Unit) int64
	// AddUnits returns a new value that is n units of u later than the receiver.
	// Adding an unsupported unit is a domain addition failure and returns an
	// error wrapping ErrUnsupportedUnit.
	AddUnits(u Unit, n int64) (T, error)
	// Add returns a new value advanced by every component of the step,
	// applying the coarsest unit first.
	Add(s Step) (T, error)
}
