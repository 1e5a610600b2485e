// Package temporals provides the built-in temporal point types of the library.
//
// Each type here is an immutable value implementing timeseq.Temporal over
// itself: Date for calendar days, Time for the cyclic time of day, DateTime
// for full instants, and YearMonth for month granularity. They exist because
// the standard library has a single temporal type, time.Time, while the
// sequence factories and a number of consumers need domains with a coarser or
// a cyclic resolution.
//
// Calendar additions clamp to the end of the month the way calendars do:
// January 31st plus one month is the last day of February, not the 2nd or 3rd
// of March that a pure normalization would give.
package temporals

// floorDiv divides truncating towards negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns the non-negative remainder of floorDiv.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
