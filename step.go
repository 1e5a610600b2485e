package timeseq

import (
	"fmt"
	"sort"
	"strings"
)

// Step is an immutable composite quantity that describes the distance between
// two neighbouring points of a sequence, unit by unit.
// A Step like "1 Month and 3 Days" holds a magnitude for each of its units.
//
// The zero value of Step has no unit with a nonzero magnitude, and is not a
// valid distance between sequence points.
type Step struct {
	parts    []StepPart
	smallest Unit
}

// StepPart is a single unit component of a Step.
type StepPart struct {
	Unit Unit
	N    int64
}

// StepOf creates a Step out of the received parts.
// Parts with a zero magnitude are dropped, parts sharing a unit are summed,
// and the remaining parts are ordered from the coarsest unit to the finest.
// The smallest unit of the step is resolved here once and cached for the
// lifetime of the value.
//
// A part with the zero Unit is a programming error and makes StepOf panic.
func StepOf(parts ...StepPart) Step {
	byUnit := make(map[Unit]int64, len(parts))
	for _, p := range parts {
		if p.Unit.IsZero() {
			panic("timeseq: StepOf called with the zero Unit")
		}
		byUnit[p.Unit] += p.N
	}
	var ps []StepPart
	for u, n := range byUnit {
		if n == 0 {
			continue
		}
		ps = append(ps, StepPart{Unit: u, N: n})
	}
	sort.Slice(ps, func(i, j int) bool {
		return ps[i].Unit.Duration() > ps[j].Unit.Duration()
	})
	var s Step
	s.parts = ps
	if 0 < len(ps) {
		s.smallest = ps[len(ps)-1].Unit
	}
	return s
}

// StepBy creates a Step out of a single unit and its magnitude.
func StepBy(u Unit, n int64) Step {
	return StepOf(StepPart{Unit: u, N: n})
}

// Nanoseconds returns a Step of n nanoseconds.
func Nanoseconds(n int64) Step { return StepBy(Nanosecond, n) }

// Seconds returns a Step of n seconds.
func Seconds(n int64) Step { return StepBy(Second, n) }

// Minutes returns a Step of n minutes.
func Minutes(n int64) Step { return StepBy(Minute, n) }

// Hours returns a Step of n hours.
func Hours(n int64) Step { return StepBy(Hour, n) }

// Days returns a Step of n days.
func Days(n int64) Step { return StepBy(Day, n) }

// Weeks returns a Step of n weeks.
func Weeks(n int64) Step { return StepBy(Week, n) }

// Months returns a Step of n months.
func Months(n int64) Step { return StepBy(Month, n) }

// Years returns a Step of n years.
func Years(n int64) Step { return StepBy(Year, n) }

// With returns a new Step that also advances by n units of u.
// The receiver is left untouched.
func (s Step) With(u Unit, n int64) Step {
	return StepOf(append(s.Parts(), StepPart{Unit: u, N: n})...)
}

// Parts returns the unit components of the step,
// ordered from the coarsest unit to the finest.
func (s Step) Parts() []StepPart {
	out := make([]StepPart, len(s.parts))
	copy(out, s.parts)
	return out
}

// Get returns the magnitude the step holds for the given unit,
// zero when the unit is absent.
func (s Step) Get(u Unit) int64 {
	for _, p := range s.parts {
		if p.Unit == u {
			return p.N
		}
	}
	return 0
}

// SmallestUnit returns the finest grained unit that has a nonzero magnitude in the step.
// The second return value is false for a Step with no such unit.
func (s Step) SmallestUnit() (Unit, bool) {
	return s.smallest, !s.smallest.IsZero()
}

// IsZero reports whether the step has no unit with a nonzero magnitude.
func (s Step) IsZero() bool { return len(s.parts) == 0 }

// DurationEstimated reports whether any component unit of the step has an estimated duration.
func (s Step) DurationEstimated() bool {
	for _, p := range s.parts {
		if p.Unit.DurationEstimated() {
			return true
		}
	}
	return false
}

func (s Step) String() string {
	if s.IsZero() {
		return "Step{}"
	}
	var ps []string
	for _, p := range s.parts {
		ps = append(ps, fmt.Sprintf("%d %s", p.N, p.Unit))
	}
	return strings.Join(ps, " ")
}
