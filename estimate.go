package timeseq

// EstimatedUnits converts a Step into a fractional number of the target unit.
//
// The conversion takes every component of the step, expresses its nominal
// duration in the duration of the target unit, scales it by the component's
// magnitude, and sums the results. It is called an estimation because any
// component whose duration is estimated (see Unit.DurationEstimated) makes
// the result an average rather than an exact amount.
//
// No rounding happens here; callers round, floor or ceil as their use case
// demands. The target unit must have a nonzero duration, which holds for
// every unit of the library.
func EstimatedUnits(s Step, target Unit) float64 {
	nanosInTarget := target.Duration().Nanoseconds()
	var total float64
	for _, p := range s.Parts() {
		total += float64(p.Unit.Duration().Nanoseconds()) * float64(p.N) / float64(nanosInTarget)
	}
	return total
}
