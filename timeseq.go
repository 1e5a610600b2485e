// Package timeseq provides lazy, splittable sequences over points in time.
//
// A sequence is described by a half-open [from, until) range and a Step that
// tells how far apart two neighbouring points are. Points are produced one by
// one on demand, so enumerating every day of a century costs no more memory
// than enumerating a week. The iterator owning a range can also divide itself
// in two along chronological order, which is the building block for consuming
// a single range from multiple goroutines without any shared state.
//
// The root package holds the shared abstractions:
//
//   - Iterator, the pull based iteration contract
//   - Temporal, the capability a point type must provide
//   - Unit and Step, the vocabulary for describing distances on a timeline
//   - EstimatedUnits, the conversion between a Step and a single Unit
//
// The concrete pieces live in the subpackages: iterators holds the splitting
// range iterator and the generic iterator toolkit, temporals the built-in
// point types, streams the fluent builder with the parallel consumption
// helpers, and clock the adapter clocks.
package timeseq
