package iterators

// Characteristic is a bit in the set of structural guarantees an iterator can
// report about the sequence it produces. Consumers use the set for scheduling
// and chunking decisions, for example a Sized iterator allows preallocation.
type Characteristic uint

const (
	// Ordered guarantees the values have a defined encounter order.
	Ordered Characteristic = 1 << iota
	// Sorted guarantees the values follow the natural order of their type.
	Sorted
	// Distinct guarantees no value is produced twice.
	Distinct
	// NonNull guarantees no produced value is a zero stand-in for a missing value.
	NonNull
	// Sized guarantees EstimateSize is exact before the first Next call,
	// as long as no estimated duration unit is involved.
	Sized
	// SubSized guarantees the halves of a split are Sized as well.
	SubSized
	// Immutable guarantees the produced values cannot be changed by the iterator afterwards.
	Immutable
)

// Has reports whether every characteristic of oth is present in the set.
func (c Characteristic) Has(oth Characteristic) bool {
	return c&oth == oth
}
