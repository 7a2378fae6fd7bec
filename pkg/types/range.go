package types

// Range describes a four-way bound over an indexed field: lower bound,
// upper bound, and openness on either end. A nil bound is unbounded.
// Values may be strings, numbers, or time.Time; the store encodes them
// the same way it encodes the indexed field.
type Range struct {
	Lower     any
	Upper     any
	LowerOpen bool
	UpperOpen bool
}

// Bound returns a range with both ends set.
func Bound(lower, upper any, lowerOpen, upperOpen bool) Range {
	return Range{Lower: lower, Upper: upper, LowerOpen: lowerOpen, UpperOpen: upperOpen}
}

// LowerBound returns a range with only a lower bound.
func LowerBound(lower any, open bool) Range {
	return Range{Lower: lower, LowerOpen: open}
}

// UpperBound returns a range with only an upper bound.
func UpperBound(upper any, open bool) Range {
	return Range{Upper: upper, UpperOpen: open}
}

// Only returns a range matching exactly one value.
func Only(value any) Range {
	return Range{Lower: value, Upper: value}
}

// IsZero reports whether the range has no bounds at all.
func (r Range) IsZero() bool {
	return r.Lower == nil && r.Upper == nil
}
