package fa

import "github.com/bits-and-blooms/bitset"

var _ Hashable = &FrozenStateSet{}

// FrozenStateSet is an immutable set of dense state indices. Equality and hash
// depend only on the members, never on the order they were added in or on the
// capacity of the underlying bitset.
type FrozenStateSet struct {
	bits     *bitset.BitSet
	hashCode uint64
}

// Freeze takes ownership of bits; the caller must not modify it afterwards.
func Freeze(bits *bitset.BitSet) *FrozenStateSet {
	f := &FrozenStateSet{bits: bits}
	f.hashCode = uint64(bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		f.hashCode += mix32(int(i))
	}
	return f
}

func (f *FrozenStateSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenStateSet) Equals(other Hashable) bool {
	o, ok := other.(*FrozenStateSet)
	if !ok {
		return false
	}
	if f == nil || o == nil {
		return f == o
	}
	if f.hashCode != o.hashCode {
		return false
	}
	n := f.bits.Count()
	return n == o.bits.Count() && f.bits.IntersectionCardinality(o.bits) == n
}

func (f *FrozenStateSet) Contains(i int) bool {
	return f.bits.Test(uint(i))
}

func (f *FrozenStateSet) Size() int {
	return int(f.bits.Count())
}

// Intersects reports whether some member is also set in other.
func (f *FrozenStateSet) Intersects(other *bitset.BitSet) bool {
	return f.bits.IntersectionCardinality(other) > 0
}

// GetArray returns the members in ascending order.
func (f *FrozenStateSet) GetArray() []int {
	values := make([]int, 0, f.bits.Count())
	for i, ok := f.bits.NextSet(0); ok; i, ok = f.bits.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return values
}
