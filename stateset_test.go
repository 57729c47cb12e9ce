package fa

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
)

func TestFreeze(t *testing.T) {
	f := Freeze(bitset.New(8).Set(5).Set(1).Set(3))
	assert.Equal(t, []int{1, 3, 5}, f.GetArray())
	assert.Equal(t, 3, f.Size())
	assert.True(t, f.Contains(3))
	assert.False(t, f.Contains(2))
}

func TestFrozenStateSet_Equals(t *testing.T) {
	tests := []struct {
		name     string
		f        *FrozenStateSet
		other    Hashable
		expected bool
	}{
		{
			name:     "both nil",
			f:        nil,
			other:    (*FrozenStateSet)(nil),
			expected: true,
		},
		{
			name:     "other nil interface",
			f:        Freeze(bitset.New(0)),
			other:    nil,
			expected: false,
		},
		{
			name:     "different type",
			f:        Freeze(bitset.New(4).Set(1)),
			other:    AnotherKey(1),
			expected: false,
		},
		{
			name:     "members differ",
			f:        Freeze(bitset.New(4).Set(1).Set(2)),
			other:    Freeze(bitset.New(4).Set(1)),
			expected: false,
		},
		{
			name:     "same members, different capacity",
			f:        Freeze(bitset.New(4).Set(1).Set(2)),
			other:    Freeze(bitset.New(128).Set(2).Set(1)),
			expected: true,
		},
		{
			name:     "both empty",
			f:        Freeze(bitset.New(0)),
			other:    Freeze(bitset.New(64)),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.f.Equals(tt.other))
		})
	}
}

func TestFrozenStateSet_Hash(t *testing.T) {
	a := Freeze(bitset.New(4).Set(0).Set(3))
	b := Freeze(bitset.New(256).Set(3).Set(0))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), Freeze(bitset.New(4).Set(0)).Hash())
}
