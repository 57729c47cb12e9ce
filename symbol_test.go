package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	t.Run("AlphabetOf", func(t *testing.T) {
		a := AlphabetOf("baab")
		assert.Equal(t, 2, a.Len())
		assert.Equal(t, []Symbol{'a', 'b'}, a.Symbols())
		assert.Equal(t, "ab", a.String())
		assert.True(t, a.Contains('a'))
		assert.False(t, a.Contains('c'))
		assert.False(t, a.Contains(Epsilon))
		assert.Equal(t, 1, a.Index('b'))
		assert.Equal(t, -1, a.Index('z'))
	})

	t.Run("NewAlphabetRejectsEpsilon", func(t *testing.T) {
		_, err := NewAlphabet('a', Epsilon)
		assert.ErrorIs(t, err, ErrInvalidSymbol)
	})

	t.Run("Equal", func(t *testing.T) {
		a, err := NewAlphabet('b', 'a', 'b')
		require.NoError(t, err)
		assert.True(t, a.Equal(AlphabetOf("ab")))
		assert.False(t, a.Equal(AlphabetOf("abc")))
	})

	t.Run("SymbolsIsACopy", func(t *testing.T) {
		a := AlphabetOf("ab")
		symbols := a.Symbols()
		symbols[0] = 'z'
		assert.Equal(t, "ab", a.String())
	})
}

func TestWordHelpers(t *testing.T) {
	assert.Equal(t, []Symbol{'a', 'b'}, Word("ab"))
	assert.Equal(t, "eps", Epsilon.String())
	assert.True(t, Epsilon.IsEpsilon())
	assert.Equal(t, "ab", FormatWord(Word("ab")))
	assert.Empty(t, TrimEpsilon([]Symbol{Epsilon}))
	assert.Equal(t, []Symbol{'a'}, TrimEpsilon([]Symbol{Epsilon, 'a'}))
}
