package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNFA_Empty(t *testing.T) {
	n := NewNFA(AlphabetOf("abc"))
	assert.Equal(t, 0, n.NumStates())
	assert.Empty(t, n.TerminalStates())
	_, ok := n.StartState()
	assert.False(t, ok)

	_, err := n.Begin()
	assert.ErrorIs(t, err, ErrNoStartState)
	_, err = n.AcceptString("a")
	assert.ErrorIs(t, err, ErrNoStartState)
}

func TestNFA_Transitions(t *testing.T) {
	n := NewNFA(AlphabetOf("abc"))
	n.SetStartState(0)
	n.AddTerminalState(1)
	require.NoError(t, n.AddTransition(0, 1, 'a'))
	require.NoError(t, n.AddTransition(0, 1, 'b'))
	require.NoError(t, n.AddTransition(0, 1, 'c'))
	require.NoError(t, n.AddTransition(0, 0, 'c'))

	assert.Equal(t, []int{1}, n.Targets(0, 'a'))
	assert.Equal(t, []int{1}, n.Targets(0, 'b'))
	assert.Equal(t, []int{0, 1}, n.Targets(0, 'c'))
	assert.Empty(t, n.Targets(1, 'a'))
	assert.Empty(t, n.Targets(7, 'a'))

	assert.Equal(t, []Edge{
		{To: 1, Symbol: 'a'},
		{To: 1, Symbol: 'b'},
		{To: 0, Symbol: 'c'},
		{To: 1, Symbol: 'c'},
	}, n.EdgesFrom(0))
}

func TestNFA_AddTransitionRegistersStates(t *testing.T) {
	n := NewNFA(AlphabetOf("ab"))
	require.NoError(t, n.AddTransition(5, 3, Epsilon))
	n.AddTerminalState(9)
	assert.Equal(t, []int{3, 5, 9}, n.States())
	assert.True(t, n.HasState(3))
	assert.True(t, n.IsTerminal(9))
	assert.Equal(t, []Edge{{To: 3, Symbol: Epsilon}}, n.EdgesFrom(5))
}

func TestNFA_InvalidSymbol(t *testing.T) {
	n := NewNFA(AlphabetOf("ab"))
	err := n.AddTransition(0, 1, 'c')
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	assert.Equal(t, 0, n.NumStates())
}

func TestNFA_Accept(t *testing.T) {
	n := nfaAB6(t)

	accepted := []string{"a", "ab", "aaa", "aaab", "aaabaabb", "aaaababbb"}
	for _, w := range accepted {
		ok, err := n.AcceptString(w)
		require.NoError(t, err)
		assert.True(t, ok, w)
	}
	rejected := []string{"", "b", "aaaa"}
	for _, w := range rejected {
		ok, err := n.AcceptString(w)
		require.NoError(t, err)
		assert.False(t, ok, w)
	}

	_, err := n.AcceptString("abc")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	_, err = n.Accept([]Symbol{'a', Epsilon})
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	assert.False(t, Run(n, "abc"))
}

func TestNFA_EpsilonClosure(t *testing.T) {
	n := nfaAB6ManyEps(t)

	closure := n.EpsilonClosure(0)
	assert.Equal(t, []int{0, 6, 7, 12}, closure)
	assert.Equal(t, closure, n.EpsilonClosure(closure...))

	assert.Equal(t, []int{1, 3, 10, 13, 18, 19, 21}, n.EpsilonClosure(3))
	assert.Equal(t, []int{4}, n.EpsilonClosure(4))
	assert.Empty(t, n.EpsilonClosure(100))
}

func TestNFA_SameLanguageWithEpsilons(t *testing.T) {
	requireSameLanguage(t, nfaAB6(t), nfaAB6ManyEps(t), 10)
}

func TestNFA_CursorHash(t *testing.T) {
	n := nfaAB6(t)
	begin, err := n.Begin()
	require.NoError(t, err)
	other, err := n.Begin()
	require.NoError(t, err)

	assert.True(t, begin.Equals(other))
	assert.Equal(t, begin.Hash(), other.Hash())

	mapping := NewHashMap[string]()
	mapping.Set(begin, "begin")
	v, ok := mapping.Get(other)
	assert.True(t, ok)
	assert.Equal(t, "begin", v)

	x, err := stepAll(begin, "aaab")
	require.NoError(t, err)
	y, err := stepAll(begin, "ab")
	require.NoError(t, err)
	assert.False(t, x.Equals(y))

	p, err := stepAll(begin, "aaabaa")
	require.NoError(t, err)
	q, err := stepAll(begin, "aaabaa")
	require.NoError(t, err)
	assert.True(t, p.Equals(q))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.(*nfaCursor).States())
}

func TestNFA_CursorIsImmutable(t *testing.T) {
	n := nfaAB6(t)
	begin, err := n.Begin()
	require.NoError(t, err)

	_, err = begin.Step('a')
	require.NoError(t, err)
	assert.Equal(t, []int{0}, begin.(*nfaCursor).States())

	b, err := begin.Step('b')
	require.NoError(t, err)
	assert.Empty(t, b.(*nfaCursor).States())
	assert.False(t, b.Terminal())
}

func TestNFA_Clone(t *testing.T) {
	n := nfaAB6(t)
	c := n.Clone()
	require.NoError(t, c.AddTransition(0, 0, 'b'))
	c.AddTerminalState(0)

	assert.Empty(t, n.Targets(0, 'b'))
	assert.False(t, n.IsTerminal(0))
	assert.False(t, Run(n, "ba"))
	assert.True(t, Run(c, "ba"))
}

func stepAll(c Cursor, word string) (Cursor, error) {
	var err error
	for _, s := range Word(word) {
		if c, err = c.Step(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}
