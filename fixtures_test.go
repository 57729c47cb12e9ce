package fa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type transition struct {
	from, to int
	symbol   Symbol
}

func buildNFA(t *testing.T, alphabet string, start int, terminals []int, transitions ...transition) *NFA {
	t.Helper()
	n := NewNFA(AlphabetOf(alphabet))
	n.SetStartState(start)
	for _, tr := range transitions {
		require.NoError(t, n.AddTransition(tr.from, tr.to, tr.symbol))
	}
	for _, s := range terminals {
		n.AddTerminalState(s)
	}
	return n
}

func nfaAB6(t *testing.T) *NFA {
	return buildNFA(t, "ab", 0, []int{1},
		transition{0, 1, 'a'},
		transition{1, 1, 'b'},
		transition{1, 2, 'a'},
		transition{2, 4, 'a'},
		transition{4, 2, 'b'},
		transition{2, 3, 'a'},
		transition{3, 5, 'a'},
		transition{5, 3, 'b'},
		transition{3, 1, Epsilon},
	)
}

// same language as nfaAB6, spread over many epsilon moves
func nfaAB6ManyEps(t *testing.T) *NFA {
	return buildNFA(t, "ab", 0, []int{1},
		transition{0, 6, Epsilon},
		transition{6, 6, Epsilon},
		transition{0, 7, Epsilon},
		transition{7, 12, Epsilon},
		transition{12, 6, Epsilon},
		transition{6, 1, 'a'},
		transition{1, 10, Epsilon},
		transition{10, 11, 'b'},
		transition{11, 8, Epsilon},
		transition{8, 9, Epsilon},
		transition{9, 1, Epsilon},
		transition{1, 2, 'a'},
		transition{2, 14, Epsilon},
		transition{14, 4, 'a'},
		transition{4, 15, 'b'},
		transition{15, 2, Epsilon},
		transition{2, 16, Epsilon},
		transition{2, 3, 'a'},
		transition{16, 3, 'a'},
		transition{3, 21, Epsilon},
		transition{21, 19, Epsilon},
		transition{21, 18, Epsilon},
		transition{19, 18, Epsilon},
		transition{18, 5, 'a'},
		transition{5, 3, 'b'},
		transition{5, 17, Epsilon},
		transition{17, 3, 'b'},
		transition{3, 13, Epsilon},
		transition{13, 1, Epsilon},
		transition{5, 20, Epsilon},
	)
}

func nfaAB4(t *testing.T) *NFA {
	return buildNFA(t, "ab", 1, []int{4},
		transition{1, 2, 'a'},
		transition{2, 1, 'b'},
		transition{1, 3, 'b'},
		transition{3, 1, 'a'},
		transition{1, 4, 'a'},
		transition{1, 4, 'b'},
		transition{1, 4, Epsilon},
	)
}

func dfaOf(t *testing.T, n *NFA) *DFA {
	t.Helper()
	d, err := FromNFA(n)
	require.NoError(t, err)
	return d
}

// requireSameLanguage checks a and b on every word up to maxLen and on the
// empty word.
func requireSameLanguage(t *testing.T, a, b Automaton, maxLen int) {
	t.Helper()
	word, err := CompareUpTo(a, b, maxLen)
	require.NoError(t, err, "word %q", FormatWord(word))

	x, err := a.Accept(nil)
	require.NoError(t, err)
	y, err := b.Accept(nil)
	require.NoError(t, err)
	require.Equal(t, x, y, "empty word")
}
