package fa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var _ Automaton = &NFA{}

// NFA is a nondeterministic automaton with epsilon moves. Its transition
// relation maps (state, symbol or Epsilon) to a set of states.
type NFA struct {
	base

	// next[state][slot] holds the targets of a dense state; slot 0 is Epsilon
	// and slot k+1 is the k-th alphabet symbol. A nil entry means no target.
	next [][]*bitset.BitSet
}

func NewNFA(alphabet Alphabet) *NFA {
	return &NFA{base: newBase(alphabet)}
}

func (n *NFA) slot(s Symbol) int {
	if s == Epsilon {
		return 0
	}
	if k := n.alphabet.Index(s); k >= 0 {
		return k + 1
	}
	return -1
}

// targets returns the target set of a dense state, or nil.
func (n *NFA) targets(state, slot int) *bitset.BitSet {
	if state >= len(n.next) || n.next[state] == nil {
		return nil
	}
	return n.next[state][slot]
}

// AddTransition adds to to the targets of (from, s). Both states are
// registered if unknown. s must be Epsilon or an alphabet member.
func (n *NFA) AddTransition(from, to int, s Symbol) error {
	k := n.slot(s)
	if k < 0 {
		return fmt.Errorf("nfa transition %d -> %d: %w", from, to, n.checkSymbol(s))
	}
	f := n.register(from)
	t := n.register(to)

	n.next = grow(n.next, f+1)
	if n.next[f] == nil {
		n.next[f] = make([]*bitset.BitSet, n.alphabet.Len()+1)
	}
	if n.next[f][k] == nil {
		n.next[f][k] = bitset.New(uint(t + 1))
	}
	n.next[f][k].Set(uint(t))
	return nil
}

// Targets returns the states reached from from on s, in ascending order.
func (n *NFA) Targets(from int, s Symbol) []int {
	i, ok := n.index[from]
	k := n.slot(s)
	if !ok || k < 0 {
		return nil
	}
	set := n.targets(i, k)
	if set == nil {
		return nil
	}
	return n.idsOf(set)
}

// EdgesFrom lists the transitions leaving state, Epsilon first, then by
// symbol, then by target id.
func (n *NFA) EdgesFrom(state int) []Edge {
	i, ok := n.index[state]
	if !ok {
		return nil
	}
	symbols := append([]Symbol{Epsilon}, n.alphabet.symbols...)
	edges := make([]Edge, 0)
	for k, s := range symbols {
		set := n.targets(i, k)
		if set == nil {
			continue
		}
		for _, to := range n.idsOf(set) {
			edges = append(edges, Edge{To: to, Symbol: s})
		}
	}
	return edges
}

// closure returns the smallest superset of seed closed under epsilon moves.
// seed is not modified.
func (n *NFA) closure(seed *bitset.BitSet) *bitset.BitSet {
	closed := seed.Clone()
	workList := make([]uint, 0, seed.Count())
	for i, ok := seed.NextSet(0); ok; i, ok = seed.NextSet(i + 1) {
		workList = append(workList, i)
	}

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		eps := n.targets(int(state), 0)
		if eps == nil {
			continue
		}
		for t, ok := eps.NextSet(0); ok; t, ok = eps.NextSet(t + 1) {
			if !closed.Test(t) {
				closed.Set(t)
				workList = append(workList, t)
			}
		}
	}
	return closed
}

// EpsilonClosure returns, in ascending order, the states reachable from the
// given ones through zero or more epsilon moves. Unknown states are ignored.
func (n *NFA) EpsilonClosure(states ...int) []int {
	seed := bitset.New(uint(n.NumStates()))
	for _, s := range states {
		if i, ok := n.index[s]; ok {
			seed.Set(uint(i))
		}
	}
	return n.idsOf(n.closure(seed))
}

// Begin returns the cursor over the epsilon closure of the start state.
func (n *NFA) Begin() (Cursor, error) {
	if n.start < 0 {
		return nil, ErrNoStartState
	}
	return n.cursor(bitset.New(uint(n.NumStates())).Set(uint(n.start))), nil
}

func (n *NFA) cursor(seed *bitset.BitSet) *nfaCursor {
	return &nfaCursor{nfa: n, states: Freeze(n.closure(seed))}
}

// Accept reports whether word is in the language of n.
func (n *NFA) Accept(word []Symbol) (bool, error) {
	return accept(n, word)
}

func (n *NFA) AcceptString(s string) (bool, error) {
	return accept(n, Word(s))
}

// Clone returns an independent copy of n.
func (n *NFA) Clone() *NFA {
	c := &NFA{
		base: n.cloneBase(),
		next: make([][]*bitset.BitSet, len(n.next)),
	}
	for i, row := range n.next {
		if row == nil {
			continue
		}
		c.next[i] = make([]*bitset.BitSet, len(row))
		for k, set := range row {
			if set != nil {
				c.next[i][k] = set.Clone()
			}
		}
	}
	return c
}

var _ Cursor = &nfaCursor{}

// nfaCursor is an epsilon-closed set of NFA states.
type nfaCursor struct {
	nfa    *NFA
	states *FrozenStateSet
}

func (c *nfaCursor) Step(s Symbol) (Cursor, error) {
	if s == Epsilon {
		return nil, fmt.Errorf("nfa step: %w", ErrInvalidSymbol)
	}
	k := c.nfa.slot(s)
	if k < 0 {
		return nil, fmt.Errorf("nfa step: %w", c.nfa.checkSymbol(s))
	}
	union := bitset.New(uint(c.nfa.NumStates()))
	for i, ok := c.states.bits.NextSet(0); ok; i, ok = c.states.bits.NextSet(i + 1) {
		if set := c.nfa.targets(int(i), k); set != nil {
			union.InPlaceUnion(set)
		}
	}
	return c.nfa.cursor(union), nil
}

func (c *nfaCursor) Terminal() bool {
	return c.states.Intersects(c.nfa.isAccept)
}

// States returns the NFA state ids of the cursor in ascending order.
func (c *nfaCursor) States() []int {
	return c.nfa.idsOf(c.states.bits)
}

func (c *nfaCursor) Hash() uint64 {
	return c.states.Hash()
}

func (c *nfaCursor) Equals(other Hashable) bool {
	o, ok := other.(*nfaCursor)
	return ok && c.nfa == o.nfa && c.states.Equals(o.states)
}
