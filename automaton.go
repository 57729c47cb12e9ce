package fa

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Edge is one outgoing transition as seen by renderers.
type Edge struct {
	To     int
	Symbol Symbol
}

// Cursor walks an automaton one symbol at a time. Cursors are immutable: Step
// returns a new cursor and leaves the receiver usable, so a cursor can serve as
// a search key and be branched along several paths.
type Cursor interface {
	Hashable

	// Step consumes s and returns the resulting cursor.
	Step(s Symbol) (Cursor, error)

	// Terminal reports whether the cursor denotes acceptance.
	Terminal() bool
}

// Automaton is the read-only view shared by NFA and DFA.
type Automaton interface {
	Alphabet() Alphabet
	States() []int
	StartState() (int, bool)
	TerminalStates() []int
	IsTerminal(state int) bool
	EdgesFrom(state int) []Edge
	Begin() (Cursor, error)
	Accept(word []Symbol) (bool, error)
}

// base holds the bookkeeping common to NFA and DFA. States are caller chosen
// ints; internally each one gets a dense index in registration order so that
// sets of states can live in bitsets.
type base struct {
	alphabet Alphabet

	// dense index -> state id
	ids []int

	// state id -> dense index
	index map[int]int

	// dense index of the start state, or -1
	start int

	isAccept *bitset.BitSet
}

func newBase(alphabet Alphabet) base {
	return base{
		alphabet: alphabet,
		index:    make(map[int]int),
		start:    -1,
		isAccept: bitset.New(0),
	}
}

// register returns the dense index of state, creating it if needed.
func (b *base) register(state int) int {
	if i, ok := b.index[state]; ok {
		return i
	}
	i := len(b.ids)
	b.ids = append(b.ids, state)
	b.index[state] = i
	return i
}

func (b *base) Alphabet() Alphabet {
	return b.alphabet
}

// AddState registers state without any transition.
func (b *base) AddState(state int) {
	b.register(state)
}

func (b *base) HasState(state int) bool {
	_, ok := b.index[state]
	return ok
}

func (b *base) NumStates() int {
	return len(b.ids)
}

// States returns every known state in ascending order.
func (b *base) States() []int {
	states := slices.Clone(b.ids)
	slices.Sort(states)
	return states
}

func (b *base) SetStartState(state int) {
	b.start = b.register(state)
}

// StartState returns the start state; ok is false if none was set.
func (b *base) StartState() (int, bool) {
	if b.start < 0 {
		return 0, false
	}
	return b.ids[b.start], true
}

func (b *base) AddTerminalState(state int) {
	b.isAccept.Set(uint(b.register(state)))
}

func (b *base) IsTerminal(state int) bool {
	i, ok := b.index[state]
	return ok && b.isAccept.Test(uint(i))
}

// TerminalStates returns the accepting states in ascending order.
func (b *base) TerminalStates() []int {
	states := make([]int, 0, b.isAccept.Count())
	for i, ok := b.isAccept.NextSet(0); ok; i, ok = b.isAccept.NextSet(i + 1) {
		states = append(states, b.ids[i])
	}
	slices.Sort(states)
	return states
}

func (b *base) cloneBase() base {
	c := base{
		alphabet: b.alphabet,
		ids:      slices.Clone(b.ids),
		index:    make(map[int]int, len(b.index)),
		start:    b.start,
		isAccept: b.isAccept.Clone(),
	}
	for k, v := range b.index {
		c.index[k] = v
	}
	return c
}

// idsOf maps a set of dense indices back to sorted state ids.
func (b *base) idsOf(set *bitset.BitSet) []int {
	states := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		states = append(states, b.ids[i])
	}
	slices.Sort(states)
	return states
}

func (b *base) checkSymbol(s Symbol) error {
	if !b.alphabet.Contains(s) {
		return fmt.Errorf("symbol %v not in alphabet %q: %w", s, b.alphabet.String(), ErrInvalidSymbol)
	}
	return nil
}

// accept drives a cursor from a.Begin() through word.
func accept(a Automaton, word []Symbol) (bool, error) {
	alphabet := a.Alphabet()
	it, err := a.Begin()
	if err != nil {
		return false, err
	}
	for _, s := range word {
		if !alphabet.Contains(s) {
			return false, fmt.Errorf("word symbol %v: %w", s, ErrInvalidSymbol)
		}
		it, err = it.Step(s)
		if err != nil {
			return false, err
		}
	}
	return it.Terminal(), nil
}
