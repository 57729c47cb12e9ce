package fa

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

var _ Automaton = &DFA{}

// DFA is a deterministic automaton with a partial transition function
// (state, symbol) -> state.
type DFA struct {
	base

	// next[state][k] is the dense target of a dense state on the k-th alphabet
	// symbol, or -1 when the transition is undefined.
	next [][]int
}

func NewDFA(alphabet Alphabet) *DFA {
	return &DFA{base: newBase(alphabet)}
}

func (d *DFA) row(state int) []int {
	d.next = grow(d.next, state+1)
	if d.next[state] == nil {
		row := make([]int, d.alphabet.Len())
		for k := range row {
			row[k] = -1
		}
		d.next[state] = row
	}
	return d.next[state]
}

// step returns the dense target of a dense state on the k-th symbol, or -1.
func (d *DFA) step(state, k int) int {
	if state >= len(d.next) || d.next[state] == nil {
		return -1
	}
	return d.next[state][k]
}

// AddTransition sets the target of (from, s) to to. Epsilon is rejected, and
// so is a second, different target for the same (from, s).
func (d *DFA) AddTransition(from, to int, s Symbol) error {
	k := d.alphabet.Index(s)
	if k < 0 {
		return fmt.Errorf("dfa transition %d -> %d: %w", from, to, d.checkSymbol(s))
	}
	if f, ok := d.index[from]; ok {
		if cur := d.step(f, k); cur >= 0 && d.ids[cur] != to {
			return fmt.Errorf("dfa transition %d -%v-> %d conflicts with -> %d: %w",
				from, s, to, d.ids[cur], ErrNondeterministic)
		}
	}
	f := d.register(from)
	t := d.register(to)
	d.row(f)[k] = t
	return nil
}

// Next returns the target of (from, s); ok is false if it is undefined.
func (d *DFA) Next(from int, s Symbol) (int, bool) {
	i, ok := d.index[from]
	k := d.alphabet.Index(s)
	if !ok || k < 0 {
		return 0, false
	}
	t := d.step(i, k)
	if t < 0 {
		return 0, false
	}
	return d.ids[t], true
}

// EdgesFrom lists the transitions leaving state in alphabet order.
func (d *DFA) EdgesFrom(state int) []Edge {
	i, ok := d.index[state]
	if !ok {
		return nil
	}
	edges := make([]Edge, 0, d.alphabet.Len())
	for k, s := range d.alphabet.symbols {
		if t := d.step(i, k); t >= 0 {
			edges = append(edges, Edge{To: d.ids[t], Symbol: s})
		}
	}
	return edges
}

// NumTransitions counts the defined (state, symbol) pairs.
func (d *DFA) NumTransitions() int {
	count := 0
	for _, row := range d.next {
		for _, t := range row {
			if t >= 0 {
				count++
			}
		}
	}
	return count
}

func (d *DFA) Begin() (Cursor, error) {
	if d.start < 0 {
		return nil, ErrNoStartState
	}
	return &dfaCursor{dfa: d, state: d.start}, nil
}

// Accept reports whether word is in the language of d. An undefined
// transition along the way is reported as ErrMissingTransition.
func (d *DFA) Accept(word []Symbol) (bool, error) {
	return accept(d, word)
}

func (d *DFA) AcceptString(s string) (bool, error) {
	return accept(d, Word(s))
}

// IsFull reports whether every state has a transition on every symbol.
func (d *DFA) IsFull() bool {
	for i := range d.ids {
		for k := 0; k < d.alphabet.Len(); k++ {
			t := d.step(i, k)
			if t < 0 || t >= len(d.ids) {
				return false
			}
		}
	}
	return true
}

// Renumbered returns a copy whose states are 0..n-1: the start state first,
// then the others in ascending id order.
func (d *DFA) Renumbered() *DFA {
	order := make([]int, 0, len(d.ids))
	if d.start >= 0 {
		order = append(order, d.start)
	}
	rest := make([]int, 0, len(d.ids))
	for i := range d.ids {
		if i != d.start {
			rest = append(rest, i)
		}
	}
	slices.SortFunc(rest, func(a, b int) int { return cmp.Compare(d.ids[a], d.ids[b]) })
	order = append(order, rest...)

	mapping := make([]int, len(d.ids))
	for id, i := range order {
		mapping[i] = id
	}
	return d.relabel(order, mapping)
}

// relabel builds a DFA whose state ids are mapping[dense]; order gives the
// registration order of the result. Every state of d must be mapped.
func (d *DFA) relabel(order, mapping []int) *DFA {
	r := NewDFA(d.alphabet)
	for _, i := range order {
		r.AddState(mapping[i])
	}
	for _, i := range order {
		for k := range d.alphabet.symbols {
			if t := d.step(i, k); t >= 0 {
				r.row(r.index[mapping[i]])[k] = r.index[mapping[t]]
			}
		}
		if d.isAccept.Test(uint(i)) {
			r.AddTerminalState(mapping[i])
		}
	}
	if d.start >= 0 {
		r.SetStartState(mapping[d.start])
	}
	return r
}

// CompletedToFull returns a renumbered copy with one extra non-accepting sink
// state that absorbs every undefined transition, its own included.
func (d *DFA) CompletedToFull() (*DFA, error) {
	r := d.Renumbered()
	sink := r.register(r.NumStates())
	for i := range r.ids {
		row := r.row(i)
		for k := range row {
			if row[k] < 0 {
				row[k] = sink
			}
		}
	}
	if !r.IsFull() {
		return nil, fmt.Errorf("sink state %d: %w", r.ids[sink], ErrCompletionFailure)
	}
	return r, nil
}

// reachable returns the dense states reachable from the start state.
func (d *DFA) reachable() *bitset.BitSet {
	seen := bitset.New(uint(d.NumStates()))
	if d.start < 0 {
		return seen
	}
	stack := []int{d.start}
	seen.Set(uint(d.start))
	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for k := 0; k < d.alphabet.Len(); k++ {
			t := d.step(state, k)
			if t >= 0 && !seen.Test(uint(t)) {
				seen.Set(uint(t))
				stack = append(stack, t)
			}
		}
	}
	return seen
}

// ReachableStates returns, in ascending order, the states reachable from the
// start state. It is empty when no start state is set.
func (d *DFA) ReachableStates() []int {
	return d.idsOf(d.reachable())
}

// Complemented returns a copy with the accepting states inverted. On a full
// DFA this accepts exactly the words d rejects.
func (d *DFA) Complemented() *DFA {
	c := d.Clone()
	c.isAccept = bitset.New(uint(len(c.ids)))
	for i := range c.ids {
		c.isAccept.SetTo(uint(i), !d.isAccept.Test(uint(i)))
	}
	return c
}

// Clone returns an independent copy of d.
func (d *DFA) Clone() *DFA {
	c := &DFA{
		base: d.cloneBase(),
		next: make([][]int, len(d.next)),
	}
	for i, row := range d.next {
		c.next[i] = slices.Clone(row)
	}
	return c
}

var _ Cursor = &dfaCursor{}

type dfaCursor struct {
	dfa   *DFA
	state int
}

func (c *dfaCursor) Step(s Symbol) (Cursor, error) {
	k := c.dfa.alphabet.Index(s)
	if k < 0 {
		return nil, fmt.Errorf("dfa step: %w", c.dfa.checkSymbol(s))
	}
	t := c.dfa.step(c.state, k)
	if t < 0 {
		return nil, fmt.Errorf("state %d on %v: %w", c.dfa.ids[c.state], s, ErrMissingTransition)
	}
	return &dfaCursor{dfa: c.dfa, state: t}, nil
}

func (c *dfaCursor) Terminal() bool {
	return c.dfa.isAccept.Test(uint(c.state))
}

// State returns the state id the cursor stands on.
func (c *dfaCursor) State() int {
	return c.dfa.ids[c.state]
}

func (c *dfaCursor) Hash() uint64 {
	return mix32(c.state)
}

func (c *dfaCursor) Equals(other Hashable) bool {
	o, ok := other.(*dfaCursor)
	return ok && c.dfa == o.dfa && c.state == o.state
}
