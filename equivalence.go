package fa

import (
	"fmt"
	"slices"
)

var _ Cursor = &pairCursor{}

// pairCursor walks two automata in lockstep. It is terminal when exactly one
// side accepts, i.e. at a point that tells the two languages apart.
type pairCursor struct {
	first, second Cursor
}

func (c *pairCursor) Step(s Symbol) (Cursor, error) {
	first, err := c.first.Step(s)
	if err != nil {
		return nil, err
	}
	second, err := c.second.Step(s)
	if err != nil {
		return nil, err
	}
	return &pairCursor{first: first, second: second}, nil
}

func (c *pairCursor) Terminal() bool {
	return c.first.Terminal() != c.second.Terminal()
}

func (c *pairCursor) Hash() uint64 {
	return mixPair(c.first.Hash(), c.second.Hash())
}

func (c *pairCursor) Equals(other Hashable) bool {
	o, ok := other.(*pairCursor)
	return ok && c.first.Equals(o.first) && c.second.Equals(o.second)
}

// FindNotEqWord searches for a word accepted by exactly one of d and other.
// found is false when the languages are equal. When the empty word already
// separates them the witness is the single symbol Epsilon (see TrimEpsilon).
// Both automata are minimized first and then explored depth-first in
// alphabet order over their product.
func (d *DFA) FindNotEqWord(other *DFA) (word []Symbol, found bool, err error) {
	if !d.alphabet.Equal(other.alphabet) {
		return nil, false, fmt.Errorf("%q vs %q: %w", d.alphabet.String(), other.alphabet.String(), ErrIncompatibleAlphabets)
	}

	a, err := d.Minimized()
	if err != nil {
		return nil, false, err
	}
	b, err := other.Minimized()
	if err != nil {
		return nil, false, err
	}
	beginA, err := a.Begin()
	if err != nil {
		return nil, false, err
	}
	beginB, err := b.Begin()
	if err != nil {
		return nil, false, err
	}

	start := &pairCursor{first: beginA, second: beginB}
	if start.Terminal() {
		return []Symbol{Epsilon}, true, nil
	}

	type frame struct {
		cursor Cursor
		next   int
	}
	symbols := d.alphabet.symbols
	visited := NewHashMap[struct{}](WithCapacity(a.NumStates() * b.NumStates()))
	visited.Set(start, struct{}{})
	stack := []frame{{cursor: start}}
	path := make([]Symbol, 0)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(symbols) {
			stack = stack[:len(stack)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}
		s := symbols[top.next]
		top.next++

		next, err := top.cursor.Step(s)
		if err != nil {
			return nil, false, err
		}
		if visited.Contains(next) {
			continue
		}
		visited.Set(next, struct{}{})
		path = append(path, s)
		if next.Terminal() {
			return slices.Clone(path), true, nil
		}
		stack = append(stack, frame{cursor: next})
	}
	return nil, false, nil
}

// IsEqualTo reports whether d and other accept the same language.
func (d *DFA) IsEqualTo(other *DFA) (bool, error) {
	_, found, err := d.FindNotEqWord(other)
	if err != nil {
		return false, err
	}
	return !found, nil
}
