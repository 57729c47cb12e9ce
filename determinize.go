package fa

import "fmt"

// FromNFA converts n into an equivalent DFA by subset construction. Each DFA
// state stands for one epsilon-closed set of NFA states; states are numbered
// in breadth-first discovery order, so the start state is 0. Only reachable
// subsets are built, and every one of them gets a transition on every symbol.
func FromNFA(n *NFA) (*DFA, error) {
	d, _, err := FromNFAWithSubsets(n)
	return d, err
}

// FromNFAWithSubsets is FromNFA that also returns, for every DFA state id, the
// NFA states it stands for.
func FromNFAWithSubsets(n *NFA) (*DFA, [][]int, error) {
	begin, err := n.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("subset construction: %w", err)
	}

	d := NewDFA(n.Alphabet())
	symbols := n.alphabet.symbols

	ids := NewHashMap[int](WithCapacity(16))

	workList := []*nfaCursor{begin.(*nfaCursor)}
	ids.Set(begin, 0)
	d.SetStartState(0)

	for len(workList) > 0 {
		cur := workList[0]
		workList = workList[1:]
		id, _ := ids.Get(cur)

		if cur.Terminal() {
			d.AddTerminalState(id)
		}
		for _, s := range symbols {
			next, err := cur.Step(s)
			if err != nil {
				return nil, nil, err
			}
			nextID, ok := ids.Get(next)
			if !ok {
				nextID = ids.Size()
				ids.Set(next, nextID)
				workList = append(workList, next.(*nfaCursor))
			}
			if err := d.AddTransition(id, nextID, s); err != nil {
				return nil, nil, err
			}
		}
	}

	subsets := make([][]int, ids.Size())
	for key, id := range ids.Iterator() {
		subsets[id] = key.(*nfaCursor).States()
	}
	return d, subsets, nil
}
