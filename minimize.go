package fa

import "github.com/bits-and-blooms/bitset"

// Minimized returns the minimal DFA for the language of d using Myhill-Nerode
// table filling. A DFA that is not full is completed first so that the sink
// takes part in distinguishing states. Unreachable states are dropped; the
// result states are 0..n-1 with the start state 0.
func (d *DFA) Minimized() (*DFA, error) {
	full := d
	if !d.IsFull() {
		var err error
		if full, err = d.CompletedToFull(); err != nil {
			return nil, err
		}
	}

	unequal := full.distinguishable()
	component := full.components(unequal)

	res := NewDFA(full.alphabet)
	reachable := full.reachable()
	for i, ok := reachable.NextSet(0); ok; i, ok = reachable.NextSet(i + 1) {
		from := component[i]
		res.AddState(from)
		for k, s := range full.alphabet.symbols {
			t := full.step(int(i), k)
			if t < 0 {
				continue
			}
			if err := res.AddTransition(from, component[t], s); err != nil {
				return nil, err
			}
		}
		if full.isAccept.Test(i) {
			res.AddTerminalState(from)
		}
	}
	if full.start >= 0 {
		res.SetStartState(component[full.start])
	}
	return res.Renumbered(), nil
}

// distinguishTable is a symmetric relation over dense states stored as an
// n*n bit matrix.
type distinguishTable struct {
	n    int
	bits *bitset.BitSet
}

func (t *distinguishTable) marked(i, j int) bool {
	return t.bits.Test(uint(i*t.n + j))
}

func (t *distinguishTable) mark(i, j int) {
	t.bits.Set(uint(i*t.n + j))
	t.bits.Set(uint(j*t.n + i))
}

// predecessors returns pred[k][t]: the states reaching t on the k-th symbol.
func (d *DFA) predecessors() [][][]int {
	n := d.NumStates()
	pred := make([][][]int, d.alphabet.Len())
	for k := range pred {
		pred[k] = make([][]int, n)
	}
	for i := 0; i < n; i++ {
		for k := range pred {
			if t := d.step(i, k); t >= 0 {
				pred[k][t] = append(pred[k][t], i)
			}
		}
	}
	return pred
}

// distinguishable marks every pair of states told apart by some word. Pairs
// that differ in acceptance are the seeds; marks propagate backwards along
// transitions until no new pair is found.
func (d *DFA) distinguishable() *distinguishTable {
	n := d.NumStates()
	table := &distinguishTable{n: n, bits: bitset.New(uint(n * n))}
	pred := d.predecessors()

	type pair struct{ u, v int }
	queue := make([]pair, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d.isAccept.Test(uint(i)) != d.isAccept.Test(uint(j)) {
				table.mark(i, j)
				queue = append(queue, pair{i, j})
			}
		}
	}

	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for k := range pred {
			for _, r := range pred[k][p.u] {
				for _, s := range pred[k][p.v] {
					if !table.marked(r, s) {
						table.mark(r, s)
						queue = append(queue, pair{r, s})
					}
				}
			}
		}
	}
	return table
}

// components assigns one id per equivalence class of reachable states,
// starting with the class of the start state. States that are unreachable and
// equivalent to no reachable state keep -1.
func (d *DFA) components(unequal *distinguishTable) []int {
	n := d.NumStates()
	component := make([]int, n)
	for i := range component {
		component[i] = -1
	}

	reachable := d.reachable()
	order := make([]int, 0, reachable.Count())
	if d.start >= 0 {
		order = append(order, d.start)
	}
	for i, ok := reachable.NextSet(0); ok; i, ok = reachable.NextSet(i + 1) {
		if int(i) != d.start {
			order = append(order, int(i))
		}
	}

	cnt := 0
	for _, state := range order {
		if component[state] >= 0 {
			continue
		}
		component[state] = cnt
		for other := 0; other < n; other++ {
			if !unequal.marked(state, other) {
				component[other] = cnt
			}
		}
		cnt++
	}
	return component
}
