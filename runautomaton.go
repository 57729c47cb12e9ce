package fa

// RunAutomaton is a DFA frozen into a flat transition table for matching many
// inputs. State 0 is the initial state.
type RunAutomaton struct {
	alphabet Alphabet
	size     int
	// transitions[state*size+k] is the target on the k-th symbol, or -1
	transitions []int
	accept      []bool
}

// NewRunAutomaton compiles d. d may be partial; undefined transitions reject.
func NewRunAutomaton(d *DFA) (*RunAutomaton, error) {
	if d.start < 0 {
		return nil, ErrNoStartState
	}
	r := d.Renumbered()
	size := r.alphabet.Len()
	numStates := r.NumStates()

	ra := &RunAutomaton{
		alphabet:    r.alphabet,
		size:        size,
		transitions: make([]int, numStates*size),
		accept:      make([]bool, numStates),
	}
	for state := 0; state < numStates; state++ {
		ra.accept[state] = r.isAccept.Test(uint(state))
		for k := 0; k < size; k++ {
			ra.transitions[state*size+k] = r.step(state, k)
		}
	}
	return ra, nil
}

func (r *RunAutomaton) NumStates() int {
	return len(r.accept)
}

func (r *RunAutomaton) IsAccept(state int) bool {
	return r.accept[state]
}

// Step returns the state reached from state on s, or -1.
func (r *RunAutomaton) Step(state int, s Symbol) int {
	k := r.alphabet.Index(s)
	if k < 0 {
		return -1
	}
	return r.transitions[state*r.size+k]
}

// RunWord returns true if word is accepted.
func (r *RunAutomaton) RunWord(word []Symbol) bool {
	p := 0
	for _, s := range word {
		p = r.Step(p, s)
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}

// Run returns true if s is accepted.
func (r *RunAutomaton) Run(s string) bool {
	return r.RunWord(Word(s))
}
