package fa

// Automata builds small DFAs over a given alphabet.
type Automata struct {
}

var defaultAutomata = NewAutomata()

func NewAutomata() *Automata {
	return &Automata{}
}

// MakeEmpty
// Returns a new full DFA with the empty language.
func (*Automata) MakeEmpty(alphabet Alphabet) *DFA {
	a := NewDFA(alphabet)
	a.SetStartState(0)
	for _, s := range alphabet.symbols {
		_ = a.AddTransition(0, 0, s)
	}
	return a
}

// MakeEmptyString
// Returns a new full DFA that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet Alphabet) *DFA {
	a := NewDFA(alphabet)
	a.SetStartState(0)
	a.AddTerminalState(0)
	a.AddState(1)
	for _, s := range alphabet.symbols {
		_ = a.AddTransition(0, 1, s)
		_ = a.AddTransition(1, 1, s)
	}
	return a
}

// MakeAnyString
// Returns a new full DFA that accepts all strings.
func (*Automata) MakeAnyString(alphabet Alphabet) *DFA {
	a := NewDFA(alphabet)
	a.SetStartState(0)
	a.AddTerminalState(0)
	for _, s := range alphabet.symbols {
		_ = a.AddTransition(0, 0, s)
	}
	return a
}

// MakeString
// Returns a new (partial) DFA that accepts only word.
func (*Automata) MakeString(alphabet Alphabet, word []Symbol) (*DFA, error) {
	a := NewDFA(alphabet)
	a.SetStartState(0)
	for i, s := range word {
		if err := a.AddTransition(i, i+1, s); err != nil {
			return nil, err
		}
	}
	a.AddTerminalState(len(word))
	return a, nil
}
