package fa

import "github.com/bits-and-blooms/bitset"

// IsEmpty
// Returns true if the given DFA accepts no strings.
func IsEmpty(a *DFA) bool {
	if a.NumStates() == 0 || a.start < 0 {
		// Common case: nothing to walk
		return true
	}
	if a.isAccept.Test(uint(a.start)) {
		// Accepts the empty string
		return false
	}

	workList := make([]int, 0)
	seen := bitset.New(uint(a.NumStates()))
	workList = append(workList, a.start)
	seen.Set(uint(a.start))

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if a.isAccept.Test(uint(state)) {
			return false
		}
		for k := 0; k < a.alphabet.Len(); k++ {
			t := a.step(state, k)
			if t >= 0 && !seen.Test(uint(t)) {
				workList = append(workList, t)
				seen.Set(uint(t))
			}
		}
	}
	return true
}

// IsTotal
// Returns true if the given DFA accepts every string over its alphabet.
func IsTotal(a *DFA) (bool, error) {
	if a.start < 0 {
		return false, nil
	}
	m, err := a.Minimized()
	if err != nil {
		return false, err
	}
	return m.NumStates() == 1 && m.isAccept.Test(0), nil
}

// Convert runs the whole pipeline: subset construction, renumbering,
// completion and minimization.
func Convert(n *NFA) (*DFA, error) {
	d, err := FromNFA(n)
	if err != nil {
		return nil, err
	}
	full, err := d.Renumbered().CompletedToFull()
	if err != nil {
		return nil, err
	}
	return full.Minimized()
}

// Words returns every word of length 1..maxLen over alphabet, shorter words
// first and each length in alphabet order.
func Words(alphabet Alphabet, maxLen int) [][]Symbol {
	words := make([][]Symbol, 0)
	layer := [][]Symbol{{}}
	for n := 1; n <= maxLen; n++ {
		next := make([][]Symbol, 0, len(layer)*alphabet.Len())
		for _, prefix := range layer {
			for _, s := range alphabet.symbols {
				word := make([]Symbol, n)
				copy(word, prefix)
				word[n-1] = s
				next = append(next, word)
			}
		}
		words = append(words, next...)
		layer = next
	}
	return words
}

// CompareUpTo checks that a and b agree on every word of length 1..maxLen and
// returns the first word they disagree on.
func CompareUpTo(a, b Automaton, maxLen int) ([]Symbol, error) {
	if !a.Alphabet().Equal(b.Alphabet()) {
		return nil, ErrIncompatibleAlphabets
	}
	for _, word := range Words(a.Alphabet(), maxLen) {
		x, err := a.Accept(word)
		if err != nil {
			return word, err
		}
		y, err := b.Accept(word)
		if err != nil {
			return word, err
		}
		if x != y {
			return word, ErrLanguagesDiffer
		}
	}
	return nil, nil
}
