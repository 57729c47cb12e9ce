package fa

import "errors"

var (
	// ErrInvalidSymbol is returned for a symbol outside the alphabet, or for
	// Epsilon where only real symbols are allowed.
	ErrInvalidSymbol = errors.New("fa: invalid symbol")

	// ErrIncompatibleAlphabets is returned when two automata compared with
	// each other do not share the same alphabet.
	ErrIncompatibleAlphabets = errors.New("fa: incompatible alphabets")

	// ErrMissingTransition is returned when a cursor is driven along a
	// (state, symbol) pair that has no transition.
	ErrMissingTransition = errors.New("fa: missing transition")

	// ErrCompletionFailure reports that a completed automaton is still not full.
	ErrCompletionFailure = errors.New("fa: completion failed")

	// ErrNoStartState is returned when an automaton without a start state is
	// walked, converted or compared.
	ErrNoStartState = errors.New("fa: start state is not set")

	// ErrNondeterministic is returned when a DFA transition would give a
	// (state, symbol) pair a second target.
	ErrNondeterministic = errors.New("fa: transition already defined")

	// ErrLanguagesDiffer is returned by CompareUpTo with the first word the two
	// automata disagree on.
	ErrLanguagesDiffer = errors.New("fa: languages differ")
)
