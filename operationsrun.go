package fa

// Run reports whether a accepts s, treating any error as rejection.
func Run(a Automaton, s string) bool {
	ok, err := a.Accept(Word(s))
	return err == nil && ok
}
