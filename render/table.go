package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/geange/fa"
)

// Table writes one "from----symbol--->to" line per transition followed by the
// start and terminal states.
func Table(w io.Writer, a fa.Automaton) error {
	for _, state := range a.States() {
		for _, e := range a.EdgesFrom(state) {
			if _, err := fmt.Fprintf(w, "%d----%v--->%d\n", state, e.Symbol, e.To); err != nil {
				return err
			}
		}
	}

	start := "none"
	if s, ok := a.StartState(); ok {
		start = strconv.Itoa(s)
	}
	terminals := make([]string, 0)
	for _, s := range a.TerminalStates() {
		terminals = append(terminals, strconv.Itoa(s))
	}
	_, err := fmt.Fprintf(w, "start_state: %s\nterminal_states: {%s}\n", start, strings.Join(terminals, ", "))
	return err
}
