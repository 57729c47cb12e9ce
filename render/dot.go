package render

import (
	"fmt"
	"strings"

	"github.com/geange/fa"
)

// Dot returns a Graphviz digraph of a. Accepting states are double circles
// and the start state is marked by an arrow from an invisible point.
func Dot(a fa.Automaton) string {
	var sb strings.Builder

	sb.WriteString("digraph automaton {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")

	if start, ok := a.StartState(); ok {
		sb.WriteString("  start [shape=point];\n")
		sb.WriteString(fmt.Sprintf("  start -> \"%d\";\n", start))
	}
	for _, state := range a.States() {
		if a.IsTerminal(state) {
			sb.WriteString(fmt.Sprintf("  \"%d\" [shape=doublecircle];\n", state))
		} else {
			sb.WriteString(fmt.Sprintf("  \"%d\";\n", state))
		}
	}

	for _, state := range a.States() {
		edges := make([]edge, 0)
		for _, e := range a.EdgesFrom(state) {
			edges = append(edges, edge{to: e.To, label: e.Symbol.String()})
		}
		for _, g := range groupEdges(edges) {
			sb.WriteString(fmt.Sprintf("  \"%d\" -> \"%d\" [label=\"%s\"];\n", state, g.to, strings.Join(g.labels, ",")))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}
