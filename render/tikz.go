package render

import (
	"fmt"
	"strings"

	"github.com/geange/fa"
)

const (
	tikzHeader = "\\begin{tikzpicture}[shorten >=1pt,node distance=2cm,on grid,auto]\n" +
		"  \\tikzstyle{every state}=[fill={rgb:black,1;white,10}]\n"
	tikzFooter = " ;\n\\end{tikzpicture}\\\\"
)

// TikZ returns a tikzpicture drawing a. States are laid out in breadth-first
// layers from the start state: each layer is placed below the previous one,
// and the states of a layer left to right. States unreachable from the start
// state are not drawn.
func TikZ(a fa.Automaton) string {
	return tikzHeader + TikZNodes(a) + "\n\\path[->]\n" + TikZEdges(a) + tikzFooter
}

// layers groups the states reachable from the start state by BFS depth.
func layers(a fa.Automaton) [][]int {
	start, ok := a.StartState()
	if !ok {
		return nil
	}
	depth := map[int]int{start: 0}
	result := [][]int{{start}}
	queue := []int{start}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		for _, e := range a.EdgesFrom(state) {
			if _, seen := depth[e.To]; seen {
				continue
			}
			d := depth[state] + 1
			depth[e.To] = d
			if d == len(result) {
				result = append(result, nil)
			}
			result[d] = append(result[d], e.To)
			queue = append(queue, e.To)
		}
	}
	return result
}

func qName(state int) string {
	return fmt.Sprintf("q_{%d}", state)
}

// TikZNodes returns the aligned \node lines.
func TikZNodes(a fa.Automaton) string {
	start, _ := a.StartState()
	rows := make([][]string, 0)
	ls := layers(a)
	for depth, layer := range ls {
		for i, state := range layer {
			kind := "state"
			if depth == 0 && i == 0 && state == start {
				kind += ",initial"
			}
			if a.IsTerminal(state) {
				kind += ",accepting"
			}

			position := ""
			switch {
			case i > 0:
				position = "right of=" + qName(layer[i-1])
			case depth > 0:
				position = "below of=" + qName(ls[depth-1][0])
			}
			rows = append(rows, []string{
				"\\node[" + kind + "]",
				"(" + qName(state) + ")",
				"[" + position + "]",
				"{$" + qName(state) + "$;};",
			})
		}
	}
	return alignRows(rows)
}

// TikZEdges returns the aligned edge lines of the \path command. Parallel
// edges are merged into one with a comma separated label.
func TikZEdges(a fa.Automaton) string {
	rows := make([][]string, 0)
	for _, state := range a.States() {
		edges := make([]edge, 0)
		for _, e := range a.EdgesFrom(state) {
			edges = append(edges, edge{to: e.To, label: e.Symbol.String()})
		}
		for _, g := range groupEdges(edges) {
			bend := "[bend left]"
			if g.to == state {
				bend = "[loop above]"
			}
			rows = append(rows, []string{
				"(" + qName(state) + ")",
				"edge",
				bend,
				"node",
				"{" + strings.Join(g.labels, ",") + "}",
				"(" + qName(g.to) + ")",
			})
		}
	}
	return alignRows(rows)
}
