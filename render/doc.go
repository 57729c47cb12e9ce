// Package render prints automata for people and for other tools: a plain
// transition listing, a TikZ picture for LaTeX and a Graphviz digraph. It only
// reads the automaton through fa.Automaton and never modifies it.
package render
