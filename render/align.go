package render

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// alignRows pads every column to its widest cell and joins each row without
// separators.
func alignRows(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	width := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			width[i] = max(width[i], utf8.RuneCountInString(cell))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var sb strings.Builder
		for i, cell := range row {
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", width[i]-utf8.RuneCountInString(cell)))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// groupEdges merges the edges leaving one state by target, keeping targets in
// first-seen order and sorting the labels of each.
func groupEdges(edges []edge) []edgeGroup {
	groups := make([]edgeGroup, 0)
	index := make(map[int]int)
	for _, e := range edges {
		i, ok := index[e.to]
		if !ok {
			i = len(groups)
			index[e.to] = i
			groups = append(groups, edgeGroup{to: e.to})
		}
		groups[i].labels = append(groups[i].labels, e.label)
	}
	for i := range groups {
		slices.Sort(groups[i].labels)
	}
	return groups
}

type edge struct {
	to    int
	label string
}

type edgeGroup struct {
	to     int
	labels []string
}
