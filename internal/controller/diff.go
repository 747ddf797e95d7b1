package controller

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

const planDiffContext = 1

// RenderPlanDiff shows the files touched by a plan before and after it is executed, as a
// unified diff. Children leave the archive; their destination and the link appear under unstage.
func RenderPlanDiff(edges []m.DuplicateEdge) (string, error) {
	if len(edges) == 0 {
		return "", nil
	}

	before := make(map[string]bool)
	after := make(map[string]bool)

	for _, edge := range edges {
		before[string(edge.Parent)] = true
		before[string(edge.Child)] = true

		after[string(edge.Parent)] = true
		after[string(edge.DestinationFile)] = true
		after[string(edge.Link.Name)+" -> "+string(edge.Link.Target)] = true
	}

	diff := difflib.UnifiedDiff{
		A:        sortedLines(before),
		B:        sortedLines(after),
		FromFile: "before",
		ToFile:   "after",
		Context:  planDiffContext,
	}

	return difflib.GetUnifiedDiffString(diff)
}

func sortedLines(set map[string]bool) []string {
	lines := make([]string, 0, len(set))
	for line := range set {
		lines = append(lines, line)
	}

	sort.Strings(lines)

	return difflib.SplitLines(strings.Join(lines, "\n"))
}
