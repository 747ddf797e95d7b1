package domain

import (
	"sort"
	"unicode/utf8"

	m "shepherd.dev/pkg/shepherd/internal/model"
)

// Selector elects the parent of a duplicate cluster.
type Selector interface {
	Select(cluster m.DuplicateCluster) (parent m.Path, children []m.Path, err error)
}

type selector struct {
	sortHierarchy bool
}

// NewSelector returns a Selector. With sortHierarchy disabled the first member in cluster
// order becomes the parent; that order depends on how the cluster was built.
func NewSelector(sortHierarchy bool) Selector {
	return &selector{sortHierarchy: sortHierarchy}
}

// Select applies the tie-break policy: the strictly shortest path, counted in characters,
// wins. When the shortest length is shared, the whole cluster is sorted lexically and
// the first path wins. Children are returned shortest first, then lexically.
//
// A symbolic link is elected only when every member is one; otherwise moving the real
// file away would leave the link dangling.
func (s *selector) Select(cluster m.DuplicateCluster) (m.Path, []m.Path, error) {
	if len(cluster.Members) == 0 {
		return "", nil, m.InvariantError("select parent", "", m.ErrEmptyCluster)
	}

	candidates := make([]m.Path, 0, len(cluster.Members))
	for _, member := range cluster.Members {
		if !cluster.IsLink(member) {
			candidates = append(candidates, member)
		}
	}

	if len(candidates) == 0 {
		candidates = append(candidates, cluster.Members...)
	}

	parent := candidates[0]
	if s.sortHierarchy {
		parent = electParent(candidates)
	}

	children := make([]m.Path, 0, len(cluster.Members)-1)
	for _, member := range cluster.Members {
		if member != parent {
			children = append(children, member)
		}
	}

	if !s.sortHierarchy {
		return parent, children, nil
	}

	sort.Slice(children, func(i, j int) bool {
		li, lj := pathLength(children[i]), pathLength(children[j])
		if li != lj {
			return li < lj
		}

		return children[i] < children[j]
	})

	return parent, children, nil
}

func electParent(members []m.Path) m.Path {
	shortest := members[0]
	minLength := pathLength(shortest)
	tied := false

	for _, member := range members[1:] {
		length := pathLength(member)

		switch {
		case length < minLength:
			shortest, minLength, tied = member, length, false
		case length == minLength:
			tied = true
		}
	}

	if !tied {
		return shortest
	}

	sorted := make([]m.Path, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return sorted[0]
}

func pathLength(p m.Path) int {
	return utf8.RuneCountInString(string(p))
}
