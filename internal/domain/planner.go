package domain

import (
	"path/filepath"
	"strings"

	m "shepherd.dev/pkg/shepherd/internal/model"
)

// Planner computes where a duplicate goes and the link left next to it. It does no I/O.
type Planner interface {
	Plan(edge m.DuplicateEdge, unstageRoot m.Path) m.DuplicateEdge
}

type planner struct{}

// NewPlanner returns a Planner.
func NewPlanner() Planner {
	return &planner{}
}

// Plan fills the destination and link fields of edge:
//
//	folder: <unstage>/<flatten(parent)>
//	file:   <unstage>/<flatten(parent)>/<flatten(child)>
//	link:   <unstage>/<flatten(parent)>/<flatten(parent)> -> parent
//
// Two parents that flatten to the same name share a folder.
func (p *planner) Plan(edge m.DuplicateEdge, unstageRoot m.Path) m.DuplicateEdge {
	folder := filepath.Join(string(unstageRoot), Flatten(edge.Parent))

	edge.DestinationFolder = m.Path(folder)
	edge.DestinationFile = m.Path(filepath.Join(folder, Flatten(edge.Child)))
	edge.Link = m.LinkCommand{
		Target: edge.Parent,
		Name:   m.Path(filepath.Join(folder, Flatten(edge.Parent))),
	}

	return edge
}

// Flatten turns a path into a single file name by dropping the leading separator and
// replacing the remaining separators with underscores.
func Flatten(p m.Path) string {
	trimmed := strings.TrimPrefix(filepath.ToSlash(string(p)), "/")

	return strings.ReplaceAll(trimmed, "/", "_")
}
