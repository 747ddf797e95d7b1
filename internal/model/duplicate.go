package model

import (
	"sort"
)

// DuplicateCluster is the set of files sharing one digest. It always has at least two members
// once built by the indexer.
type DuplicateCluster struct {
	Hash    string
	Members []Path

	// Links lists the members that are symbolic links.
	Links []Path
}

// IsLink reports whether p is a symbolic link member.
func (c DuplicateCluster) IsLink(p Path) bool {
	for _, link := range c.Links {
		if link == p {
			return true
		}
	}

	return false
}

// LinkCommand describes the symbolic link created next to a relocated duplicate.
type LinkCommand struct {
	Target Path `yaml:"target"`
	Name   Path `yaml:"name"`
}

// Args returns the equivalent command line as an argument vector.
func (l LinkCommand) Args() []string {
	return []string{"ln", "-s", string(l.Target), string(l.Name)}
}

// IsZero reports whether the link has not been planned yet.
func (l LinkCommand) IsZero() bool {
	return l.Target == "" && l.Name == ""
}

// DuplicateEdge is one parent/child relocation unit.
type DuplicateEdge struct {
	Parent     Path   `yaml:"parent"`
	ParentHash string `yaml:"parent_hash"`
	ParentSize uint64 `yaml:"parent_size"`
	Child      Path   `yaml:"child"`
	ChildHash  string `yaml:"child_hash"`
	ChildSize  uint64 `yaml:"child_size"`

	// Filled in by the planner.
	DestinationFolder Path        `yaml:"destination_folder,omitempty"`
	DestinationFile   Path        `yaml:"destination_file,omitempty"`
	Link              LinkCommand `yaml:"link,omitempty"`
}

// Planned reports whether destination paths and the link have been computed.
func (e DuplicateEdge) Planned() bool {
	return e.DestinationFile != "" && !e.Link.IsZero()
}

// SortEdges orders edges by parent then child path.
func SortEdges(edges []DuplicateEdge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Parent != edges[j].Parent {
			return edges[i].Parent < edges[j].Parent
		}

		return edges[i].Child < edges[j].Child
	})
}
