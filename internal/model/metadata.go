package model

import (
	"fmt"
	"sort"
)

// CollectionMetadata is the per-collection aggregate every pipeline stage enriches in place.
// It is owned by a single orchestrator and is not safe for concurrent mutation.
type CollectionMetadata struct {
	Collection Collection                       `yaml:"collection"`
	Files      map[Path]*FileRecord             `yaml:"files"`
	Duplicates map[Path]map[Path]*DuplicateEdge `yaml:"duplicates,omitempty"`
}

// NewCollectionMetadata returns empty metadata for the given collection.
func NewCollectionMetadata(c Collection) *CollectionMetadata {
	return &CollectionMetadata{
		Collection: c,
		Files:      make(map[Path]*FileRecord),
		Duplicates: make(map[Path]map[Path]*DuplicateEdge),
	}
}

// AddFiles stores scanned records, replacing any previous record for the same path.
func (cm *CollectionMetadata) AddFiles(files map[Path]FileRecord) {
	for path, record := range files {
		rec := record
		cm.Files[path] = &rec
	}
}

// SetHash records the digest of a known file.
func (cm *CollectionMetadata) SetHash(path Path, hash string) error {
	rec, ok := cm.Files[path]
	if !ok {
		return InvariantError("set hash", path, fmt.Errorf("file not in collection metadata"))
	}

	rec.Hash = hash

	return nil
}

// Hashes returns path to digest for every hashed file.
func (cm *CollectionMetadata) Hashes() map[Path]string {
	hashes := make(map[Path]string, len(cm.Files))

	for path, rec := range cm.Files {
		if rec.Hashed() {
			hashes[path] = rec.Hash
		}
	}

	return hashes
}

// HashSet returns digest to one representative path, the smallest path for each digest.
func (cm *CollectionMetadata) HashSet() map[string]Path {
	set := make(map[string]Path, len(cm.Files))

	for path, rec := range cm.Files {
		if !rec.Hashed() {
			continue
		}

		if current, ok := set[rec.Hash]; !ok || path < current {
			set[rec.Hash] = path
		}
	}

	return set
}

// SortedPaths returns every file path in lexical order.
func (cm *CollectionMetadata) SortedPaths() []Path {
	paths := make([]Path, 0, len(cm.Files))
	for path := range cm.Files {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

// AddEdge registers a parent/child relocation unit.
func (cm *CollectionMetadata) AddEdge(edge DuplicateEdge) {
	children, ok := cm.Duplicates[edge.Parent]
	if !ok {
		children = make(map[Path]*DuplicateEdge)
		cm.Duplicates[edge.Parent] = children
	}

	e := edge
	children[edge.Child] = &e
}

// UpdateEdge replaces a registered edge, keyed by its parent and child.
func (cm *CollectionMetadata) UpdateEdge(edge DuplicateEdge) error {
	children, ok := cm.Duplicates[edge.Parent]
	if !ok {
		return InvariantError("update edge", edge.Parent, fmt.Errorf("unknown parent"))
	}

	if _, ok := children[edge.Child]; !ok {
		return InvariantError("update edge", edge.Child, fmt.Errorf("unknown child of %s", edge.Parent))
	}

	e := edge
	children[edge.Child] = &e

	return nil
}

// RemoveEdge drops an edge once it has been executed. Parents without children are dropped too.
func (cm *CollectionMetadata) RemoveEdge(edge DuplicateEdge) {
	children, ok := cm.Duplicates[edge.Parent]
	if !ok {
		return
	}

	delete(children, edge.Child)

	if len(children) == 0 {
		delete(cm.Duplicates, edge.Parent)
	}
}

// Edges returns a sorted copy of every registered edge.
func (cm *CollectionMetadata) Edges() []DuplicateEdge {
	edges := make([]DuplicateEdge, 0, cm.ChildCount())

	for _, children := range cm.Duplicates {
		for _, edge := range children {
			edges = append(edges, *edge)
		}
	}

	SortEdges(edges)

	return edges
}

// ParentCount is the number of files that keep at least one duplicate.
func (cm *CollectionMetadata) ParentCount() int {
	return len(cm.Duplicates)
}

// ChildCount is the number of duplicates scheduled for relocation.
func (cm *CollectionMetadata) ChildCount() int {
	count := 0
	for _, children := range cm.Duplicates {
		count += len(children)
	}

	return count
}

// ReclaimableBytes is the total size of every child.
func (cm *CollectionMetadata) ReclaimableBytes() uint64 {
	var total uint64

	for _, children := range cm.Duplicates {
		for _, edge := range children {
			total += edge.ChildSize
		}
	}

	return total
}

// Valid reports whether the archive holds no duplicates.
func (cm *CollectionMetadata) Valid() bool {
	return cm.ChildCount() == 0
}
