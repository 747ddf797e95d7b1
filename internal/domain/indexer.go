package domain

import (
	"fmt"
	"sort"

	m "shepherd.dev/pkg/shepherd/internal/model"
)

// Indexer groups files by digest.
type Indexer interface {
	Index(hashes map[m.Path]string) (map[m.Path]m.DuplicateCluster, error)
}

type indexer struct{}

// NewIndexer returns an Indexer.
func NewIndexer() Indexer {
	return &indexer{}
}

// Index returns every digest shared by two files or more, keyed by the lexically smallest member.
// The key is a representative only; the parent is elected by a Selector.
func (ix *indexer) Index(hashes map[m.Path]string) (map[m.Path]m.DuplicateCluster, error) {
	paths := make([]m.Path, 0, len(hashes))
	for path := range hashes {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	byDigest := make(map[string][]m.Path)
	for _, path := range paths {
		digest := hashes[path]
		byDigest[digest] = append(byDigest[digest], path)
	}

	clusters := make(map[m.Path]m.DuplicateCluster)

	for digest, members := range byDigest {
		if len(members) < 2 {
			continue
		}

		clusters[members[0]] = m.DuplicateCluster{Hash: digest, Members: members}
	}

	if _, err := Partition(hashes, clusters); err != nil {
		return nil, err
	}

	return clusters, nil
}

// Partition checks that every hashed file is in exactly one cluster or in the unique set,
// and returns the unique set in lexical order.
func Partition(hashes map[m.Path]string, clusters map[m.Path]m.DuplicateCluster) ([]m.Path, error) {
	seen := make(map[m.Path]m.Path, len(hashes))

	for key, cluster := range clusters {
		if len(cluster.Members) == 0 {
			return nil, m.InvariantError("partition", key, m.ErrEmptyCluster)
		}

		for _, member := range cluster.Members {
			if other, ok := seen[member]; ok {
				return nil, m.InvariantError("partition", member,
					fmt.Errorf("%w: %s and %s", m.ErrFileInTwoClusters, other, key))
			}

			digest, ok := hashes[member]
			if !ok || digest != cluster.Hash {
				return nil, m.InvariantError("partition", member,
					fmt.Errorf("cluster %s member does not carry digest %s", key, cluster.Hash))
			}

			seen[member] = key
		}
	}

	unique := make([]m.Path, 0, len(hashes)-len(seen))

	for path := range hashes {
		if _, ok := seen[path]; !ok {
			unique = append(unique, path)
		}
	}

	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	return unique, nil
}
