package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

func TestSelector_Select(t *testing.T) {
	tests := []struct {
		name         string
		members      []m.Path
		wantParent   m.Path
		wantChildren []m.Path
	}{
		{
			name:         "strictly shortest path wins",
			members:      []m.Path{"/a/bbbb", "/a/bbbb2", "/x/b"},
			wantParent:   "/x/b",
			wantChildren: []m.Path{"/a/bbbb", "/a/bbbb2"},
		},
		{
			name:         "tie is broken lexically",
			members:      []m.Path{"/x/cc", "/a/bb"},
			wantParent:   "/a/bb",
			wantChildren: []m.Path{"/x/cc"},
		},
		{
			name:         "tie sorts the whole cluster",
			members:      []m.Path{"/z/c", "/a/bb", "/y/a"},
			wantParent:   "/a/bb",
			wantChildren: []m.Path{"/y/a", "/z/c"},
		},
		{
			name:         "length counts characters",
			members:      []m.Path{"/ab", "/é"},
			wantParent:   "/é",
			wantChildren: []m.Path{"/ab"},
		},
	}

	s := NewSelector(true)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent, children, err := s.Select(m.DuplicateCluster{Hash: "h", Members: tt.members})
			require.NoError(t, err)
			assert.Equal(t, tt.wantParent, parent)
			assert.Equal(t, tt.wantChildren, children)
		})
	}
}

func TestSelector_OrderIndependent(t *testing.T) {
	s := NewSelector(true)
	orders := [][]m.Path{
		{"/b/x", "/a/x", "/c/xx"},
		{"/c/xx", "/b/x", "/a/x"},
		{"/a/x", "/c/xx", "/b/x"},
	}

	for _, members := range orders {
		parent, children, err := s.Select(m.DuplicateCluster{Hash: "h", Members: members})
		require.NoError(t, err)
		assert.Equal(t, m.Path("/a/x"), parent)
		assert.Equal(t, []m.Path{"/b/x", "/c/xx"}, children)
	}
}

func TestSelector_Unsorted(t *testing.T) {
	members := []m.Path{"/long/path", "/a"}

	parent, children, err := NewSelector(false).Select(m.DuplicateCluster{Hash: "h", Members: members})
	require.NoError(t, err)
	assert.Equal(t, m.Path("/long/path"), parent)
	assert.Equal(t, []m.Path{"/a"}, children)

	// The cluster itself is left untouched.
	assert.Equal(t, []m.Path{"/long/path", "/a"}, members)
}

func TestSelector_LinkIsNeverParentOfItsTarget(t *testing.T) {
	cluster := m.DuplicateCluster{
		Hash:    "h",
		Members: []m.Path{"/archive/l", "/archive/longname.txt", "/archive/other.txt"},
		Links:   []m.Path{"/archive/l"},
	}

	for _, sorted := range []bool{true, false} {
		parent, children, err := NewSelector(sorted).Select(cluster)
		require.NoError(t, err)
		assert.False(t, cluster.IsLink(parent))
		assert.Contains(t, children, m.Path("/archive/l"))
		assert.Len(t, children, 2)
	}

	parent, _, err := NewSelector(true).Select(cluster)
	require.NoError(t, err)
	assert.Equal(t, m.Path("/archive/other.txt"), parent)
}

func TestSelector_OnlyLinks(t *testing.T) {
	cluster := m.DuplicateCluster{
		Hash:    "h",
		Members: []m.Path{"/b/link", "/a/link"},
		Links:   []m.Path{"/b/link", "/a/link"},
	}

	parent, children, err := NewSelector(true).Select(cluster)
	require.NoError(t, err)
	assert.Equal(t, m.Path("/a/link"), parent)
	assert.Equal(t, []m.Path{"/b/link"}, children)
}

func TestSelector_EmptyCluster(t *testing.T) {
	_, _, err := NewSelector(true).Select(m.DuplicateCluster{Hash: "h"})
	assert.ErrorIs(t, err, m.ErrEmptyCluster)
	assert.ErrorIs(t, err, m.ErrInvariant)
}
