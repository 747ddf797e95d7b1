package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

func TestSourceStager_Stage(t *testing.T) {
	fm := newMemFileManager(t, map[string]string{
		"/archive/a.txt":  "X",
		"/archive/big":    "12345",
		"/source/x.txt":   "X",
		"/source/y.txt":   "Y",
		"/source/z.txt":   "ZZ",
		"/source/sub/big": "12345",
	})

	config := m.DefaultConfig()
	hasher, err := NewHasher(fm, config.Hash, nil)
	require.NoError(t, err)

	c := m.Collection{Name: "photos", Archive: "/archive", Source: "/source"}
	archive := m.NewCollectionMetadata(c)
	archive.AddFiles(map[m.Path]m.FileRecord{
		"/archive/a.txt": {Path: "/archive/a.txt", Size: 1},
		"/archive/big":   {Path: "/archive/big", Size: 5},
	})

	report, err := NewSourceStager(NewScanner(fm), hasher, config).Stage(context.Background(), c, archive)
	require.NoError(t, err)

	assert.Equal(t, map[m.Path]m.Path{
		"/source/x.txt":   "/archive/a.txt",
		"/source/sub/big": "/archive/big",
	}, report.Archived)
	assert.Equal(t, []m.Path{"/source/y.txt", "/source/z.txt"}, report.Unique)
	assert.Equal(t, uint64(3), report.UniqueBytes)

	// Archive files hashed on the way are kept.
	assert.Equal(t, "02129bb861061d1a052c592e2dc6b383", archive.Files["/archive/a.txt"].Hash)
}

func TestSourceStager_OutOfBandIsUnique(t *testing.T) {
	fm := newMemFileManager(t, map[string]string{
		"/archive/a.txt": "X",
		"/source/a.txt":  "X",
	})

	config := m.DefaultConfig()
	config.Hash.MinSize = 2
	config.Hash.MaxSize = 10

	hasher, err := NewHasher(fm, config.Hash, nil)
	require.NoError(t, err)

	c := m.Collection{Name: "photos", Source: "/source"}
	archive := m.NewCollectionMetadata(c)
	archive.AddFiles(map[m.Path]m.FileRecord{"/archive/a.txt": {Path: "/archive/a.txt", Size: 1}})

	report, err := NewSourceStager(NewScanner(fm), hasher, config).Stage(context.Background(), c, archive)
	require.NoError(t, err)
	assert.Equal(t, []m.Path{"/source/a.txt"}, report.Unique)
	assert.Empty(t, report.Archived)
	assert.False(t, archive.Files["/archive/a.txt"].Hashed())
}

func TestSourceStager_MissingSource(t *testing.T) {
	fm := newMemFileManager(t, nil)

	config := m.DefaultConfig()
	hasher, err := NewHasher(fm, config.Hash, nil)
	require.NoError(t, err)

	c := m.Collection{Name: "photos", Source: "/missing"}

	_, err = NewSourceStager(NewScanner(fm), hasher, config).Stage(context.Background(), c, m.NewCollectionMetadata(c))
	assert.ErrorIs(t, err, m.ErrIO)
}
