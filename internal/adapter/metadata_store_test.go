package adapter

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

func TestYAMLMetadataStore_RoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewMetadataStore(fsys)
	ctx := context.Background()

	metadata := m.NewCollectionMetadata(m.Collection{Name: "photos", Archive: "/archive"})
	metadata.AddFiles(map[m.Path]m.FileRecord{
		"/archive/a.txt": {Path: "/archive/a.txt", Size: 1, Hash: "h"},
		"/archive/b.txt": {Path: "/archive/b.txt", Size: 1, Hash: "h"},
	})
	metadata.AddEdge(m.DuplicateEdge{
		Parent:            "/archive/a.txt",
		ParentHash:        "h",
		ParentSize:        1,
		Child:             "/archive/b.txt",
		ChildHash:         "h",
		ChildSize:         1,
		DestinationFolder: "/unstage/archive_a.txt",
		DestinationFile:   "/unstage/archive_a.txt/archive_b.txt",
		Link:              m.LinkCommand{Target: "/archive/a.txt", Name: "/unstage/archive_a.txt/archive_a.txt"},
	})

	path := m.Path("/reports/photos.metadata.yaml")
	require.NoError(t, store.Save(ctx, path, metadata))

	loaded, err := store.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, metadata.Collection, loaded.Collection)
	assert.Equal(t, metadata.Files, loaded.Files)
	assert.Equal(t, metadata.Edges(), loaded.Edges())
}

func TestYAMLMetadataStore_LoadInitializesMaps(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/reports/empty.yaml", []byte("collection:\n  name: empty\n"), 0o644))

	loaded, err := NewMetadataStore(fsys).Load(context.Background(), "/reports/empty.yaml")
	require.NoError(t, err)
	assert.Equal(t, "empty", loaded.Collection.Name)
	assert.NotNil(t, loaded.Files)
	assert.True(t, loaded.Valid())
}

func TestYAMLMetadataStore_Errors(t *testing.T) {
	store := NewMetadataStore(afero.NewMemMapFs())

	_, err := store.Load(context.Background(), "/missing.yaml")
	require.Error(t, err)

	err = store.Save(context.Background(), "/a.yaml", nil)
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = store.Save(ctx, "/a.yaml", m.NewCollectionMetadata(m.Collection{}))
	assert.ErrorIs(t, err, context.Canceled)
}
