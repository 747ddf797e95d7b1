package adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

const metadataFilePerm = 0o644

// MetadataStore persists collection metadata between runs for inspection.
type MetadataStore interface {
	Save(ctx context.Context, path m.Path, metadata *m.CollectionMetadata) error
	Load(ctx context.Context, path m.Path) (*m.CollectionMetadata, error)
}

// YAMLMetadataStore writes metadata as YAML documents.
type YAMLMetadataStore struct {
	fs afero.Fs
}

// NewMetadataStore returns a MetadataStore writing through fsys.
func NewMetadataStore(fsys afero.Fs) MetadataStore {
	return &YAMLMetadataStore{fs: fsys}
}

// Save replaces the file at path. Its folder is created when missing.
func (s *YAMLMetadataStore) Save(ctx context.Context, path m.Path, metadata *m.CollectionMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if metadata == nil {
		return fmt.Errorf("save metadata %s: nil metadata", path)
	}

	data, err := yaml.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(string(path)), dirPerm); err != nil {
		return fmt.Errorf("create metadata folder: %w", err)
	}

	if err := afero.WriteFile(s.fs, string(path), data, metadataFilePerm); err != nil {
		return fmt.Errorf("write metadata %s: %w", path, err)
	}

	return nil
}

// Load reads a document written by Save.
func (s *YAMLMetadataStore) Load(ctx context.Context, path m.Path) (*m.CollectionMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, string(path))
	if err != nil {
		return nil, fmt.Errorf("read metadata %s: %w", path, err)
	}

	metadata := m.NewCollectionMetadata(m.Collection{})
	if err := yaml.Unmarshal(data, metadata); err != nil {
		return nil, fmt.Errorf("unmarshal metadata %s: %w", path, err)
	}

	if metadata.Files == nil {
		metadata.Files = make(map[m.Path]*m.FileRecord)
	}

	if metadata.Duplicates == nil {
		metadata.Duplicates = make(map[m.Path]map[m.Path]*m.DuplicateEdge)
	}

	return metadata, nil
}
