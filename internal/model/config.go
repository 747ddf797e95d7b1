package model

import (
	"fmt"
	"runtime"
)

// Defaults mirrored by the cmd layer's viper defaults.
const (
	DefaultBufferSize         = 65536
	DefaultLargeFileThreshold = 100000000
	DefaultParentFolder       = "_SHEPHERD"
)

// HashOptions configures which files are hashed and how.
type HashOptions struct {
	Algorithm          HashAlgorithm
	BufferSize         int
	MinSize            uint64
	MaxSize            uint64
	LargeFileThreshold uint64
	Workers            int
	SkipUniqueSizes    bool
}

// InBand reports whether a file of the given size is within the configured size limits.
// A zero limit means no limit.
func (h HashOptions) InBand(size uint64) bool {
	if h.MinSize > 0 && size < h.MinSize {
		return false
	}

	if h.MaxSize > 0 && size > h.MaxSize {
		return false
	}

	return true
}

// WorkerCount resolves the hashing pool size.
func (h HashOptions) WorkerCount() int {
	if h.Workers > 0 {
		return h.Workers
	}

	return 2 * runtime.NumCPU()
}

// Config is the immutable run configuration handed to the orchestrator.
type Config struct {
	Collections               []Collection
	Hash                      HashOptions
	SkipSoftLinks             bool
	SortDuplicateHierarchy    bool
	CreateDefaultArchivePaths bool
	CreateDefaultSourcePaths  bool

	// DefaultRoot is where synthesized layouts are created, one sub-folder per collection.
	DefaultRoot    Path
	RequiredMounts map[string]string
	RequireNetwork bool
	ReportDir      Path
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Hash: HashOptions{
			Algorithm:          HashMD5,
			BufferSize:         DefaultBufferSize,
			LargeFileThreshold: DefaultLargeFileThreshold,
			SkipUniqueSizes:    true,
		},
		SkipSoftLinks:             true,
		SortDuplicateHierarchy:    true,
		CreateDefaultArchivePaths: true,
		CreateDefaultSourcePaths:  true,
		RequiredMounts:            map[string]string{},
	}
}

// Validate checks values that would otherwise fail late, in the middle of a run.
func (c Config) Validate() error {
	if _, err := ParseHashAlgorithm(string(c.Hash.Algorithm)); err != nil {
		return err
	}

	if c.Hash.BufferSize <= 0 {
		return PreconditionError("validate config", "",
			fmt.Errorf("%w: hash buffer size must be positive, got %d", ErrInvalidConfig, c.Hash.BufferSize))
	}

	if c.Hash.MaxSize > 0 && c.Hash.MinSize > c.Hash.MaxSize {
		return PreconditionError("validate config", "",
			fmt.Errorf("%w: hash min size %d exceeds max size %d", ErrInvalidConfig, c.Hash.MinSize, c.Hash.MaxSize))
	}

	if c.Hash.Workers < 0 {
		return PreconditionError("validate config", "",
			fmt.Errorf("%w: hash workers must not be negative", ErrInvalidConfig))
	}

	seen := make(map[string]bool, len(c.Collections))
	for _, col := range c.Collections {
		if col.Name == "" {
			return PreconditionError("validate config", "",
				fmt.Errorf("%w: collection without a name", ErrInvalidConfig))
		}

		if seen[col.Name] {
			return PreconditionError("validate config", "",
				fmt.Errorf("%w: duplicate collection %q", ErrInvalidConfig, col.Name))
		}

		seen[col.Name] = true
	}

	return nil
}

// Collection returns the named collection.
func (c Config) Collection(name string) (Collection, bool) {
	for _, col := range c.Collections {
		if col.Name == name {
			return col, true
		}
	}

	return Collection{}, false
}
