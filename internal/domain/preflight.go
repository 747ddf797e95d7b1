package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"shepherd.dev/pkg/shepherd/internal/adapter"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

// Preflight checks the host and the collection directories before any hashing starts.
type Preflight interface {
	// Check verifies required mounts and network availability.
	Check(ctx context.Context) error
	// ValidatePaths resolves the collection paths, synthesizing the default layout when
	// enabled, and verifies that stage, graveyard and unstage are empty directories.
	ValidatePaths(ctx context.Context, c m.Collection) (m.Collection, error)
}

type preflight struct {
	adapter.FileManager
	adapter.SystemAdapter
	config m.Config
}

// NewPreflight returns a Preflight for the given configuration.
func NewPreflight(fileManager adapter.FileManager, systemAdapter adapter.SystemAdapter, config m.Config) Preflight {
	return &preflight{
		FileManager:   fileManager,
		SystemAdapter: systemAdapter,
		config:        config,
	}
}

func (p *preflight) Check(ctx context.Context) error {
	if len(p.config.RequiredMounts) > 0 {
		mounts, err := p.Mounts(ctx)
		if err != nil {
			return m.PreconditionError("preflight", "", fmt.Errorf("%w: %w", m.ErrPreflightFailed, err))
		}

		for device, mountPoint := range p.config.RequiredMounts {
			if got, ok := mounts[device]; !ok || got != mountPoint {
				return m.PreconditionError("preflight", m.Path(mountPoint),
					fmt.Errorf("%w: device %s is not mounted on %s", m.ErrPreflightFailed, device, mountPoint))
			}
		}
	}

	if p.config.RequireNetwork {
		up, err := p.NetworkUp(ctx)
		if err != nil {
			return m.PreconditionError("preflight", "", fmt.Errorf("%w: %w", m.ErrPreflightFailed, err))
		}

		if !up {
			return m.PreconditionError("preflight", "", fmt.Errorf("%w: no network interface is up", m.ErrPreflightFailed))
		}
	}

	return nil
}

func (p *preflight) ValidatePaths(ctx context.Context, c m.Collection) (m.Collection, error) {
	if err := ctx.Err(); err != nil {
		return c, err
	}

	var err error

	c, err = p.resolveGroup(c, m.ArchivePathKinds, p.config.CreateDefaultArchivePaths)
	if err != nil {
		return c, err
	}

	c, err = p.resolveGroup(c, m.SourcePathKinds, p.config.CreateDefaultSourcePaths)
	if err != nil {
		return c, err
	}

	for _, kind := range m.MustBeEmptyPathKinds {
		path := c.PathFor(kind)

		empty, err := p.IsEmptyDir(path)
		if err != nil {
			return c, m.IOError("validate "+string(kind), path, err)
		}

		if !empty {
			return c, m.PreconditionError("validate "+string(kind), path, m.ErrDirectoryNotEmpty)
		}
	}

	return c, nil
}

// resolveGroup makes every path of the group absolute and existing. With createDefaults,
// unset paths are placed under the default root and missing directories are created.
func (p *preflight) resolveGroup(c m.Collection, kinds []m.PathKind, createDefaults bool) (m.Collection, error) {
	for _, kind := range kinds {
		op := "validate " + string(kind)
		path := c.PathFor(kind)

		if path == "" {
			if !createDefaults {
				return c, m.PreconditionError(op, "", m.ErrPathNotConfigured)
			}

			if p.config.DefaultRoot == "" {
				return c, m.PreconditionError(op, "", fmt.Errorf("%w: no default root", m.ErrPathNotConfigured))
			}

			path = m.Path(filepath.Join(string(p.config.DefaultRoot), c.Name, m.DefaultFolderName(kind)))
			slog.Info("using default path", "collection", c.Name, "kind", kind, "path", path)
		}

		abs, err := filepath.Abs(string(path))
		if err != nil {
			return c, m.IOError(op, path, err)
		}

		path = m.Path(abs)

		info, err := p.Stat(path)

		switch {
		case err == nil && !info.IsDir():
			return c, m.PreconditionError(op, path, fmt.Errorf("not a directory"))
		case err == nil:
		case !errors.Is(err, fs.ErrNotExist):
			return c, m.IOError(op, path, err)
		case !createDefaults:
			return c, m.PreconditionError(op, path, m.ErrPathMissing)
		default:
			if err := p.CreateFolders(path); err != nil {
				return c, m.IOError(op, path, err)
			}

			slog.Info("created directory", "collection", c.Name, "kind", kind, "path", path)
		}

		c = c.WithPath(kind, path)
	}

	return c, nil
}
