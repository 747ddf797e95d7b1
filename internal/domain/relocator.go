package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"shepherd.dev/pkg/shepherd/internal/adapter"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

// Relocator executes planned edges.
type Relocator interface {
	Execute(ctx context.Context, edge m.DuplicateEdge) error
}

type relocator struct {
	adapter.FileManager
}

// NewRelocator returns a Relocator acting through fileManager.
func NewRelocator(fileManager adapter.FileManager) Relocator {
	return &relocator{FileManager: fileManager}
}

// Execute creates the destination folder, the link back to the parent and then moves the child.
// Each step can be repeated: existing folders and an existing link are left alone. A second
// Execute of a completed edge fails on the move because the child is gone. Nothing is ever
// overwritten: an occupied destination fails the edge with ErrDestinationExists.
func (r *relocator) Execute(ctx context.Context, edge m.DuplicateEdge) error {
	if !edge.Planned() {
		return m.InvariantError("relocate", edge.Child, fmt.Errorf("edge has no plan"))
	}

	// Flattened names are not unique, so the link and the file can land on one path.
	if edge.Link.Name == edge.DestinationFile {
		return m.IOError("relocate", edge.DestinationFile, m.ErrDestinationExists)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.CreateFolders(edge.DestinationFolder); err != nil {
		return m.IOError("create folders", edge.DestinationFolder, err)
	}

	if err := r.link(edge.Link); err != nil {
		return err
	}

	return r.move(edge.Child, edge.DestinationFile)
}

func (r *relocator) link(cmd m.LinkCommand) error {
	exists, err := r.Exists(cmd.Name)
	if err != nil {
		return m.IOError("symlink", cmd.Name, err)
	}

	if exists {
		slog.Debug("link already exists", "name", cmd.Name, "target", cmd.Target)
		return nil
	}

	if err := r.Symlink(cmd.Target, cmd.Name); err != nil {
		return m.IOError("symlink", cmd.Name, err)
	}

	slog.Debug("created link", "name", cmd.Name, "target", cmd.Target)

	return nil
}

func (r *relocator) move(src, dst m.Path) error {
	exists, err := r.Exists(src)
	if err != nil {
		return m.IOError("move", src, err)
	}

	if !exists {
		return m.IOError("move", src, m.ErrSourceMissing)
	}

	folder := m.Path(filepath.Dir(string(dst)))

	info, err := r.Stat(folder)
	if err != nil || !info.IsDir() {
		return m.IOError("move", folder, m.ErrDestinationMissing)
	}

	taken, err := r.Exists(dst)
	if err != nil {
		return m.IOError("move", dst, err)
	}

	if taken {
		return m.IOError("move", dst, m.ErrDestinationExists)
	}

	if err := r.Move(src, dst); err != nil {
		return m.IOError("move", src, err)
	}

	slog.Info("relocated duplicate", "from", src, "to", dst)

	return nil
}
