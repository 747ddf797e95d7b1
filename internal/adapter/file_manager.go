// Package adapter contains the infrastructure adapters of the shepherd CLI.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

const (
	dirPerm = 0o755
)

// FileManager is the only component allowed to touch managed directories.
// The domain layer goes through it so the pipeline can be tested without touching the disk.
//
//nolint:interfacebloat // Mirrors the filesystem operations the pipeline needs.
type FileManager interface {
	// Walk traverses root without following symbolic links.
	Walk(ctx context.Context, root m.Path, fn WalkFunc) error

	// Lstat describes path itself, even when it is a symbolic link.
	Lstat(path m.Path) (os.FileInfo, error)

	// Stat describes path, following symbolic links.
	Stat(path m.Path) (os.FileInfo, error)

	// Open returns the content of a file for reading.
	Open(path m.Path) (io.ReadCloser, error)

	// Exists reports whether any filesystem object, dangling links included, is at path.
	Exists(path m.Path) (bool, error)

	// IsEmptyDir reports whether path is a directory without entries.
	IsEmptyDir(path m.Path) (bool, error)

	// CreateFolders creates path one segment at a time from the root down, skipping
	// segments that already exist. Segments created before a failure are kept.
	CreateFolders(path m.Path) error

	// CreateDir creates a single directory, failing if its parent is missing.
	CreateDir(path m.Path) error

	// Symlink creates name pointing at target.
	Symlink(target, name m.Path) error

	// Readlink returns the target of the symbolic link name.
	Readlink(name m.Path) (m.Path, error)

	// Move relocates src to dst, copying across devices when a rename is not possible.
	Move(src, dst m.Path) error
}

// WalkFunc mirrors filepath.WalkFunc with the model path type.
type WalkFunc func(path m.Path, info os.FileInfo, err error) error

// AferoFileManager implements FileManager on top of an afero filesystem.
type AferoFileManager struct {
	fs afero.Fs
}

// NewFileManager returns a FileManager backed by fsys. Production code passes afero.NewOsFs().
func NewFileManager(fsys afero.Fs) FileManager {
	return &AferoFileManager{fs: fsys}
}

// NewLocalFileManager returns a FileManager backed by the operating system.
func NewLocalFileManager() FileManager {
	return NewFileManager(afero.NewOsFs())
}

// Walk visits every entry under root in lexical order.
func (a *AferoFileManager) Walk(ctx context.Context, root m.Path, fn WalkFunc) error {
	return afero.Walk(a.fs, string(root), func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(m.Path(path), info, err)
	})
}

// Lstat returns file info without following a final symbolic link when the filesystem supports it.
func (a *AferoFileManager) Lstat(path m.Path) (os.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(string(path))

		return info, err
	}

	return a.fs.Stat(string(path))
}

// Stat returns file info following symbolic links.
func (a *AferoFileManager) Stat(path m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(path))
}

// Open opens path read-only.
func (a *AferoFileManager) Open(path m.Path) (io.ReadCloser, error) {
	return a.fs.Open(string(path))
}

// Exists uses Lstat so a link whose target vanished still counts.
func (a *AferoFileManager) Exists(path m.Path) (bool, error) {
	_, err := a.Lstat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// IsEmptyDir fails when path is missing or is not a directory.
func (a *AferoFileManager) IsEmptyDir(path m.Path) (bool, error) {
	info, err := a.fs.Stat(string(path))
	if err != nil {
		return false, err
	}

	if !info.IsDir() {
		return false, fmt.Errorf("%s is not a directory", path)
	}

	return afero.IsEmpty(a.fs, string(path))
}

// CreateFolders creates each missing segment of path in order.
func (a *AferoFileManager) CreateFolders(path m.Path) error {
	for _, segment := range segments(string(path)) {
		info, err := a.fs.Stat(segment)

		switch {
		case err == nil && info.IsDir():
			continue
		case err == nil:
			return fmt.Errorf("create folder %s: %w", segment, syscall.ENOTDIR)
		case !errors.Is(err, fs.ErrNotExist):
			return err
		}

		if err := a.fs.Mkdir(segment, dirPerm); err != nil && !errors.Is(err, fs.ErrExist) {
			return err
		}
	}

	return nil
}

// CreateDir creates path with default permissions.
func (a *AferoFileManager) CreateDir(path m.Path) error {
	return a.fs.Mkdir(string(path), dirPerm)
}

// Symlink fails with afero.ErrNoSymlink on filesystems without link support.
func (a *AferoFileManager) Symlink(target, name m.Path) error {
	linker, ok := a.fs.(afero.Linker)
	if !ok {
		return &os.LinkError{Op: "symlink", Old: string(target), New: string(name), Err: afero.ErrNoSymlink}
	}

	return linker.SymlinkIfPossible(string(target), string(name))
}

// Readlink fails with afero.ErrNoReadlink on filesystems without link support.
func (a *AferoFileManager) Readlink(name m.Path) (m.Path, error) {
	reader, ok := a.fs.(afero.LinkReader)
	if !ok {
		return "", &os.PathError{Op: "readlink", Path: string(name), Err: afero.ErrNoReadlink}
	}

	target, err := reader.ReadlinkIfPossible(string(name))
	if err != nil {
		return "", err
	}

	return m.Path(target), nil
}

// Move renames src to dst and falls back to copy and remove when they are on different devices.
// It refuses to replace an existing dst.
func (a *AferoFileManager) Move(src, dst m.Path) error {
	if _, err := a.Lstat(dst); err == nil {
		return &os.LinkError{Op: "move", Old: string(src), New: string(dst), Err: fs.ErrExist}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	err := a.fs.Rename(string(src), string(dst))
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if err := a.copyFile(src, dst); err != nil {
		return err
	}

	return a.fs.Remove(string(src))
}

func (a *AferoFileManager) copyFile(src, dst m.Path) (err error) {
	info, err := a.fs.Stat(string(src))
	if err != nil {
		return err
	}

	in, err := a.fs.Open(string(src))
	if err != nil {
		return err
	}

	defer func() {
		_ = in.Close()
	}()

	out, err := a.fs.OpenFile(string(dst), os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}

		if err != nil {
			_ = a.fs.Remove(string(dst))
		}
	}()

	_, err = io.Copy(out, in)

	return err
}

// segments returns every ancestor of path, root first, path last.
func segments(path string) []string {
	clean := filepath.Clean(path)
	volume := filepath.VolumeName(clean)
	rest := strings.TrimPrefix(clean, volume)

	var result []string

	current := volume

	if strings.HasPrefix(rest, string(filepath.Separator)) {
		current += string(filepath.Separator)
	}

	for _, part := range strings.Split(rest, string(filepath.Separator)) {
		if part == "" || part == "." {
			continue
		}

		current = filepath.Join(current, part)
		result = append(result, current)
	}

	return result
}
