package domain

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"shepherd.dev/pkg/shepherd/internal/adapter"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

// ScanResult holds the regular files found under a root and the entries skipped on the way.
type ScanResult struct {
	Files   map[m.Path]m.FileRecord
	Skipped []error
}

// Scanner enumerates regular files.
type Scanner interface {
	Scan(ctx context.Context, root m.Path, skipSymlinks bool) (ScanResult, error)
}

type scanner struct {
	adapter.FileManager
}

// NewScanner returns a Scanner reading through fileManager.
func NewScanner(fileManager adapter.FileManager) Scanner {
	return &scanner{FileManager: fileManager}
}

// Scan walks root recursively. Entries that vanish during the walk are reported in Skipped
// and the walk goes on. A missing root is an error. When skipSymlinks is false, links to
// regular files are recorded with the size of their target.
func (s *scanner) Scan(ctx context.Context, root m.Path, skipSymlinks bool) (ScanResult, error) {
	absRoot, err := filepath.Abs(string(root))
	if err != nil {
		return ScanResult{}, m.IOError("scan", root, err)
	}

	result := ScanResult{Files: make(map[m.Path]m.FileRecord)}

	err = s.Walk(ctx, m.Path(absRoot), func(path m.Path, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			if path != m.Path(absRoot) && errors.Is(walkErr, fs.ErrNotExist) {
				slog.Warn("entry vanished during scan", "path", path, "error", walkErr)
				result.Skipped = append(result.Skipped, m.IOError("scan", path, walkErr))

				return nil
			}

			return m.IOError("scan", path, walkErr)
		}

		record, ok, err := s.record(path, info, skipSymlinks)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Warn("entry vanished during scan", "path", path, "error", err)
				result.Skipped = append(result.Skipped, m.IOError("stat", path, err))

				return nil
			}

			return m.IOError("stat", path, err)
		}

		if ok {
			result.Files[path] = record
		}

		return nil
	})
	if err != nil {
		return ScanResult{}, err
	}

	slog.Debug("scan completed", "root", absRoot, "files", len(result.Files), "skipped", len(result.Skipped))

	return result, nil
}

func (s *scanner) record(path m.Path, info os.FileInfo, skipSymlinks bool) (m.FileRecord, bool, error) {
	mode := info.Mode()

	switch {
	case mode.IsRegular():
		return m.FileRecord{Path: path, Size: uint64(info.Size())}, true, nil
	case mode&os.ModeSymlink == 0:
		return m.FileRecord{}, false, nil
	case skipSymlinks:
		slog.Debug("skipping symbolic link", "path", path)
		return m.FileRecord{}, false, nil
	}

	target, err := s.Stat(path)
	if err != nil {
		return m.FileRecord{}, false, err
	}

	if !target.Mode().IsRegular() {
		return m.FileRecord{}, false, nil
	}

	return m.FileRecord{Path: path, Size: uint64(target.Size()), IsSymlink: true}, true, nil
}
