package adapter

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestAferoFileManager_WalkIsLexical(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/root/b.txt", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/root/a/z.txt", []byte("z"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/root/a.txt", []byte("a"), 0o644))

	fm := NewFileManager(fsys)

	var visited []m.Path

	err := fm.Walk(context.Background(), "/root", func(path m.Path, info os.FileInfo, err error) error {
		require.NoError(t, err)

		if !info.IsDir() {
			visited = append(visited, path)
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []m.Path{"/root/a/z.txt", "/root/a.txt", "/root/b.txt"}, visited)
}

func TestAferoFileManager_WalkStopsOnCancel(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/root/a.txt", []byte("a"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFileManager(fsys).Walk(ctx, "/root", func(m.Path, os.FileInfo, error) error {
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAferoFileManager_CreateFolders(t *testing.T) {
	t.Run("creates every missing segment", func(t *testing.T) {
		root := t.TempDir()
		fm := NewLocalFileManager()
		target := filepath.Join(root, "unstage", "archive_a.txt")

		require.NoError(t, fm.CreateFolders(m.Path(target)))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		// Existing segments are skipped.
		require.NoError(t, fm.CreateFolders(m.Path(target)))
	})

	t.Run("fails when a segment is a file", func(t *testing.T) {
		root := t.TempDir()
		blocker := filepath.Join(root, "unstage")
		writeTestFile(t, blocker, "x")

		err := NewLocalFileManager().CreateFolders(m.Path(filepath.Join(blocker, "folder")))
		assert.ErrorIs(t, err, syscall.ENOTDIR)
	})

	t.Run("works on an in-memory filesystem", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		fm := NewFileManager(fsys)

		require.NoError(t, fm.CreateFolders("/a/b/c"))

		ok, err := afero.DirExists(fsys, "/a/b/c")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestAferoFileManager_CreateDirNeedsParent(t *testing.T) {
	root := t.TempDir()
	fm := NewLocalFileManager()

	err := fm.CreateDir(m.Path(filepath.Join(root, "missing", "child")))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, fm.CreateDir(m.Path(filepath.Join(root, "child"))))
}

func TestAferoFileManager_Symlinks(t *testing.T) {
	root := t.TempDir()
	fm := NewLocalFileManager()
	target := filepath.Join(root, "a.txt")
	link := filepath.Join(root, "link")
	writeTestFile(t, target, "X")

	require.NoError(t, fm.Symlink(m.Path(target), m.Path(link)))

	got, err := fm.Readlink(m.Path(link))
	require.NoError(t, err)
	assert.Equal(t, m.Path(target), got)

	info, err := fm.Lstat(m.Path(link))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	info, err = fm.Stat(m.Path(link))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	// A dangling link still exists.
	require.NoError(t, os.Remove(target))

	exists, err := fm.Exists(m.Path(link))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fm.Exists(m.Path(target))
	require.NoError(t, err)
	assert.False(t, exists)
}

// linklessFs hides every optional interface of the wrapped filesystem.
type linklessFs struct {
	afero.Fs
}

func TestAferoFileManager_SymlinkUnsupported(t *testing.T) {
	fm := NewFileManager(linklessFs{Fs: afero.NewMemMapFs()})

	err := fm.Symlink("/a", "/b")
	assert.ErrorIs(t, err, afero.ErrNoSymlink)

	_, err = fm.Readlink("/b")
	assert.ErrorIs(t, err, afero.ErrNoReadlink)
}

func TestAferoFileManager_IsEmptyDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/empty", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/full/a.txt", []byte("a"), 0o644))

	fm := NewFileManager(fsys)

	empty, err := fm.IsEmptyDir("/empty")
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = fm.IsEmptyDir("/full")
	require.NoError(t, err)
	assert.False(t, empty)

	_, err = fm.IsEmptyDir("/full/a.txt")
	require.Error(t, err)

	_, err = fm.IsEmptyDir("/missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAferoFileManager_MoveAndOpen(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/archive/b.txt", []byte("X"), 0o644))
	require.NoError(t, fsys.MkdirAll("/unstage", 0o755))

	fm := NewFileManager(fsys)
	require.NoError(t, fm.Move("/archive/b.txt", "/unstage/b.txt"))

	exists, err := fm.Exists("/archive/b.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	reader, err := fm.Open("/unstage/b.txt")
	require.NoError(t, err)

	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "X", string(data))
}

func TestAferoFileManager_MoveKeepsExistingDestination(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/archive/b.txt", []byte("new"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/unstage/b.txt", []byte("old"), 0o644))

	err := NewFileManager(fsys).Move("/archive/b.txt", "/unstage/b.txt")
	require.ErrorIs(t, err, fs.ErrExist)

	data, err := afero.ReadFile(fsys, "/unstage/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	data, err = afero.ReadFile(fsys, "/archive/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestAferoFileManager_CopyFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/src/a.txt", []byte("content"), 0o600))
	require.NoError(t, fsys.MkdirAll("/dst", 0o755))

	fm := &AferoFileManager{fs: fsys}
	require.NoError(t, fm.copyFile("/src/a.txt", "/dst/a.txt"))

	data, err := afero.ReadFile(fsys, "/dst/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	// The destination is never overwritten.
	err = fm.copyFile("/src/a.txt", "/dst/a.txt")
	assert.True(t, errors.Is(err, fs.ErrExist))
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"/a", "/a/b", "/a/b/c"}, segments("/a/b/c/"))
	assert.Equal(t, []string{"a", "a/b"}, segments("a/./b"))
	assert.Empty(t, segments("/"))
}
