package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"shepherd.dev/pkg/shepherd/internal/adapter"
	adaptermocks "shepherd.dev/pkg/shepherd/internal/adapter/mocks"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

func plannedEdge(t *testing.T, root string) m.DuplicateEdge {
	t.Helper()

	parent := filepath.Join(root, "archive", "a.txt")
	child := filepath.Join(root, "archive", "b.txt")
	writeFile(t, parent, "X")
	writeFile(t, child, "X")

	edge := m.DuplicateEdge{Parent: m.Path(parent), Child: m.Path(child), ChildSize: 1}

	return NewPlanner().Plan(edge, m.Path(filepath.Join(root, "unstage")))
}

func TestRelocator_Execute(t *testing.T) {
	root := t.TempDir()
	edge := plannedEdge(t, root)
	r := NewRelocator(adapter.NewLocalFileManager())

	require.NoError(t, r.Execute(context.Background(), edge))

	_, err := os.Lstat(string(edge.Child))
	assert.ErrorIs(t, err, os.ErrNotExist)

	data, err := os.ReadFile(string(edge.DestinationFile))
	require.NoError(t, err)
	assert.Equal(t, "X", string(data))

	target, err := os.Readlink(string(edge.Link.Name))
	require.NoError(t, err)
	assert.Equal(t, string(edge.Parent), target)

	// The parent is never touched.
	_, err = os.Stat(string(edge.Parent))
	require.NoError(t, err)

	// Running the same edge again fails on the move, leaving everything in place.
	err = r.Execute(context.Background(), edge)
	assert.ErrorIs(t, err, m.ErrSourceMissing)
	assert.ErrorIs(t, err, m.ErrIO)

	_, err = os.Stat(string(edge.DestinationFile))
	require.NoError(t, err)
}

func TestRelocator_ExistingLinkIsKept(t *testing.T) {
	root := t.TempDir()
	edge := plannedEdge(t, root)

	require.NoError(t, os.MkdirAll(string(edge.DestinationFolder), 0o755))
	require.NoError(t, os.Symlink(string(edge.Parent), string(edge.Link.Name)))

	require.NoError(t, NewRelocator(adapter.NewLocalFileManager()).Execute(context.Background(), edge))

	_, err := os.Stat(string(edge.DestinationFile))
	require.NoError(t, err)
}

func TestRelocator_UnplannedEdge(t *testing.T) {
	fm := adaptermocks.NewMockFileManager(t)

	err := NewRelocator(fm).Execute(context.Background(), m.DuplicateEdge{Parent: "/a", Child: "/b"})
	assert.ErrorIs(t, err, m.ErrInvariant)
}

func TestRelocator_StopsWhenLinkFails(t *testing.T) {
	edge := NewPlanner().Plan(m.DuplicateEdge{Parent: "/archive/a.txt", Child: "/archive/b.txt"}, "/unstage")
	boom := errors.New("read-only file system")

	fm := adaptermocks.NewMockFileManager(t)
	fm.EXPECT().CreateFolders(edge.DestinationFolder).Return(nil)
	fm.EXPECT().Exists(edge.Link.Name).Return(false, nil)
	fm.EXPECT().Symlink(edge.Parent, edge.Link.Name).Return(boom)

	err := NewRelocator(fm).Execute(context.Background(), edge)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, m.ErrIO)
	fm.AssertNotCalled(t, "Move", mock.Anything, mock.Anything)
}

func TestRelocator_MissingDestinationFolder(t *testing.T) {
	edge := NewPlanner().Plan(m.DuplicateEdge{Parent: "/archive/a.txt", Child: "/archive/b.txt"}, "/unstage")

	fm := adaptermocks.NewMockFileManager(t)
	fm.EXPECT().CreateFolders(edge.DestinationFolder).Return(nil)
	fm.EXPECT().Exists(edge.Link.Name).Return(true, nil)
	fm.EXPECT().Exists(edge.Child).Return(true, nil)
	fm.EXPECT().Stat(edge.DestinationFolder).Return(nil, os.ErrNotExist)

	err := NewRelocator(fm).Execute(context.Background(), edge)
	assert.ErrorIs(t, err, m.ErrDestinationMissing)
}

func TestRelocator_ChildrenWithSameFlattenedName(t *testing.T) {
	root := t.TempDir()
	parent := filepath.Join(root, "arch", "p")
	first := filepath.Join(root, "arch", "a_b")
	second := filepath.Join(root, "arch", "a", "b")

	for _, path := range []string{parent, first, second} {
		writeFile(t, path, "X")
	}

	unstage := m.Path(filepath.Join(root, "unstage"))
	planner := NewPlanner()
	firstEdge := planner.Plan(m.DuplicateEdge{Parent: m.Path(parent), Child: m.Path(first)}, unstage)
	secondEdge := planner.Plan(m.DuplicateEdge{Parent: m.Path(parent), Child: m.Path(second)}, unstage)
	require.Equal(t, firstEdge.DestinationFile, secondEdge.DestinationFile)

	r := NewRelocator(adapter.NewLocalFileManager())
	require.NoError(t, r.Execute(context.Background(), firstEdge))

	err := r.Execute(context.Background(), secondEdge)
	assert.ErrorIs(t, err, m.ErrDestinationExists)
	assert.ErrorIs(t, err, m.ErrIO)

	// Both copies survive: one relocated, one still in the archive.
	_, err = os.Stat(second)
	require.NoError(t, err)

	data, err := os.ReadFile(string(firstEdge.DestinationFile))
	require.NoError(t, err)
	assert.Equal(t, "X", string(data))
}

func TestRelocator_LinkAndDestinationCollide(t *testing.T) {
	root := t.TempDir()
	parent := filepath.Join(root, "arch", "q", "r")
	child := filepath.Join(root, "arch", "q_r")
	writeFile(t, parent, "X")
	writeFile(t, child, "X")

	edge := NewPlanner().Plan(m.DuplicateEdge{Parent: m.Path(parent), Child: m.Path(child)},
		m.Path(filepath.Join(root, "unstage")))
	require.Equal(t, edge.Link.Name, edge.DestinationFile)

	err := NewRelocator(adapter.NewLocalFileManager()).Execute(context.Background(), edge)
	assert.ErrorIs(t, err, m.ErrDestinationExists)

	_, err = os.Stat(child)
	require.NoError(t, err)

	_, err = os.Lstat(string(edge.Link.Name))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRelocator_OccupiedDestination(t *testing.T) {
	edge := NewPlanner().Plan(m.DuplicateEdge{Parent: "/archive/a.txt", Child: "/archive/b.txt"}, "/unstage")

	fm := adaptermocks.NewMockFileManager(t)
	fm.EXPECT().CreateFolders(edge.DestinationFolder).Return(nil)
	fm.EXPECT().Exists(edge.Link.Name).Return(true, nil)
	fm.EXPECT().Exists(edge.Child).Return(true, nil)
	fm.EXPECT().Stat(edge.DestinationFolder).Return(dirInfo{}, nil)
	fm.EXPECT().Exists(edge.DestinationFile).Return(true, nil)

	err := NewRelocator(fm).Execute(context.Background(), edge)
	assert.ErrorIs(t, err, m.ErrDestinationExists)
	fm.AssertNotCalled(t, "Move", mock.Anything, mock.Anything)
}

type dirInfo struct{ os.FileInfo }

func (dirInfo) IsDir() bool { return true }
