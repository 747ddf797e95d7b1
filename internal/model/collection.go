package model

import "fmt"

// PathKind labels one of the five directories a collection manages.
type PathKind string

const (
	PathArchive   PathKind = "archive"
	PathSource    PathKind = "source"
	PathStage     PathKind = "stage"
	PathGraveyard PathKind = "graveyard"
	PathUnstage   PathKind = "unstage"
)

// Collection identifies one managed tree. Paths are fixed for the duration of a run.
type Collection struct {
	Name      string `yaml:"name"`
	Archive   Path   `yaml:"archive"`
	Source    Path   `yaml:"source"`
	Stage     Path   `yaml:"stage"`
	Graveyard Path   `yaml:"graveyard"`
	Unstage   Path   `yaml:"unstage"`
}

// PathFor returns the configured path of the given kind.
func (c Collection) PathFor(kind PathKind) Path {
	switch kind {
	case PathArchive:
		return c.Archive
	case PathSource:
		return c.Source
	case PathStage:
		return c.Stage
	case PathGraveyard:
		return c.Graveyard
	case PathUnstage:
		return c.Unstage
	}

	return ""
}

// WithPath returns a copy of c with the path of the given kind replaced.
func (c Collection) WithPath(kind PathKind, p Path) Collection {
	switch kind {
	case PathArchive:
		c.Archive = p
	case PathSource:
		c.Source = p
	case PathStage:
		c.Stage = p
	case PathGraveyard:
		c.Graveyard = p
	case PathUnstage:
		c.Unstage = p
	}

	return c
}

// ArchivePathKinds are created together when synthesizing a default archive layout.
var ArchivePathKinds = []PathKind{PathArchive, PathUnstage}

// SourcePathKinds are created together when synthesizing a default source layout.
var SourcePathKinds = []PathKind{PathSource, PathStage, PathGraveyard}

// MustBeEmptyPathKinds must be empty directories before any hashing starts.
var MustBeEmptyPathKinds = []PathKind{PathStage, PathGraveyard, PathUnstage}

// DefaultFolderName is the directory name used for a kind in a synthesized layout.
func DefaultFolderName(kind PathKind) string {
	switch kind {
	case PathArchive:
		return "_ARCHIVE"
	case PathSource:
		return "_SOURCE"
	case PathStage:
		return "_STAGE"
	case PathGraveyard:
		return "_GRAVEYARD"
	case PathUnstage:
		return "_UNSTAGE"
	}

	return fmt.Sprintf("_%s", kind)
}
