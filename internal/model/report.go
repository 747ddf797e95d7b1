package model

import "time"

// StageReport classifies the files found under a collection's source path.
type StageReport struct {
	// Unique holds source files whose content is not yet in the archive.
	Unique []Path `yaml:"unique"`

	// Archived maps a source file to the archive file with the same content.
	Archived map[Path]Path `yaml:"archived"`

	// UniqueBytes is the total size of the unique files.
	UniqueBytes uint64 `yaml:"unique_bytes"`
}

// RunReport summarizes one orchestrator run over a collection.
type RunReport struct {
	Collection     Collection      `yaml:"collection"`
	State          RunState        `yaml:"-"`
	StateName      string          `yaml:"state"`
	DryRun         bool            `yaml:"dry_run"`
	FilesScanned   int             `yaml:"files_scanned"`
	FilesSkipped   int             `yaml:"files_skipped"`
	FilesOutOfBand int             `yaml:"files_out_of_band"`
	FilesHashed    int             `yaml:"files_hashed"`
	BytesHashed    uint64          `yaml:"bytes_hashed"`
	UniqueFiles    int             `yaml:"unique_files"`
	Clusters       int             `yaml:"clusters"`
	Parents        int             `yaml:"parents"`
	Children       int             `yaml:"children"`
	Relocated      int             `yaml:"relocated"`
	BytesReclaimed uint64          `yaml:"bytes_reclaimed"`
	Plan           []DuplicateEdge `yaml:"plan,omitempty"`
	Stage          *StageReport    `yaml:"stage,omitempty"`
	Duration       time.Duration   `yaml:"duration"`
}

// SetState records the state the run ended in.
func (r *RunReport) SetState(s RunState) {
	r.State = s
	r.StateName = s.String()
}
