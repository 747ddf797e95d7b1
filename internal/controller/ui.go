// Package controller provides the output adapters of the shepherd CLI.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModePlan
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithRunMode sets the UI to relocation mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithPlanMode sets the UI to dry-run mode.
func WithPlanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlan
	}
}

// WithViewMode sets the UI to display saved metadata.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI receives progress and results from the pipeline. It never changes pipeline state.
// Implementations must be safe for use by several collections at once.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context)
	DisplayCollectionStart(ctx context.Context, collection m.Collection)
	DisplayStateChange(ctx context.Context, collection string, from, to m.RunState)
	DisplayHashProgress(ctx context.Context, path m.Path, read, size uint64)
	DisplayPlan(ctx context.Context, collection m.Collection, edges []m.DuplicateEdge) error
	DisplayReport(ctx context.Context, report m.RunReport, err error) error
	DisplayMetadata(ctx context.Context, metadata *m.CollectionMetadata) error
}

// NewUI returns a TUI for interactive terminals and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
