package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

const (
	progressStep      = 10
	durationPrecision = time.Millisecond
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd      *cobra.Command
	mu       sync.Mutex
	mode     StartMode
	progress map[m.Path]uint64
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd:      cmd,
		progress: make(map[m.Path]uint64),
	}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.mode = newStartConfig(options...).Mode()
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayCollectionStart announces a collection.
func (s *SimpleUI) DisplayCollectionStart(ctx context.Context, collection m.Collection) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Collection %s: archive %s\n", collection.Name, displayPath(collection.Archive))
}

// DisplayStateChange prints each state the collection enters.
func (s *SimpleUI) DisplayStateChange(ctx context.Context, collection string, _, to m.RunState) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("[%s] %s\n", collection, to)
}

// DisplayHashProgress prints every ten percent of a large file.
func (s *SimpleUI) DisplayHashProgress(ctx context.Context, path m.Path, read, size uint64) {
	if err := ctx.Err(); err != nil || size == 0 {
		return
	}

	percent := read * 100 / size

	s.mu.Lock()

	last, seen := s.progress[path]
	show := !seen || percent >= last+progressStep || (percent == 100 && last != 100)

	if show {
		s.progress[path] = percent
	}

	if percent >= 100 {
		delete(s.progress, path)
	}

	s.mu.Unlock()

	if show {
		s.printf("hashing %s: %d%% (%s / %s)\n", path, percent, humanize.IBytes(read), humanize.IBytes(size))
	}
}

// DisplayPlan prints the planned relocations. In plan mode a diff of the touched files follows.
func (s *SimpleUI) DisplayPlan(ctx context.Context, collection m.Collection, edges []m.DuplicateEdge) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\nCollection %s: %d duplicate(s) to unstage\n%s", collection.Name, len(edges), renderPlanTable(edges))

	s.mu.Lock()
	mode := s.mode
	s.mu.Unlock()

	if mode != ModePlan {
		return nil
	}

	diff, err := RenderPlanDiff(edges)
	if err != nil {
		return err
	}

	s.printf("\n%s", diff)

	return nil
}

// DisplayReport prints the outcome of a run.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("Collection %s aborted: %v\n", report.Collection.Name, err)
	}

	s.printf("\n%s", renderReportTable(report))

	if report.Stage != nil {
		s.printf("Source: %d unique file(s) (%s), %d already archived\n",
			len(report.Stage.Unique), humanize.IBytes(report.Stage.UniqueBytes), len(report.Stage.Archived))
	}

	return nil
}

// DisplayMetadata prints saved metadata.
func (s *SimpleUI) DisplayMetadata(ctx context.Context, metadata *m.CollectionMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if metadata == nil {
		return fmt.Errorf("no metadata to display")
	}

	s.printf("Collection %s: archive %s\n\n%s", metadata.Collection.Name,
		displayPath(metadata.Collection.Archive), renderFilesTable(metadata))

	if edges := metadata.Edges(); len(edges) > 0 {
		s.printf("\nPending relocations\n%s", renderPlanTable(edges))
	}

	return nil
}

func renderPlanTable(edges []m.DuplicateEdge) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Parent", "Duplicate", "Size", "Destination"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	var total uint64

	for _, edge := range edges {
		table.Append([]string{
			string(edge.Parent),
			string(edge.Child),
			humanize.IBytes(edge.ChildSize),
			displayPath(edge.DestinationFile),
		})

		total += edge.ChildSize
	}

	table.SetFooter([]string{
		fmt.Sprintf("Parents %d", countParents(edges)),
		fmt.Sprintf("Duplicates %d", len(edges)),
		humanize.IBytes(total),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func renderReportTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Collection", report.Collection.Name})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := [][]string{
		{"State", report.State.String()},
		{"Files scanned", fmt.Sprintf("%d", report.FilesScanned)},
		{"Files skipped", fmt.Sprintf("%d", report.FilesSkipped)},
		{"Files out of size band", fmt.Sprintf("%d", report.FilesOutOfBand)},
		{"Files hashed", fmt.Sprintf("%d (%s)", report.FilesHashed, humanize.IBytes(report.BytesHashed))},
		{"Unique files", fmt.Sprintf("%d", report.UniqueFiles)},
		{"Duplicate clusters", fmt.Sprintf("%d", report.Clusters)},
		{"Parents", fmt.Sprintf("%d", report.Parents)},
		{"Duplicates", fmt.Sprintf("%d", report.Children)},
		{"Relocated", fmt.Sprintf("%d (%s)", report.Relocated, humanize.IBytes(report.BytesReclaimed))},
	}

	table.AppendBulk(rows)

	mode := "run"
	if report.DryRun {
		mode = "dry run"
	}

	table.SetFooter([]string{mode, report.Duration.Round(durationPrecision).String()})

	table.Render()

	return tableBuffer.String()
}

func renderFilesTable(metadata *m.CollectionMetadata) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Size", "Hash"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	var total uint64

	for _, path := range metadata.SortedPaths() {
		record := metadata.Files[path]

		hash := record.Hash
		if hash == "" {
			hash = "-"
		}

		table.Append([]string{string(path), humanize.IBytes(record.Size), hash})

		total += record.Size
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(metadata.Files)),
		humanize.IBytes(total),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func countParents(edges []m.DuplicateEdge) int {
	parents := make(map[m.Path]bool)
	for _, edge := range edges {
		parents[edge.Parent] = true
	}

	return len(parents)
}

func displayPath(p m.Path) string {
	if p == "" {
		return "-"
	}

	return string(p)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
