package controller

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

const progressWidth = 40

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	abortedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// TUI implements UI with a Bubble Tea program showing live collection states and
// large-file hashing progress.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

type collectionStartMsg struct {
	collection m.Collection
}

type stateChangeMsg struct {
	collection string
	state      m.RunState
}

type hashProgressMsg struct {
	path m.Path
	read uint64
	size uint64
}

type outputMsg struct {
	text string
}

// Start launches the program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("tui already started")
	}

	model := newRunModel(newStartConfig(options...).Mode())
	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithContext(ctx))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil && ctx.Err() == nil {
			_, _ = fmt.Fprintf(t.output, "tui error: %v\n", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the program and waits for its last frame.
func (t *TUI) Close(_ context.Context) {
	program, done := t.handles()
	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the program exits.
func (t *TUI) Wait(ctx context.Context) {
	_, done := t.handles()
	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayCollectionStart adds a collection line.
func (t *TUI) DisplayCollectionStart(_ context.Context, collection m.Collection) {
	t.send(collectionStartMsg{collection: collection})
}

// DisplayStateChange updates a collection line.
func (t *TUI) DisplayStateChange(_ context.Context, collection string, _, to m.RunState) {
	t.send(stateChangeMsg{collection: collection, state: to})
}

// DisplayHashProgress moves the progress bar of a large file.
func (t *TUI) DisplayHashProgress(_ context.Context, path m.Path, read, size uint64) {
	t.send(hashProgressMsg{path: path, read: read, size: size})
}

// DisplayPlan appends the plan table, plus the diff in plan mode.
func (t *TUI) DisplayPlan(_ context.Context, collection m.Collection, edges []m.DuplicateEdge) error {
	text := fmt.Sprintf("%s\n%s", titleStyle.Render(fmt.Sprintf("%s: %d duplicate(s)", collection.Name, len(edges))),
		renderPlanTable(edges))

	diff, err := RenderPlanDiff(edges)
	if err != nil {
		return err
	}

	t.send(outputMsg{text: text})
	t.send(planDiffMsg{text: diff})

	return nil
}

// DisplayReport appends the report table.
func (t *TUI) DisplayReport(_ context.Context, report m.RunReport, err error) error {
	var b strings.Builder

	if err != nil {
		fmt.Fprintf(&b, "%s\n", abortedStyle.Render(fmt.Sprintf("%s aborted: %v", report.Collection.Name, err)))
	}

	b.WriteString(renderReportTable(report))

	if report.Stage != nil {
		fmt.Fprintf(&b, "Source: %d unique file(s) (%s), %d already archived\n",
			len(report.Stage.Unique), humanize.IBytes(report.Stage.UniqueBytes), len(report.Stage.Archived))
	}

	t.send(outputMsg{text: b.String()})

	return nil
}

// DisplayMetadata prints saved metadata directly; there is nothing live to show.
func (t *TUI) DisplayMetadata(_ context.Context, metadata *m.CollectionMetadata) error {
	if metadata == nil {
		return fmt.Errorf("no metadata to display")
	}

	_, err := fmt.Fprintf(t.output, "%s\n%s", titleStyle.Render(metadata.Collection.Name), renderFilesTable(metadata))

	return err
}

func (t *TUI) handles() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

func (t *TUI) send(msg tea.Msg) {
	program, _ := t.handles()
	if program != nil {
		program.Send(msg)
	}
}

// planDiffMsg is only shown in plan mode.
type planDiffMsg struct {
	text string
}

type collectionLine struct {
	name    string
	archive m.Path
	state   m.RunState
}

type fileProgress struct {
	read uint64
	size uint64
}

// runModel is the Bubble Tea model of a run.
type runModel struct {
	mode        StartMode
	collections []*collectionLine
	progress    map[m.Path]fileProgress
	bar         progress.Model
	outputs     []string
	quitting    bool
}

func newRunModel(mode StartMode) runModel {
	return runModel{
		mode:     mode,
		progress: make(map[m.Path]fileProgress),
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
	}
}

func (rm runModel) Init() tea.Cmd {
	return nil
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			rm.quitting = true
			return rm, tea.Quit
		}

	case collectionStartMsg:
		rm.collections = append(rm.collections, &collectionLine{
			name:    msg.collection.Name,
			archive: msg.collection.Archive,
			state:   m.StateInit,
		})

	case stateChangeMsg:
		for _, line := range rm.collections {
			if line.name == msg.collection {
				line.state = msg.state
			}
		}

	case hashProgressMsg:
		if msg.read >= msg.size {
			delete(rm.progress, msg.path)
		} else {
			rm.progress[msg.path] = fileProgress{read: msg.read, size: msg.size}
		}

	case outputMsg:
		rm.outputs = append(rm.outputs, msg.text)

	case planDiffMsg:
		if rm.mode == ModePlan && msg.text != "" {
			rm.outputs = append(rm.outputs, msg.text)
		}
	}

	return rm, nil
}

func (rm runModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("shepherd"))
	b.WriteString("\n\n")

	for _, line := range rm.collections {
		fmt.Fprintf(&b, "  %-20s %s %s\n", line.name, renderState(line.state), mutedStyle.Render(string(line.archive)))
	}

	paths := make([]m.Path, 0, len(rm.progress))
	for path := range rm.progress {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	if len(paths) > 0 {
		b.WriteString("\n")
	}

	for _, path := range paths {
		p := rm.progress[path]
		fmt.Fprintf(&b, "  %s %s / %s %s\n", rm.bar.ViewAs(float64(p.read)/float64(p.size)),
			humanize.IBytes(p.read), humanize.IBytes(p.size), mutedStyle.Render(string(path)))
	}

	for _, output := range rm.outputs {
		b.WriteString("\n")
		b.WriteString(output)
	}

	return b.String()
}

func renderState(state m.RunState) string {
	switch state {
	case m.StateDone:
		return doneStyle.Render(state.String())
	case m.StateAborted:
		return abortedStyle.Render(state.String())
	default:
		return state.String()
	}
}
