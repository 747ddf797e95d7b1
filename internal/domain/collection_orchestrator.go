package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"shepherd.dev/pkg/shepherd/internal/adapter"
	"shepherd.dev/pkg/shepherd/internal/controller"
	m "shepherd.dev/pkg/shepherd/internal/model"
	"shepherd.dev/pkg/shepherd/pkg"
)

// CollectionOrchestrator drives one collection through the pipeline.
type CollectionOrchestrator interface {
	Run(ctx context.Context, c m.Collection) (m.RunReport, error)
}

// JournalOpener opens the journal recording executed relocations.
type JournalOpener func(path string) (pkg.Journal[m.DuplicateEdge], error)

// OrchestratorOption configures a CollectionOrchestrator.
type OrchestratorOption func(*collectionOrchestrator)

// WithDryRun stops after planning. Nothing is moved and no link is created.
func WithDryRun() OrchestratorOption {
	return func(o *collectionOrchestrator) {
		o.dryRun = true
	}
}

// WithMetadataStore saves the collection metadata into the report directory after each run.
func WithMetadataStore(store adapter.MetadataStore) OrchestratorOption {
	return func(o *collectionOrchestrator) {
		o.store = store
	}
}

// WithJournal replaces how the relocation journal is opened.
func WithJournal(open JournalOpener) OrchestratorOption {
	return func(o *collectionOrchestrator) {
		o.openJournal = open
	}
}

type collectionOrchestrator struct {
	Preflight
	Scanner
	Hasher
	Relocator
	SourceStager
	indexer     Indexer
	selector    Selector
	planner     Planner
	ui          controller.UI
	store       adapter.MetadataStore
	openJournal JournalOpener
	config      m.Config
	dryRun      bool
}

// NewCollectionOrchestrator wires the pipeline stages. The configuration is copied and
// must have passed Validate.
func NewCollectionOrchestrator(
	config m.Config,
	ui controller.UI,
	preflight Preflight,
	scanner Scanner,
	hasher Hasher,
	relocator Relocator,
	stager SourceStager,
	options ...OrchestratorOption,
) CollectionOrchestrator {
	o := &collectionOrchestrator{
		Preflight:    preflight,
		Scanner:      scanner,
		Hasher:       hasher,
		Relocator:    relocator,
		SourceStager: stager,
		indexer:      NewIndexer(),
		selector:     NewSelector(config.SortDuplicateHierarchy),
		planner:      NewPlanner(),
		ui:           ui,
		openJournal:  pkg.OpenJournal[m.DuplicateEdge],
		config:       config,
	}

	for _, option := range options {
		option(o)
	}

	return o
}

// collectionRun is the state of a single Run call.
type collectionRun struct {
	state    m.RunState
	report   m.RunReport
	metadata *m.CollectionMetadata
}

// Run executes the state machine for c. On error the report holds what was done so far and
// its state is StateAborted. Any failure while hashing or relocating aborts the whole run.
func (o *collectionOrchestrator) Run(ctx context.Context, c m.Collection) (m.RunReport, error) {
	started := time.Now()
	run := &collectionRun{
		state:    m.StateInit,
		metadata: m.NewCollectionMetadata(c),
	}
	run.report.Collection = c
	run.report.DryRun = o.dryRun
	run.report.SetState(m.StateInit)

	o.ui.DisplayCollectionStart(ctx, c)
	slog.Info("collection run started", "collection", c.Name, "dry_run", o.dryRun)

	err := o.execute(ctx, run)
	if err != nil {
		slog.Error("collection run aborted", "collection", c.Name, "state", run.state, "error", err)

		if !run.state.Terminal() {
			_ = o.transition(ctx, run, m.StateAborted)
		}
	}

	o.saveMetadata(ctx, run)

	run.report.Duration = time.Since(started)
	slog.Info("collection run finished", "collection", c.Name, "state", run.state,
		"relocated", run.report.Relocated, "duration", run.report.Duration)

	return run.report, err
}

func (o *collectionOrchestrator) execute(ctx context.Context, run *collectionRun) error {
	steps := []func(context.Context, *collectionRun) error{
		o.validatePaths,
		o.scanArchive,
		o.hashArchive,
		o.indexArchive,
	}

	for _, step := range steps {
		if err := step(ctx, run); err != nil {
			return err
		}
	}

	if run.metadata.Valid() {
		return o.stageSource(ctx, run)
	}

	return o.unstage(ctx, run)
}

func (o *collectionOrchestrator) validatePaths(ctx context.Context, run *collectionRun) error {
	if err := o.Check(ctx); err != nil {
		return err
	}

	resolved, err := o.ValidatePaths(ctx, run.metadata.Collection)
	if err != nil {
		return err
	}

	run.metadata.Collection = resolved
	run.report.Collection = resolved

	return o.transition(ctx, run, m.StatePathsValidated)
}

func (o *collectionOrchestrator) scanArchive(ctx context.Context, run *collectionRun) error {
	archive := run.metadata.Collection.Archive

	result, err := o.Scan(ctx, archive, o.config.SkipSoftLinks)
	if err != nil {
		return err
	}

	run.report.FilesScanned = len(result.Files)
	run.report.FilesSkipped = len(result.Skipped)

	if len(result.Files) == 0 {
		return m.PreconditionError("scan archive", archive, m.ErrEmptyArchive)
	}

	run.metadata.AddFiles(result.Files)

	return o.transition(ctx, run, m.StateArchiveScanned)
}

func (o *collectionOrchestrator) hashArchive(ctx context.Context, run *collectionRun) error {
	files := make(map[m.Path]m.FileRecord, len(run.metadata.Files))
	for path, record := range run.metadata.Files {
		files[path] = *record
	}

	selection := selectForHashing(files, o.config.Hash)
	run.report.FilesOutOfBand = selection.outOfBand
	run.report.UniqueFiles = selection.uniqueSize

	slog.Debug("hashing archive", "collection", run.metadata.Collection.Name,
		"candidates", len(selection.candidates), "out_of_band", selection.outOfBand,
		"unique_size", selection.uniqueSize)

	hashes, err := hashFiles(ctx, o.Hasher, selection.candidates, o.config.Hash.WorkerCount())
	if err != nil {
		return err
	}

	for _, record := range selection.candidates {
		if err := run.metadata.SetHash(record.Path, hashes[record.Path]); err != nil {
			return err
		}

		run.report.FilesHashed++
		run.report.BytesHashed += record.Size
	}

	return o.transition(ctx, run, m.StateHashed)
}

func (o *collectionOrchestrator) indexArchive(ctx context.Context, run *collectionRun) error {
	hashes := run.metadata.Hashes()

	clusters, err := o.indexer.Index(hashes)
	if err != nil {
		return err
	}

	unique, err := Partition(hashes, clusters)
	if err != nil {
		return err
	}

	run.report.UniqueFiles += len(unique)
	run.report.Clusters = len(clusters)

	keys := make([]m.Path, 0, len(clusters))
	for key := range clusters {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		cluster := clusters[key]
		for _, member := range cluster.Members {
			if run.metadata.Files[member].IsSymlink {
				cluster.Links = append(cluster.Links, member)
			}
		}

		parent, children, err := o.selector.Select(cluster)
		if err != nil {
			return err
		}

		parentRecord := run.metadata.Files[parent]

		for _, child := range children {
			childRecord := run.metadata.Files[child]

			run.metadata.AddEdge(m.DuplicateEdge{
				Parent:     parent,
				ParentHash: parentRecord.Hash,
				ParentSize: parentRecord.Size,
				Child:      child,
				ChildHash:  childRecord.Hash,
				ChildSize:  childRecord.Size,
			})
		}
	}

	run.report.Parents = run.metadata.ParentCount()
	run.report.Children = run.metadata.ChildCount()

	return o.transition(ctx, run, m.StateIndexed)
}

func (o *collectionOrchestrator) stageSource(ctx context.Context, run *collectionRun) error {
	if err := o.transition(ctx, run, m.StateClean); err != nil {
		return err
	}

	stage, err := o.Stage(ctx, run.metadata.Collection, run.metadata)
	if err != nil {
		return err
	}

	run.report.Stage = &stage

	if err := o.transition(ctx, run, m.StateSourceStaged); err != nil {
		return err
	}

	return o.transition(ctx, run, m.StateDone)
}

func (o *collectionOrchestrator) unstage(ctx context.Context, run *collectionRun) error {
	if err := o.transition(ctx, run, m.StateDuplicatesFound); err != nil {
		return err
	}

	unstageRoot := run.metadata.Collection.Unstage

	for _, edge := range run.metadata.Edges() {
		if err := run.metadata.UpdateEdge(o.planner.Plan(edge, unstageRoot)); err != nil {
			return err
		}
	}

	run.report.Plan = run.metadata.Edges()

	if err := o.ui.DisplayPlan(ctx, run.metadata.Collection, run.report.Plan); err != nil {
		slog.Warn("failed to display plan", "collection", run.metadata.Collection.Name, "error", err)
	}

	if o.dryRun {
		return o.transition(ctx, run, m.StateDone)
	}

	journal, err := o.journal(run.metadata.Collection)
	if err != nil {
		return err
	}

	if journal != nil {
		defer func() {
			_ = journal.Close()
		}()
	}

	for _, edge := range run.report.Plan {
		if err := o.Execute(ctx, edge); err != nil {
			return fmt.Errorf("relocate %s: %w", edge.Child, err)
		}

		run.metadata.RemoveEdge(edge)
		run.report.Relocated++
		run.report.BytesReclaimed += edge.ChildSize

		if journal != nil {
			if err := journal.Append(edge); err != nil {
				return m.IOError("journal", m.Path(journal.Path()), err)
			}
		}
	}

	if err := o.transition(ctx, run, m.StateUnstaged); err != nil {
		return err
	}

	return o.transition(ctx, run, m.StateDone)
}

func (o *collectionOrchestrator) transition(ctx context.Context, run *collectionRun, next m.RunState) error {
	if !run.state.CanTransition(next) {
		return m.InvariantError("transition", "", fmt.Errorf("%s -> %s is not allowed", run.state, next))
	}

	from := run.state
	run.state = next
	run.report.SetState(next)

	slog.Debug("state changed", "collection", run.metadata.Collection.Name, "from", from, "to", next)
	o.ui.DisplayStateChange(ctx, run.metadata.Collection.Name, from, next)

	return nil
}

func (o *collectionOrchestrator) journal(c m.Collection) (pkg.Journal[m.DuplicateEdge], error) {
	if o.config.ReportDir == "" || o.openJournal == nil {
		return nil, nil
	}

	path := JournalPath(o.config.ReportDir, c.Name)

	journal, err := o.openJournal(string(path))
	if err != nil {
		return nil, m.IOError("open journal", path, err)
	}

	return journal, nil
}

func (o *collectionOrchestrator) saveMetadata(ctx context.Context, run *collectionRun) {
	if o.store == nil || o.config.ReportDir == "" {
		return
	}

	path := MetadataPath(o.config.ReportDir, run.metadata.Collection.Name)
	if err := o.store.Save(ctx, path, run.metadata); err != nil {
		slog.Error("failed to save metadata", "collection", run.metadata.Collection.Name, "path", path, "error", err)
	}
}

// MetadataPath is where the metadata of a collection is saved inside the report directory.
func MetadataPath(reportDir m.Path, collection string) m.Path {
	return m.Path(filepath.Join(string(reportDir), collection+".metadata.yaml"))
}

// JournalPath is where the executed relocations of a collection are recorded.
func JournalPath(reportDir m.Path, collection string) m.Path {
	return m.Path(filepath.Join(string(reportDir), collection+".journal"))
}
