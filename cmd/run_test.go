package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	controllermocks "shepherd.dev/pkg/shepherd/internal/controller/mocks"
	"shepherd.dev/pkg/shepherd/internal/domain"
	domainmocks "shepherd.dev/pkg/shepherd/internal/domain/mocks"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

// stubPipeline replaces the orchestrator factory and the UI for one test.
type stubPipeline struct {
	orchestrator *domainmocks.MockCollectionOrchestrator
	ui           *controllermocks.MockUI
	config       m.Config
	dryRun       bool
}

func newStubPipeline(t *testing.T) *stubPipeline {
	t.Helper()

	stub := &stubPipeline{
		orchestrator: domainmocks.NewMockCollectionOrchestrator(t),
		ui:           controllermocks.NewMockUI(t),
	}

	originalFactory, originalUI := newOrchestrator, ui
	t.Cleanup(func() { newOrchestrator, ui = originalFactory, originalUI })

	newOrchestrator = func(_ context.Context, config m.Config, dryRun bool) (domain.CollectionOrchestrator, error) {
		stub.config = config
		stub.dryRun = dryRun

		return stub.orchestrator, nil
	}
	ui = stub.ui

	stub.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Maybe()
	stub.ui.EXPECT().Close(mock.Anything).Return().Maybe()

	return stub
}

func (s *stubPipeline) expectRun(name string, err error) {
	matches := mock.MatchedBy(func(c m.Collection) bool { return c.Name == name })

	s.orchestrator.EXPECT().Run(mock.Anything, matches).
		RunAndReturn(func(_ context.Context, c m.Collection) (m.RunReport, error) {
			return m.RunReport{Collection: c}, err
		}).Once()

	s.ui.EXPECT().DisplayReport(mock.Anything, mock.MatchedBy(func(r m.RunReport) bool {
		return r.Collection.Name == name
	}), err).Return(nil).Once()
}

func executeCommand(t *testing.T, sub *cobra.Command, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	logFile := filepath.Join(t.TempDir(), defaultLogFilename)
	cmd.SetArgs(append(args, "--"+logFlagName, logFile))

	return cmd.Execute()
}

func TestRunCmd_RunsEveryCollection(t *testing.T) {
	withCollections(t, map[string]any{
		"music":  map[string]any{"archive": "/data/music"},
		"photos": map[string]any{"archive": "/data/photos"},
	})

	stub := newStubPipeline(t)
	stub.expectRun("music", nil)
	stub.expectRun("photos", nil)

	err := executeCommand(t, newRunCmd(), "run")
	require.NoError(t, err)

	assert.False(t, stub.dryRun)
	assert.Len(t, stub.config.Collections, 2)
}

func TestRunCmd_SelectedCollection(t *testing.T) {
	withCollections(t, map[string]any{
		"music":  map[string]any{"archive": "/data/music"},
		"photos": map[string]any{"archive": "/data/photos"},
	})

	stub := newStubPipeline(t)
	stub.expectRun("photos", nil)

	err := executeCommand(t, newRunCmd(), "run", "PHOTOS")
	require.NoError(t, err)
}

func TestRunCmd_FlagsOverrideConfig(t *testing.T) {
	withCollections(t, map[string]any{"photos": map[string]any{}})

	stub := newStubPipeline(t)
	stub.expectRun("photos", nil)

	err := executeCommand(t, newRunCmd(), "run", "--algorithm", "sha1", "--min-size", "10", "--max-size", "4096", "-p", "2")
	require.NoError(t, err)

	assert.Equal(t, m.HashSHA1, stub.config.Hash.Algorithm)
	assert.Equal(t, uint64(10), stub.config.Hash.MinSize)
	assert.Equal(t, uint64(4096), stub.config.Hash.MaxSize)
	assert.Equal(t, 2, viper.GetInt(runParallelConfigKey))
}

func TestRunCmd_InvalidAlgorithm(t *testing.T) {
	withCollections(t, map[string]any{"photos": map[string]any{}})

	newStubPipeline(t)

	err := executeCommand(t, newRunCmd(), "run", "--algorithm", "crc32")
	assert.ErrorIs(t, err, m.ErrUnknownHashAlgorithm)
}

func TestRunCmd_UnknownCollection(t *testing.T) {
	withCollections(t, map[string]any{"photos": map[string]any{}})

	newStubPipeline(t)

	err := executeCommand(t, newRunCmd(), "run", "books")
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "books")
}

func TestRunCmd_NoCollections(t *testing.T) {
	withCollections(t, map[string]any{})

	newStubPipeline(t)

	err := executeCommand(t, newRunCmd(), "run")
	assert.ErrorIs(t, err, m.ErrInvalidConfig)
}

func TestRunCmd_FailureDoesNotStopOtherCollections(t *testing.T) {
	withCollections(t, map[string]any{
		"music":  map[string]any{"archive": "/data/music"},
		"photos": map[string]any{"archive": "/data/photos"},
	})

	boom := m.IOError("relocate", "/data/music/a.mp3", errors.New("boom"))

	stub := newStubPipeline(t)
	stub.expectRun("music", boom)
	stub.expectRun("photos", nil)

	err := executeCommand(t, newRunCmd(), "run", "--parallel", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "collection music")
	assert.NotContains(t, err.Error(), "collection photos")
}

func TestRunCmd_StoresResolvedPaths(t *testing.T) {
	withCollections(t, map[string]any{"photos": map[string]any{}})

	stub := newStubPipeline(t)
	stub.orchestrator.EXPECT().Run(mock.Anything, mock.Anything).
		Return(m.RunReport{Collection: m.Collection{Name: "photos", Archive: "/home/u/_SHEPHERD/photos/archive"}}, nil)
	stub.ui.EXPECT().DisplayReport(mock.Anything, mock.Anything, nil).Return(nil)

	err := executeCommand(t, newRunCmd(), "run")
	require.NoError(t, err)

	assert.Equal(t, "/home/u/_SHEPHERD/photos/archive", viper.GetString("collections.photos.archive"))
}

func TestRunCmd_UIStartFailure(t *testing.T) {
	withCollections(t, map[string]any{"photos": map[string]any{}})

	originalFactory, originalUI := newOrchestrator, ui
	t.Cleanup(func() { newOrchestrator, ui = originalFactory, originalUI })

	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(errors.New("no terminal"))
	ui = mockUI

	newOrchestrator = func(context.Context, m.Config, bool) (domain.CollectionOrchestrator, error) {
		return domainmocks.NewMockCollectionOrchestrator(t), nil
	}

	err := executeCommand(t, newRunCmd(), "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start ui")
}
