package controller

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

func update(t *testing.T, model runModel, msg tea.Msg) runModel {
	t.Helper()

	next, _ := model.Update(msg)

	updated, ok := next.(runModel)
	require.True(t, ok)

	return updated
}

func TestRunModel_Collections(t *testing.T) {
	model := newRunModel(ModeRun)
	model = update(t, model, collectionStartMsg{collection: m.Collection{Name: "photos", Archive: "/archive"}})
	model = update(t, model, stateChangeMsg{collection: "photos", state: m.StateHashed})

	view := model.View()
	assert.Contains(t, view, "shepherd")
	assert.Contains(t, view, "photos")
	assert.Contains(t, view, "hashed")
	assert.Contains(t, view, "/archive")
}

func TestRunModel_HashProgress(t *testing.T) {
	model := newRunModel(ModeRun)
	model = update(t, model, hashProgressMsg{path: "/archive/big.iso", read: 512, size: 2048})

	assert.Contains(t, model.View(), "512 B / 2.0 KiB")

	model = update(t, model, hashProgressMsg{path: "/archive/big.iso", read: 2048, size: 2048})
	assert.NotContains(t, model.View(), "/archive/big.iso")
}

func TestRunModel_PlanDiffOnlyInPlanMode(t *testing.T) {
	diff := planDiffMsg{text: "+++ after"}

	run := update(t, newRunModel(ModeRun), diff)
	assert.NotContains(t, run.View(), "+++ after")

	plan := update(t, newRunModel(ModePlan), diff)
	assert.Contains(t, plan.View(), "+++ after")

	plan = update(t, plan, outputMsg{text: "report table"})
	assert.Contains(t, plan.View(), "report table")
}

func TestRunModel_CtrlCQuits(t *testing.T) {
	next, cmd := newRunModel(ModeRun).Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.True(t, next.(runModel).quitting)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTUI_NotStarted(t *testing.T) {
	var output bytes.Buffer

	ui := NewTUI(&output)
	ctx := context.Background()

	// Messages before Start are dropped.
	ui.DisplayStateChange(ctx, "photos", m.StateInit, m.StateDone)
	require.NoError(t, ui.DisplayPlan(ctx, m.Collection{Name: "photos"}, testPlan()))
	ui.Close(ctx)
	ui.Wait(ctx)

	metadata := m.NewCollectionMetadata(m.Collection{Name: "photos"})
	metadata.AddFiles(map[m.Path]m.FileRecord{"/archive/a.txt": {Path: "/archive/a.txt", Size: 1}})

	require.NoError(t, ui.DisplayMetadata(ctx, metadata))
	assert.Contains(t, output.String(), "/archive/a.txt")
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
