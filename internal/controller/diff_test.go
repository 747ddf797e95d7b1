package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

func testPlan() []m.DuplicateEdge {
	return []m.DuplicateEdge{
		{
			Parent:            "/archive/a.txt",
			Child:             "/archive/b.txt",
			ChildSize:         2048,
			DestinationFolder: "/unstage/archive_a.txt",
			DestinationFile:   "/unstage/archive_a.txt/archive_b.txt",
			Link:              m.LinkCommand{Target: "/archive/a.txt", Name: "/unstage/archive_a.txt/archive_a.txt"},
		},
	}
}

func TestRenderPlanDiff(t *testing.T) {
	diff, err := RenderPlanDiff(testPlan())
	require.NoError(t, err)

	assert.Contains(t, diff, "--- before")
	assert.Contains(t, diff, "+++ after")
	assert.Contains(t, diff, "-/archive/b.txt\n")
	assert.Contains(t, diff, "+/unstage/archive_a.txt/archive_b.txt\n")
	assert.Contains(t, diff, "+/unstage/archive_a.txt/archive_a.txt -> /archive/a.txt\n")
	assert.NotContains(t, diff, "-/archive/a.txt")
}

func TestRenderPlanDiff_Empty(t *testing.T) {
	diff, err := RenderPlanDiff(nil)
	require.NoError(t, err)
	assert.Empty(t, diff)
}
