package deployments

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, nil)

	assert.Equal(t, "No deployments found.\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	created := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	RenderTable(&buf, []Deployment{
		{
			ID:                "d-stopped1",
			ConfigurationName: "mistral-large",
			Status:            StatusStopped,
			ScenarioID:        "foundation-models",
			CreatedAt:         created,
			ModifiedAt:        created.Add(time.Hour),
		},
		{
			ID:                "d-running1",
			ConfigurationName: "gpt-4o",
			Status:            StatusRunning,
			ScenarioID:        "foundation-models",
			CreatedAt:         created,
			ModifiedAt:        created,
		},
	})

	out := buf.String()

	assert.Contains(t, out, "d-running1")
	assert.Contains(t, out, "d-stopped1")
	assert.Contains(t, out, "gpt-4o")
	assert.Contains(t, out, "2026-01-15 10:30")
	assert.Contains(t, out, "1 running, 1 other")

	// Running deployments are listed before the others.
	assert.Less(t, strings.Index(out, "d-running1"), strings.Index(out, "d-stopped1"))

	// Quick-reference block lists only running IDs.
	assert.Contains(t, out, "Running deployment IDs:")
	ref := out[strings.Index(out, "Running deployment IDs:"):]
	assert.Contains(t, ref, "d-running1")
	assert.NotContains(t, ref, "d-stopped1")
}

func TestRenderTable_NoRunning(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, []Deployment{
		{ID: "d-dead1", ConfigurationName: "old-model", Status: StatusDead, ScenarioID: "foundation-models"},
	})

	out := buf.String()
	assert.Contains(t, out, "0 running, 1 other")
	assert.NotContains(t, out, "Running deployment IDs:")
	assert.Contains(t, out, "-") // zero timestamps render as a dash
}
