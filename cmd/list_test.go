package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runList(t *testing.T, actionwords bool) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunList(&buf, actionwords))
	return buf.String()
}

func TestList_RequiresInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunList(&buf, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "htp init")
}

func TestList_ShowsIndexedScenarios(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeSampleProject(t, "project.xml")
	runSync(t, "project.xml")

	out := runList(t, false)

	assert.Contains(t, out, "Coffee machine")
	assert.Contains(t, out, "Brew espresso")
	assert.Contains(t, out, "Empty grounds")
	assert.NotContains(t, out, "brew ")
}

func TestList_ActionwordsFlag(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeSampleProject(t, "project.xml")
	runSync(t, "project.xml")

	out := runList(t, true)

	assert.Contains(t, out, "brew")
	assert.NotContains(t, out, "Brew espresso")
}

func TestList_EmptyIndexPrintsNothing(t *testing.T) {
	inTempDir(t)
	runInit(t)

	out := runList(t, false)

	assert.Empty(t, out)
}
