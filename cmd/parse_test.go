package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PrintsSummary(t *testing.T) {
	inTempDir(t)
	writeSampleProject(t, "project.xml")

	var buf bytes.Buffer
	require.NoError(t, RunParse(&buf, "project.xml", false, false))

	out := buf.String()
	assert.Contains(t, out, "Coffee machine")
	assert.Contains(t, out, "Brewing, tested")
	assert.Contains(t, out, "2 scenarios, 1 actionwords")
}

func TestParse_TreeDumpsNodes(t *testing.T) {
	inTempDir(t)
	writeSampleProject(t, "project.xml")

	var buf bytes.Buffer
	require.NoError(t, RunParse(&buf, "project.xml", false, true))

	out := buf.String()
	assert.Contains(t, out, "Project")
	assert.Contains(t, out, "Scenario")
	assert.Contains(t, out, "Call")
	assert.Contains(t, out, "Brew espresso")
}

func TestParse_VerbosePrintsSkippedElements(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("broken.xml", []byte(`<project>
		<name>p</name>
		<description></description>
		<scenarios>
			<scenario>
				<name>broken</name>
				<steps><wobble/></steps>
			</scenario>
		</scenarios>
		<actionwords></actionwords>
	</project>`), 0o644))

	var buf bytes.Buffer
	require.NoError(t, RunParse(&buf, "broken.xml", true, false))

	out := buf.String()
	assert.Contains(t, out, "wobble")
	assert.Contains(t, out, "skipped")
}

func TestParse_QuietDropsSkippedElements(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("broken.xml", []byte(`<project>
		<name>p</name>
		<description></description>
		<scenarios>
			<scenario>
				<name>broken</name>
				<steps><wobble/></steps>
			</scenario>
		</scenarios>
		<actionwords></actionwords>
	</project>`), 0o644))

	var buf bytes.Buffer
	require.NoError(t, RunParse(&buf, "broken.xml", false, false))

	assert.NotContains(t, buf.String(), "wobble")
}

func TestParse_MissingFile(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunParse(&buf, "nope.xml", false, false)

	require.Error(t, err)
}

func TestParse_MissingTopLevelSectionFails(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("partial.xml", []byte(`<project>
		<name>p</name>
		<description></description>
		<scenarios></scenarios>
	</project>`), 0o644))

	var buf bytes.Buffer
	err := RunParse(&buf, "partial.xml", false, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "actionwords")
}
