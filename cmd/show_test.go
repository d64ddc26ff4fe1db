package cmd

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel-kun/hiptest-publisher/internal/db"
)

func TestShow_RendersScenarioTree(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeSampleProject(t, "project.xml")
	runSync(t, "project.xml")

	sqlDB, err := db.Open("htp.db")
	require.NoError(t, err)
	var id int64
	require.NoError(t, sqlDB.QueryRow(`SELECT id FROM scenarios WHERE name = ?`, "Brew espresso").Scan(&id))
	sqlDB.Close()

	var buf bytes.Buffer
	require.NoError(t, RunShow(&buf, strconv.FormatInt(id, 10)))

	out := buf.String()
	assert.Contains(t, out, "Brew espresso")
	assert.Contains(t, out, "Call")
	assert.Contains(t, out, "start machine")
	assert.Contains(t, out, "espresso")
}

func TestShow_InvalidID(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunShow(&buf, "abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario ID")
}

func TestShow_UnknownID(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	err := RunShow(&buf, "42")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
