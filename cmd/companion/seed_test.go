package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/english-companion/internal/datasync"
	"github.com/at-ishikawa/english-companion/internal/testutil"
)

func TestSeedLessons_SQLite(t *testing.T) {
	testutil.RequireSQLite(t)

	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	fixture := testutil.CreateLessonFile(t, tmpDir, "lessons.yml",
		testutil.NewLessonDocument("Verbs", testutil.WithGrammarPoint("Present simple", "")))

	out, err := executeCommand(t, "--config", cfgPath, "migrate", "up")
	require.NoError(t, err)
	assert.Equal(t, "Migrated: version 1\n", out)

	out, err = executeCommand(t, "--config", cfgPath, "seed", "lessons", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "  [NEW]  \"Verbs\" (beginner)\n")
	assert.Contains(t, out, "  Lessons: 1 new, 0 skipped, 0 updated\n")

	out, err = executeCommand(t, "--config", cfgPath, "seed", "lessons", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "  [SKIP]  \"Verbs\" (beginner)\n")

	exported := filepath.Join(tmpDir, "export", "lessons.yml")
	out, err = executeCommand(t, "--config", cfgPath, "seed", "export", exported)
	require.NoError(t, err)
	assert.Equal(t, "Exported 1 lessons to "+exported+"\n", out)

	file, err := datasync.ReadLessonFile(exported)
	require.NoError(t, err)
	require.Len(t, file.Lessons, 1)
	assert.Equal(t, "Verbs", file.Lessons[0].Title)
	assert.Equal(t, "Present simple", file.Lessons[0].Content.GrammarPoints[0].Point)

	out, err = executeCommand(t, "--config", cfgPath, "migrate", "down")
	require.NoError(t, err)
	assert.Equal(t, "Rolled back: no migrations applied\n", out)
}

func TestSeedLessons_InvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	_, err := executeCommand(t, "--config", cfgPath, "seed", "lessons", filepath.Join(tmpDir, "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "datasync.ReadLessonFile()")
}
