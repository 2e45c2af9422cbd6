// Package testutil provides shared test helpers for creating config files and lesson fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/english-companion/internal/datasync"
	"github.com/at-ishikawa/english-companion/internal/lesson"
)

// SetupTestConfig creates a config file that points at a sqlite3 database inside tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`server:
  port: 3001
  environment: test
database:
  driver: sqlite3
  path: %s
  connect_attempts: 1
logging:
  level: error
`, filepath.Join(tmpDir, "data", "companion.db"))

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// RequireSQLite skips the test when the sqlite3 driver was built without cgo.
func RequireSQLite(t *testing.T) {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		if strings.Contains(err.Error(), "CGO_ENABLED=0") {
			t.Skip("sqlite3 requires cgo")
		}
		require.NoError(t, err)
	}
}

// LessonFixtureOption configures optional fields when creating a lesson fixture.
type LessonFixtureOption func(*datasync.LessonDocument)

// WithGrammarPoint appends a grammar point to the lesson.
func WithGrammarPoint(point, explanation string) LessonFixtureOption {
	return func(doc *datasync.LessonDocument) {
		doc.Content.GrammarPoints = append(doc.Content.GrammarPoints, lesson.GrammarPoint{Point: point, Explanation: explanation})
	}
}

// WithDifficulty overrides the default "beginner" difficulty.
func WithDifficulty(difficulty string) LessonFixtureOption {
	return func(doc *datasync.LessonDocument) {
		doc.Difficulty = difficulty
	}
}

// NewLessonDocument returns a lesson with the greet/run vocabulary pair.
func NewLessonDocument(title string, opts ...LessonFixtureOption) datasync.LessonDocument {
	doc := datasync.LessonDocument{
		Title:      title,
		Difficulty: "beginner",
		Summary:    "Everyday verbs",
		Content: lesson.Content{
			Vocabulary: []lesson.VocabularyEntry{
				{Term: "greet", Definition: "to say hello"},
				{Term: "run", Definition: "to move fast"},
			},
		},
	}
	for _, opt := range opts {
		opt(&doc)
	}
	return doc
}

// CreateLessonFile writes the documents as a lesson fixture file and returns its path.
func CreateLessonFile(t *testing.T, dir, name string, documents ...datasync.LessonDocument) string {
	t.Helper()

	raw, err := yaml.Marshal(datasync.LessonFile{Lessons: documents})
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, raw, 0644))
	return path
}
