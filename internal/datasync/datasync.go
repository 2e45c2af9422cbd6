// Package datasync provides import/export orchestration between YAML lesson files and the database.
package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/english-companion/internal/lesson"
)

// LessonFile is the top-level document of a lesson fixture file.
type LessonFile struct {
	Lessons []LessonDocument `yaml:"lessons"`
}

// LessonDocument is one lesson as written in YAML.
type LessonDocument struct {
	Title      string         `yaml:"title"`
	Difficulty string         `yaml:"difficulty"`
	Summary    string         `yaml:"summary"`
	Content    lesson.Content `yaml:"content"`
}

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	LessonsNew     int
	LessonsSkipped int
	LessonsUpdated int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer writes lesson documents to the database. Lessons are matched by title.
type Importer struct {
	lessonRepo lesson.Repository
	writer     io.Writer
}

func NewImporter(lessonRepo lesson.Repository, writer io.Writer) *Importer {
	return &Importer{
		lessonRepo: lessonRepo,
		writer:     writer,
	}
}

// ImportLessons imports every document in order. The first failure stops the import.
func (imp *Importer) ImportLessons(ctx context.Context, documents []LessonDocument, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult
	for i, doc := range documents {
		if doc.Title == "" {
			return nil, fmt.Errorf("lessons[%d]: title is required", i)
		}
		if err := imp.importLesson(ctx, doc, opts, &result); err != nil {
			return nil, fmt.Errorf("importLesson(%s) > %w", doc.Title, err)
		}
	}
	return &result, nil
}

func (imp *Importer) importLesson(ctx context.Context, doc LessonDocument, opts ImportOptions, result *ImportResult) error {
	incoming, err := lesson.NewLesson(doc.Title, doc.Difficulty, doc.Summary, doc.Content)
	if err != nil {
		return fmt.Errorf("lesson.NewLesson() > %w", err)
	}

	existing, err := imp.lessonRepo.FindByTitle(ctx, doc.Title)
	if err != nil {
		return fmt.Errorf("FindByTitle(%s) > %w", doc.Title, err)
	}

	if existing == nil {
		if !opts.DryRun {
			if err := imp.lessonRepo.Create(ctx, incoming); err != nil {
				return fmt.Errorf("Create() > %w", err)
			}
		}
		fmt.Fprintf(imp.writer, "  [NEW]  %q (%s)\n", doc.Title, doc.Difficulty)
		result.LessonsNew++
		return nil
	}

	if !opts.UpdateExisting {
		fmt.Fprintf(imp.writer, "  [SKIP]  %q (%s)\n", doc.Title, doc.Difficulty)
		result.LessonsSkipped++
		return nil
	}

	existing.Difficulty = incoming.Difficulty
	existing.Summary = incoming.Summary
	existing.ContentJSON = incoming.ContentJSON
	if !opts.DryRun {
		if err := imp.lessonRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("Update() > %w", err)
		}
	}
	fmt.Fprintf(imp.writer, "  [UPDATE]  %q (%s)\n", doc.Title, doc.Difficulty)
	result.LessonsUpdated++
	return nil
}

// Exporter reads lessons from the database into lesson documents.
type Exporter struct {
	lessonRepo lesson.Repository
}

func NewExporter(lessonRepo lesson.Repository) *Exporter {
	return &Exporter{lessonRepo: lessonRepo}
}

// Export returns every stored lesson ordered by id, with its content decoded.
func (e *Exporter) Export(ctx context.Context) (*LessonFile, error) {
	items, err := e.lessonRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAll() > %w", err)
	}

	file := LessonFile{Lessons: make([]LessonDocument, 0, len(items))}
	for _, item := range items {
		l, err := e.lessonRepo.FindByID(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("FindByID(%d) > %w", item.ID, err)
		}
		if l == nil {
			// deleted between the two reads
			continue
		}
		file.Lessons = append(file.Lessons, LessonDocument{
			Title:      l.Title,
			Difficulty: l.Difficulty,
			Summary:    l.Summary,
			Content:    l.Content(),
		})
	}
	return &file, nil
}
