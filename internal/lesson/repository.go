// Package lesson provides lesson models, persistence and read operations.
package lesson

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/english-companion/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/lesson/mock_repository.go -package=mock_lesson

// Repository defines operations for reading and creating lessons.
type Repository interface {
	FindAll(ctx context.Context) ([]ListItem, error)
	FindByID(ctx context.Context, id int64) (*Lesson, error)
	FindByTitle(ctx context.Context, title string) (*Lesson, error)
	Create(ctx context.Context, lesson *Lesson) error
	Update(ctx context.Context, lesson *Lesson) error
}

// DBRepository implements Repository using sqlx.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns lesson summaries ordered by id.
func (r *DBRepository) FindAll(ctx context.Context) ([]ListItem, error) {
	lessons := []ListItem{}
	if err := r.db.SelectContext(ctx, &lessons,
		"SELECT id, title, difficulty, summary FROM lessons ORDER BY id ASC"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(lessons) > %w", err)
	}
	return lessons, nil
}

// FindByID returns the lesson with its content, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id int64) (*Lesson, error) {
	var lesson Lesson
	err := r.db.GetContext(ctx, &lesson, r.db.Rebind(
		"SELECT id, title, difficulty, summary, content_json, created_at, updated_at FROM lessons WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(lesson) > %w", err)
	}
	return &lesson, nil
}

// FindByTitle returns the first lesson with the given title, or nil if there is none.
func (r *DBRepository) FindByTitle(ctx context.Context, title string) (*Lesson, error) {
	var lesson Lesson
	err := r.db.GetContext(ctx, &lesson, r.db.Rebind(
		"SELECT id, title, difficulty, summary, content_json, created_at, updated_at FROM lessons WHERE title = ? ORDER BY id ASC LIMIT 1"), title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(lesson by title) > %w", err)
	}
	return &lesson, nil
}

// Create inserts a lesson and sets its ID.
func (r *DBRepository) Create(ctx context.Context, lesson *Lesson) error {
	id, err := database.InsertReturningID(ctx, r.db,
		"INSERT INTO lessons (title, difficulty, summary, content_json) VALUES (?, ?, ?, ?)",
		lesson.Title, lesson.Difficulty, lesson.Summary, lesson.ContentJSON)
	if err != nil {
		return fmt.Errorf("insert lesson > %w", err)
	}
	lesson.ID = id
	return nil
}

// Update overwrites the difficulty, summary and content of an existing lesson.
func (r *DBRepository) Update(ctx context.Context, lesson *Lesson) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(
		"UPDATE lessons SET difficulty = ?, summary = ?, content_json = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"),
		lesson.Difficulty, lesson.Summary, lesson.ContentJSON, lesson.ID); err != nil {
		return fmt.Errorf("db.ExecContext(update lesson) > %w", err)
	}
	return nil
}

// NewLesson builds a Lesson whose content document is the JSON encoding of content.
func NewLesson(title, difficulty, summary string, content Content) (*Lesson, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(content) > %w", err)
	}
	return &Lesson{
		Title:       title,
		Difficulty:  difficulty,
		Summary:     summary,
		ContentJSON: raw,
	}, nil
}
