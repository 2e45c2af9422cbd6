// Package quiz generates, serves and scores lesson quizzes.
package quiz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/english-companion/internal/database"
	"github.com/at-ishikawa/english-companion/internal/lesson"
)

//go:generate mockgen -source=repository.go -destination=../mocks/quiz/mock_repository.go -package=mock_quiz

// Repository defines persistence for quizzes, their questions and attempts.
type Repository interface {
	FindLatestByLesson(ctx context.Context, lessonID int64) (*Quiz, error)
	FindByID(ctx context.Context, id int64) (*Quiz, error)
	Create(ctx context.Context, lessonID int64) (*Quiz, error)
	FindQuestions(ctx context.Context, quizID int64) ([]Question, error)
	CreateQuestions(ctx context.Context, quizID int64, questions []Question) ([]Question, error)
	CreateAttempt(ctx context.Context, attempt Attempt) (*Attempt, error)
}

// LessonFinder looks up the lesson a quiz is generated from.
type LessonFinder interface {
	FindByID(ctx context.Context, id int64) (*lesson.Lesson, error)
}

// DBRepository implements Repository using sqlx.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindLatestByLesson returns the most recently created quiz for the lesson, or nil if there is none.
func (r *DBRepository) FindLatestByLesson(ctx context.Context, lessonID int64) (*Quiz, error) {
	var quiz Quiz
	err := r.db.GetContext(ctx, &quiz, r.db.Rebind(
		"SELECT id, lesson_id, created_at FROM quizzes WHERE lesson_id = ? ORDER BY id DESC LIMIT 1"), lessonID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(latest quiz) > %w", err)
	}
	return &quiz, nil
}

// FindByID returns the quiz without its questions, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id int64) (*Quiz, error) {
	var quiz Quiz
	err := r.db.GetContext(ctx, &quiz, r.db.Rebind(
		"SELECT id, lesson_id, created_at FROM quizzes WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(quiz) > %w", err)
	}
	return &quiz, nil
}

func (r *DBRepository) Create(ctx context.Context, lessonID int64) (*Quiz, error) {
	id, err := database.InsertReturningID(ctx, r.db, "INSERT INTO quizzes (lesson_id) VALUES (?)", lessonID)
	if err != nil {
		return nil, fmt.Errorf("insert quiz > %w", err)
	}
	quiz, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, fmt.Errorf("quiz %d not found after insert", id)
	}
	return quiz, nil
}

// FindQuestions returns the quiz questions ordered by id.
func (r *DBRepository) FindQuestions(ctx context.Context, quizID int64) ([]Question, error) {
	questions := []Question{}
	if err := r.db.SelectContext(ctx, &questions, r.db.Rebind(
		"SELECT id, quiz_id, prompt, choices, correct_answer FROM quiz_questions WHERE quiz_id = ? ORDER BY id ASC"), quizID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(quiz_questions) > %w", err)
	}
	return questions, nil
}

// CreateQuestions inserts questions in order within one transaction and returns them with their ids.
func (r *DBRepository) CreateQuestions(ctx context.Context, quizID int64, questions []Question) ([]Question, error) {
	created := make([]Question, 0, len(questions))
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, q := range questions {
			id, err := database.InsertReturningID(ctx, tx,
				"INSERT INTO quiz_questions (quiz_id, prompt, choices, correct_answer) VALUES (?, ?, ?, ?)",
				quizID, q.Prompt, q.Choices, q.CorrectAnswer)
			if err != nil {
				return fmt.Errorf("insert quiz question > %w", err)
			}
			q.ID = id
			q.QuizID = quizID
			created = append(created, q)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CreateAttempt records a scored attempt and returns the stored row.
func (r *DBRepository) CreateAttempt(ctx context.Context, attempt Attempt) (*Attempt, error) {
	id, err := database.InsertReturningID(ctx, r.db,
		"INSERT INTO quiz_attempts (quiz_id, user_id, lesson_id, score, total) VALUES (?, ?, ?, ?, ?)",
		attempt.QuizID, attempt.UserID, attempt.LessonID, attempt.Score, attempt.Total)
	if err != nil {
		return nil, fmt.Errorf("insert quiz attempt > %w", err)
	}

	var stored Attempt
	if err := r.db.GetContext(ctx, &stored, r.db.Rebind(
		"SELECT id, quiz_id, user_id, lesson_id, score, total, created_at FROM quiz_attempts WHERE id = ?"), id); err != nil {
		return nil, fmt.Errorf("db.GetContext(quiz attempt) > %w", err)
	}
	return &stored, nil
}
