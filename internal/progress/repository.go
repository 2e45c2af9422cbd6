// Package progress aggregates per-user learning statistics.
package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/english-companion/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/progress/mock_repository.go -package=mock_progress

type Repository interface {
	SumAttempts(ctx context.Context, userID int64) (AttemptTotals, error)
	CountVocabulary(ctx context.Context, userID int64) (int64, error)
	UpsertSummary(ctx context.Context, summary Summary) (*Summary, error)
}

// DBRepository implements Repository using sqlx.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) SumAttempts(ctx context.Context, userID int64) (AttemptTotals, error) {
	var totals AttemptTotals
	if err := r.db.GetContext(ctx, &totals, r.db.Rebind(
		"SELECT COUNT(*) AS attempts_count, COALESCE(SUM(score), 0) AS total_correct, COALESCE(SUM(total), 0) AS total_questions "+
			"FROM quiz_attempts WHERE user_id = ?"), userID); err != nil {
		return AttemptTotals{}, fmt.Errorf("db.GetContext(quiz_attempts totals) > %w", err)
	}
	return totals, nil
}

func (r *DBRepository) CountVocabulary(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(
		"SELECT COUNT(*) FROM vocabulary WHERE user_id = ?"), userID); err != nil {
		return 0, fmt.Errorf("db.GetContext(vocabulary count) > %w", err)
	}
	return count, nil
}

// UpsertSummary overwrites the user's summary and returns the stored row.
func (r *DBRepository) UpsertSummary(ctx context.Context, summary Summary) (*Summary, error) {
	query := "INSERT INTO progress_summaries (user_id, attempts_count, total_correct, total_questions, accuracy, vocab_count) VALUES (?, ?, ?, ?, ?, ?) " +
		database.OnConflictUpdate(r.db.DriverName(), []string{"user_id"},
			[]string{"attempts_count", "total_correct", "total_questions", "accuracy", "vocab_count"})
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		summary.UserID, summary.AttemptsCount, summary.TotalCorrect, summary.TotalQuestions, summary.Accuracy, summary.VocabCount); err != nil {
		return nil, fmt.Errorf("db.ExecContext(upsert progress_summary) > %w", err)
	}

	var stored Summary
	err := r.db.GetContext(ctx, &stored, r.db.Rebind(
		"SELECT user_id, attempts_count, total_correct, total_questions, accuracy, vocab_count, updated_at FROM progress_summaries WHERE user_id = ?"),
		summary.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("progress summary for user %d not found after upsert", summary.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(progress_summary) > %w", err)
	}
	return &stored, nil
}
