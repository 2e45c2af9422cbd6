// Package vocabulary stores user vocabulary and schedules term reviews.
package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/english-companion/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/vocabulary/mock_repository.go -package=mock_vocabulary

// Repository defines persistence for vocabulary items and their review schedules.
type Repository interface {
	FindAll(ctx context.Context, userID int64) ([]Item, error)
	Find(ctx context.Context, userID int64, term string) (*Item, error)
	Upsert(ctx context.Context, item Item) (*Item, error)
	FindSchedule(ctx context.Context, userID int64, term string) (*Schedule, error)
	UpsertSchedule(ctx context.Context, schedule Schedule) (*Schedule, error)
}

// DBRepository implements Repository using sqlx.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns the user's vocabulary ordered by term.
func (r *DBRepository) FindAll(ctx context.Context, userID int64) ([]Item, error) {
	items := []Item{}
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(
		"SELECT id, user_id, term, definition, example, created_at, updated_at FROM vocabulary WHERE user_id = ? ORDER BY term ASC"), userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(vocabulary) > %w", err)
	}
	return items, nil
}

// Find returns the item for (userID, term), or nil if not found.
func (r *DBRepository) Find(ctx context.Context, userID int64, term string) (*Item, error) {
	var item Item
	err := r.db.GetContext(ctx, &item, r.db.Rebind(
		"SELECT id, user_id, term, definition, example, created_at, updated_at FROM vocabulary WHERE user_id = ? AND term = ?"), userID, term)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(vocabulary) > %w", err)
	}
	return &item, nil
}

// Upsert inserts the item or overwrites the definition and example of an existing one.
func (r *DBRepository) Upsert(ctx context.Context, item Item) (*Item, error) {
	query := "INSERT INTO vocabulary (user_id, term, definition, example) VALUES (?, ?, ?, ?) " +
		database.OnConflictUpdate(r.db.DriverName(), []string{"user_id", "term"}, []string{"definition", "example"})
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), item.UserID, item.Term, item.Definition, item.Example); err != nil {
		return nil, fmt.Errorf("db.ExecContext(upsert vocabulary) > %w", err)
	}

	stored, err := r.Find(ctx, item.UserID, item.Term)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("vocabulary %q not found after upsert", item.Term)
	}
	return stored, nil
}

// FindSchedule returns the review schedule for (userID, term), or nil if the term was never reviewed.
func (r *DBRepository) FindSchedule(ctx context.Context, userID int64, term string) (*Schedule, error) {
	var schedule Schedule
	err := r.db.GetContext(ctx, &schedule, r.db.Rebind(
		"SELECT user_id, term, interval_days, repetition, next_review_at, updated_at FROM review_schedules WHERE user_id = ? AND term = ?"), userID, term)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(review_schedule) > %w", err)
	}
	return &schedule, nil
}

// UpsertSchedule writes the schedule and returns the stored row.
func (r *DBRepository) UpsertSchedule(ctx context.Context, schedule Schedule) (*Schedule, error) {
	query := "INSERT INTO review_schedules (user_id, term, interval_days, repetition, next_review_at) VALUES (?, ?, ?, ?, ?) " +
		database.OnConflictUpdate(r.db.DriverName(), []string{"user_id", "term"}, []string{"interval_days", "repetition", "next_review_at"})
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		schedule.UserID, schedule.Term, schedule.IntervalDays, schedule.Repetition, schedule.NextReviewAt.UTC()); err != nil {
		return nil, fmt.Errorf("db.ExecContext(upsert review_schedule) > %w", err)
	}

	stored, err := r.FindSchedule(ctx, schedule.UserID, schedule.Term)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("review schedule %q not found after upsert", schedule.Term)
	}
	return stored, nil
}
