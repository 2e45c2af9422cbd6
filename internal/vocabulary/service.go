package vocabulary

import (
	"context"
	"fmt"
	"time"

	"github.com/at-ishikawa/english-companion/internal/apierr"
	"github.com/at-ishikawa/english-companion/internal/logger"
)

// Service manages a user's vocabulary and its review schedule.
type Service struct {
	repo   Repository
	logger *logger.Logger
	now    func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source used to compute the next review.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, log *logger.Logger, opts ...Option) *Service {
	s := &Service{repo: repo, logger: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) List(ctx context.Context, userID int64) ([]Item, error) {
	items, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.FindAll(%d) > %w", userID, err))
	}
	return items, nil
}

// Upsert saves the item, overwriting the definition and example of an existing term.
func (s *Service) Upsert(ctx context.Context, item Item) (*Item, error) {
	stored, err := s.repo.Upsert(ctx, item)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.Upsert(%d, %q) > %w", item.UserID, item.Term, err))
	}
	return stored, nil
}

// Review records a pass or fail for a saved term and returns its new schedule.
func (s *Service) Review(ctx context.Context, userID int64, term string, result Result) (*Schedule, error) {
	if !result.Valid() {
		return nil, apierr.Validation("Invalid request", apierr.Detail{
			Path:    []string{"result"},
			Message: "result must be one of [pass fail]",
		})
	}

	item, err := s.repo.Find(ctx, userID, term)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.Find(%d, %q) > %w", userID, term, err))
	}
	if item == nil {
		return nil, apierr.NotFound("Vocabulary term not found for user")
	}

	current, err := s.repo.FindSchedule(ctx, userID, term)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.FindSchedule(%d, %q) > %w", userID, term, err))
	}
	repetition := initialRepetition
	if current != nil {
		repetition = current.Repetition
	}

	intervalDays, repetition := NextSchedule(repetition, result)
	schedule, err := s.repo.UpsertSchedule(ctx, Schedule{
		UserID:       userID,
		Term:         term,
		IntervalDays: intervalDays,
		Repetition:   repetition,
		NextReviewAt: NextReviewAt(s.now(), intervalDays),
	})
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.UpsertSchedule(%d, %q) > %w", userID, term, err))
	}
	s.logger.Debug("term reviewed", "user_id", userID, "term", term, "result", string(result), "interval_days", intervalDays)
	return schedule, nil
}
