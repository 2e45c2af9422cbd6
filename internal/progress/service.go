package progress

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/english-companion/internal/apierr"
)

// Service recomputes progress summaries from attempts and vocabulary.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get recomputes the user's summary, stores it and returns the stored row.
func (s *Service) Get(ctx context.Context, userID int64) (*Summary, error) {
	totals, err := s.repo.SumAttempts(ctx, userID)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.SumAttempts(%d) > %w", userID, err))
	}
	vocabCount, err := s.repo.CountVocabulary(ctx, userID)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.CountVocabulary(%d) > %w", userID, err))
	}

	summary, err := s.repo.UpsertSummary(ctx, Summary{
		UserID:         userID,
		AttemptsCount:  totals.AttemptsCount,
		TotalCorrect:   totals.TotalCorrect,
		TotalQuestions: totals.TotalQuestions,
		Accuracy:       Accuracy(totals.TotalCorrect, totals.TotalQuestions),
		VocabCount:     vocabCount,
	})
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.UpsertSummary(%d) > %w", userID, err))
	}
	return summary, nil
}
