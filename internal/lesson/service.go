package lesson

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/english-companion/internal/apierr"
)

// Service serves lesson content.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]ListItem, error) {
	lessons, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.FindAll() > %w", err))
	}
	return lessons, nil
}

// Get returns the lesson with id, or a NotFound error.
func (s *Service) Get(ctx context.Context, id int64) (*Lesson, error) {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.FindByID(%d) > %w", id, err))
	}
	if lesson == nil {
		return nil, apierr.NotFound("Lesson not found")
	}
	return lesson, nil
}
