package quiz

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/english-companion/internal/apierr"
	"github.com/at-ishikawa/english-companion/internal/logger"
)

// Service generates quizzes from lessons and scores submissions.
type Service struct {
	repo    Repository
	lessons LessonFinder
	logger  *logger.Logger
}

func NewService(repo Repository, lessons LessonFinder, log *logger.Logger) *Service {
	return &Service{repo: repo, lessons: lessons, logger: log}
}

// EnsureQuiz returns the lesson's current quiz, creating it and generating its questions on first use.
// A quiz that already has questions is returned unchanged.
func (s *Service) EnsureQuiz(ctx context.Context, lessonID int64) (*Quiz, error) {
	quiz, err := s.repo.FindLatestByLesson(ctx, lessonID)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.FindLatestByLesson(%d) > %w", lessonID, err))
	}

	if quiz != nil {
		questions, err := s.repo.FindQuestions(ctx, quiz.ID)
		if err != nil {
			return nil, apierr.Internal(fmt.Errorf("repo.FindQuestions(%d) > %w", quiz.ID, err))
		}
		if len(questions) > 0 {
			quiz.Questions = questions
			return quiz, nil
		}
	}

	l, err := s.lessons.FindByID(ctx, lessonID)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("lessons.FindByID(%d) > %w", lessonID, err))
	}
	if l == nil {
		return nil, apierr.NotFound("Lesson not found")
	}

	if quiz == nil {
		quiz, err = s.repo.Create(ctx, lessonID)
		if err != nil {
			return nil, apierr.Internal(fmt.Errorf("repo.Create(%d) > %w", lessonID, err))
		}
	}

	questions, err := s.repo.CreateQuestions(ctx, quiz.ID, Synthesize(l.Title, l.Content()))
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.CreateQuestions(%d) > %w", quiz.ID, err))
	}
	s.logger.Info("quiz questions generated", "lesson_id", lessonID, "quiz_id", quiz.ID, "questions", len(questions))

	quiz.Questions = questions
	return quiz, nil
}

// Get returns a quiz with its questions ordered by id.
func (s *Service) Get(ctx context.Context, id int64) (*Quiz, error) {
	quiz, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.FindByID(%d) > %w", id, err))
	}
	if quiz == nil {
		return nil, apierr.NotFound("Quiz not found")
	}

	questions, err := s.repo.FindQuestions(ctx, id)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.FindQuestions(%d) > %w", id, err))
	}
	quiz.Questions = questions
	return quiz, nil
}

// Submit scores answers against a quiz and records the attempt.
func (s *Service) Submit(ctx context.Context, quizID int64, userID int64, answers []Answer) (*Result, error) {
	quiz, err := s.repo.FindByID(ctx, quizID)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.FindByID(%d) > %w", quizID, err))
	}
	if quiz == nil {
		return nil, apierr.NotFound("Quiz not found")
	}

	questions, err := s.repo.FindQuestions(ctx, quizID)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.FindQuestions(%d) > %w", quizID, err))
	}

	score, total := Score(questions, answers)
	if total == 0 {
		return nil, apierr.Validation("Quiz has no questions")
	}

	attempt, err := s.repo.CreateAttempt(ctx, Attempt{
		QuizID:   quizID,
		UserID:   userID,
		LessonID: quiz.LessonID,
		Score:    score,
		Total:    total,
	})
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("repo.CreateAttempt(%d) > %w", quizID, err))
	}
	s.logger.Debug("quiz attempt recorded", "quiz_id", quizID, "user_id", userID, "score", score, "total", total)

	return &Result{Attempt: attempt, Score: score, Total: total}, nil
}
