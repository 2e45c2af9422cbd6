package quiz_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/english-companion/internal/apierr"
	"github.com/at-ishikawa/english-companion/internal/lesson"
	"github.com/at-ishikawa/english-companion/internal/logger"
	mock_quiz "github.com/at-ishikawa/english-companion/internal/mocks/quiz"
	"github.com/at-ishikawa/english-companion/internal/quiz"
)

var createdAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newLesson(t *testing.T, content lesson.Content) *lesson.Lesson {
	t.Helper()
	l, err := lesson.NewLesson("Greetings", "beginner", "Say hello", content)
	require.NoError(t, err)
	l.ID = 1
	return l
}

// storeQuestions assigns ids the way the database would.
func storeQuestions(firstID int64) func(ctx context.Context, quizID int64, questions []quiz.Question) ([]quiz.Question, error) {
	return func(_ context.Context, quizID int64, questions []quiz.Question) ([]quiz.Question, error) {
		stored := make([]quiz.Question, len(questions))
		for i, q := range questions {
			q.ID = firstID + int64(i)
			q.QuizID = quizID
			stored[i] = q
		}
		return stored, nil
	}
}

func TestService_EnsureQuiz(t *testing.T) {
	greetRun := lesson.Content{
		Vocabulary: []lesson.VocabularyEntry{
			{Term: "greet", Definition: "to say hello"},
			{Term: "run", Definition: "to move fast"},
		},
	}

	tests := []struct {
		name          string
		setup         func(t *testing.T, repo *mock_quiz.MockRepository, lessons *mock_quiz.MockLessonFinder)
		wantQuestions int
		wantKind      apierr.Kind
		wantErr       bool
		assertQuiz    func(t *testing.T, got *quiz.Quiz)
	}{
		{
			name: "first call creates the quiz and its questions",
			setup: func(t *testing.T, repo *mock_quiz.MockRepository, lessons *mock_quiz.MockLessonFinder) {
				repo.EXPECT().FindLatestByLesson(gomock.Any(), int64(1)).Return(nil, nil)
				lessons.EXPECT().FindByID(gomock.Any(), int64(1)).Return(newLesson(t, greetRun), nil)
				repo.EXPECT().Create(gomock.Any(), int64(1)).Return(&quiz.Quiz{ID: 8, LessonID: 1, CreatedAt: createdAt}, nil)
				repo.EXPECT().CreateQuestions(gomock.Any(), int64(8), gomock.Len(2)).DoAndReturn(storeQuestions(21))
			},
			wantQuestions: 2,
			assertQuiz: func(t *testing.T, got *quiz.Quiz) {
				first := got.Questions[0]
				assert.Equal(t, int64(21), first.ID)
				assert.Equal(t, "What is the definition of 'greet'?", first.Prompt)
				assert.Contains(t, first.Choices, "to say hello")
				assert.Contains(t, first.Choices, "to move fast")
				assert.Equal(t, "to say hello", first.CorrectAnswer)
			},
		},
		{
			name: "quiz with questions is returned without synthesis",
			setup: func(t *testing.T, repo *mock_quiz.MockRepository, lessons *mock_quiz.MockLessonFinder) {
				repo.EXPECT().FindLatestByLesson(gomock.Any(), int64(1)).Return(&quiz.Quiz{ID: 8, LessonID: 1, CreatedAt: createdAt}, nil)
				repo.EXPECT().FindQuestions(gomock.Any(), int64(8)).Return([]quiz.Question{
					{ID: 21, QuizID: 8, Prompt: "Q1"},
					{ID: 22, QuizID: 8, Prompt: "Q2"},
					{ID: 23, QuizID: 8, Prompt: "Q3"},
				}, nil)
			},
			wantQuestions: 3,
			assertQuiz: func(t *testing.T, got *quiz.Quiz) {
				assert.Equal(t, []int64{21, 22, 23}, []int64{got.Questions[0].ID, got.Questions[1].ID, got.Questions[2].ID})
			},
		},
		{
			name: "existing quiz without questions is populated",
			setup: func(t *testing.T, repo *mock_quiz.MockRepository, lessons *mock_quiz.MockLessonFinder) {
				repo.EXPECT().FindLatestByLesson(gomock.Any(), int64(1)).Return(&quiz.Quiz{ID: 8, LessonID: 1, CreatedAt: createdAt}, nil)
				repo.EXPECT().FindQuestions(gomock.Any(), int64(8)).Return([]quiz.Question{}, nil)
				lessons.EXPECT().FindByID(gomock.Any(), int64(1)).Return(newLesson(t, lesson.Content{}), nil)
				repo.EXPECT().CreateQuestions(gomock.Any(), int64(8), gomock.Len(2)).DoAndReturn(storeQuestions(30))
			},
			wantQuestions: 2,
			assertQuiz: func(t *testing.T, got *quiz.Quiz) {
				assert.Equal(t, "What is the main topic of 'Greetings'?", got.Questions[0].Prompt)
				assert.Equal(t, "Choose the best definition of 'practice'.", got.Questions[1].Prompt)
			},
		},
		{
			name: "missing lesson creates nothing",
			setup: func(t *testing.T, repo *mock_quiz.MockRepository, lessons *mock_quiz.MockLessonFinder) {
				repo.EXPECT().FindLatestByLesson(gomock.Any(), int64(1)).Return(nil, nil)
				lessons.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, nil)
			},
			wantErr:  true,
			wantKind: apierr.KindNotFound,
		},
		{
			name: "question insert failure is internal",
			setup: func(t *testing.T, repo *mock_quiz.MockRepository, lessons *mock_quiz.MockLessonFinder) {
				repo.EXPECT().FindLatestByLesson(gomock.Any(), int64(1)).Return(nil, nil)
				lessons.EXPECT().FindByID(gomock.Any(), int64(1)).Return(newLesson(t, greetRun), nil)
				repo.EXPECT().Create(gomock.Any(), int64(1)).Return(&quiz.Quiz{ID: 8, LessonID: 1}, nil)
				repo.EXPECT().CreateQuestions(gomock.Any(), int64(8), gomock.Any()).Return(nil, errors.New("disk full"))
			},
			wantErr:  true,
			wantKind: apierr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_quiz.NewMockRepository(ctrl)
			lessons := mock_quiz.NewMockLessonFinder(ctrl)
			tt.setup(t, repo, lessons)

			got, err := quiz.NewService(repo, lessons, logger.NewNop()).EnsureQuiz(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apierr.KindOf(err))
				return
			}
			require.NoError(t, err)
			require.Len(t, got.Questions, tt.wantQuestions)
			if tt.assertQuiz != nil {
				tt.assertQuiz(t, got)
			}
		})
	}
}

func TestService_EnsureQuiz_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_quiz.NewMockRepository(ctrl)
	lessons := mock_quiz.NewMockLessonFinder(ctrl)

	content := lesson.Content{
		Vocabulary: []lesson.VocabularyEntry{
			{Term: "wake", Definition: "to stop sleeping"},
			{Term: "commute", Definition: "to travel to work"},
			{Term: "cook", Definition: "to prepare food"},
			{Term: "rest", Definition: "to relax"},
		},
		GrammarPoints: []lesson.GrammarPoint{{Point: "Present simple"}},
	}

	var stored []quiz.Question
	storedQuiz := &quiz.Quiz{ID: 8, LessonID: 1, CreatedAt: createdAt}

	gomock.InOrder(
		repo.EXPECT().FindLatestByLesson(gomock.Any(), int64(1)).Return(nil, nil),
		lessons.EXPECT().FindByID(gomock.Any(), int64(1)).Return(newLesson(t, content), nil),
		repo.EXPECT().Create(gomock.Any(), int64(1)).Return(storedQuiz, nil),
		repo.EXPECT().CreateQuestions(gomock.Any(), int64(8), gomock.Any()).
			DoAndReturn(func(ctx context.Context, quizID int64, questions []quiz.Question) ([]quiz.Question, error) {
				var err error
				stored, err = storeQuestions(21)(ctx, quizID, questions)
				return stored, err
			}),
		repo.EXPECT().FindLatestByLesson(gomock.Any(), int64(1)).
			DoAndReturn(func(context.Context, int64) (*quiz.Quiz, error) {
				return &quiz.Quiz{ID: 8, LessonID: 1, CreatedAt: createdAt}, nil
			}),
		repo.EXPECT().FindQuestions(gomock.Any(), int64(8)).
			DoAndReturn(func(context.Context, int64) ([]quiz.Question, error) {
				return stored, nil
			}),
	)

	svc := quiz.NewService(repo, lessons, logger.NewNop())

	first, err := svc.EnsureQuiz(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, first.Questions, 5)

	second, err := svc.EnsureQuiz(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Questions, second.Questions)
}

func TestService_Get(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *mock_quiz.MockRepository)
		want     *quiz.Quiz
		wantKind apierr.Kind
	}{
		{
			name: "quiz with questions",
			setup: func(repo *mock_quiz.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(8)).Return(&quiz.Quiz{ID: 8, LessonID: 1, CreatedAt: createdAt}, nil)
				repo.EXPECT().FindQuestions(gomock.Any(), int64(8)).Return([]quiz.Question{{ID: 21, QuizID: 8}}, nil)
			},
			want: &quiz.Quiz{ID: 8, LessonID: 1, CreatedAt: createdAt, Questions: []quiz.Question{{ID: 21, QuizID: 8}}},
		},
		{
			name: "missing quiz",
			setup: func(repo *mock_quiz.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(8)).Return(nil, nil)
			},
			wantKind: apierr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_quiz.NewMockRepository(ctrl)
			tt.setup(repo)

			got, err := quiz.NewService(repo, mock_quiz.NewMockLessonFinder(ctrl), logger.NewNop()).Get(context.Background(), 8)
			if tt.want == nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apierr.KindOf(err))
				assert.EqualError(t, err, "Quiz not found")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Submit(t *testing.T) {
	questions := []quiz.Question{
		{ID: 21, QuizID: 8, CorrectAnswer: "hello"},
		{ID: 22, QuizID: 8, CorrectAnswer: "to move fast"},
	}

	tests := []struct {
		name      string
		answers   []quiz.Answer
		setup     func(repo *mock_quiz.MockRepository)
		wantScore int
		wantTotal int
		wantKind  apierr.Kind
		wantErr   string
	}{
		{
			name:    "normalized answers are scored and recorded",
			answers: []quiz.Answer{{QuestionID: 21, Answer: "  Hello "}, {QuestionID: 22, Answer: "to move slowly"}, {QuestionID: 99, Answer: "x"}},
			setup: func(repo *mock_quiz.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(8)).Return(&quiz.Quiz{ID: 8, LessonID: 3}, nil)
				repo.EXPECT().FindQuestions(gomock.Any(), int64(8)).Return(questions, nil)
				repo.EXPECT().CreateAttempt(gomock.Any(), quiz.Attempt{QuizID: 8, UserID: 42, LessonID: 3, Score: 1, Total: 2}).
					Return(&quiz.Attempt{ID: 100, QuizID: 8, UserID: 42, LessonID: 3, Score: 1, Total: 2, CreatedAt: createdAt}, nil)
			},
			wantScore: 1,
			wantTotal: 2,
		},
		{
			name:    "punctuation makes an answer incorrect",
			answers: []quiz.Answer{{QuestionID: 21, Answer: "Hello!"}},
			setup: func(repo *mock_quiz.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(8)).Return(&quiz.Quiz{ID: 8, LessonID: 3}, nil)
				repo.EXPECT().FindQuestions(gomock.Any(), int64(8)).Return(questions, nil)
				repo.EXPECT().CreateAttempt(gomock.Any(), quiz.Attempt{QuizID: 8, UserID: 42, LessonID: 3, Score: 0, Total: 2}).
					Return(&quiz.Attempt{ID: 101}, nil)
			},
			wantScore: 0,
			wantTotal: 2,
		},
		{
			name:    "missing quiz",
			answers: []quiz.Answer{{QuestionID: 21, Answer: "hello"}},
			setup: func(repo *mock_quiz.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(8)).Return(nil, nil)
			},
			wantKind: apierr.KindNotFound,
			wantErr:  "Quiz not found",
		},
		{
			name:    "quiz without questions cannot be submitted",
			answers: []quiz.Answer{{QuestionID: 21, Answer: "hello"}},
			setup: func(repo *mock_quiz.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(8)).Return(&quiz.Quiz{ID: 8, LessonID: 3}, nil)
				repo.EXPECT().FindQuestions(gomock.Any(), int64(8)).Return([]quiz.Question{}, nil)
			},
			wantKind: apierr.KindValidation,
			wantErr:  "Quiz has no questions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_quiz.NewMockRepository(ctrl)
			tt.setup(repo)

			got, err := quiz.NewService(repo, mock_quiz.NewMockLessonFinder(ctrl), logger.NewNop()).
				Submit(context.Background(), 8, 42, tt.answers)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apierr.KindOf(err))
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantTotal, got.Total)
			require.NotNil(t, got.Attempt)
		})
	}
}
