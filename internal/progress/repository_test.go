package progress

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name      string
		correct   int64
		questions int64
		want      float64
	}{
		{name: "no attempts", correct: 0, questions: 0, want: 0},
		{name: "fourteen of twenty", correct: 14, questions: 20, want: 0.7},
		{name: "perfect", correct: 5, questions: 5, want: 1},
		{name: "more correct than questions is not clamped", correct: 6, questions: 5, want: 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Accuracy(tt.correct, tt.questions))
		})
	}
}

func TestDBRepository_SumAttempts(t *testing.T) {
	tests := []struct {
		name string
		row  []driver.Value
		want AttemptTotals
	}{
		{
			name: "user with attempts",
			row:  []driver.Value{4, []byte("14"), []byte("20")},
			want: AttemptTotals{AttemptsCount: 4, TotalCorrect: 14, TotalQuestions: 20},
		},
		{
			name: "user without attempts",
			row:  []driver.Value{0, 0, 0},
			want: AttemptTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			mock.ExpectQuery(regexp.QuoteMeta(
				"SELECT COUNT(*) AS attempts_count, COALESCE(SUM(score), 0) AS total_correct, COALESCE(SUM(total), 0) AS total_questions FROM quiz_attempts WHERE user_id = ?")).
				WithArgs(int64(42)).
				WillReturnRows(sqlmock.NewRows([]string{"attempts_count", "total_correct", "total_questions"}).AddRow(tt.row...))

			got, err := repo.SumAttempts(context.Background(), 42)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_CountVocabulary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDBRepository(sqlx.NewDb(db, "postgres"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM vocabulary WHERE user_id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	got, err := repo.CountVocabulary(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_UpsertSummary(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO progress_summaries (user_id, attempts_count, total_correct, total_questions, accuracy, vocab_count) VALUES (?, ?, ?, ?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE attempts_count = VALUES(attempts_count), total_correct = VALUES(total_correct), "+
			"total_questions = VALUES(total_questions), accuracy = VALUES(accuracy), vocab_count = VALUES(vocab_count), updated_at = CURRENT_TIMESTAMP")).
		WithArgs(int64(42), int64(4), int64(14), int64(20), 0.7, int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(regexp.QuoteMeta("FROM progress_summaries WHERE user_id = ?")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "attempts_count", "total_correct", "total_questions", "accuracy", "vocab_count", "updated_at"}).
			AddRow(42, 4, 14, 20, 0.7, 12, now))

	got, err := repo.UpsertSummary(context.Background(), Summary{
		UserID: 42, AttemptsCount: 4, TotalCorrect: 14, TotalQuestions: 20, Accuracy: 0.7, VocabCount: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, &Summary{
		UserID: 42, AttemptsCount: 4, TotalCorrect: 14, TotalQuestions: 20, Accuracy: 0.7, VocabCount: 12, UpdatedAt: now,
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
