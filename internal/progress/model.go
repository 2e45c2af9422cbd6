package progress

import "time"

// Summary is the cached per-user aggregate. It is recomputed on every read.
type Summary struct {
	UserID         int64     `db:"user_id" json:"user_id"`
	AttemptsCount  int64     `db:"attempts_count" json:"attempts_count"`
	TotalCorrect   int64     `db:"total_correct" json:"total_correct"`
	TotalQuestions int64     `db:"total_questions" json:"total_questions"`
	Accuracy       float64   `db:"accuracy" json:"accuracy"`
	VocabCount     int64     `db:"vocab_count" json:"vocab_count"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// AttemptTotals aggregates a user's quiz attempts.
type AttemptTotals struct {
	AttemptsCount  int64 `db:"attempts_count"`
	TotalCorrect   int64 `db:"total_correct"`
	TotalQuestions int64 `db:"total_questions"`
}

// Accuracy is correct/questions, or 0 when nothing was answered.
func Accuracy(correct, questions int64) float64 {
	if questions <= 0 {
		return 0
	}
	return float64(correct) / float64(questions)
}
