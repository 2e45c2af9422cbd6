package vocabulary

import "time"

// Item is a user's saved vocabulary term. (UserID, Term) is unique.
type Item struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	Term       string    `db:"term" json:"term"`
	Definition string    `db:"definition" json:"definition"`
	Example    string    `db:"example" json:"example"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Schedule is the review state of one user's term.
type Schedule struct {
	UserID       int64     `db:"user_id" json:"user_id"`
	Term         string    `db:"term" json:"term"`
	IntervalDays int       `db:"interval_days" json:"interval_days"`
	Repetition   int       `db:"repetition" json:"repetition"`
	NextReviewAt time.Time `db:"next_review_at" json:"next_review_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Result is the outcome of a review.
type Result string

const (
	ResultPass Result = "pass"
	ResultFail Result = "fail"
)

func (r Result) Valid() bool {
	return r == ResultPass || r == ResultFail
}
