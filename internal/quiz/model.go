package quiz

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Quiz is a set of multiple-choice questions generated from one lesson.
type Quiz struct {
	ID        int64      `db:"id" json:"id"`
	LessonID  int64      `db:"lesson_id" json:"lesson_id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	Questions []Question `db:"-" json:"questions"`
}

// Question is a stored quiz question. CorrectAnswer is used for scoring only and is never serialized.
type Question struct {
	ID            int64   `db:"id" json:"id"`
	QuizID        int64   `db:"quiz_id" json:"quiz_id"`
	Prompt        string  `db:"prompt" json:"prompt"`
	Choices       Choices `db:"choices" json:"choices"`
	CorrectAnswer string  `db:"correct_answer" json:"-"`
}

// Choices is the ordered answer set, persisted as a JSON array.
type Choices []string

func (c *Choices) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported choices type %T", src)
	}
	if err := json.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("json.Unmarshal(choices) > %w", err)
	}
	return nil
}

func (c Choices) Value() (driver.Value, error) {
	if c == nil {
		c = Choices{}
	}
	raw, err := json.Marshal([]string(c))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(choices) > %w", err)
	}
	return string(raw), nil
}

// Answer is one submitted answer.
type Answer struct {
	QuestionID int64
	Answer     string
}

// Attempt is a scored submission. It is never modified after it is recorded.
type Attempt struct {
	ID        int64     `db:"id" json:"id"`
	QuizID    int64     `db:"quiz_id" json:"quiz_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	LessonID  int64     `db:"lesson_id" json:"lesson_id"`
	Score     int       `db:"score" json:"score"`
	Total     int       `db:"total" json:"total"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Result is returned from a submission.
type Result struct {
	Attempt *Attempt `json:"attempt"`
	Score   int      `json:"score"`
	Total   int      `json:"total"`
}
