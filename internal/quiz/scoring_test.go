package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "  Hello ", want: "hello"},
		{input: "HELLO", want: "hello"},
		{input: "\tto say hello\n", want: "to say hello"},
		{input: "Hello!", want: "hello!"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAnswer(tt.input))
		})
	}
}

func TestScore(t *testing.T) {
	questions := []Question{
		{ID: 10, CorrectAnswer: "hello"},
		{ID: 11, CorrectAnswer: "To move fast"},
		{ID: 12, CorrectAnswer: "Present simple"},
	}

	tests := []struct {
		name      string
		answers   []Answer
		wantScore int
	}{
		{
			name:      "whitespace and case are ignored",
			answers:   []Answer{{QuestionID: 10, Answer: "  Hello "}},
			wantScore: 1,
		},
		{
			name:      "punctuation is significant",
			answers:   []Answer{{QuestionID: 10, Answer: "Hello!"}},
			wantScore: 0,
		},
		{
			name: "all correct",
			answers: []Answer{
				{QuestionID: 10, Answer: "hello"},
				{QuestionID: 11, Answer: "to move fast"},
				{QuestionID: 12, Answer: "PRESENT SIMPLE"},
			},
			wantScore: 3,
		},
		{
			name: "unknown questions are ignored",
			answers: []Answer{
				{QuestionID: 99, Answer: "hello"},
				{QuestionID: 11, Answer: "to move fast"},
			},
			wantScore: 1,
		},
		{
			name: "duplicate answers are each counted",
			answers: []Answer{
				{QuestionID: 10, Answer: "hello"},
				{QuestionID: 10, Answer: "hello"},
				{QuestionID: 10, Answer: "hello"},
				{QuestionID: 10, Answer: "hello"},
			},
			wantScore: 4,
		},
		{
			name:      "no answers",
			answers:   nil,
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, total := Score(questions, tt.answers)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, 3, total)
		})
	}
}

func TestScore_NoQuestions(t *testing.T) {
	score, total := Score(nil, []Answer{{QuestionID: 1, Answer: "a"}})
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, total)
}
