package quiz

import "strings"

// NormalizeAnswer trims surrounding whitespace and lowercases. Punctuation is kept.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// Score counts the answers that match their question's correct answer.
// Answers for unknown questions are ignored; duplicate answers are each counted.
func Score(questions []Question, answers []Answer) (score int, total int) {
	correct := make(map[int64]string, len(questions))
	for _, q := range questions {
		correct[q.ID] = q.CorrectAnswer
	}

	for _, a := range answers {
		want, ok := correct[a.QuestionID]
		if !ok {
			continue
		}
		if NormalizeAnswer(a.Answer) == NormalizeAnswer(want) {
			score++
		}
	}
	return score, len(questions)
}
