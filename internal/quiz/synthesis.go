package quiz

import (
	"fmt"

	"github.com/at-ishikawa/english-companion/internal/lesson"
)

const (
	maxVocabularyQuestions = 4
	maxChoices             = 4
	minChoices             = 2
)

var grammarFillers = []string{"Past perfect", "Passive voice", "Conditionals"}

// Synthesize builds the questions for a lesson from its content. The result is never empty:
// content without usable vocabulary or grammar yields two generic questions.
func Synthesize(title string, content lesson.Content) []Question {
	var questions []Question

	candidates := content.Vocabulary
	if len(candidates) > maxVocabularyQuestions {
		candidates = candidates[:maxVocabularyQuestions]
	}
	for _, entry := range candidates {
		if entry.Term == "" || entry.Definition == "" {
			continue
		}
		choices := append(Choices{entry.Definition}, distractors(content.Vocabulary, entry.Definition)...)
		if len(choices) > maxChoices {
			choices = choices[:maxChoices]
		}
		if len(choices) < minChoices {
			continue
		}
		questions = append(questions, Question{
			Prompt:        fmt.Sprintf("What is the definition of '%s'?", entry.Term),
			Choices:       choices,
			CorrectAnswer: entry.Definition,
		})
	}

	if len(content.GrammarPoints) > 0 && content.GrammarPoints[0].Point != "" {
		point := content.GrammarPoints[0].Point
		choices := append(Choices{point}, grammarFillers...)
		if len(choices) > maxChoices {
			choices = choices[:maxChoices]
		}
		questions = append(questions, Question{
			Prompt:        "Which grammar topic is covered in this lesson?",
			Choices:       choices,
			CorrectAnswer: point,
		})
	}

	if len(questions) == 0 {
		return fallbackQuestions(title)
	}
	return questions
}

// distractors returns up to three definitions, in lesson order, that differ from correct.
func distractors(vocabulary []lesson.VocabularyEntry, correct string) []string {
	var result []string
	for _, entry := range vocabulary {
		if entry.Definition == "" || entry.Definition == correct {
			continue
		}
		result = append(result, entry.Definition)
		if len(result) == maxChoices-1 {
			break
		}
	}
	return result
}

func fallbackQuestions(title string) []Question {
	return []Question{
		{
			Prompt:        fmt.Sprintf("What is the main topic of '%s'?", title),
			Choices:       Choices{"Vocabulary", "Grammar", "Reading", "Conversation"},
			CorrectAnswer: "Vocabulary",
		},
		{
			Prompt:        "Choose the best definition of 'practice'.",
			Choices:       Choices{"to do repeatedly to improve", "to ignore", "to damage", "to forget"},
			CorrectAnswer: "to do repeatedly to improve",
		},
	}
}
