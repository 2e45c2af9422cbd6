package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/english-companion/internal/quiz"
)

type QuizService interface {
	EnsureQuiz(ctx context.Context, lessonID int64) (*quiz.Quiz, error)
	Get(ctx context.Context, id int64) (*quiz.Quiz, error)
	Submit(ctx context.Context, quizID int64, userID int64, answers []quiz.Answer) (*quiz.Result, error)
}

// QuizHandler serves quiz generation, retrieval and submission.
type QuizHandler struct {
	quizzes QuizService
}

func NewQuizHandler(quizzes QuizService) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

type generateQuizRequest struct {
	LessonID int64 `json:"lessonId" binding:"gt=0"`
}

type submitQuizRequest struct {
	UserID  int64           `json:"userId" binding:"gt=0"`
	Answers []answerRequest `json:"answers" binding:"required,min=1,dive"`
}

type answerRequest struct {
	QuestionID int64  `json:"questionId" binding:"gt=0"`
	Answer     string `json:"answer" binding:"required,min=1"`
}

func (h *QuizHandler) Generate(c *gin.Context) {
	var req generateQuizRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	q, err := h.quizzes.EnsureQuiz(c.Request.Context(), req.LessonID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": q})
}

func (h *QuizHandler) Get(c *gin.Context) {
	var uri idURI
	if err := bindURI(c, &uri, "id"); err != nil {
		_ = c.Error(err)
		return
	}

	q, err := h.quizzes.Get(c.Request.Context(), uri.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": q})
}

func (h *QuizHandler) Submit(c *gin.Context) {
	var uri idURI
	if err := bindURI(c, &uri, "id"); err != nil {
		_ = c.Error(err)
		return
	}
	var req submitQuizRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	answers := make([]quiz.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, quiz.Answer{QuestionID: a.QuestionID, Answer: a.Answer})
	}

	result, err := h.quizzes.Submit(c.Request.Context(), uri.ID, req.UserID, answers)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
