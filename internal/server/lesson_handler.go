package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/english-companion/internal/lesson"
)

type LessonService interface {
	List(ctx context.Context) ([]lesson.ListItem, error)
	Get(ctx context.Context, id int64) (*lesson.Lesson, error)
}

type LessonHandler struct {
	lessons LessonService
}

func NewLessonHandler(lessons LessonService) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

type idURI struct {
	ID int64 `uri:"id" binding:"gt=0"`
}

func (h *LessonHandler) List(c *gin.Context) {
	lessons, err := h.lessons.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lessons": lessons})
}

func (h *LessonHandler) Get(c *gin.Context) {
	var uri idURI
	if err := bindURI(c, &uri, "id"); err != nil {
		_ = c.Error(err)
		return
	}

	l, err := h.lessons.Get(c.Request.Context(), uri.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lesson": l})
}
