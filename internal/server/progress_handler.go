package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/english-companion/internal/progress"
)

type ProgressService interface {
	Get(ctx context.Context, userID int64) (*progress.Summary, error)
}

type ProgressHandler struct {
	progress ProgressService
}

func NewProgressHandler(progress ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

func (h *ProgressHandler) Get(c *gin.Context) {
	var query userQuery
	if err := bindQuery(c, &query, "userId"); err != nil {
		_ = c.Error(err)
		return
	}

	summary, err := h.progress.Get(c.Request.Context(), query.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": summary})
}
