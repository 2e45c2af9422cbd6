package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/english-companion/internal/vocabulary"
)

type VocabularyService interface {
	List(ctx context.Context, userID int64) ([]vocabulary.Item, error)
	Upsert(ctx context.Context, item vocabulary.Item) (*vocabulary.Item, error)
	Review(ctx context.Context, userID int64, term string, result vocabulary.Result) (*vocabulary.Schedule, error)
}

type VocabularyHandler struct {
	vocabulary VocabularyService
}

func NewVocabularyHandler(vocabulary VocabularyService) *VocabularyHandler {
	return &VocabularyHandler{vocabulary: vocabulary}
}

type userQuery struct {
	UserID int64 `form:"userId" binding:"gt=0"`
}

type upsertVocabularyRequest struct {
	UserID     int64  `json:"userId" binding:"gt=0"`
	Term       string `json:"term" binding:"required,min=1,max=200"`
	Definition string `json:"definition" binding:"required,min=1,max=2000"`
	Example    string `json:"example" binding:"required,min=1,max=2000"`
}

type reviewVocabularyRequest struct {
	UserID int64  `json:"userId" binding:"gt=0"`
	Term   string `json:"term" binding:"required,min=1,max=200"`
	Result string `json:"result" binding:"required,oneof=pass fail"`
}

func (h *VocabularyHandler) List(c *gin.Context) {
	var query userQuery
	if err := bindQuery(c, &query, "userId"); err != nil {
		_ = c.Error(err)
		return
	}

	items, err := h.vocabulary.List(c.Request.Context(), query.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vocabulary": items})
}

func (h *VocabularyHandler) Upsert(c *gin.Context) {
	var req upsertVocabularyRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	item, err := h.vocabulary.Upsert(c.Request.Context(), vocabulary.Item{
		UserID:     req.UserID,
		Term:       req.Term,
		Definition: req.Definition,
		Example:    req.Example,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vocabulary": item})
}

func (h *VocabularyHandler) Review(c *gin.Context) {
	var req reviewVocabularyRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	schedule, err := h.vocabulary.Review(c.Request.Context(), req.UserID, req.Term, vocabulary.Result(req.Result))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}
