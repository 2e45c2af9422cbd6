package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// timestampLayout matches ISO-8601 with millisecond precision in UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type HealthHandler struct {
	environment string
	now         func() time.Time
}

func NewHealthHandler(environment string, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{environment: environment, now: now}
}

type healthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:      "ok",
		Message:     "Service is healthy",
		Timestamp:   h.now().UTC().Format(timestampLayout),
		Environment: h.environment,
	})
}
