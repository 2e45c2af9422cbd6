package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/english-companion/internal/apierr"
	"github.com/at-ishikawa/english-companion/internal/logger"
)

const internalErrorMessage = "Internal Server Error"

type errorResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Details []apierr.Detail `json:"details,omitempty"`
	Path    string          `json:"path,omitempty"`
}

// statusAndBody maps an error to the response sent to the caller. Internal details never leave the server.
func statusAndBody(err error) (int, errorResponse) {
	apiErr, ok := apierr.As(err)
	if !ok {
		return http.StatusInternalServerError, errorResponse{Status: "error", Message: internalErrorMessage}
	}

	switch apiErr.Kind {
	case apierr.KindNotFound:
		return http.StatusNotFound, errorResponse{Status: "error", Message: apiErr.Message}
	case apierr.KindValidation:
		return http.StatusBadRequest, errorResponse{Status: "error", Message: apiErr.Message, Details: apiErr.Details}
	default:
		return http.StatusInternalServerError, errorResponse{Status: "error", Message: internalErrorMessage}
	}
}

// ErrorRenderer writes the response for the last error a handler attached with c.Error.
func ErrorRenderer(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, body := statusAndBody(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(requestIDKey),
				"error", err.Error(),
			)
		}
		c.AbortWithStatusJSON(status, body)
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorResponse{
		Status:  "error",
		Message: "Not Found",
		Path:    c.Request.URL.RequestURI(),
	})
}
