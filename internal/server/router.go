// Package server exposes the HTTP API.
package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/english-companion/internal/config"
	"github.com/at-ishikawa/english-companion/internal/logger"
)

// RouterConfig carries the handlers and settings the router is built from.
type RouterConfig struct {
	Server     config.ServerConfig
	Logger     *logger.Logger
	Lessons    LessonService
	Quizzes    QuizService
	Vocabulary VocabularyService
	Progress   ProgressService
	Now        func() time.Time
}

func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if err := setupValidator(); err != nil {
		return nil, fmt.Errorf("setupValidator() > %w", err)
	}
	doc, err := loadOpenAPI()
	if err != nil {
		return nil, err
	}
	gin.SetMode(ginMode(cfg.Server.Environment))

	r := gin.New()
	r.Use(
		RequestID(),
		RequestLogger(cfg.Logger),
		Recovery(cfg.Logger),
		CORS(cfg.Server.CORS.AllowedOrigins),
		ErrorRenderer(cfg.Logger),
	)

	health := NewHealthHandler(cfg.Server.Environment, cfg.Now)
	r.GET("/", health.Check)
	r.GET("/health", health.Check)
	r.GET("/openapi.json", openAPIHandler(doc))

	api := r.Group("/api")
	{
		lessons := NewLessonHandler(cfg.Lessons)
		api.GET("/lessons", lessons.List)
		api.GET("/lessons/:id", lessons.Get)

		quizzes := NewQuizHandler(cfg.Quizzes)
		api.POST("/quizzes/generate", quizzes.Generate)
		api.GET("/quizzes/:id", quizzes.Get)
		api.POST("/quizzes/:id/submit", quizzes.Submit)

		vocabulary := NewVocabularyHandler(cfg.Vocabulary)
		api.GET("/vocabulary", vocabulary.List)
		api.POST("/vocabulary", vocabulary.Upsert)
		api.POST("/vocabulary/review", vocabulary.Review)

		progress := NewProgressHandler(cfg.Progress)
		api.GET("/progress", progress.Get)
	}

	r.NoRoute(notFound)
	return r, nil
}

// NewHTTPServer serves handler on port, accepting HTTP/2 without TLS.
func ginMode(environment string) string {
	switch environment {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func NewHTTPServer(port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
