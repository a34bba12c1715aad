package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davletovm/quizmaster-bot/internal/domain/entities"
	"github.com/davletovm/quizmaster-bot/internal/generator"
)

// GenerateRequest is the body of POST /api/quiz/generate.
type GenerateRequest struct {
	Topic        string `json:"topic" binding:"required,min=1,max=100"`
	NumQuestions int    `json:"num_questions" binding:"required,min=3,max=30"`
}

// GenerateResponse is the quiz payload returned to callers.
type GenerateResponse struct {
	Topic     string              `json:"topic"`
	Questions []entities.Question `json:"questions"`
}

// QuizGenerator produces a validated quiz for a topic.
type QuizGenerator interface {
	Generate(ctx context.Context, topic string, count int) ([]entities.Question, error)
}

type QuizHandler struct {
	generator QuizGenerator
	logger    *zap.Logger
}

func NewQuizHandler(gen QuizGenerator, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{generator: gen, logger: logger}
}

// Root returns service info and the available endpoints.
func (h *QuizHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AIQuizMasterBot API",
		"status":  "running",
		"endpoints": gin.H{
			"generate_quiz": "/api/quiz/generate",
		},
	})
}

func (h *QuizHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// GenerateQuiz handles POST /api/quiz/generate.
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	questions, err := h.generator.Generate(c.Request.Context(), req.Topic, req.NumQuestions)
	if err != nil {
		h.logger.Error("quiz generation failed",
			zap.String("topic", req.Topic),
			zap.Int("num_questions", req.NumQuestions),
			zap.Error(err),
		)

		if errors.Is(err, generator.ErrBadPayload) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Topic:     req.Topic,
		Questions: questions,
	})
}
