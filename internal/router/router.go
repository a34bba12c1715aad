package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/davletovm/quizmaster-bot/internal/api"
)

func Setup(quizHandler *api.QuizHandler, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	r.Use(cors.New(config))

	r.GET("/", quizHandler.Root)
	r.GET("/health", quizHandler.Health)
	r.POST("/api/quiz/generate", quizHandler.GenerateQuiz)

	return r
}
