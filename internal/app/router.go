// Package app assembles services, handlers and middleware into the HTTP
// surface, bound to the database handle passed in.
package app

import (
	"net/http"

	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/apierr"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/config"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/handlers"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/middleware"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/services"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/pkg/monitoring"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	gin.SetMode(cfg.ServerMode)

	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(db)

	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService)
	quizHandler := handlers.NewQuizHandler(quizService)
	healthHandler := handlers.NewHealthHandler(db)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(monitoring.Middleware())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorTranslator())

	// Engine-level so OPTIONS preflights are answered even though no
	// OPTIONS routes are registered.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierr.NotFound.Response())
	})

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", monitoring.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1.0")
	{
		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/categories/:id/questions", categoryHandler.QuestionsByCategory)
		api.GET("/questions", questionHandler.ListQuestions)
		api.POST("/questions", questionHandler.CreateQuestion)
		api.DELETE("/questions/:id", questionHandler.DeleteQuestion)
		api.POST("/questions/search", questionHandler.SearchQuestions)
		api.POST("/quizzes", quizHandler.PlayQuiz)
	}

	return r
}
