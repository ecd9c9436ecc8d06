package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"prep-service/internal/config"
	"prep-service/internal/db"
	"prep-service/internal/event"
	"prep-service/internal/handlers"
	"prep-service/internal/repository"
	"prep-service/internal/service"
	"prep-service/internal/topics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.ServiceConfig
	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoDB.URI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDB.Database)

	// Questions
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Flashcards
	flashcardRepo := repository.NewFlashcardRepository(database)
	historyRepo := repository.NewHistoryRepository(database)
	flashcardService := service.NewFlashcardService(flashcardRepo, historyRepo, publisher)
	flashcardHandler := handlers.NewFlashcardHandler(flashcardService)

	// Attempts
	attemptRepo := repository.NewAttemptRepository(database)
	statsRepo := repository.NewStatsRepository(database)
	attemptService := service.NewAttemptService(attemptRepo, historyRepo, statsRepo, questionRepo)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	// Analytics
	hierarchy := topics.NewHierarchy()
	analyticsService := service.NewAnalyticsService(historyRepo, statsRepo, attemptRepo, hierarchy)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// User progress
	progressRepo := repository.NewProgressRepository(database)
	progressService := service.NewProgressService(progressRepo)
	progressHandler := handlers.NewProgressHandler(progressService)

	// Public routes - question bank
	publicQuestion := r.Group("/public/prep/question")
	{
		publicQuestion.GET("/", func(c *gin.Context) {
			questionHandler.ListQuestions(c)
			publisher.PublishAsync("prep.question.list", gin.H{
				"subjects": c.Query("subjects"),
				"year":     c.Query("year"),
			})
		})
		publicQuestion.GET("/:id", func(c *gin.Context) {
			questionHandler.GetQuestion(c)
			publisher.PublishAsync("prep.question.get", gin.H{"id": c.Param("id")})
		})
	}

	// Protected routes - question maintenance (bulk endpoint replaces the
	// old one-off import scripts)
	protectedQuestion := r.Group("/protected/prep/question")
	protectedQuestion.Use(requireUser())
	{
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
		protectedQuestion.PUT("/:id", questionHandler.UpdateQuestion)
		protectedQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
		protectedQuestion.POST("/bulk", questionHandler.BulkQuestions)
	}

	setupFlashcardRoutes(r, flashcardHandler, publisher)
	setupAttemptRoutes(r, attemptHandler, publisher)
	setupAnalyticsRoutes(r, analyticsHandler, publisher)

	protectedProgress := r.Group("/protected/prep/progress")
	protectedProgress.Use(requireUser())
	{
		protectedProgress.GET("/", progressHandler.GetProgress)
		protectedProgress.PUT("/", progressHandler.UpdateProgress)
	}

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting prep-service on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

func setupFlashcardRoutes(r *gin.Engine, flashcardHandler *handlers.FlashcardHandler, publisher *event.EventPublisher) {
	protected := r.Group("/protected/prep/flashcard")
	protected.Use(requireUser())
	protected.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("[FLASHCARD] %v | %3d | %13v | %15s | %-7s %#v\n%s",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			param.Method,
			param.Path,
			param.ErrorMessage,
		)
	}))
	{
		protected.GET("/", flashcardHandler.ListCards)
		protected.POST("/", func(c *gin.Context) {
			flashcardHandler.CreateCard(c)
			publisher.PublishAsync("prep.card.created", gin.H{
				"user_id": c.GetHeader("X-User-ID"),
			})
		})
		protected.DELETE("/:id", func(c *gin.Context) {
			flashcardHandler.DeleteCard(c)
			publisher.PublishAsync("prep.card.deleted", gin.H{
				"card_id": c.Param("id"),
				"user_id": c.GetHeader("X-User-ID"),
			})
		})
		protected.POST("/:id/rate", func(c *gin.Context) {
			flashcardHandler.RateCard(c)
			publisher.PublishAsync("prep.card.rated", gin.H{
				"card_id": c.Param("id"),
				"user_id": c.GetHeader("X-User-ID"),
			})
		})
		protected.GET("/due", flashcardHandler.GetDueCards)
		protected.GET("/stats", flashcardHandler.GetStats)
		protected.POST("/session", func(c *gin.Context) {
			flashcardHandler.TrackStudySession(c)
			publisher.PublishAsync("prep.study.session_tracked", gin.H{
				"user_id": c.GetHeader("X-User-ID"),
			})
		})
	}
}

func setupAttemptRoutes(r *gin.Engine, attemptHandler *handlers.AttemptHandler, publisher *event.EventPublisher) {
	protected := r.Group("/protected/prep/attempt")
	protected.Use(requireUser())
	{
		protected.POST("/", attemptHandler.TrackAttempt)
		protected.POST("/batch", func(c *gin.Context) {
			attemptHandler.TrackBatch(c)
			publisher.PublishAsync("prep.attempt.batch_saved", gin.H{
				"user_id": c.GetHeader("X-User-ID"),
			})
		})
		protected.POST("/quiz", func(c *gin.Context) {
			attemptHandler.TrackQuiz(c)
			publisher.PublishAsync("prep.quiz.completed", gin.H{
				"user_id": c.GetHeader("X-User-ID"),
			})
		})
	}
}

func setupAnalyticsRoutes(r *gin.Engine, analyticsHandler *handlers.AnalyticsHandler, publisher *event.EventPublisher) {
	protected := r.Group("/protected/prep/analytics")
	protected.Use(requireUser())
	{
		protected.GET("/insights", analyticsHandler.GetInsights)
		protected.GET("/progress", func(c *gin.Context) {
			analyticsHandler.GetProgress(c)
			publisher.PublishAsync("prep.analytics.progress_viewed", gin.H{
				"user_id": c.GetHeader("X-User-ID"),
			})
		})
		protected.GET("/weaknesses", analyticsHandler.GetWeaknesses)
		protected.GET("/recommendations", analyticsHandler.GetRecommendations)
	}
}

// requireUser gates protected groups on the X-User-ID header set by the
// gateway after token validation.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
