package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"machine-tracking-backend/internal/config"
	handler "machine-tracking-backend/internal/handlers"
	"machine-tracking-backend/internal/llm"
	"machine-tracking-backend/internal/repository"
	service "machine-tracking-backend/internal/services/query"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	machineRepo := repository.NewMachineRepository(db)
	batchRepo := repository.NewUploadBatchRepository(db)

	backends := llm.NewRegistry(cfg.DefaultProvider)
	if cfg.GeminiAPIKey != "" {
		backends.Register("gemini", llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel))
	}
	if cfg.OpenAIAPIKey != "" {
		backends.Register("openai", llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel))
	}

	queryService := service.NewService(machineRepo, backends, cfg.DefaultLanguage)

	uploadHandler := handler.NewUploadHandler(machineRepo, batchRepo)
	queryHandler := handler.NewQueryHandler(queryService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	machines := api.Group("/machines")
	machines.POST("/upload", uploadHandler.Upload)

	api.POST("/query", queryHandler.Ask)
	api.GET("/uploads/latest", uploadHandler.LatestBatch)
}
