package main

import (
	"log"
	"time"

	"machine-tracking-backend/internal/config"
	"machine-tracking-backend/internal/models"
	"machine-tracking-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.Load()
	db := config.InitDB(cfg.DBPath)

	// machines is also rebuilt on every upload; this covers first boot and the
	// upload_batches table, which is never dropped.
	db.AutoMigrate(
		&models.MachineRecord{},
		&models.UploadBatch{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, cfg)

	zap.S().Infow("listening", "port", cfg.Port)
	r.Run(":" + cfg.Port)
}
