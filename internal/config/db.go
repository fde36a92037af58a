package config

import (
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the single process-wide SQLite handle. Everything downstream
// receives this *gorm.DB by reference; tests open their own ":memory:" handle
// the same way.
func InitDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		zap.S().Fatalw("failed to open database", "path", path, "error", err)
	}
	return db
}
