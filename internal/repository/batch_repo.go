package repository

import (
	"gorm.io/gorm"

	"machine-tracking-backend/internal/models"
)

type UploadBatchRepository struct {
	db *gorm.DB
}

func NewUploadBatchRepository(db *gorm.DB) *UploadBatchRepository {
	return &UploadBatchRepository{db: db}
}

func (r *UploadBatchRepository) Record(batch *models.UploadBatch) error {
	return r.db.Create(batch).Error
}

// Latest returns the most recent upload, so the admin page can show when data
// was last loaded.
func (r *UploadBatchRepository) Latest() (*models.UploadBatch, error) {
	var batch models.UploadBatch
	if err := r.db.Order("created_at DESC").First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}
