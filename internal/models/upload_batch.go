package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UploadBatch records one admin upload. Unlike machines, this table is never
// dropped, so the admin page can always show when data was last loaded.
type UploadBatch struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Filename     string         `json:"filename"`
	RowsInserted int            `json:"rows_inserted"`
	RowsSkipped  int            `json:"rows_skipped"`
	Summary      datatypes.JSON `json:"summary"`
	CreatedAt    time.Time      `json:"created_at"`
}
