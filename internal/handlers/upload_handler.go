package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"machine-tracking-backend/internal/apperrors"
	"machine-tracking-backend/internal/ingest"
	"machine-tracking-backend/internal/models"
	"machine-tracking-backend/internal/repository"
)

type UploadHandler struct {
	machines *repository.MachineRepository
	batches  *repository.UploadBatchRepository
}

func NewUploadHandler(machines *repository.MachineRepository, batches *repository.UploadBatchRepository) *UploadHandler {
	return &UploadHandler{machines: machines, batches: batches}
}

// Upload replaces the machines table with the contents of the posted
// spreadsheet. The file is staged under a temp name and removed on every exit
// path.
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		zap.S().Errorw("upload rejected, no file in request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}

	zap.S().Infow("received upload", "filename", header.Filename, "size", header.Size)

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(header.Filename))
	if err := c.SaveUploadedFile(header, tmpPath); err != nil {
		zap.S().Errorw("failed to stage uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store uploaded file"})
		return
	}
	defer os.Remove(tmpPath)

	rows, err := ingest.ReadWorkbook(tmpPath)
	if err != nil {
		zap.S().Errorw("failed to read workbook", "filename", header.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read spreadsheet"})
		return
	}

	records, skipped, err := ingest.ExtractRecords(rows)
	if err != nil {
		zap.S().Errorw("failed to extract rows", "filename", header.Filename, "error", err)
		if errors.Is(err, apperrors.ErrMalformedInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "spreadsheet has no data rows"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	inserted, err := h.machines.ReplaceAll(records)
	if err != nil {
		zap.S().Errorw("replace failed, rolled back", "filename", header.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database insert failed"})
		return
	}

	batch := &models.UploadBatch{
		ID:           uuid.New(),
		Filename:     header.Filename,
		RowsInserted: inserted,
		RowsSkipped:  skipped,
		Summary:      batchSummary(len(rows)-1, inserted, skipped),
		CreatedAt:    time.Now(),
	}
	if err := h.batches.Record(batch); err != nil {
		// the replace already succeeded, don't fail the upload over bookkeeping
		zap.S().Warnw("failed to record upload batch", "error", err)
	}

	zap.S().Infow("upload complete", "filename", header.Filename, "inserted", inserted, "skipped", skipped)

	c.JSON(http.StatusOK, gin.H{
		"inserted": inserted,
		"batch_id": batch.ID.String(),
	})
}

// LatestBatch returns the most recent upload record.
func (h *UploadHandler) LatestBatch(c *gin.Context) {
	batch, err := h.batches.Latest()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no uploads yet"})
		return
	}
	c.JSON(http.StatusOK, batch)
}

func batchSummary(sourceRows, inserted, skipped int) datatypes.JSON {
	raw, _ := json.Marshal(map[string]int{
		"source_rows": sourceRows,
		"inserted":    inserted,
		"skipped":     skipped,
	})
	return datatypes.JSON(raw)
}
