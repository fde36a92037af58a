package repository

import (
	"fmt"

	"gorm.io/gorm"

	"machine-tracking-backend/internal/apperrors"
	"machine-tracking-backend/internal/models"
)

type MachineRepository struct {
	db *gorm.DB
}

func NewMachineRepository(db *gorm.DB) *MachineRepository {
	return &MachineRepository{db: db}
}

// Expose DB if needed
func (r *MachineRepository) DB() *gorm.DB {
	return r.db
}

// ReplaceAll drops and recreates the machines table, then loads the whole
// batch inside one transaction. Ids restart from 1. A failed insert rolls the
// transaction back, leaving the freshly created table empty rather than half
// loaded.
func (r *MachineRepository) ReplaceAll(records []models.MachineRecord) (int, error) {
	m := r.db.Migrator()

	if m.HasTable(&models.MachineRecord{}) {
		if err := m.DropTable(&models.MachineRecord{}); err != nil {
			return 0, fmt.Errorf("%w: drop table: %v", apperrors.ErrInsertFailure, err)
		}
	}
	if err := m.CreateTable(&models.MachineRecord{}); err != nil {
		return 0, fmt.Errorf("%w: create table: %v", apperrors.ErrInsertFailure, err)
	}

	if len(records) == 0 {
		return 0, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&records, 200).Error
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrInsertFailure, err)
	}

	return len(records), nil
}

// RunQuery executes an already-validated SELECT and returns the rows as
// generic maps, since the model decides which columns come back.
func (r *MachineRepository) RunQuery(query string) ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)
	if err := r.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
	}
	return rows, nil
}
