package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"machine-tracking-backend/internal/apperrors"
	"machine-tracking-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func strptr(s string) *string { return &s }

func sampleRecords(n int) []models.MachineRecord {
	records := make([]models.MachineRecord, n)
	for i := range records {
		records[i] = models.MachineRecord{
			Machine:   fmt.Sprintf("CT%d", i+1),
			Status:    strptr("in transit"),
			Reference: strptr(fmt.Sprintf("REF-%d", i+1)),
		}
	}
	return records
}

func TestReplaceAll_RoundTrip(t *testing.T) {
	repo := NewMachineRepository(newTestDB(t))

	inserted, err := repo.ReplaceAll(sampleRecords(3))
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	rows, err := repo.RunQuery("SELECT * FROM machines")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// insertion order with sequential ids
	for i, row := range rows {
		assert.EqualValues(t, i+1, row["id"])
		assert.EqualValues(t, fmt.Sprintf("CT%d", i+1), row["machine"])
	}
}

func TestReplaceAll_DiscardsPreviousBatch(t *testing.T) {
	repo := NewMachineRepository(newTestDB(t))

	_, err := repo.ReplaceAll(sampleRecords(5))
	require.NoError(t, err)

	inserted, err := repo.ReplaceAll(sampleRecords(2))
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	rows, err := repo.RunQuery("SELECT * FROM machines ORDER BY id")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// ids restart after the rebuild
	assert.EqualValues(t, 1, rows[0]["id"])
	assert.EqualValues(t, 2, rows[1]["id"])
}

func TestReplaceAll_EmptyBatch(t *testing.T) {
	repo := NewMachineRepository(newTestDB(t))

	_, err := repo.ReplaceAll(sampleRecords(4))
	require.NoError(t, err)

	inserted, err := repo.ReplaceAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	rows, err := repo.RunQuery("SELECT * FROM machines")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRunQuery_NullableColumns(t *testing.T) {
	repo := NewMachineRepository(newTestDB(t))

	_, err := repo.ReplaceAll([]models.MachineRecord{{Machine: "CT2"}})
	require.NoError(t, err)

	rows, err := repo.RunQuery("SELECT machine, eta_port FROM machines")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, "CT2", rows[0]["machine"])
	assert.Nil(t, rows[0]["eta_port"])
}

func TestRunQuery_BadSQL(t *testing.T) {
	repo := NewMachineRepository(newTestDB(t))
	_, err := repo.ReplaceAll(sampleRecords(1))
	require.NoError(t, err)

	_, err = repo.RunQuery("SELECT * FROM no_such_table")
	assert.ErrorIs(t, err, apperrors.ErrQueryFailure)
}
