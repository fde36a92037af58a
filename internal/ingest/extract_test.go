package ingest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"machine-tracking-backend/internal/apperrors"
)

var header = []string{"Customs", "Reference", "Machine", "PN", "ETB", "ETA Port", "ETA Dest", "Ship", "Division", "Status", "BL"}

func TestExtractRecords_TooFewRows(t *testing.T) {
	_, _, err := ExtractRecords(nil)
	assert.ErrorIs(t, err, apperrors.ErrMalformedInput)

	_, _, err = ExtractRecords([][]string{header})
	assert.ErrorIs(t, err, apperrors.ErrMalformedInput)
}

func TestExtractRecords_SkipsBlankRows(t *testing.T) {
	rows := [][]string{
		header,
		{"", "", "", "", "", "", "", "", "", "", ""},
		{"OK", "REF-1", "CT2", "", "", "", "", "", "", "", ""},
		{"  ", "  ", ""}, // ragged and whitespace-only
	}

	records, skipped, err := ExtractRecords(rows)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, "CT2", records[0].Machine)
}

func TestExtractRecords_MachineFallback(t *testing.T) {
	rows := [][]string{
		header,
		{"OK", "REF-1", "", "99.0", "", "", "", "MSC Ship", "", "", ""},
	}

	records, _, err := ExtractRecords(rows)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, MachineFallback, records[0].Machine)
	require.NotNil(t, records[0].PartNumber)
	assert.Equal(t, "99", *records[0].PartNumber)
}

func TestExtractRecords_PositionalMapping(t *testing.T) {
	rows := [][]string{
		header,
		{"cleared", "REF-7", "CT2", "12345.0", "45000", "Por confirmar", "2024-05-01", "Maersk Eagle", "mining", "in transit", "BL-001"},
	}

	records, skipped, err := ExtractRecords(rows)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0, skipped)

	rec := records[0]
	assert.Equal(t, "cleared", *rec.Customs)
	assert.Equal(t, "REF-7", *rec.Reference)
	assert.Equal(t, "CT2", rec.Machine)
	assert.Equal(t, "12345", *rec.PartNumber)
	assert.Equal(t, "2023-03-15", *rec.ETB)
	assert.Nil(t, rec.ETAPort) // "Por confirmar"
	assert.Equal(t, "2024-05-01", *rec.ETADestination)
	assert.Equal(t, "Maersk Eagle", *rec.Ship)
	assert.Equal(t, "mining", *rec.Division)
	assert.Equal(t, "in transit", *rec.Status)
	assert.Equal(t, "BL-001", *rec.BillOfLading)
}

func TestExtractRecords_ExtraColumnsIgnored(t *testing.T) {
	rows := [][]string{
		append(append([]string{}, header...), "Extra"),
		{"", "", "CT9", "", "", "", "", "", "", "", "", "ignored"},
	}

	records, _, err := ExtractRecords(rows)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CT9", records[0].Machine)
}

func TestReadWorkbook_FirstSheetRawValues(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Customs", "Reference", "Machine"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"ok", "REF-1", "CT2", "", 45000}))

	path := filepath.Join(t.TempDir(), "upload.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := ReadWorkbook(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "CT2", rows[1][2])
	// raw values keep the date cell as a serial number
	assert.Equal(t, "45000", rows[1][4])
}

func TestReadWorkbook_MissingFile(t *testing.T) {
	_, err := ReadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrMalformedInput))
}
