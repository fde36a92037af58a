package ingest

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"machine-tracking-backend/internal/apperrors"
	"machine-tracking-backend/internal/models"
)

// Fixed A–K layout: 1=customs 2=reference 3=machine 4=pn 5=etb 6=eta_port
// 7=eta_destination 8=ship 9=division 10=status 11=bl. Mapping is positional;
// the header row is ignored.
const columnCount = 11

// ReadWorkbook returns the raw rows of the first worksheet. RawCellValue keeps
// date cells as serial numbers instead of locale-formatted strings.
func ReadWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

// ExtractRecords maps data rows (row 2 onward) onto MachineRecords. All-blank
// rows are skipped silently; the second return value is how many were. Extra
// columns past K are ignored.
func ExtractRecords(rows [][]string) ([]models.MachineRecord, int, error) {
	if len(rows) < 2 {
		return nil, 0, fmt.Errorf("%w: %d rows", apperrors.ErrMalformedInput, len(rows))
	}

	var records []models.MachineRecord
	skipped := 0

	for _, row := range rows[1:] {
		cells := make([]string, columnCount)
		copy(cells, row) // rows can be ragged, missing cells stay empty

		if isBlank(cells) {
			skipped++
			continue
		}

		machine := cells[2]
		if strings.TrimSpace(machine) == "" {
			machine = MachineFallback
		}

		records = append(records, models.MachineRecord{
			Customs:        passThrough(cells[0]),
			Reference:      passThrough(cells[1]),
			Machine:        machine,
			PartNumber:     NormalizePartNumber(cells[3]),
			ETB:            NormalizeDate(cells[4]),
			ETAPort:        NormalizeDate(cells[5]),
			ETADestination: NormalizeDate(cells[6]),
			Ship:           passThrough(cells[7]),
			Division:       passThrough(cells[8]),
			Status:         passThrough(cells[9]),
			BillOfLading:   passThrough(cells[10]),
		})
	}

	return records, skipped, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
