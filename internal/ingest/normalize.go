package ingest

import (
	"strconv"
	"strings"
	"time"
)

const (
	// Serial day for 1970-01-01 in the spreadsheet epoch.
	serialEpochOffset = 25569
	secondsPerDay     = 86400

	// Numeric cells below this are not dates (lands in late 1995). The sheets
	// this tool ingests never reference anything older.
	minDateSerial = 35000

	// Substituted when the machine cell is blank.
	MachineFallback = "UNKNOWN"
)

// Layouts seen in real uploads. Tried in order, first hit wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"2/1/2006",
	"2-Jan-06",
	"Jan 2, 2006",
	"2006-01-02T15:04:05Z07:00",
}

// NormalizeDate converts a raw date cell into a YYYY-MM-DD string, or nil when
// the cell is blank, marked "to confirm", or unparseable. Numeric cells are
// spreadsheet serial dates; the workbook is read with raw cell values so they
// arrive here as numbers in string form.
func NormalizeDate(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "confirm") || lower == "tbc" {
		// "Por confirmar" / "to be confirmed" — date not known yet
		return nil
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial < minDateSerial {
			return nil
		}
		t := time.Unix(int64((serial-serialEpochOffset)*secondsPerDay), 0).UTC()
		if t.Year() > 2200 {
			return nil
		}
		v := t.Format("2006-01-02")
		return &v
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			v := t.UTC().Format("2006-01-02")
			return &v
		}
	}
	return nil
}

// NormalizePartNumber strips the trailing ".0" that numeric-typed cells leave
// on part numbers. Everything else passes through untouched.
func NormalizePartNumber(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, ".0")
	return &s
}

// passThrough keeps the cell as-is, mapping blank cells to nil.
func passThrough(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return &raw
}
