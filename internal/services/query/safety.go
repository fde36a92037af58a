package query

import (
	"fmt"
	"strings"

	"machine-tracking-backend/internal/apperrors"
)

// ValidateReadOnly accepts only a single SELECT statement. This is a textual
// gate, not a parser: anything not starting with "select", or carrying a
// statement separator beyond one trailing semicolon, is rejected before it
// gets near the database.
func ValidateReadOnly(sqlText string) error {
	s := strings.TrimSpace(sqlText)
	s = strings.TrimSuffix(s, ";")

	if !strings.HasPrefix(strings.ToLower(s), "select") {
		return fmt.Errorf("%w: statement must start with SELECT", apperrors.ErrUnsafeQuery)
	}
	if strings.Contains(s, ";") {
		return fmt.Errorf("%w: multiple statements", apperrors.ErrUnsafeQuery)
	}
	return nil
}
