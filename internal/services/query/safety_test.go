package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"machine-tracking-backend/internal/apperrors"
)

func TestValidateReadOnly_Accepts(t *testing.T) {
	for _, q := range []string{
		"SELECT * FROM machines",
		"select machine, status from machines where machine like '%ct2%'",
		"  SELECT count(*) FROM machines  ",
		"SELECT * FROM machines;",
		"SeLeCt 1",
	} {
		assert.NoError(t, ValidateReadOnly(q), "query %q", q)
	}
}

func TestValidateReadOnly_Rejects(t *testing.T) {
	for _, q := range []string{
		"DROP TABLE machines",
		"DELETE FROM machines",
		"UPDATE machines SET status = 'gone'",
		"INSERT INTO machines (machine) VALUES ('x')",
		"PRAGMA table_info(machines)",
		"SELECT 1; DROP TABLE machines",
		"SELECT 1; SELECT 2",
		"",
		"   ",
		"-- comment\nSELECT 1",
	} {
		err := ValidateReadOnly(q)
		assert.ErrorIs(t, err, apperrors.ErrUnsafeQuery, "query %q", q)
	}
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"```sql\nSELECT * FROM machines WHERE machine LIKE '%CT2%'\n```": "SELECT * FROM machines WHERE machine LIKE '%CT2%'",
		"```\nSELECT 1\n```":    "SELECT 1",
		"```sql\nSELECT 1```":   "SELECT 1",
		"SELECT 1":              "SELECT 1",
		"  SELECT 1  ":          "SELECT 1",
		"```SELECT 1 FROM x```": "SELECT 1 FROM x",
	}
	for raw, want := range cases {
		assert.Equal(t, want, stripFences(raw), "raw %q", raw)
	}
}
