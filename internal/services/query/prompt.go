package query

import (
	"fmt"
	"strings"
)

// Instruction block sent ahead of every user question. The schema description
// must stay in sync with models.MachineRecord.
const sqlPromptTemplate = `You are a SQL generator for a SQLite database that tracks machine shipments.

Table "machines" has these columns:
- id: INTEGER, primary key
- customs: TEXT, customs clearance status
- reference: TEXT, internal shipment reference
- machine: TEXT, machine name or code (never null)
- pn: TEXT, part number
- etb: TEXT, estimated berthing date as YYYY-MM-DD
- eta_port: TEXT, estimated arrival at port as YYYY-MM-DD
- eta_destination: TEXT, estimated arrival at final destination as YYYY-MM-DD
- ship: TEXT, vessel name
- division: TEXT, company division
- status: TEXT, shipment status
- bl: TEXT, bill of lading number

Hard rules:
- Respond with exactly one SQLite SELECT statement and nothing else.
- Never modify data: no INSERT, UPDATE, DELETE, DROP, ALTER or PRAGMA.
- Match text case-insensitively using LIKE with '%%' wildcards.
- Do not wrap the SQL in markdown code fences and do not add commentary.

Question: %s`

const explainPromptTemplate = `Summarize the following query result in one short sentence for the user, in the language "%s".

Question: %s
Result rows (JSON): %s

Respond with plain text only, no markdown.`

func buildSQLPrompt(question string) string {
	return fmt.Sprintf(sqlPromptTemplate, question)
}

func buildExplainPrompt(question, serializedRows, lang string) string {
	return fmt.Sprintf(explainPromptTemplate, lang, question, serializedRows)
}

// stripFences removes markdown code fences the model adds despite being told
// not to, e.g. "```sql\nSELECT ...\n```".
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = s[3:]
		if nl := strings.Index(s, "\n"); nl >= 0 && len(strings.Fields(s[:nl])) <= 1 {
			// first fence line is just a language tag
			s = s[nl+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
