package warehouse

import (
	"database/sql"
	"fmt"
	"strings"
)

// Render converts a result set into a markdown-style table. NULLs render
// as empty cells. Returns "(no rows)" for an empty result set.
func Render(rows *sql.Rows) (string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("reading columns: %w", err)
	}

	var records [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		scanArgs := make([]any, len(cols))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return "", fmt.Errorf("scanning row: %w", err)
		}

		record := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating rows: %w", err)
	}

	if len(records) == 0 {
		return "(no rows)", nil
	}

	var b strings.Builder
	b.WriteString("| ")
	b.WriteString(strings.Join(cols, " | "))
	b.WriteString(" |\n|")
	for range cols {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, record := range records {
		b.WriteString("| ")
		b.WriteString(strings.Join(record, " | "))
		b.WriteString(" |\n")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
