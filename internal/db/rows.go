package db

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// rowSeparator terminates each column=value pair in a formatted row. It
// matches the separator the user_data formatter redacts up to.
const rowSeparator = ";"

// EachRow runs query and calls fn with every row formatted by FormatRow.
// It returns the number of rows visited.
func EachRow(ctx context.Context, conn *DB, query string, fn func(line string)) (int, error) {
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("db: query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return 0, fmt.Errorf("db: columns: %w", err)
	}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	n := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return n, fmt.Errorf("db: scan: %w", err)
		}
		fn(FormatRow(cols, values))
		n++
	}
	return n, rows.Err()
}

// FormatRow renders a row as "col=value; col=value;".
func FormatRow(cols []string, values []any) string {
	var b strings.Builder
	for i, col := range cols {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(col)
		b.WriteByte('=')
		if i < len(values) {
			b.WriteString(formatValue(values[i]))
		}
		b.WriteString(rowSeparator)
	}
	return b.String()
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(t)
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(t)
	}
}
