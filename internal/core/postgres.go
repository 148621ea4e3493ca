package core

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// DefaultTable is read when a postgres source URL names no table.
const DefaultTable = "records"

func isPostgresSource(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// splitPostgresSource separates the connection string from the table named
// in the URL fragment: postgres://host/db#catalog.records
func splitPostgresSource(source string) (dsn string, table pgx.Identifier, err error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", nil, err
	}
	name := u.Fragment
	if name == "" {
		name = DefaultTable
	}
	u.Fragment = ""
	return u.String(), pgx.Identifier(strings.Split(name, ".")), nil
}

// loadPostgres reads every row of one table. Column order follows the
// table definition; SQL NULL becomes a null Field.
func loadPostgres(ctx context.Context, source string) (*Collection, error) {
	display := maskedSource(source)

	dsn, table, err := splitPostgresSource(source)
	if err != nil {
		return nil, unreadable(display, fmt.Errorf("parse source url: %w", err))
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, unavailable(display, err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, "SELECT * FROM "+table.Sanitize())
	if err != nil {
		return nil, unreadable(display, fmt.Errorf("query %s: %w", table.Sanitize(), err))
	}
	defer rows.Close()

	descs := rows.FieldDescriptions()
	header := make([]string, len(descs))
	for i, d := range descs {
		header[i] = d.Name
	}

	var body [][]string
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, unreadable(display, fmt.Errorf("scan row: %w", err))
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatCell(v)
		}
		body = append(body, row)
	}
	if err := rows.Err(); err != nil {
		return nil, unreadable(display, fmt.Errorf("read rows: %w", err))
	}

	return NewCollection(display, header, body), nil
}

// formatCell renders a database value as cell text. NULL and invalid
// values yield "", which NewCollection turns into a null field.
func formatCell(v any) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case pgtype.Numeric:
		if !val.Valid {
			return ""
		}
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return ""
		}
		if f.Float64 == float64(int64(f.Float64)) {
			return fmt.Sprintf("%.0f", f.Float64)
		}
		return fmt.Sprintf("%g", f.Float64)

	case pgtype.Text:
		if !val.Valid {
			return ""
		}
		return val.String

	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02")

	case []byte:
		return string(val)

	case string:
		return val

	default:
		return fmt.Sprintf("%v", v)
	}
}

// maskedSource hides credentials in URL-style sources for logs and errors.
func maskedSource(source string) string {
	u, err := url.Parse(source)
	if err != nil || u.User == nil {
		return source
	}
	u.User = url.User("MASKED")
	return u.String()
}
