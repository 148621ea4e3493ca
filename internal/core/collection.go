package core

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// schema is the column metadata shared by a collection and all views
// derived from it.
type schema struct {
	columns []string
	index   map[string]int
}

// Record is one row of a collection.
type Record struct {
	schema *schema
	fields []Field
}

// Get returns the named field. A column the collection does not have
// behaves like a null cell.
func (r Record) Get(column string) Field {
	if r.schema == nil {
		return Field{}
	}
	i, ok := r.schema.index[column]
	if !ok || i >= len(r.fields) {
		return Field{}
	}
	return r.fields[i]
}

// Text returns the display text of the named field ("" for null or absent).
func (r Record) Text(column string) string {
	return r.Get(column).Text()
}

// Fields returns the record's cells in column order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Strings returns the record's display text in column order.
func (r Record) Strings() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Text()
	}
	return out
}

// searchText is the lower-cased, space-joined text of every cell, nulls
// included as empty strings so column positions stay stable. "" is the
// null text everywhere, so a query for "nan" or "none" never matches a
// missing value.
func (r Record) searchText() string {
	return strings.ToLower(strings.Join(r.Strings(), " "))
}

// Collection is an ordered, read-only set of records.
type Collection struct {
	id      uuid.UUID
	source  string
	schema  *schema
	records []Record
}

// NewCollection builds a collection from a header row and raw cell rows.
// Headers are trimmed and made unique; cells are kept verbatim, empty cells
// become null. Rows are padded or truncated to the header width and rows
// with no non-empty cell are skipped.
func NewCollection(source string, header []string, rows [][]string) *Collection {
	columns := normalizeHeaders(header)
	sc := &schema{columns: columns, index: make(map[string]int, len(columns))}
	for i, c := range columns {
		sc.index[c] = i
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		fields := make([]Field, len(columns))
		for i := range columns {
			if i < len(row) {
				fields[i] = NewField(row[i])
			}
		}
		records = append(records, Record{schema: sc, fields: fields})
	}

	return &Collection{
		id:      uuid.New(),
		source:  source,
		schema:  sc,
		records: records,
	}
}

// ID identifies this loaded collection in logs.
func (c *Collection) ID() uuid.UUID { return c.id }

// Source returns the location the collection was loaded from.
func (c *Collection) Source() string { return c.source }

// Columns returns the column names in source order.
func (c *Collection) Columns() []string {
	out := make([]string, len(c.schema.columns))
	copy(out, c.schema.columns)
	return out
}

// HasColumn reports whether the collection has the named column.
func (c *Collection) HasColumn(name string) bool {
	_, ok := c.schema.index[name]
	return ok
}

// Len returns the number of records.
func (c *Collection) Len() int { return len(c.records) }

// Records returns the records in order. The slice is a copy; records
// themselves are immutable.
func (c *Collection) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// At returns the i-th record.
func (c *Collection) At(i int) Record { return c.records[i] }

// where returns a view holding the records that satisfy keep, in order.
func (c *Collection) where(keep func(Record) bool) *Collection {
	kept := make([]Record, 0, len(c.records))
	for _, r := range c.records {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	return &Collection{id: c.id, source: c.source, schema: c.schema, records: kept}
}

// normalizeHeaders trims every header and resolves blanks and duplicates:
// a blank header at position i becomes "Unnamed: i", and repeats of a name
// get ".1", ".2", ... suffixes in order of appearance.
func normalizeHeaders(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	taken := make(map[string]bool, len(header))

	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		base := name
		for taken[name] {
			seen[base]++
			name = base + "." + strconv.Itoa(seen[base])
		}
		taken[name] = true
		out[i] = name
	}
	return out
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
