package core

import "strings"

// Column names the pipeline gives meaning to. Other columns are carried
// through for table display and generic text matching only.
const (
	ColArtist   = "Artist"
	ColTitle    = "Title"
	ColFormat   = "Format"
	ColGenre    = "Genre"
	ColReleased = "Released"
	ColLabel    = "Label"
	ColRating   = "Rating"
)

// Field is a single nullable cell.
type Field struct {
	Value string
	Valid bool // false means null
}

// Text returns the display text of the field. Null renders as "".
func (f Field) Text() string {
	if !f.Valid {
		return ""
	}
	return f.Value
}

// NewField builds a field from raw cell text. An empty cell is null.
func NewField(s string) Field {
	if s == "" {
		return Field{}
	}
	return Field{Value: s, Valid: true}
}

// View selects how a result is presented.
type View string

const (
	ViewTable View = "table"
	ViewCards View = "cards"
)

// ParseView maps user input to a View, falling back to def for anything unknown.
func ParseView(s string, def View) View {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case ViewTable:
		return ViewTable
	case ViewCards:
		return ViewCards
	default:
		return def
	}
}

// Selection holds the facet constraints for one interaction.
// An empty Artist, Format or Genre means no constraint; an empty Released
// set means no constraint.
type Selection struct {
	Artist   string
	Format   string
	Genre    string
	Released []string
}

// IsZero reports whether the selection constrains nothing.
func (s Selection) IsZero() bool {
	return s.Artist == "" && s.Format == "" && s.Genre == "" && len(s.Released) == 0
}

// Params is the complete, immutable input of one pipeline run. Surfaces
// rebuild it from scratch for every request.
type Params struct {
	Selection Selection
	Query     string
	View      View
}
