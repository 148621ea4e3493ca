package render

import (
	"strings"

	"github.com/JonMunkholm/vinyl/internal/core"
)

// DefaultCardsPerRow is the card grid width when none is configured.
const DefaultCardsPerRow = 3

// Card is the display form of one record in the grid. Text fields hold raw
// values with null rendered as ""; surfaces escape them for their medium.
type Card struct {
	Artist   string
	Title    string
	Format   string
	Genre    string
	Released string
	Label    string

	// Rating is set only when HasRating is true.
	Rating    string
	HasRating bool

	CoverID string
	Cover   string // image reference, "" when the record has no identifier
}

// BuildCard composes the card for r.
func BuildCard(r core.Record, covers CoverResolver) Card {
	artist := r.Text(core.ColArtist)
	title := r.Text(core.ColTitle)
	id := covers.ID(artist, title)

	c := Card{
		Artist:   artist,
		Title:    title,
		Format:   r.Text(core.ColFormat),
		Genre:    r.Text(core.ColGenre),
		Released: r.Text(core.ColReleased),
		Label:    r.Text(core.ColLabel),
		CoverID:  id,
		Cover:    covers.ReferenceFor(id),
	}
	c.Rating, c.HasRating = ratingText(r.Get(core.ColRating))
	return c
}

// nullRatings are cell texts that spreadsheets and exports use for "no value".
var nullRatings = map[string]bool{
	"nan":  true,
	"none": true,
	"null": true,
}

func ratingText(f core.Field) (string, bool) {
	if !f.Valid {
		return "", false
	}
	v := strings.TrimSpace(f.Value)
	if v == "" || nullRatings[strings.ToLower(v)] {
		return "", false
	}
	return v, true
}

// Partition splits items into consecutive groups of size in order. The last
// group holds the remainder and is never padded. A size below one falls
// back to DefaultCardsPerRow.
func Partition[T any](items []T, size int) [][]T {
	if size < 1 {
		size = DefaultCardsPerRow
	}
	if len(items) == 0 {
		return nil
	}

	groups := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		groups = append(groups, items[start:end:end])
	}
	return groups
}
