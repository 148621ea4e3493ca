// Package render turns a filtered collection into presentation data: a
// table or a grid of cards with cover references. It produces plain values;
// HTML and terminal surfaces format them.
package render

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/JonMunkholm/vinyl/internal/core"
)

// NoMatches is shown instead of a table or grid when nothing matched.
const NoMatches = "No records match"

// Options controls a render.
type Options struct {
	View        core.View
	CardsPerRow int
	Covers      CoverResolver
}

// Output is the rendered form of one result. Exactly one of Rows and
// Groups is populated, according to View, unless Empty is set, in which
// case neither is.
type Output struct {
	View    core.View
	Empty   bool
	Columns []string
	Rows    [][]string
	Groups  [][]Card
	Total   int // records in the loaded collection
	Matched int // records in the result
}

// Render builds the output for result. total is the size of the collection
// the result was filtered from and only feeds the summary.
func Render(result *core.Collection, total int, opts Options) Output {
	out := Output{
		View:    opts.View,
		Columns: result.Columns(),
		Total:   total,
		Matched: result.Len(),
	}
	if out.View != core.ViewCards {
		out.View = core.ViewTable
	}

	if result.Len() == 0 {
		out.Empty = true
		return out
	}

	records := result.Records()
	switch out.View {
	case core.ViewCards:
		cards := make([]Card, len(records))
		for i, r := range records {
			cards[i] = BuildCard(r, opts.Covers)
		}
		out.Groups = Partition(cards, opts.CardsPerRow)
	default:
		out.Rows = make([][]string, len(records))
		for i, r := range records {
			out.Rows[i] = r.Strings()
		}
	}
	return out
}

// Summary describes the result size, e.g. "12 of 1,204 records".
func (o Output) Summary() string {
	if o.Empty {
		return NoMatches
	}
	if o.Matched == o.Total {
		return english.Plural(o.Matched, "record", "")
	}
	return fmt.Sprintf("%s of %s", humanize.Comma(int64(o.Matched)),
		english.Plural(o.Total, "record", ""))
}
