package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/vinyl/internal/core"
	"github.com/JonMunkholm/vinyl/internal/render"
)

type searchOptions struct {
	artist   string
	format   string
	genre    string
	released []string
	view     string
	perRow   int
	json     bool
}

// searchResult is the --json shape; it matches GET /api/records.
type searchResult struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   int        `json:"total"`
	Matched int        `json:"matched"`
	Summary string     `json:"summary"`
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Filter and search the collection",
		Long: `Filter the collection by facet and keep the records whose text contains
every keyword of the query. Filler words such as "the", "album" and "by"
are ignored, and matching is case-insensitive.`,
		Example: `  vinyl search purple rain
  vinyl search --format LP --released 1984 --released 1985
  vinyl search --genre Jazz --view cards`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			coll, err := ctx.loadCollection(cmd.Context())
			if err != nil {
				return err
			}

			params := core.Params{
				Selection: core.Selection{
					Artist:   opts.artist,
					Format:   opts.format,
					Genre:    opts.genre,
					Released: opts.released,
				},
				Query: strings.Join(args, " "),
				View:  core.ParseView(opts.view, core.ParseView(cfg.View.DefaultView, core.ViewTable)),
			}
			if opts.json {
				params.View = core.ViewTable
			}

			perRow := opts.perRow
			if perRow <= 0 {
				perRow = cfg.View.CardsPerRow
			}

			result := core.Apply(coll, params)
			out := render.Render(result, coll.Len(), render.Options{
				View:        params.View,
				CardsPerRow: perRow,
				Covers:      ctx.covers(),
			})

			if opts.json {
				rows := out.Rows
				if rows == nil {
					rows = [][]string{}
				}
				return writeJSON(cmd, searchResult{
					Columns: out.Columns,
					Rows:    rows,
					Total:   out.Total,
					Matched: out.Matched,
					Summary: out.Summary(),
				})
			}
			return printOutput(cmd, out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.artist, "artist", "", "Only records by this artist (exact match)")
	f.StringVar(&opts.format, "format", "", "Only records in this format (exact match)")
	f.StringVar(&opts.genre, "genre", "", "Only records in this genre (exact match)")
	f.StringArrayVar(&opts.released, "released", nil, "Only records released in this year (repeatable)")
	f.StringVar(&opts.view, "view", "", "Output view: table or cards (default $DEFAULT_VIEW)")
	f.IntVar(&opts.perRow, "per-row", 0, "Cards per row in the cards view (default $CARDS_PER_ROW)")
	f.BoolVar(&opts.json, "json", false, "Write the matching rows as JSON")

	return cmd
}

func printOutput(cmd *cobra.Command, out render.Output) error {
	w := cmd.OutOrStdout()
	if out.Empty {
		_, err := fmt.Fprintln(w, render.NoMatches)
		return err
	}

	var body string
	switch out.View {
	case core.ViewCards:
		body = renderCards(w, out.Groups)
	default:
		body = renderTable(out.Columns, out.Rows, isTerminal(w))
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", body, out.Summary())
	return err
}
