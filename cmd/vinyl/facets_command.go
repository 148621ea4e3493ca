package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/vinyl/internal/core"
)

func newFacetsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List the values each filter accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := ctx.loadCollection(cmd.Context())
			if err != nil {
				return err
			}
			facets := core.Facets(coll)
			if asJSON {
				return writeJSON(cmd, facetsJSON(facets))
			}

			w := cmd.OutOrStdout()
			for i, f := range facets {
				if i > 0 {
					fmt.Fprintln(w)
				}
				flag := "--" + strings.ToLower(f.Column)
				if !f.Available {
					fmt.Fprintf(w, "%s (%s): not in this collection\n", f.Column, flag)
					continue
				}
				fmt.Fprintf(w, "%s (%s): %s\n", f.Column, flag, english.Plural(len(f.Values), "value", ""))
				for _, v := range f.Values {
					fmt.Fprintf(w, "  %s\n", v)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the facets as JSON")
	return cmd
}

type facetJSON struct {
	Column    string   `json:"column"`
	Multi     bool     `json:"multi"`
	Available bool     `json:"available"`
	Values    []string `json:"values"`
}

func facetsJSON(facets []core.Facet) []facetJSON {
	out := make([]facetJSON, len(facets))
	for i, f := range facets {
		values := f.Values
		if values == nil {
			values = []string{}
		}
		out[i] = facetJSON{Column: f.Column, Multi: f.Multi, Available: f.Available, Values: values}
	}
	return out
}
