package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCoverCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cover ARTIST TITLE",
		Short: "Show the cover identifier and image reference for a record",
		Example: `  vinyl cover "Prince" "Purple Rain"
  vinyl cover "A Flock of Seagulls" "Telecommunication"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			covers := ctx.covers()
			id := covers.ID(args[0], args[1])
			if id == "" {
				return &userError{err: errors.New("invalid request: artist or title required")}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "id:        %s\n", id)
			fmt.Fprintf(w, "reference: %s\n", covers.ReferenceFor(id))
			if covers.BaseURL != "" {
				return nil
			}
			if path, ok := covers.Locate(id); ok {
				fmt.Fprintf(w, "file:      %s\n", path)
			} else {
				fmt.Fprintf(w, "file:      not found in %s\n", covers.Dir)
			}
			return nil
		},
	}
}
