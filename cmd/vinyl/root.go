package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "vinyl",
		Short:         "Browse a vinyl record collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.source, "source", "s", "", "Collection source: .xlsx/.csv/.tsv path or postgres:// URL (default $CATALOG_SOURCE)")
	pf.StringVar(&flags.sheet, "sheet", "", "Worksheet name for spreadsheet sources (default: first sheet)")
	pf.StringVar(&flags.coversDir, "covers-dir", "", "Local covers directory (default $COVERS_DIR)")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level written to stderr: debug, info, warn, error")

	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newFacetsCommand(ctx))
	rootCmd.AddCommand(newCoverCommand(ctx))

	return rootCmd
}
