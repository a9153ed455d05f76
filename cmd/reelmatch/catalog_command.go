package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reelmatch/internal/api"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the loaded catalog",
	}
	catalogCmd.AddCommand(newCatalogStatsCommand(ctx))
	return catalogCmd
}

func newCatalogStatsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog and vocabulary sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := ctx.openService(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := svc.Stats()
			if err != nil {
				return describeError(err)
			}
			cfg, _ := ctx.ensureConfig()
			view := api.FromStats(cfg.Catalog.Path, stats)
			if asJSON {
				return writeJSON(cmd, view)
			}
			rows := [][]string{
				{"Catalog", view.Path},
				{"Titles", strconv.Itoa(view.Titles)},
				{"Vocabulary terms", strconv.Itoa(view.Vocabulary)},
				{"Non-zero weights", strconv.Itoa(view.Weights)},
				{"Built", view.BuiltAt},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
