package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reelmatch/internal/api"
	"reelmatch/internal/poster"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var (
		topN        int
		noPosters   bool
		savePosters string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:     "recommend <title...>",
		Aliases: []string{"rec"},
		Short:   "Recommend titles similar to the given one",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := ctx.openService(cmd.Context(), !noPosters)
			if err != nil {
				return err
			}
			defer cleanup()

			n := svc.DefaultTopN()
			if cmd.Flags().Changed("top") {
				n = topN
			}
			rec, err := svc.Recommend(cmd.Context(), strings.Join(args, " "), n)
			if err != nil {
				return describeError(err)
			}

			var files []string
			if dir := strings.TrimSpace(savePosters); dir != "" {
				files, err = poster.Export(dir, exportResults(rec))
				if err != nil {
					return describeError(err)
				}
			}

			if asJSON {
				return writeJSON(cmd, api.FromRecommendation(rec, files))
			}
			renderRecommendation(cmd, rec, files)
			return nil
		},
	}

	cmd.Flags().IntVarP(&topN, "top", "n", 0, "Number of recommendations (default from recommend.top_n)")
	cmd.Flags().BoolVar(&noPosters, "no-posters", false, "Skip poster lookups")
	cmd.Flags().StringVar(&savePosters, "save-posters", "", "Write posters as numbered PNG files into this directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func exportResults(rec *api.Recommendation) []poster.Result {
	out := make([]poster.Result, len(rec.Items))
	for i, item := range rec.Items {
		if item.Poster != nil {
			out[i] = *item.Poster
			continue
		}
		out[i] = poster.Result{Title: item.Match.Title}
	}
	return out
}

func renderRecommendation(cmd *cobra.Command, rec *api.Recommendation, files []string) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	heading := fmt.Sprintf("Because you searched %q", rec.Result.Resolved)
	if rec.Result.Substring {
		heading += fmt.Sprintf(" (matched from %q)", rec.Result.Query)
	}
	for _, line := range renderSectionHeader(heading, colorize) {
		fmt.Fprintln(out, line)
	}
	if len(rec.Items) == 0 {
		fmt.Fprintln(out, "No recommendations.")
		return
	}

	withPosters := rec.Items[0].Poster != nil
	headers := []string{"#", "Title", "Score"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight}
	if withPosters {
		headers = append(headers, "Poster")
		aligns = append(aligns, alignLeft)
	}
	if len(files) > 0 {
		headers = append(headers, "File")
		aligns = append(aligns, alignPath)
	}

	rows := make([][]string, 0, len(rec.Items))
	for i, item := range rec.Items {
		row := []string{
			strconv.Itoa(item.Rank),
			item.Match.Title,
			strconv.FormatFloat(item.Match.Score, 'f', 3, 64),
		}
		if withPosters {
			row = append(row, item.Poster.Status())
		}
		if len(files) > 0 {
			file := ""
			if i < len(files) {
				file = files[i]
			}
			row = append(row, file)
		}
		rows = append(rows, row)
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
}
