package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelmatch/internal/config"
	"reelmatch/internal/poster"
)

func newPosterCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "poster <title...>",
		Short: "Look up the poster for one title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return errors.New("please enter a movie or TV show title")
			}
			svc, cfg, err := ctx.posterService()
			if err != nil {
				return err
			}

			res := svc.Poster(cmd.Context(), title)
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			kind, message := posterStatus(res, cfg)
			fmt.Fprintln(out, renderStatusLine(title, kind, message, colorize))

			if target := strings.TrimSpace(outPath); target != "" {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				if err := poster.WritePNG(expanded, res.Image); err != nil {
					return err
				}
				fmt.Fprintln(out, renderStatusLine("Saved", statusInfo, expanded, colorize))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the poster (or placeholder) as PNG")
	return cmd
}
