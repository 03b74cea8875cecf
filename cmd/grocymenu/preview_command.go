package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"grocymenu/internal/menusync"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show the menu that sync would write, without writing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			syncer, err := menusync.NewFromConfig(cfg, "", logger)
			if err != nil {
				return err
			}
			runCtx, cancel := signalContext(cmd)
			defer cancel()

			result, err := syncer.Build(runCtx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Sections) == 0 {
				fmt.Fprintln(out, "Menu is empty: no stocked items found")
				return nil
			}

			var rows [][]string
			for _, section := range result.Sections {
				for i, item := range section.Items {
					rows = append(rows, []string{section.Name, strconv.Itoa(i + 1), item})
				}
			}
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderTable([]string{"Category", "#", "Item"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft}, colorize))
			fmt.Fprintf(out, "%d items in %d categories (%d in %s, %d zero-stock skipped)\n",
				result.Stats.Items, result.Stats.Categories, result.Stats.Residents, cfg.Menu.FridgeLocation, result.Stats.ZeroQuantity)
			return nil
		},
	}
}
