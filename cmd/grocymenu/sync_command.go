package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"grocymenu/internal/config"
	"grocymenu/internal/menufile"
	"grocymenu/internal/menusync"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch stock from Grocy and write the menu data file",
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

			output := strings.TrimSpace(outputFlag)
			if output != "" {
				if output, err = config.ExpandPath(output); err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
			}

			syncer, err := menusync.NewFromConfig(cfg, output, logger)
			if err != nil {
				return err
			}

			runCtx, cancel := signalContext(cmd)
			defer cancel()

			out := cmd.OutOrStdout()
			if dryRun {
				result, err := syncer.Build(runCtx)
				if err != nil {
					return err
				}
				return menufile.Encode(out, result.Sections)
			}

			result, err := syncer.Run(runCtx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Data has been written to %s\n", result.OutputPath)
			if result.Stats.FailedLookups > 0 {
				fmt.Fprintf(out, "%d product location lookups failed; those items are listed without the marker\n", result.Stats.FailedLookups)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Override menu.output_path")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the menu YAML to stdout instead of writing the file")
	return cmd
}
