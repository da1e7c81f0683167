package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/backmassage/fileinfo/internal/config"
	"github.com/backmassage/fileinfo/internal/display"
	"github.com/backmassage/fileinfo/internal/pipeline"
)

func newScanCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		exts   []string
	)

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Classify every file under a directory concurrently",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = config.NormalizeDirArg(args[0])
			}
			a.requireProber()

			rep, err := pipeline.Run(cmd.Context(), pipeline.Options{
				Root:          root,
				IncludeHidden: a.cfg.IncludeHidden,
				Extensions:    exts,
				Workers:       a.cfg.Workers,
				Verbose:       a.cfg.Verbose,
			}, a.reg, a.log)
			if rep == nil || (err != nil && len(rep.Results) == 0) {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if encErr := enc.Encode(rep.Inventory()); encErr != nil {
					return encErr
				}
			} else {
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, r := range rep.Results {
					if r.Err != nil {
						fmt.Fprintf(tw, "%s\t%s\t%s\n", "error", "-", r.Path)
						continue
					}
					size := "-"
					if n, err := r.Entity.Size(); err == nil {
						size = display.FormatBytes(n)
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Entity.Kind(), size, r.Path)
				}
				if flushErr := tw.Flush(); flushErr != nil {
					return flushErr
				}
			}
			if err != nil {
				return err
			}
			if rep.Stats.Failed > 0 {
				return exitError{1}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the inventory as JSON")
	cmd.Flags().StringSliceVar(&exts, "ext", nil, "Only classify files with these extensions (e.g. --ext .mkv,.mp4)")
	return cmd
}
