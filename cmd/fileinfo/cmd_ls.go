package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/backmassage/fileinfo/internal/config"
	"github.com/backmassage/fileinfo/internal/display"
	"github.com/backmassage/fileinfo/internal/entity"
)

func newLsCmd(a *app) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List a directory in natural order with each entry's kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = config.NormalizeDirArg(args[0])
			}
			e, err := a.reg.Resolve(cmd.Context(), root)
			if err != nil {
				return err
			}
			dir, ok := e.(*entity.Directory)
			if !ok {
				return fmt.Errorf("%s is a %s, not a directory", root, e.Kind())
			}

			var entries []entity.Entity
			if recursive {
				entries, err = dir.Walk(cmd.Context(), a.cfg.IncludeHidden)
			} else {
				entries, err = dir.Files(cmd.Context(), a.cfg.IncludeHidden)
			}
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, e := range entries {
				size := "-"
				if !e.IsDir() {
					if n, err := e.Size(); err == nil {
						size = display.FormatBytes(n)
					}
				}
				rel, err := e.Base().RelPath(dir.Path())
				if err != nil {
					rel = e.Path()
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Kind(), size, rel)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	return cmd
}
