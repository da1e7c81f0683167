package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/fileinfo/internal/check"
	"github.com/backmassage/fileinfo/internal/display"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report mediainfo availability and configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			display.PrintBanner(cmd.OutOrStdout(), version)
			if n := check.RunCheck(cmd.Context(), &a.cfg, a.log); n > 0 {
				a.log.Error("%d problem(s) found", n)
				return exitError{1}
			}
			return nil
		},
	}
}
