package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/fileinfo/internal/display"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>...",
		Short: "Classify paths and summarise each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for i, path := range args {
				e, err := a.reg.Resolve(cmd.Context(), path)
				if err != nil {
					a.log.Error("%v", err)
					failed++
					continue
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				display.PrintFields(out, display.Summary(e))
			}
			if failed > 0 {
				return exitError{1}
			}
			return nil
		},
	}
}
