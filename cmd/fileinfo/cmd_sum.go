package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/fileinfo/internal/config"
	"github.com/backmassage/fileinfo/internal/entity"
)

func newSumCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum <file>...",
		Short: "Print content checksums",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo := entity.Algorithm(a.cfg.Checksum)
			failed := 0
			for _, path := range args {
				e, err := a.reg.Resolve(cmd.Context(), path)
				if err != nil {
					a.log.Error("%v", err)
					failed++
					continue
				}
				sum, err := e.Checksum(algo)
				if err != nil {
					a.log.Error("%s: %v", path, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hex.EncodeToString(sum), e.Path())
			}
			if failed > 0 {
				return exitError{1}
			}
			return nil
		},
	}
	cmd.Flags().Var(config.ChecksumValue(&a.cfg.Checksum), "algo", "Checksum algorithm: md5, sha256, blake2b (overrides --checksum)")
	return cmd
}

func newCmpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two files by content; exit status 1 when they differ",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := a.reg.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			equal, err := a.reg.IsEqualPath(cmd.Context(), first, args[1])
			if err != nil {
				return err
			}
			if !equal {
				fmt.Fprintf(cmd.OutOrStdout(), "%s and %s differ\n", args[0], args[1])
				return exitError{1}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s and %s are identical\n", args[0], args[1])
			return nil
		},
	}
}
