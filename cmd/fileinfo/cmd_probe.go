package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/fileinfo/internal/check"
	"github.com/backmassage/fileinfo/internal/probe"
)

func newProbeCmd(a *app) *cobra.Command {
	var (
		save  string
		store string
		zstd  bool
	)

	cmd := &cobra.Command{
		Use:   "probe <media>...",
		Short: "Run mediainfo and print or archive its raw report",
		Long: `Run mediainfo against each file. Without --save or --store the raw
report is written to stdout. --store DIR keeps one report per file under
DIR, named so that --reports DIR can replay them later without mediainfo.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if save != "" && len(args) > 1 {
				return fmt.Errorf("--save takes a single file; use --store for %d files", len(args))
			}
			bin, err := check.ResolveMediaInfo(&a.cfg)
			if err != nil {
				return err
			}
			mi := probe.MediaInfo{
				Binary:  bin,
				Output:  string(a.cfg.MediaInfoOutput),
				Timeout: a.cfg.ProbeTimeout,
			}

			for _, path := range args {
				raw, err := mi.Raw(cmd.Context(), path)
				if err != nil {
					return err
				}
				switch {
				case save != "":
					err = probe.WriteArchive(save, raw)
				case store != "":
					dst := filepath.Join(store, probe.ArchiveName(path, zstd))
					a.log.Debug(a.cfg.Verbose, "report %s -> %s", path, dst)
					err = probe.WriteArchive(dst, raw)
				default:
					_, err = cmd.OutOrStdout().Write(raw)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&save, "save", "o", "", "Write the report to `FILE` (zstd-compressed when it ends in .zst)")
	cmd.Flags().StringVar(&store, "store", "", "Write one report per file under `DIR`")
	cmd.Flags().BoolVar(&zstd, "zstd", false, "Compress reports written with --store")
	return cmd
}
