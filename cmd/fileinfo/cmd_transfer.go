package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/fileinfo/internal/entity"
	"github.com/backmassage/fileinfo/internal/naming"
)

type transferMode int

const (
	transferCopy transferMode = iota
	transferMove
)

func newTransferCmd(a *app, mode transferMode) *cobra.Command {
	var (
		organize bool
		dryRun   bool
	)

	use, short := "cp <src>... <dst-dir>", "Copy files or trees into a directory without overwriting"
	if mode == transferMove {
		use, short = "mv <src>... <dst-dir>", "Move files or trees into a directory without overwriting"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dstDir := args[len(args)-1]
			if fi, err := os.Stat(dstDir); err == nil && !fi.IsDir() {
				return fmt.Errorf("%s is not a directory", dstDir)
			}
			if organize {
				a.requireProber()
			}

			resolver := naming.NewCollisionResolver()
			failed := 0
			for _, src := range args[:len(args)-1] {
				e, err := a.reg.Resolve(cmd.Context(), src)
				if err != nil {
					a.log.Error("%v", err)
					failed++
					continue
				}

				dst := filepath.Join(dstDir, e.Name())
				if organize {
					if p, ok := organizedPath(e, dstDir); ok {
						dst = p
					} else {
						a.log.Warn("%s: no title tag, keeping its name", src)
					}
				}
				dst = resolver.Resolve(e.Path(), dst)

				if dryRun {
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", e.Path(), dst)
					continue
				}
				if err := transfer(cmd, e, dst, mode); err != nil {
					a.log.Error("%v", err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", src, dst)
			}
			if failed > 0 {
				return exitError{1}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&organize, "organize", false, "Place media by tags: Artist/Album/NN - Title or Title/Title")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the planned destinations without touching files")
	return cmd
}

func transfer(cmd *cobra.Command, e entity.Entity, dst string, mode transferMode) error {
	if mode == transferMove {
		return e.Base().MoveTo(dst)
	}
	_, err := e.Base().CopyTo(cmd.Context(), dst)
	return err
}

// organizedPath derives a tag-based destination for media. Other kinds
// and untitled media report false.
func organizedPath(e entity.Entity, dstDir string) (string, bool) {
	m, ok := e.(*entity.Medium)
	if !ok {
		return "", false
	}
	t := m.Tags()
	artist := t.AlbumPerformer
	if artist == "" {
		artist = t.Performer
	}
	title := t.Title
	if title == "" || (t.Album != "" && t.TrackName != "") {
		title = t.TrackName
	}
	return naming.OrganizedPath(dstDir, naming.MediaTags{
		Title:         title,
		Album:         t.Album,
		Artist:        artist,
		TrackPosition: t.TrackPosition,
	}, e.Extension())
}
