package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/backmassage/fileinfo/internal/display"
	"github.com/backmassage/fileinfo/internal/entity"
	"github.com/backmassage/fileinfo/internal/probe"
	"github.com/backmassage/fileinfo/internal/term"
)

// resolveMedium classifies path and insists on a medium.
func (a *app) resolveMedium(cmd *cobra.Command, path string) (*entity.Medium, error) {
	e, err := a.reg.Resolve(cmd.Context(), path)
	if err != nil {
		return nil, err
	}
	m, ok := e.(*entity.Medium)
	if !ok {
		a.requireProber()
		return nil, fmt.Errorf("%s is a %s, not a medium", path, e.Kind())
	}
	return m, nil
}

func newTracksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks <media>",
		Short: "List the video, audio and subtitle tracks of a medium",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.resolveMedium(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, v := range m.VideoTracks() {
				printTrack(out, "video", i, v.StreamID, display.VideoLine(v))
			}
			for i, au := range m.AudioTracks() {
				printTrack(out, "audio", i, au.StreamID, display.AudioLine(au))
			}
			for i, s := range m.SubtitleTracks() {
				line := s.Codec()
				if lang, ok := s.Language(); ok {
					line += ", " + lang.Name
				}
				if title, ok := s.Title(); ok {
					line += fmt.Sprintf(", %q", title)
				}
				printTrack(out, "subtitle", i, s.StreamID, line)
			}
			return nil
		},
	}
}

func printTrack(w io.Writer, kind string, index int, id func() (int, bool), line string) {
	label := fmt.Sprintf("%s #%d", kind, index)
	if sid, ok := id(); ok {
		label += fmt.Sprintf(" (id %d)", sid)
	}
	fmt.Fprintf(w, "%-22s %s\n", term.Paint(term.Cyan, label), line)
}

func newChaptersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chapters <media>",
		Short: "Print the chapter timeline of a medium",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.resolveMedium(cmd, args[0])
			if err != nil {
				return err
			}
			printChapters(cmd.OutOrStdout(), m.Chapters())
			return nil
		},
	}
}

func printChapters(w io.Writer, chapters []probe.Chapter) {
	for _, c := range chapters {
		fmt.Fprintf(w, "%3d  %s  %s\n", c.Number,
			display.FormatTimestamp(c.Start), display.FormatTimestamp(c.Duration))
	}
}
