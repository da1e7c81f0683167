package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/fileinfo/internal/entity"
	"github.com/backmassage/fileinfo/internal/probe"
	"github.com/backmassage/fileinfo/internal/term"
)

// Field is one labelled line of a summary.
type Field struct {
	Label string
	Value string
}

// Summary describes e with the fields appropriate to its kind.
func Summary(e entity.Entity) []Field {
	fields := []Field{
		{"Path", e.Path()},
		{"Kind", string(e.Kind())},
	}
	if size, err := e.Size(); err == nil {
		fields = append(fields, Field{"Size", FormatBytes(size)})
	}

	switch v := e.(type) {
	case *entity.Document:
		fields = append(fields, documentFields(v)...)
	case *entity.Image:
		fields = append(fields,
			Field{"Format", v.Format()},
			Field{"Resolution", fmt.Sprintf("%dx%d", v.Width(), v.Height())},
		)
	case *entity.Medium:
		fields = append(fields, mediumFields(v)...)
	}
	return fields
}

func documentFields(d *entity.Document) []Field {
	fields := []Field{{"Format", string(d.Format())}}
	switch {
	case d.IsMapping():
		fields = append(fields, Field{"Root", fmt.Sprintf("mapping, %d keys", d.Len())})
		if keys := d.Keys(); len(keys) > 0 {
			fields = append(fields, Field{"Keys", truncateList(keys, 8)})
		}
	case d.IsSequence():
		fields = append(fields, Field{"Root", fmt.Sprintf("sequence, %d items", d.Len())})
	}
	return fields
}

func mediumFields(m *entity.Medium) []Field {
	fields := []Field{
		{"Duration", FormatTimestamp(m.Duration())},
	}
	if v, ok := m.MainVideoTrack(); ok {
		fields = append(fields,
			Field{"Video", VideoLine(v)},
			Field{"HD", YesNo(m.IsHD())},
			Field{"HDR", m.HDRFormat()},
		)
	}
	for i, a := range m.AudioTracks() {
		fields = append(fields, Field{fmt.Sprintf("Audio #%d", i+1), AudioLine(a)})
	}
	if subs := m.SubtitleTracks(); len(subs) > 0 {
		fields = append(fields, Field{"Subtitles", fmt.Sprintf("%d", len(subs))})
	}
	fields = append(fields, Field{"Chapters", fmt.Sprintf("%d", len(m.Chapters()))})

	tags := m.Tags()
	for _, f := range []Field{
		{"Title", tags.Title},
		{"Album", tags.Album},
		{"Performer", tags.Performer},
		{"Track", tags.TrackPosition},
	} {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// VideoLine summarises a video track: codec, size, aspect, rate, scan.
func VideoLine(v probe.VideoTrack) string {
	parts := []string{orUnknown(v.Codec()), fmt.Sprintf("%dx%d", v.Width(), v.Height())}
	if dar, ok := v.DisplayAspectRatio(); ok {
		parts = append(parts, "DAR "+dar)
	}
	if fps := v.FrameRate(); fps > 0 {
		parts = append(parts, FormatFrameRate(fps))
	}
	if v.Interlaced() {
		parts = append(parts, "interlaced")
	}
	return strings.Join(parts, ", ")
}

// AudioLine summarises an audio track: codec, channels, language.
func AudioLine(a probe.AudioTrack) string {
	parts := []string{orUnknown(a.Codec())}
	if ch := a.Channels(); ch != "" {
		parts = append(parts, ch+" ch")
	}
	if lang, ok := a.Language(); ok {
		parts = append(parts, lang.Name)
	}
	if mode, ok := a.CompressionMode(); ok && mode != "" {
		parts = append(parts, strings.ToLower(mode))
	}
	return strings.Join(parts, ", ")
}

// PrintFields writes fields as an aligned two-column block, labels in cyan.
func PrintFields(w io.Writer, fields []Field) {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label))
	}
	for _, f := range fields {
		pad := strings.Repeat(" ", width-len(f.Label))
		fmt.Fprintf(w, "%s%s  %s\n", term.Paint(term.Cyan, f.Label), pad, f.Value)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func truncateList(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:n], ", ") + fmt.Sprintf(", ... (+%d)", len(items)-n)
}
